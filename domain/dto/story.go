package dto

type CreateStoryRequest struct {
	Title  string `form:"title" validate:"omitempty,max=200"`
	Body   string `form:"body" validate:"required"`
	Status string `form:"status" validate:"omitempty,oneof=public private"`
}

// UpdateStoryRequest เป็น full update เหมือน create (re-run validation ทุกครั้ง)
type UpdateStoryRequest struct {
	Title  string `form:"title" validate:"omitempty,max=200"`
	Body   string `form:"body" validate:"required"`
	Status string `form:"status" validate:"omitempty,oneof=public private"`
}
