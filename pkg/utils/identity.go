package utils

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CanonicalID แปลง identifier เป็น hex string รูปแบบเดียว
// รองรับทั้ง ObjectID และ string เพื่อกัน false negative
// ตอนเทียบ ownership ข้าม type
func CanonicalID(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case *primitive.ObjectID:
		if id == nil {
			return ""
		}
		return id.Hex()
	case string:
		s := strings.TrimSpace(strings.ToLower(id))
		if oid, err := primitive.ObjectIDFromHex(s); err == nil {
			return oid.Hex()
		}
		return s
	default:
		return ""
	}
}

// SameID เทียบ identifier สองตัวหลัง normalize แล้ว
// เป็น utility เดียวที่ใช้ตัดสิน ownership ทั้งระบบ
func SameID(a, b any) bool {
	ca := CanonicalID(a)
	if ca == "" {
		return false
	}
	return ca == CanonicalID(b)
}
