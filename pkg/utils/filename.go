package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// StoredFileName สร้างชื่อไฟล์สำหรับเก็บลง storage จากชื่อไฟล์เดิม
// slug กันชื่อแปลกๆ + timestamp กันชนกัน (รูปแบบเดียวกับ
// fieldname-timestamp.ext ของ upload middleware เดิม)
func StoredFileName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))

	s := slug.Make(base)
	if s == "" {
		s = "file"
	}

	return fmt.Sprintf("%s-%d%s", s, time.Now().UnixNano(), ext)
}
