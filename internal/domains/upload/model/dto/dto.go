package dto

import (
	"fmt"
	"mime/multipart"
	"strings"
	"time"
)

const (
	MsgFileUploaded = "File uploaded successfully"
	MsgFileDeleted  = "File deleted successfully"
)

type UploadRequest struct {
	File       *multipart.FileHeader `json:"file"        swaggerignore:"true"`
	EmployeeID string                `json:"employee_id" validate:"omitempty,uuid"`
}

// FileName builds employee-{id}-{unixmillis}.{ext}, or profile-{unixmillis}.{ext} without an employee.
func (r *UploadRequest) FileName(now time.Time, ext string) string {
	ext = strings.TrimPrefix(ext, ".")

	if r.EmployeeID != "" {
		return fmt.Sprintf("employee-%s-%d.%s", r.EmployeeID, now.UnixMilli(), ext)
	}

	return fmt.Sprintf("profile-%d.%s", now.UnixMilli(), ext)
}

type UploadResponse struct {
	Message  string `json:"message"`
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
	FileType string `json:"file_type"`
}

type DeleteUploadRequest struct {
	FileName string `json:"file_name" validate:"required"`
}
