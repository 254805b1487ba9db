package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/P3chys/studyqa-api/internal/logger"
	"github.com/gin-gonic/gin"
)

const MaxFileSize = 10 * 1024 * 1024 // 10 MB

var AllowedMimeTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
}

// UploadAttachment stores one file and returns the attachment record the
// client then submits with its question.
func UploadAttachment(storage AttachmentStore, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if storage == nil {
			respondError(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Attachment storage is not configured")
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxFileSize+1024*1024)
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			respondValidation(c, "No file uploaded")
			return
		}
		defer file.Close()

		if header.Size > MaxFileSize {
			respondValidation(c, "File exceeds 10MB limit")
			return
		}

		mimeType := header.Header.Get("Content-Type")
		if !AllowedMimeTypes[mimeType] {
			respondValidation(c, "Unsupported file type")
			return
		}

		attachment, err := storage.UploadAttachment(c.Request.Context(), file, header.Size, filepath.Base(header.Filename), mimeType)
		if err != nil {
			log.WithError(err).Error("Failed to upload attachment")
			respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to upload file")
			return
		}

		respondOK(c, http.StatusCreated, attachment)
	}
}

func DownloadAttachment(storage AttachmentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if storage == nil {
			respondError(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Attachment storage is not configured")
			return
		}

		name := filepath.Base(c.Param("name"))
		obj, size, contentType, err := storage.OpenAttachment(c.Request.Context(), name)
		if err != nil {
			respondNotFound(c, "Attachment not found")
			return
		}
		defer obj.Close()

		extraHeaders := map[string]string{
			"Content-Disposition": fmt.Sprintf("inline; filename=\"%s\"", name),
		}
		c.DataFromReader(http.StatusOK, size, contentType, obj, extraHeaders)
	}
}
