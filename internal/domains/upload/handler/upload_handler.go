package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"gallery-backend/internal/domains/upload"
	"gallery-backend/internal/shared/response"
)

// UploadHandler handles POST /upload-image
type UploadHandler struct {
	service upload.Service
}

// NewUploadHandler creates a new upload handler instance
// Dependency injection pattern - receives service from container
func NewUploadHandler(service upload.Service) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload handles POST /upload-image
func (h *UploadHandler) Upload(c *gin.Context) {
	var req upload.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	url, err := h.service.Upload(c.Request.Context(), &req)
	if err != nil {
		statusCode, message := upload.GetErrorResponse(err)
		log.Error().
			Err(err).
			Str("filename", req.Filename).
			Str("bucket", req.BucketName).
			Msg("Image upload failed")
		response.Fail(c, statusCode, message)
		return
	}

	response.OK(c, gin.H{"url": url})
}
