package handler

import (
	"github.com/gin-gonic/gin"

	"gallery-backend/internal/domains/archive"
	"gallery-backend/internal/shared/response"
)

// ArchiveHandler handles HTTP requests for the archive domain
type ArchiveHandler struct {
	service archive.Service
}

// NewArchiveHandler creates a new archive handler instance
// Dependency injection pattern - receives service from container
func NewArchiveHandler(service archive.Service) *ArchiveHandler {
	return &ArchiveHandler{service: service}
}

// List handles GET /archive
func (h *ArchiveHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		statusCode, message := archive.GetErrorResponse(err)
		response.Fail(c, statusCode, message)
		return
	}

	if items == nil {
		items = []archive.Item{}
	}
	response.OK(c, gin.H{"items": items})
}

// Create handles POST /archive
func (h *ArchiveHandler) Create(c *gin.Context) {
	var in archive.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	item, err := h.service.Create(c.Request.Context(), &in)
	if err != nil {
		statusCode, message := archive.GetErrorResponse(err)
		response.Fail(c, statusCode, message)
		return
	}

	response.OK(c, gin.H{"item": item})
}

// Delete handles DELETE /archive/:id
func (h *ArchiveHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		statusCode, message := archive.GetErrorResponse(err)
		response.Fail(c, statusCode, message)
		return
	}

	response.OK(c, gin.H{})
}

// Reset handles DELETE /archive (bulk reset)
func (h *ArchiveHandler) Reset(c *gin.Context) {
	count, err := h.service.Reset(c.Request.Context())
	if err != nil {
		statusCode, message := archive.GetErrorResponse(err)
		response.Fail(c, statusCode, message)
		return
	}

	response.OK(c, gin.H{"deletedCount": count})
}
