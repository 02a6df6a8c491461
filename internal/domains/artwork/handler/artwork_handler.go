package handler

import (
	"github.com/gin-gonic/gin"

	"gallery-backend/internal/domains/artwork"
	"gallery-backend/internal/shared/response"
)

// ArtworkHandler handles HTTP requests for the artwork domain
type ArtworkHandler struct {
	service artwork.Service
}

// NewArtworkHandler creates a new artwork handler instance
// Dependency injection pattern - receives service from container
func NewArtworkHandler(service artwork.Service) *ArtworkHandler {
	return &ArtworkHandler{service: service}
}

// List handles GET /artworks
func (h *ArtworkHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		statusCode, message := artwork.GetErrorResponse(err)
		response.Fail(c, statusCode, message)
		return
	}

	if items == nil {
		items = []artwork.Artwork{}
	}
	response.OK(c, gin.H{"items": items})
}

// Create handles POST /artworks
func (h *ArtworkHandler) Create(c *gin.Context) {
	var in artwork.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	item, err := h.service.Create(c.Request.Context(), &in)
	if err != nil {
		statusCode, message := artwork.GetErrorResponse(err)
		response.Fail(c, statusCode, message)
		return
	}

	response.OK(c, gin.H{"item": item})
}

// Update handles PUT /artworks/:id
func (h *ArtworkHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var in artwork.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, &in)
	if err != nil {
		statusCode, message := artwork.GetErrorResponse(err)
		response.Fail(c, statusCode, message)
		return
	}

	response.OK(c, gin.H{"item": item})
}

// Delete handles DELETE /artworks/:id
func (h *ArtworkHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		statusCode, message := artwork.GetErrorResponse(err)
		response.Fail(c, statusCode, message)
		return
	}

	response.OK(c, gin.H{})
}
