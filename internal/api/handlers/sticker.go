package handlers

import (
	"net/http"

	"garden-backend/internal/service"
	"garden-backend/internal/sticker"

	"github.com/gin-gonic/gin"
)

// StickerHandler renders composed sticker SVGs
type StickerHandler struct {
	projectService *service.ProjectService
	composer       *sticker.Composer
}

// NewStickerHandler creates a new sticker handler
func NewStickerHandler(projectService *service.ProjectService, composer *sticker.Composer) *StickerHandler {
	return &StickerHandler{
		projectService: projectService,
		composer:       composer,
	}
}

// ProjectSticker handles GET /api/projects/:id/sticker
// @Summary Render a project sticker
// @Description Compose the fruit-on-shape sticker SVG for a project
// @Tags stickers
// @Produce image/svg+xml
// @Param id path int true "Project ID"
// @Param animated query bool false "Include rotation and bounce animation"
// @Success 200 {string} string "Sticker SVG"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /api/projects/{id}/sticker [get]
func (h *StickerHandler) ProjectSticker(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	animated := c.Query("animated") == "true"
	svg := h.composer.Compose(project.Adjective, project.Feeling, animated)

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}

// PreviewSticker handles GET /api/stickers/preview
// @Summary Preview a sticker
// @Description Compose a sticker for an adjective and feeling pair without creating a project
// @Tags stickers
// @Produce image/svg+xml
// @Param adjective query string false "Project adjective"
// @Param feeling query string false "Builder feeling"
// @Param animated query bool false "Include rotation and bounce animation"
// @Success 200 {string} string "Sticker SVG"
// @Router /api/stickers/preview [get]
func (h *StickerHandler) PreviewSticker(c *gin.Context) {
	adjective := c.Query("adjective")
	feeling := c.Query("feeling")
	animated := c.Query("animated") == "true"

	svg := h.composer.Compose(adjective, feeling, animated)

	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}
