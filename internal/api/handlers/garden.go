package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"garden-backend/internal/layout"
	"garden-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultGardenWidth  = 1200
	defaultGardenHeight = 800
)

// GardenHandler computes settled garden layouts server-side
type GardenHandler struct {
	projectService *service.ProjectService
}

// NewGardenHandler creates a new garden layout handler
func NewGardenHandler(projectService *service.ProjectService) *GardenHandler {
	return &GardenHandler{
		projectService: projectService,
	}
}

// LayoutItem is one placed sticker in the settled layout
type LayoutItem struct {
	ID        string  `json:"id"`
	ProjectID uint    `json:"projectId,omitempty"`
	Project   bool    `json:"project"`
	Shape     int     `json:"shape"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Radius    float64 `json:"radius"`
	Rotation  float64 `json:"rotation"`
	Opacity   float64 `json:"opacity"`
}

// Layout handles GET /api/garden/layout
// @Summary Settled garden layout
// @Description Run the force layout to rest and return final sticker positions for the requested grouping and viewport
// @Tags garden
// @Accept json
// @Produce json
// @Param grouping query string false "Cluster grouping: none (default), adjective, location, feeling"
// @Param width query number false "Viewport width in pixels"
// @Param height query number false "Viewport height in pixels"
// @Success 200 {object} map[string]interface{} "Settled layout"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/garden/layout [get]
func (h *GardenHandler) Layout(c *gin.Context) {
	width := queryFloat(c, "width", defaultGardenWidth)
	height := queryFloat(c, "height", defaultGardenHeight)
	grouping := layout.ParseGrouping(c.Query("grouping"))

	projects, err := h.projectService.List(service.ListOptions{})
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]*layout.Item, 0, len(projects)+8)
	for i, p := range projects {
		items = append(items, layout.NewProjectItem(
			i, p.ID, shapeNumber(p.StickerData.FruitType),
			p.Adjective, p.Location, p.Feeling,
		))
	}
	items = append(items, layout.DecorativeItems()...)

	sim := layout.NewSimulation(items, width, height, grouping)
	sim.Settle()

	placed := make([]LayoutItem, 0, len(items))
	for _, it := range sim.Items() {
		placed = append(placed, LayoutItem{
			ID:        it.ID,
			ProjectID: it.ProjectID,
			Project:   it.Project,
			Shape:     it.Shape,
			X:         it.X,
			Y:         it.Y,
			Radius:    it.Radius,
			Rotation:  it.Rotation,
			Opacity:   it.Opacity,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"grouping": string(grouping),
		"width":    width,
		"height":   height,
		"items":    placed,
		"count":    len(placed),
	})
}

// shapeNumber extracts N from "shapeN", defaulting to 1.
func shapeNumber(fruitType string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(fruitType, "shape"))
	if err != nil || n < 1 || n > 15 {
		return 1
	}
	return n
}

func queryFloat(c *gin.Context, name string, fallback float64) float64 {
	v, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
