package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// Health handles GET /api/health
// @Summary Health check
// @Description Report whether the garden is up and the database is reachable
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Garden is healthy"
// @Failure 503 {object} map[string]interface{} "Database unreachable"
// @Router /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	message := "Garden is growing!"

	sqlDB, err := h.db.DB()
	if err != nil {
		status = http.StatusServiceUnavailable
		message = "database unavailable: " + err.Error()
	} else if err := sqlDB.Ping(); err != nil {
		status = http.StatusServiceUnavailable
		message = "database unavailable: " + err.Error()
	}

	c.JSON(status, gin.H{
		"success":   status == http.StatusOK,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
