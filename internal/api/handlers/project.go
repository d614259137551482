package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	apperrors "garden-backend/internal/errors"
	"garden-backend/internal/logger"
	"garden-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for garden projects
type ProjectHandler struct {
	projectService *service.ProjectService
	uploads        *service.UploadStore
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService, uploads *service.UploadStore) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		uploads:        uploads,
	}
}

// ListProjects handles GET /api/projects
// @Summary List projects
// @Description List all projects in the garden, newest first. Supports optional search, shape filter and sort order.
// @Tags projects
// @Accept json
// @Produce json
// @Param search query string false "Filter by name, location or creator"
// @Param shape query string false "Filter by sticker shape (shape1..shape15)"
// @Param sort query string false "Sort order: newest (default), oldest, popular, name"
// @Success 200 {object} map[string]interface{} "Projects list"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	opts := service.ListOptions{
		Search: c.Query("search"),
		Shape:  c.Query("shape"),
		Sort:   c.Query("sort"),
	}

	projects, err := h.projectService.List(opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"projects": projects,
		"count":    len(projects),
	})
}

// SearchProjects handles GET /api/projects/search
// @Summary Search projects
// @Description Search projects by name, location or creator. The query must not be empty.
// @Tags projects
// @Accept json
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} map[string]interface{} "Matching projects"
// @Failure 400 {object} map[string]interface{} "Empty search query"
// @Router /api/projects/search [get]
func (h *ProjectHandler) SearchProjects(c *gin.Context) {
	query := c.Query("q")

	projects, err := h.projectService.Search(query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"projects": projects,
		"count":    len(projects),
		"query":    query,
	})
}

// CreateProject handles POST /api/projects
// @Summary Plant a project
// @Description Create a new project with an optional screenshot. Accepts multipart form data or JSON.
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param projectName formData string true "Project name"
// @Param location formData string true "Where the project grows"
// @Param creator formData string false "Creator name, defaults to Anonymous Gardener"
// @Param projectLink formData string false "External project URL"
// @Param projectAdjective formData string false "Project adjective, drives the sticker shape"
// @Param projectFeeling formData string false "Builder feeling, drives the sticker color"
// @Param screenshot formData file false "Screenshot image, max 5MB"
// @Success 201 {object} map[string]interface{} "Created project"
// @Failure 400 {object} map[string]interface{} "Missing or invalid fields"
// @Failure 413 {object} map[string]interface{} "Screenshot too large"
// @Failure 415 {object} map[string]interface{} "Unsupported screenshot type"
// @Router /api/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	if file, err := c.FormFile("screenshot"); err == nil {
		path, err := h.uploads.Save(file)
		if err != nil {
			respondError(c, err)
			return
		}
		req.Screenshot = path
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		if req.Screenshot != "" {
			h.uploads.Remove(req.Screenshot)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Project planted in the garden!",
		"project": project,
	})
}

// GetProject handles GET /api/projects/:id
// @Summary Get project by ID
// @Description Get a single project with its derived sticker data
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]interface{} "Project"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"project": project,
	})
}

// LikeProject handles POST /api/projects/:id/like
// @Summary Like a project
// @Description Increment the like counter atomically and return the updated project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]interface{} "Updated project"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /api/projects/{id}/like [post]
func (h *ProjectHandler) LikeProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	project, err := h.projectService.Like(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"project": project,
	})
}

// UpdateLinkRequest is the body for PATCH /api/projects/:id/link
type UpdateLinkRequest struct {
	ProjectLink string `json:"projectLink"`
}

// UpdateProjectLink handles PATCH /api/projects/:id/link
// @Summary Update project link
// @Description Replace the external link of a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param body body UpdateLinkRequest true "New project link"
// @Success 200 {object} map[string]interface{} "Updated project"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /api/projects/{id}/link [patch]
func (h *ProjectHandler) UpdateProjectLink(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	project, err := h.projectService.UpdateLink(id, req.ProjectLink)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project link updated",
		"project": project,
	})
}

// UpdateProjectScreenshot handles PATCH /api/projects/:id/screenshot
// @Summary Replace project screenshot
// @Description Upload a new screenshot for a project. The previous image file is removed.
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Project ID"
// @Param screenshot formData file true "Screenshot image, max 5MB"
// @Success 200 {object} map[string]interface{} "Updated project"
// @Failure 400 {object} map[string]interface{} "Missing screenshot"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 413 {object} map[string]interface{} "Screenshot too large"
// @Failure 415 {object} map[string]interface{} "Unsupported screenshot type"
// @Router /api/projects/{id}/screenshot [patch]
func (h *ProjectHandler) UpdateProjectScreenshot(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("screenshot")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "screenshot file is required",
		})
		return
	}

	existing, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	path, err := h.uploads.Save(file)
	if err != nil {
		respondError(c, err)
		return
	}

	project, err := h.projectService.UpdateScreenshot(id, path)
	if err != nil {
		h.uploads.Remove(path)
		respondError(c, err)
		return
	}

	if existing.Screenshot != "" && existing.Screenshot != path {
		h.uploads.Remove(existing.Screenshot)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Screenshot updated",
		"project": project,
	})
}

// DeleteProject handles DELETE /api/projects/:id
// @Summary Remove a project
// @Description Delete a project and its screenshot file
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]interface{} "Deletion confirmation"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /api/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	existing, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	if existing.Screenshot != "" {
		h.uploads.Remove(existing.Screenshot)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Project removed from the garden",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// projectID parses the :id path parameter, responding 400 on garbage input.
func projectID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": apperrors.ErrInvalidProjectID.Error(),
		})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrEmptySearchQuery):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrFileTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		status = http.StatusUnsupportedMediaType
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.WithContext(c).WithField("path", c.FullPath()).Error(err.Error())
		if gin.Mode() == gin.ReleaseMode {
			// Storage error detail stays in the logs in production.
			message = "internal server error"
		}
	}

	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
