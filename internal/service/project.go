package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"garden-backend/internal/cache"
	"garden-backend/internal/database/models"
	apperrors "garden-backend/internal/errors"
	"garden-backend/internal/repository"
	"garden-backend/internal/sticker"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo      *repository.ProjectRepository
	validator *validator.Validate
	mapper    *sticker.Mapper
	cache     *cache.ProjectCache
	rand      *rand.Rand
}

// NewProjectService creates a new project service. The cache may be nil.
func NewProjectService(repo *repository.ProjectRepository, validator *validator.Validate, projectCache *cache.ProjectCache) *ProjectService {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &ProjectService{
		repo:      repo,
		validator: validator,
		mapper:    sticker.NewMapper(sticker.WithJitter(r)),
		cache:     projectCache,
		rand:      r,
	}
}

// CreateProjectRequest represents the request to plant a project
type CreateProjectRequest struct {
	ProjectName string `json:"projectName" form:"projectName" validate:"required,min=1,max=200"`
	Location    string `json:"location" form:"location" validate:"required,min=1,max=200"`
	Creator     string `json:"creator" form:"creator" validate:"max=100"`
	ProjectLink string `json:"projectLink" form:"projectLink" validate:"omitempty,url,max=500"`
	Adjective   string `json:"projectAdjective" form:"projectAdjective" validate:"max=50"`
	Feeling     string `json:"projectFeeling" form:"projectFeeling" validate:"max=50"`

	// Screenshot is the stored upload path, set by the handler after the
	// file is saved. Not part of the client payload.
	Screenshot string `json:"-" form:"-"`
}

// StickerData is the derived sticker payload served with every project.
type StickerData struct {
	FruitType string `json:"fruitType"`
	Color     string `json:"color"`
	Text      string `json:"text"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID          uint        `json:"id"`
	ProjectName string      `json:"projectName"`
	Location    string      `json:"location"`
	Creator     string      `json:"creator"`
	ProjectLink string      `json:"projectLink,omitempty"`
	Screenshot  string      `json:"screenshot,omitempty"`
	Adjective   string      `json:"adjective"`
	Feeling     string      `json:"feeling"`
	StickerData StickerData `json:"stickerData"`
	Likes       int         `json:"likes"`
	PositionX   float64     `json:"positionX"`
	PositionY   float64     `json:"positionY"`
	GardenRow   int         `json:"gardenRow"`
	CreatedAt   string      `json:"createdAt"`
}

// ListOptions narrows and orders a project listing.
type ListOptions struct {
	Search string
	Shape  string
	Sort   string // newest (default), oldest, popular, name
}

// Create validates the request, derives the sticker descriptor from the word
// pair, assigns a random seed position, and persists the project.
func (s *ProjectService) Create(req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		if req.ProjectName == "" || req.Location == "" {
			return nil, apperrors.NewValidationError("projectName/location", "project name and location are required")
		}
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	desc := s.mapper.Generate(req.Adjective, req.Feeling)

	project := &models.Project{
		ProjectName:  req.ProjectName,
		Location:     req.Location,
		Creator:      req.Creator,
		ProjectLink:  req.ProjectLink,
		Screenshot:   req.Screenshot,
		Adjective:    req.Adjective,
		Feeling:      req.Feeling,
		FruitType:    desc.Shape,
		StickerColor: desc.Color,
		PositionX:    10 + s.rand.Float64()*80,
		PositionY:    20 + s.rand.Float64()*60,
		GardenRow:    s.rand.Intn(5),
	}
	if project.Creator == "" {
		project.Creator = "Anonymous Gardener"
	}

	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.cache.Invalidate(context.Background())
	return s.toResponse(project), nil
}

// List returns projects per the given options, newest first by default.
func (s *ProjectService) List(opts ListOptions) ([]ProjectResponse, error) {
	variant := listVariant(opts)

	var cached []ProjectResponse
	if s.cache.Get(context.Background(), variant, &cached) {
		return cached, nil
	}

	var (
		projects []models.Project
		err      error
	)
	if opts.Search != "" {
		projects, err = s.repo.Search(opts.Search)
	} else {
		projects, err = s.repo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		if opts.Shape != "" && projects[i].FruitType != opts.Shape {
			continue
		}
		responses = append(responses, *s.toResponse(&projects[i]))
	}
	sortResponses(responses, opts.Sort)

	s.cache.Set(context.Background(), variant, responses)
	return responses, nil
}

// Search returns projects matching a non-empty query.
func (s *ProjectService) Search(query string) ([]ProjectResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.ErrEmptySearchQuery
	}
	return s.List(ListOptions{Search: query})
}

// GetByID returns a single project
func (s *ProjectService) GetByID(id uint) (*ProjectResponse, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return s.toResponse(project), nil
}

// Like adds one like to a project
func (s *ProjectService) Like(id uint) (*ProjectResponse, error) {
	project, err := s.repo.IncrementLikes(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to like project: %w", err)
	}

	s.cache.Invalidate(context.Background())
	return s.toResponse(project), nil
}

// UpdateLink replaces the project's external link
func (s *ProjectService) UpdateLink(id uint, link string) (*ProjectResponse, error) {
	if link == "" {
		return nil, apperrors.NewValidationError("projectLink", "project link is required")
	}
	project, err := s.repo.UpdateLink(id, link)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to update project link: %w", err)
	}

	s.cache.Invalidate(context.Background())
	return s.toResponse(project), nil
}

// UpdateScreenshot replaces the project's screenshot path
func (s *ProjectService) UpdateScreenshot(id uint, screenshot string) (*ProjectResponse, error) {
	project, err := s.repo.UpdateScreenshot(id, screenshot)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to update screenshot: %w", err)
	}

	s.cache.Invalidate(context.Background())
	return s.toResponse(project), nil
}

// Delete removes a project from the garden
func (s *ProjectService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.cache.Invalidate(context.Background())
	return nil
}

// toResponse derives the sticker payload from the stored columns. The sticker
// text is rebuilt on every read so renames never leave it stale.
func (s *ProjectService) toResponse(p *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          p.ID,
		ProjectName: p.ProjectName,
		Location:    p.Location,
		Creator:     p.Creator,
		ProjectLink: p.ProjectLink,
		Screenshot:  p.Screenshot,
		Adjective:   p.Adjective,
		Feeling:     p.Feeling,
		StickerData: StickerData{
			FruitType: p.FruitType,
			Color:     p.StickerColor,
			Text:      fmt.Sprintf("I grow %s in %s", p.ProjectName, p.Location),
		},
		Likes:     p.Likes,
		PositionX: p.PositionX,
		PositionY: p.PositionY,
		GardenRow: p.GardenRow,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func listVariant(opts ListOptions) string {
	if opts.Search == "" && opts.Shape == "" && (opts.Sort == "" || opts.Sort == "newest") {
		return "all"
	}
	return fmt.Sprintf("list:%s:%s:%s", strings.ToLower(opts.Search), opts.Shape, opts.Sort)
}

func sortResponses(responses []ProjectResponse, order string) {
	switch order {
	case "oldest":
		sort.SliceStable(responses, func(i, j int) bool {
			return responses[i].CreatedAt < responses[j].CreatedAt
		})
	case "popular":
		sort.SliceStable(responses, func(i, j int) bool {
			return responses[i].Likes > responses[j].Likes
		})
	case "name":
		sort.SliceStable(responses, func(i, j int) bool {
			return strings.ToLower(responses[i].ProjectName) < strings.ToLower(responses[j].ProjectName)
		})
	default:
		// Repository order is already newest first.
	}
}
