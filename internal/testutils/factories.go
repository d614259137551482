package testutils

import (
	"fmt"
	"time"

	"garden-backend/internal/database/models"
)

// FactorySet bundles the data factories used by integration suites
type FactorySet struct {
	Project *ProjectFactory
}

// NewFactorySet creates a FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{Project: NewProjectFactory()}
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct {
	counter int
}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	f.counter++
	return &models.Project{
		ProjectName:  fmt.Sprintf("Test Project %d", f.counter),
		Location:     "Test Garden",
		Creator:      "Test Gardener",
		ProjectLink:  "https://example.com/test",
		Adjective:    "Fresh",
		Feeling:      "Excited",
		FruitType:    "shape4",
		StickerColor: "#FEA57D",
		Likes:        0,
		PositionX:    50,
		PositionY:    50,
		GardenRow:    0,
		CreatedAt:    time.Now(),
	}
}

// WithName sets a custom project name
func (f *ProjectFactory) WithName(name string) *models.Project {
	p := f.Create()
	p.ProjectName = name
	return p
}

// WithCreator sets a custom creator
func (f *ProjectFactory) WithCreator(creator string) *models.Project {
	p := f.Create()
	p.Creator = creator
	return p
}

// WithLocation sets a custom location
func (f *ProjectFactory) WithLocation(location string) *models.Project {
	p := f.Create()
	p.Location = location
	return p
}

// WithWordPair sets the adjective and feeling
func (f *ProjectFactory) WithWordPair(adjective, feeling string) *models.Project {
	p := f.Create()
	p.Adjective = adjective
	p.Feeling = feeling
	return p
}

// WithLikes sets the like count
func (f *ProjectFactory) WithLikes(likes int) *models.Project {
	p := f.Create()
	p.Likes = likes
	return p
}
