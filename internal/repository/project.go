package repository

import (
	"garden-backend/internal/database/models"

	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves all projects, newest first
func (r *ProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order(`"createdAt" DESC`).Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Search retrieves projects whose name, location, or creator contains the
// query, case-insensitive, newest first.
func (r *ProjectRepository) Search(query string) ([]models.Project, error) {
	var projects []models.Project
	pattern := "%" + query + "%"
	err := r.db.
		Where(`"projectName" ILIKE ? OR location ILIKE ? OR creator ILIKE ?`, pattern, pattern, pattern).
		Order(`"createdAt" DESC`).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// IncrementLikes atomically adds one like and returns the updated project.
// The increment happens in a single UPDATE so concurrent likes never lose a
// count.
func (r *ProjectRepository) IncrementLikes(id uint) (*models.Project, error) {
	res := r.db.Model(&models.Project{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// UpdateLink sets the project's external link
func (r *ProjectRepository) UpdateLink(id uint, link string) (*models.Project, error) {
	return r.updateField(id, "projectLink", link)
}

// UpdateScreenshot sets the project's screenshot path
func (r *ProjectRepository) UpdateScreenshot(id uint, screenshot string) (*models.Project, error) {
	return r.updateField(id, "screenshot", screenshot)
}

func (r *ProjectRepository) updateField(id uint, column string, value interface{}) (*models.Project, error) {
	res := r.db.Model(&models.Project{}).Where("id = ?", id).UpdateColumn(column, value)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Delete removes a project
func (r *ProjectRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of projects
func (r *ProjectRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}
