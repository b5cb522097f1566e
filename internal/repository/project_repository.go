package repository

import (
	"strings"

	"github.com/trackforge/project-tracker-api/internal/database"
	"github.com/trackforge/project-tracker-api/internal/models"
	"github.com/trackforge/project-tracker-api/internal/utils"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindOwned finds a project by ID restricted to the owner, with optional
// preloading. Returns gorm.ErrRecordNotFound both for absent and
// foreign-owned projects.
func (r *GormProjectRepository) FindOwned(id, ownerID uint64, preload ...string) (*models.Project, error) {
	var project models.Project
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("owner_id = ?", ownerID).First(&project, id).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// List retrieves the owner's projects with filtering and pagination
func (r *GormProjectRepository) List(filter ProjectFilter) ([]models.Project, int64, error) {
	var projects []models.Project

	query := r.db.Model(&models.Project{}).Where("projects.owner_id = ?", filter.OwnerID)

	// An unrecognized status value simply matches no rows; no validation
	// needed here.
	if filter.Status != nil {
		query = query.Where("projects.status = ?", *filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(projects.title) LIKE ?", pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("projects.created_at DESC, projects.id DESC")

	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Page:   filter.Page,
			Limit:  filter.PageSize,
			Offset: (filter.Page - 1) * filter.PageSize,
		}))
	}

	if err := listQuery.Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// UpdateOwned loads the project, re-verifying ownership, applies changes and
// saves, all inside one transaction. This closes the gap between the
// ownership check and the write.
func (r *GormProjectRepository) UpdateOwned(id, ownerID uint64, apply func(*models.Project) error) (*models.Project, error) {
	var project models.Project

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", ownerID).First(&project, id).Error; err != nil {
			return err
		}

		if err := apply(&project); err != nil {
			return err
		}

		return tx.Save(&project).Error
	})
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// DeleteOwned deletes the project and cascades to its tasks inside one
// transaction. The explicit task delete keeps the behavior identical on
// stores where the FK constraint is not enforced (sqlite test databases).
func (r *GormProjectRepository) DeleteOwned(id, ownerID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.Where("owner_id = ?", ownerID).First(&project, id).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Delete(&project).Error
	})
}
