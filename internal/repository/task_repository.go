package repository

import (
	"github.com/trackforge/project-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// ownedTaskQuery scopes a query to tasks whose parent project belongs to
// ownerID.
func ownedTaskQuery(db *gorm.DB, ownerID uint64) *gorm.DB {
	return db.Model(&models.Task{}).
		Select("tasks.*").
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("projects.owner_id = ?", ownerID)
}

// FindOwned finds a task whose parent project belongs to ownerID
func (r *GormTaskRepository) FindOwned(id, ownerID uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := ownedTaskQuery(r.db, ownerID)

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("tasks.id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// ListByProject lists a project's tasks: incomplete first, then newest first
// within each group.
func (r *GormTaskRepository) ListByProject(projectID uint64) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Where("project_id = ?", projectID).
		Order("completed ASC, created_at DESC, id DESC").
		Preload("Assignee").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ToggleOwned flips the completed flag inside one transaction. The ownership
// check and the write are atomic; concurrent toggles on the same task remain
// last-write-wins (no version column).
func (r *GormTaskRepository) ToggleOwned(id, ownerID uint64) (*models.Task, error) {
	var task models.Task

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := ownedTaskQuery(tx, ownerID).Where("tasks.id = ?", id).First(&task).Error; err != nil {
			return err
		}

		task.Completed = !task.Completed
		return tx.Model(&models.Task{}).Where("id = ?", task.ID).
			Update("completed", task.Completed).Error
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// CountByProject counts tasks attached to a project
func (r *GormTaskRepository) CountByProject(projectID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}
