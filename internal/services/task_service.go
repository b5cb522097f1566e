package services

import (
	"errors"
	"fmt"

	"github.com/trackforge/project-tracker-api/internal/models"
	"github.com/trackforge/project-tracker-api/internal/repository"
	"github.com/trackforge/project-tracker-api/internal/validation"
	"gorm.io/gorm"
)

// TaskService handles task creation and the completion toggle. Tasks are
// reached only through their project's owner.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// TaskFields is the validated input for creating a task.
type TaskFields struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	AssignedTo  *uint64 `json:"assigned_to"`
	DueDate     string  `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// CreateTask creates a task under a project owned by ownerID. A project that
// is absent or belongs to someone else yields ErrProjectNotFound and no row
// is written.
func (s *TaskService) CreateTask(projectID, ownerID uint64, fields TaskFields) (*models.Task, error) {
	project, err := s.projectRepo.FindOwned(projectID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if errs := validation.Struct(fields); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	if fields.AssignedTo != nil {
		exists, err := s.userRepo.Exists(*fields.AssignedTo)
		if err != nil {
			return nil, fmt.Errorf("failed to verify assignee: %w", err)
		}
		if !exists {
			return nil, NewValidationError("assigned_to", "Select a valid choice. That user does not exist.")
		}
	}

	task := &models.Task{
		ProjectID:   project.ID,
		Title:       fields.Title,
		Description: fields.Description,
		AssignedTo:  fields.AssignedTo,
		DueDate:     parseDate(fields.DueDate),
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ToggleTask flips the completed flag of a task owned (through its project)
// by ownerID and returns the updated task. Calling it twice restores the
// original state; concurrent calls race as last-write-wins.
func (s *TaskService) ToggleTask(taskID, ownerID uint64) (*models.Task, error) {
	task, err := s.taskRepo.ToggleOwned(taskID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to toggle task: %w", err)
	}

	return task, nil
}
