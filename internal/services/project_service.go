package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/trackforge/project-tracker-api/internal/constants"
	"github.com/trackforge/project-tracker-api/internal/models"
	"github.com/trackforge/project-tracker-api/internal/repository"
	"github.com/trackforge/project-tracker-api/internal/validation"
	"gorm.io/gorm"
)

// ProjectService handles the owner-scoped project query and mutation logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
	}
}

// ListProjectsInput represents filters for listing projects
type ListProjectsInput struct {
	OwnerID  uint64
	Status   string
	Search   string
	Page     int
	PageSize int
}

// ProjectFields is the validated input for creating or updating a project.
// Date fields use YYYY-MM-DD.
type ProjectFields struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=planning active completed on_hold"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	StartDate   string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// ProjectDetail bundles a project with its tasks in default task order.
type ProjectDetail struct {
	Project models.Project
	Tasks   []models.Task
}

// ListProjects returns one page of the owner's projects plus the total count
// of matches. Unknown status values match nothing; out-of-range pages return
// an empty page. Neither is an error.
func (s *ProjectService) ListProjects(input ListProjectsInput) ([]models.Project, int64, error) {
	if input.Page < constants.MinPage {
		input.Page = constants.MinPage
	}
	if input.PageSize <= 0 {
		input.PageSize = constants.DefaultProjectPageSize
	}

	filter := repository.ProjectFilter{
		OwnerID:  input.OwnerID,
		Search:   input.Search,
		Page:     input.Page,
		PageSize: input.PageSize,
	}
	if input.Status != "" {
		status := models.ProjectStatus(input.Status)
		filter.Status = &status
	}

	projects, total, err := s.projectRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, total, nil
}

// GetProject returns an owned project together with its tasks.
func (s *ProjectService) GetProject(projectID, ownerID uint64) (*ProjectDetail, error) {
	project, err := s.projectRepo.FindOwned(projectID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	tasks, err := s.taskRepo.ListByProject(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &ProjectDetail{Project: *project, Tasks: tasks}, nil
}

// CreateProject validates fields and creates a project owned by ownerID.
func (s *ProjectService) CreateProject(ownerID uint64, fields ProjectFields) (*models.Project, error) {
	if errs := validation.Struct(fields); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	project := &models.Project{
		Title:       fields.Title,
		Description: fields.Description,
		OwnerID:     ownerID,
		Status:      models.ProjectStatusPlanning,
		Priority:    models.ProjectPriorityMedium,
	}
	applyProjectFields(project, fields)

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// UpdateProject validates fields and applies them to an owned project. The
// ownership check and the write happen in one repository transaction.
func (s *ProjectService) UpdateProject(projectID, ownerID uint64, fields ProjectFields) (*models.Project, error) {
	if errs := validation.Struct(fields); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	project, err := s.projectRepo.UpdateOwned(projectID, ownerID, func(p *models.Project) error {
		p.Title = fields.Title
		p.Description = fields.Description
		applyProjectFields(p, fields)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject deletes an owned project and all its tasks.
func (s *ProjectService) DeleteProject(projectID, ownerID uint64) error {
	if err := s.projectRepo.DeleteOwned(projectID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// applyProjectFields copies the optional fields onto the model. Fields are
// already validated, so date parses cannot fail here.
func applyProjectFields(project *models.Project, fields ProjectFields) {
	if fields.Status != "" {
		project.Status = models.ProjectStatus(fields.Status)
	}
	if fields.Priority != "" {
		project.Priority = models.ProjectPriority(fields.Priority)
	}
	project.StartDate = parseDate(fields.StartDate)
	project.EndDate = parseDate(fields.EndDate)
}

// parseDate parses a validated YYYY-MM-DD string, returning nil for empty
// input.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return nil
	}
	return &t
}
