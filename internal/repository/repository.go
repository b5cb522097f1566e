package repository

import (
	"github.com/trackforge/project-tracker-api/internal/models"
)

// ProjectRepository defines the interface for project data access. Every
// read or write that takes an ownerID is owner-scoped: rows belonging to
// other users behave exactly as if they did not exist.
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindOwned finds a project by ID, restricted to the given owner,
	// with optional preloading
	FindOwned(id, ownerID uint64, preload ...string) (*models.Project, error)

	// List retrieves the owner's projects with filtering and pagination
	List(filter ProjectFilter) ([]models.Project, int64, error)

	// UpdateOwned re-verifies ownership and applies changes via apply
	// inside a single transaction
	UpdateOwned(id, ownerID uint64, apply func(*models.Project) error) (*models.Project, error)

	// DeleteOwned deletes the project and all its tasks inside a single
	// transaction
	DeleteOwned(id, ownerID uint64) error
}

// ProjectFilter holds filtering options for listing projects
type ProjectFilter struct {
	OwnerID  uint64
	Status   *models.ProjectStatus
	Search   string
	Page     int
	PageSize int
}

// TaskRepository defines the interface for task data access. Ownership is
// transitive: a task is reachable only through its project's owner.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindOwned finds a task whose parent project belongs to ownerID
	FindOwned(id, ownerID uint64, preload ...string) (*models.Task, error)

	// ListByProject lists a project's tasks in default order:
	// incomplete first, newest first within each group
	ListByProject(projectID uint64) ([]models.Task, error)

	// ToggleOwned flips the completed flag of an owned task inside a
	// single transaction and returns the updated task
	ToggleOwned(id, ownerID uint64) (*models.Task, error)

	// CountByProject counts tasks attached to a project
	CountByProject(projectID uint64) (int64, error)
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// FindByUserID finds the profile attached to a user
	FindByUserID(userID uint64) (*models.Profile, error)

	// GetOrCreate returns the user's profile, creating it with defaults
	// when absent. Idempotent.
	GetOrCreate(userID uint64) (*models.Profile, error)

	// Update updates a profile
	Update(profile *models.Profile) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Update updates a user
	Update(user *models.User) error

	// Exists reports whether a user with the given ID exists
	Exists(id uint64) (bool, error)
}
