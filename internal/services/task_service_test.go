package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trackforge/project-tracker-api/internal/models"
	"github.com/trackforge/project-tracker-api/internal/repository"
	"gorm.io/gorm"
)

func newTaskService(db *gorm.DB) *TaskService {
	return NewTaskService(
		repository.NewTaskRepository(db),
		repository.NewProjectRepository(db),
		repository.NewUserRepository(db),
	)
}

func TestTaskService_CreateTask(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTaskService(db)
	owner := createUser(t, db, "alice")
	assignee := createUser(t, db, "bob")
	project := createProject(t, db, owner.ID, "Website Redesign", models.ProjectStatusPlanning)

	task, err := svc.CreateTask(project.ID, owner.ID, TaskFields{
		Title:      "Design mockups",
		AssignedTo: &assignee.ID,
		DueDate:    "2026-09-15",
	})
	require.NoError(t, err)
	require.False(t, task.Completed)
	require.NotNil(t, task.AssignedTo)
	require.Equal(t, assignee.ID, *task.AssignedTo)
	require.NotNil(t, task.DueDate)
}

func TestTaskService_CreateTask_ForeignProject(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTaskService(db)
	owner := createUser(t, db, "alice")
	other := createUser(t, db, "bob")
	project := createProject(t, db, owner.ID, "Website Redesign", models.ProjectStatusPlanning)

	_, err := svc.CreateTask(project.ID, other.ID, TaskFields{Title: "Sneaky"})
	require.ErrorIs(t, err, ErrProjectNotFound)

	var count int64
	db.Model(&models.Task{}).Count(&count)
	require.Zero(t, count)
}

func TestTaskService_ToggleTask_SelfInverse(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTaskService(db)
	owner := createUser(t, db, "alice")
	project := createProject(t, db, owner.ID, "Website Redesign", models.ProjectStatusPlanning)

	task := &models.Task{ProjectID: project.ID, Title: "Design mockups"}
	require.NoError(t, db.Create(task).Error)

	toggled, err := svc.ToggleTask(task.ID, owner.ID)
	require.NoError(t, err)
	require.True(t, toggled.Completed)

	toggled, err = svc.ToggleTask(task.ID, owner.ID)
	require.NoError(t, err)
	require.False(t, toggled.Completed)

	var reloaded models.Task
	require.NoError(t, db.First(&reloaded, task.ID).Error)
	require.False(t, reloaded.Completed)
}

func TestTaskService_ToggleTask_ForeignOwner(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTaskService(db)
	owner := createUser(t, db, "alice")
	other := createUser(t, db, "bob")
	project := createProject(t, db, owner.ID, "Website Redesign", models.ProjectStatusPlanning)

	task := &models.Task{ProjectID: project.ID, Title: "Design mockups"}
	require.NoError(t, db.Create(task).Error)

	_, err := svc.ToggleTask(task.ID, other.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)

	var reloaded models.Task
	require.NoError(t, db.First(&reloaded, task.ID).Error)
	require.False(t, reloaded.Completed)
}

func TestTaskService_ToggleTask_Missing(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTaskService(db)
	owner := createUser(t, db, "alice")

	_, err := svc.ToggleTask(999, owner.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)
}
