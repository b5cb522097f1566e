package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackforge/project-tracker-api/internal/dto"
	apierrors "github.com/trackforge/project-tracker-api/internal/errors"
	"github.com/trackforge/project-tracker-api/internal/middleware"
	"github.com/trackforge/project-tracker-api/internal/services"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a task under one of the current user's projects. A
// project owned by someone else responds 404, indistinguishable from a
// missing one.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthenticated(c, "")
		return
	}

	projectID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var fields services.TaskFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(projectID, userID, fields)
	if err != nil {
		if verr, ok := services.AsValidationError(err); ok {
			apierrors.ValidationFailed(c, verr.Fields)
			return
		}
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, "Project not found")
			return
		}
		log.Printf("task error: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// ToggleTask flips a task's completed flag. The response keeps the
// {success, completed} shape the tracker's frontend polls for.
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthenticated(c, "")
		return
	}

	type ToggleTaskRequest struct {
		TaskID uint64 `json:"task_id" binding:"required"`
	}

	var req ToggleTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	task, err := h.taskService.ToggleTask(req.TaskID, userID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Task not found",
			})
			return
		}
		log.Printf("toggle error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"completed": task.Completed,
	})
}
