package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// createTaskRequest requires the title key to be present but, matching the
// storage contract, does not reject an empty string value.
type createTaskRequest struct {
	Title       *string `json:"title" binding:"required"`
	Description *string `json:"description"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Done        *bool   `json:"done"`
}

func (h *Handler) handleListTasks(c *gin.Context) {
	ownerID := currentUserID(c)
	if ownerID == "" {
		unauthorized(c)
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), ownerID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) handleCreateTask(c *gin.Context) {
	ownerID := currentUserID(c)
	if ownerID == "" {
		unauthorized(c)
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", "title is required")
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), ownerID, *req.Title, req.Description)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *Handler) handleUpdateTask(c *gin.Context) {
	ownerID := currentUserID(c)
	if ownerID == "" {
		unauthorized(c)
		return
	}

	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", "invalid JSON payload")
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), ownerID, taskID, models.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Done:        req.Done,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) handleDeleteTask(c *gin.Context) {
	ownerID := currentUserID(c)
	if ownerID == "" {
		unauthorized(c)
		return
	}

	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), ownerID, taskID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// taskIDParam parses the path id as a UUID. A malformed id can never match a
// row, so it is rejected before touching the store.
func taskIDParam(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", "task id must be a UUID")
		return "", false
	}
	return id.String(), true
}
