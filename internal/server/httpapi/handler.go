// Package httpapi exposes the REST surface of the service and hosts the
// authentication gate. Handlers never inspect tokens themselves; the only
// way for them to learn the caller's identity is the value the gate stores
// in the request context.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/gin-gonic/gin"
)

// UserService is the slice of the user service the transport needs.
type UserService interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// TaskService is the slice of the task service the transport needs.
type TaskService interface {
	List(ctx context.Context, ownerID string) ([]*models.Task, error)
	Create(ctx context.Context, ownerID, title string, description *string) (*models.Task, error)
	Update(ctx context.Context, ownerID, taskID string, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
}

type Handler struct {
	users  UserService
	tasks  TaskService
	tokens *auth.TokenService
	logger logging.Logger
}

func NewHandler(users UserService, tasks TaskService, tokens *auth.TokenService, logger logging.Logger) *Handler {
	return &Handler{
		users:  users,
		tasks:  tasks,
		tokens: tokens,
		logger: logger.With("module", "httpapi"),
	}
}

// Routes builds the gin engine with the public auth endpoints and the
// token-protected task endpoints.
func (h *Handler) Routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.handleRegister)
		authGroup.POST("/login", h.handleLogin)
	}

	taskGroup := router.Group("/tasks")
	taskGroup.Use(h.authRequired())
	{
		taskGroup.GET("", h.handleListTasks)
		taskGroup.POST("", h.handleCreateTask)
		taskGroup.PUT("/:id", h.handleUpdateTask)
		taskGroup.DELETE("/:id", h.handleDeleteTask)
	}

	return router
}

type errorResponse struct {
	Error responseError `json:"error"`
}

type responseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: responseError{Code: code, Message: message}})
}

// writeServiceError maps the closed error taxonomy onto HTTP statuses.
// Everything unmatched is an internal error and its text never reaches the
// caller.
func (h *Handler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorInvalidCredentials):
		writeError(c, http.StatusUnauthorized, "invalid_credentials", common.ErrorInvalidCredentials.Error())
	case errors.Is(err, common.ErrInvalidToken):
		writeError(c, http.StatusUnauthorized, "unauthorized", "invalid or missing token")
	case errors.Is(err, common.ErrorNotFound):
		writeError(c, http.StatusNotFound, "not_found", "task not found")
	case errors.Is(err, common.ErrorValidation):
		writeError(c, http.StatusBadRequest, "invalid_request", "invalid request")
	default:
		h.logger.Error(c.Request.Context(), "request failed", "error", err.Error())
		writeError(c, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
