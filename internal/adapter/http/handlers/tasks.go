package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/adapter/http/dto"
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/adapter/http/mapper"
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/adapter/http/middleware"
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/adapter/http/validation"
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/core/domain"
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/core/ports"
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var validationMessages = map[error]string{
	domain.ErrTitleRequired:       apierrors.MsgTitleRequired,
	domain.ErrDescriptionRequired: apierrors.MsgDescriptionRequired,
	domain.ErrTitleEmpty:          apierrors.MsgTitleEmpty,
	domain.ErrDescriptionEmpty:    apierrors.MsgDescriptionEmpty,
	domain.ErrCompletedNotBoolean: apierrors.MsgCompletedNotBoolean,
	domain.ErrPriorityInvalid:     apierrors.MsgPriorityInvalid,
}

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	var filter domain.TaskFilter
	if values, ok := c.GetQueryArray("completed"); ok {
		completed := len(values) == 1 && values[0] == "true"
		filter.Completed = &completed
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := validation.ParseTaskID(c.Param("id"))
	if !ok {
		respondTaskNotFound(c, lang)
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			respondTaskNotFound(c, lang)
			return
		}

		zap.L().Error("failed to get task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ListTasksByPriority(c *gin.Context) {
	lang := middleware.GetLang(c)

	tasks, err := h.taskService.ListTasksByPriority(c.Request.Context(), c.Param("level"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPriorityLevel) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPriorityLevel, lang),
			)
			return
		}

		zap.L().Error("failed to list tasks by priority", zap.String("level", c.Param("level")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	input, ok := bindTaskInput(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		if respondValidationError(c, err, lang) {
			return
		}

		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	input, ok := bindTaskInput(c, lang)
	if !ok {
		return
	}

	taskID, ok := validation.ParseTaskID(c.Param("id"))
	if !ok {
		respondTaskNotFound(c, lang)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			respondTaskNotFound(c, lang)
			return
		}
		if respondValidationError(c, err, lang) {
			return
		}

		zap.L().Error("failed to update task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := validation.ParseTaskID(c.Param("id"))
	if !ok {
		respondTaskNotFound(c, lang)
		return
	}

	task, err := h.taskService.DeleteTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			respondTaskNotFound(c, lang)
			return
		}

		zap.L().Error("failed to delete task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTaskResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgTaskDeleted, lang),
		Task:    mapper.ToTaskItem(task),
	})
}

// bindTaskInput writes a 400 and returns false when the body is not JSON.
func bindTaskInput(c *gin.Context, lang string) (domain.TaskInput, bool) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil && !validation.IsNonObjectPayload(err) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidJSONPayload, lang),
		)
		return domain.TaskInput{}, false
	}

	return validation.BuildTaskInput(raw), true
}

func respondValidationError(c *gin.Context, err error, lang string) bool {
	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		return false
	}

	msgKey, ok := validationMessages[validationErr.Err]
	if !ok {
		return false
	}

	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, msgKey, lang),
	)
	return true
}

func respondTaskNotFound(c *gin.Context, lang string) {
	c.JSON(
		http.StatusNotFound,
		apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
	)
}
