package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/adapter/http/mapper"
	"tasklist/internal/adapter/http/middleware"
	"tasklist/internal/adapter/http/validation"
	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
	"tasklist/pkg/apierrors"
)

type ProjectHandler struct {
	taskService ports.TaskService
}

func NewProjectHandler(taskService ports.TaskService) *ProjectHandler {
	return &ProjectHandler{taskService: taskService}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToProjectItems(h.taskService.AllProjects()))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, err)
		return
	}

	name, err := validation.ProjectName(req)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, err)
		return
	}

	h.taskService.AddProject(name)
	zap.L().Debug("project created", zap.String("project", name))

	c.JSON(http.StatusCreated, mapper.ToProjectItem(domain.Project{Name: name}))
}

func (h *ProjectHandler) CreateTask(c *gin.Context) {
	project := c.Param("project")

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, err)
		return
	}

	description, err := validation.TaskDescription(req)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, err)
		return
	}

	task, ok := h.taskService.CreateTask(project, description)
	if !ok {
		abortWithError(c, http.StatusNotFound, apierrors.MsgProjectNotFound, domain.ErrUnknownProject)
		return
	}
	zap.L().Debug("task created", zap.String("project", project), zap.Int64("task_id", task.ID))

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *ProjectHandler) UpdateDeadline(c *gin.Context) {
	project := c.Param("project")

	taskID, err := validation.TaskID(c.Param("taskId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID, err)
		return
	}

	deadline, err := validation.Deadline(c.Query("deadline"))
	if err != nil {
		msgKey := apierrors.MsgInvalidDeadline
		if errors.Is(err, domain.ErrInvalidInput) {
			msgKey = apierrors.MsgMissingDeadline
		}
		abortWithError(c, http.StatusBadRequest, msgKey, err)
		return
	}

	if !h.taskService.SetProjectTaskDeadline(project, taskID, deadline) {
		// Either the project is unknown or the task lives in another project.
		abortWithError(c, http.StatusNotFound, apierrors.MsgTaskNotFound, domain.ErrUnknownTask)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) CheckTask(c *gin.Context) {
	h.setDone(c, true)
}

func (h *ProjectHandler) UncheckTask(c *gin.Context) {
	h.setDone(c, false)
}

func (h *ProjectHandler) ViewByDeadline(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToDeadlineGroupItems(h.taskService.ViewByDeadlineGroups()))
}

func (h *ProjectHandler) DueToday(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToProjectItems(h.taskService.TasksDueToday()))
}

func (h *ProjectHandler) setDone(c *gin.Context, done bool) {
	taskID, err := validation.TaskID(c.Param("taskId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID, err)
		return
	}

	if !h.taskService.SetProjectTaskDone(c.Param("project"), taskID, done) {
		abortWithError(c, http.StatusNotFound, apierrors.MsgTaskNotFound, domain.ErrUnknownTask)
		return
	}

	c.Status(http.StatusNoContent)
}

// abortWithError records err on the context for the request logger.
func abortWithError(c *gin.Context, code int, msgKey string, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(code, apierrors.CreateError(code, msgKey, middleware.GetLang(c)))
}
