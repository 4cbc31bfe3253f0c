package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tasklist/internal/adapter/http/middleware"
	"tasklist/internal/config"
	"tasklist/internal/core/ports"
)

const (
	StatusOk = "ok"
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthStore struct {
	Projects int `json:"projects"`
	Tasks    int `json:"tasks"`
}

type HealthAdvanced struct {
	AppName           string      `json:"app_name"`
	AppVersion        string      `json:"app_version"`
	CurrentSystemTime string      `json:"current_system_time"`
	Language          string      `json:"language"`
	Store             HealthStore `json:"store"`
}

type HealthHandler struct {
	cfg         *config.Config
	taskService ports.TaskService
}

func NewHealthHandler(cfg *config.Config, taskService ports.TaskService) *HealthHandler {
	return &HealthHandler{cfg: cfg, taskService: taskService}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthBasic{
		AppName:           h.cfg.AppName,
		AppVersion:        h.cfg.AppVersion,
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           StatusOk,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	stats := h.taskService.Stats()

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           h.cfg.AppName,
		AppVersion:        h.cfg.AppVersion,
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Store: HealthStore{
			Projects: stats.Projects,
			Tasks:    stats.Tasks,
		},
	})
}
