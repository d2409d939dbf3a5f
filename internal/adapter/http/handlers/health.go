package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	StatusOk             = "ok"
	StatusDown           = "down"
	healthStorageTimeout = 2 * time.Second
)

// StoragePinger is implemented by storage backends that can report liveness.
type StoragePinger interface {
	Ping(ctx context.Context) error
}

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Storage string `json:"storage"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	storage StoragePinger
}

func NewHealthHandler(storage StoragePinger) *HealthHandler {
	return &HealthHandler{storage: storage}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if !h.checkStorage(c.Request.Context()) {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format(time.DateTime),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	storageStatus := StatusDown
	if h.checkStorage(c.Request.Context()) {
		storageStatus = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format(time.DateTime),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Storage: storageStatus,
		},
	})
}

func (h *HealthHandler) checkStorage(ctx context.Context) bool {
	if h.storage == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthStorageTimeout)
	defer cancel()
	return h.storage.Ping(timeoutCtx) == nil
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
