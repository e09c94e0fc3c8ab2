package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/udaanx/coldflow/internal/entity"
)

type HealthHandler struct {
	Settings  entity.SettingsRepositoryInterface
	Batches   entity.BatchRepositoryInterface
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(settings entity.SettingsRepositoryInterface, batches entity.BatchRepositoryInterface) *HealthHandler {
	return &HealthHandler{
		Settings:  settings,
		Batches:   batches,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	// Check the local store through a real read
	if _, err := h.Batches.All(r.Context()); err != nil {
		deps["store"] = fmt.Sprintf("unhealthy: %v", err)
	} else {
		deps["store"] = "healthy"
	}

	// Check the automation gateway config
	if url, err := h.Settings.WebhookURL(r.Context()); err != nil {
		deps["webhook"] = fmt.Sprintf("unhealthy: %v", err)
	} else if url == "" {
		deps["webhook"] = "not configured"
	} else {
		deps["webhook"] = "configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	uptime := time.Since(h.StartTime).Round(time.Second).String()

	response := HealthResponse{
		Status:       status,
		Version:      "2.5.0",
		Uptime:       uptime,
		Dependencies: deps,
	}

	if status == "degraded" {
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
