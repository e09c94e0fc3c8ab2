package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/udaanx/coldflow/internal/entity"
)

type SettingsHandler struct {
	Settings entity.SettingsRepositoryInterface
}

func NewSettingsHandler(settings entity.SettingsRepositoryInterface) *SettingsHandler {
	return &SettingsHandler{Settings: settings}
}

func (h *SettingsHandler) HandleGetWebhook(w http.ResponseWriter, r *http.Request) {
	url, err := h.Settings.WebhookURL(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entity.WebhookConfig{URL: url})
}

// HandleSaveWebhook persists the gateway URL. Called on explicit save
// only, the dashboard never writes keystroke by keystroke.
func (h *SettingsHandler) HandleSaveWebhook(w http.ResponseWriter, r *http.Request) {
	var cfg entity.WebhookConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.Settings.SaveWebhookURL(r.Context(), cfg.URL); err != nil {
		writeUseCaseError(w, err)
		return
	}

	log.Printf("✅ Automation gateway updated")
	writeJSON(w, http.StatusOK, cfg)
}
