package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TrackActivityHandler is a stub callback target for the automation
// workflow. It acknowledges every event; nothing is persisted here.
type TrackActivityHandler struct{}

func NewTrackActivityHandler() *TrackActivityHandler {
	return &TrackActivityHandler{}
}

type trackActivityRequest struct {
	Action   string                 `json:"action"`
	From     string                 `json:"from"`
	To       string                 `json:"to"`
	Subject  string                 `json:"subject"`
	BatchID  string                 `json:"batch_id"`
	LeadID   string                 `json:"lead_id"`
	Metadata map[string]interface{} `json:"metadata"`
}

type trackActivityResponse struct {
	Success    bool   `json:"success"`
	ActivityID string `json:"activity_id"`
	Message    string `json:"message"`
}

func (h *TrackActivityHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req trackActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	// Developer trace only, recipient truncated
	to := req.To
	if len(to) > 20 {
		to = to[:20] + "..."
	}
	log.Printf("📥 [TRACK-ACTIVITY] action=%s from=%s to=%s batch=%s", req.Action, req.From, to, req.BatchID)

	activityID := fmt.Sprintf("act_%d_%s",
		time.Now().UnixMilli(),
		strings.ReplaceAll(uuid.New().String(), "-", "")[:9],
	)

	writeJSON(w, http.StatusOK, trackActivityResponse{
		Success:    true,
		ActivityID: activityID,
		Message:    "Activity logged successfully",
	})
}
