package handlers

import (
	"net/http"

	"github.com/udaanx/coldflow/internal/entity"
)

type ActivityHandler struct {
	Activity entity.ActivityRepositoryInterface
}

func NewActivityHandler(activity entity.ActivityRepositoryInterface) *ActivityHandler {
	return &ActivityHandler{Activity: activity}
}

// HandleList returns the audit stream newest-first, no pagination.
func (h *ActivityHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Activity.All(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
