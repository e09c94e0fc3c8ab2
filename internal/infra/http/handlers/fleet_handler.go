package handlers

import (
	"net/http"

	"github.com/udaanx/coldflow/internal/entity"
)

type FleetHandler struct {
	Accounts entity.AccountRepositoryInterface
}

func NewFleetHandler(accounts entity.AccountRepositoryInterface) *FleetHandler {
	return &FleetHandler{Accounts: accounts}
}

// HandleList returns the sender roster. First call on a fresh store
// provisions the seed fleet.
func (h *FleetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	fleet, err := h.Accounts.Fleet(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fleet)
}
