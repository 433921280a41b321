package api

import (
	"encoding/json"
	"net/http"

	"nichenest/board-service/internal/model"
	"nichenest/board-service/internal/seeker"
)

// SeekersHandler serves the seeker profile routes the matcher depends on.
//
//	PUT /profile/niches → replace the caller's three declared niches
type SeekersHandler struct {
	seekers *seeker.Service
}

// NewSeekersHandler returns a configured SeekersHandler.
func NewSeekersHandler(seekers *seeker.Service) *SeekersHandler {
	return &SeekersHandler{seekers: seekers}
}

// RegisterRoutes mounts the profile routes on mux.
func (h *SeekersHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/profile/niches", h.updateNiches)
}

func (h *SeekersHandler) updateNiches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, role, ok := identity(w, r)
	if !ok {
		return
	}
	if role != model.RoleJobSeeker {
		jsonError(w, "only job seekers declare niches", http.StatusForbidden)
		return
	}

	var req seeker.NichesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := h.seekers.UpdateNiches(r.Context(), userID, req); err != nil {
		serviceError(w, err)
		return
	}
	jsonOK(w, map[string]string{"message": "Niches updated."})
}
