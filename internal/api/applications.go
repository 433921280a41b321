package api

import (
	"net/http"
	"strings"

	"nichenest/board-service/internal/application"
)

// ApplicationsHandler serves the application lifecycle routes.
//
//	GET    /applications       → caller's applications (seeker or employer view)
//	DELETE /applications/{id}  → soft-delete for the caller's party
type ApplicationsHandler struct {
	apps *application.Service
}

// NewApplicationsHandler returns a configured ApplicationsHandler.
func NewApplicationsHandler(apps *application.Service) *ApplicationsHandler {
	return &ApplicationsHandler{apps: apps}
}

// RegisterRoutes mounts the application routes on mux.
func (h *ApplicationsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/applications", h.handleApplications)
	mux.HandleFunc("/applications/", h.handleApplicationAction)
}

func (h *ApplicationsHandler) handleApplications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, role, ok := identity(w, r)
	if !ok {
		return
	}

	apps, err := h.apps.ListFor(r.Context(), userID, role)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonOK(w, map[string]any{"applications": apps})
}

func (h *ApplicationsHandler) handleApplicationAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 {
		jsonError(w, "invalid path", http.StatusNotFound)
		return
	}
	appID := parts[1]

	userID, role, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.apps.Delete(r.Context(), userID, role, appID); err != nil {
		serviceError(w, err)
		return
	}
	jsonOK(w, map[string]string{"message": "Application Deleted."})
}
