package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"nichenest/board-service/internal/application"
	"nichenest/board-service/internal/job"
	"nichenest/board-service/internal/model"
)

// JobsHandler serves the posting routes.
//
//	GET    /jobs                → public posting search (city, niche, searchKeyword)
//	POST   /jobs                → create posting (employer)
//	GET    /jobs/mine           → employer's own postings
//	GET    /jobs/{id}           → single posting
//	DELETE /jobs/{id}           → delete posting (owner only)
//	POST   /jobs/{id}/apply     → submit application (seeker)
type JobsHandler struct {
	jobs *job.Service
	apps *application.Service
}

// NewJobsHandler returns a configured JobsHandler.
func NewJobsHandler(jobs *job.Service, apps *application.Service) *JobsHandler {
	return &JobsHandler{jobs: jobs, apps: apps}
}

// RegisterRoutes mounts the posting routes on mux.
func (h *JobsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/jobs", h.handleJobs)
	mux.HandleFunc("/jobs/", h.handleJobAction)
}

func (h *JobsHandler) handleJobs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.searchJobs(w, r)
	case http.MethodPost:
		h.postJob(w, r)
	default:
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleJobAction dispatches /jobs/{id}, /jobs/mine and /jobs/{id}/apply.
func (h *JobsHandler) handleJobAction(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 2 && parts[1] == "mine":
		h.myJobs(w, r)
	case len(parts) == 2:
		switch r.Method {
		case http.MethodGet:
			h.getJob(w, r, parts[1])
		case http.MethodDelete:
			h.deleteJob(w, r, parts[1])
		default:
			jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	case len(parts) == 3 && parts[2] == "apply":
		h.apply(w, r, parts[1])
	default:
		jsonError(w, "invalid path", http.StatusNotFound)
	}
}

func (h *JobsHandler) searchJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	jobs, err := h.jobs.Search(r.Context(), job.SearchFilter{
		City:    q.Get("city"),
		Niche:   q.Get("niche"),
		Keyword: q.Get("searchKeyword"),
	})
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonOK(w, map[string]any{"jobs": jobs, "count": len(jobs)})
}

func (h *JobsHandler) postJob(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := identity(w, r)
	if !ok {
		return
	}
	if role != model.RoleEmployer {
		jsonError(w, "only employers may post jobs", http.StatusForbidden)
		return
	}

	var req job.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	j, err := h.jobs.Post(r.Context(), userID, req)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonCreated(w, j)
}

func (h *JobsHandler) myJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, role, ok := identity(w, r)
	if !ok {
		return
	}
	if role != model.RoleEmployer {
		jsonError(w, "only employers have posted jobs", http.StatusForbidden)
		return
	}

	jobs, err := h.jobs.Mine(r.Context(), userID)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonOK(w, map[string]any{"myJobs": jobs})
}

func (h *JobsHandler) getJob(w http.ResponseWriter, r *http.Request, jobID string) {
	j, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonOK(w, j)
}

func (h *JobsHandler) deleteJob(w http.ResponseWriter, r *http.Request, jobID string) {
	userID, role, ok := identity(w, r)
	if !ok {
		return
	}
	if role != model.RoleEmployer {
		jsonError(w, "only employers may delete jobs", http.StatusForbidden)
		return
	}

	if err := h.jobs.Delete(r.Context(), jobID, userID); err != nil {
		serviceError(w, err)
		return
	}
	jsonOK(w, map[string]string{"message": "Job deleted."})
}

func (h *JobsHandler) apply(w http.ResponseWriter, r *http.Request, jobID string) {
	if r.Method != http.MethodPost {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, role, ok := identity(w, r)
	if !ok {
		return
	}
	if role != model.RoleJobSeeker {
		jsonError(w, "only job seekers may apply", http.StatusForbidden)
		return
	}

	var req application.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	app, err := h.apps.Submit(r.Context(), userID, jobID, req)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonCreated(w, map[string]any{"message": "Application submitted.", "application": app})
}
