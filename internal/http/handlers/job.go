package handlers

import (
	"net/http"

	"hirewire/internal/app"
	"hirewire/internal/domain/job"
	"hirewire/internal/http/middleware"
	"hirewire/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type jobRequest struct {
	Title           string `json:"title"`
	CompanyName     string `json:"company_name"`
	Department      string `json:"department"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	Type            string `json:"type"`
	Workplace       string `json:"workplace"`
	JobLevel        string `json:"job_level"`
	MaxResponseTime string `json:"max_response_time"`
	MinSalary       int64  `json:"min_salary"`
	MaxSalary       int64  `json:"max_salary"`
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	employerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), job.Job{
		PostedBy:        employerID,
		Title:           req.Title,
		CompanyName:     req.CompanyName,
		Department:      req.Department,
		Description:     req.Description,
		Location:        req.Location,
		Type:            req.Type,
		Workplace:       req.Workplace,
		JobLevel:        req.JobLevel,
		MaxResponseTime: req.MaxResponseTime,
		MinSalary:       req.MinSalary,
		MaxSalary:       req.MaxSalary,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"job": created})
}

func (h *JobHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	items, err := h.jobs.ListPublic(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"jobs": items})
}

func (h *JobHandler) ListEmployer(w http.ResponseWriter, r *http.Request) {
	employerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.jobs.ListByEmployer(r.Context(), employerID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"jobs": items})
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	details, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"job": details})
}

func (h *JobHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	employerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	summary, err := h.jobs.Dashboard(r.Context(), employerID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, summary)
}
