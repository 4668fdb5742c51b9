package httpx

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/pyar/jobboard/internal/domain/model"
	"github.com/pyar/jobboard/internal/http/validation"
	"github.com/pyar/jobboard/internal/service"
)

// JobHandlers contains the HTTP handlers for job postings.
type JobHandlers struct {
	Svc    *service.JobService
	Logger *slog.Logger
}

// jobsListResponse is the listing payload: the page plus an echo of the
// filters that were actually applied.
type jobsListResponse struct {
	*service.JobsPage
	Filters model.JobFilters `json:"filters"`
}

// List handles GET /api/jobs.
func (h *JobHandlers) List(w http.ResponseWriter, r *http.Request) {
	filters := ParseJobFilters(r.URL.Query())
	page := ParsePage(r.URL.Query())

	result, err := h.Svc.List(r.Context(), filters, page)
	if err != nil {
		h.logError(r, "list jobs", err)
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, jobsListResponse{JobsPage: result, Filters: filters})
}

// Get handles GET /api/jobs/{id}.
func (h *JobHandlers) Get(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	job, err := h.Svc.GetByID(r.Context(), session, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// Create handles POST /api/jobs. JSON bodies get a JSON response; HTML form
// submissions get a 303 redirect to the created posting.
func (h *JobHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	if isFormRequest(r) {
		h.createFromForm(w, r)
		return
	}

	var req model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	job, err := h.Svc.Create(r.Context(), session, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, job)
}

func (h *JobHandlers) createFromForm(w http.ResponseWriter, r *http.Request) {
	req, fieldErrors := parseJobForm(r)
	if len(fieldErrors) > 0 {
		WriteJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation",
			"fields": fieldErrors,
		})
		return
	}

	session := GetSessionFromContext(r.Context())
	job, err := h.Svc.Create(r.Context(), session, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	http.Redirect(w, r, "/api/jobs/"+job.ID, http.StatusSeeOther)
}

// Update handles PUT /api/jobs/{id}.
func (h *JobHandlers) Update(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req model.UpdateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	job, err := h.Svc.Update(r.Context(), session, r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// Delete handles DELETE /api/jobs/{id}.
func (h *JobHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	if err := h.Svc.Delete(r.Context(), session, r.PathValue("id")); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Inactivate handles POST /api/jobs/{id}/inactivate.
func (h *JobHandlers) Inactivate(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req model.InactivateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	job, err := h.Svc.Inactivate(r.Context(), session, r.PathValue("id"), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// Inactivations handles GET /api/jobs/{id}/inactivations.
func (h *JobHandlers) Inactivations(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	records, err := h.Svc.ListInactivations(r.Context(), session, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"inactivations": records})
}

func (h *JobHandlers) logError(r *http.Request, msg string, err error) {
	if h.Logger != nil {
		h.Logger.ErrorContext(r.Context(), msg, "path", r.URL.Path, "err", err)
	}
}

func isFormRequest(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data")
}

// parseJobForm validates and converts a browser form submission.
func parseJobForm(r *http.Request) (*model.CreateJobRequest, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return nil, map[string]string{"form": "could not parse form data"}
	}

	fieldErrors := map[string]string{}
	check := func(field string, v validation.Validator) string {
		value := r.PostFormValue(field)
		if msg := v(value); msg != "" {
			fieldErrors[field] = msg
		}
		return strings.TrimSpace(value)
	}

	req := &model.CreateJobRequest{
		Title:       check("title", validation.Required("Title", 200)),
		Description: check("description", validation.Required("Description", 10000)),
		Location:    check("location", validation.Required("Location", 200)),
		Email:       check("email", validation.Email("Email")),
		Seniority:   strings.TrimSpace(r.PostFormValue("seniority")),
		RemoteWork:  r.PostFormValue("remote_work") == "on" || r.PostFormValue("remote_work") == "true",
		Tags:        model.SplitTags(r.PostFormValue("tags")),
	}
	if company := strings.TrimSpace(r.PostFormValue("company")); company != "" {
		req.CompanyID = &company
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return req, nil
}
