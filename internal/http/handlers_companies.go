package httpx

import (
	"net/http"

	"github.com/pyar/jobboard/internal/domain/model"
	"github.com/pyar/jobboard/internal/http/validation"
	"github.com/pyar/jobboard/internal/service"
)

// CompanyHandlers contains the HTTP handlers for companies.
type CompanyHandlers struct {
	Svc *service.CompanyService
}

// companyURL checks the optional URL from the registration payload.
var companyURL = validation.Optional(validation.HTTPSURL("URL", 300))

// List handles GET /api/companies.
func (h *CompanyHandlers) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.Svc.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"companies": companies})
}

// Get handles GET /api/companies/{id}.
func (h *CompanyHandlers) Get(w http.ResponseWriter, r *http.Request) {
	company, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, company)
}

// Create handles POST /api/companies.
func (h *CompanyHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req model.CreateCompanyRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if msg := companyURL(req.URL); msg != "" {
		WriteJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation",
			"fields": map[string]string{"url": msg},
		})
		return
	}
	company, err := h.Svc.Create(r.Context(), session, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, company)
}

// SetRank handles PUT /api/companies/{id}/rank.
func (h *CompanyHandlers) SetRank(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req struct {
		Rank int `json:"rank"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	company, err := h.Svc.SetRank(r.Context(), session, r.PathValue("id"), req.Rank)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, company)
}
