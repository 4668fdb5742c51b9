package httpx

import (
	"net/http"

	"github.com/pyar/jobboard/internal/service"
)

// FeedHandlers contains the HTTP handlers for the syndication feed.
type FeedHandlers struct {
	Svc *service.FeedService
}

// RSS handles GET /feed/jobs.
func (h *FeedHandlers) RSS(w http.ResponseWriter, r *http.Request) {
	rss, err := h.Svc.RenderRSS(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(rss)); err != nil {
		return
	}
}
