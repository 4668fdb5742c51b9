package httpx

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pyar/jobboard/internal/domain/model"
)

// ParseJobFilters builds the listing filters from query parameters. Invalid
// values are dropped silently so a mangled link still renders the listing.
func ParseJobFilters(q url.Values) model.JobFilters {
	f := model.JobFilters{
		Title:     strings.TrimSpace(q.Get("title")),
		Location:  strings.TrimSpace(q.Get("location")),
		Seniority: strings.TrimSpace(q.Get("seniority")),
		CompanyID: strings.TrimSpace(q.Get("company")),
	}

	switch strings.ToLower(strings.TrimSpace(q.Get("remote_work"))) {
	case "remote":
		f.RemoteWork = model.RemoteFilterRemote
	case "onsite":
		f.RemoteWork = model.RemoteFilterOnsite
	}

	if bucket := model.DateBucket(strings.TrimSpace(q.Get("created"))); bucket.Valid() {
		f.Created = bucket
	}

	return f
}

// ParsePage reads the page query parameter. Missing or invalid values
// default to the first page.
func ParsePage(q url.Values) int {
	page, err := strconv.Atoi(strings.TrimSpace(q.Get("page")))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
