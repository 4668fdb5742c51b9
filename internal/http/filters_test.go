package httpx

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pyar/jobboard/internal/domain/model"
)

func TestParseJobFilters(t *testing.T) {
	q := url.Values{}
	q.Set("title", " python ")
	q.Set("location", "Buenos Aires")
	q.Set("seniority", "Senior")
	q.Set("company", "c-1")
	q.Set("remote_work", "remote")
	q.Set("created", "last_week")

	f := ParseJobFilters(q)
	assert.Equal(t, "python", f.Title)
	assert.Equal(t, "Buenos Aires", f.Location)
	assert.Equal(t, "Senior", f.Seniority)
	assert.Equal(t, "c-1", f.CompanyID)
	assert.Equal(t, model.RemoteFilterRemote, f.RemoteWork)
	assert.Equal(t, model.DateBucketLastWeek, f.Created)
}

func TestParseJobFilters_InvalidValuesDropped(t *testing.T) {
	q := url.Values{}
	q.Set("remote_work", "sometimes")
	q.Set("created", "fortnight_ago")

	f := ParseJobFilters(q)
	assert.Equal(t, model.RemoteFilterAny, f.RemoteWork)
	assert.Equal(t, model.DateBucket(""), f.Created)
	assert.True(t, f.IsZero())
}

func TestParseJobFilters_Empty(t *testing.T) {
	f := ParseJobFilters(url.Values{})
	assert.True(t, f.IsZero())
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 1},
		{"0", 1},
		{"-3", 1},
		{"abc", 1},
		{"2", 2},
		{" 7 ", 7},
	}
	for _, tt := range tests {
		q := url.Values{}
		if tt.in != "" {
			q.Set("page", tt.in)
		}
		assert.Equal(t, tt.want, ParsePage(q), "page=%q", tt.in)
	}
}
