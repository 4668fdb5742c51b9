package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pyar/jobboard/internal/domain/model"
)

func TestJobRoutes_List(t *testing.T) {
	deps := newTestRouter(t)

	deps.jobs.EXPECT().ListSponsored(gomock.Any(), gomock.Any()).
		Return([]*model.Job{{ID: "s-1", Title: "Sponsored Dev"}}, nil)
	deps.jobs.EXPECT().ListNonSponsored(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, opts model.JobsListOptions) ([]*model.Job, error) {
			assert.Equal(t, "python", opts.Filters.Title)
			assert.Equal(t, 20, opts.Limit)
			assert.Equal(t, 20, opts.Offset)
			return []*model.Job{{ID: "j-1", Title: "Python Dev"}}, nil
		})
	deps.jobs.EXPECT().CountNonSponsored(gomock.Any(), gomock.Any()).Return(21, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs?title=python&page=2&created=bogus", nil)
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Sponsored []model.Job      `json:"sponsored"`
		Jobs      []model.Job      `json:"jobs"`
		Page      int              `json:"page"`
		Total     int              `json:"total"`
		TotalPage int              `json:"total_pages"`
		Filters   model.JobFilters `json:"filters"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Sponsored, 1)
	assert.Len(t, body.Jobs, 1)
	assert.Equal(t, 2, body.Page)
	assert.Equal(t, 21, body.Total)
	assert.Equal(t, 2, body.TotalPage)
	// applied filters are echoed; the invalid date bucket is not
	assert.Equal(t, "python", body.Filters.Title)
	assert.Empty(t, body.Filters.Created)
}

func TestJobRoutes_Get(t *testing.T) {
	deps := newTestRouter(t)
	deps.jobs.EXPECT().GetByID(gomock.Any(), "j-1").
		Return(&model.Job{ID: "j-1", Title: "Dev", IsActive: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/j-1", nil)
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var job model.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "j-1", job.ID)
}

func TestJobRoutes_Get_InactiveHiddenFromAnonymous(t *testing.T) {
	deps := newTestRouter(t)
	deps.jobs.EXPECT().GetByID(gomock.Any(), "j-1").
		Return(&model.Job{ID: "j-1", OwnerID: "user-1", IsActive: false}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/j-1", nil)
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobRoutes_Create_JSON(t *testing.T) {
	deps := newTestRouter(t)
	deps.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req *model.CreateJobRequest) (*model.Job, error) {
			assert.Equal(t, "user-1", req.OwnerID)
			return &model.Job{ID: "j-1", Title: req.Title, OwnerID: req.OwnerID, IsActive: true}, nil
		})

	body := `{"title":"Dev","description":"<p>desc</p>","location":"BA","email":"jobs@example.com"}`
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(body)), "user-token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var job model.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "j-1", job.ID)
}

func TestJobRoutes_Create_RequiresAuth(t *testing.T) {
	deps := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJobRoutes_Create_FormRedirects(t *testing.T) {
	deps := newTestRouter(t)
	deps.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req *model.CreateJobRequest) (*model.Job, error) {
			assert.Equal(t, []string{"python", "django"}, req.Tags)
			assert.True(t, req.RemoteWork)
			return &model.Job{ID: "j-9", Title: req.Title}, nil
		})

	form := url.Values{}
	form.Set("title", "Backend Dev")
	form.Set("description", "<p>long enough description</p>")
	form.Set("location", "Buenos Aires")
	form.Set("email", "jobs@example.com")
	form.Set("tags", "Python, django, python")
	form.Set("remote_work", "on")

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(form.Encode())), "user-token")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/api/jobs/j-9", rec.Header().Get("Location"))
}

func TestJobRoutes_Create_FormValidation(t *testing.T) {
	deps := newTestRouter(t)

	form := url.Values{}
	form.Set("title", "")
	form.Set("email", "not-an-email")

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(form.Encode())), "user-token")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Fields, "title")
	assert.Contains(t, body.Fields, "email")
}

func TestJobRoutes_Update_OwnerOnly(t *testing.T) {
	deps := newTestRouter(t)
	job := &model.Job{ID: "j-1", OwnerID: "user-1", IsActive: true}
	deps.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(job, nil).Times(2)

	body := `{"title":"New Title"}`

	// a different user is rejected
	req := withSession(httptest.NewRequest(http.MethodPut, "/api/jobs/j-1", strings.NewReader(body)), "other-token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// the owner succeeds
	deps.jobs.EXPECT().Update(gomock.Any(), "j-1", gomock.Any()).
		Return(&model.Job{ID: "j-1", Title: "New Title", OwnerID: "user-1"}, nil)
	req = withSession(httptest.NewRequest(http.MethodPut, "/api/jobs/j-1", strings.NewReader(body)), "user-token")
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJobRoutes_Delete(t *testing.T) {
	deps := newTestRouter(t)
	deps.jobs.EXPECT().GetByID(gomock.Any(), "j-1").
		Return(&model.Job{ID: "j-1", OwnerID: "user-1"}, nil)
	deps.jobs.EXPECT().Delete(gomock.Any(), "j-1").Return(true, nil)

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/jobs/j-1", nil), "user-token")
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestJobRoutes_Inactivate_ModeratorOnly(t *testing.T) {
	deps := newTestRouter(t)
	body := `{"reason":"spam","send_email":false}`

	// plain user blocked by the role middleware
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/jobs/j-1/inactivate", strings.NewReader(body)), "user-token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// anonymous gets a 401
	req = httptest.NewRequest(http.MethodPost, "/api/jobs/j-1/inactivate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// moderator succeeds
	deps.jobs.EXPECT().GetByID(gomock.Any(), "j-1").
		Return(&model.Job{ID: "j-1", Email: "owner@example.com", IsActive: true}, nil)
	deps.jobs.EXPECT().Inactivate(gomock.Any(), "j-1", gomock.Any()).
		Return(&model.JobInactivation{ID: "rec-1", JobID: "j-1", Reason: "spam"}, nil)

	req = withSession(httptest.NewRequest(http.MethodPost, "/api/jobs/j-1/inactivate", strings.NewReader(body)), "mod-token")
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var job model.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.False(t, job.IsActive)
}

func TestJobRoutes_Inactivations_ModeratorOnly(t *testing.T) {
	deps := newTestRouter(t)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/jobs/j-1/inactivations", nil), "user-token")
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	deps.jobs.EXPECT().GetByID(gomock.Any(), "j-1").
		Return(&model.Job{ID: "j-1", IsActive: false}, nil)
	deps.jobs.EXPECT().ListInactivations(gomock.Any(), "j-1").
		Return([]*model.JobInactivation{{ID: "rec-1", JobID: "j-1", Reason: "spam"}}, nil)

	req = withSession(httptest.NewRequest(http.MethodGet, "/api/jobs/j-1/inactivations", nil), "mod-token")
	rec = httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Inactivations []model.JobInactivation `json:"inactivations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Inactivations, 1)
	assert.Equal(t, "spam", body.Inactivations[0].Reason)
}
