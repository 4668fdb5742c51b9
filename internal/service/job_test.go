package service_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pyar/jobboard/config"
	"github.com/pyar/jobboard/internal/domain/auth"
	"github.com/pyar/jobboard/internal/domain/model"
	apperrors "github.com/pyar/jobboard/internal/errors"
	"github.com/pyar/jobboard/internal/mocks"
	"github.com/pyar/jobboard/internal/service"
	"github.com/pyar/jobboard/internal/testutil"
)

func userSession() *auth.Session {
	return &auth.Session{ID: "sess-1", UserID: "user-1", Email: "user@example.com", Role: auth.RoleUser}
}

func moderatorSession() *auth.Session {
	return &auth.Session{ID: "sess-2", UserID: "mod-1", Email: "mod@example.com", Role: auth.RoleModerator}
}

func guestSession() *auth.Session {
	return &auth.Session{ID: "sess-3", Role: auth.RoleGuest}
}

type jobServiceDeps struct {
	jobs      *mocks.MockJobRepository
	companies *mocks.MockCompanyRepository
	mailer    *mocks.MockMailer
	svc       *service.JobService
}

func newJobService(t *testing.T, opts ...func(*service.JobServiceOptions)) jobServiceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := jobServiceDeps{
		jobs:      mocks.NewMockJobRepository(ctrl),
		companies: mocks.NewMockCompanyRepository(ctrl),
		mailer:    mocks.NewMockMailer(ctrl),
	}
	o := service.JobServiceOptions{
		JobRepo:     deps.jobs,
		CompanyRepo: deps.companies,
		Mailer:      deps.mailer,
		Logger:      slog.Default(),
		Now:         testutil.TestTime,
	}
	for _, fn := range opts {
		fn(&o)
	}
	deps.svc = service.NewJobService(o)
	return deps
}

func TestJobService_Create_SanitizesAndNormalizes(t *testing.T) {
	deps := newJobService(t)

	deps.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *model.CreateJobRequest) (*model.Job, error) {
			assert.Equal(t, "user-1", req.OwnerID)
			assert.NotContains(t, req.Description, "<script>")
			assert.Contains(t, req.Description, "<p>")
			assert.Equal(t, []string{"python", "django"}, req.Tags)
			return &model.Job{ID: "job-1", OwnerID: req.OwnerID, IsActive: true}, nil
		})

	job, err := deps.svc.Create(context.Background(), userSession(), &model.CreateJobRequest{
		Title:       "Dev",
		Description: `<p>Work with us</p><script>alert("x")</script>`,
		Location:    "Buenos Aires",
		Email:       "jobs@example.com",
		Tags:        []string{"Python", " django ", "python"},
	})
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.ID)
}

func TestJobService_Create_GuestForbidden(t *testing.T) {
	deps := newJobService(t)

	_, err := deps.svc.Create(context.Background(), guestSession(), &model.CreateJobRequest{})
	assert.True(t, apperrors.IsForbidden(err))

	_, err = deps.svc.Create(context.Background(), nil, &model.CreateJobRequest{})
	assert.True(t, apperrors.IsForbidden(err))
}

func TestJobService_Create_UnknownCompany(t *testing.T) {
	deps := newJobService(t)
	deps.companies.EXPECT().GetByID(gomock.Any(), "c-404").Return(nil, apperrors.NotFound("company not found"))

	companyID := "c-404"
	_, err := deps.svc.Create(context.Background(), userSession(), &model.CreateJobRequest{
		Title:       "Dev",
		Description: "<p>hi</p>",
		Location:    "BA",
		Email:       "jobs@example.com",
		CompanyID:   &companyID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "company_id", apperrors.GetField(err))
}

func TestJobService_GetByID_InactiveHiddenFromPublic(t *testing.T) {
	deps := newJobService(t)
	inactive := &model.Job{ID: "job-1", OwnerID: "user-1", IsActive: false}
	deps.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(inactive, nil).Times(4)

	// anonymous and unrelated users see a 404
	_, err := deps.svc.GetByID(context.Background(), nil, "job-1")
	assert.True(t, apperrors.IsNotFound(err))

	other := userSession()
	other.UserID = "user-2"
	_, err = deps.svc.GetByID(context.Background(), other, "job-1")
	assert.True(t, apperrors.IsNotFound(err))

	// the owner and moderators still see it
	job, err := deps.svc.GetByID(context.Background(), userSession(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.ID)

	_, err = deps.svc.GetByID(context.Background(), moderatorSession(), "job-1")
	require.NoError(t, err)
}

func TestJobService_Update_OwnerOnly(t *testing.T) {
	deps := newJobService(t)
	job := &model.Job{ID: "job-1", OwnerID: "user-1", IsActive: true}
	deps.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil).Times(3)

	// moderator without ownership cannot edit
	_, err := deps.svc.Update(context.Background(), moderatorSession(), "job-1", model.UpdateJobRequest{
		Title: testutil.StringPtr("new"),
	})
	assert.True(t, apperrors.IsForbidden(err))

	other := userSession()
	other.UserID = "user-2"
	_, err = deps.svc.Update(context.Background(), other, "job-1", model.UpdateJobRequest{
		Title: testutil.StringPtr("new"),
	})
	assert.True(t, apperrors.IsForbidden(err))

	deps.jobs.EXPECT().Update(gomock.Any(), "job-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, req model.UpdateJobRequest) (*model.Job, error) {
			require.NotNil(t, req.Description)
			assert.NotContains(t, *req.Description, "onerror")
			return job, nil
		})
	_, err = deps.svc.Update(context.Background(), userSession(), "job-1", model.UpdateJobRequest{
		Description: testutil.StringPtr(`<p>ok</p><img src=x onerror=alert(1)>`),
	})
	require.NoError(t, err)
}

func TestJobService_Delete_OwnerOnly(t *testing.T) {
	deps := newJobService(t)
	job := &model.Job{ID: "job-1", OwnerID: "user-1"}
	deps.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil).Times(2)

	err := deps.svc.Delete(context.Background(), moderatorSession(), "job-1")
	assert.True(t, apperrors.IsForbidden(err))

	deps.jobs.EXPECT().Delete(gomock.Any(), "job-1").Return(true, nil)
	err = deps.svc.Delete(context.Background(), userSession(), "job-1")
	require.NoError(t, err)
}

func TestJobService_List_Pagination(t *testing.T) {
	deps := newJobService(t, func(o *service.JobServiceOptions) {
		o.Listing = config.ListingConfig{LookbackDays: 60, PageSize: 2, SponsoredLimit: 3, FeedSize: 10}
	})

	now := testutil.TestTime().UTC()
	since := now.AddDate(0, 0, -60)

	deps.jobs.EXPECT().ListSponsored(gomock.Any(), model.JobsListOptions{
		Since: since, Now: now, Limit: 3,
	}).Return([]*model.Job{{ID: "s-1"}}, nil)

	wantOpts := model.JobsListOptions{Since: since, Now: now, Limit: 2, Offset: 2}
	deps.jobs.EXPECT().ListNonSponsored(gomock.Any(), wantOpts).
		Return([]*model.Job{{ID: "j-3"}, {ID: "j-4"}}, nil)
	deps.jobs.EXPECT().CountNonSponsored(gomock.Any(), wantOpts).Return(5, nil)

	page, err := deps.svc.List(context.Background(), model.JobFilters{}, 2)
	require.NoError(t, err)
	assert.Len(t, page.Sponsored, 1)
	assert.Len(t, page.Jobs, 2)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.TotalPage)
}

func TestJobService_List_PageBelowOneDefaultsToFirst(t *testing.T) {
	deps := newJobService(t)
	now := testutil.TestTime().UTC()
	since := now.AddDate(0, 0, -60)

	deps.jobs.EXPECT().ListSponsored(gomock.Any(), gomock.Any()).Return(nil, nil)
	deps.jobs.EXPECT().ListNonSponsored(gomock.Any(), model.JobsListOptions{
		Since: since, Now: now, Limit: 20, Offset: 0,
	}).Return(nil, nil)
	deps.jobs.EXPECT().CountNonSponsored(gomock.Any(), gomock.Any()).Return(0, nil)

	page, err := deps.svc.List(context.Background(), model.JobFilters{}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPage)
	assert.Empty(t, page.Jobs)
}

func TestJobService_Inactivate_ModeratorOnly(t *testing.T) {
	deps := newJobService(t)

	_, err := deps.svc.Inactivate(context.Background(), userSession(), "job-1",
		&model.InactivateJobRequest{Reason: "spam"})
	assert.True(t, apperrors.IsForbidden(err))

	_, err = deps.svc.Inactivate(context.Background(), nil, "job-1",
		&model.InactivateJobRequest{Reason: "spam"})
	assert.True(t, apperrors.IsForbidden(err))
}

func TestJobService_Inactivate_SendsMail(t *testing.T) {
	deps := newJobService(t)
	job := &model.Job{ID: "job-1", Email: "owner@example.com", IsActive: true}

	deps.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	deps.jobs.EXPECT().Inactivate(gomock.Any(), "job-1", gomock.Any()).
		Return(&model.JobInactivation{ID: "rec-1", JobID: "job-1", Reason: "spam"}, nil)
	deps.mailer.EXPECT().
		SendJobInactivated(gomock.Any(), "owner@example.com", gomock.Any(), "spam", "dupe").
		Return(nil)

	got, err := deps.svc.Inactivate(context.Background(), moderatorSession(), "job-1",
		&model.InactivateJobRequest{Reason: "spam", Comment: "dupe", SendEmail: true})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestJobService_Inactivate_MailsCompanyOwner(t *testing.T) {
	deps := newJobService(t)
	companyID := "c-1"
	job := &model.Job{ID: "job-1", Email: "contact@example.com", CompanyID: &companyID, IsActive: true}

	deps.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	deps.jobs.EXPECT().Inactivate(gomock.Any(), "job-1", gomock.Any()).
		Return(&model.JobInactivation{ID: "rec-1", JobID: "job-1", Reason: "spam"}, nil)
	deps.companies.EXPECT().GetByID(gomock.Any(), "c-1").
		Return(&model.Company{ID: "c-1", OwnerEmail: "boss@example.com"}, nil)
	deps.mailer.EXPECT().
		SendJobInactivated(gomock.Any(), "boss@example.com", gomock.Any(), "spam", "").
		Return(nil)

	_, err := deps.svc.Inactivate(context.Background(), moderatorSession(), "job-1",
		&model.InactivateJobRequest{Reason: "spam", SendEmail: true})
	require.NoError(t, err)
}

func TestJobService_Inactivate_MailFailureDoesNotAbort(t *testing.T) {
	deps := newJobService(t)
	job := &model.Job{ID: "job-1", Email: "owner@example.com", IsActive: true}

	deps.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	deps.jobs.EXPECT().Inactivate(gomock.Any(), "job-1", gomock.Any()).
		Return(&model.JobInactivation{ID: "rec-1", JobID: "job-1", Reason: "spam"}, nil)
	deps.mailer.EXPECT().
		SendJobInactivated(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	got, err := deps.svc.Inactivate(context.Background(), moderatorSession(), "job-1",
		&model.InactivateJobRequest{Reason: "spam", SendEmail: true})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestJobService_List_ClassifiesRepoError(t *testing.T) {
	deps := newJobService(t)

	deps.jobs.EXPECT().ListSponsored(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("failed to list sponsored jobs: %w", context.DeadlineExceeded))

	_, err := deps.svc.List(context.Background(), model.JobFilters{}, 1)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeTimeout, apperrors.GetCode(err))
}

func TestJobService_ListInactivations_ModeratorOnly(t *testing.T) {
	deps := newJobService(t)

	_, err := deps.svc.ListInactivations(context.Background(), userSession(), "job-1")
	assert.True(t, apperrors.IsForbidden(err))

	deps.jobs.EXPECT().GetByID(gomock.Any(), "job-1").
		Return(&model.Job{ID: "job-1", IsActive: false}, nil)
	deps.jobs.EXPECT().ListInactivations(gomock.Any(), "job-1").
		Return([]*model.JobInactivation{
			{ID: "rec-2", JobID: "job-1", Reason: "spam"},
			{ID: "rec-1", JobID: "job-1", Reason: "expired"},
		}, nil)

	records, err := deps.svc.ListInactivations(context.Background(), moderatorSession(), "job-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "spam", records[0].Reason)
}

func TestJobService_Inactivate_NoMailWhenNotRequested(t *testing.T) {
	deps := newJobService(t)
	job := &model.Job{ID: "job-1", Email: "owner@example.com", IsActive: true}

	deps.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	deps.jobs.EXPECT().Inactivate(gomock.Any(), "job-1", gomock.Any()).
		Return(&model.JobInactivation{ID: "rec-1", JobID: "job-1", Reason: "spam"}, nil)

	_, err := deps.svc.Inactivate(context.Background(), moderatorSession(), "job-1",
		&model.InactivateJobRequest{Reason: "spam", SendEmail: false})
	require.NoError(t, err)
}
