package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pyar/jobboard/internal/domain/model"
	apperrors "github.com/pyar/jobboard/internal/errors"
	"github.com/pyar/jobboard/internal/mocks"
	"github.com/pyar/jobboard/internal/service"
)

func newCompanyService(t *testing.T) (*mocks.MockCompanyRepository, *service.CompanyService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCompanyRepository(ctrl)
	svc := service.NewCompanyService(service.CompanyServiceOptions{CompanyRepo: repo})
	return repo, svc
}

func TestCompanyService_Create(t *testing.T) {
	repo, svc := newCompanyService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *model.CreateCompanyRequest) (*model.Company, error) {
			assert.Equal(t, "user-1", req.OwnerID)
			assert.Equal(t, "user@example.com", req.OwnerEmail)
			assert.Zero(t, req.Rank)
			return &model.Company{ID: "c-1", Name: req.Name}, nil
		})

	company, err := svc.Create(context.Background(), userSession(), &model.CreateCompanyRequest{
		Name: "Acme",
		Rank: 5, // ignored
	})
	require.NoError(t, err)
	assert.Equal(t, "c-1", company.ID)
}

func TestCompanyService_Create_GuestForbidden(t *testing.T) {
	_, svc := newCompanyService(t)

	_, err := svc.Create(context.Background(), guestSession(), &model.CreateCompanyRequest{Name: "Acme"})
	assert.True(t, apperrors.IsForbidden(err))
}

func TestCompanyService_Create_DuplicateNameIsConflict(t *testing.T) {
	repo, svc := newCompanyService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil,
		fmt.Errorf("failed to create company: %w", &pgconn.PgError{
			Code:   pgerrcode.UniqueViolation,
			Detail: "Key (name)=(Acme) already exists.",
		}))

	_, err := svc.Create(context.Background(), userSession(), &model.CreateCompanyRequest{Name: "Acme"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "name", apperrors.GetField(err))
}

func TestCompanyService_SetRank_ModeratorOnly(t *testing.T) {
	repo, svc := newCompanyService(t)

	_, err := svc.SetRank(context.Background(), userSession(), "c-1", 2)
	assert.True(t, apperrors.IsForbidden(err))

	_, err = svc.SetRank(context.Background(), moderatorSession(), "c-1", -1)
	assert.True(t, apperrors.IsValidation(err))

	repo.EXPECT().SetRank(gomock.Any(), "c-1", 2).Return(&model.Company{ID: "c-1", Rank: 2}, nil)
	company, err := svc.SetRank(context.Background(), moderatorSession(), "c-1", 2)
	require.NoError(t, err)
	assert.True(t, company.Sponsored())
}

func TestCompanyService_List(t *testing.T) {
	repo, svc := newCompanyService(t)
	repo.EXPECT().List(gomock.Any()).Return([]*model.Company{{ID: "c-1"}, {ID: "c-2"}}, nil)

	companies, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, companies, 2)
}
