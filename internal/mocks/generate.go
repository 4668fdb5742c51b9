// Package mocks provides mock implementations for testing the job board services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the
// repository and adapter interfaces defined in internal/service.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	mockRepo := mocks.NewMockJobRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(job, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=job_repository_mock.go github.com/pyar/jobboard/internal/service JobRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=company_repository_mock.go github.com/pyar/jobboard/internal/service CompanyRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=mailer_mock.go github.com/pyar/jobboard/internal/service Mailer
