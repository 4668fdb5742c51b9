package service

import (
	"errors"

	"github.com/pyar/jobboard/internal/data"
	apperrors "github.com/pyar/jobboard/internal/errors"
)

// mapRepoErr translates repository sentinels into application errors so the
// transport layer only has to understand AppError codes.
func mapRepoErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, data.ErrJobNotFound):
		return apperrors.NotFound("job not found")
	case errors.Is(err, data.ErrCompanyNotFound):
		return apperrors.NotFound("company not found")
	}
	// Anything else goes through the database classification so constraint
	// violations surface as conflict/validation instead of opaque 500s.
	return apperrors.MapDBError(err)
}
