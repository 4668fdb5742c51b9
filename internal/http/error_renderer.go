package httpx

import (
	"net/http"

	apperrors "github.com/pyar/jobboard/internal/errors"
)

// WriteAppError maps an application error to the right HTTP status and writes
// the JSON error body. Unknown errors become a 500 without leaking details.
func WriteAppError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	status, ok := statusForCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	p := ErrorParams{Code: status, ErrCode: string(code), Err: err, Field: apperrors.GetField(err)}
	if status == http.StatusInternalServerError {
		p.Err = errInternal{}
	}
	WriteError(w, p)
}

var statusForCode = map[apperrors.ErrorCode]int{
	apperrors.ErrCodeNotFound:   http.StatusNotFound,
	apperrors.ErrCodeConflict:   http.StatusConflict,
	apperrors.ErrCodeValidation: http.StatusBadRequest,
	apperrors.ErrCodeForbidden:  http.StatusForbidden,
	apperrors.ErrCodeForeignKey: http.StatusConflict,
	apperrors.ErrCodeTimeout:    http.StatusGatewayTimeout,
	apperrors.ErrCodeCanceled:   499,
	apperrors.ErrCodeInternal:   http.StatusInternalServerError,
}

type errInternal struct{}

func (errInternal) Error() string { return "internal server error" }
