package httperr

import (
	"context"
	"errors"
	"net/http"

	"salon-reserve/internal/pkg/errs"
)

// StatusOf maps the error class attached by the usecase layer to an HTTP status.
func StatusOf(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	switch errs.ClassOf(err) {
	case errs.ClassValidation:
		return http.StatusUnprocessableEntity
	case errs.ClassNotFound:
		return http.StatusNotFound
	case errs.ClassConflict:
		return http.StatusConflict
	case errs.ClassForbidden:
		return http.StatusForbidden
	case errs.ClassTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func defaultMessage(status int) string {
	switch status {
	case http.StatusUnprocessableEntity:
		return "Validation failed"
	case http.StatusNotFound:
		return "Not found"
	case http.StatusConflict:
		return "Conflict"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusServiceUnavailable:
		return "Service temporarily unavailable"
	case http.StatusGatewayTimeout:
		return "Request timed out"
	default:
		return "Internal server error"
	}
}
