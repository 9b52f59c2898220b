package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iGEORGE17/blog-api/internal/core/domain"
)

// Stable reason tags clients may branch on. The human-readable message is
// not part of the contract.
const (
	ReasonUnauthenticated = "unauthenticated"
	ReasonForbidden       = "forbidden"
	ReasonConflict        = "conflict"
	ReasonNotFound        = "not_found"
	ReasonInvalidInput    = "invalid_input"
	ReasonRateLimited     = "rate_limited"
	ReasonInternal        = "internal"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Reason string `json:"reason"`
	Error  string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and reason tag.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"reason": "<tag>", "error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, reason, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Reason: reason, Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, reasonForStatus(he.Code), fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ReasonUnauthenticated, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ReasonForbidden, domain.ErrForbidden.Error()
	case errors.Is(err, domain.ErrSelfDeletion):
		return http.StatusForbidden, ReasonForbidden, domain.ErrSelfDeletion.Error()
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, ReasonConflict, domain.ErrUserExists.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ReasonNotFound, domain.ErrUserNotFound.Error()
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, ReasonNotFound, domain.ErrPostNotFound.Error()
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, ReasonInvalidInput, domain.ErrInvalidID.Error()
	case errors.Is(err, domain.ErrEmptyUpdate):
		return http.StatusBadRequest, ReasonInvalidInput, domain.ErrEmptyUpdate.Error()
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, ReasonRateLimited, domain.ErrTooManyAttempts.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, ReasonInternal, "internal server error"
}

func reasonForStatus(code int) string {
	switch code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ReasonInvalidInput
	case http.StatusUnauthorized:
		return ReasonUnauthenticated
	case http.StatusForbidden:
		return ReasonForbidden
	case http.StatusNotFound:
		return ReasonNotFound
	case http.StatusConflict:
		return ReasonConflict
	case http.StatusTooManyRequests:
		return ReasonRateLimited
	default:
		return ReasonInternal
	}
}
