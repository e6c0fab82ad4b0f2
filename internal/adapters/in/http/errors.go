package http

import (
	"errors"
	"log/slog"
	"net/http"

	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	kindValidation          = "validation"
	kindNotFound            = "not_found"
	kindReviewerConflict    = "reviewer_conflict"
	kindAlreadyAssigned     = "already_assigned"
	kindInvalidTransition   = "invalid_transition"
	kindDocumentsIncomplete = "documents_incomplete"
	kindStaleWrite          = "stale_write"
	kindAuditWriteFailure   = "audit_write_failure"
	kindInternal            = "internal"
	kindRequest             = "request"
)

// classify maps a use case error to its HTTP status and error kind.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, kindNotFound
	case errors.Is(err, errs.ErrReviewerConflict):
		return http.StatusLocked, kindReviewerConflict
	case errors.Is(err, errs.ErrAlreadyAssigned):
		return http.StatusLocked, kindAlreadyAssigned
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, kindInvalidTransition
	case errors.Is(err, errs.ErrDocumentsIncomplete):
		return http.StatusUnprocessableEntity, kindDocumentsIncomplete
	case errors.Is(err, errs.ErrStaleWrite):
		return http.StatusConflict, kindStaleWrite
	case errors.Is(err, errs.ErrAuditWriteFailure):
		return http.StatusServiceUnavailable, kindAuditWriteFailure
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, kindValidation
	default:
		return http.StatusInternalServerError, kindInternal
	}
}

// writeError sends the {code, kind, message} body. Internal failures are logged
// and their details are not sent to the caller.
func writeError(ctx echo.Context, logger *slog.Logger, err error) error {
	code, kind := classify(err)
	message := err.Error()

	var httpErr *echo.HTTPError
	if kind == kindInternal && errors.As(err, &httpErr) {
		code = httpErr.Code
		kind = kindForStatus(code)
		message = http.StatusText(code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"kind", kind,
			"error", err)
		if kind == kindInternal {
			message = "internal error"
		}
	}

	return ctx.JSON(code, servers.Error{Code: code, Kind: kind, Message: message})
}

func kindForStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return kindValidation
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return kindNotFound
	default:
		if code >= http.StatusInternalServerError {
			return kindInternal
		}
		return kindRequest
	}
}

// ErrorHandler replaces echo's default handler so routing and binding errors use
// the same body as use case errors.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}
		if writeErr := writeError(ctx, logger, err); writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
