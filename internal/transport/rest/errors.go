package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/pkg/ctxutil"
)

// Error kinds carried in the envelope.
const (
	KindValidation     = "ValidationError"
	KindAuthentication = "AuthenticationError"
	KindAuthorization  = "AuthorizationError"
	KindNotFound       = "NotFoundError"
	KindDuplicate      = "DuplicateError"
	KindStaleRound     = "StaleRound"
	KindConflict       = "Conflict"
	KindPrecondition   = "PreconditionFailed"
	KindTerminalState  = "TerminalStateError"
	KindInternal       = "InternalError"
)

// ErrorResponse is the envelope returned for every failed request.
type ErrorResponse struct {
	Kind    string               `json:"kind"`
	Message string               `json:"message"`
	Fields  []FieldErrorResponse `json:"fields,omitempty"`
}

// FieldErrorResponse describes one invalid request field.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// classify maps an error to its HTTP status and envelope kind.
// ErrStaleRound wraps ErrConflict, so it is checked first.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, KindValidation
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, KindAuthentication
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, KindAuthorization
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, KindNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, KindDuplicate
	case errors.Is(err, domain.ErrStaleRound):
		return http.StatusConflict, KindStaleRound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, KindConflict
	case errors.Is(err, domain.ErrPreconditionFailed):
		return http.StatusPreconditionFailed, KindPrecondition
	case errors.Is(err, domain.ErrTerminalState):
		return http.StatusUnprocessableEntity, KindTerminalState
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

// writeError renders err as an envelope. Unexpected errors are logged and
// their message is replaced with a generic one.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, kind := classify(err)

	resp := ErrorResponse{Kind: kind, Message: err.Error()}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		resp.Fields = make([]FieldErrorResponse, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, FieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
	}

	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "unexpected error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		resp.Message = "internal error"
	}

	writeJSON(w, status, resp)
}
