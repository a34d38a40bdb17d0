package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/access"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type accountDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

// Auth resolves the bearer token to a Directory account and stores the
// account ID and its current role in the request context. Requests without
// a bearer token pass through anonymously.
func Auth(validator tokenValidator, accounts accountDirectory, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			accountID, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				logger.WarnContext(r.Context(), "rejected bearer token",
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()),
				)
				writeErrorJSON(w, http.StatusUnauthorized, "AuthenticationError", "invalid token")
				return
			}

			account, err := accounts.GetByID(r.Context(), accountID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					logger.WarnContext(r.Context(), "token for unknown account",
						slog.String("account_id", accountID.String()),
					)
					writeErrorJSON(w, http.StatusUnauthorized, "AuthenticationError", "unknown account")
					return
				}
				logger.ErrorContext(r.Context(), "directory lookup", slog.String("error", err.Error()))
				writeErrorJSON(w, http.StatusInternalServerError, "InternalError", "internal server error")
				return
			}

			ctx := access.WithActor(r.Context(), domain.Actor{AccountID: account.ID, Role: account.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func writeErrorJSON(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"kind": kind, "message": message}) //nolint:errcheck
}
