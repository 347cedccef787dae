package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/api/responses"
	"github.com/residensync/residensync-backend/internal/sessiongate"
	pkgerrors "github.com/residensync/residensync-backend/pkg/errors"
	"github.com/residensync/residensync-backend/pkg/logger"
)

// ProfileResolver supplies a fresh gate profile for the authenticated user.
// Returning nil with no error means the profile record does not exist.
type ProfileResolver interface {
	GateProfile(ctx context.Context, userID uuid.UUID) (*sessiongate.Profile, error)
}

// RequireApproved re-evaluates the session gate from a fresh profile read on
// every request. Token claims are not trusted for approval status: a user
// rejected after sign-in loses access on their next request.
func RequireApproved(resolver ProfileResolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := UserIDFromContext(r.Context())
			userID, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			profile, err := resolver.GateProfile(r.Context(), userID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve profile"))
				return
			}

			state := sessiongate.Resolve(true, true, profile)
			switch state {
			case sessiongate.StateActive:
				next.ServeHTTP(w, r)
			case sessiongate.StateUnauthenticated:
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "account not recognized"))
			default:
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeForbidden, "account not active").
						WithDetails(map[string]any{"state": string(state)}))
			}
		})
	}
}
