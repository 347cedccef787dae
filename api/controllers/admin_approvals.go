package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/api/middleware"
	"github.com/residensync/residensync-backend/api/responses"
	"github.com/residensync/residensync-backend/api/validators"
	"github.com/residensync/residensync-backend/internal/approvals"
	"github.com/residensync/residensync-backend/internal/users"
	pkgerrors "github.com/residensync/residensync-backend/pkg/errors"
	"github.com/residensync/residensync-backend/pkg/logger"
	"github.com/residensync/residensync-backend/pkg/pagination"
)

// AdminListPendingUsers serves the approval queue, oldest signup first.
func AdminListPendingUsers(svc approvals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "approval service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.ListPending(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// AdminApproveUser admits a pending signup.
func AdminApproveUser(svc approvals.Service, logg *logger.Logger) http.HandlerFunc {
	return decideUser(svc, logg, approvals.Service.Approve)
}

// AdminRejectUser declines a pending signup.
func AdminRejectUser(svc approvals.Service, logg *logger.Logger) http.HandlerFunc {
	return decideUser(svc, logg, approvals.Service.Reject)
}

type approvalDecision func(svc approvals.Service, ctx context.Context, adminID, userID uuid.UUID) (*users.UserDTO, error)

func decideUser(svc approvals.Service, logg *logger.Logger, decide approvalDecision) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "approval service unavailable"))
			return
		}

		adminID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
			return
		}

		decided, err := decide(svc, r.Context(), adminID, userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, decided)
	}
}
