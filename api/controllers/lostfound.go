package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/api/middleware"
	"github.com/residensync/residensync-backend/api/responses"
	"github.com/residensync/residensync-backend/api/validators"
	"github.com/residensync/residensync-backend/internal/lostfound"
	"github.com/residensync/residensync-backend/pkg/enums"
	pkgerrors "github.com/residensync/residensync-backend/pkg/errors"
	"github.com/residensync/residensync-backend/pkg/logger"
	"github.com/residensync/residensync-backend/pkg/pagination"
)

// ListLostFound serves the open reports feed.
func ListLostFound(svc lostfound.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "lost-and-found service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.ListActive(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// CreateLostFound files a new report under the calling resident.
func CreateLostFound(svc lostfound.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "lost-and-found service unavailable"))
			return
		}

		userID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		var body lostfound.CreateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), userID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

type lostFoundStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=resolved flagged"`
}

// AdminUpdateLostFoundStatus moves a report to resolved or flagged.
func AdminUpdateLostFoundStatus(svc lostfound.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "lost-and-found service unavailable"))
			return
		}

		itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item id"))
			return
		}

		var body lostFoundStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var updated *lostfound.ItemDTO
		switch enums.LostFoundStatus(body.Status) {
		case enums.LostFoundStatusResolved:
			updated, err = svc.Resolve(r.Context(), itemID)
		case enums.LostFoundStatusFlagged:
			updated, err = svc.Flag(r.Context(), itemID)
		default:
			err = pkgerrors.New(pkgerrors.CodeValidation, "status must be resolved or flagged")
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}
