package docrequests

import (
	"time"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/pkg/db/models"
	"github.com/residensync/residensync-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// RequestDTO is the transport shape for a document request.
type RequestDTO struct {
	ID            uuid.UUID                   `json:"id"`
	UserID        uuid.UUID                   `json:"user_id"`
	UserName      string                      `json:"user_name"`
	RequestID     string                      `json:"request_id"`
	DocumentName  enums.DocumentTypeName      `json:"document_name"`
	Purpose       string                      `json:"purpose"`
	DateRequested time.Time                   `json:"date_requested"`
	Fee           decimal.Decimal             `json:"fee"`
	Status        enums.DocumentRequestStatus `json:"status"`
	DateReleased  *time.Time                  `json:"date_released,omitempty"`
}

// CreateRequest is the resident-facing request form. DocumentName is
// optional; an empty value falls back to the standard barangay permit.
type CreateRequest struct {
	DocumentName string `json:"document_name,omitempty"`
	Purpose      string `json:"purpose" validate:"required"`
}

// UpdateStatusRequest is the clerk-side transition form.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func FromModel(req *models.DocumentRequest) *RequestDTO {
	if req == nil {
		return nil
	}
	return &RequestDTO{
		ID:            req.ID,
		UserID:        req.UserID,
		UserName:      req.UserName,
		RequestID:     req.RequestID,
		DocumentName:  req.DocumentName,
		Purpose:       req.Purpose,
		DateRequested: req.DateRequested,
		Fee:           req.Fee,
		Status:        req.Status,
		DateReleased:  req.DateReleased,
	}
}
