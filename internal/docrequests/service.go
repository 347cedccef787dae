package docrequests

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/pkg/db/models"
	"github.com/residensync/residensync-backend/pkg/enums"
	pkgerrors "github.com/residensync/residensync-backend/pkg/errors"
	"github.com/residensync/residensync-backend/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// requestIDPrefix is printed on paper receipts, so it never changes.
const requestIDPrefix = "BP-"

var defaultFee = decimal.NewFromInt(50)

// Service files resident document requests and runs the clerk workflow.
type Service interface {
	Create(ctx context.Context, requesterID uuid.UUID, req CreateRequest) (*RequestDTO, error)
	ListMine(ctx context.Context, requesterID uuid.UUID, limit int) ([]RequestDTO, error)
	ListAll(ctx context.Context, limit int) ([]RequestDTO, error)
	UpdateStatus(ctx context.Context, requestID uuid.UUID, req UpdateStatusRequest) (*RequestDTO, error)
}

type requestRepository interface {
	Create(ctx context.Context, req *models.DocumentRequest) (*models.DocumentRequest, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.DocumentRequest, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.DocumentRequest, error)
	ListAll(ctx context.Context, limit int) ([]models.DocumentRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.DocumentRequestStatus, dateReleased *time.Time) error
}

type requesterRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type service struct {
	requests   requestRepository
	requesters requesterRepository
	now        func() time.Time
}

// ServiceParams bundles the dependencies required to build a document-request
// service. Now is overridable for deterministic request ids in tests.
type ServiceParams struct {
	RequestRepo   requestRepository
	RequesterRepo requesterRepository
	Now           func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.RequestRepo == nil {
		return nil, fmt.Errorf("request repository is required")
	}
	if params.RequesterRepo == nil {
		return nil, fmt.Errorf("requester repository is required")
	}
	now := params.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &service{requests: params.RequestRepo, requesters: params.RequesterRepo, now: now}, nil
}

// Create files a new request in the Pending state with the standard fee.
func (s *service) Create(ctx context.Context, requesterID uuid.UUID, req CreateRequest) (*RequestDTO, error) {
	purpose := strings.TrimSpace(req.Purpose)
	if purpose == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "purpose is required")
	}

	documentName := enums.DocumentTypeBarangayPermit
	if trimmed := strings.TrimSpace(req.DocumentName); trimmed != "" {
		parsed, err := enums.ParseDocumentTypeName(trimmed)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown document type")
		}
		documentName = parsed
	}

	requester, err := s.requesters.FindByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "account not recognized")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup requester")
	}

	requestedAt := s.now()
	request := &models.DocumentRequest{
		UserID:        requester.ID,
		UserName:      requester.FullName,
		RequestID:     buildRequestID(requestedAt),
		DocumentName:  documentName,
		Purpose:       purpose,
		DateRequested: requestedAt,
		Fee:           defaultFee,
		Status:        enums.DocumentRequestStatusPending,
	}

	created, err := s.requests.Create(ctx, request)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create document request")
	}
	return FromModel(created), nil
}

// ListMine returns the calling resident's own requests.
func (s *service) ListMine(ctx context.Context, requesterID uuid.UUID, limit int) ([]RequestDTO, error) {
	rows, err := s.requests.ListByUser(ctx, requesterID, pagination.NormalizeLimit(limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list document requests")
	}
	return toDTOs(rows), nil
}

// ListAll returns every request for the admin dashboard.
func (s *service) ListAll(ctx context.Context, limit int) ([]RequestDTO, error) {
	rows, err := s.requests.ListAll(ctx, pagination.NormalizeLimit(limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list document requests")
	}
	return toDTOs(rows), nil
}

// UpdateStatus applies a clerk workflow transition. Moving to Released stamps
// the release date.
func (s *service) UpdateStatus(ctx context.Context, requestID uuid.UUID, req UpdateStatusRequest) (*RequestDTO, error) {
	next, err := enums.ParseDocumentRequestStatus(req.Status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown status")
	}

	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "document request not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup document request")
	}

	if !request.Status.CanTransitionTo(next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move request from %s to %s", request.Status, next)).
			WithDetails(map[string]any{"status": request.Status})
	}

	var releasedAt *time.Time
	if next == enums.DocumentRequestStatusReleased {
		stamped := s.now()
		releasedAt = &stamped
	}

	if err := s.requests.UpdateStatus(ctx, requestID, next, releasedAt); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update document request")
	}
	request.Status = next
	if releasedAt != nil {
		request.DateReleased = releasedAt
	}
	return FromModel(request), nil
}

// buildRequestID derives the receipt reference from the request timestamp:
// the BP- prefix followed by the last six digits of the unix-millis clock.
func buildRequestID(at time.Time) string {
	millis := strconv.FormatInt(at.UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return requestIDPrefix + millis
}

func toDTOs(rows []models.DocumentRequest) []RequestDTO {
	out := make([]RequestDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
