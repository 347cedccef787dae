package lostfound

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/api/validators"
	"github.com/residensync/residensync-backend/pkg/db/models"
	"github.com/residensync/residensync-backend/pkg/enums"
	pkgerrors "github.com/residensync/residensync-backend/pkg/errors"
	"github.com/residensync/residensync-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Service files and moderates lost-and-found reports.
type Service interface {
	Create(ctx context.Context, reporterID uuid.UUID, req CreateRequest) (*ItemDTO, error)
	ListActive(ctx context.Context, limit int) ([]ItemDTO, error)
	Resolve(ctx context.Context, itemID uuid.UUID) (*ItemDTO, error)
	Flag(ctx context.Context, itemID uuid.UUID) (*ItemDTO, error)
}

type itemRepository interface {
	Create(ctx context.Context, item *models.LostFoundItem) (*models.LostFoundItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.LostFoundItem, error)
	ListActive(ctx context.Context, limit int) ([]models.LostFoundItem, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.LostFoundStatus) error
}

type reporterRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type service struct {
	items     itemRepository
	reporters reporterRepository
}

// ServiceParams bundles the dependencies required to build a lost-and-found service.
type ServiceParams struct {
	ItemRepo     itemRepository
	ReporterRepo reporterRepository
}

func NewService(params ServiceParams) (Service, error) {
	if params.ItemRepo == nil {
		return nil, fmt.Errorf("item repository is required")
	}
	if params.ReporterRepo == nil {
		return nil, fmt.Errorf("reporter repository is required")
	}
	return &service{items: params.ItemRepo, reporters: params.ReporterRepo}, nil
}

// Create files a new report. The reporter's display name is denormalized onto
// the report so the feed renders without a join.
func (s *service) Create(ctx context.Context, reporterID uuid.UUID, req CreateRequest) (*ItemDTO, error) {
	itemType, err := enums.ParseLostFoundType(req.Type)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "type must be lost or found")
	}

	itemName := strings.TrimSpace(req.ItemName)
	if itemName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item_name is required")
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "description is required")
	}

	var dateLostOrFound *time.Time
	if req.DateLostOrFound != nil && strings.TrimSpace(*req.DateLostOrFound) != "" {
		parsed, err := validators.ParseDate("date_lost_or_found", *req.DateLostOrFound)
		if err != nil {
			return nil, err
		}
		dateLostOrFound = &parsed
	}

	reporter, err := s.reporters.FindByID(ctx, reporterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "account not recognized")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup reporter")
	}

	item := &models.LostFoundItem{
		UserID:              reporter.ID,
		UserName:            reporter.FullName,
		UserContact:         trimmedOrNil(req.UserContact),
		Type:                itemType,
		ItemName:            itemName,
		Description:         description,
		DateReported:        time.Now().UTC(),
		DateLostOrFound:     dateLostOrFound,
		LocationLostOrFound: trimmedOrNil(req.LocationLostOrFound),
		Status:              enums.LostFoundStatusActive,
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create report")
	}
	return FromModel(created), nil
}

// ListActive returns the open reports feed.
func (s *service) ListActive(ctx context.Context, limit int) ([]ItemDTO, error) {
	rows, err := s.items.ListActive(ctx, pagination.NormalizeLimit(limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list reports")
	}
	out := make([]ItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

// Resolve closes a report as reunited with its owner.
func (s *service) Resolve(ctx context.Context, itemID uuid.UUID) (*ItemDTO, error) {
	return s.moderate(ctx, itemID, enums.LostFoundStatusResolved)
}

// Flag marks a report for moderation review.
func (s *service) Flag(ctx context.Context, itemID uuid.UUID) (*ItemDTO, error) {
	return s.moderate(ctx, itemID, enums.LostFoundStatusFlagged)
}

// moderate transitions a report out of active. Only active reports can move.
func (s *service) moderate(ctx context.Context, itemID uuid.UUID, next enums.LostFoundStatus) (*ItemDTO, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "report not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup report")
	}
	if item.Status != enums.LostFoundStatusActive {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "report is no longer active").
			WithDetails(map[string]any{"status": item.Status})
	}
	if err := s.items.UpdateStatus(ctx, itemID, next); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update report")
	}
	item.Status = next
	return FromModel(item), nil
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
