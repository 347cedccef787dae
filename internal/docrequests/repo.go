package docrequests

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/pkg/db/models"
	"github.com/residensync/residensync-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository exposes document-request persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, req *models.DocumentRequest) (*models.DocumentRequest, error) {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return nil, err
	}
	return req, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.DocumentRequest, error) {
	var req models.DocumentRequest
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// ListByUser returns one resident's requests, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.DocumentRequest, error) {
	var rows []models.DocumentRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_requested DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAll returns every request for the clerk dashboard, newest first.
func (r *Repository) ListAll(ctx context.Context, limit int) ([]models.DocumentRequest, error) {
	var rows []models.DocumentRequest
	err := r.db.WithContext(ctx).
		Order("date_requested DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateStatus records a workflow transition. dateReleased is only set when
// the request moves to Released.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.DocumentRequestStatus, dateReleased *time.Time) error {
	updates := map[string]any{"status": status}
	if dateReleased != nil {
		updates["date_released"] = *dateReleased
	}
	return r.db.WithContext(ctx).
		Model(&models.DocumentRequest{}).
		Where("id = ?", id).
		Updates(updates).Error
}
