package lostfound

import (
	"context"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/pkg/db/models"
	"github.com/residensync/residensync-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository exposes lost-and-found persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, item *models.LostFoundItem) (*models.LostFoundItem, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.LostFoundItem, error) {
	var item models.LostFoundItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListActive returns open reports, most recently reported first.
func (r *Repository) ListActive(ctx context.Context, limit int) ([]models.LostFoundItem, error) {
	var rows []models.LostFoundItem
	err := r.db.WithContext(ctx).
		Where("status = ?", enums.LostFoundStatusActive).
		Order("date_reported DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateStatus moves a report to the given lifecycle status.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.LostFoundStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.LostFoundItem{}).
		Where("id = ?", id).
		UpdateColumn("status", status).Error
}
