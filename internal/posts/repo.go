package posts

import (
	"context"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes post persistence. Posts are insert-only.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// ListByCreated returns the newest posts first (the announcements feed).
func (r *Repository) ListByCreated(ctx context.Context, limit int) ([]models.Post, error) {
	var rows []models.Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByEventDate returns posts soonest event first (the schedule feed).
func (r *Repository) ListByEventDate(ctx context.Context, limit int) ([]models.Post, error) {
	var rows []models.Post
	err := r.db.WithContext(ctx).
		Order("event_date ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
