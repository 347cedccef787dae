package pets

import (
	"context"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes pet persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, pet *models.Pet) (*models.Pet, error) {
	if pet.ID == uuid.Nil {
		pet.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(pet).Error; err != nil {
		return nil, err
	}
	return pet, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

// ListByOwner returns one resident's pets in alphabetical order.
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Pet, error) {
	var rows []models.Pet
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) Update(ctx context.Context, pet *models.Pet) error {
	return r.db.WithContext(ctx).Save(pet).Error
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Pet{}, "id = ?", id).Error
}
