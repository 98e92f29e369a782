package product

import (
	"context"

	"github.com/stockpilehq/inventory-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository wires together product persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every product, most recently created first.
func (r *Repository) List(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&rows).
		Error
	return rows, err
}

// SearchByName returns products whose name contains term as a case-insensitive
// substring, most recently created first.
func (r *Repository) SearchByName(ctx context.Context, term string) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		Order("id DESC").
		Find(&rows).
		Error
	return rows, err
}

// FindByID loads a single product.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByNameFold looks up a product by exact name, compared case-insensitively.
// The import path uses this for duplicate detection, which is stricter than the
// store's own case-sensitive unique index.
func (r *Repository) FindByNameFold(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&product).
		Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Create inserts a new product row. Unique-name violations surface unmapped;
// the service translates them.
func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Update fully replaces a product row and bumps updated_at.
func (r *Repository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes a product by ID and reports how many rows went away. History
// rows follow via the store's ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	return res.RowsAffected, res.Error
}

// ListForExport returns every product in the store's natural order.
func (r *Repository) ListForExport(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Select("name", "unit", "category", "brand", "stock", "status", "image").
		Find(&rows).
		Error
	return rows, err
}
