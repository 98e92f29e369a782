package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stockpilehq/inventory-backend/pkg/db"
	"github.com/stockpilehq/inventory-backend/pkg/db/models"
	pkgerrors "github.com/stockpilehq/inventory-backend/pkg/errors"
	"github.com/stockpilehq/inventory-backend/pkg/logger"
	"gorm.io/gorm"
)

// Service exposes the inventory product operations.
type Service interface {
	List(ctx context.Context) ([]models.Product, error)
	Search(ctx context.Context, term string) ([]models.Product, error)
	Get(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, input ProductInput) (*models.Product, error)
	Update(ctx context.Context, id uint, input ProductInput) (*models.Product, error)
	Delete(ctx context.Context, id uint) error
	HistoryFor(ctx context.Context, productID uint) ([]models.InventoryHistory, error)
}

// service implements the product service.
type service struct {
	repo    *Repository
	history *HistoryRecorder
	logg    *logger.Logger
	actor   string
}

// NewService constructs a product service instance. actor is the changed_by
// label stamped on audit entries; the system has no per-session identity.
func NewService(repo *Repository, history *HistoryRecorder, logg *logger.Logger, actor string) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if history == nil {
		return nil, fmt.Errorf("history recorder required")
	}
	if actor == "" {
		actor = "admin"
	}
	return &service{
		repo:    repo,
		history: history,
		logg:    logg,
		actor:   actor,
	}, nil
}

func (s *service) List(ctx context.Context) ([]models.Product, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}
	return ensureRows(rows), nil
}

func (s *service) Search(ctx context.Context, term string) ([]models.Product, error) {
	if strings.TrimSpace(term) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Search term is required")
	}
	rows, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "searching products")
	}
	return ensureRows(rows), nil
}

func (s *service) Get(ctx context.Context, id uint) (*models.Product, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}
	return found, nil
}

func (s *service) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	record := &models.Product{
		Name:     input.Name,
		Unit:     input.Unit,
		Category: input.Category,
		Brand:    input.Brand,
		Stock:    input.Stock,
		Status:   input.Status,
		Image:    input.Image,
	}
	if record.Image == "" {
		record.Image = models.PlaceholderImage
	}

	if err := s.repo.Create(ctx, record); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Product name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "inserting product")
	}
	return record, nil
}

// Update fully replaces the product's mutable fields. When the replace changes
// the stock quantity it also appends an audit entry. That write is best-effort:
// a history failure is logged and swallowed, never rolled into the already
// committed product update.
func (s *service) Update(ctx context.Context, id uint, input ProductInput) (*models.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}

	oldStock := existing.Stock

	existing.Name = input.Name
	existing.Unit = input.Unit
	existing.Category = input.Category
	existing.Brand = input.Brand
	existing.Stock = input.Stock
	existing.Status = input.Status
	existing.Image = input.Image

	if err := s.repo.Update(ctx, existing); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Product name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating product")
	}

	if oldStock != input.Stock {
		entry := &models.InventoryHistory{
			ProductID:   existing.ID,
			OldQuantity: oldStock,
			NewQuantity: input.Stock,
			ChangeDate:  time.Now().UTC().Format(models.ChangeDateFormat),
			ChangedBy:   s.actor,
		}
		if err := s.history.Record(ctx, entry); err != nil && s.logg != nil {
			s.logg.Error(s.logg.WithProductID(ctx, existing.ID), "failed to record inventory history", err)
		}
	}

	return existing, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting product")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	}
	return nil
}

func (s *service) HistoryFor(ctx context.Context, productID uint) ([]models.InventoryHistory, error) {
	rows, err := s.history.HistoryFor(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading inventory history")
	}
	if rows == nil {
		rows = []models.InventoryHistory{}
	}
	return rows, nil
}

// ensureRows keeps empty result sets marshaling as [] instead of null.
func ensureRows(rows []models.Product) []models.Product {
	if rows == nil {
		return []models.Product{}
	}
	return rows
}
