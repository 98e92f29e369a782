package product

import (
	"context"

	"github.com/stockpilehq/inventory-backend/pkg/db/models"
	"gorm.io/gorm"
)

// HistoryRecorder persists and reads stock-change audit entries.
type HistoryRecorder struct {
	db *gorm.DB
}

// NewHistoryRecorder builds a recorder tied to the provided GORM DB.
func NewHistoryRecorder(db *gorm.DB) *HistoryRecorder {
	return &HistoryRecorder{db: db}
}

// Record appends one audit entry. It writes unconditionally; the caller gates
// on the stock quantity actually having changed, and supplies the timestamp
// captured when the product update committed.
func (h *HistoryRecorder) Record(ctx context.Context, entry *models.InventoryHistory) error {
	return h.db.WithContext(ctx).Create(entry).Error
}

// HistoryFor returns all entries for a product, newest change first. Ordering
// is lexicographic on change_date, which is correct because every entry is
// written in the fixed-width models.ChangeDateFormat layout.
func (h *HistoryRecorder) HistoryFor(ctx context.Context, productID uint) ([]models.InventoryHistory, error) {
	var rows []models.InventoryHistory
	err := h.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("change_date DESC").
		Find(&rows).
		Error
	return rows, err
}
