package models

import (
	"time"

	"github.com/stockpilehq/inventory-backend/pkg/enums"
)

// PlaceholderImage is stamped on products created without an image URI.
const PlaceholderImage = "https://via.placeholder.com/50"

// Product is a catalog item with a tracked stock quantity. Names are unique
// case-sensitively at the store level; the import path additionally treats
// names as duplicates case-insensitively.
type Product struct {
	ID        uint                `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string              `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Unit      string              `gorm:"column:unit;not null" json:"unit"`
	Category  string              `gorm:"column:category;not null" json:"category"`
	Brand     string              `gorm:"column:brand;not null" json:"brand"`
	Stock     int                 `gorm:"column:stock;not null;default:0" json:"stock"`
	Status    enums.ProductStatus `gorm:"column:status;not null" json:"status"`
	Image     string              `gorm:"column:image" json:"image"`
	History   []InventoryHistory  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName keeps the legacy table name.
func (Product) TableName() string {
	return "products"
}
