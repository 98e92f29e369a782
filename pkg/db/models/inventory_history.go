package models

// ChangeDateFormat is the canonical zero-padded UTC layout for history
// timestamps. Entries are ordered lexicographically on change_date, which is
// only safe while every writer uses this fixed-width format.
const ChangeDateFormat = "2006-01-02T15:04:05.000Z"

// InventoryHistory is an audit record of one stock-quantity change. Rows are
// appended when an update changes a product's stock, never mutated, and
// removed only by the cascade when their product is deleted.
type InventoryHistory struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID   uint   `gorm:"column:product_id;not null;index" json:"product_id"`
	OldQuantity int    `gorm:"column:old_quantity;not null" json:"old_quantity"`
	NewQuantity int    `gorm:"column:new_quantity;not null" json:"new_quantity"`
	ChangeDate  string `gorm:"column:change_date;not null" json:"change_date"`
	ChangedBy   string `gorm:"column:changed_by;default:admin" json:"changed_by"`
}

// TableName keeps the legacy table name.
func (InventoryHistory) TableName() string {
	return "inventory_history"
}
