package product

import (
	"github.com/stockpilehq/inventory-backend/pkg/enums"
)

// ProductInput holds the validated payload to create or fully replace a
// product. Updates are full-record replaces, not partial patches: every field
// here overwrites the stored value.
type ProductInput struct {
	Name     string
	Unit     string
	Category string
	Brand    string
	Stock    int
	Status   enums.ProductStatus
	Image    string
}

// DuplicateRow reports one import row whose name case-insensitively matched an
// existing product.
type DuplicateRow struct {
	Name       string `json:"name"`
	ExistingID uint   `json:"existingId"`
}

// ImportReport aggregates the outcome of one bulk import. Skipped counts both
// name matches and failed inserts; Duplicates carries the name-match cases only.
type ImportReport struct {
	Added      int            `json:"added"`
	Skipped    int            `json:"skipped"`
	Duplicates []DuplicateRow `json:"duplicates"`
}

// ExportFile is the rendered CSV plus the transport metadata the HTTP surface
// needs to serve it as an attachment.
type ExportFile struct {
	Content     string
	ContentType string
	Filename    string
}
