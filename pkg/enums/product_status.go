package enums

import "fmt"

// ProductStatus is the stocked/unstocked label shown in the product table.
// It is stored alongside stock rather than derived from it; the server keeps
// whatever the client sent and never reconciles the two.
type ProductStatus string

const (
	ProductStatusInStock    ProductStatus = "In Stock"
	ProductStatusOutOfStock ProductStatus = "Out of Stock"
)

var validProductStatuses = []ProductStatus{
	ProductStatusInStock,
	ProductStatusOutOfStock,
}

// String implements fmt.Stringer.
func (s ProductStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ProductStatus.
func (s ProductStatus) IsValid() bool {
	for _, candidate := range validProductStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseProductStatus converts raw input into a ProductStatus.
func ParseProductStatus(value string) (ProductStatus, error) {
	for _, candidate := range validProductStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product status %q", value)
}

// StatusForStock derives the status implied by a stock level. Used only when
// an import row omits the status column.
func StatusForStock(stock int) ProductStatus {
	if stock > 0 {
		return ProductStatusInStock
	}
	return ProductStatusOutOfStock
}
