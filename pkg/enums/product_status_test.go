package enums

import "testing"

func TestParseProductStatus(t *testing.T) {
	if _, err := ParseProductStatus("In Stock"); err != nil {
		t.Fatalf("expected In Stock to parse, got %v", err)
	}
	if _, err := ParseProductStatus("Out of Stock"); err != nil {
		t.Fatalf("expected Out of Stock to parse, got %v", err)
	}
	if _, err := ParseProductStatus("in stock"); err == nil {
		t.Fatal("expected lowercase status to be rejected")
	}
	if _, err := ParseProductStatus(""); err == nil {
		t.Fatal("expected empty status to be rejected")
	}
}

func TestStatusForStock(t *testing.T) {
	if got := StatusForStock(1); got != ProductStatusInStock {
		t.Fatalf("expected In Stock for positive stock, got %q", got)
	}
	if got := StatusForStock(0); got != ProductStatusOutOfStock {
		t.Fatalf("expected Out of Stock for zero stock, got %q", got)
	}
	if got := StatusForStock(-3); got != ProductStatusOutOfStock {
		t.Fatalf("expected Out of Stock for negative stock, got %q", got)
	}
}
