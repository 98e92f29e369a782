package controllers

import (
	"net/http"

	"github.com/stockpilehq/inventory-backend/api/responses"
)

// APIIndex answers the root path with a small endpoint directory, which the
// frontend uses as a connectivity check.
func APIIndex() http.HandlerFunc {
	index := map[string]any{
		"message": "Inventory Management API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"products": "/api/products",
			"search":   "/api/products/search?name=query",
			"export":   "/api/products/export",
			"import":   "/api/products/import",
			"history":  "/api/products/:id/history",
		},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, index)
	}
}
