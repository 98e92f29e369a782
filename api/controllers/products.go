package controllers

import (
	"net/http"
	"strings"

	"github.com/stockpilehq/inventory-backend/api/responses"
	"github.com/stockpilehq/inventory-backend/api/validators"
	productsvc "github.com/stockpilehq/inventory-backend/internal/products"
	"github.com/stockpilehq/inventory-backend/pkg/enums"
	pkgerrors "github.com/stockpilehq/inventory-backend/pkg/errors"
	"github.com/stockpilehq/inventory-backend/pkg/logger"
)

// ListProducts returns every product, most recently created first.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// SearchProducts filters products by a case-insensitive name substring.
func SearchProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.Search(r.Context(), r.URL.Query().Get("name"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// GetProduct loads one product by id.
func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		found, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, found)
	}
}

// CreateProduct inserts a new product.
func CreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessMessage(w, http.StatusCreated, "Product created successfully",
			map[string]any{"id": created.ID})
	}
}

// UpdateProduct fully replaces a product's fields.
func UpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessMessage(w, http.StatusOK, "Product updated successfully", updated)
	}
}

// DeleteProduct removes a product; its history rows cascade with it.
func DeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessMessage(w, http.StatusOK, "Product deleted successfully", nil)
	}
}

type productRequest struct {
	Name     string `json:"name" validate:"required"`
	Unit     string `json:"unit" validate:"required"`
	Category string `json:"category" validate:"required"`
	Brand    string `json:"brand" validate:"required"`
	Stock    *int   `json:"stock" validate:"required,gte=0"`
	Status   string `json:"status" validate:"required,oneof='In Stock' 'Out of Stock'"`
	Image    string `json:"image,omitempty"`
}

func (r productRequest) toInput() (productsvc.ProductInput, error) {
	status, err := enums.ParseProductStatus(strings.TrimSpace(r.Status))
	if err != nil {
		return productsvc.ProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
	}

	return productsvc.ProductInput{
		Name:     strings.TrimSpace(r.Name),
		Unit:     strings.TrimSpace(r.Unit),
		Category: strings.TrimSpace(r.Category),
		Brand:    strings.TrimSpace(r.Brand),
		Stock:    *r.Stock,
		Status:   status,
		Image:    strings.TrimSpace(r.Image),
	}, nil
}
