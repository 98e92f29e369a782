package controllers

import (
	"fmt"
	"net/http"

	"github.com/stockpilehq/inventory-backend/api/responses"
	"github.com/stockpilehq/inventory-backend/api/validators"
	productsvc "github.com/stockpilehq/inventory-backend/internal/products"
	"github.com/stockpilehq/inventory-backend/pkg/config"
	pkgerrors "github.com/stockpilehq/inventory-backend/pkg/errors"
	"github.com/stockpilehq/inventory-backend/pkg/logger"
)

const importFileField = "csvFile"

// importResponse is the one non-enveloped success shape the frontend consumes:
// the report fields sit next to the success flag, not under data.
type importResponse struct {
	Success    bool                      `json:"success"`
	Added      int                       `json:"added"`
	Skipped    int                       `json:"skipped"`
	Duplicates []productsvc.DuplicateRow `json:"duplicates"`
}

// ImportProducts ingests a multipart CSV upload and answers with the
// added/skipped/duplicates report.
func ImportProducts(importer *productsvc.Importer, cfg config.ImportConfig, logg *logger.Logger) http.HandlerFunc {
	maxBytes := int64(cfg.MaxUploadMB) << 20
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		file, _, err := r.FormFile(importFileField)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "No file uploaded"))
			return
		}
		defer file.Close()

		report, err := importer.Import(r.Context(), file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, importResponse{
			Success:    true,
			Added:      report.Added,
			Skipped:    report.Skipped,
			Duplicates: report.Duplicates,
		})
	}
}

// ExportProducts streams the full product set as a CSV attachment.
func ExportProducts(exporter *productsvc.Exporter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := exporter.Export(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(file.Content)); err != nil && logg != nil {
			logg.Error(r.Context(), "failed to write export body", err)
		}
	}
}

// ProductHistory lists the stock-change audit trail for one product, newest
// change first. An unknown id yields an empty list, not a 404; the entries
// are gone the moment their product is.
func ProductHistory(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.HistoryFor(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}
