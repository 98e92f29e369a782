package product

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/stockpilehq/inventory-backend/pkg/db/models"
	"github.com/stockpilehq/inventory-backend/pkg/enums"
	pkgerrors "github.com/stockpilehq/inventory-backend/pkg/errors"
	"github.com/stockpilehq/inventory-backend/pkg/logger"
	"gorm.io/gorm"
)

// Importer runs bulk CSV imports against the product repository.
type Importer struct {
	repo *Repository
	logg *logger.Logger
}

// NewImporter builds an importer over the provided repository.
func NewImporter(repo *Repository, logg *logger.Logger) *Importer {
	return &Importer{repo: repo, logg: logg}
}

type importRow struct {
	name     string
	unit     string
	category string
	brand    string
	stock    string
	status   string
	image    string
}

// Import parses the whole stream up front, then processes rows in input order:
// a case-insensitive name match against an existing product records a
// duplicate and skips the row; everything else is inserted with per-column
// defaults. An insert failure (empty name, or losing the unique-index race to
// another row or batch with the same new name) counts as skipped without a
// duplicate entry. The duplicate-check-then-insert pair is deliberately not
// atomic across rows; the store's unique index arbitrates.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*ImportReport, error) {
	rows, err := parseRows(r)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "parsing csv")
	}

	report := &ImportReport{Duplicates: []DuplicateRow{}}

	for _, row := range rows {
		existing, err := i.repo.FindByNameFold(ctx, row.name)
		if err == nil && existing != nil {
			report.Duplicates = append(report.Duplicates, DuplicateRow{
				Name:       row.name,
				ExistingID: existing.ID,
			})
			report.Skipped++
			continue
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && i.logg != nil {
			// Lookup failure falls through to the insert attempt, same as a
			// miss; the unique index still protects against true duplicates.
			i.logg.Warn(i.logg.WithField(ctx, "name", row.name), "duplicate check failed, attempting insert")
		}

		if strings.TrimSpace(row.name) == "" {
			report.Skipped++
			continue
		}

		if err := i.repo.Create(ctx, row.toProduct()); err != nil {
			report.Skipped++
			if i.logg != nil {
				i.logg.Warn(i.logg.WithFields(ctx, map[string]any{
					"name":  row.name,
					"error": err.Error(),
				}), "import row insert failed")
			}
			continue
		}
		report.Added++
	}

	return report, nil
}

func (row importRow) toProduct() *models.Product {
	stock, err := strconv.Atoi(strings.TrimSpace(row.stock))
	if err != nil {
		stock = 0
	}

	status := enums.ProductStatus(row.status)
	if row.status == "" {
		status = enums.StatusForStock(stock)
	}

	record := &models.Product{
		Name:     row.name,
		Unit:     row.unit,
		Category: row.category,
		Brand:    row.brand,
		Stock:    stock,
		Status:   status,
		Image:    row.image,
	}
	if record.Unit == "" {
		record.Unit = "piece"
	}
	if record.Category == "" {
		record.Category = "General"
	}
	if record.Brand == "" {
		record.Brand = "Generic"
	}
	if record.Image == "" {
		record.Image = models.PlaceholderImage
	}
	return record
}

// parseRows reads the full stream into header-keyed rows. The first record is
// the header; unknown columns are ignored and missing ones stay empty.
func parseRows(r io.Reader) ([]importRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	index := map[string]int{}
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []importRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, importRow{
			name:     field(record, "name"),
			unit:     field(record, "unit"),
			category: field(record, "category"),
			brand:    field(record, "brand"),
			stock:    field(record, "stock"),
			status:   field(record, "status"),
			image:    field(record, "image"),
		})
	}
	return rows, nil
}
