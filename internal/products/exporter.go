package product

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/stockpilehq/inventory-backend/pkg/errors"
)

const (
	exportHeader      = "name,unit,category,brand,stock,status,image"
	exportContentType = "text/csv"
	exportFilename    = "products.csv"
)

// Exporter renders the full product set as CSV text.
type Exporter struct {
	repo *Repository
}

// NewExporter builds an exporter over the provided repository.
func NewExporter(repo *Repository) *Exporter {
	return &Exporter{repo: repo}
}

// Export serializes every product, one line per row after the header. Text
// fields are double-quote wrapped without escaping embedded quotes or
// newlines; that is a known limitation of the format this endpoint has always
// produced, and the import side depends on it staying byte-stable. Stock is a
// bare integer. Lines are newline-joined with no trailing newline after the
// last record.
func (e *Exporter) Export(ctx context.Context) (*ExportFile, error) {
	rows, err := e.repo.ListForExport(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "exporting products")
	}

	lines := make([]string, 0, len(rows))
	for _, p := range rows {
		lines = append(lines, fmt.Sprintf(`"%s","%s","%s","%s",%d,"%s","%s"`,
			p.Name, p.Unit, p.Category, p.Brand, p.Stock, p.Status, p.Image))
	}

	return &ExportFile{
		Content:     exportHeader + "\n" + strings.Join(lines, "\n"),
		ContentType: exportContentType,
		Filename:    exportFilename,
	}, nil
}
