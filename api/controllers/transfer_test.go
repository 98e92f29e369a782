package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	productsvc "github.com/stockpilehq/inventory-backend/internal/products"
	"github.com/stockpilehq/inventory-backend/pkg/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTransferTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	ddl := `
CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  unit TEXT NOT NULL,
  category TEXT NOT NULL,
  brand TEXT NOT NULL,
  stock INTEGER NOT NULL DEFAULT 0,
  status TEXT NOT NULL,
  image TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	if err := db.Exec(ddl).Error; err != nil {
		t.Fatalf("failed to create products table: %v", err)
	}
	return db
}

func multipartCSV(t *testing.T, field, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, "products.csv")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestImportProducts(t *testing.T) {
	logg := testLogger()
	cfg := config.ImportConfig{MaxUploadMB: 10}

	t.Run("reports added and duplicates flat", func(t *testing.T) {
		db := openTransferTestDB(t)
		repo := productsvc.NewRepository(db)
		importer := productsvc.NewImporter(repo, logg)

		csv := strings.Join([]string{
			"name,unit,category,brand,stock,status,image",
			`"Laptop","piece","Electronics","TechCo",10,"In Stock",""`,
			`"laptop","piece","Electronics","TechCo",2,"In Stock",""`,
		}, "\n")
		body, contentType := multipartCSV(t, "csvFile", csv)

		req := httptest.NewRequest(http.MethodPost, "/api/products/import", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		ImportProducts(importer, cfg, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		// Report fields sit next to the success flag, not under data.
		var payload struct {
			Success    bool `json:"success"`
			Added      int  `json:"added"`
			Skipped    int  `json:"skipped"`
			Duplicates []struct {
				Name       string `json:"name"`
				ExistingID uint   `json:"existingId"`
			} `json:"duplicates"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode import response: %v", err)
		}
		if !payload.Success {
			t.Fatal("expected success flag")
		}
		if payload.Added != 1 || payload.Skipped != 1 {
			t.Fatalf("unexpected counts added=%d skipped=%d", payload.Added, payload.Skipped)
		}
		if len(payload.Duplicates) != 1 || payload.Duplicates[0].Name != "laptop" {
			t.Fatalf("unexpected duplicates %+v", payload.Duplicates)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		db := openTransferTestDB(t)
		importer := productsvc.NewImporter(productsvc.NewRepository(db), logg)

		req := httptest.NewRequest(http.MethodPost, "/api/products/import", strings.NewReader("plain body"))
		rec := httptest.NewRecorder()

		ImportProducts(importer, cfg, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 without multipart file, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "No file uploaded") {
			t.Fatalf("expected upload message, got %s", rec.Body.String())
		}
	})

	t.Run("wrong field name", func(t *testing.T) {
		db := openTransferTestDB(t)
		importer := productsvc.NewImporter(productsvc.NewRepository(db), logg)

		body, contentType := multipartCSV(t, "file", "name\nLaptop")
		req := httptest.NewRequest(http.MethodPost, "/api/products/import", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		ImportProducts(importer, cfg, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for wrong field name, got %d", rec.Code)
		}
	})
}

func TestExportProducts(t *testing.T) {
	logg := testLogger()
	db := openTransferTestDB(t)
	exporter := productsvc.NewExporter(productsvc.NewRepository(db))

	req := httptest.NewRequest(http.MethodGet, "/api/products/export", nil)
	rec := httptest.NewRecorder()

	ExportProducts(exporter, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="products.csv"` {
		t.Fatalf("unexpected disposition %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "name,unit,category,brand,stock,status,image") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestProductHistoryEmptyList(t *testing.T) {
	req := withPathID(httptest.NewRequest(http.MethodGet, "/api/products/5/history", nil), "5")
	rec := httptest.NewRecorder()

	ProductHistory(&stubProductService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for unknown product history, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("expected empty array data, got %s", rec.Body.String())
	}
}
