package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	pkgerrors "github.com/stockpilehq/inventory-backend/pkg/errors"
)

// ParsePathID reads a numeric id path parameter.
func ParsePathID(r *http.Request, key string) (uint, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "path parameter must be a numeric id").
			WithDetails(map[string]any{"field": key})
	}
	return uint(value), nil
}
