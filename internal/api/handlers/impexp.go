package handlers

import (
	"io"
	"net/http"

	"github.com/ljacquet/patrimoine-backend/internal/service"
)

// maxImportSize caps CSV import payloads at 5 MiB.
const maxImportSize = 5 << 20

// ImportExportHandler handles CSV portfolio import and export.
type ImportExportHandler struct {
	impexpService *service.ImportExportService
}

// NewImportExportHandler creates a new ImportExportHandler
func NewImportExportHandler(impexpService *service.ImportExportService) *ImportExportHandler {
	return &ImportExportHandler{
		impexpService: impexpService,
	}
}

// Export streams the acting user's holdings as a CSV attachment.
func (h *ImportExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="portfolio.csv"`)
	if err := h.impexpService.ExportCSV(w, requestUserID(r)); err != nil {
		respondServiceError(w, err, "Failed to export portfolio")
	}
}

// Template streams the CSV import template.
func (h *ImportExportHandler) Template(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="import_template.csv"`)
	if err := h.impexpService.WriteTemplate(w); err != nil {
		respondServiceError(w, err, "Failed to write template")
	}
}

// Import reads a CSV body or multipart "file" field and merges the rows into
// the acting user's portfolio.
func (h *ImportExportHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

	var reader io.Reader = r.Body
	if file, _, err := r.FormFile("file"); err == nil {
		defer file.Close()
		reader = file
	}

	result, err := h.impexpService.ImportCSV(requestUserID(r), reader)
	if err != nil {
		respondServiceError(w, err, "Failed to import portfolio")
		return
	}
	respondJSON(w, http.StatusOK, result)
}
