package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ljacquet/patrimoine-backend/internal/apperrors"
	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
)

// csvHeaders is the column set for portfolio exports and the required header
// row for imports.
var csvHeaders = []string{"symbol", "quantity", "buy_price", "asset_type", "name"}

// ImportExportService moves portfolios in and out as CSV. Imports merge into
// existing holdings by symbol using a weighted-average cost basis.
type ImportExportService struct {
	assetRepo       *repository.AssetRepository
	transactionRepo *repository.TransactionRepository
}

// NewImportExportService creates a new ImportExportService.
func NewImportExportService(
	assetRepo *repository.AssetRepository,
	transactionRepo *repository.TransactionRepository,
) *ImportExportService {
	return &ImportExportService{assetRepo: assetRepo, transactionRepo: transactionRepo}
}

// ImportResult summarizes a CSV import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Merged   int      `json:"merged"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ExportCSV writes the user's current holdings as CSV.
func (s *ImportExportService) ExportCSV(w io.Writer, userID string) error {
	assets, err := s.assetRepo.GetAssets(userID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, a := range assets {
		record := []string{
			a.Symbol,
			formatFloat(a.Quantity),
			formatFloat(a.BuyPrice),
			a.AssetType,
			a.Name,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTemplate writes an import template: the header row plus one example
// record.
func (s *ImportExportService) WriteTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return err
	}
	if err := cw.Write([]string{"BTC", "0.5", "30000", model.AssetTypeCrypto, "Bitcoin"}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV reads holdings from r and merges them into the user's portfolio.
// A row whose symbol already exists increases that asset's quantity and
// re-averages its purchase price by cost; other rows create new assets. Rows
// that fail to parse are skipped and reported, not fatal. An import where no
// row is usable returns ErrNoValidRecords.
func (s *ImportExportService) ImportCSV(userID string, r io.Reader) (ImportResult, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return ImportResult{}, apperrors.ErrInvalidCSVHeaders
	}
	columns, err := mapColumns(header)
	if err != nil {
		return ImportResult{}, err
	}

	var result ImportResult
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		row, err := parseRow(record, columns)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		merged, err := s.upsertHolding(userID, row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		if merged {
			result.Merged++
		} else {
			result.Imported++
		}
	}

	if result.Imported+result.Merged == 0 {
		return result, apperrors.ErrNoValidRecords
	}
	return result, nil
}

// csvRow is one parsed import record.
type csvRow struct {
	Symbol    string
	Quantity  float64
	BuyPrice  float64
	AssetType string
	Name      string
}

func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range csvHeaders[:3] {
		if _, ok := columns[required]; !ok {
			return nil, apperrors.ErrInvalidCSVHeaders
		}
	}
	return columns, nil
}

func parseRow(record []string, columns map[string]int) (csvRow, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	row := csvRow{
		Symbol:    strings.ToUpper(field("symbol")),
		AssetType: field("asset_type"),
		Name:      field("name"),
	}
	if row.Symbol == "" {
		return csvRow{}, fmt.Errorf("missing symbol")
	}

	var err error
	if row.Quantity, err = strconv.ParseFloat(field("quantity"), 64); err != nil {
		return csvRow{}, fmt.Errorf("invalid quantity %q", field("quantity"))
	}
	if row.BuyPrice, err = strconv.ParseFloat(field("buy_price"), 64); err != nil {
		return csvRow{}, fmt.Errorf("invalid buy_price %q", field("buy_price"))
	}
	if row.Quantity < 0 || row.BuyPrice < 0 {
		return csvRow{}, apperrors.ErrNegativeAmount
	}

	if row.AssetType == "" {
		row.AssetType = model.AssetTypeOther
	}
	if row.Name == "" {
		row.Name = row.Symbol
	}
	return row, nil
}

// upsertHolding merges a row into an existing asset by symbol or creates a
// new one. Merges take the cost-weighted average of the old and new purchase
// prices. Reports whether the row merged into an existing asset.
func (s *ImportExportService) upsertHolding(userID string, row csvRow) (bool, error) {
	existing, err := s.assetRepo.GetAssetBySymbol(userID, row.Symbol)
	if err == nil {
		totalQuantity := existing.Quantity + row.Quantity
		if totalQuantity > 0 {
			existing.BuyPrice = (existing.CostBasis() + row.Quantity*row.BuyPrice) / totalQuantity
		}
		existing.Quantity = totalQuantity
		if err := s.assetRepo.UpdateAsset(existing); err != nil {
			return false, err
		}
		return true, s.recordImportBuy(userID, row)
	}
	if !errors.Is(err, apperrors.ErrAssetNotFound) {
		return false, err
	}

	asset := model.Asset{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         row.Name,
		Symbol:       row.Symbol,
		AssetType:    row.AssetType,
		Quantity:     row.Quantity,
		BuyPrice:     row.BuyPrice,
		PurchaseDate: time.Now().UTC(),
		Currency:     "EUR",
	}
	if err := s.assetRepo.InsertAsset(asset); err != nil {
		return false, err
	}
	return false, s.recordImportBuy(userID, row)
}

func (s *ImportExportService) recordImportBuy(userID string, row csvRow) error {
	return s.transactionRepo.InsertTransaction(model.Transaction{
		ID:        uuid.New().String(),
		UserID:    userID,
		Symbol:    row.Symbol,
		Type:      model.TransactionTypeBuy,
		Quantity:  row.Quantity,
		Price:     row.BuyPrice,
		Date:      time.Now().UTC(),
		AssetName: row.Name,
		AssetType: row.AssetType,
	})
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
