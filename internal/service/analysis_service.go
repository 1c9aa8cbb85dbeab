package service

import (
	"math"

	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
)

// Diversification levels derived from the score.
const (
	DiversificationExcellent = "excellent"
	DiversificationGood      = "good"
	DiversificationLow       = "low"
)

// AnalysisService computes portfolio analytics on top of the valuation
// aggregator: allocation per asset class, concentration, and a composite
// diversification score.
type AnalysisService struct {
	assetRepo *repository.AssetRepository
	valuation *ValuationService
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(assetRepo *repository.AssetRepository, valuation *ValuationService) *AnalysisService {
	return &AnalysisService{assetRepo: assetRepo, valuation: valuation}
}

// Allocation is the valued share of one asset class.
type Allocation struct {
	AssetType  string  `json:"assetType"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// PortfolioAnalysis is the full analytics report for a portfolio.
type PortfolioAnalysis struct {
	TotalValue           float64      `json:"totalValue"`
	AssetCount           int          `json:"assetCount"`
	Allocations          []Allocation `json:"allocations"`
	MaxConcentration     float64      `json:"maxConcentration"`
	Performance          float64      `json:"performance"`
	DiversificationScore float64      `json:"diversificationScore"`
	DiversificationLevel string       `json:"diversificationLevel"`
	Recommendations      []string     `json:"recommendations"`
}

// Analyze values the user's portfolio and derives the analytics report.
func (s *AnalysisService) Analyze(userID string) (PortfolioAnalysis, error) {
	assets, err := s.assetRepo.GetAssets(userID)
	if err != nil {
		return PortfolioAnalysis{}, err
	}

	valuation := s.valuation.Valuate(assets)
	return AnalyzeValuation(valuation), nil
}

// AnalyzeValuation derives the analytics report from an existing valuation.
// It is a pure function over the valuation lines.
func AnalyzeValuation(valuation model.PortfolioValuation) PortfolioAnalysis {
	analysis := PortfolioAnalysis{
		TotalValue:      valuation.TotalValue,
		Performance:     valuation.ProfitLossPercent,
		AssetCount:      len(valuation.Lines),
		Allocations:     make([]Allocation, 0),
		Recommendations: make([]string, 0),
	}
	if analysis.AssetCount == 0 {
		analysis.DiversificationLevel = DiversificationLow
		analysis.Recommendations = append(analysis.Recommendations, "Add assets to start building a portfolio.")
		return analysis
	}

	byType := make(map[string]float64)
	for _, line := range valuation.Lines {
		byType[line.AssetType] += line.Value
	}

	var maxConcentration float64
	for _, assetType := range model.AssetTypes {
		value, ok := byType[assetType]
		if !ok {
			continue
		}
		share := 0.0
		if valuation.TotalValue > 0 {
			share = value / valuation.TotalValue
		}
		if share > maxConcentration {
			maxConcentration = share
		}
		analysis.Allocations = append(analysis.Allocations, Allocation{
			AssetType:  assetType,
			Value:      value,
			Percentage: share * 100,
		})
	}
	analysis.MaxConcentration = maxConcentration * 100

	score := float64(len(byType))*15 - maxConcentration*50 + float64(analysis.AssetCount)*2
	analysis.DiversificationScore = math.Min(100, math.Max(0, score))

	switch {
	case analysis.DiversificationScore >= 70:
		analysis.DiversificationLevel = DiversificationExcellent
	case analysis.DiversificationScore >= 50:
		analysis.DiversificationLevel = DiversificationGood
	default:
		analysis.DiversificationLevel = DiversificationLow
	}

	if maxConcentration > 0.5 {
		analysis.Recommendations = append(analysis.Recommendations,
			"More than half your portfolio sits in a single asset class; consider spreading it out.")
	}
	if len(byType) < 3 {
		analysis.Recommendations = append(analysis.Recommendations,
			"Diversify across more asset classes to reduce risk.")
	}
	if analysis.AssetCount < 5 {
		analysis.Recommendations = append(analysis.Recommendations,
			"Holding more positions smooths out single-asset swings.")
	}
	if len(analysis.Recommendations) == 0 {
		analysis.Recommendations = append(analysis.Recommendations, "Your portfolio is well diversified.")
	}

	return analysis
}
