package service

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ljacquet/patrimoine-backend/internal/model"
)

// PriceResolver resolves an external lookup key to a current price.
// Implementations must treat ordinary failures (unknown key, network error,
// rate limiting) as ok=false, never as a hard error.
type PriceResolver interface {
	GetPrice(coinID string) (float64, bool)
}

// quoteFetchers caps concurrent price lookups per valuation pass.
const quoteFetchers = 4

// ValuationService computes per-asset and portfolio-wide valuations.
// Quotes are prefetched concurrently, then the aggregation itself is a pure
// pass over the asset list so results are deterministic for a fixed quote set.
type ValuationService struct {
	prices PriceResolver
}

// NewValuationService creates a new ValuationService with the provided price resolver.
func NewValuationService(prices PriceResolver) *ValuationService {
	return &ValuationService{prices: prices}
}

// Valuate resolves a live price for every asset that carries a lookup key and
// aggregates the portfolio. Assets without a key, or whose lookup yields no
// value, fall back silently to their purchase price.
func (s *ValuationService) Valuate(assets []model.Asset) model.PortfolioValuation {
	return Aggregate(assets, s.prefetchQuotes(assets))
}

// prefetchQuotes fetches quotes for all distinct lookup keys concurrently.
// Lookup failures simply leave the key out of the map.
func (s *ValuationService) prefetchQuotes(assets []model.Asset) map[string]float64 {
	keys := make(map[string]struct{})
	for _, a := range assets {
		if a.CoinID != "" {
			keys[a.CoinID] = struct{}{}
		}
	}

	quotes := make(map[string]float64, len(keys))
	if len(keys) == 0 {
		return quotes
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(quoteFetchers)

	for key := range keys {
		key := key
		g.Go(func() error {
			if price, ok := s.prices.GetPrice(key); ok {
				mu.Lock()
				quotes[key] = price
				mu.Unlock()
			}
			return nil
		})
	}

	// Workers never return errors; missing quotes degrade to fallback pricing.
	_ = g.Wait()

	return quotes
}

// Aggregate computes one ValuationLine per asset plus portfolio totals from a
// fixed quote set. It is a pure function: no I/O, no side effects, and totals
// are always the exact sums of the per-line values and cost bases.
func Aggregate(assets []model.Asset, quotes map[string]float64) model.PortfolioValuation {
	valuation := model.PortfolioValuation{
		Lines: make([]model.ValuationLine, 0, len(assets)),
	}

	for _, a := range assets {
		currentPrice := a.BuyPrice
		live := false
		if a.CoinID != "" {
			if quote, ok := quotes[a.CoinID]; ok {
				currentPrice = quote
				live = true
			}
		}

		value := a.Quantity * currentPrice
		cost := a.CostBasis()
		pl := value - cost

		line := model.ValuationLine{
			AssetID:           a.ID,
			Name:              a.Name,
			Symbol:            a.Symbol,
			AssetType:         a.AssetType,
			Quantity:          a.Quantity,
			BuyPrice:          a.BuyPrice,
			CurrentPrice:      currentPrice,
			LivePrice:         live,
			Value:             value,
			CostBasis:         cost,
			ProfitLoss:        pl,
			ProfitLossPercent: percentOfCost(pl, cost),
		}

		valuation.Lines = append(valuation.Lines, line)
		valuation.TotalValue += value
		valuation.TotalCost += cost
	}

	valuation.ProfitLoss = valuation.TotalValue - valuation.TotalCost
	valuation.ProfitLossPercent = percentOfCost(valuation.ProfitLoss, valuation.TotalCost)

	return valuation
}

// percentOfCost returns pl / cost * 100, defined as 0 when cost is 0.
func percentOfCost(pl, cost float64) float64 {
	if cost <= 0 {
		return 0
	}
	return pl / cost * 100
}
