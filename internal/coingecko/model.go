package coingecko

// SimplePriceResponse is the raw /simple/price response, keyed by coin id
// then by quote currency.
//
// Example: {"bitcoin": {"usd": 64231.12}}
type SimplePriceResponse map[string]map[string]float64

// SearchResponse is the raw /search response.
type SearchResponse struct {
	Coins []SearchCoin `json:"coins"`
}

// SearchCoin is one coin entry in a search result.
type SearchCoin struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	MarketCapRank int    `json:"market_cap_rank"`
}
