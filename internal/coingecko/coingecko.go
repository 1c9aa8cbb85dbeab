package coingecko

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the interface for CoinGecko price lookups. It exists so services
// can be tested with a mock client instead of live API calls.
type Client interface {
	GetPrice(coinID string) (float64, bool)
	SearchCoin(symbol string) (string, error)
}

// PriceClient provides methods for fetching price data from the CoinGecko API.
// It wraps an HTTP client with a request timeout; callers treat lookups as
// opaque, fallible, blocking calls and never wait longer than that timeout.
type PriceClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPriceClient creates a new CoinGecko client for the given API base URL.
//
// Returns:
//   - *PriceClient: A new client instance ready for use
func NewPriceClient(baseURL string) *PriceClient {
	return &PriceClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetPrice fetches the current USD price for a coin id.
//
// Ordinary failure modes (unknown id, network error, rate limiting, malformed
// body) all surface as ok=false rather than an error: a missing quote degrades
// valuation precision, never availability.
//
// Parameters:
//   - coinID: CoinGecko coin identifier (e.g. "bitcoin", "ethereum")
//
// Returns:
//   - float64: The current price in USD
//   - bool: true if a usable price was returned, false otherwise
func (c *PriceClient) GetPrice(coinID string) (float64, bool) {
	if coinID == "" {
		return 0, false
	}

	endpoint := fmt.Sprintf(
		"%s/simple/price?ids=%s&vs_currencies=usd",
		c.baseURL,
		url.QueryEscape(coinID),
	)

	var result SimplePriceResponse
	if err := c.query(endpoint, &result); err != nil {
		return 0, false
	}

	quotes, exists := result[coinID]
	if !exists {
		return 0, false
	}

	price, exists := quotes["usd"]
	if !exists || price <= 0 {
		return 0, false
	}

	return price, true
}

// SearchCoin resolves a ticker symbol to a CoinGecko coin id.
// The first coin whose symbol matches (case-insensitive) wins; when no symbol
// matches exactly, the top-ranked search result is used.
//
// Parameters:
//   - symbol: Ticker symbol (e.g. "BTC", "ETH")
//
// Returns:
//   - string: The resolved coin id, or "" when nothing matched
//   - error: If the HTTP request or response parsing fails
func (c *PriceClient) SearchCoin(symbol string) (string, error) {
	if symbol == "" {
		return "", nil
	}

	endpoint := fmt.Sprintf("%s/search?query=%s", c.baseURL, url.QueryEscape(symbol))

	var result SearchResponse
	if err := c.query(endpoint, &result); err != nil {
		return "", err
	}

	if len(result.Coins) == 0 {
		return "", nil
	}

	for _, coin := range result.Coins {
		if strings.EqualFold(coin.Symbol, symbol) {
			return coin.ID, nil
		}
	}

	return result.Coins[0].ID, nil
}

// query is an internal helper that executes HTTP requests to the CoinGecko API
// and decodes the JSON response into out.
func (c *PriceClient) query(endpoint string, out any) error {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("coingecko returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return err
	}

	return nil
}
