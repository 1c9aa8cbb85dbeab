package testutil

import (
	"fmt"
	"strings"
)

// MockPriceClient is a mock implementation of coingecko.Client for testing.
// It serves prices from an in-memory map instead of calling the API.
type MockPriceClient struct {
	// Prices maps coin IDs to the quote to return.
	Prices map[string]float64
	// CoinIDs maps upper-case symbols to coin IDs for SearchCoin.
	CoinIDs map[string]string
	// GetPriceCalls tracks how many times GetPrice was called.
	GetPriceCalls int
}

// NewMockPriceClient creates a mock price client with a few common coins
// preconfigured.
func NewMockPriceClient() *MockPriceClient {
	return &MockPriceClient{
		Prices: map[string]float64{
			"bitcoin":  30000,
			"ethereum": 2000,
		},
		CoinIDs: map[string]string{
			"BTC": "bitcoin",
			"ETH": "ethereum",
		},
	}
}

// WithPrice sets the quote for a coin ID.
func (m *MockPriceClient) WithPrice(coinID string, price float64) *MockPriceClient {
	m.Prices[coinID] = price
	return m
}

// WithCoin registers a symbol to coin ID mapping.
func (m *MockPriceClient) WithCoin(symbol, coinID string) *MockPriceClient {
	m.CoinIDs[strings.ToUpper(symbol)] = coinID
	return m
}

// GetPrice returns the configured quote for coinID, reporting ok=false for
// unknown coins like the real client does on lookup failure.
func (m *MockPriceClient) GetPrice(coinID string) (float64, bool) {
	m.GetPriceCalls++
	price, ok := m.Prices[coinID]
	return price, ok
}

// SearchCoin resolves a symbol through the configured mapping.
func (m *MockPriceClient) SearchCoin(symbol string) (string, error) {
	coinID, ok := m.CoinIDs[strings.ToUpper(symbol)]
	if !ok {
		return "", fmt.Errorf("no coin found for symbol %s", symbol)
	}
	return coinID, nil
}
