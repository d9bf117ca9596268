package tickerapi

import (
	"context"
	"fmt"
	"net/http"
	"p2prates/internal/domain"
	"strings"

	"github.com/adshao/go-binance/v2"
	"github.com/shopspring/decimal"
)

// Client reads spot ticker prices through the exchange's public price endpoint.
type Client struct {
	client *binance.Client
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	// the ticker endpoint is public, no credentials required
	c := binance.NewClient("", "")
	if httpClient != nil {
		c.HTTPClient = httpClient
	}
	if baseURL != "" {
		c.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	return &Client{client: c}
}

// GetPrice returns the last traded price for symbol. An unparseable price is reported as domain.ErrMalformedPrice.
func (c *Client) GetPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	prices, err := c.client.NewListPricesService().Symbol(symbol).Do(ctx)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to fetch ticker price for %q: %w", symbol, err)
	}
	if len(prices) == 0 {
		return decimal.Decimal{}, fmt.Errorf("ticker api returned empty prices for %q", symbol)
	}

	price, err := decimal.NewFromString(prices[0].Price)
	if err != nil || !price.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w for %q: %q", domain.ErrMalformedPrice, symbol, prices[0].Price)
	}
	return price, nil
}
