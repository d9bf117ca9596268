package app

import (
	"net/http"
	"testing"

	"p2prates/internal/config"
	"p2prates/internal/domain"
	"p2prates/internal/rate"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testConfig(source string) *config.AppConfig {
	return &config.AppConfig{
		P2P: config.P2P{
			BaseURL:      "http://127.0.0.1:0/search",
			Asset:        "USDT",
			Fiat:         "BOB",
			Rows:         10,
			FallbackBuy:  7.0,
			FallbackSell: 6.8,
		},
		Ticker: config.Ticker{
			BaseURL:       "http://127.0.0.1:0",
			Symbol:        "USDTUSD",
			AnchorRate:    6.96,
			FallbackRatio: 1.0,
			IntervalSec:   30,
		},
		Rates: config.Rates{
			Source:          source,
			StaleAfterSec:   30,
			TopAdsLimit:     5,
			AdsCacheMaxItem: 16,
		},
	}
}

func TestNewServices_SelectsSource(t *testing.T) {
	cases := []struct {
		source   string
		wantName string
		wantBuy  string
		wantSell string
	}{
		{source: "", wantName: rate.SourceP2P, wantBuy: "7", wantSell: "6.8"},
		{source: "p2p", wantName: rate.SourceP2P, wantBuy: "7", wantSell: "6.8"},
		{source: "ticker", wantName: rate.SourceTicker, wantBuy: "6.96", wantSell: "6.96"},
	}

	for _, tc := range cases {
		t.Run(tc.source, func(t *testing.T) {
			svc, err := newServices(testConfig(tc.source), http.DefaultClient, clockwork.NewFakeClock())
			require.NoError(t, err)
			t.Cleanup(svc.adsCache.Close)

			require.Equal(t, tc.wantName, svc.source.Name())

			// before any refresh the cache serves the source fallback
			current := svc.cache.Current()
			require.True(t, decimal.RequireFromString(tc.wantBuy).Equal(current.BuyPrice), current.BuyPrice.String())
			require.True(t, decimal.RequireFromString(tc.wantSell).Equal(current.SellPrice), current.SellPrice.String())
			require.True(t, svc.cache.IsStale())
		})
	}
}

func TestNewServices_UnknownSource(t *testing.T) {
	_, err := newServices(testConfig("oracle"), http.DefaultClient, clockwork.NewFakeClock())
	require.ErrorIs(t, err, domain.ErrUnknownSource)
}

func TestNewServices_DefaultStaleAfter(t *testing.T) {
	cfg := testConfig("p2p")
	cfg.Rates.StaleAfterSec = 0

	svc, err := newServices(cfg, http.DefaultClient, clockwork.NewFakeClock())
	require.NoError(t, err)
	t.Cleanup(svc.adsCache.Close)
	require.Equal(t, rate.DefaultStaleAfter, svc.cache.StaleAfter())
}
