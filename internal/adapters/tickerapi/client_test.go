package tickerapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"p2prates/internal/domain"

	"github.com/stretchr/testify/require"
)

func newTickerServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/ticker/price" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query().Get("symbol")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &gotQuery
}

func TestClient_GetPrice_Success(t *testing.T) {
	srv, gotSymbol := newTickerServer(t, http.StatusOK, `[{"symbol":"USDTUSD","price":"1.00020000"}]`)
	c := NewClient(srv.Client(), srv.URL+"/")

	price, err := c.GetPrice(context.Background(), "USDTUSD")
	require.NoError(t, err)
	require.Equal(t, "USDTUSD", *gotSymbol)
	require.Equal(t, "1.0002", price.String())
}

func TestClient_GetPrice_MalformedPrice(t *testing.T) {
	srv, _ := newTickerServer(t, http.StatusOK, `[{"symbol":"USDTUSD","price":"n/a"}]`)
	c := NewClient(srv.Client(), srv.URL)

	_, err := c.GetPrice(context.Background(), "USDTUSD")
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrMalformedPrice))
}

func TestClient_GetPrice_EmptyList(t *testing.T) {
	srv, _ := newTickerServer(t, http.StatusOK, `[]`)
	c := NewClient(srv.Client(), srv.URL)

	_, err := c.GetPrice(context.Background(), "USDTUSD")
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty prices")
	require.False(t, errors.Is(err, domain.ErrMalformedPrice))
}

func TestClient_GetPrice_StatusError(t *testing.T) {
	srv, _ := newTickerServer(t, http.StatusBadRequest, `{"code":-1121,"msg":"Invalid symbol."}`)
	c := NewClient(srv.Client(), srv.URL)

	_, err := c.GetPrice(context.Background(), "NOPE")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to fetch ticker price for \"NOPE\"")
	require.False(t, errors.Is(err, domain.ErrMalformedPrice))
}
