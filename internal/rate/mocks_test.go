package rate

import (
	"context"
	"sync"

	"p2prates/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Testify mocks ---

type MockAdvertisementClient struct{ mock.Mock }

func (m *MockAdvertisementClient) FetchAdvertisements(ctx context.Context, side domain.TradeSide) ([]domain.Advertisement, error) {
	args := m.Called(ctx, side)
	ads, _ := args.Get(0).([]domain.Advertisement)
	return ads, args.Error(1)
}

type MockTickerClient struct{ mock.Mock }

func (m *MockTickerClient) GetPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	args := m.Called(ctx, symbol)
	price, _ := args.Get(0).(decimal.Decimal)
	return price, args.Error(1)
}

type MockAdvertisementCache struct{ mock.Mock }

func (m *MockAdvertisementCache) Get(side domain.TradeSide) ([]domain.Advertisement, bool) {
	args := m.Called(side)
	ads, _ := args.Get(0).([]domain.Advertisement)
	return ads, args.Bool(1)
}

func (m *MockAdvertisementCache) Set(side domain.TradeSide, ads []domain.Advertisement) {
	m.Called(side, ads)
}

type MockRateProvider struct{ mock.Mock }

func (m *MockRateProvider) GetRates(ctx context.Context) domain.RatePair {
	args := m.Called(ctx)
	pair, _ := args.Get(0).(domain.RatePair)
	return pair
}

// stubSource hands out queued pairs and counts computations.
type stubSource struct {
	mu       sync.Mutex
	calls    int
	pairs    []domain.RatePair
	err      error
	fallback domain.RatePair
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) ComputeRates(_ context.Context) (domain.RatePair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return domain.RatePair{}, s.err
	}
	pair := s.pairs[0]
	if len(s.pairs) > 1 {
		s.pairs = s.pairs[1:]
	}
	return pair, nil
}

func (s *stubSource) Fallback() domain.RatePair { return s.fallback }

func (s *stubSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *stubSource) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func adsWithPrices(prices ...string) []domain.Advertisement {
	ads := make([]domain.Advertisement, 0, len(prices))
	for _, p := range prices {
		ads = append(ads, domain.Advertisement{Price: dec(p)})
	}
	return ads
}
