package rate

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"p2prates/internal/domain"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func pairAt(buy, sell string, ts time.Time) domain.RatePair {
	return domain.NewRatePair(dec(buy), dec(sell), ts, "stub")
}

func newTestCache(src *stubSource) (*Cache, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(fixedNow)
	return NewCache(src, 30*time.Second, clock), clock
}

func TestCache_StartsStaleWithFallback(t *testing.T) {
	src := &stubSource{fallback: pairAt("7.0", "6.8", time.Time{}), pairs: []domain.RatePair{pairAt("7.02", "6.90", fixedNow)}}
	cache, _ := newTestCache(src)

	require.True(t, cache.IsStale())
	require.True(t, cache.Current().BuyPrice.Equal(dec("7.0")))
	require.Equal(t, 0, src.Calls())

	pair := cache.GetRates(context.Background())
	require.True(t, pair.BuyPrice.Equal(dec("7.02")))
	require.False(t, cache.IsStale())
	require.Equal(t, 1, src.Calls())
}

func TestCache_FreshWithinThreshold_NoRecompute(t *testing.T) {
	src := &stubSource{pairs: []domain.RatePair{pairAt("7.02", "6.90", fixedNow), pairAt("7.50", "7.40", fixedNow)}}
	cache, clock := newTestCache(src)
	ctx := context.Background()

	first := cache.GetRates(ctx)
	clock.Advance(10 * time.Second)
	second := cache.GetRates(ctx)
	clock.Advance(20 * time.Second) // exactly at the threshold, still fresh
	third := cache.GetRates(ctx)

	require.Equal(t, first, second)
	require.Equal(t, first, third)
	require.Equal(t, 1, src.Calls())
}

func TestCache_StaleAfterThreshold_RecomputesOnce(t *testing.T) {
	src := &stubSource{pairs: []domain.RatePair{pairAt("7.02", "6.90", fixedNow), pairAt("7.50", "7.40", fixedNow)}}
	cache, clock := newTestCache(src)
	ctx := context.Background()

	_ = cache.GetRates(ctx)
	clock.Advance(31 * time.Second)

	refreshed := cache.GetRates(ctx)
	again := cache.GetRates(ctx)

	require.True(t, refreshed.BuyPrice.Equal(dec("7.50")))
	require.Equal(t, refreshed, again)
	require.Equal(t, 2, src.Calls())
}

func TestCache_FailedRefreshKeepsStaleValue(t *testing.T) {
	src := &stubSource{pairs: []domain.RatePair{pairAt("7.02", "6.90", fixedNow)}}
	cache, clock := newTestCache(src)
	ctx := context.Background()

	first := cache.GetRates(ctx)
	clock.Advance(time.Minute)
	src.SetErr(errors.New("ticker down"))

	got := cache.GetRates(ctx)

	require.Equal(t, first, got)
	require.True(t, cache.IsStale())
	require.Equal(t, 2, src.Calls())
}

func TestCache_ForceRefresh_ObservableThroughSubscription(t *testing.T) {
	src := &stubSource{
		fallback: pairAt("7.0", "6.8", time.Time{}),
		pairs:    []domain.RatePair{pairAt("7.02", "6.90", fixedNow), pairAt("7.10", "6.95", fixedNow)},
	}
	cache, _ := newTestCache(src)
	ctx := context.Background()
	_ = cache.GetRates(ctx)

	updates, cancel := cache.Subscribe()
	defer cancel()
	current := <-updates
	require.True(t, current.BuyPrice.Equal(dec("7.02")))

	// fresh pair, yet the refresh must still happen
	cache.ForceRefresh(ctx)

	select {
	case pair := <-updates:
		require.True(t, pair.BuyPrice.Equal(dec("7.10")))
	case <-time.After(2 * time.Second):
		t.Fatal("forced refresh was not published")
	}
	require.True(t, cache.GetRates(ctx).BuyPrice.Equal(dec("7.10")))
	require.Equal(t, 2, src.Calls())
}

func TestCache_ForceRefresh_SurvivesCallerCancellation(t *testing.T) {
	src := &stubSource{pairs: []domain.RatePair{pairAt("7.02", "6.90", fixedNow)}}
	cache, _ := newTestCache(src)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cache.ForceRefresh(ctx)

	require.Eventually(t, func() bool { return src.Calls() == 1 }, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return !cache.IsStale() }, 2*time.Second, 10*time.Millisecond)
}

func TestCache_SubscribeReceivesFallbackFirst(t *testing.T) {
	src := &stubSource{fallback: pairAt("7.0", "6.8", time.Time{}), pairs: []domain.RatePair{pairAt("7.02", "6.90", fixedNow)}}
	cache, _ := newTestCache(src)

	updates, cancel := cache.Subscribe()
	first := <-updates
	require.True(t, first.BuyPrice.Equal(dec("7.0")))

	_ = cache.GetRates(context.Background())
	second := <-updates
	require.True(t, second.BuyPrice.Equal(dec("7.02")))

	cancel()
	_, open := <-updates
	require.False(t, open)
}

func TestNewCache_DefaultStaleAfter(t *testing.T) {
	cache := NewCache(&stubSource{}, 0, clockwork.NewFakeClock())
	require.Equal(t, DefaultStaleAfter, cache.StaleAfter())
}

// blockingSource computes only after release is closed, or fails when its ctx ends.
type blockingSource struct {
	started  chan struct{}
	release  chan struct{}
	pair     domain.RatePair
	fallback domain.RatePair
	calls    atomic.Int32
}

func (s *blockingSource) Name() string { return "blocking" }

func (s *blockingSource) ComputeRates(ctx context.Context) (domain.RatePair, error) {
	s.calls.Add(1)
	s.started <- struct{}{}
	select {
	case <-s.release:
		return s.pair, nil
	case <-ctx.Done():
		return domain.RatePair{}, ctx.Err()
	}
}

func (s *blockingSource) Fallback() domain.RatePair { return s.fallback }

func TestCache_CancelledReaderDoesNotFailSharedRefresh(t *testing.T) {
	src := &blockingSource{
		started:  make(chan struct{}, 1),
		release:  make(chan struct{}),
		pair:     pairAt("7.02", "6.90", fixedNow),
		fallback: pairAt("7.0", "6.8", time.Time{}),
	}
	cache := NewCache(src, 30*time.Second, clockwork.NewFakeClockAt(fixedNow))

	firstCtx, cancel := context.WithCancel(context.Background())
	firstDone := make(chan domain.RatePair, 1)
	go func() { firstDone <- cache.GetRates(firstCtx) }()
	<-src.started

	secondDone := make(chan domain.RatePair, 1)
	go func() { secondDone <- cache.GetRates(context.Background()) }()

	cancel()
	select {
	case pair := <-firstDone:
		// the cancelled reader leaves early with what is cached
		require.True(t, pair.BuyPrice.Equal(dec("7.0")))
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled reader kept waiting for the computation")
	}

	close(src.release)
	select {
	case pair := <-secondDone:
		require.True(t, pair.BuyPrice.Equal(dec("7.02")), pair.BuyPrice.String())
	case <-time.After(2 * time.Second):
		t.Fatal("reader did not get the refreshed pair")
	}
	require.False(t, cache.IsStale())
	require.EqualValues(t, 1, src.calls.Load())
}
