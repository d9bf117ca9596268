package rate

import (
	"context"
	"p2prates/internal/domain"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

const DefaultStreamInterval = 30 * time.Second

// Stream polls the spot ticker on a fixed schedule and republishes ExchangeRates.
// A failed poll republishes the last known-good record and never stops the schedule.
type Stream struct {
	ticker   *Ticker
	interval time.Duration
	clock    clockwork.Clock

	latest  atomic.Pointer[domain.ExchangeRates]
	updates *Broadcaster[domain.ExchangeRates]
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

func (s *Stream) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(gocron.WithClock(s.clock))
	if err != nil {
		return err
	}

	job := func(jobCtx context.Context) {
		s.poll(jobCtx, uuid.NewString())
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Ticker stream shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Stream) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

// RefreshRates runs one out-of-band poll, independent of the schedule, and returns what was published.
func (s *Stream) RefreshRates(ctx context.Context) domain.ExchangeRates {
	return s.poll(ctx, uuid.NewString())
}

func (s *Stream) Latest() domain.ExchangeRates {
	return *s.latest.Load()
}

func (s *Stream) Subscribe() (<-chan domain.ExchangeRates, func()) {
	return s.updates.Subscribe()
}

func (s *Stream) poll(ctx context.Context, execID string) domain.ExchangeRates {
	rates, err := s.ticker.FetchExchangeRates(ctx)
	if err != nil {
		logrus.WithError(err).Warnf("Ticker poll failed, republishing last known rates; execID: %s", execID)
		rates = *s.latest.Load()
	} else {
		s.latest.Store(&rates)
		logrus.Debugf("Ticker rates %s combined=%s; execID: %s", rates.Symbol, rates.CombinedRate, execID)
	}
	s.updates.Publish(rates)
	return rates
}

func NewStream(ticker *Ticker, interval time.Duration, clock clockwork.Clock) *Stream {
	if interval <= 0 {
		interval = DefaultStreamInterval
	}
	s := &Stream{
		ticker:   ticker,
		interval: interval,
		clock:    clock,
		updates:  NewBroadcaster[domain.ExchangeRates](),
	}
	fallback := ticker.Fallback()
	s.latest.Store(&fallback)
	s.updates.Publish(fallback)
	return s
}
