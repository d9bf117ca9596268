package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"p2prates/internal/adapters/cache"
	"p2prates/internal/adapters/httpclient"
	"p2prates/internal/adapters/tickerapi"
	"p2prates/internal/api"
	"p2prates/internal/config"
	httpserver "p2prates/internal/platform/http"
	"p2prates/internal/rate"
	"p2prates/internal/rate/handler"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and ticker stream
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	svc, err := newServices(appCfg, baseHTTPClient, clockwork.NewRealClock())
	if err != nil {
		logrus.WithError(err).Error("Failed to build rate services")
		return err
	}
	defer svc.adsCache.Close()
	logrus.WithField("source", svc.source.Name()).Info("✅ Rate source selected")

	// Warm the cache in the background, readers get the fallback pair until it lands
	svc.cache.ForceRefresh(ctx)

	// Ensure the ticker schedule stops before exit
	defer func() {
		if shutDownErr := svc.stream.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Ticker stream shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := svc.stream.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start ticker stream")
		return startErr
	}
	logrus.Info("✅ Ticker stream activation successful")

	// Handlers and router
	rateHandler := handler.NewRateHandler(svc.cache, svc.engine, svc.aggregator, svc.stream, appCfg.Rates.TopAdsLimit)
	router := api.NewRouter(rateHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop the stream and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

type services struct {
	adsCache   *cache.RistrettoAdvertisementCache
	aggregator *rate.Aggregator
	source     rate.RateSource
	cache      *rate.Cache
	engine     *rate.Engine
	stream     *rate.Stream
}

// newServices builds the rate pipeline from config without starting anything.
func newServices(appCfg *config.AppConfig, httpClient *http.Client, clock clockwork.Clock) (*services, error) {
	staleAfter := time.Duration(appCfg.Rates.StaleAfterSec) * time.Second
	if staleAfter <= 0 {
		staleAfter = rate.DefaultStaleAfter
	}

	// listings live as long as a computed pair
	adsCache, err := cache.NewAdvertisementCache(appCfg.Rates.AdsCacheMaxItem, staleAfter)
	if err != nil {
		return nil, err
	}

	p2pClient := httpclient.NewP2PClient(httpClient, appCfg.P2P.BaseURL, appCfg.P2P.Asset, appCfg.P2P.Fiat, appCfg.P2P.Rows)
	fetcher := rate.NewQuoteFetcher(p2pClient, adsCache)
	aggregator := rate.NewAggregator(fetcher,
		decimal.NewFromFloat(appCfg.P2P.FallbackBuy),
		decimal.NewFromFloat(appCfg.P2P.FallbackSell),
		clock,
	)

	tickerClient := tickerapi.NewClient(httpClient, appCfg.Ticker.BaseURL)
	ticker := rate.NewTicker(tickerClient, appCfg.Ticker.Symbol,
		decimal.NewFromFloat(appCfg.Ticker.AnchorRate),
		decimal.NewFromFloat(appCfg.Ticker.FallbackRatio),
		clock,
	)

	source, err := rate.NewSource(appCfg.Rates.Source, aggregator, ticker)
	if err != nil {
		adsCache.Close()
		return nil, err
	}

	rateCache := rate.NewCache(source, staleAfter, clock)
	return &services{
		adsCache:   adsCache,
		aggregator: aggregator,
		source:     source,
		cache:      rateCache,
		engine:     rate.NewEngine(rateCache, clock),
		stream:     rate.NewStream(ticker, time.Duration(appCfg.Ticker.IntervalSec)*time.Second, clock),
	}, nil
}
