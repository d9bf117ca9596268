package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultConfigPath = "config.yaml"

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

// P2P describes the marketplace search endpoint and the fallback quotes used when it has no listings.
type P2P struct {
	BaseURL      string  `mapstructure:"base_url"`
	Asset        string  `mapstructure:"asset"`
	Fiat         string  `mapstructure:"fiat"`
	Rows         int     `mapstructure:"rows"`
	FallbackBuy  float64 `mapstructure:"fallback_buy"`
	FallbackSell float64 `mapstructure:"fallback_sell"`
}

type Ticker struct {
	BaseURL       string  `mapstructure:"base_url"`
	Symbol        string  `mapstructure:"symbol"`
	AnchorRate    float64 `mapstructure:"anchor_rate"`
	FallbackRatio float64 `mapstructure:"fallback_ratio"`
	IntervalSec   int     `mapstructure:"interval_sec"`
}

type Rates struct {
	Source          string `mapstructure:"source"`
	StaleAfterSec   int    `mapstructure:"stale_after_sec"`
	TopAdsLimit     int    `mapstructure:"top_ads_limit"`
	AdsCacheMaxItem int64  `mapstructure:"ads_cache_max_items"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Logging    Logging    `mapstructure:"logging"`
	P2P        P2P        `mapstructure:"p2p"`
	Ticker     Ticker     `mapstructure:"ticker"`
	Rates      Rates      `mapstructure:"rates"`
}

// Init reads config.yaml (or the file named by CONFIG_PATH), applies defaults and env overrides.
func Init() (*AppConfig, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	return Load(path)
}

func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional, a broken one is not
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("logging.level", "info")

	v.SetDefault("p2p.base_url", "https://p2p.binance.com/bapi/c2c/v2/friendly/c2c/adv/search")
	v.SetDefault("p2p.asset", "USDT")
	v.SetDefault("p2p.fiat", "BOB")
	v.SetDefault("p2p.rows", 10)
	v.SetDefault("p2p.fallback_buy", 7.0)
	v.SetDefault("p2p.fallback_sell", 6.8)

	v.SetDefault("ticker.base_url", "https://api.binance.us")
	v.SetDefault("ticker.symbol", "USDTUSD")
	v.SetDefault("ticker.anchor_rate", 6.96)
	v.SetDefault("ticker.fallback_ratio", 1.0)
	v.SetDefault("ticker.interval_sec", 30)

	v.SetDefault("rates.source", "p2p")
	v.SetDefault("rates.stale_after_sec", 30)
	v.SetDefault("rates.top_ads_limit", 5)
	v.SetDefault("rates.ads_cache_max_items", 16)

	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	// p2p env vars
	_ = v.BindEnv("p2p.base_url", "P2P_BASE_URL")
	_ = v.BindEnv("p2p.fallback_buy", "P2P_FALLBACK_BUY")
	_ = v.BindEnv("p2p.fallback_sell", "P2P_FALLBACK_SELL")

	// ticker env vars
	_ = v.BindEnv("ticker.base_url", "TICKER_BASE_URL")
	_ = v.BindEnv("ticker.symbol", "TICKER_SYMBOL")
	_ = v.BindEnv("ticker.anchor_rate", "TICKER_ANCHOR_RATE")
	_ = v.BindEnv("ticker.interval_sec", "TICKER_INTERVAL_SEC")

	_ = v.BindEnv("rates.source", "RATES_SOURCE")
	_ = v.BindEnv("rates.stale_after_sec", "RATES_STALE_AFTER_SEC")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
