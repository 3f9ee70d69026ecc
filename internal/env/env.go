package env

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/lidofinance/betfair-aping/internal/pkg/betfair"
)

type Config struct {
	AppConfig AppConfig
}

type AppConfig struct {
	Name          string
	Env           string
	Port          uint
	LogFormat     string
	LogLevel      string
	MetricsPrefix string

	AppKey            string
	Username          string
	Password          string
	BettingURL        string
	AccountURL        string
	IdentityURL       string
	RequestsPerSecond float64

	NatsDefaultURL    string
	MarketBookTopic   string
	MarketIDs         []string
	PollInterval      time.Duration
	KeepAliveInterval time.Duration
}

var (
	cfg Config

	onceDefaultClient sync.Once
)

func Read(configPath string) (*Config, error) {
	var err error

	onceDefaultClient.Do(func() {
		cfg, err = load(viper.New(), configPath)
	})

	return &cfg, err
}

func load(v *viper.Viper, configPath string) (Config, error) {
	v.SetConfigType("env")

	if len(configPath) != 0 {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigFile(".env")
	}

	v.SetDefault("APP_NAME", "betfair-aping")
	v.SetDefault("ENV", "local")
	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_FORMAT", "simple")
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("METRICS_PREFIX", "betfair")
	v.SetDefault("BETFAIR_BETTING_URL", betfair.DefaultBettingURL)
	v.SetDefault("BETFAIR_ACCOUNT_URL", betfair.DefaultAccountURL)
	v.SetDefault("BETFAIR_IDENTITY_URL", betfair.DefaultIdentityURL)
	v.SetDefault("MARKET_BOOK_TOPIC", "betfair.market_books")
	v.SetDefault("POLL_INTERVAL", "5s")
	v.SetDefault("KEEP_ALIVE_INTERVAL", "15m")

	v.AutomaticEnv()
	if readErr := v.ReadInConfig(); readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) && len(configPath) != 0 {
			return Config{}, fmt.Errorf("could not read config %s: %w", configPath, readErr)
		}
	}

	out := Config{
		AppConfig: AppConfig{
			Name:              v.GetString("APP_NAME"),
			Env:               v.GetString("ENV"),
			Port:              v.GetUint("PORT"),
			LogFormat:         v.GetString("LOG_FORMAT"),
			LogLevel:          v.GetString("LOG_LEVEL"),
			MetricsPrefix:     v.GetString("METRICS_PREFIX"),
			AppKey:            v.GetString("BETFAIR_APP_KEY"),
			Username:          v.GetString("BETFAIR_USERNAME"),
			Password:          v.GetString("BETFAIR_PASSWORD"),
			BettingURL:        v.GetString("BETFAIR_BETTING_URL"),
			AccountURL:        v.GetString("BETFAIR_ACCOUNT_URL"),
			IdentityURL:       v.GetString("BETFAIR_IDENTITY_URL"),
			RequestsPerSecond: v.GetFloat64("BETFAIR_REQUESTS_PER_SECOND"),
			NatsDefaultURL:    v.GetString("NATS_DEFAULT_URL"),
			MarketBookTopic:   v.GetString("MARKET_BOOK_TOPIC"),
			MarketIDs:         splitList(v.GetString("MARKET_IDS")),
			PollInterval:      v.GetDuration("POLL_INTERVAL"),
			KeepAliveInterval: v.GetDuration("KEEP_ALIVE_INTERVAL"),
		},
	}

	return out, out.AppConfig.Validate()
}

func (c *AppConfig) Validate() error {
	if c.AppKey == "" {
		return errors.New("BETFAIR_APP_KEY is required")
	}

	if c.PollInterval <= 0 {
		return fmt.Errorf("POLL_INTERVAL must be positive, got %s", c.PollInterval)
	}

	if c.KeepAliveInterval <= 0 {
		return fmt.Errorf("KEEP_ALIVE_INTERVAL must be positive, got %s", c.KeepAliveInterval)
	}

	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("BETFAIR_REQUESTS_PER_SECOND must not be negative, got %v", c.RequestsPerSecond)
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
