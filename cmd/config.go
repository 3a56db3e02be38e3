package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/folio"
	"github.com/etnz/folio/quote"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the configuration of the folio command, read from folio.yaml,
// then FOLIO_* environment variables (a .env file is loaded first).
//
// Rates is the value of one unit of each currency in Currency.
// CostBasisOverride, when set, replaces the calculated total cost of the
// selected portfolio.
type Config struct {
	Transactions      string             `mapstructure:"transactions"`
	Quotes            string             `mapstructure:"quotes"`
	Payloads          []PayloadConfig    `mapstructure:"payloads"`
	Currency          string             `mapstructure:"currency"`
	Rates             map[string]float64 `mapstructure:"rates"`
	RiskFreeRate      float64            `mapstructure:"risk_free_rate"`
	CostBasisOverride *float64           `mapstructure:"cost_basis_override"`
	Method            string             `mapstructure:"method"`
	Portfolio         string             `mapstructure:"portfolio"`
	CacheSize         int64              `mapstructure:"cache_size"`
	Log               LogConfig          `mapstructure:"log"`
}

// PayloadConfig declares a vendor payload saved on disk as a price source.
type PayloadConfig struct {
	Symbol    string `mapstructure:"symbol"`
	AssetType string `mapstructure:"asset_type"`
	Path      string `mapstructure:"path"`
	Format    string `mapstructure:"format"` // yahoo or coingecko
	ID        string `mapstructure:"id"`     // coingecko coin id
	VS        string `mapstructure:"vs"`     // coingecko quote currency
}

// LogConfig configures logrus.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("transactions", "transactions.jsonl")
	v.SetDefault("quotes", "")
	v.SetDefault("currency", folio.DefaultCurrency)
	v.SetDefault("risk_free_rate", folio.DefaultRiskFreeRate)
	v.SetDefault("method", folio.FIFO.String())
	v.SetDefault("portfolio", "")
	v.SetDefault("cache_size", 10_000)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
}

// LoadConfig reads the configuration. An empty path looks for folio.yaml in
// the current directory, then in $HOME/.folio; finding none is not an error.
func LoadConfig(path string) (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.folio")
	}

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if v.IsSet("cost_basis_override") {
		override := v.GetFloat64("cost_basis_override")
		cfg.CostBasisOverride = &override
	}
	// viper lower cases map keys.
	rates := make(map[string]float64, len(cfg.Rates))
	for c, r := range cfg.Rates {
		rates[strings.ToUpper(c)] = r
	}
	cfg.Rates = rates
	return &cfg, cfg.validate()
}

func (c *Config) validate() error {
	var errs []error
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if err := folio.ValidateCurrency(c.Currency); err != nil {
		errs = append(errs, fmt.Errorf("currency: %w", err))
	}
	for cur := range c.Rates {
		if err := folio.ValidateCurrency(cur); err != nil {
			errs = append(errs, fmt.Errorf("rates: %w", err))
		}
	}
	if _, err := folio.ParseCostBasisMethod(c.Method); err != nil {
		errs = append(errs, fmt.Errorf("method: %w", err))
	}
	for i, p := range c.Payloads {
		if _, err := p.payload(); err != nil {
			errs = append(errs, fmt.Errorf("payloads[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// payload converts the configuration into a quote.Payload.
func (p PayloadConfig) payload() (quote.Payload, error) {
	key, err := folio.ParseKey(p.Symbol)
	if err != nil {
		return quote.Payload{}, err
	}
	if p.AssetType != "" {
		if key.AssetType, err = folio.ParseAssetType(p.AssetType); err != nil {
			return quote.Payload{}, err
		}
	}
	if p.Path == "" {
		return quote.Payload{}, fmt.Errorf("%s: path is missing", key)
	}
	res := quote.Payload{Key: key, Path: p.Path}
	switch strings.ToLower(p.Format) {
	case "", "yahoo":
		res.JSONPath = quote.Yahoo
	case "coingecko":
		id, vs := p.ID, p.VS
		if id == "" {
			id = strings.ToLower(key.Symbol)
		}
		if vs == "" {
			vs = "usd"
		}
		res.JSONPath = quote.CoinGecko(id, vs)
	default:
		return quote.Payload{}, fmt.Errorf("%s: unknown payload format %q (use yahoo or coingecko)", key, p.Format)
	}
	return res, nil
}
