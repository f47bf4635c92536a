package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileEnvName = "STOREFRONT_CONFIG_FILE"
	envPrefix         = "STOREFRONT"
)

type catalog struct {
	FakeStoreURL string        `mapstructure:"fakestore_url"`
	ReactBDURL   string        `mapstructure:"reactbd_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Attempts     int           `mapstructure:"attempts"`
	Backoff      time.Duration `mapstructure:"backoff"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
}

type checkout struct {
	TaxRate      float64 `mapstructure:"tax_rate"`
	DeliveryDays int     `mapstructure:"delivery_days"`
}

type topics struct {
	Orders string `mapstructure:"orders"`
}

type consumers struct {
	OrderHistoryGroup string `mapstructure:"order_history_group"`
}

type tlsFiles struct {
	CA   string `mapstructure:"ca"`
	Cert string `mapstructure:"cert"`
	Key  string `mapstructure:"key"`
}

// Enabled reports whether all three files are set.
func (t tlsFiles) Enabled() bool {
	return t.CA != "" && t.Cert != "" && t.Key != ""
}

type broker struct {
	SeedBrokers        []string  `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string  `mapstructure:"schema_registry_urls"`
	Topics             topics    `mapstructure:"topics"`
	Consumers          consumers `mapstructure:"consumers"`
	TLS                tlsFiles  `mapstructure:"tls"`
}

// Enabled reports whether order events are published to Kafka.
func (b broker) Enabled() bool {
	return len(b.SeedBrokers) != 0
}

type Config struct {
	LogLevel           slog.Level    `mapstructure:"log_level"`
	HTTPServerAddr     string        `mapstructure:"http_server_addr"`
	HTTPHandlerTimeout time.Duration `mapstructure:"http_handler_timeout"`
	SQLDB              string        `mapstructure:"sql_db"`
	Catalog            catalog       `mapstructure:"catalog"`
	Checkout           checkout      `mapstructure:"checkout"`
	Broker             broker        `mapstructure:"broker"`
}

var defaults = map[string]any{
	"log_level":            "info",
	"http_server_addr":     ":8080",
	"http_handler_timeout": 5 * time.Second,
	"sql_db":               "",

	"catalog.fakestore_url": "https://fakestoreapi.com",
	"catalog.reactbd_url":   "https://fakestoreapiserver.reactbd.org/api",
	"catalog.timeout":       10 * time.Second,
	"catalog.attempts":      1,
	"catalog.backoff":       200 * time.Millisecond,
	"catalog.cache_ttl":     time.Duration(0),

	"checkout.tax_rate":      0.08,
	"checkout.delivery_days": 5,

	"broker.seed_brokers":                  []string{},
	"broker.schema_registry_urls":          []string{},
	"broker.topics.orders":                 "storefront-orders",
	"broker.consumers.order_history_group": "storefront-order-history",
	"broker.tls.ca":                        "",
	"broker.tls.cert":                      "",
	"broker.tls.key":                       "",
}

func Load() Config {
	cfg, err := LoadFile(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

// LoadFile reads the YAML file at path over the defaults. An empty path
// loads the defaults only. STOREFRONT_* environment variables override
// both, e.g. STOREFRONT_CATALOG_TIMEOUT for catalog.timeout.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	err := v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Catalog.Attempts < 1:
		return fmt.Errorf("catalog.attempts: must be positive, got %d", c.Catalog.Attempts)
	case c.Catalog.Timeout <= 0:
		return fmt.Errorf("catalog.timeout: must be positive, got %s", c.Catalog.Timeout)
	case c.Checkout.TaxRate < 0:
		return fmt.Errorf("checkout.tax_rate: must not be negative, got %v", c.Checkout.TaxRate)
	case c.Checkout.DeliveryDays < 0:
		return fmt.Errorf("checkout.delivery_days: must not be negative, got %d", c.Checkout.DeliveryDays)
	case c.Broker.Enabled() && len(c.Broker.SchemaRegistryURLs) == 0:
		return fmt.Errorf("broker.schema_registry_urls: required with seed brokers")
	}
	return nil
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	cmdLine.ParseErrorsWhitelist.UnknownFlags = true
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	HTTPHandlerTimeout=%q
	SQLDB=%t

	Catalog:
	FakeStoreURL=%q
	ReactBDURL=%q
	Timeout=%q
	Attempts=%d
	Backoff=%q
	CacheTTL=%q

	Checkout:
	TaxRate=%v
	DeliveryDays=%d

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	TLS=%t
	Topics:
		Orders=%q
	Consumers:
		OrderHistoryGroup=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.HTTPHandlerTimeout,
		c.SQLDB != "",
		c.Catalog.FakeStoreURL,
		c.Catalog.ReactBDURL,
		c.Catalog.Timeout,
		c.Catalog.Attempts,
		c.Catalog.Backoff,
		c.Catalog.CacheTTL,
		c.Checkout.TaxRate,
		c.Checkout.DeliveryDays,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.TLS.Enabled(),
		c.Broker.Topics.Orders,
		c.Broker.Consumers.OrderHistoryGroup,
	)
}
