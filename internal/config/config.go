package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/viper"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageMemory   = "memory"
)

type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	// TrustedProxies may set X-Forwarded-For. Empty means the peer address is the client.
	TrustedProxies []string
}

type StorageConfig struct {
	Driver string
	DSN    string
}

type DynamoConfig struct {
	Region        string
	Endpoint      string
	QuotesTable   string
	ContactsTable string
	DepositsTable string
}

type PricingConfig struct {
	Variant string
	File    string
}

type PaymentsConfig struct {
	AccessToken    string
	MockMode       bool
	DepositPercent float64
	TestPayerEmail string
}

type NotifyConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	From         string
	To           string
}

type Config struct {
	Environment string
	LogLevel    string
	HTTP        HTTPConfig
	Storage     StorageConfig
	Dynamo      DynamoConfig
	Pricing     PricingConfig
	Payments    PaymentsConfig
	Notify      NotifyConfig
	PhoneRegion string
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

// SMTPEnabled reports whether notifications go out by e-mail instead of the log.
func (c *Config) SMTPEnabled() bool {
	return c.Notify.SMTPHost != ""
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()
	setDefaults(v)

	_ = v.ReadInConfig()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_RPS", 2)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("QUOTES_TABLE", "quotes")
	v.SetDefault("CONTACTS_TABLE", "contact_messages")
	v.SetDefault("DEPOSITS_TABLE", "deposits")
	v.SetDefault("DEPOSIT_PERCENT", 20)
	v.SetDefault("PAYMENT_GATEWAY_MOCK", false)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("PHONE_REGION", "NZ")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTP: HTTPConfig{
			Host:           v.GetString("HTTP_HOST"),
			Port:           v.GetInt("HTTP_PORT"),
			AllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
			RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
			TrustedProxies: parseList(v.GetString("TRUSTED_PROXIES")),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
			DSN:    v.GetString("DB_DSN"),
		},
		Dynamo: DynamoConfig{
			Region:        v.GetString("AWS_REGION"),
			Endpoint:      v.GetString("DYNAMODB_ENDPOINT"),
			QuotesTable:   v.GetString("QUOTES_TABLE"),
			ContactsTable: v.GetString("CONTACTS_TABLE"),
			DepositsTable: v.GetString("DEPOSITS_TABLE"),
		},
		Pricing: PricingConfig{
			Variant: strings.ToLower(strings.TrimSpace(v.GetString("PRICING_VARIANT"))),
			File:    v.GetString("PRICING_FILE"),
		},
		Payments: PaymentsConfig{
			AccessToken:    v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
			MockMode:       v.GetBool("PAYMENT_GATEWAY_MOCK"),
			DepositPercent: v.GetFloat64("DEPOSIT_PERCENT"),
			TestPayerEmail: v.GetString("MERCADOPAGO_TEST_PAYER_EMAIL"),
		},
		Notify: NotifyConfig{
			SMTPHost:     v.GetString("SMTP_HOST"),
			SMTPPort:     v.GetInt("SMTP_PORT"),
			SMTPUsername: v.GetString("SMTP_USERNAME"),
			SMTPPassword: v.GetString("SMTP_PASSWORD"),
			From:         v.GetString("NOTIFY_FROM"),
			To:           v.GetString("NOTIFY_TO"),
		},
		PhoneRegion: strings.ToUpper(v.GetString("PHONE_REGION")),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Storage.Driver {
	case StorageMemory, StorageDynamoDB:
	case StoragePostgres, StorageSQLite:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("DB_DSN is required for STORAGE_DRIVER=%s", cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
	switch cfg.Pricing.Variant {
	case "", "area_rate", "labor_hours":
	default:
		return fmt.Errorf("unsupported PRICING_VARIANT %q", cfg.Pricing.Variant)
	}
	if cfg.HTTP.Port <= 0 {
		return fmt.Errorf("HTTP_PORT must be positive")
	}
	if cfg.HTTP.RateLimitRPS < 0 || cfg.HTTP.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative")
	}
	for _, p := range cfg.HTTP.TrustedProxies {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP or CIDR", p)
			}
		}
	}
	if cfg.Payments.DepositPercent <= 0 || cfg.Payments.DepositPercent > 100 {
		return fmt.Errorf("DEPOSIT_PERCENT must be in (0, 100]")
	}
	if cfg.SMTPEnabled() && (cfg.Notify.From == "" || cfg.Notify.To == "") {
		return fmt.Errorf("NOTIFY_FROM and NOTIFY_TO are required when SMTP_HOST is set")
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
