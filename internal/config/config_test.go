package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/pricing"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "quotes", cfg.Dynamo.QuotesTable)
	assert.Equal(t, 20.0, cfg.Payments.DepositPercent)
	assert.Empty(t, cfg.Pricing.Variant)
	assert.Equal(t, "NZ", cfg.PhoneRegion)
	assert.False(t, cfg.SMTPEnabled())
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"STORAGE_DRIVER":       "SQLite",
		"DB_DSN":               "file::memory:",
		"PRICING_VARIANT":      " Labor_Hours ",
		"CORS_ALLOWED_ORIGINS": "https://kiwipure.co.nz, https://www.kiwipure.co.nz,",
		"TRUSTED_PROXIES":      "10.0.0.0/8, 192.0.2.7",
	}))
	require.NoError(t, err)

	assert.Equal(t, StorageSQLite, cfg.Storage.Driver)
	assert.Equal(t, "labor_hours", cfg.Pricing.Variant)
	assert.Equal(t, []string{"https://kiwipure.co.nz", "https://www.kiwipure.co.nz"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.7"}, cfg.HTTP.TrustedProxies)
}

func TestFromViper_Invalid(t *testing.T) {
	cases := map[string]map[string]any{
		"postgres without dsn": {"STORAGE_DRIVER": "postgres"},
		"unknown driver":       {"STORAGE_DRIVER": "redis"},
		"unknown variant":      {"PRICING_VARIANT": "hourly"},
		"deposit over 100":     {"DEPOSIT_PERCENT": 150},
		"smtp without to":      {"SMTP_HOST": "smtp.example.com", "NOTIFY_FROM": "quotes@example.com"},
		"zero port":            {"HTTP_PORT": 0},
		"bad trusted proxy":    {"TRUSTED_PROXIES": "10.0.0.0/8, lb.internal"},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := fromViper(newViper(values))
			assert.Error(t, err)
		})
	}
}

func TestLoadPricing(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := LoadPricing("")
		require.NoError(t, err)
		assert.Equal(t, pricing.DefaultConfig(), cfg)
	})

	t.Run("overlay keeps unspecified values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pricing.yaml")
		body := "area_rate:\n  base_rate_per_area: 3.5\nlabor_hours:\n  hourly_rate: 60\n  productivity_by_premises:\n    office: 250\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		cfg, err := LoadPricing(path)
		require.NoError(t, err)
		assert.Equal(t, 3.5, cfg.AreaRate.BaseRatePerArea)
		assert.Equal(t, 0.85, cfg.AreaRate.FrequencyMultiplier[entities.FrequencyWeekly])
		assert.Equal(t, 60.0, cfg.LaborHours.HourlyRate)
		assert.Equal(t, 250.0, cfg.LaborHours.ProductivityByPremises[entities.PremisesOffice])
		assert.Equal(t, 300.0, cfg.LaborHours.ProductivityByPremises[entities.PremisesWarehouse])
		assert.Equal(t, 0.15, cfg.LaborHours.TaxRate)
	})

	t.Run("rejects zero productivity", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pricing.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"labor_hours":{"productivity_by_premises":{"retail":0}}}`), 0o600))

		_, err := LoadPricing(path)
		assert.Error(t, err)
	})

	t.Run("partial frequency entry keeps the other field", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pricing.yaml")
		body := "labor_hours:\n  frequency_table:\n    weekly:\n      visits_per_month: 4\n    monthly:\n      multiplier: 1.2\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		cfg, err := LoadPricing(path)
		require.NoError(t, err)
		assert.Equal(t, pricing.FrequencyRate{Multiplier: 1.00, VisitsPerMonth: 4}, cfg.LaborHours.FrequencyTable[entities.FrequencyWeekly])
		assert.Equal(t, pricing.FrequencyRate{Multiplier: 1.2, VisitsPerMonth: 1.00}, cfg.LaborHours.FrequencyTable[entities.FrequencyMonthly])
		assert.Equal(t, 2.17, cfg.LaborHours.FrequencyTable[entities.FrequencyBiWeekly].VisitsPerMonth)
	})

	t.Run("rejects unusable tables", func(t *testing.T) {
		cases := map[string]string{
			"negative minimum hours": `{"labor_hours":{"minimum_visit_hours":-5}}`,
			"zero minimum hours":     `{"labor_hours":{"minimum_visit_hours":0}}`,
			"zero frequency mult":    `{"labor_hours":{"frequency_table":{"weekly":{"multiplier":0}}}}`,
			"negative visits":        `{"labor_hours":{"frequency_table":{"weekly":{"visits_per_month":-1}}}}`,
			"new frequency half set": `{"labor_hours":{"frequency_table":{"quarterly":{"visits_per_month":0.33}}}}`,
			"negative area mult":     `{"area_rate":{"frequency_multiplier":{"weekly":-0.5}}}`,
			"negative minutes":       `{"labor_hours":{"fixed_minutes_per_point":{"bin":-1}}}`,
			"negative surcharge":     `{"area_rate":{"special_requirements_surcharge":-0.1}}`,
		}
		for name, body := range cases {
			t.Run(name, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "pricing.json")
				require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
				_, err := LoadPricing(path)
				assert.Error(t, err)
			})
		}
	})

	t.Run("new frequency with both fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pricing.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"labor_hours":{"frequency_table":{"quarterly":{"multiplier":1.3,"visits_per_month":0.33}}}}`), 0o600))
		cfg, err := LoadPricing(path)
		require.NoError(t, err)
		assert.Equal(t, pricing.FrequencyRate{Multiplier: 1.3, VisitsPerMonth: 0.33}, cfg.LaborHours.FrequencyTable["quarterly"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPricing(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
