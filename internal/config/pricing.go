package config

import (
	"fmt"
	"math"

	"github.com/spf13/viper"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/pricing"
)

// LoadPricing returns the default rate tables with the values from path laid on top.
// An empty path yields the defaults. The file format follows its extension (yaml, json, toml).
//
// A frequency_table entry only replaces the fields it names; the rest keep the default
// for that frequency. An entry for a frequency without a default must name both fields.
func LoadPricing(path string) (pricing.Config, error) {
	cfg := pricing.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return pricing.Config{}, fmt.Errorf("read pricing file: %w", err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return pricing.Config{}, fmt.Errorf("decode pricing file: %w", err)
	}
	if err := mergeFrequencyTable(v, cfg.LaborHours.FrequencyTable); err != nil {
		return pricing.Config{}, err
	}
	if err := checkPricing(cfg); err != nil {
		return pricing.Config{}, err
	}
	return cfg, nil
}

// mergeFrequencyTable fills the fields a file entry left out. The decoder builds each
// entry from scratch, so an omitted field would otherwise read as zero.
func mergeFrequencyTable(v *viper.Viper, table map[entities.Frequency]pricing.FrequencyRate) error {
	defaults := pricing.DefaultConfig().LaborHours.FrequencyTable
	for f, rate := range table {
		key := "labor_hours.frequency_table." + string(f)
		hasMult, hasVisits := v.IsSet(key+".multiplier"), v.IsSet(key+".visits_per_month")
		base, ok := defaults[f]
		if !ok {
			if !hasMult || !hasVisits {
				return fmt.Errorf("pricing frequency_table.%s needs multiplier and visits_per_month", f)
			}
			continue
		}
		if !hasMult {
			rate.Multiplier = base.Multiplier
		}
		if !hasVisits {
			rate.VisitsPerMonth = base.VisitsPerMonth
		}
		table[f] = rate
	}
	return nil
}

func checkPricing(cfg pricing.Config) error {
	lh := cfg.LaborHours
	for name, x := range map[string]float64{
		"area_rate.base_rate_per_area":                    cfg.AreaRate.BaseRatePerArea,
		"area_rate.special_requirements_surcharge":        cfg.AreaRate.SpecialRequirementsSurcharge,
		"labor_hours.hourly_rate":                         lh.HourlyRate,
		"labor_hours.consumables_rate_per_hour":           lh.ConsumablesRatePerHour,
		"labor_hours.tax_rate":                            lh.TaxRate,
		"labor_hours.fixed_minutes_per_point.restroom":    lh.FixedMinutesPerPoint.Restroom,
		"labor_hours.fixed_minutes_per_point.kitchenette": lh.FixedMinutesPerPoint.Kitchenette,
		"labor_hours.fixed_minutes_per_point.bin":         lh.FixedMinutesPerPoint.Bin,
	} {
		if !nonNegative(x) {
			return fmt.Errorf("pricing %s must not be negative", name)
		}
	}
	if !positive(lh.MinimumVisitHours) {
		return fmt.Errorf("pricing minimum_visit_hours must be positive")
	}
	if !positive(lh.HoursRoundingStep) {
		return fmt.Errorf("pricing hours_rounding_step must be positive")
	}
	for f, m := range cfg.AreaRate.FrequencyMultiplier {
		if !positive(m) {
			return fmt.Errorf("pricing area_rate multiplier for %q must be positive", f)
		}
	}
	for p, rate := range lh.ProductivityByPremises {
		if !positive(rate) {
			return fmt.Errorf("pricing productivity for %q must be positive", p)
		}
	}
	for f, rate := range lh.FrequencyTable {
		if !positive(rate.Multiplier) {
			return fmt.Errorf("pricing frequency_table multiplier for %q must be positive", f)
		}
		if !nonNegative(rate.VisitsPerMonth) {
			return fmt.Errorf("pricing frequency_table visits_per_month for %q must not be negative", f)
		}
	}
	return nil
}

func nonNegative(x float64) bool { return x >= 0 && !math.IsInf(x, 1) }

func positive(x float64) bool { return x > 0 && !math.IsInf(x, 1) }
