package pricing

import "github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"

// Config holds the rate tables for both engines.
//
// Treat a Config as a value: engines copy the maps they receive, and
// DefaultConfig returns a fresh copy on every call.
type Config struct {
	AreaRate   AreaRateConfig   `mapstructure:"area_rate" json:"area_rate"`
	LaborHours LaborHoursConfig `mapstructure:"labor_hours" json:"labor_hours"`
}

type AreaRateConfig struct {
	BaseRatePerArea              float64                        `mapstructure:"base_rate_per_area" json:"base_rate_per_area"`
	FrequencyMultiplier          map[entities.Frequency]float64 `mapstructure:"frequency_multiplier" json:"frequency_multiplier"`
	SpecialRequirementsSurcharge float64                        `mapstructure:"special_requirements_surcharge" json:"special_requirements_surcharge"`
}

// FrequencyRate scales hours per visit and says how many visits a month has.
type FrequencyRate struct {
	Multiplier     float64 `mapstructure:"multiplier" json:"multiplier"`
	VisitsPerMonth float64 `mapstructure:"visits_per_month" json:"visits_per_month"`
}

// PointMinutes is the fixed time added per counted fixture.
type PointMinutes struct {
	Restroom    float64 `mapstructure:"restroom" json:"restroom"`
	Kitchenette float64 `mapstructure:"kitchenette" json:"kitchenette"`
	Bin         float64 `mapstructure:"bin" json:"bin"`
}

type LaborHoursConfig struct {
	HourlyRate             float64                              `mapstructure:"hourly_rate" json:"hourly_rate"`
	ConsumablesRatePerHour float64                              `mapstructure:"consumables_rate_per_hour" json:"consumables_rate_per_hour"`
	TaxRate                float64                              `mapstructure:"tax_rate" json:"tax_rate"`
	MinimumVisitHours      float64                              `mapstructure:"minimum_visit_hours" json:"minimum_visit_hours"`
	HoursRoundingStep      float64                              `mapstructure:"hours_rounding_step" json:"hours_rounding_step"`
	ProductivityByPremises map[entities.PremisesType]float64    `mapstructure:"productivity_by_premises" json:"productivity_by_premises"`
	FrequencyTable         map[entities.Frequency]FrequencyRate `mapstructure:"frequency_table" json:"frequency_table"`
	FixedMinutesPerPoint   PointMinutes                         `mapstructure:"fixed_minutes_per_point" json:"fixed_minutes_per_point"`
}

// DefaultConfig returns the published NZD rates.
func DefaultConfig() Config {
	return Config{
		AreaRate: AreaRateConfig{
			BaseRatePerArea: 3.00,
			FrequencyMultiplier: map[entities.Frequency]float64{
				entities.FrequencyOneTime:  1.00,
				entities.FrequencyMonthly:  0.95,
				entities.FrequencyBiWeekly: 0.90,
				entities.FrequencyWeekly:   0.85,
			},
			SpecialRequirementsSurcharge: 0.10,
		},
		LaborHours: LaborHoursConfig{
			HourlyRate:             55,
			ConsumablesRatePerHour: 5,
			TaxRate:                0.15,
			MinimumVisitHours:      2.0,
			HoursRoundingStep:      0.25,
			ProductivityByPremises: map[entities.PremisesType]float64{
				entities.PremisesOffice:     200,
				entities.PremisesRetail:     180,
				entities.PremisesWarehouse:  300,
				entities.PremisesMedical:    150,
				entities.PremisesRestaurant: 160,
				entities.PremisesOther:      200,
			},
			FrequencyTable: map[entities.Frequency]FrequencyRate{
				entities.FrequencyWeekly:   {Multiplier: 1.00, VisitsPerMonth: 4.33},
				entities.FrequencyBiWeekly: {Multiplier: 1.00, VisitsPerMonth: 2.17},
				entities.FrequencyMonthly:  {Multiplier: 1.10, VisitsPerMonth: 1.00},
				entities.FrequencyOneTime:  {Multiplier: 1.25, VisitsPerMonth: 1.00},
			},
			FixedMinutesPerPoint: PointMinutes{Restroom: 8, Kitchenette: 8, Bin: 0.75},
		},
	}
}
