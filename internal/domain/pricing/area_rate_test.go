package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

func TestAreaRateEngineEstimate(t *testing.T) {
	e := NewAreaRateEngine(DefaultConfig().AreaRate)

	t.Run("monthly office", func(t *testing.T) {
		got := e.Estimate(entities.QuoteInput{AreaSize: 200, Frequency: entities.FrequencyMonthly})
		assert.Equal(t, entities.VariantAreaRate, got.Variant)
		assert.Equal(t, 570.0, got.EstimatedPrice)
	})

	t.Run("special requirements add ten percent", func(t *testing.T) {
		got := e.Estimate(entities.QuoteInput{
			AreaSize:            200,
			Frequency:           entities.FrequencyMonthly,
			SpecialRequirements: "Carpet shampoo in reception",
		})
		assert.Equal(t, 627.0, got.EstimatedPrice)
	})

	t.Run("whitespace special requirements are ignored", func(t *testing.T) {
		got := e.Estimate(entities.QuoteInput{AreaSize: 200, Frequency: entities.FrequencyMonthly, SpecialRequirements: "  \t"})
		assert.Equal(t, 570.0, got.EstimatedPrice)
	})

	t.Run("frequency discounts", func(t *testing.T) {
		cases := map[entities.Frequency]float64{
			entities.FrequencyOneTime:  300,
			entities.FrequencyMonthly:  285,
			entities.FrequencyBiWeekly: 270,
			entities.FrequencyWeekly:   255,
			"fortnightly":              270,
			"daily":                    300,
			"":                         300,
		}
		for f, want := range cases {
			got := e.Estimate(entities.QuoteInput{AreaSize: 100, Frequency: f})
			assert.Equal(t, want, got.EstimatedPrice, "frequency=%q", f)
		}
	})

	t.Run("no area gives zero", func(t *testing.T) {
		for _, a := range []float64{0, -10, math.NaN(), math.Inf(1)} {
			got := e.Estimate(entities.QuoteInput{AreaSize: a, Frequency: entities.FrequencyWeekly})
			assert.True(t, got.IsZero(), "area=%v", a)
			assert.Equal(t, entities.VariantAreaRate, got.Variant)
		}
	})

	t.Run("rounds to whole units", func(t *testing.T) {
		got := e.Estimate(entities.QuoteInput{AreaSize: 33.3, Frequency: entities.FrequencyWeekly})
		assert.Equal(t, 85.0, got.EstimatedPrice)
	})
}

func TestAreaRateEngineCopiesConfig(t *testing.T) {
	cfg := DefaultConfig().AreaRate
	e := NewAreaRateEngine(cfg)
	cfg.FrequencyMultiplier[entities.FrequencyMonthly] = 10

	got := e.Estimate(entities.QuoteInput{AreaSize: 200, Frequency: entities.FrequencyMonthly})
	assert.Equal(t, 570.0, got.EstimatedPrice)
}
