package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

var propertyAreas = []float64{0.5, 1, 10, 49.9, 100, 200, 333.3, 750, 1000, 2500, 10000}

func propertyInputs() []entities.QuoteInput {
	var out []entities.QuoteInput
	for _, p := range append(entities.PremisesTypes(), "school") {
		for _, f := range append(entities.Frequencies(), "daily") {
			for _, counts := range [][3]int{{0, 0, 0}, {1, 1, 2}, {4, 2, 12}} {
				for _, special := range []string{"", "windows"} {
					out = append(out, entities.QuoteInput{
						PremisesType:        p,
						Frequency:           f,
						RestroomCount:       counts[0],
						KitchenetteCount:    counts[1],
						BinCount:            counts[2],
						SpecialRequirements: special,
					})
				}
			}
		}
	}
	return out
}

func moneyFields(e entities.Estimate) []float64 {
	return []float64{e.EstimatedPrice, e.HoursPerVisit, e.PricePerVisitExTax, e.PricePerVisitInclTax, e.MonthlyPriceExTax, e.MonthlyPriceInclTax}
}

func TestEngineProperties(t *testing.T) {
	reg, err := NewRegistry(DefaultConfig(), "")
	require.NoError(t, err)

	for _, engine := range reg.Engines() {
		t.Run(string(engine.Variant()), func(t *testing.T) {
			for _, base := range propertyInputs() {
				var prev entities.Estimate
				for i, area := range propertyAreas {
					in := base
					in.AreaSize = area
					got := engine.Estimate(in)

					for _, v := range moneyFields(got) {
						require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite for %+v", in)
						require.GreaterOrEqual(t, v, 0.0, "negative for %+v", in)
					}

					require.Equal(t, got, engine.Estimate(in), "not idempotent for %+v", in)

					if i > 0 {
						prevFields, gotFields := moneyFields(prev), moneyFields(got)
						for k := range gotFields {
							require.GreaterOrEqual(t, gotFields[k], prevFields[k], "not monotonic in area for %+v", in)
						}
					}
					prev = got

					if engine.Variant() == entities.VariantLaborHours {
						require.GreaterOrEqual(t, got.HoursPerVisit, 2.0)
						require.Equal(t, 0.0, math.Mod(got.HoursPerVisit, 0.25))
						assert.InDelta(t, got.MonthlyPriceExTax*1.15, got.MonthlyPriceInclTax, 1.1)
						assert.InDelta(t, got.PricePerVisitExTax*1.15, got.PricePerVisitInclTax, 1.1)
					}
				}
			}
		})
	}
}
