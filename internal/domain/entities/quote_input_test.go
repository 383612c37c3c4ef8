package entities

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteInputSet(t *testing.T) {
	t.Run("text and enums", func(t *testing.T) {
		var in QuoteInput
		require.NoError(t, in.Set(FieldClientName, "Aroha"))
		require.NoError(t, in.Set(FieldPremisesType, "gym"))
		require.NoError(t, in.Set(FieldFrequency, "fortnightly"))
		assert.Equal(t, "Aroha", in.ClientName)
		assert.Equal(t, PremisesRetail, in.PremisesType)
		assert.Equal(t, FrequencyBiWeekly, in.Frequency)
	})

	t.Run("numbers from strings", func(t *testing.T) {
		var in QuoteInput
		require.NoError(t, in.Set(FieldAreaSize, "200"))
		require.NoError(t, in.Set(FieldBinCount, 2))
		assert.Equal(t, 200.0, in.AreaSize)
		assert.Equal(t, 2, in.BinCount)

		require.NoError(t, in.Set(FieldAreaSize, "abc"))
		assert.Equal(t, 0.0, in.AreaSize)
	})

	t.Run("point counts must be whole numbers in range", func(t *testing.T) {
		var in QuoteInput
		require.NoError(t, in.Set(FieldRestroomCount, "3"))
		assert.Equal(t, 3, in.RestroomCount)

		for _, bad := range []any{1e19, "2.9", -1, MaxPointCount + 1, math.NaN(), math.Inf(1)} {
			err := in.Set(FieldRestroomCount, bad)
			assert.True(t, errors.Is(err, ErrInvalidFieldValue), "%v", bad)
		}
		assert.Equal(t, 3, in.RestroomCount)
	})

	t.Run("scope toggles", func(t *testing.T) {
		var in QuoteInput
		require.NoError(t, in.Set(FieldScopeVacuum, true))
		require.NoError(t, in.Set(FieldScopeMop, "true"))
		assert.True(t, in.Scope.Vacuum)
		assert.True(t, in.Scope.Mop)
	})

	t.Run("rejects unknown field and wrong type", func(t *testing.T) {
		var in QuoteInput
		err := in.Set(Field("colour"), "blue")
		assert.True(t, errors.Is(err, ErrUnknownField))

		err = in.Set(FieldClientName, 42)
		assert.True(t, errors.Is(err, ErrInvalidFieldValue))
	})
}

func TestQuoteInputNormalize(t *testing.T) {
	in := QuoteInput{
		ClientName:   "  Aroha  ",
		PremisesType: "Factory",
		Frequency:    "One-Off",
	}.Normalize()

	assert.Equal(t, "Aroha", in.ClientName)
	assert.Equal(t, PremisesWarehouse, in.PremisesType)
	assert.Equal(t, FrequencyOneTime, in.Frequency)
}

func TestEstimateHeadline(t *testing.T) {
	a := Estimate{Variant: VariantAreaRate, EstimatedPrice: 570}
	b := Estimate{Variant: VariantLaborHours, MonthlyPriceInclTax: 598, PricePerVisitExTax: 120}
	assert.Equal(t, 570.0, a.Headline())
	assert.Equal(t, 598.0, b.Headline())
	assert.True(t, Estimate{Variant: VariantLaborHours}.IsZero())
	assert.False(t, b.IsZero())
}

func TestPointCount(t *testing.T) {
	n, ok := PointCount(12)
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	n, ok = PointCount(MaxPointCount)
	assert.True(t, ok)
	assert.Equal(t, MaxPointCount, n)

	for _, bad := range []float64{1e19, 2.9, -1, math.NaN(), math.Inf(-1)} {
		n, ok = PointCount(bad)
		assert.False(t, ok, "%v", bad)
		assert.Equal(t, InvalidPointCount, n, "%v", bad)
	}
}
