package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

func TestRegistryResolve(t *testing.T) {
	t.Run("no default requires a variant", func(t *testing.T) {
		reg, err := NewRegistry(DefaultConfig(), "")
		require.NoError(t, err)

		_, err = reg.Resolve("")
		assert.True(t, errors.Is(err, ErrVariantRequired))

		e, err := reg.Resolve(" Labor_Hours ")
		require.NoError(t, err)
		assert.Equal(t, entities.VariantLaborHours, e.Variant())

		_, err = reg.Resolve("per_room")
		assert.True(t, errors.Is(err, ErrUnknownVariant))
	})

	t.Run("configured default", func(t *testing.T) {
		reg, err := NewRegistry(DefaultConfig(), entities.VariantAreaRate)
		require.NoError(t, err)
		e, err := reg.Resolve("")
		require.NoError(t, err)
		assert.Equal(t, entities.VariantAreaRate, e.Variant())
		assert.Equal(t, entities.VariantAreaRate, reg.Default())
	})

	t.Run("bad default", func(t *testing.T) {
		_, err := NewRegistry(DefaultConfig(), "per_room")
		assert.True(t, errors.Is(err, ErrUnknownVariant))
	})
}

func TestDependsOn(t *testing.T) {
	a := NewAreaRateEngine(DefaultConfig().AreaRate)
	b := NewLaborHoursEngine(DefaultConfig().LaborHours)

	assert.True(t, Depends(a, entities.FieldSpecialRequirements))
	assert.False(t, Depends(a, entities.FieldPremisesType))
	assert.True(t, Depends(b, entities.FieldBinCount))
	assert.False(t, Depends(b, entities.FieldSpecialRequirements))
	assert.False(t, Depends(b, entities.FieldScopeVacuum))
}

func TestReproduces(t *testing.T) {
	e := NewAreaRateEngine(DefaultConfig().AreaRate)
	in := entities.QuoteInput{AreaSize: 200, Frequency: entities.FrequencyMonthly}
	q := entities.NewPendingQuote("q-1", in, e.Estimate(in), time.Now())

	assert.True(t, Reproduces(e, q))

	q.EstimatedPrice = 1
	assert.False(t, Reproduces(e, q))

	q = entities.NewPendingQuote("q-2", in, e.Estimate(in), time.Now())
	assert.False(t, Reproduces(NewLaborHoursEngine(DefaultConfig().LaborHours), q))
}

func TestDefaultConfigIsFresh(t *testing.T) {
	c := DefaultConfig()
	c.AreaRate.FrequencyMultiplier[entities.FrequencyWeekly] = 9
	assert.Equal(t, 0.85, DefaultConfig().AreaRate.FrequencyMultiplier[entities.FrequencyWeekly])

	shared := DefaultConfig()
	e := NewLaborHoursEngine(shared.LaborHours)
	in := entities.QuoteInput{AreaSize: 200, PremisesType: entities.PremisesOffice, Frequency: entities.FrequencyWeekly}
	before := e.Estimate(in)
	shared.LaborHours.FrequencyTable[entities.FrequencyWeekly] = FrequencyRate{}
	assert.Equal(t, before, e.Estimate(in))
}
