package pricing

import (
	"strings"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

// AreaRateEngine prices by floor area times a flat rate, discounted by frequency.
type AreaRateEngine struct {
	cfg AreaRateConfig
}

var _ Engine = (*AreaRateEngine)(nil)

func NewAreaRateEngine(cfg AreaRateConfig) *AreaRateEngine {
	mult := make(map[entities.Frequency]float64, len(cfg.FrequencyMultiplier))
	for k, v := range cfg.FrequencyMultiplier {
		mult[k.Canonical()] = v
	}
	cfg.FrequencyMultiplier = mult
	return &AreaRateEngine{cfg: cfg}
}

func (e *AreaRateEngine) Variant() entities.PricingVariant {
	return entities.VariantAreaRate
}

func (e *AreaRateEngine) DependsOn() []entities.Field {
	return []entities.Field{
		entities.FieldAreaSize,
		entities.FieldFrequency,
		entities.FieldSpecialRequirements,
	}
}

func (e *AreaRateEngine) Estimate(in entities.QuoteInput) entities.Estimate {
	out := entities.Estimate{Variant: entities.VariantAreaRate}
	area := in.AreaSize
	if !finite(area) || area <= 0 {
		return out
	}

	mult, ok := e.cfg.FrequencyMultiplier[in.Frequency.Canonical()]
	if !ok {
		mult = 1
	}

	price := area * e.cfg.BaseRatePerArea * mult
	if strings.TrimSpace(in.SpecialRequirements) != "" {
		price += price * e.cfg.SpecialRequirementsSurcharge
	}
	if !finite(price) || price < 0 {
		return out
	}

	out.EstimatedPrice = roundMoney(price)
	return out
}
