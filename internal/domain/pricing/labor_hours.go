package pricing

import "github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"

// LaborHoursEngine prices by estimated cleaning hours per visit plus consumables,
// then adds GST.
type LaborHoursEngine struct {
	cfg LaborHoursConfig
}

var _ Engine = (*LaborHoursEngine)(nil)

func NewLaborHoursEngine(cfg LaborHoursConfig) *LaborHoursEngine {
	prod := make(map[entities.PremisesType]float64, len(cfg.ProductivityByPremises))
	for k, v := range cfg.ProductivityByPremises {
		prod[k.Canonical()] = v
	}
	freq := make(map[entities.Frequency]FrequencyRate, len(cfg.FrequencyTable))
	for k, v := range cfg.FrequencyTable {
		freq[k.Canonical()] = v
	}
	cfg.ProductivityByPremises = prod
	cfg.FrequencyTable = freq
	return &LaborHoursEngine{cfg: cfg}
}

func (e *LaborHoursEngine) Variant() entities.PricingVariant {
	return entities.VariantLaborHours
}

func (e *LaborHoursEngine) DependsOn() []entities.Field {
	return []entities.Field{
		entities.FieldAreaSize,
		entities.FieldPremisesType,
		entities.FieldFrequency,
		entities.FieldRestroomCount,
		entities.FieldKitchenetteCount,
		entities.FieldBinCount,
	}
}

func (e *LaborHoursEngine) Estimate(in entities.QuoteInput) entities.Estimate {
	zero := entities.Estimate{Variant: entities.VariantLaborHours}

	area := in.AreaSize
	premises := in.PremisesType.Canonical()
	freq := in.Frequency.Canonical()
	if !finite(area) || area <= 0 || premises == "" || freq == "" {
		return zero
	}

	productivity, ok := e.cfg.ProductivityByPremises[premises]
	if !ok {
		productivity = e.cfg.ProductivityByPremises[entities.PremisesOther]
	}
	if !finite(productivity) || productivity <= 0 {
		return zero
	}

	rate, ok := e.cfg.FrequencyTable[freq]
	if !ok {
		rate = FrequencyRate{Multiplier: 1}
	}

	pm := e.cfg.FixedMinutesPerPoint
	pointMinutes := nonNegative(in.RestroomCount)*pm.Restroom +
		nonNegative(in.KitchenetteCount)*pm.Kitchenette +
		nonNegative(in.BinCount)*pm.Bin

	rawHours := area/productivity*rate.Multiplier + pointMinutes/60
	hours := ceilToStep(rawHours, e.cfg.HoursRoundingStep)
	if hours < e.cfg.MinimumVisitHours {
		hours = e.cfg.MinimumVisitHours
	}

	visitEx := hours * (e.cfg.HourlyRate + e.cfg.ConsumablesRatePerHour)
	monthlyEx := visitEx * rate.VisitsPerMonth
	visitIncl := visitEx * (1 + e.cfg.TaxRate)
	monthlyIncl := monthlyEx * (1 + e.cfg.TaxRate)

	if !finite(hours, visitEx, monthlyEx, visitIncl, monthlyIncl) ||
		hours < 0 || visitEx < 0 || monthlyEx < 0 || visitIncl < 0 || monthlyIncl < 0 {
		return zero
	}

	return entities.Estimate{
		Variant:              entities.VariantLaborHours,
		HoursPerVisit:        hours,
		PricePerVisitExTax:   roundMoney(visitEx),
		PricePerVisitInclTax: roundMoney(visitIncl),
		MonthlyPriceExTax:    roundMoney(monthlyEx),
		MonthlyPriceInclTax:  roundMoney(monthlyIncl),
	}
}
