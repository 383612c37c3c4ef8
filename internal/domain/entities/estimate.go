package entities

// PricingVariant identifies which pricing engine produced an estimate.
type PricingVariant string

const (
	VariantAreaRate   PricingVariant = "area_rate"
	VariantLaborHours PricingVariant = "labor_hours"
)

// Estimate is the output of a pricing engine.
//
// Area-rate estimates fill EstimatedPrice only. Labor-hours estimates fill the
// per-visit and monthly breakdown. Money fields are whole currency units.
type Estimate struct {
	Variant              PricingVariant `json:"variant"`
	EstimatedPrice       float64        `json:"estimated_price"`
	HoursPerVisit        float64        `json:"hours_per_visit,omitempty"`
	PricePerVisitExTax   float64        `json:"price_per_visit_ex_tax,omitempty"`
	PricePerVisitInclTax float64        `json:"price_per_visit_incl_tax,omitempty"`
	MonthlyPriceExTax    float64        `json:"monthly_price_ex_tax,omitempty"`
	MonthlyPriceInclTax  float64        `json:"monthly_price_incl_tax,omitempty"`
}

// Headline is the single price recorded on a quote.
func (e Estimate) Headline() float64 {
	if e.Variant == VariantLaborHours {
		return e.MonthlyPriceInclTax
	}
	return e.EstimatedPrice
}

func (e Estimate) IsZero() bool {
	return e.EstimatedPrice == 0 &&
		e.HoursPerVisit == 0 &&
		e.PricePerVisitExTax == 0 &&
		e.PricePerVisitInclTax == 0 &&
		e.MonthlyPriceExTax == 0 &&
		e.MonthlyPriceInclTax == 0
}
