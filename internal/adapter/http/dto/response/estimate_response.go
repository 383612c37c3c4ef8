package response

import (
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase"
)

type EstimateResponse struct {
	Variant              string  `json:"variant"`
	Headline             float64 `json:"headline"`
	EstimatedPrice       float64 `json:"estimated_price"`
	HoursPerVisit        float64 `json:"hours_per_visit,omitempty"`
	PricePerVisitExTax   float64 `json:"price_per_visit_ex_tax,omitempty"`
	PricePerVisitInclTax float64 `json:"price_per_visit_incl_tax,omitempty"`
	MonthlyPriceExTax    float64 `json:"monthly_price_ex_tax,omitempty"`
	MonthlyPriceInclTax  float64 `json:"monthly_price_incl_tax,omitempty"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		Variant:              string(e.Variant),
		Headline:             e.Headline(),
		EstimatedPrice:       e.EstimatedPrice,
		HoursPerVisit:        e.HoursPerVisit,
		PricePerVisitExTax:   e.PricePerVisitExTax,
		PricePerVisitInclTax: e.PricePerVisitInclTax,
		MonthlyPriceExTax:    e.MonthlyPriceExTax,
		MonthlyPriceInclTax:  e.MonthlyPriceInclTax,
	}
}

type VariantResponse struct {
	Variant   string   `json:"variant"`
	DependsOn []string `json:"depends_on"`
	Default   bool     `json:"default"`
}

func FromVariants(vs []usecase.VariantInfo) []VariantResponse {
	out := make([]VariantResponse, 0, len(vs))
	for _, v := range vs {
		fields := make([]string, 0, len(v.DependsOn))
		for _, f := range v.DependsOn {
			fields = append(fields, string(f))
		}
		out = append(out, VariantResponse{Variant: string(v.Variant), DependsOn: fields, Default: v.Default})
	}
	return out
}
