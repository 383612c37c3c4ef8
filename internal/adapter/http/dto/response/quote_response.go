package response

import (
	"time"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

const QuoteCreatedMessage = "Quote request submitted successfully! We will contact you within 24 hours."

type QuoteResponse struct {
	ID                  string           `json:"id"`
	Status              string           `json:"status"`
	StatusLabel         string           `json:"status_label"`
	PricingVariant      string           `json:"pricing_variant"`
	EstimatedPrice      float64          `json:"estimated_price"`
	Estimate            EstimateResponse `json:"estimate"`
	ClientName          string           `json:"client_name"`
	ClientEmail         string           `json:"client_email"`
	ClientPhone         string           `json:"client_phone,omitempty"`
	CompanyName         string           `json:"company_name,omitempty"`
	Location            string           `json:"location,omitempty"`
	ServiceType         string           `json:"service_type"`
	BuildingType        string           `json:"building_type"`
	BuildingTypeLabel   string           `json:"building_type_label"`
	AreaSize            float64          `json:"area_size"`
	Frequency           string           `json:"frequency"`
	FrequencyLabel      string           `json:"frequency_label"`
	RestroomCount       int              `json:"restroom_count"`
	KitchenetteCount    int              `json:"kitchenette_count"`
	BinCount            int              `json:"bin_count"`
	Scope               entities.Scope   `json:"scope"`
	SpecialRequirements string           `json:"special_requirements,omitempty"`
	PreferredTimeWindow string           `json:"preferred_time_window,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
}

type QuoteCreatedResponse struct {
	Message string        `json:"message"`
	Quote   QuoteResponse `json:"quote"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	in := q.Input
	return QuoteResponse{
		ID:                  q.ID,
		Status:              string(q.Status),
		StatusLabel:         q.Status.Label(),
		PricingVariant:      string(q.PricingVariant),
		EstimatedPrice:      q.EstimatedPrice,
		Estimate:            FromEstimate(q.Estimate),
		ClientName:          in.ClientName,
		ClientEmail:         in.ClientEmail,
		ClientPhone:         in.ClientPhone,
		CompanyName:         in.CompanyName,
		Location:            in.Location,
		ServiceType:         in.ServiceType,
		BuildingType:        string(in.PremisesType),
		BuildingTypeLabel:   in.PremisesType.Label(),
		AreaSize:            in.AreaSize,
		Frequency:           string(in.Frequency),
		FrequencyLabel:      in.Frequency.Label(),
		RestroomCount:       in.RestroomCount,
		KitchenetteCount:    in.KitchenetteCount,
		BinCount:            in.BinCount,
		Scope:               in.Scope,
		SpecialRequirements: in.SpecialRequirements,
		PreferredTimeWindow: in.PreferredTimeWindow,
		CreatedAt:           q.CreatedAt,
	}
}

func FromQuoteCreated(q entities.Quote) QuoteCreatedResponse {
	return QuoteCreatedResponse{Message: QuoteCreatedMessage, Quote: FromQuote(q)}
}
