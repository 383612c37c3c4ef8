package request

import "github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"

type ScopeRequest struct {
	Desks       bool `json:"desks"`
	Vacuum      bool `json:"vacuum"`
	Mop         bool `json:"mop"`
	Dusting     bool `json:"dusting"`
	Restrooms   bool `json:"restrooms"`
	Kitchenette bool `json:"kitchenette"`
	Trash       bool `json:"trash"`
}

// QuoteRequest is the body of both the quote form and the live preview.
//
// Field checks happen in the use case so that every broken rule is reported at once;
// there are no binding tags here. A client-side estimated_price is accepted and ignored.
type QuoteRequest struct {
	Variant             string       `json:"variant" example:"area_rate"`
	ClientName          string       `json:"client_name" example:"Aroha Ngata"`
	ClientEmail         string       `json:"client_email" example:"aroha@example.co.nz"`
	ClientPhone         string       `json:"client_phone" example:"021 123 4567"`
	CompanyName         string       `json:"company_name"`
	Location            string       `json:"location"`
	ServiceType         string       `json:"service_type" example:"regular"`
	BuildingType        string       `json:"building_type" example:"office"`
	AreaSize            Number       `json:"area_size" swaggertype:"number" example:"200"`
	Frequency           string       `json:"frequency" example:"monthly"`
	RestroomCount       Number       `json:"restroom_count" swaggertype:"integer"`
	KitchenetteCount    Number       `json:"kitchenette_count" swaggertype:"integer"`
	BinCount            Number       `json:"bin_count" swaggertype:"integer"`
	Scope               ScopeRequest `json:"scope"`
	SpecialRequirements string       `json:"special_requirements"`
	PreferredTimeWindow string       `json:"preferred_time_window"`
	EstimatedPrice      *float64     `json:"estimated_price,omitempty"`
}

func (r QuoteRequest) ToInput() entities.QuoteInput {
	return entities.QuoteInput{
		ClientName:          r.ClientName,
		ClientEmail:         r.ClientEmail,
		ClientPhone:         r.ClientPhone,
		CompanyName:         r.CompanyName,
		Location:            r.Location,
		ServiceType:         r.ServiceType,
		PremisesType:        entities.ParsePremisesType(r.BuildingType),
		AreaSize:            float64(r.AreaSize),
		Frequency:           entities.ParseFrequency(r.Frequency),
		RestroomCount:       r.RestroomCount.Count(),
		KitchenetteCount:    r.KitchenetteCount.Count(),
		BinCount:            r.BinCount.Count(),
		Scope:               entities.Scope(r.Scope),
		SpecialRequirements: r.SpecialRequirements,
		PreferredTimeWindow: r.PreferredTimeWindow,
	}
}
