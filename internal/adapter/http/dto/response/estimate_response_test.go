package response

import (
	"testing"
	"time"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase"
)

func TestFromEstimate(t *testing.T) {
	res := FromEstimate(entities.Estimate{
		Variant:             entities.VariantLaborHours,
		HoursPerVisit:       2,
		PricePerVisitExTax:  120,
		MonthlyPriceExTax:   520,
		MonthlyPriceInclTax: 598,
	})
	if res.Variant != "labor_hours" || res.Headline != 598 || res.HoursPerVisit != 2 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromVariants(t *testing.T) {
	res := FromVariants([]usecase.VariantInfo{{
		Variant:   entities.VariantAreaRate,
		DependsOn: []entities.Field{entities.FieldAreaSize, entities.FieldFrequency},
		Default:   true,
	}})
	if len(res) != 1 || res[0].Variant != "area_rate" || !res[0].Default || res[0].DependsOn[1] != "frequency" {
		t.Fatalf("unexpected variants: %+v", res)
	}
}

func TestFromQuoteCreated(t *testing.T) {
	now := time.Now().UTC()
	q := entities.NewPendingQuote("q-1", entities.QuoteInput{
		ClientName:   "Aroha",
		PremisesType: "factory",
		Frequency:    entities.FrequencyBiWeekly,
		AreaSize:     200,
	}, entities.Estimate{Variant: entities.VariantAreaRate, EstimatedPrice: 540}, now)

	res := FromQuoteCreated(q)
	if res.Message != QuoteCreatedMessage {
		t.Fatalf("unexpected message %q", res.Message)
	}
	if res.Quote.ID != "q-1" || res.Quote.Status != "pending" || res.Quote.StatusLabel != "Pending" {
		t.Fatalf("unexpected status fields: %+v", res.Quote)
	}
	if res.Quote.EstimatedPrice != 540 || res.Quote.BuildingTypeLabel != "Warehouse" || res.Quote.FrequencyLabel != "Bi-weekly" {
		t.Fatalf("unexpected mapped fields: %+v", res.Quote)
	}
	if !res.Quote.CreatedAt.Equal(now) {
		t.Fatalf("unexpected date: %v", res.Quote.CreatedAt)
	}
}

func TestFromContactCreated(t *testing.T) {
	res := FromContactCreated(entities.ContactMessage{ID: "c-1", Name: "Tama", Status: entities.ContactStatusNew})
	if res.Message != ContactCreatedMessage || res.Contact.ID != "c-1" || res.Contact.Status != "new" {
		t.Fatalf("unexpected response: %+v", res)
	}
}
