package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePremisesType(t *testing.T) {
	cases := map[string]PremisesType{
		"office":            PremisesOffice,
		"  Office ":         PremisesOffice,
		"factory":           PremisesWarehouse,
		"factory/warehouse": PremisesWarehouse,
		"gym":               PremisesRetail,
		"Gym/Retail":        PremisesRetail,
		"others":            PremisesOther,
		"school":            PremisesType("school"),
		"":                  "",
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParsePremisesType(raw), "raw=%q", raw)
	}
}

func TestPremisesTypeLabel(t *testing.T) {
	assert.Equal(t, "Office", PremisesOffice.Label())
	assert.Equal(t, "Warehouse", PremisesType("factory").Label())
	assert.Equal(t, "Other", PremisesType("school").Label())
	assert.False(t, PremisesType("school").IsKnown())
}

func TestParseFrequency(t *testing.T) {
	assert.Equal(t, FrequencyBiWeekly, ParseFrequency("fortnightly"))
	assert.Equal(t, FrequencyBiWeekly, ParseFrequency("biweekly"))
	assert.Equal(t, FrequencyOneTime, ParseFrequency("One-Off"))
	assert.Equal(t, FrequencyWeekly, ParseFrequency(" weekly"))
	assert.Equal(t, Frequency("daily"), ParseFrequency("daily"))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Bi-weekly", FrequencyBiWeekly.Label())
	assert.Equal(t, "Monthly", Frequency("daily").Label())
	assert.Equal(t, "Accepted", QuoteStatusAccepted.Label())
	assert.Equal(t, "Unknown", QuoteStatus("lost").Label())
	assert.Equal(t, "Archived", ContactStatusArchived.Label())
	assert.Equal(t, "Unknown", ContactStatus("spam").Label())
}

func TestPaymentStatusFromProvider(t *testing.T) {
	assert.Equal(t, PaymentStatusApproved, PaymentStatusFromProvider("approved"))
	assert.Equal(t, PaymentStatusDenied, PaymentStatusFromProvider("rejected"))
	assert.Equal(t, PaymentStatusPending, PaymentStatusFromProvider("in_process"))
}
