// Package phone normalises contact numbers. It holds no business rules.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase/interfaces"
)

const DefaultRegion = "NZ"

// Normalizer formats numbers as E.164, reading local numbers in Region.
type Normalizer struct {
	Region string
}

var _ interfaces.IPhoneNormalizer = Normalizer{}

func NewNormalizer(region string) Normalizer {
	if region == "" {
		region = DefaultRegion
	}
	return Normalizer{Region: region}
}

// Normalize returns the trimmed input unchanged when it is not a valid number.
func (n Normalizer) Normalize(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, n.Region)
	if err != nil {
		return trimmed
	}
	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}
