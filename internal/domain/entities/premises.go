package entities

import "strings"

// PremisesType is the kind of building to be cleaned.
//
// The set is open: values outside the canonical list are stored verbatim.
type PremisesType string

const (
	PremisesOffice     PremisesType = "office"
	PremisesRetail     PremisesType = "retail"
	PremisesWarehouse  PremisesType = "warehouse"
	PremisesMedical    PremisesType = "medical"
	PremisesRestaurant PremisesType = "restaurant"
	PremisesOther      PremisesType = "other"
)

var premisesAliases = map[string]PremisesType{
	"factory":           PremisesWarehouse,
	"factory/warehouse": PremisesWarehouse,
	"gym":               PremisesRetail,
	"gym/retail":        PremisesRetail,
	"others":            PremisesOther,
}

var premisesLabels = map[PremisesType]string{
	PremisesOffice:     "Office",
	PremisesRetail:     "Retail",
	PremisesWarehouse:  "Warehouse",
	PremisesMedical:    "Medical",
	PremisesRestaurant: "Restaurant",
	PremisesOther:      "Other",
}

// ParsePremisesType lower-cases, trims and resolves known aliases.
func ParsePremisesType(raw string) PremisesType {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	if p, ok := premisesAliases[s]; ok {
		return p
	}
	return PremisesType(s)
}

func (p PremisesType) Canonical() PremisesType {
	return ParsePremisesType(string(p))
}

func (p PremisesType) IsKnown() bool {
	_, ok := premisesLabels[p.Canonical()]
	return ok
}

func (p PremisesType) Label() string {
	if l, ok := premisesLabels[p.Canonical()]; ok {
		return l
	}
	return premisesLabels[PremisesOther]
}

// PremisesTypes lists the canonical values in display order.
func PremisesTypes() []PremisesType {
	return []PremisesType{PremisesOffice, PremisesRetail, PremisesWarehouse, PremisesMedical, PremisesRestaurant, PremisesOther}
}
