package pricing

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

var (
	ErrVariantRequired = errors.New("pricing variant is required")
	ErrUnknownVariant  = errors.New("unknown pricing variant")
)

// Engine turns a quote input into an estimate.
//
// Implementations are pure: the same input and configuration always give the same
// estimate, and malformed numbers give the zero estimate instead of an error.
type Engine interface {
	Variant() entities.PricingVariant
	Estimate(in entities.QuoteInput) entities.Estimate
	// DependsOn lists the input fields that can change the estimate.
	DependsOn() []entities.Field
}

// Depends reports whether f is one of e's price-relevant fields.
func Depends(e Engine, f entities.Field) bool {
	return slices.Contains(e.DependsOn(), f)
}

// Registry resolves engines by variant name.
type Registry struct {
	engines  map[entities.PricingVariant]Engine
	fallback entities.PricingVariant
}

// NewRegistry builds both engines from cfg. defaultVariant may be empty, in which
// case callers must always name a variant.
func NewRegistry(cfg Config, defaultVariant entities.PricingVariant) (*Registry, error) {
	r := &Registry{engines: map[entities.PricingVariant]Engine{}}
	for _, e := range []Engine{NewAreaRateEngine(cfg.AreaRate), NewLaborHoursEngine(cfg.LaborHours)} {
		r.engines[e.Variant()] = e
	}
	if defaultVariant != "" {
		if _, ok := r.engines[defaultVariant]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, defaultVariant)
		}
		r.fallback = defaultVariant
	}
	return r, nil
}

func (r *Registry) Resolve(variant string) (Engine, error) {
	v := entities.PricingVariant(strings.ToLower(strings.TrimSpace(variant)))
	if v == "" {
		if r.fallback == "" {
			return nil, ErrVariantRequired
		}
		v = r.fallback
	}
	e, ok := r.engines[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
	return e, nil
}

// Engines returns the registered engines in a stable order.
func (r *Registry) Engines() []Engine {
	out := make([]Engine, 0, len(r.engines))
	for _, v := range []entities.PricingVariant{entities.VariantAreaRate, entities.VariantLaborHours} {
		if e, ok := r.engines[v]; ok {
			out = append(out, e)
		}
	}
	return out
}

func (r *Registry) Default() entities.PricingVariant {
	return r.fallback
}

// Reproduces reports whether q's recorded price is what e computes from q's input today.
func Reproduces(e Engine, q entities.Quote) bool {
	if e.Variant() != q.PricingVariant {
		return false
	}
	return e.Estimate(q.Input).Headline() == q.EstimatedPrice
}
