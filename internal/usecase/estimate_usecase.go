package usecase

import (
	"context"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/pricing"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/validation"
)

// VariantInfo describes one pricing engine to API clients.
type VariantInfo struct {
	Variant   entities.PricingVariant
	DependsOn []entities.Field
	Default   bool
}

// IEstimateUseCase prices a form without storing anything.
type IEstimateUseCase interface {
	Preview(ctx context.Context, variant string, in entities.QuoteInput) (entities.Estimate, error)
	Variants() []VariantInfo
}

type EstimateUseCase struct {
	registry  *pricing.Registry
	validator *validation.Validator
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(registry *pricing.Registry) *EstimateUseCase {
	return &EstimateUseCase{registry: registry, validator: validation.New()}
}

// Preview only rejects unusable point counts: a half-filled form simply prices to zero.
func (u *EstimateUseCase) Preview(_ context.Context, variant string, in entities.QuoteInput) (entities.Estimate, error) {
	engine, err := u.registry.Resolve(variant)
	if err != nil {
		return entities.Estimate{}, err
	}
	if err := u.validator.PointCounts(in); err != nil {
		return entities.Estimate{}, err
	}
	return engine.Estimate(in.Normalize()), nil
}

func (u *EstimateUseCase) Variants() []VariantInfo {
	engines := u.registry.Engines()
	out := make([]VariantInfo, 0, len(engines))
	for _, e := range engines {
		out = append(out, VariantInfo{
			Variant:   e.Variant(),
			DependsOn: e.DependsOn(),
			Default:   e.Variant() == u.registry.Default(),
		})
	}
	return out
}
