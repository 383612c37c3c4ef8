package pricing

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/validation"
)

var ErrSubmissionInProgress = errors.New("a submission is already in progress")

// Submitter accepts a validated quote input and returns the stored record.
type Submitter interface {
	Submit(ctx context.Context, variant string, in entities.QuoteInput) (entities.Quote, error)
}

// Session is the live state of one quote form: the input, the engine that prices
// it, and the estimate shown next to it.
//
// A Session has one owner. Only Submit may run concurrently with itself.
type Session struct {
	engine    Engine
	validator *validation.Validator
	input     entities.QuoteInput
	estimate  entities.Estimate
	recalcs   int

	submitting atomic.Bool
}

func NewSession(engine Engine, v *validation.Validator) *Session {
	s := &Session{engine: engine, validator: v}
	s.recompute()
	return s
}

func (s *Session) recompute() {
	s.estimate = s.engine.Estimate(s.input)
	s.recalcs++
}

// Apply changes one field and recomputes the estimate when the engine prices that field.
func (s *Session) Apply(edit entities.Edit) error {
	if err := s.input.Set(edit.Field, edit.Value); err != nil {
		return err
	}
	if Depends(s.engine, edit.Field) {
		s.recompute()
	}
	return nil
}

func (s *Session) SetVariant(engine Engine) {
	s.engine = engine
	s.recompute()
}

func (s *Session) Input() entities.QuoteInput  { return s.input }
func (s *Session) Estimate() entities.Estimate { return s.estimate }
func (s *Session) Variant() entities.PricingVariant {
	return s.engine.Variant()
}

// Recalculations counts estimate recomputations, including the initial one.
func (s *Session) Recalculations() int { return s.recalcs }

func (s *Session) Submitting() bool { return s.submitting.Load() }

// Submit validates the normalized input and hands it to sub. Validation failures never
// reach sub. The input is kept as entered on failure so the caller can retry.
func (s *Session) Submit(ctx context.Context, sub Submitter) (entities.Quote, error) {
	in := s.input.Normalize()
	if err := s.validator.Quote(in); err != nil {
		return entities.Quote{}, err
	}
	if !s.submitting.CompareAndSwap(false, true) {
		return entities.Quote{}, ErrSubmissionInProgress
	}
	defer s.submitting.Store(false)

	return sub.Submit(ctx, string(s.engine.Variant()), in)
}
