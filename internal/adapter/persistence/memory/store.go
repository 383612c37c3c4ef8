// Package memory keeps records in process memory. It backs STORAGE_DRIVER=memory
// and is safe for concurrent use.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase/interfaces"
)

var (
	_ interfaces.IQuoteRepository   = (*QuoteRepository)(nil)
	_ interfaces.IContactRepository = (*ContactRepository)(nil)
	_ interfaces.IDepositRepository = (*DepositRepository)(nil)
)

type QuoteRepository struct {
	mu     sync.RWMutex
	quotes map[string]entities.Quote
}

func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{quotes: map[string]entities.Quote{}}
}

func (r *QuoteRepository) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.quotes[q.ID]; exists {
		return entities.Quote{}, interfaces.ErrAlreadyExists
	}
	r.quotes[q.ID] = q
	return q, nil
}

func (r *QuoteRepository) GetByID(_ context.Context, id string) (entities.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.quotes[id], nil
}

func (r *QuoteRepository) List(_ context.Context, status entities.QuoteStatus) ([]entities.Quote, error) {
	r.mu.RLock()
	out := make([]entities.Quote, 0, len(r.quotes))
	for _, q := range r.quotes {
		if status == "" || q.Status == status {
			out = append(out, q)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// SetStatus stands in for the back-office, which owns quote status.
func (r *QuoteRepository) SetStatus(id string, status entities.QuoteStatus) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.quotes[id]
	if !ok {
		return false
	}
	q.Status = status
	r.quotes[id] = q
	return true
}

type ContactRepository struct {
	mu       sync.RWMutex
	messages map[string]entities.ContactMessage
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{messages: map[string]entities.ContactMessage{}}
}

func (r *ContactRepository) Create(_ context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.messages[m.ID]; exists {
		return entities.ContactMessage{}, interfaces.ErrAlreadyExists
	}
	r.messages[m.ID] = m
	return m, nil
}

func (r *ContactRepository) GetByID(_ context.Context, id string) (entities.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.messages[id], nil
}

type DepositRepository struct {
	mu       sync.RWMutex
	deposits []entities.DepositPayment
}

func NewDepositRepository() *DepositRepository {
	return &DepositRepository{}
}

func (r *DepositRepository) Create(_ context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.deposits {
		if d.ID == p.ID {
			return entities.DepositPayment{}, interfaces.ErrAlreadyExists
		}
	}
	r.deposits = append(r.deposits, p)
	return p, nil
}

func (r *DepositRepository) ListByQuoteID(_ context.Context, quoteID string) ([]entities.DepositPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.DepositPayment, 0)
	for _, d := range r.deposits {
		if d.QuoteID == quoteID {
			out = append(out, d)
		}
	}
	return out, nil
}
