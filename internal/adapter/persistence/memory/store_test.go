package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase/interfaces"
)

func TestQuoteRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewQuoteRepository()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"q-1", "q-2", "q-3"} {
		_, err := repo.Create(ctx, entities.Quote{ID: id, Status: entities.QuoteStatusPending, CreatedAt: base.Add(time.Duration(i) * time.Hour)})
		require.NoError(t, err)
	}

	_, err := repo.Create(ctx, entities.Quote{ID: "q-1"})
	assert.True(t, errors.Is(err, interfaces.ErrAlreadyExists))

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	require.True(t, repo.SetStatus("q-2", entities.QuoteStatusAccepted))
	assert.False(t, repo.SetStatus("nope", entities.QuoteStatusAccepted))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "q-3", all[0].ID)

	accepted, err := repo.List(ctx, entities.QuoteStatusAccepted)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, "q-2", accepted[0].ID)
}

func TestContactRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository()

	_, err := repo.Create(ctx, entities.ContactMessage{ID: "c-1", Name: "Tama"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Tama", got.Name)
}

func TestDepositRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewDepositRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			quoteID := "q-even"
			if i%2 == 1 {
				quoteID = "q-odd"
			}
			_, _ = repo.Create(ctx, entities.DepositPayment{ID: string(rune('a' + i)), QuoteID: quoteID})
		}(i)
	}
	wg.Wait()

	even, err := repo.ListByQuoteID(ctx, "q-even")
	require.NoError(t, err)
	assert.Len(t, even, 10)

	none, err := repo.ListByQuoteID(ctx, "q-none")
	require.NoError(t, err)
	assert.Empty(t, none)
}
