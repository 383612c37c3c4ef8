package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

func TestGenerator_QuotesWorkbook(t *testing.T) {
	quotes := []entities.Quote{
		{
			ID:             "q-1",
			Input:          entities.QuoteInput{ClientName: "Aroha", ClientEmail: "aroha@example.co.nz", PremisesType: entities.PremisesRetail, AreaSize: 200, Frequency: entities.FrequencyMonthly},
			PricingVariant: entities.VariantAreaRate,
			EstimatedPrice: 570,
			Status:         entities.QuoteStatusPending,
			CreatedAt:      time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:             "q-2",
			Input:          entities.QuoteInput{ClientName: "Tama", PremisesType: "spaceport"},
			PricingVariant: entities.VariantLaborHours,
			EstimatedPrice: 598,
			Status:         entities.QuoteStatusAccepted,
		},
	}

	out, err := NewGenerator().QuotesWorkbook(quotes)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, quotesSheet}, f.GetSheetList())

	count, err := f.GetCellValue(summarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "2", count)

	total, err := f.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "1168", total)

	rows, err := f.GetRows(quotesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, quoteHeaders[0], rows[0][0])
	assert.Equal(t, "q-1", rows[1][0])
	assert.Equal(t, "2026-01-05 09:00:00", rows[1][1])
	assert.Equal(t, "Retail", rows[1][9])
	assert.Equal(t, "Monthly", rows[1][11])
	assert.Equal(t, "Accepted", rows[2][2])
	assert.Equal(t, "Other", rows[2][9])
}

func TestGenerator_EmptyWorkbook(t *testing.T) {
	out, err := NewGenerator().QuotesWorkbook(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
