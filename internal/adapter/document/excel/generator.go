package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase/interfaces"
)

const (
	summarySheet = "Summary"
	quotesSheet  = "Quotes"
)

var quoteHeaders = []string{
	"Reference",
	"Requested",
	"Status",
	"Client",
	"Email",
	"Phone",
	"Company",
	"Location",
	"Service",
	"Premises",
	"Area m2",
	"Frequency",
	"Restrooms",
	"Kitchenettes",
	"Bins",
	"Pricing",
	"Hours per visit",
	"Estimated price",
	"Special requirements",
}

// Generator builds the back-office quotes workbook.
type Generator struct{}

var _ interfaces.IQuoteExporter = (*Generator)(nil)

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) QuotesWorkbook(quotes []entities.Quote) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, quotes); err != nil {
		return nil, err
	}
	if _, err := file.NewSheet(quotesSheet); err != nil {
		return nil, err
	}
	if err := g.writeQuotes(file, quotes); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, quotes []entities.Quote) error {
	byStatus := map[entities.QuoteStatus]int{}
	total := 0.0
	for _, q := range quotes {
		byStatus[q.Status]++
		total += q.EstimatedPrice
	}

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(summarySheet, cell, value)
	}
	set("A1", "Quotes")
	set("B1", len(quotes))
	set("A2", "Total estimated")
	set("B2", total)

	row := 4
	set(fmt.Sprintf("A%d", row), "Status")
	set(fmt.Sprintf("B%d", row), "Count")
	for _, s := range []entities.QuoteStatus{entities.QuoteStatusPending, entities.QuoteStatusQuoted, entities.QuoteStatusAccepted, entities.QuoteStatusDeclined} {
		row++
		set(fmt.Sprintf("A%d", row), s.Label())
		set(fmt.Sprintf("B%d", row), byStatus[s])
	}

	return file.SetColWidth(summarySheet, "A", "A", 24)
}

func (g *Generator) writeQuotes(file *excelize.File, quotes []entities.Quote) error {
	for i, header := range quoteHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(quotesSheet, cell, header); err != nil {
			return err
		}
	}

	for i, q := range quotes {
		in := q.Input
		values := []interface{}{
			q.ID,
			formatDateTime(q.CreatedAt),
			q.Status.Label(),
			in.ClientName,
			in.ClientEmail,
			in.ClientPhone,
			in.CompanyName,
			in.Location,
			in.ServiceType,
			in.PremisesType.Label(),
			in.AreaSize,
			in.Frequency.Label(),
			in.RestroomCount,
			in.KitchenetteCount,
			in.BinCount,
			string(q.PricingVariant),
			q.Estimate.HoursPerVisit,
			q.EstimatedPrice,
			in.SpecialRequirements,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(quotesSheet, cell, &values); err != nil {
			return err
		}
	}

	_ = file.SetColWidth(quotesSheet, "A", "A", 38)
	_ = file.SetColWidth(quotesSheet, "B", "B", 20)
	_ = file.SetColWidth(quotesSheet, "D", "H", 24)
	_ = file.SetColWidth(quotesSheet, "S", "S", 40)
	return file.SetPanes(quotesSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}
