package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase/interfaces"
)

const businessName = "KiwiPure Commercial Cleaning"

// Generator renders a one-page quote summary with the core Helvetica font.
type Generator struct {
	fontName string
}

var _ interfaces.IQuoteSheetRenderer = (*Generator)(nil)

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) QuoteSheet(q entities.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle(fmt.Sprintf("Quote %s", q.ID), true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, businessName, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Quote reference %s", q.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Requested %s, status %s", formatDate(q.CreatedAt), q.Status.Label()), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	in := q.Input
	section(pdf, g.fontName, "Client")
	rows(pdf, g.fontName, tr, [][2]string{
		{"Name", in.ClientName},
		{"Email", in.ClientEmail},
		{"Phone", safeValue(in.ClientPhone)},
		{"Company", safeValue(in.CompanyName)},
		{"Location", safeValue(in.Location)},
	})

	section(pdf, g.fontName, "Premises")
	rows(pdf, g.fontName, tr, [][2]string{
		{"Service", in.ServiceType},
		{"Premises type", in.PremisesType.Label()},
		{"Area", fmt.Sprintf("%s m2", formatAmount(in.AreaSize, 0))},
		{"Frequency", in.Frequency.Label()},
		{"Restrooms", fmt.Sprintf("%d", in.RestroomCount)},
		{"Kitchenettes", fmt.Sprintf("%d", in.KitchenetteCount)},
		{"Bins", fmt.Sprintf("%d", in.BinCount)},
		{"Scope", safeValue(strings.Join(scopeItems(in.Scope), ", "))},
		{"Preferred time", safeValue(in.PreferredTimeWindow)},
	})
	if strings.TrimSpace(in.SpecialRequirements) != "" {
		pdf.SetFont(g.fontName, "B", 10)
		pdf.CellFormat(0, 6, "Special requirements", "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)
		pdf.MultiCell(0, 5, tr(in.SpecialRequirements), "", "L", false)
	}
	pdf.Ln(2)

	section(pdf, g.fontName, "Estimate")
	est := q.Estimate
	if q.PricingVariant == entities.VariantLaborHours {
		headers := []string{"", "Excl. GST", "Incl. GST"}
		widths := []float64{80, 50, 50}
		drawTableRow(pdf, g.fontName, headers, widths, true)
		drawTableRow(pdf, g.fontName, []string{"Per visit", money(est.PricePerVisitExTax), money(est.PricePerVisitInclTax)}, widths, false)
		drawTableRow(pdf, g.fontName, []string{"Monthly", money(est.MonthlyPriceExTax), money(est.MonthlyPriceInclTax)}, widths, false)
		pdf.Ln(2)
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Estimated %s hours per visit", formatAmount(est.HoursPerVisit, 2)), "", 1, "L", false, 0, "")
	}
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Estimated price: %s", money(q.EstimatedPrice)), "", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont(g.fontName, "I", 9)
	pdf.MultiCell(0, 5, "This is an estimate only. Final pricing is confirmed after a site visit.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, fontName, title string) {
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func rows(pdf *gofpdf.Fpdf, fontName string, tr func(string) string, items [][2]string) {
	for _, it := range items {
		pdf.SetFont(fontName, "B", 10)
		pdf.CellFormat(40, 6, it[0], "", 0, "L", false, 0, "")
		pdf.SetFont(fontName, "", 10)
		pdf.CellFormat(0, 6, tr(it[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func scopeItems(s entities.Scope) []string {
	var out []string
	for _, it := range []struct {
		on    bool
		label string
	}{
		{s.Desks, "Desks"},
		{s.Vacuum, "Vacuum"},
		{s.Mop, "Mop"},
		{s.Dusting, "Dusting"},
		{s.Restrooms, "Restrooms"},
		{s.Kitchenette, "Kitchenette"},
		{s.Trash, "Trash"},
	} {
		if it.on {
			out = append(out, it.label)
		}
	}
	return out
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func money(v float64) string {
	return "$" + formatAmount(v, 2)
}

func formatAmount(value float64, precision int) string {
	return fmt.Sprintf("%.*f", precision, value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02 Jan 2006")
}
