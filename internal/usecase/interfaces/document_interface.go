package interfaces

import "github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"

// IQuoteSheetRenderer renders a single quote as a printable document.
type IQuoteSheetRenderer interface {
	QuoteSheet(q entities.Quote) ([]byte, error)
}

// IQuoteExporter renders a list of quotes as a spreadsheet.
type IQuoteExporter interface {
	QuotesWorkbook(quotes []entities.Quote) ([]byte, error)
}
