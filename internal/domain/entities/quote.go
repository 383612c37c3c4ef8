package entities

import "time"

// QuoteStatus is set to pending on creation. Later values are written by the
// back-office and preserved verbatim on read.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusQuoted   QuoteStatus = "quoted"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusDeclined QuoteStatus = "declined"
)

var quoteStatusLabels = map[QuoteStatus]string{
	QuoteStatusPending:  "Pending",
	QuoteStatusQuoted:   "Quoted",
	QuoteStatusAccepted: "Accepted",
	QuoteStatusDeclined: "Declined",
}

func (s QuoteStatus) Label() string {
	if l, ok := quoteStatusLabels[s]; ok {
		return l
	}
	return "Unknown"
}

// Quote is a submitted quote request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// EstimatedPrice is Estimate.Headline() at the time of submission.
type Quote struct {
	ID             string         `json:"id"`
	Input          QuoteInput     `json:"input"`
	PricingVariant PricingVariant `json:"pricing_variant"`
	Estimate       Estimate       `json:"estimate"`
	EstimatedPrice float64        `json:"estimated_price"`
	Status         QuoteStatus    `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
}

// NewPendingQuote builds the record handed to a repository.
func NewPendingQuote(id string, in QuoteInput, est Estimate, now time.Time) Quote {
	return Quote{
		ID:             id,
		Input:          in,
		PricingVariant: est.Variant,
		Estimate:       est,
		EstimatedPrice: est.Headline(),
		Status:         QuoteStatusPending,
		CreatedAt:      now,
	}
}
