package entities

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// PaymentStatusFromProvider maps a MercadoPago payment status to ours.
func PaymentStatusFromProvider(s string) PaymentStatus {
	switch s {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusDenied
	default:
		return PaymentStatusPending
	}
}

// DepositPayment is a deposit taken against an accepted quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// MPPayloadRaw keeps the provider response as received; MPPayload is its parsed form.
type DepositPayment struct {
	ID      string        `json:"id"`
	QuoteID string        `json:"quote_id"`
	Amount  float64       `json:"amount"`
	Date    time.Time     `json:"date"`
	Status  PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
