package response

import (
	"time"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

type DepositResponse struct {
	PaymentID string    `json:"payment_id"`
	QuoteID   string    `json:"quote_id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromDeposit(p entities.DepositPayment) DepositResponse {
	return DepositResponse{
		PaymentID:    p.ID,
		QuoteID:      p.QuoteID,
		Amount:       p.Amount,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
