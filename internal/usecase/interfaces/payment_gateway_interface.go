package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the payment provider used for deposits.
//
// The provider response is persisted alongside the deposit for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
