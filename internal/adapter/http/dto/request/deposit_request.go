package request

import "encoding/json"

// DepositCreateRequest carries the MercadoPago payment body built by the checkout widget.
//
// `mp_payload` is forwarded as-is apart from the fields the server owns (amount, reference).
type DepositCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
