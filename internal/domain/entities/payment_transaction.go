package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the gateway-reported state of a payment attempt.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusSuccess   PaymentStatus = "SUCCESS"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// PaymentTransaction is the merchant-side record of a payment attempt,
// persisted at initiation time and updated from status checks/callbacks.
//
// Storage model (DynamoDB):
//   - PK: transaction_id
//   - GSI1 (booking_ref-index): booking_ref
//
// Gateway payload:
//   - GatewayPayloadRaw keeps the last raw gateway response (JSON) for
//     traceability/audit.
//   - GatewayPayload is an optional parsed representation, useful for
//     querying/debugging.

type PaymentTransaction struct {
	TransactionID string        `json:"transaction_id"`
	BookingRef    string        `json:"booking_ref"`
	Amount        int64         `json:"amount"` // minor currency units (paise)
	Status        PaymentStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	GatewayPayloadRaw json.RawMessage        `json:"gateway_payload_raw,omitempty"`
	GatewayPayload    map[string]interface{} `json:"gateway_payload,omitempty"`
}
