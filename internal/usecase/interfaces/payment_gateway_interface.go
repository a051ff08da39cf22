package interfaces

import (
	"context"
	"encoding/json"

	"nibog_payments/internal/domain/entities"
)

// GatewayInitiateRequest carries everything the gateway needs to start a
// redirect-based payment. Amount is in minor currency units (paise).
// BaseURL optionally overrides the configured app base URL with the current
// request's scheme+host so redirect/callback URLs point back at the caller.

type GatewayInitiateRequest struct {
	BookingRef   string
	Amount       int64
	MobileNumber string
	BaseURL      string
}

type GatewayInitiateResult struct {
	RedirectURL   string
	TransactionID string
}

// GatewayStatus is a live status snapshot for one merchant transaction.
// BookingRef is populated when the gateway response carries a server-created
// booking identifier; Raw keeps the full response body for audit.

type GatewayStatus struct {
	Status     entities.PaymentStatus
	BookingRef string
	Raw        json.RawMessage
}

// IPaymentGateway abstracts the external payment gateway (signed REST
// protocol: base64 request envelope + X-VERIFY checksum header).
//
// Status checks are idempotent live queries; implementations must not cache
// them, because staleness here gates money movement.

type IPaymentGateway interface {
	InitiatePayment(ctx context.Context, req GatewayInitiateRequest) (GatewayInitiateResult, error)
	CheckStatus(ctx context.Context, transactionID string) (GatewayStatus, error)
	VerifyCallback(base64Body, xVerify string) bool
}
