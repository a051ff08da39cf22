package response

import (
	"encoding/json"

	"nibog_payments/internal/usecase/interfaces"
)

type PaymentInitiateResponse struct {
	RedirectURL   string `json:"redirect_url"`
	TransactionID string `json:"transaction_id"`
}

func FromInitiateResult(r interfaces.GatewayInitiateResult) PaymentInitiateResponse {
	return PaymentInitiateResponse{
		RedirectURL:   r.RedirectURL,
		TransactionID: r.TransactionID,
	}
}

type PaymentStatusResponse struct {
	TransactionID string          `json:"transaction_id"`
	Status        string          `json:"status"`
	BookingRef    string          `json:"booking_ref,omitempty"`
	Raw           json.RawMessage `json:"raw,omitempty"`
}

func FromGatewayStatus(transactionID string, s interfaces.GatewayStatus) PaymentStatusResponse {
	return PaymentStatusResponse{
		TransactionID: transactionID,
		Status:        string(s.Status),
		BookingRef:    s.BookingRef,
		Raw:           s.Raw,
	}
}
