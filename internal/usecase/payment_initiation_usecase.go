package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"nibog_payments/internal/domain/entities"
	"nibog_payments/internal/usecase/interfaces"
)

var (
	ErrInvalidBookingRef   = errors.New("invalid booking_ref")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrTransactionNotFound = errors.New("payment transaction not found")
)

// IPaymentInitiationUseCase starts a redirect-based payment for a booking and
// answers live status queries for a transaction.
//
// Re-initiation is always an explicit, user-driven action; nothing here
// retries a payment in the background.

type IPaymentInitiationUseCase interface {
	InitiatePayment(ctx context.Context, bookingRef string, amount int64, mobile, baseURL string) (interfaces.GatewayInitiateResult, error)
	CheckStatus(ctx context.Context, transactionID string) (interfaces.GatewayStatus, error)
	HandleCallback(ctx context.Context, base64Body, xVerify string) error
}

type PaymentInitiationUseCase struct {
	bookings interfaces.IBookingRepository
	payments interfaces.IPaymentTransactionRepository
	gateway  interfaces.IPaymentGateway
}

var _ IPaymentInitiationUseCase = (*PaymentInitiationUseCase)(nil)

func NewPaymentInitiationUseCase(
	bookings interfaces.IBookingRepository,
	payments interfaces.IPaymentTransactionRepository,
	gateway interfaces.IPaymentGateway,
) *PaymentInitiationUseCase {
	return &PaymentInitiationUseCase{bookings: bookings, payments: payments, gateway: gateway}
}

// InitiatePayment validates the booking, asks the gateway for a redirect URL
// and persists the transaction mapping. Configuration and signing errors from
// the gateway propagate untouched; they must never be degraded to a
// best-effort send.
func (u *PaymentInitiationUseCase) InitiatePayment(ctx context.Context, bookingRef string, amount int64, mobile, baseURL string) (interfaces.GatewayInitiateResult, error) {
	bookingRef = strings.TrimSpace(bookingRef)
	log.Printf("[payment][usecase] initiate start booking_ref=%s amount=%d", bookingRef, amount)

	if bookingRef == "" {
		return interfaces.GatewayInitiateResult{}, ErrInvalidBookingRef
	}
	if amount <= 0 {
		return interfaces.GatewayInitiateResult{}, ErrInvalidAmount
	}
	if u.gateway == nil {
		return interfaces.GatewayInitiateResult{}, errors.New("payment gateway not configured")
	}
	if u.bookings == nil {
		return interfaces.GatewayInitiateResult{}, errors.New("booking repository not configured")
	}

	b, err := u.bookings.GetByRef(ctx, bookingRef)
	if err != nil {
		log.Printf("[payment][usecase] booking lookup failed booking_ref=%s err=%v", bookingRef, err)
		return interfaces.GatewayInitiateResult{}, err
	}
	if b.BookingRef == "" {
		log.Printf("[payment][usecase] booking not found booking_ref=%s", bookingRef)
		return interfaces.GatewayInitiateResult{}, ErrBookingNotFound
	}

	res, err := u.gateway.InitiatePayment(ctx, interfaces.GatewayInitiateRequest{
		BookingRef:   bookingRef,
		Amount:       amount,
		MobileNumber: mobile,
		BaseURL:      baseURL,
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway initiate failed booking_ref=%s err=%v", bookingRef, err)
		return interfaces.GatewayInitiateResult{}, err
	}

	now := time.Now().UTC()
	_, err = u.payments.Create(ctx, entities.PaymentTransaction{
		TransactionID: res.TransactionID,
		BookingRef:    bookingRef,
		Amount:        amount,
		Status:        entities.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		log.Printf("[payment][usecase] transaction persist failed txn_id=%s err=%v", res.TransactionID, err)
		return interfaces.GatewayInitiateResult{}, err
	}

	log.Printf("[payment][usecase] initiate success booking_ref=%s txn_id=%s", bookingRef, res.TransactionID)
	return res, nil
}

// CheckStatus performs a live gateway query and records the answer on the
// transaction record. Every call is a live query; no caching.
func (u *PaymentInitiationUseCase) CheckStatus(ctx context.Context, transactionID string) (interfaces.GatewayStatus, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return interfaces.GatewayStatus{}, ErrTransactionNotFound
	}

	status, err := u.gateway.CheckStatus(ctx, transactionID)
	if err != nil {
		return interfaces.GatewayStatus{}, err
	}

	if err := u.payments.UpdateStatus(ctx, transactionID, status.Status, status.Raw); err != nil {
		// The live answer is still valid; the record update is best-effort.
		log.Printf("[payment][usecase] transaction status update failed txn_id=%s err=%v", transactionID, err)
	}
	return status, nil
}

// HandleCallback verifies an inbound gateway callback envelope and applies
// the reported state to the transaction record.
func (u *PaymentInitiationUseCase) HandleCallback(ctx context.Context, base64Body, xVerify string) error {
	if !u.gateway.VerifyCallback(base64Body, xVerify) {
		log.Printf("[payment][usecase] callback checksum mismatch")
		return errors.New("callback verification failed")
	}

	payload, err := decodeCallbackBody(base64Body)
	if err != nil {
		return err
	}

	log.Printf("[payment][usecase] callback verified txn_id=%s status=%s", payload.TransactionID, payload.Status)
	return u.payments.UpdateStatus(ctx, payload.TransactionID, payload.Status, payload.Raw)
}
