package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	request "nibog_payments/internal/adapter/http/dto/request"
	response "nibog_payments/internal/adapter/http/dto/response"
	"nibog_payments/internal/infrastructure/phonepe"
	"nibog_payments/internal/usecase"
	"nibog_payments/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for the gateway payment flow.

type PaymentHandler struct {
	usecase usecase.IPaymentInitiationUseCase
}

func NewPaymentHandler(uc usecase.IPaymentInitiationUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// InitiatePayment starts a redirect-based payment for a booking.
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var req request.PaymentInitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid initiate payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] initiate start booking_ref=%s amount=%d", req.BookingRef, req.Amount)

	res, err := h.usecase.InitiatePayment(c.Request.Context(), req.BookingRef, req.Amount, req.Mobile, requestBaseURL(c))
	if err != nil {
		log.Printf("[payment][handler] initiate failed booking_ref=%s err=%v", req.BookingRef, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] initiate success booking_ref=%s txn_id=%s", req.BookingRef, res.TransactionID)
	c.JSON(http.StatusOK, response.FromInitiateResult(res))
}

// CheckStatus returns the live gateway status for a transaction.
func (h *PaymentHandler) CheckStatus(c *gin.Context) {
	transactionID := c.Param("transaction_id")
	log.Printf("[payment][handler] status start txn_id=%s", transactionID)

	status, err := h.usecase.CheckStatus(c.Request.Context(), transactionID)
	if err != nil {
		log.Printf("[payment][handler] status failed txn_id=%s err=%v", transactionID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGatewayStatus(transactionID, status))
}

// HandleCallback receives the gateway's server-to-server callback: a base64
// response envelope authenticated by the X-VERIFY header.
func (h *PaymentHandler) HandleCallback(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	base64Body := extractCallbackEnvelope(raw)
	xVerify := c.GetHeader("X-VERIFY")

	if err := h.usecase.HandleCallback(c.Request.Context(), base64Body, xVerify); err != nil {
		log.Printf("[payment][handler] callback rejected err=%v", err)
		appErr := pkg.NewDomainErrorSimple("CALLBACK_REJECTED", "Callback verification failed", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// The callback body is either the bare base64 string or a JSON envelope
// {"response": "<base64>"} depending on gateway version.
func extractCallbackEnvelope(raw []byte) string {
	var envelope struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Response != "" {
		return envelope.Response
	}
	return string(raw)
}

func requestBaseURL(c *gin.Context) string {
	if c.Request == nil || c.Request.Host == "" {
		return ""
	}
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingRef), errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Payment transaction not found", http.StatusNotFound)
	case errors.Is(err, phonepe.ErrConfigInvalid):
		return pkg.NewDomainError("CONFIG_ERROR", "Payment is temporarily unavailable", err, http.StatusInternalServerError)
	case errors.Is(err, phonepe.ErrGatewayRequest):
		return pkg.NewDomainError("GATEWAY_REQUEST_ERROR", "Payment could not be started, please retry", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
