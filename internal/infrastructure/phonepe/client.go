package phonepe

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"nibog_payments/internal/domain/entities"
	"nibog_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	payAPIPath    = "/pg/v1/pay"
	statusAPIPath = "/pg/v1/status"

	redirectMode          = "REDIRECT"
	paymentInstrumentType = "PAY_PAGE"

	confirmationPath = "/booking-confirmation"
	callbackPath     = "/v1/payments/phonepe/callback"
)

// ErrGatewayRequest marks a non-2xx or malformed gateway response. The caller
// may retry; nothing in this package retries automatically.
var ErrGatewayRequest = errors.New("gateway request failed")

// Gateway is the HTTP adapter for the payment gateway's signed REST protocol.
//
// Every request body is base64-encoded and authenticated with an X-VERIFY
// header computed by the checksum engine. Configuration is validated before
// every initiation, not just at startup.

type Gateway struct {
	cfg    Config
	engine *ChecksumEngine
	httpc  *http.Client
	now    func() time.Time
}

var _ interfaces.IPaymentGateway = (*Gateway)(nil)

func NewGateway(cfg Config, engine *ChecksumEngine) *Gateway {
	return &Gateway{
		cfg:    cfg,
		engine: engine,
		httpc:  http.DefaultClient,
		now:    time.Now,
	}
}

// paymentRequest is the canonical payload base64-encoded into the request
// envelope. Field names are fixed by the gateway API.
type paymentRequest struct {
	MerchantID            string            `json:"merchantId"`
	MerchantTransactionID string            `json:"merchantTransactionId"`
	MerchantUserID        string            `json:"merchantUserId"`
	Amount                int64             `json:"amount"`
	RedirectURL           string            `json:"redirectUrl"`
	RedirectMode          string            `json:"redirectMode"`
	CallbackURL           string            `json:"callbackUrl"`
	MobileNumber          string            `json:"mobileNumber"`
	PaymentInstrument     paymentInstrument `json:"paymentInstrument"`
}

type paymentInstrument struct {
	Type string `json:"type"`
}

type initiateResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		InstrumentResponse struct {
			RedirectInfo struct {
				URL string `json:"url"`
			} `json:"redirectInfo"`
		} `json:"instrumentResponse"`
	} `json:"data"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		State        string `json:"state"`
		PaymentState string `json:"paymentState"`
		BookingRef   string `json:"bookingRef"`
		BookingID    string `json:"bookingId"`
	} `json:"data"`
}

// InitiatePayment validates configuration, allocates a transaction id, signs
// the payment payload and posts it to the initiate endpoint. A CRITICAL
// configuration finding aborts before any HTTP request is made.
func (g *Gateway) InitiatePayment(ctx context.Context, req interfaces.GatewayInitiateRequest) (interfaces.GatewayInitiateResult, error) {
	cfg := g.cfg.WithRequestBaseURL(req.BaseURL)
	if err := LogConfig(cfg); err != nil {
		return interfaces.GatewayInitiateResult{}, err
	}

	txnID := AllocateTransactionID(req.BookingRef, g.now())

	payload := paymentRequest{
		MerchantID:            cfg.MerchantID,
		MerchantTransactionID: txnID,
		MerchantUserID:        "MUID_" + uuid.NewString()[:8],
		Amount:                req.Amount,
		RedirectURL:           cfg.AppBaseURL + confirmationPath + "?ref=" + req.BookingRef,
		RedirectMode:          redirectMode,
		CallbackURL:           cfg.AppBaseURL + callbackPath,
		MobileNumber:          req.MobileNumber,
		PaymentInstrument:     paymentInstrument{Type: paymentInstrumentType},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return interfaces.GatewayInitiateResult{}, err
	}
	b64 := g.engine.Base64Encode(body)
	xVerify := g.engine.Sign(b64, payAPIPath, cfg.SaltKey, cfg.SaltIndex)

	envelope, err := json.Marshal(map[string]string{"request": b64})
	if err != nil {
		return interfaces.GatewayInitiateResult{}, err
	}

	log.Printf("[phonepe][gateway] initiate start txn_id=%s booking_ref=%s amount=%d", txnID, req.BookingRef, req.Amount)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.Endpoints.Initiate, bytes.NewReader(envelope))
	if err != nil {
		return interfaces.GatewayInitiateResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-VERIFY", xVerify)

	resp, err := g.httpc.Do(httpReq)
	if err != nil {
		log.Printf("[phonepe][gateway] initiate transport error txn_id=%s err=%v", txnID, err)
		return interfaces.GatewayInitiateResult{}, fmt.Errorf("%w: %v", ErrGatewayRequest, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.GatewayInitiateResult{}, fmt.Errorf("%w: read response: %v", ErrGatewayRequest, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[phonepe][gateway] initiate non-2xx txn_id=%s status=%d body=%s", txnID, resp.StatusCode, truncate(raw, 500))
		return interfaces.GatewayInitiateResult{}, fmt.Errorf("%w: status %d", ErrGatewayRequest, resp.StatusCode)
	}

	var parsed initiateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Printf("[phonepe][gateway] initiate unparsable response txn_id=%s body=%s", txnID, truncate(raw, 500))
		return interfaces.GatewayInitiateResult{}, fmt.Errorf("%w: malformed response", ErrGatewayRequest)
	}
	if !parsed.Success {
		log.Printf("[phonepe][gateway] initiate rejected txn_id=%s code=%s message=%s", txnID, parsed.Code, parsed.Message)
		return interfaces.GatewayInitiateResult{}, fmt.Errorf("%w: %s", ErrGatewayRequest, parsed.Message)
	}
	redirectURL := parsed.Data.InstrumentResponse.RedirectInfo.URL
	if redirectURL == "" {
		return interfaces.GatewayInitiateResult{}, fmt.Errorf("%w: response missing redirect url", ErrGatewayRequest)
	}

	log.Printf("[phonepe][gateway] initiate success txn_id=%s", txnID)
	return interfaces.GatewayInitiateResult{RedirectURL: redirectURL, TransactionID: txnID}, nil
}

// CheckStatus performs a live status query for one transaction. Transport
// failures and malformed bodies are retryable ErrGatewayRequest, distinct from
// a definitive FAILED/CANCELLED business status.
func (g *Gateway) CheckStatus(ctx context.Context, transactionID string) (interfaces.GatewayStatus, error) {
	cfg := g.cfg

	apiPath := statusAPIPath + "/" + cfg.MerchantID + "/" + transactionID
	xVerify := g.engine.Sign("", apiPath, cfg.SaltKey, cfg.SaltIndex)
	url := cfg.Endpoints.Status + "/" + cfg.MerchantID + "/" + transactionID

	log.Printf("[phonepe][gateway] status check txn_id=%s", transactionID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return interfaces.GatewayStatus{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-VERIFY", xVerify)
	httpReq.Header.Set("X-MERCHANT-ID", cfg.MerchantID)

	resp, err := g.httpc.Do(httpReq)
	if err != nil {
		return interfaces.GatewayStatus{}, fmt.Errorf("%w: %v", ErrGatewayRequest, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.GatewayStatus{}, fmt.Errorf("%w: read response: %v", ErrGatewayRequest, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[phonepe][gateway] status non-2xx txn_id=%s status=%d body=%s", transactionID, resp.StatusCode, truncate(raw, 500))
		return interfaces.GatewayStatus{}, fmt.Errorf("%w: status %d", ErrGatewayRequest, resp.StatusCode)
	}

	var parsed statusResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return interfaces.GatewayStatus{}, fmt.Errorf("%w: malformed response", ErrGatewayRequest)
	}

	status := mapPaymentStatus(parsed)
	bookingRef := parsed.Data.BookingRef
	if bookingRef == "" {
		bookingRef = parsed.Data.BookingID
	}

	log.Printf("[phonepe][gateway] status result txn_id=%s code=%s state=%s mapped=%s", transactionID, parsed.Code, parsed.Data.State, status)
	return interfaces.GatewayStatus{Status: status, BookingRef: bookingRef, Raw: raw}, nil
}

// VerifyCallback recomputes the checksum over an inbound callback body and
// compares it against the X-VERIFY header supplied by the gateway.
func (g *Gateway) VerifyCallback(base64Body, xVerify string) bool {
	expected := g.engine.Sign(base64Body, "", g.cfg.SaltKey, g.cfg.SaltIndex)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(xVerify)) == 1
}

// The sandbox may return different codes than production, so success is
// recognized from either the response code or the payment state.
func mapPaymentStatus(r statusResponse) entities.PaymentStatus {
	state := r.Data.State
	if state == "" {
		state = r.Data.PaymentState
	}

	switch {
	case r.Code == "PAYMENT_SUCCESS" || state == "COMPLETED":
		return entities.PaymentStatusSuccess
	case r.Code == "PAYMENT_CANCELLED" || state == "CANCELLED":
		return entities.PaymentStatusCancelled
	case r.Code == "PAYMENT_ERROR" || r.Code == "PAYMENT_DECLINED" || state == "FAILED":
		return entities.PaymentStatusFailed
	default:
		return entities.PaymentStatusPending
	}
}

func truncate(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) > n {
		return s[:n]
	}
	return s
}
