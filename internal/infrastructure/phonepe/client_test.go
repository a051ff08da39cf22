package phonepe

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nibog_payments/internal/domain/entities"
	"nibog_payments/internal/usecase/interfaces"
)

func testGateway(t *testing.T, handler http.HandlerFunc) (*Gateway, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := sandboxTestConfig()
	cfg.Endpoints = Endpoints{
		Initiate: srv.URL + "/pg/v1/pay",
		Status:   srv.URL + "/pg/v1/status",
		Refund:   srv.URL + "/pg/v1/refund",
	}

	g := NewGateway(cfg, NewChecksumEngine())
	g.httpc = srv.Client()
	g.now = func() time.Time { return time.UnixMilli(1735689600000) }
	return g, srv
}

func TestGateway_InitiatePayment(t *testing.T) {
	var gotBody []byte
	var gotXVerify string

	g, _ := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotXVerify = r.Header.Get("X-VERIFY")
		var envelope struct {
			Request string `json:"request"`
		}
		if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
			t.Errorf("envelope decode: %v", err)
		}
		decoded, err := base64.StdEncoding.DecodeString(envelope.Request)
		if err != nil {
			t.Errorf("envelope is not base64: %v", err)
		}
		gotBody = decoded

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"code":    "PAYMENT_INITIATED",
			"data": map[string]any{
				"instrumentResponse": map[string]any{
					"redirectInfo": map[string]any{"url": "https://mercury.phonepe.com/transact/abc"},
				},
			},
		})
	})

	res, err := g.InitiatePayment(context.Background(), interfaces.GatewayInitiateRequest{
		BookingRef:   "PPT250101042",
		Amount:       250000,
		MobileNumber: "9999999999",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RedirectURL != "https://mercury.phonepe.com/transact/abc" {
		t.Fatalf("redirect url: got %s", res.RedirectURL)
	}
	if res.TransactionID != "NIBOG_PPT250101042_1735689600000" {
		t.Fatalf("transaction id: got %s", res.TransactionID)
	}

	var payload paymentRequest
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("payload decode: %v", err)
	}
	if payload.MerchantID != defaultSandboxMerchantID {
		t.Fatalf("merchant id: got %s", payload.MerchantID)
	}
	if payload.Amount != 250000 {
		t.Fatalf("amount: got %d", payload.Amount)
	}
	if payload.MerchantTransactionID != res.TransactionID {
		t.Fatalf("payload and result disagree on transaction id")
	}
	if payload.RedirectURL != "https://www.nibog.in/booking-confirmation?ref=PPT250101042" {
		t.Fatalf("redirect url in payload: got %s", payload.RedirectURL)
	}
	if payload.CallbackURL != "https://www.nibog.in/v1/payments/phonepe/callback" {
		t.Fatalf("callback url in payload: got %s", payload.CallbackURL)
	}
	if payload.PaymentInstrument.Type != "PAY_PAGE" {
		t.Fatalf("payment instrument: got %s", payload.PaymentInstrument.Type)
	}

	b64 := base64.StdEncoding.EncodeToString(gotBody)
	want := g.engine.Sign(b64, payAPIPath, g.cfg.SaltKey, g.cfg.SaltIndex)
	if gotXVerify != want {
		t.Fatalf("X-VERIFY mismatch: got %s want %s", gotXVerify, want)
	}
}

func TestGateway_InitiatePayment_RequestBaseURLOverride(t *testing.T) {
	var gotBody []byte
	g, _ := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		var envelope struct {
			Request string `json:"request"`
		}
		json.NewDecoder(r.Body).Decode(&envelope)
		gotBody, _ = base64.StdEncoding.DecodeString(envelope.Request)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"instrumentResponse": map[string]any{
					"redirectInfo": map[string]any{"url": "https://pay.example/redirect"},
				},
			},
		})
	})

	_, err := g.InitiatePayment(context.Background(), interfaces.GatewayInitiateRequest{
		BookingRef: "PPT250101042",
		Amount:     100,
		BaseURL:    "https://staging.nibog.in",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload paymentRequest
	json.Unmarshal(gotBody, &payload)
	if payload.RedirectURL != "https://staging.nibog.in/booking-confirmation?ref=PPT250101042" {
		t.Fatalf("redirect url should follow the request host, got %s", payload.RedirectURL)
	}
}

func TestGateway_InitiatePayment_RefusesOnCriticalConfig(t *testing.T) {
	requests := 0
	g, _ := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})
	g.cfg.SaltKey = ""

	_, err := g.InitiatePayment(context.Background(), interfaces.GatewayInitiateRequest{
		BookingRef: "PPT250101042",
		Amount:     100,
	})
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
	if requests != 0 {
		t.Fatalf("no request may be sent on critical config, got %d", requests)
	}
}

func TestGateway_InitiatePayment_GatewayFailures(t *testing.T) {
	t.Run("non-2xx", func(t *testing.T) {
		g, _ := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		_, err := g.InitiatePayment(context.Background(), interfaces.GatewayInitiateRequest{BookingRef: "PPT250101042", Amount: 100})
		if !errors.Is(err, ErrGatewayRequest) {
			t.Fatalf("expected ErrGatewayRequest, got %v", err)
		}
	})

	t.Run("success=false", func(t *testing.T) {
		g, _ := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"success": false, "code": "KEY_NOT_CONFIGURED", "message": "Key not found"})
		})
		_, err := g.InitiatePayment(context.Background(), interfaces.GatewayInitiateRequest{BookingRef: "PPT250101042", Amount: 100})
		if !errors.Is(err, ErrGatewayRequest) {
			t.Fatalf("expected ErrGatewayRequest, got %v", err)
		}
	})

	t.Run("missing redirect url", func(t *testing.T) {
		g, _ := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"success": true})
		})
		_, err := g.InitiatePayment(context.Background(), interfaces.GatewayInitiateRequest{BookingRef: "PPT250101042", Amount: 100})
		if !errors.Is(err, ErrGatewayRequest) {
			t.Fatalf("expected ErrGatewayRequest, got %v", err)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		g, _ := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		})
		_, err := g.InitiatePayment(context.Background(), interfaces.GatewayInitiateRequest{BookingRef: "PPT250101042", Amount: 100})
		if !errors.Is(err, ErrGatewayRequest) {
			t.Fatalf("expected ErrGatewayRequest, got %v", err)
		}
	})
}

func TestGateway_CheckStatus(t *testing.T) {
	var gotPath, gotXVerify, gotMerchantHeader string

	g, _ := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotXVerify = r.Header.Get("X-VERIFY")
		gotMerchantHeader = r.Header.Get("X-MERCHANT-ID")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"code":    "PAYMENT_SUCCESS",
			"data": map[string]any{
				"state":      "COMPLETED",
				"bookingRef": "PPT250101042",
			},
		})
	})

	status, err := g.CheckStatus(context.Background(), "NIBOG_PPT250101042_1735689600000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Status != entities.PaymentStatusSuccess {
		t.Fatalf("status: got %s", status.Status)
	}
	if status.BookingRef != "PPT250101042" {
		t.Fatalf("booking ref: got %s", status.BookingRef)
	}
	if len(status.Raw) == 0 {
		t.Fatalf("raw response body must be preserved")
	}

	wantPath := "/pg/v1/status/" + defaultSandboxMerchantID + "/NIBOG_PPT250101042_1735689600000"
	if gotPath != wantPath {
		t.Fatalf("path: got %s want %s", gotPath, wantPath)
	}
	if gotMerchantHeader != defaultSandboxMerchantID {
		t.Fatalf("X-MERCHANT-ID: got %s", gotMerchantHeader)
	}
	wantSig := g.engine.Sign("", statusAPIPath+"/"+defaultSandboxMerchantID+"/NIBOG_PPT250101042_1735689600000", g.cfg.SaltKey, g.cfg.SaltIndex)
	if gotXVerify != wantSig {
		t.Fatalf("X-VERIFY mismatch: got %s want %s", gotXVerify, wantSig)
	}
}

func TestGateway_CheckStatus_FallsBackToBookingID(t *testing.T) {
	g, _ := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"code":    "PAYMENT_SUCCESS",
			"data":    map[string]any{"bookingId": "B0000042"},
		})
	})

	status, err := g.CheckStatus(context.Background(), "TXN1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.BookingRef != "B0000042" {
		t.Fatalf("expected bookingId fallback, got %s", status.BookingRef)
	}
}

func TestGateway_VerifyCallback(t *testing.T) {
	g, _ := testGateway(t, func(w http.ResponseWriter, r *http.Request) {})

	body := base64.StdEncoding.EncodeToString([]byte(`{"code":"PAYMENT_SUCCESS"}`))
	sig := g.engine.Sign(body, "", g.cfg.SaltKey, g.cfg.SaltIndex)

	if !g.VerifyCallback(body, sig) {
		t.Fatalf("valid signature rejected")
	}
	if g.VerifyCallback(body, sig+"x") {
		t.Fatalf("tampered signature accepted")
	}
	if g.VerifyCallback(body+"x", sig) {
		t.Fatalf("tampered body accepted")
	}
	if g.VerifyCallback(body, "") {
		t.Fatalf("empty signature accepted")
	}
}

func TestMapPaymentStatus(t *testing.T) {
	cases := []struct {
		code  string
		state string
		want  entities.PaymentStatus
	}{
		{"PAYMENT_SUCCESS", "", entities.PaymentStatusSuccess},
		{"", "COMPLETED", entities.PaymentStatusSuccess},
		{"PAYMENT_CANCELLED", "", entities.PaymentStatusCancelled},
		{"", "CANCELLED", entities.PaymentStatusCancelled},
		{"PAYMENT_ERROR", "", entities.PaymentStatusFailed},
		{"PAYMENT_DECLINED", "", entities.PaymentStatusFailed},
		{"", "FAILED", entities.PaymentStatusFailed},
		{"PAYMENT_PENDING", "", entities.PaymentStatusPending},
		{"", "", entities.PaymentStatusPending},
	}
	for _, c := range cases {
		var r statusResponse
		r.Code = c.code
		r.Data.State = c.state
		if got := mapPaymentStatus(r); got != c.want {
			t.Fatalf("code=%q state=%q: got %s want %s", c.code, c.state, got, c.want)
		}
	}
}
