package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nibog_payments/internal/adapter/http/handlers/mocks"
	"nibog_payments/internal/domain/entities"
	"nibog_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func confirmationRouter(t *testing.T) (*gin.Engine, *mocks.MockIBookingReconciliationUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockIBookingReconciliationUseCase(ctrl)
	h := NewConfirmationHandler(uc)

	r := gin.New()
	r.GET("/v1/booking-confirmation", h.GetConfirmation)
	return r, uc
}

func TestConfirmationHandler_Found(t *testing.T) {
	r, uc := confirmationRouter(t)
	uc.EXPECT().Resolve(gomock.Any(), "PPT250101042", "sess-1").
		Return(entities.ReconciliationResult{
			Outcome:     entities.ReconciliationFound,
			Booking:     entities.Booking{BookingRef: "PPT250101042", ParentName: "Asha"},
			ResolvedVia: usecase.StrategyDirectRef,
			Attempts: []entities.ReconciliationAttempt{
				{Strategy: usecase.StrategyDirectRef, Input: "PPT250101042", Outcome: entities.AttemptFound},
			},
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/booking-confirmation?ref=PPT250101042", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-1"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Outcome string `json:"outcome"`
		Booking *struct {
			BookingRef string `json:"booking_ref"`
		} `json:"booking"`
		ResolvedVia string `json:"resolved_via"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.Outcome != "FOUND" || body.Booking == nil || body.Booking.BookingRef != "PPT250101042" {
		t.Fatalf("body: got %s", w.Body.String())
	}
	if body.ResolvedVia != usecase.StrategyDirectRef {
		t.Fatalf("resolved via: got %s", body.ResolvedVia)
	}
}

func TestConfirmationHandler_SessionHeaderFallback(t *testing.T) {
	r, uc := confirmationRouter(t)
	uc.EXPECT().Resolve(gomock.Any(), "PPT250101042", "sess-from-header").
		Return(entities.ReconciliationResult{
			Outcome: entities.ReconciliationFound,
			Booking: entities.Booking{BookingRef: "PPT250101042"},
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/booking-confirmation?ref=PPT250101042", nil)
	req.Header.Set("X-Session-ID", "sess-from-header")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
}

func TestConfirmationHandler_NoRefResolvesFromSessionCache(t *testing.T) {
	// A redirect that lost the reference entirely must reach the resolver with
	// an empty input so the recovery cache can supply the last booking ref.
	r, uc := confirmationRouter(t)
	uc.EXPECT().Resolve(gomock.Any(), "", "sess-1").
		Return(entities.ReconciliationResult{
			Outcome:     entities.ReconciliationFound,
			Booking:     entities.Booking{BookingRef: "PPT250101042"},
			ResolvedVia: usecase.StrategyCachedRef,
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/booking-confirmation?txn=abc", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-1"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		ResolvedVia string `json:"resolved_via"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.ResolvedVia != usecase.StrategyCachedRef {
		t.Fatalf("resolved via: got %s", body.ResolvedVia)
	}
}

func TestConfirmationHandler_MangledQueryPassesFullURL(t *testing.T) {
	// When the query encoding is broken but still carries ref=, the resolver
	// gets the full URL so the embedded reference can be extracted.
	r, uc := confirmationRouter(t)
	uc.EXPECT().Resolve(gomock.Any(), "/v1/booking-confirmation?amp%3Bref=PPT250101042", "").
		Return(entities.ReconciliationResult{Outcome: entities.ReconciliationNotFound}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/booking-confirmation?amp%3Bref=PPT250101042", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d", w.Code)
	}
}

func TestConfirmationHandler_PartialSuccess(t *testing.T) {
	r, uc := confirmationRouter(t)
	uc.EXPECT().Resolve(gomock.Any(), "TXN998877", "").
		Return(entities.ReconciliationResult{
			Outcome: entities.ReconciliationPartialSuccess,
			Attempts: []entities.ReconciliationAttempt{
				{Strategy: usecase.StrategyGatewayTxn, Outcome: entities.AttemptNotFound, Detail: "payment succeeded but no booking id associated"},
			},
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/booking-confirmation?ref=TXN998877", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status: got %d", w.Code)
	}
	var body struct {
		Outcome string `json:"outcome"`
		Message string `json:"message"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.Outcome != "PARTIAL_SUCCESS" || body.Message == "" {
		t.Fatalf("body: got %s", w.Body.String())
	}
}

func TestConfirmationHandler_NotFound(t *testing.T) {
	r, uc := confirmationRouter(t)
	uc.EXPECT().Resolve(gomock.Any(), "UNKNOWN123", "").
		Return(entities.ReconciliationResult{Outcome: entities.ReconciliationNotFound}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/booking-confirmation?ref=UNKNOWN123", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d", w.Code)
	}
}

func TestConfirmationHandler_ResolverError(t *testing.T) {
	r, uc := confirmationRouter(t)
	uc.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entities.ReconciliationResult{}, errors.New("boom"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/booking-confirmation?ref=PPT250101042", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d", w.Code)
	}
	if code, _ := decodeErrorBody(t, w); code != "INTERNAL_ERROR" {
		t.Fatalf("code: got %s", code)
	}
}
