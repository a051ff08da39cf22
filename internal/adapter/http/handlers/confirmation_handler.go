package handlers

import (
	"log"
	"net/http"
	"strings"

	response "nibog_payments/internal/adapter/http/dto/response"
	"nibog_payments/internal/domain/entities"
	"nibog_payments/internal/usecase"
	"nibog_payments/pkg"

	"github.com/gin-gonic/gin"
)

const sessionCookieName = "nibog_session"

// ConfirmationHandler handles the post-payment landing request: the browser
// comes back from the gateway with whatever reference survived the redirect,
// and the reconciliation use case works out which booking it belongs to.

type ConfirmationHandler struct {
	usecase usecase.IBookingReconciliationUseCase
}

func NewConfirmationHandler(uc usecase.IBookingReconciliationUseCase) *ConfirmationHandler {
	return &ConfirmationHandler{usecase: uc}
}

// GetConfirmation resolves a booking from the raw reference on the redirect.
func (h *ConfirmationHandler) GetConfirmation(c *gin.Context) {
	input := c.Query("ref")
	if input == "" && strings.Contains(c.Request.URL.RawQuery, "ref=") {
		// some gateway redirects mangle the query encoding; hand the full URL
		// to the resolver so the embedded reference can still be extracted
		input = c.Request.URL.String()
	}
	sessionID := sessionIDFrom(c)

	log.Printf("[confirmation][handler] resolve start input=%q session_id=%s", input, sessionID)

	result, err := h.usecase.Resolve(c.Request.Context(), input, sessionID)
	if err != nil {
		log.Printf("[confirmation][handler] resolve failed input=%q err=%v", input, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	body := response.FromReconciliationResult(result)
	switch result.Outcome {
	case entities.ReconciliationFound:
		log.Printf("[confirmation][handler] resolve success booking_ref=%s via=%s", result.Booking.BookingRef, result.ResolvedVia)
		c.JSON(http.StatusOK, body)
	case entities.ReconciliationPartialSuccess:
		log.Printf("[confirmation][handler] resolve partial input=%q attempts=%d", input, len(result.Attempts))
		c.JSON(http.StatusAccepted, body)
	default:
		log.Printf("[confirmation][handler] resolve not-found input=%q attempts=%d", input, len(result.Attempts))
		c.JSON(http.StatusNotFound, body)
	}
}

func sessionIDFrom(c *gin.Context) string {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	return c.GetHeader("X-Session-ID")
}
