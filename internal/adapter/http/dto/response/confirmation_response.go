package response

import (
	"time"

	"nibog_payments/internal/domain/entities"
)

type BookingResponse struct {
	BookingRef  string    `json:"booking_ref"`
	ParentName  string    `json:"parent_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	EventID     int       `json:"event_id"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		BookingRef:  b.BookingRef,
		ParentName:  b.ParentName,
		Email:       b.Email,
		Phone:       b.Phone,
		EventID:     b.EventID,
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
	}
}

// ConfirmationResponse is returned by the booking-confirmation surface. The
// attempt log is included for diagnostics; the message fields are the only
// text meant for end users.

type ConfirmationResponse struct {
	Outcome     string                           `json:"outcome"`
	Booking     *BookingResponse                 `json:"booking,omitempty"`
	ResolvedVia string                           `json:"resolved_via,omitempty"`
	Message     string                           `json:"message,omitempty"`
	Attempts    []entities.ReconciliationAttempt `json:"attempts,omitempty"`
}

func FromReconciliationResult(r entities.ReconciliationResult) ConfirmationResponse {
	resp := ConfirmationResponse{
		Outcome:     string(r.Outcome),
		ResolvedVia: r.ResolvedVia,
		Attempts:    r.Attempts,
	}
	switch r.Outcome {
	case entities.ReconciliationFound:
		b := FromBooking(r.Booking)
		resp.Booking = &b
	case entities.ReconciliationPartialSuccess:
		resp.Message = "Your payment was received. Your booking is being finalized; please check your confirmation email."
	case entities.ReconciliationNotFound:
		resp.Message = "We could not find your booking; please check your confirmation email."
	}
	return resp
}
