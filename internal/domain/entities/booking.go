package entities

import "time"

// BookingStatus represents the lifecycle of an event registration.
//
// Domain notes:
//   - A booking is created server-side once the gateway confirms payment;
//     this service only reads and reconciles it afterwards.
//   - Status transitions are driven by the payment flow, never by the
//     reconciliation resolver (it is strictly read-only).

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is the registration record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: booking_ref
//   - GSI1 (transaction_id-index): transaction_id
//
// Reference formats (all canonical):
//   - "B0000123"     legacy numeric references
//   - "PPT250831042" gateway-flow references (PPT + YYMMDD + numeric id)
//   - "MAN250831042" manually created references
type Booking struct {
	BookingRef    string        `json:"booking_ref"`
	UserID        int           `json:"user_id"`
	ParentName    string        `json:"parent_name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	EventID       int           `json:"event_id"`
	TotalAmount   float64       `json:"total_amount"`
	Status        BookingStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
