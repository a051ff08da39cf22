package interfaces

import (
	"context"

	"nibog_payments/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// The reconciliation resolver only reads; writes happen when the payment
// callback confirms a booking.

type IBookingRepository interface {
	GetByRef(ctx context.Context, bookingRef string) (entities.Booking, error)
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	UpdateStatus(ctx context.Context, bookingRef string, status entities.BookingStatus) error
}
