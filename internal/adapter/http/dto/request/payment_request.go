package request

// PaymentInitiateRequest is the payload for the "initiate gateway payment"
// route. Amount is in minor currency units (paise).

type PaymentInitiateRequest struct {
	BookingRef string `json:"booking_ref" binding:"required"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	Mobile     string `json:"mobile"`
}
