package phonepe

import (
	"fmt"
	"time"
)

// The gateway rejects merchant transaction ids longer than 38 characters.
const (
	transactionIDPrefix = "NIBOG_"
	maxTransactionIDLen = 38
)

// AllocateTransactionID builds "{prefix}{bookingId}_{unixMillis}". When the
// full form would exceed the 38-character gateway bound it is rebuilt from the
// last six characters of the booking id. Deterministic for a fixed
// (bookingID, now) pair; uniqueness relies on millisecond granularity, not
// randomness. The caller persists the mapping.
func AllocateTransactionID(bookingID string, now time.Time) string {
	ts := now.UnixMilli()
	full := fmt.Sprintf("%s%s_%d", transactionIDPrefix, bookingID, ts)
	if len(full) <= maxTransactionIDLen {
		return full
	}

	short := bookingID
	if len(short) > 6 {
		short = short[len(short)-6:]
	}
	return fmt.Sprintf("%s%s_%d", transactionIDPrefix, short, ts)
}
