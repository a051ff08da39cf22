package interfaces

import "context"

// Well-known recovery cache keys. lastBookingRef survives the gateway
// redirect so a reload without a query string can still find its booking;
// the session keys hold in-progress registration state and are cleared once
// a booking is resolved.
const (
	CacheKeyLastBookingRef = "lastBookingRef"

	CacheKeyRegistrationData  = "registrationData"
	CacheKeySelectedAddOns    = "selectedAddOns"
	CacheKeyEligibleGames     = "eligibleGames"
	CacheKeyRestoredCity      = "nibog_restored_city"
	CacheKeyRestoredEventType = "nibog_restored_eventType"
	CacheKeyRestoredChildAge  = "nibog_restored_childAgeMonths"
)

// SessionKeys lists every session-scoped key cleared after a successful
// booking resolution, so stale in-progress state cannot leak into a
// subsequent booking attempt.
var SessionKeys = []string{
	CacheKeyRegistrationData,
	CacheKeySelectedAddOns,
	CacheKeyEligibleGames,
	CacheKeyRestoredCity,
	CacheKeyRestoredEventType,
	CacheKeyRestoredChildAge,
}

// IRecoveryCache is the client-recovery key-value capability injected into
// the reconciliation resolver. Writes are single-key upserts; last-writer-wins
// is acceptable because at most one browser tab drives a given payment flow.

type IRecoveryCache interface {
	Get(ctx context.Context, sessionID, key string) (string, bool, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Clear(ctx context.Context, sessionID string, keys ...string) error
}
