package usecase

import (
	"context"
	"log"
	"net/url"
	"strings"
	"time"

	"nibog_payments/internal/domain/entities"
	"nibog_payments/internal/usecase/interfaces"
)

// Strategy names, recorded in the attempt log.
const (
	StrategyDirectRef  = "direct-reference"
	StrategyURLRef     = "url-embedded-reference"
	StrategyCachedRef  = "cached-reference"
	StrategyGatewayTxn = "gateway-transaction-lookup"
	StrategyHeuristic  = "heuristic-reconstruction"
)

// IBookingReconciliationUseCase recovers a booking from whatever reference the
// browser still has after returning from the payment gateway.

type IBookingReconciliationUseCase interface {
	Resolve(ctx context.Context, input, sessionID string) (entities.ReconciliationResult, error)
}

// BookingReconciliationUseCase runs an ordered, short-circuiting chain of
// lookup strategies. The chain is strictly sequential: later strategies are
// deliberately more expensive and speculative, and parallelizing could race
// two different bookings into view. Every run is isolated; re-running with the
// same inputs and collaborator responses yields the same outcome.

type BookingReconciliationUseCase struct {
	bookings interfaces.IBookingRepository
	payments interfaces.IPaymentTransactionRepository
	gateway  interfaces.IPaymentGateway
	cache    interfaces.IRecoveryCache

	disableHeuristic bool
	now              func() time.Time
}

var _ IBookingReconciliationUseCase = (*BookingReconciliationUseCase)(nil)

func NewBookingReconciliationUseCase(
	bookings interfaces.IBookingRepository,
	payments interfaces.IPaymentTransactionRepository,
	gateway interfaces.IPaymentGateway,
	cache interfaces.IRecoveryCache,
	disableHeuristic bool,
) *BookingReconciliationUseCase {
	return &BookingReconciliationUseCase{
		bookings:         bookings,
		payments:         payments,
		gateway:          gateway,
		cache:            cache,
		disableHeuristic: disableHeuristic,
		now:              time.Now,
	}
}

// resolverStrategy is the common contract every lookup strategy implements.
// A strategy that does not apply to the input still reports NOT_FOUND so the
// attempt log stays complete.
type resolverStrategy interface {
	name() string
	attempt(ctx context.Context, input, sessionID string) strategyOutcome
}

type strategyOutcome struct {
	booking entities.Booking
	outcome entities.AttemptOutcome
	detail  string

	// paymentSucceeded marks a gateway-confirmed payment with no locatable
	// booking, reported as PARTIAL_SUCCESS when the whole chain exhausts.
	paymentSucceeded bool
}

func notApplicable(detail string) strategyOutcome {
	return strategyOutcome{outcome: entities.AttemptNotFound, detail: detail}
}

// Resolve executes the strategy chain, stopping at the first FOUND. It never
// fabricates a booking: exhaustion returns NOT_FOUND (or PARTIAL_SUCCESS when
// the gateway confirmed payment) with the full attempt log for diagnostics.
func (u *BookingReconciliationUseCase) Resolve(ctx context.Context, input, sessionID string) (entities.ReconciliationResult, error) {
	input = strings.TrimSpace(input)
	log.Printf("[reconcile][usecase] resolve start input=%q session_id=%s", input, sessionID)

	chain := []resolverStrategy{
		directRefStrategy{u},
		urlRefStrategy{u},
		cachedRefStrategy{u},
		gatewayTxnStrategy{u},
	}
	if !u.disableHeuristic {
		chain = append(chain, heuristicStrategy{u})
	}

	result := entities.ReconciliationResult{Outcome: entities.ReconciliationNotFound}
	paymentSucceeded := false

	for _, s := range chain {
		out := s.attempt(ctx, input, sessionID)
		result.Attempts = append(result.Attempts, entities.ReconciliationAttempt{
			Strategy: s.name(),
			Input:    input,
			Outcome:  out.outcome,
			Detail:   out.detail,
		})
		if out.paymentSucceeded {
			paymentSucceeded = true
		}

		if out.outcome == entities.AttemptFound {
			result.Outcome = entities.ReconciliationFound
			result.Booking = out.booking
			result.ResolvedVia = s.name()
			u.afterResolution(ctx, sessionID, out.booking.BookingRef)
			log.Printf("[reconcile][usecase] resolved booking_ref=%s via=%s attempts=%d", out.booking.BookingRef, s.name(), len(result.Attempts))
			return result, nil
		}
	}

	if paymentSucceeded {
		result.Outcome = entities.ReconciliationPartialSuccess
		log.Printf("[reconcile][usecase] payment confirmed but no booking associated input=%q attempts=%d", input, len(result.Attempts))
		return result, nil
	}

	log.Printf("[reconcile][usecase] exhausted all strategies input=%q attempts=%d", input, len(result.Attempts))
	return result, nil
}

// afterResolution persists the winning reference for future cache-based
// recovery and clears the session-scoped registration keys so stale
// in-progress state cannot leak into a subsequent booking attempt.
func (u *BookingReconciliationUseCase) afterResolution(ctx context.Context, sessionID, bookingRef string) {
	if sessionID == "" {
		return
	}
	if err := u.cache.Set(ctx, sessionID, interfaces.CacheKeyLastBookingRef, bookingRef); err != nil {
		log.Printf("[reconcile][usecase] recovery cache write failed session_id=%s err=%v", sessionID, err)
	}
	if err := u.cache.Clear(ctx, sessionID, interfaces.SessionKeys...); err != nil {
		log.Printf("[reconcile][usecase] session key clear failed session_id=%s err=%v", sessionID, err)
	}
}

// lookupBooking normalizes ref and fetches it. An empty BookingRef on the
// returned entity means not found (repository convention).
func (u *BookingReconciliationUseCase) lookupBooking(ctx context.Context, ref string) strategyOutcome {
	normalized := NormalizeBookingRef(ref)
	b, err := u.bookings.GetByRef(ctx, normalized)
	if err != nil {
		return strategyOutcome{outcome: entities.AttemptError, detail: "booking lookup failed: " + err.Error()}
	}
	if b.BookingRef == "" {
		return strategyOutcome{outcome: entities.AttemptNotFound, detail: "no booking for reference " + normalized}
	}
	return strategyOutcome{booking: b, outcome: entities.AttemptFound}
}

// 1. Direct reference: the input is already a clean booking reference.

type directRefStrategy struct{ u *BookingReconciliationUseCase }

func (directRefStrategy) name() string { return StrategyDirectRef }

func (s directRefStrategy) attempt(ctx context.Context, input, _ string) strategyOutcome {
	if !IsBookingRefShape(input) {
		return notApplicable("input is not a clean booking reference")
	}
	return s.u.lookupBooking(ctx, input)
}

// 2. URL-embedded reference: the input is (or contains) a URL with a ref
// query parameter. The extracted reference is persisted to the recovery cache
// before lookup so a later reload can still recover it.

type urlRefStrategy struct{ u *BookingReconciliationUseCase }

func (urlRefStrategy) name() string { return StrategyURLRef }

func (s urlRefStrategy) attempt(ctx context.Context, input, sessionID string) strategyOutcome {
	ref := extractRefParam(input)
	if ref == "" {
		return notApplicable("no ref parameter embedded in input")
	}
	if sessionID != "" {
		if err := s.u.cache.Set(ctx, sessionID, interfaces.CacheKeyLastBookingRef, ref); err != nil {
			log.Printf("[reconcile][url-ref] recovery cache write failed session_id=%s err=%v", sessionID, err)
		}
	}
	return s.u.lookupBooking(ctx, ref)
}

func extractRefParam(input string) string {
	if !strings.Contains(input, "ref=") {
		return ""
	}
	if parsed, err := url.Parse(input); err == nil {
		if ref := parsed.Query().Get("ref"); ref != "" {
			return ref
		}
	}
	// Not a parsable URL; take whatever follows ref= up to the next delimiter.
	rest := input[strings.Index(input, "ref=")+len("ref="):]
	if i := strings.IndexAny(rest, "&# "); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// 3. Cached reference: nothing usable arrived at all (e.g. a reload with no
// query string); fall back to the last successfully resolved reference.

type cachedRefStrategy struct{ u *BookingReconciliationUseCase }

func (cachedRefStrategy) name() string { return StrategyCachedRef }

func (s cachedRefStrategy) attempt(ctx context.Context, input, sessionID string) strategyOutcome {
	if input != "" {
		return notApplicable("input present, recovery cache not consulted")
	}
	if sessionID == "" {
		return notApplicable("no session to read the recovery cache for")
	}
	ref, ok, err := s.u.cache.Get(ctx, sessionID, interfaces.CacheKeyLastBookingRef)
	if err != nil {
		return strategyOutcome{outcome: entities.AttemptError, detail: "recovery cache read failed: " + err.Error()}
	}
	if !ok || ref == "" {
		return notApplicable("recovery cache has no lastBookingRef")
	}
	return s.u.lookupBooking(ctx, ref)
}

// 4. Gateway-id-to-booking lookup: the input is not in any booking-reference
// shape, so treat it as a potential gateway transaction id, ask the gateway
// for its status and follow the server-created booking id on success. The
// merchant-side transaction record is the fallback mapping when the gateway
// response carries no booking reference.

type gatewayTxnStrategy struct{ u *BookingReconciliationUseCase }

func (gatewayTxnStrategy) name() string { return StrategyGatewayTxn }

func (s gatewayTxnStrategy) attempt(ctx context.Context, input, _ string) strategyOutcome {
	if input == "" || IsBookingRefShape(input) || strings.Contains(input, "ref=") {
		return notApplicable("input is not a gateway transaction id shape")
	}

	status, err := s.u.gateway.CheckStatus(ctx, input)
	if err != nil {
		return strategyOutcome{outcome: entities.AttemptError, detail: "gateway status check failed: " + err.Error()}
	}
	if status.Status != entities.PaymentStatusSuccess {
		return strategyOutcome{outcome: entities.AttemptNotFound, detail: "gateway status " + string(status.Status)}
	}

	ref := status.BookingRef
	if ref == "" {
		txn, err := s.u.payments.GetByTransactionID(ctx, input)
		if err != nil {
			return strategyOutcome{outcome: entities.AttemptError, detail: "transaction record lookup failed: " + err.Error(), paymentSucceeded: true}
		}
		ref = txn.BookingRef
	}
	if ref == "" {
		return strategyOutcome{outcome: entities.AttemptNotFound, detail: "payment succeeded but no booking id associated", paymentSucceeded: true}
	}

	out := s.u.lookupBooking(ctx, ref)
	if out.outcome != entities.AttemptFound {
		out.paymentSucceeded = true
	}
	return out
}

// 5. Heuristic reconstruction, explicit last resort: synthesize a plausible
// PPT reference from today's date plus the input's numeric fragments. This is
// the only strategy allowed to guess, it is disableable via configuration,
// and it logs loudly whenever it is the one that succeeds so it can be
// monitored and retired.

type heuristicStrategy struct{ u *BookingReconciliationUseCase }

func (heuristicStrategy) name() string { return StrategyHeuristic }

func (s heuristicStrategy) attempt(ctx context.Context, input, _ string) strategyOutcome {
	digits := digitsOf(input)
	if digits == "" {
		return notApplicable("no numeric fragments to reconstruct from")
	}

	candidate := "PPT" + s.u.now().Format("060102") + leftPad(lastN(digits, 3), 3)
	out := s.u.lookupBooking(ctx, candidate)
	if out.outcome == entities.AttemptFound {
		log.Printf("[reconcile][heuristic] speculative reconstruction matched input=%q candidate=%s booking_ref=%s", input, candidate, out.booking.BookingRef)
		out.detail = "speculative match on reconstructed reference " + candidate
	} else {
		out.detail = "no booking for reconstructed reference " + candidate
	}
	return out
}
