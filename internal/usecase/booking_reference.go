package usecase

import (
	"regexp"
	"strings"
	"time"
)

// Booking references appear in three canonical shapes: legacy "B" references
// (B0000123), gateway-flow "PPT" references (PPT + YYMMDD + numeric id) and
// manual "MAN" references. Gateway transaction ids (NIBOG_..., TXN...) are a
// different namespace and must never be mistaken for booking references.

var (
	bRefPattern   = regexp.MustCompile(`^B(\d+)$`)
	pptRefPattern = regexp.MustCompile(`^PPT(\d{6})(\d+)$`)
	manRefPattern = regexp.MustCompile(`^MAN(\d{6})(\d+)$`)

	// Generic letters+digits shape, e.g. NIBOGREF123.
	genericRefPattern = regexp.MustCompile(`^[A-Z]{1,10}\d+$`)

	transactionIDPattern = regexp.MustCompile(`^(NIBOG_|TXN)`)
)

// IsBookingRefShape reports whether ref looks like a canonical booking
// reference: no embedded URL, no gateway-transaction-id shape.
func IsBookingRefShape(ref string) bool {
	ref = StripRefQuotes(ref)
	if ref == "" || strings.Contains(ref, "://") || strings.Contains(ref, "ref=") {
		return false
	}
	if transactionIDPattern.MatchString(ref) || strings.Contains(ref, "_") {
		return false
	}
	return bRefPattern.MatchString(ref) ||
		pptRefPattern.MatchString(ref) ||
		manRefPattern.MatchString(ref) ||
		genericRefPattern.MatchString(ref)
}

// StripRefQuotes removes JSON-string quoting a cached reference may carry.
func StripRefQuotes(ref string) string {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, `"`) && strings.HasSuffix(ref, `"`) && len(ref) >= 2 {
		ref = ref[1 : len(ref)-1]
	}
	return ref
}

// NormalizeBookingRef converts a reference toward the canonical PPT form
// without ever fabricating a new identifier: B references are reformatted,
// PPT and MAN references are preserved, anything else is returned as-is for
// the lookup to decide.
func NormalizeBookingRef(ref string) string {
	ref = StripRefQuotes(ref)
	if m := bRefPattern.FindStringSubmatch(ref); m != nil {
		return ConvertBookingRefFormat(ref, "PPT", time.Now())
	}
	return ref
}

// ConvertBookingRefFormat converts between the B and PPT reference formats.
// MAN references convert with their embedded date preserved. For unknown
// shapes the numeric fragments are combined with today's date; that branch is
// the basis of the resolver's explicit last-resort heuristic and must not be
// reached by normal normalization.
func ConvertBookingRefFormat(ref, targetFormat string, now time.Time) string {
	ref = StripRefQuotes(ref)
	if ref == "" {
		return ""
	}

	switch {
	case bRefPattern.MatchString(ref):
		numeric := bRefPattern.FindStringSubmatch(ref)[1]
		if targetFormat == "B" {
			return "B" + leftPad(numeric, 7)
		}
		return "PPT" + now.Format("060102") + leftPad(lastN(numeric, 3), 3)

	case pptRefPattern.MatchString(ref):
		m := pptRefPattern.FindStringSubmatch(ref)
		if targetFormat == "PPT" {
			// Preserve the embedded date.
			return ref
		}
		return "B" + leftPad(m[2], 7)

	case manRefPattern.MatchString(ref):
		m := manRefPattern.FindStringSubmatch(ref)
		if targetFormat == "PPT" {
			return "PPT" + m[1] + leftPad(m[2], 3)
		}
		return "B" + leftPad(m[2], 7)

	default:
		numeric := digitsOf(ref)
		if targetFormat == "B" {
			return "B" + leftPad(lastN(numeric, 7), 7)
		}
		return "PPT" + now.Format("060102") + leftPad(lastN(numeric, 3), 3)
	}
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func lastN(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
