package junit

import "strings"

// MaxInputSize is the largest document the ingester accepts, in bytes.
const MaxInputSize = 10 * 1024 * 1024

// ValidateInput rejects oversized input and input containing DOCTYPE or
// ENTITY declarations. Rejecting every DOCTYPE is deliberate: it trades
// false positives for immunity against external-entity and
// entity-expansion attacks. This check runs before any XML decoding.
func ValidateInput(text string) error {
	if len(text) > MaxInputSize {
		return newError(KindSizeExceeded, "input exceeds the maximum size of %d bytes", MaxInputSize)
	}
	lower := strings.ToLower(text)
	if strings.Contains(lower, "<!doctype") {
		return newError(KindMaliciousContent, "input contains a DOCTYPE declaration, which is not allowed")
	}
	if strings.Contains(lower, "<!entity") {
		return newError(KindMaliciousContent, "input contains an ENTITY declaration, which is not allowed")
	}
	return nil
}
