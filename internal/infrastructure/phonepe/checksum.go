package phonepe

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"log"
)

// Hasher computes the hex-encoded SHA-256 digest of a message. Two
// implementations exist: the runtime's native primitive and a dependency-free
// fallback. Both must produce byte-identical output for the same input.

type Hasher interface {
	Sum256Hex(message string) string
}

type nativeHasher struct{}

func (nativeHasher) Sum256Hex(message string) string {
	sum := sha256.Sum256([]byte(message))
	return hex.EncodeToString(sum[:])
}

type fallbackHasher struct{}

func (fallbackHasher) Sum256Hex(message string) string {
	return sum256Hex([]byte(message))
}

// probe vector: SHA-256("") per FIPS 180-4.
const emptyDigestHex = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

// ChecksumEngine signs gateway request envelopes. A hashing failure is a
// programming error, not a transient fault; there are no retries at this layer.

type ChecksumEngine struct {
	hasher Hasher
}

// NewChecksumEngine selects the hashing implementation with a capability
// probe: the native primitive is exercised against a known vector and the
// pure-Go fallback takes over if the probe panics or disagrees.
func NewChecksumEngine() *ChecksumEngine {
	return &ChecksumEngine{hasher: probeHasher()}
}

// NewChecksumEngineWithHasher pins a specific hasher. Used by the equivalence
// tests and by callers that must force the fallback path.
func NewChecksumEngineWithHasher(h Hasher) *ChecksumEngine {
	return &ChecksumEngine{hasher: h}
}

func probeHasher() Hasher {
	return probe(nativeHasher{})
}

// probe exercises candidate against the known vector. A panic or a wrong
// digest both demote to the fallback implementation.
func probe(candidate Hasher) (h Hasher) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[phonepe][checksum] sha256 probe panicked (%v), using fallback implementation", r)
			h = fallbackHasher{}
		}
	}()
	if candidate.Sum256Hex("") == emptyDigestHex {
		return candidate
	}
	log.Printf("[phonepe][checksum] sha256 probe failed, using fallback implementation")
	return fallbackHasher{}
}

// Digest returns the hex-encoded SHA-256 of message.
func (e *ChecksumEngine) Digest(message string) string {
	return e.hasher.Sum256Hex(message)
}

// Base64Encode encodes the canonical request payload for the wire envelope.
func (e *ChecksumEngine) Base64Encode(payload []byte) string {
	return base64.StdEncoding.EncodeToString(payload)
}

// Sign computes the X-VERIFY checksum for a request:
// hex(sha256(base64Payload + apiPath + saltKey)) + "###" + saltIndex.
// The same computation recomputed over an inbound callback body verifies its
// authenticity.
func (e *ChecksumEngine) Sign(base64Payload, apiPath, saltKey, saltIndex string) string {
	return e.Digest(base64Payload+apiPath+saltKey) + "###" + saltIndex
}
