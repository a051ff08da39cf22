package phonepe

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
)

func TestChecksumEngine_HasherEquivalence(t *testing.T) {
	vectors := []string{
		"",
		"abc",
		"The quick brown fox jumps over the lazy dog",
		// message lengths around the SHA-256 padding boundary
		strings.Repeat("a", 55),
		strings.Repeat("a", 56),
		strings.Repeat("a", 63),
		strings.Repeat("a", 64),
		strings.Repeat("a", 65),
		strings.Repeat("x", 1000),
		`{"merchantId":"PGTESTPAYUAT86","amount":42}`,
	}

	native := nativeHasher{}
	fallback := fallbackHasher{}

	for _, v := range vectors {
		got := fallback.Sum256Hex(v)
		want := native.Sum256Hex(v)
		if got != want {
			t.Fatalf("fallback digest mismatch for %d-byte input: got %s want %s", len(v), got, want)
		}
	}
}

func TestChecksumEngine_KnownVectors(t *testing.T) {
	e := NewChecksumEngine()

	if got := e.Digest(""); got != emptyDigestHex {
		t.Fatalf("empty digest: got %s want %s", got, emptyDigestHex)
	}
	// FIPS 180-4 "abc" vector
	const abcDigest = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := e.Digest("abc"); got != abcDigest {
		t.Fatalf("abc digest: got %s want %s", got, abcDigest)
	}
}

func TestChecksumEngine_FallbackMatchesStdlib(t *testing.T) {
	e := NewChecksumEngineWithHasher(fallbackHasher{})

	for n := 0; n < 130; n++ {
		msg := strings.Repeat("p", n)
		sum := sha256.Sum256([]byte(msg))
		want := hex.EncodeToString(sum[:])
		if got := e.Digest(msg); got != want {
			t.Fatalf("fallback digest mismatch at length %d: got %s want %s", n, got, want)
		}
	}
}

func TestChecksumEngine_Sign(t *testing.T) {
	e := NewChecksumEngine()

	b64 := e.Base64Encode([]byte(`{"merchantId":"M"}`))
	sig := e.Sign(b64, "/pg/v1/pay", "salt-key", "1")

	if !strings.HasSuffix(sig, "###1") {
		t.Fatalf("expected salt index suffix, got %s", sig)
	}
	digest := strings.TrimSuffix(sig, "###1")
	if len(digest) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(digest))
	}
	if digest != e.Digest(b64+"/pg/v1/pay"+"salt-key") {
		t.Fatalf("signature does not match digest of concatenated payload")
	}

	// deterministic
	if again := e.Sign(b64, "/pg/v1/pay", "salt-key", "1"); again != sig {
		t.Fatalf("signature is not deterministic: %s vs %s", sig, again)
	}

	// any input change must change the digest
	if e.Sign(b64, "/pg/v1/status", "salt-key", "1") == sig {
		t.Fatalf("signature did not change with api path")
	}
	if e.Sign(b64, "/pg/v1/pay", "other-salt", "1") == sig {
		t.Fatalf("signature did not change with salt key")
	}
	if e.Sign(b64+"x", "/pg/v1/pay", "salt-key", "1") == sig {
		t.Fatalf("signature did not change with payload")
	}
}

func TestProbeHasher_PrefersNative(t *testing.T) {
	if _, ok := probeHasher().(nativeHasher); !ok {
		t.Fatalf("expected native hasher to pass the probe")
	}
}

type panickingHasher struct{}

func (panickingHasher) Sum256Hex(string) string { panic("sha256 unavailable") }

type wrongDigestHasher struct{}

func (wrongDigestHasher) Sum256Hex(string) string { return "not-a-digest" }

func TestProbe_DemotesToFallback(t *testing.T) {
	t.Run("panicking candidate", func(t *testing.T) {
		h := probe(panickingHasher{})
		if h == nil {
			t.Fatalf("probe returned nil hasher")
		}
		if _, ok := h.(fallbackHasher); !ok {
			t.Fatalf("expected fallback hasher, got %T", h)
		}
		if got := h.Sum256Hex(""); got != emptyDigestHex {
			t.Fatalf("fallback digest: got %s", got)
		}
	})
	t.Run("wrong digest candidate", func(t *testing.T) {
		if _, ok := probe(wrongDigestHasher{}).(fallbackHasher); !ok {
			t.Fatalf("expected fallback hasher")
		}
	})
}
