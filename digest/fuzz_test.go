package digest_test

import (
	"encoding/hex"
	"testing"

	"github.com/hasbyte1/go-derive-secrets/digest"
)

// FuzzDecode checks that every decoded byte is printable and that the
// output never exceeds one byte per hex pair.
func FuzzDecode(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x20, 0x21, 0x7e, 0x7f})
	f.Add([]byte("plain ascii"))
	f.Fuzz(func(t *testing.T, raw []byte) {
		got, err := digest.Decode(hex.EncodeToString(raw))
		if err != nil {
			t.Fatalf("Decode of valid hex failed: %v", err)
		}
		if len(got) > len(raw) {
			t.Fatalf("decoded %d bytes from %d", len(got), len(raw))
		}
		for i := 0; i < len(got); i++ {
			if !digest.Printable(got[i]) {
				t.Fatalf("non-printable byte %#x in output", got[i])
			}
		}
	})
}

// FuzzRound checks that a round never fails for built-in hashers.
func FuzzRound(f *testing.F) {
	f.Add("")
	f.Add("example.com|user@example.com")
	f.Fuzz(func(t *testing.T, msg string) {
		for _, h := range builtinHashers() {
			if _, err := digest.Round(h, []byte(msg)); err != nil {
				t.Fatalf("%s: %v", h.Algorithm(), err)
			}
		}
	})
}
