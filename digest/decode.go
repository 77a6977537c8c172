package digest

import (
	"encoding/hex"
	"fmt"
)

// Printable reports whether b is kept by [Decode]: printable ASCII
// excluding space (0x20) and DEL (0x7F).
func Printable(b byte) bool {
	return b > 32 && b < 127
}

// Decode reduces a hexadecimal digest to the text formed by its printable
// bytes, in their original order.  Bytes outside 0x21–0x7E are dropped, not
// substituted, so the result is usually much shorter than the digest and
// may be empty.
//
// Upper- and lowercase hex digits are both accepted.  An odd-length or
// non-hex input returns [ErrInvalidDigest].
func Decode(hexDigest string) (string, error) {
	raw, err := hex.DecodeString(hexDigest)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDigest, err)
	}
	kept := raw[:0]
	for _, b := range raw {
		if Printable(b) {
			kept = append(kept, b)
		}
	}
	return string(kept), nil
}

// Round hashes message with h and decodes the digest: one hash-then-filter
// cycle.  An error is only possible when h returns malformed hex.
func Round(h Hasher, message []byte) (string, error) {
	text, err := Decode(h.Sum(message))
	if err != nil {
		return "", fmt.Errorf("digest: %s round: %w", h.Algorithm(), err)
	}
	return text, nil
}
