package derive

import "strings"

// Class is a set of character ranges, combined as a bit mask.
type Class uint8

const (
	// ClassLowercase is a–z.
	ClassLowercase Class = 1 << iota
	// ClassUppercase is A–Z.
	ClassUppercase
	// ClassDigits is 0–9.
	ClassDigits
	// ClassSymbols is the printable ASCII punctuation in 0x21–0x2F,
	// 0x3A–0x40, 0x5B–0x60 and 0x7B–0x7E.
	ClassSymbols

	// ClassAll is every class above.
	ClassAll = ClassLowercase | ClassUppercase | ClassDigits | ClassSymbols
)

// Empty reports whether c selects no characters.
func (c Class) Empty() bool { return c&ClassAll == 0 }

// Contains reports whether b is a member of c.
func (c Class) Contains(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return c&ClassLowercase != 0
	case b >= 'A' && b <= 'Z':
		return c&ClassUppercase != 0
	case b >= '0' && b <= '9':
		return c&ClassDigits != 0
	case isSymbol(b):
		return c&ClassSymbols != 0
	}
	return false
}

// Filter appends to dst every byte of s that is a member of c, in order,
// and returns the extended slice.
func (c Class) Filter(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		if c.Contains(s[i]) {
			dst = append(dst, s[i])
		}
	}
	return dst
}

// String returns the member classes joined by "|", or "none".
func (c Class) String() string {
	var parts []string
	if c&ClassLowercase != 0 {
		parts = append(parts, "lowercase")
	}
	if c&ClassUppercase != 0 {
		parts = append(parts, "uppercase")
	}
	if c&ClassDigits != 0 {
		parts = append(parts, "digits")
	}
	if c&ClassSymbols != 0 {
		parts = append(parts, "symbols")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

func isSymbol(b byte) bool {
	return (b >= 0x21 && b <= 0x2f) ||
		(b >= 0x3a && b <= 0x40) ||
		(b >= 0x5b && b <= 0x60) ||
		(b >= 0x7b && b <= 0x7e)
}
