package derive

import "fmt"

// DefaultLength is the password and PIN length used by [DefaultPolicy].
const DefaultLength = 20

// Policy selects the length and character classes of a derived password.
//
// Length is consumed by [Engine.Codes]; [Engine.Password] takes its length
// as an explicit argument and reads only the class flags.
type Policy struct {
	Length           int
	IncludeUppercase bool
	IncludeLowercase bool
	IncludeNumbers   bool
	IncludeSymbols   bool
}

// DefaultPolicy returns a policy of [DefaultLength] characters with every
// class enabled.
func DefaultPolicy() Policy {
	return Policy{
		Length:           DefaultLength,
		IncludeUppercase: true,
		IncludeLowercase: true,
		IncludeNumbers:   true,
		IncludeSymbols:   true,
	}
}

// Class returns the union of the classes the policy enables.
func (p Policy) Class() Class {
	var c Class
	if p.IncludeLowercase {
		c |= ClassLowercase
	}
	if p.IncludeUppercase {
		c |= ClassUppercase
	}
	if p.IncludeNumbers {
		c |= ClassDigits
	}
	if p.IncludeSymbols {
		c |= ClassSymbols
	}
	return c
}

// Validate checks the class flags and then Length.
func (p Policy) Validate() error {
	if p.Class().Empty() {
		return ErrInvalidPolicy
	}
	return validateLength(p.Length)
}

func validateLength(length int) error {
	if length < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	return nil
}
