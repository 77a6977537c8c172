package derive

import "errors"

// Sentinel errors returned by derivation operations.
//
// Use [errors.Is] for comparisons:
//
//	pw, err := derive.Password(key, ctx, 16, policy)
//	if errors.Is(err, derive.ErrInvalidPolicy) {
//	    // enable at least one character class and retry
//	}
//
// None of these are retried internally: the same inputs always reproduce
// the same failure.
var (
	// ErrInvalidPolicy is returned when a policy selects no character class.
	ErrInvalidPolicy = errors.New("derive: policy selects no character class")

	// ErrInvalidLength is returned when the requested length is zero or
	// negative.
	ErrInvalidLength = errors.New("derive: length must be at least 1")

	// ErrMaxIterationsExceeded is returned when the round cap is reached
	// before enough qualifying characters were collected.
	ErrMaxIterationsExceeded = errors.New("derive: maximum rounds exceeded")

	// ErrInvalidOption is returned by [New] when an option value is out of
	// range or cannot be resolved.
	ErrInvalidOption = errors.New("derive: invalid option value")
)
