package derive

import (
	"fmt"

	"github.com/hasbyte1/go-derive-secrets/digest"
)

// Engine derives PINs and passwords.
//
// # Thread safety
//
// Engine is immutable after construction and safe for concurrent use.
// Each call works on its own seed and accumulator.
type Engine struct {
	hasher    digest.Hasher
	maxRounds int
}

// defaultEngine backs the package-level [PIN] and [Password].
var defaultEngine = &Engine{hasher: digest.SHA512Hasher{}, maxRounds: DefaultMaxRounds}

// New constructs an Engine.  Without options it hashes with SHA-512 and
// stops after [DefaultMaxRounds] rounds.
func New(opts ...Option) (*Engine, error) {
	o := engineOptions{maxRounds: DefaultMaxRounds}
	for _, opt := range opts {
		opt(&o)
	}
	h, err := o.resolve()
	if err != nil {
		return nil, err
	}
	return &Engine{hasher: h, maxRounds: o.maxRounds}, nil
}

// Algorithm returns the name of the engine's hash driver.
func (e *Engine) Algorithm() digest.Algorithm { return e.hasher.Algorithm() }

// MaxRounds returns the per-call round cap.
func (e *Engine) MaxRounds() int { return e.maxRounds }

// PIN derives a decimal string of exactly length digits from key and
// context.  The seed is context followed by key.
func (e *Engine) PIN(key, context string, length int) (string, error) {
	if err := validateLength(length); err != nil {
		return "", err
	}
	seed := make([]byte, 0, len(context)+len(key))
	seed = append(seed, context...)
	seed = append(seed, key...)
	return e.expand(seed, key, length, ClassDigits)
}

// Password derives a string of exactly length characters drawn from the
// classes policy enables.  The seed is key, context, key.
//
// An empty class fails with [ErrInvalidPolicy] before any hashing.
// policy.Length is not consulted.
func (e *Engine) Password(key, context string, length int, policy Policy) (string, error) {
	class := policy.Class()
	if class.Empty() {
		return "", ErrInvalidPolicy
	}
	if err := validateLength(length); err != nil {
		return "", err
	}
	seed := make([]byte, 0, len(context)+2*len(key))
	seed = append(seed, key...)
	seed = append(seed, context...)
	seed = append(seed, key...)
	return e.expand(seed, key, length, class)
}

// expand runs hash-then-filter rounds, extending seed by key after each,
// until class has contributed length characters.
func (e *Engine) expand(seed []byte, key string, length int, class Class) (string, error) {
	acc := make([]byte, 0, length+digest.Size)
	for round := 1; round <= e.maxRounds; round++ {
		candidate, err := digest.Round(e.hasher, seed)
		if err != nil {
			return "", err
		}
		n := len(acc)
		acc = class.Filter(acc, candidate)
		if len(acc) >= length {
			return string(acc[:length]), nil
		}
		// An empty key leaves the seed unchanged, so a barren round repeats forever.
		if key == "" && len(acc) == n {
			return "", fmt.Errorf("%w: empty key yields no %s characters (round %d)",
				ErrMaxIterationsExceeded, class, round)
		}
		seed = append(seed, key...)
	}
	return "", fmt.Errorf("%w: %d rounds produced %d of %d %s characters",
		ErrMaxIterationsExceeded, e.maxRounds, len(acc), length, class)
}

// PIN derives a PIN with the default SHA-512 engine.
func PIN(key, context string, length int) (string, error) {
	return defaultEngine.PIN(key, context, length)
}

// Password derives a password with the default SHA-512 engine.
func Password(key, context string, length int, policy Policy) (string, error) {
	return defaultEngine.Password(key, context, length, policy)
}
