package derive

import (
	"fmt"

	"github.com/hasbyte1/go-derive-secrets/digest"
)

// DefaultMaxRounds caps the hash-then-filter rounds of a single derivation.
//
// A round contributes about 2.4 digits or 23 all-class characters on
// average, so the cap leaves room for PINs of several thousand digits.
// The seed grows by one key per round, which keeps the worst case bounded
// to a few hundred megabytes hashed.
const DefaultMaxRounds = 4096

// Option configures an [Engine] at construction time.
type Option func(*engineOptions)

type engineOptions struct {
	hasher    digest.Hasher
	manager   *digest.Manager
	algorithm digest.Algorithm
	maxRounds int
}

// WithHasher sets the hash driver.  It takes precedence over
// [WithAlgorithm] and [WithManager].
//
// Every derived secret depends on the hasher: changing it is a migration.
func WithHasher(h digest.Hasher) Option {
	return func(o *engineOptions) { o.hasher = h }
}

// WithAlgorithm selects a hash driver by name.  The name is resolved
// through the manager given to [WithManager], or through
// [digest.NewDefaultManager] when there is none.
func WithAlgorithm(a digest.Algorithm) Option {
	return func(o *engineOptions) { o.algorithm = a }
}

// WithManager resolves the hash driver through m.  Without [WithAlgorithm]
// the engine uses m's default driver, read once at construction.
func WithManager(m *digest.Manager) Option {
	return func(o *engineOptions) { o.manager = m }
}

// WithMaxRounds overrides [DefaultMaxRounds].  n must be at least 1.
func WithMaxRounds(n int) Option {
	return func(o *engineOptions) { o.maxRounds = n }
}

func (o engineOptions) resolve() (digest.Hasher, error) {
	if o.maxRounds < 1 {
		return nil, fmt.Errorf("%w: max rounds must be >= 1, got %d", ErrInvalidOption, o.maxRounds)
	}
	if o.hasher != nil {
		return o.hasher, nil
	}
	if o.manager == nil && o.algorithm == "" {
		return digest.SHA512Hasher{}, nil
	}
	m := o.manager
	if m == nil {
		m = digest.NewDefaultManager()
	}
	var (
		h   digest.Hasher
		err error
	)
	if o.algorithm != "" {
		h, err = m.Driver(o.algorithm)
	} else {
		h, err = m.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	return h, nil
}
