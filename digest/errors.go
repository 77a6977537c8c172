package digest

import "errors"

// Sentinel errors returned by digest operations.
//
// Use [errors.Is] for comparisons:
//
//	text, err := digest.Decode(hexDigest)
//	if errors.Is(err, digest.ErrInvalidDigest) {
//	    // not a hex string
//	}
var (
	// ErrInvalidDigest is returned when a digest string is not an even-length
	// hexadecimal string.
	ErrInvalidDigest = errors.New("digest: invalid hexadecimal digest")

	// ErrDriverNotFound is returned by [Manager.Driver] or indirectly by
	// [Manager.Sum] when the requested algorithm has not been registered.
	ErrDriverNotFound = errors.New("digest: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] when the
	// supplied algorithm name is an empty string.
	ErrEmptyDriverName = errors.New("digest: driver name must not be empty")

	// ErrNilHasher is returned by [Manager.RegisterDriver] when a nil [Hasher]
	// is supplied.
	ErrNilHasher = errors.New("digest: hasher must not be nil")
)
