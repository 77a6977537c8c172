package derive

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateKey returns a fresh random master key in the canonical
// 36-character UUIDv4 form.  Any non-empty string works as a key; this is
// only a convenient default for new installations.  Storing the key is up
// to the caller.
func GenerateKey() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("derive: failed to generate key: %w", err)
	}
	return id.String(), nil
}
