package digest

import (
	"crypto/sha512"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm identifies a hash driver.
type Algorithm string

const (
	// AlgorithmSHA512 selects SHA-512.
	AlgorithmSHA512 Algorithm = "sha512"
	// AlgorithmSHA3 selects SHA3-512.
	AlgorithmSHA3 Algorithm = "sha3-512"
	// AlgorithmBLAKE2b selects unkeyed BLAKE2b-512.
	AlgorithmBLAKE2b Algorithm = "blake2b-512"
)

// Size is the digest length in bytes of every built-in driver.
const Size = 64

// Hasher is a fixed one-way hash rendered as hexadecimal.
//
// Implementations must be deterministic, must accept any input including
// an empty one, and must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Sum hashes message and returns the digest as lowercase hexadecimal,
	// two characters per byte.
	Sum(message []byte) string

	// Size returns the digest length in bytes.
	Size() int

	// Algorithm returns the name this hasher implements.
	Algorithm() Algorithm
}

// ──────────────────────────────────────────────────────────────────────────────
// Built-in drivers
// ──────────────────────────────────────────────────────────────────────────────

// SHA512Hasher hashes with SHA-512.  It is stateless; the zero value is
// ready to use.
type SHA512Hasher struct{}

// Sum returns the hex-encoded SHA-512 digest of message.
func (SHA512Hasher) Sum(message []byte) string {
	sum := sha512.Sum512(message)
	return hex.EncodeToString(sum[:])
}

// Size returns [Size].
func (SHA512Hasher) Size() int { return Size }

// Algorithm returns [AlgorithmSHA512].
func (SHA512Hasher) Algorithm() Algorithm { return AlgorithmSHA512 }

// SHA3Hasher hashes with SHA3-512 (FIPS 202).
type SHA3Hasher struct{}

// Sum returns the hex-encoded SHA3-512 digest of message.
func (SHA3Hasher) Sum(message []byte) string {
	sum := sha3.Sum512(message)
	return hex.EncodeToString(sum[:])
}

// Size returns [Size].
func (SHA3Hasher) Size() int { return Size }

// Algorithm returns [AlgorithmSHA3].
func (SHA3Hasher) Algorithm() Algorithm { return AlgorithmSHA3 }

// BLAKE2bHasher hashes with unkeyed BLAKE2b-512 (RFC 7693).
type BLAKE2bHasher struct{}

// Sum returns the hex-encoded BLAKE2b-512 digest of message.
func (BLAKE2bHasher) Sum(message []byte) string {
	sum := blake2b.Sum512(message)
	return hex.EncodeToString(sum[:])
}

// Size returns [Size].
func (BLAKE2bHasher) Size() int { return Size }

// Algorithm returns [AlgorithmBLAKE2b].
func (BLAKE2bHasher) Algorithm() Algorithm { return AlgorithmBLAKE2b }
