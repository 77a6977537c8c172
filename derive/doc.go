// Package derive reproducibly computes passwords and PINs from a master
// key, so that no derived credential ever needs to be stored.
//
// # Algorithm
//
// Each derivation hashes a seed with a 512-bit hash (see package digest),
// keeps the printable ASCII bytes of the digest, and collects the ones that
// belong to the active character class.  While fewer than the requested
// number of characters have been collected, the master key is appended to
// the seed and the round repeats.  The first length characters are returned.
//
//   - [Engine.PIN] seeds with context+key and keeps only digits.
//   - [Engine.Password] seeds with key+context+key and keeps the characters
//     selected by a [Policy].
//
// The two seed orders differ on purpose.  Existing secrets depend on them,
// so they must not be unified without a migration.
//
// # Quick start
//
//	key, _ := derive.GenerateKey()
//	ctx := derive.Context("github.com", "alice@example.com")
//
//	pw, err := derive.Password(key, ctx, 20, derive.DefaultPolicy())
//	pin, err := derive.PIN(key, ctx, 6)
//
// # Guarantees
//
//   - Same key, context, length and class: byte-identical output, always.
//   - The result has exactly the requested length and only class members.
//   - Nothing is cached, persisted or logged.  Every call is independent and
//     an [Engine] is safe for concurrent use.
//
// This is not a password-based key-derivation function: there is no work
// factor and no random salt.  The scheme favours reproducibility by hand
// over resistance to offline guessing of a weak master key.
package derive
