// Package digest provides the hash-then-filter primitive used by the
// derive package: a fixed 512-bit cryptographic hash rendered as lowercase
// hexadecimal, and a decoder that reduces such a digest to its printable
// ASCII bytes.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface.  Three drivers ship with
// this package:
//
//   - [SHA512Hasher]: SHA-512, the default
//   - [SHA3Hasher]: SHA3-512
//   - [BLAKE2bHasher]: unkeyed BLAKE2b-512
//
// All three produce 128 hexadecimal characters.  The [Manager] is a named
// driver registry; register [Hasher] implementations under an [Algorithm]
// name, designate a default, and resolve drivers by name at configuration
// time.
//
// # Decoding
//
// [Decode] walks a hex digest one byte (two hex characters) at a time and
// keeps only bytes v with 32 < v < 127, i.e. printable ASCII without space
// and DEL.  Everything else is dropped, so roughly a third of a digest
// survives.  [Round] chains the two steps:
//
//	text, err := digest.Round(digest.SHA512Hasher{}, []byte("message"))
//
// # Migration
//
// Switching the hasher changes every value derived from it.  Pick one
// [Algorithm] per deployment and treat a change as an explicit migration.
package digest
