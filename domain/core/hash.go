package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// Domain-specific hash types
type (
	// RowHash identifies a dataset row by its cell contents, used for
	// exact duplicate-row detection.
	RowHash Hash
	// Fingerprint identifies the full content of a profiling report.
	Fingerprint Hash
)

func NewRowHash(data []byte) RowHash         { return RowHash(NewHash(data)) }
func NewFingerprint(data []byte) Fingerprint { return Fingerprint(NewHash(data)) }

func (h RowHash) String() string     { return Hash(h).String() }
func (h Fingerprint) String() string { return Hash(h).String() }
