package internal

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewIntentID mints a correlation ID attached to every intent at creation —
// the UUID idiom jaskmoney uses for its own user-facing record IDs. The
// pipeline's own log lines do not include it.
func NewIntentID() string {
	return uuid.NewString()
}

// transactionIDAlphabet avoids characters that read ambiguously in logs
// (no 0/O/1/l), the same alphabet-restriction idea beads applies to its
// own nanoid-based bead IDs.
const transactionIDAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz"

// NewTransactionID mints a short, log-friendly identifier for a redirect
// chain transaction.
func NewTransactionID() string {
	id, err := gonanoid.Generate(transactionIDAlphabet, 10)
	if err != nil {
		// gonanoid only fails on a malformed alphabet or non-positive
		// length, both compile-time-fixed here; treat as unreachable.
		return uuid.NewString()[:10]
	}
	return id
}
