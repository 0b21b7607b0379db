package validate

import "github.com/BrandonKowalski/navicore/pkg/navicore/intent"

// ResultKind tags which of the four validation outcomes a Result carries.
type ResultKind int

const (
	KindValid ResultKind = iota
	KindIgnore
	KindInvalid
	KindRedirect
)

func (k ResultKind) String() string {
	switch k {
	case KindValid:
		return "Valid"
	case KindIgnore:
		return "Ignore"
	case KindInvalid:
		return "Invalid"
	case KindRedirect:
		return "Redirect"
	default:
		return "Unknown"
	}
}

// Result is the outcome of validating one intent against the current node.
type Result struct {
	kind     ResultKind
	message  string
	original intent.Intent
	chain    []intent.Intent
}

// Kind reports which outcome this Result represents.
func (r Result) Kind() ResultKind { return r.kind }

// Message returns the Invalid outcome's human-readable reason. Empty for
// every other kind.
func (r Result) Message() string { return r.message }

// Original returns the Redirect outcome's original intent (the one whose
// execution the redirect chain precedes). Nil for every other kind.
func (r Result) Original() intent.Intent { return r.original }

// Chain returns the Redirect outcome's required prefix intents, ordered by
// descending priority. Nil for every other kind.
func (r Result) Chain() []intent.Intent { return r.chain }

// Valid reports the intent may proceed unchanged.
func Valid() Result { return Result{kind: KindValid} }

// Ignore reports the intent should be dropped silently.
func Ignore() Result { return Result{kind: KindIgnore} }

// Invalid reports the intent is rejected with a human-readable message.
func Invalid(message string) Result { return Result{kind: KindInvalid, message: message} }

// Redirect reports original must be preceded by chain, an ordered set of
// prefix intents.
func Redirect(original intent.Intent, chain []intent.Intent) Result {
	return Result{kind: KindRedirect, original: original, chain: chain}
}
