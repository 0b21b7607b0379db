package actor

import "github.com/BrandonKowalski/navicore/pkg/navicore/intent"

// Source is a named intent producer. The choreographer merges every
// registered Source's Outbound stream into its single serial input.
type Source interface {
	// Name identifies the source in logs.
	Name() string

	// Outbound is the source's stream of intents. Implementations close it
	// once they have nothing further to produce (commonly: once their
	// driving context is done).
	Outbound() <-chan intent.Intent
}
