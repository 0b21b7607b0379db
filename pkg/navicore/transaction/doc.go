// Package transaction implements the redirect-chain transaction manager:
// at most one active transaction, sequencing a chain of prefix intents
// followed by the original intent that triggered the redirect. Its
// mutating methods are guarded by a single mutex — the concurrency model's
// prescribed way of enforcing "at most one active transaction" — rather
// than relying on the choreographer's own serialization, since the manager
// is a reusable component in its own right.
package transaction
