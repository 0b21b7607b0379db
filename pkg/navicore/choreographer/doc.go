// Package choreographer implements the central serialising processor: it
// merges every registered actor's intent stream plus its own local source,
// applies debounce-distinct suppression, dispatches each admitted intent
// through the validation chain, mutates the state handler and transaction
// manager, and emits the resulting commands on a broadcast stream. Exactly
// one intent is in flight through the state handler, validation chain, and
// transaction manager at any instant — the pipeline's serial dispatch loop
// is what makes them safe to treat as single-threaded.
package choreographer
