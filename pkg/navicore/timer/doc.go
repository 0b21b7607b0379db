// Package timer implements the inactivity-timer actor: an independent task
// that watches the current node and a lock-reason observable and, absent
// interaction or a held lock, publishes an InteractionTimeout intent after
// the current node's configured screen timeout elapses. It owns exactly one
// pending timer at a time, restarted on every merged pulse.
package timer
