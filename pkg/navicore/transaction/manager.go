package transaction

import (
	"sync"

	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
	"github.com/BrandonKowalski/navicore/pkg/navicore/internal"
	"github.com/BrandonKowalski/navicore/pkg/navicore/navierr"
)

// Transaction is a single redirect chain plus the original intent it
// precedes.
type Transaction struct {
	// ID is a short, log-friendly identifier minted by New. Neither this
	// package nor the choreographer writes it to any log line.
	ID string

	// Required is the ordered-by-descending-priority set of prefix
	// intents that must complete before Original runs.
	Required []intent.Intent

	// Original is the intent whose execution this transaction precedes.
	Original intent.Intent
}

// New builds a Transaction with a fresh correlation ID.
func New(required []intent.Intent, original intent.Intent) Transaction {
	return Transaction{ID: internal.NewTransactionID(), Required: required, Original: original}
}

// StepKind tags which variant Step carries.
type StepKind int

const (
	// StepContinue carries the next required prefix intent to dispatch.
	StepContinue StepKind = iota
	// StepBackToOriginal carries the original intent, now that every
	// prefix has been consumed.
	StepBackToOriginal
)

// Step is the result of Manager.Next.
type Step struct {
	kind   StepKind
	intent intent.Intent
}

func (s Step) Kind() StepKind        { return s.kind }
func (s Step) Intent() intent.Intent { return s.intent }

// Manager sequences at most one active redirect-chain transaction at a
// time. Its mutating methods are guarded by mu, enforcing "at most one
// active transaction" within the lock rather than relying on an external
// caller's own serialization.
type Manager struct {
	mu sync.Mutex

	txn       *Transaction
	iterIndex int
	current   intent.Intent
}

// NewManager constructs an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Apply installs t as the active transaction. It fails with
// navierr.ErrTransactionInProgress if a transaction is already active (has
// pending required intents) — the prior transaction is left untouched and
// wins.
func (m *Manager) Apply(t Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.activeLocked() {
		return navierr.New("transaction.apply", navierr.ErrTransactionInProgress)
	}

	m.txn = &t
	m.iterIndex = 0
	m.current = nil
	return nil
}

// Next advances the installed transaction by one step. If no transaction
// is installed it fails with navierr.ErrNoTransaction. If prefix intents
// remain, it returns StepContinue carrying the next one. Once the prefix
// is exhausted, it consumes the manager (clearing the installed
// transaction) and returns StepBackToOriginal carrying the original
// intent.
func (m *Manager) Next() (Step, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.txn == nil {
		return Step{}, navierr.New("transaction.next", navierr.ErrNoTransaction)
	}

	// A transaction installed with a nil Required backing slice but a
	// nonzero iterator position can only arise from a bug in this package
	// (Apply always resets iterIndex to 0) — treat it as the
	// specification's "inconsistent internal state" case rather than
	// indexing out of range.
	if m.txn.Required == nil && m.iterIndex != 0 {
		m.resetLocked()
		return Step{}, navierr.New("transaction.next", navierr.ErrInvalidState)
	}

	if m.iterIndex < len(m.txn.Required) {
		next := m.txn.Required[m.iterIndex]
		m.iterIndex++
		m.current = next
		return Step{kind: StepContinue, intent: next}, nil
	}

	original := m.txn.Original
	m.txn = nil
	m.iterIndex = 0
	m.current = original
	return Step{kind: StepBackToOriginal, intent: original}, nil
}

// Current returns the most recently stepped intent, or nil if Next has
// never been called since the last install/cancel.
func (m *Manager) Current() intent.Intent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Cancel resets the manager to its empty state, discarding any installed
// transaction.
func (m *Manager) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
}

func (m *Manager) resetLocked() {
	m.txn = nil
	m.iterIndex = 0
	m.current = nil
}

// Active reports whether a transaction is installed and has pending
// (not yet stepped-through) required intents.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeLocked()
}

func (m *Manager) activeLocked() bool {
	return m.txn != nil && m.iterIndex < len(m.txn.Required)
}
