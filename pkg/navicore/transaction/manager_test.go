package transaction_test

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/navicore/pkg/navicore/backstack"
	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
	"github.com/BrandonKowalski/navicore/pkg/navicore/navierr"
	"github.com/BrandonKowalski/navicore/pkg/navicore/transaction"
)

func TestNext_NoTransactionFails(t *testing.T) {
	m := transaction.NewManager()
	_, err := m.Next()
	if !navierr.IsNoTransaction(err) {
		t.Fatalf("err = %v, want ErrNoTransaction", err)
	}
}

func TestApply_StepsThroughPrefixThenOriginal(t *testing.T) {
	login := intent.NewNavigateTo(intent.SenderSystem, intent.PrioritySystemHigh, graph.Route{Key: graph.RouteKey{Kind: "login"}}, backstack.Options{})
	original := intent.NewNavigateTo(intent.SenderUser, intent.PriorityUserDefault, graph.Route{Key: graph.RouteKey{Kind: "settings"}}, backstack.Options{})

	m := transaction.NewManager()
	if err := m.Apply(transaction.New([]intent.Intent{login}, original)); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	step, err := m.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if step.Kind() != transaction.StepContinue || step.Intent().IntentID() != login.IntentID() {
		t.Fatalf("first step = %+v, want Continue(login)", step)
	}
	if m.Current().IntentID() != login.IntentID() {
		t.Fatalf("Current() = %v, want login", m.Current())
	}

	step, err = m.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if step.Kind() != transaction.StepBackToOriginal || step.Intent().IntentID() != original.IntentID() {
		t.Fatalf("second step = %+v, want BackToOriginal(original)", step)
	}
	if m.Current().IntentID() != original.IntentID() {
		t.Fatalf("Current() = %v, want original", m.Current())
	}

	// The manager consumed itself: a third Next fails.
	if _, err := m.Next(); !navierr.IsNoTransaction(err) {
		t.Fatalf("err = %v, want ErrNoTransaction after exhaustion", err)
	}
}

func TestApply_EmptyPrefixGoesStraightToOriginal(t *testing.T) {
	original := intent.NewBack(intent.SenderUser, intent.PriorityUserDefault)
	m := transaction.NewManager()
	if err := m.Apply(transaction.New(nil, original)); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	step, err := m.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if step.Kind() != transaction.StepBackToOriginal || step.Intent().IntentID() != original.IntentID() {
		t.Fatalf("step = %+v, want BackToOriginal(original)", step)
	}
}

func TestApply_FailsWhileActive(t *testing.T) {
	login := intent.NewBack(intent.SenderSystem, intent.PrioritySystemDefault)
	original := intent.NewBack(intent.SenderUser, intent.PriorityUserDefault)

	m := transaction.NewManager()
	if err := m.Apply(transaction.New([]intent.Intent{login}, original)); err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}

	other := intent.NewBack(intent.SenderUser, intent.PriorityUserDefault)
	err := m.Apply(transaction.New(nil, other))
	if !navierr.IsTransactionInProgress(err) {
		t.Fatalf("err = %v, want ErrTransactionInProgress", err)
	}
}

func TestApply_SucceedsOnceActiveExhausted(t *testing.T) {
	login := intent.NewBack(intent.SenderSystem, intent.PrioritySystemDefault)
	original := intent.NewBack(intent.SenderUser, intent.PriorityUserDefault)

	m := transaction.NewManager()
	if err := m.Apply(transaction.New([]intent.Intent{login}, original)); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if _, err := m.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if m.Active() {
		t.Fatalf("Active() = true, want false once the only prefix intent has been stepped")
	}

	other := intent.NewBack(intent.SenderUser, intent.PriorityUserDefault)
	if err := m.Apply(transaction.New(nil, other)); err != nil {
		t.Fatalf("Apply() error = %v, want nil once the prior transaction is no longer active", err)
	}
}

func TestCancel_ResetsManager(t *testing.T) {
	login := intent.NewBack(intent.SenderSystem, intent.PrioritySystemDefault)
	original := intent.NewBack(intent.SenderUser, intent.PriorityUserDefault)

	m := transaction.NewManager()
	if err := m.Apply(transaction.New([]intent.Intent{login}, original)); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	m.Cancel()

	if m.Active() {
		t.Fatalf("Active() = true after Cancel()")
	}
	if m.Current() != nil {
		t.Fatalf("Current() = %v after Cancel(), want nil", m.Current())
	}
	if _, err := m.Next(); !navierr.IsNoTransaction(err) {
		t.Fatalf("err = %v after Cancel(), want ErrNoTransaction", err)
	}
}

func TestActive_FalseUntilApplied(t *testing.T) {
	m := transaction.NewManager()
	if m.Active() {
		t.Fatalf("Active() = true on a fresh Manager")
	}
}

func TestIs_WrapsNavierrSentinels(t *testing.T) {
	m := transaction.NewManager()
	_, err := m.Next()
	if !errors.Is(err, navierr.ErrNoTransaction) {
		t.Fatalf("errors.Is(err, ErrNoTransaction) = false")
	}
}
