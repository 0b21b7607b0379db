package actor_test

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/navicore/pkg/navicore/actor"
	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
)

func TestSystem_DisplayDialogAttachesSenderAndPriority(t *testing.T) {
	s := actor.NewSystem("watchdog", intent.PrioritySystemHigh)
	defer s.Close()

	overlay := intent.Overlay{Title: "Error", Message: "boom", Severity: intent.SeverityError}
	go s.DisplayDialog(overlay, nil)

	select {
	case got := <-s.Outbound():
		dialog, ok := got.(intent.DisplayDialog)
		if !ok {
			t.Fatalf("got %T, want intent.DisplayDialog", got)
		}
		if dialog.IntentSender() != intent.SenderSystem || dialog.IntentPriority() != intent.PrioritySystemHigh {
			t.Fatalf("sender/priority = %v/%v", dialog.IntentSender(), dialog.IntentPriority())
		}
		if dialog.Overlay != overlay {
			t.Fatalf("overlay = %+v, want %+v", dialog.Overlay, overlay)
		}
	case <-time.After(time.Second):
		t.Fatalf("no intent received")
	}
}

func TestSystem_CompleteNavTransactionIsAlwaysSystemPriorityZero(t *testing.T) {
	s := actor.NewSystem("redirect-runner", intent.PrioritySystemHigh)
	defer s.Close()

	go s.CompleteNavTransaction(graph.RouteKey{Kind: "login"})

	select {
	case got := <-s.Outbound():
		complete, ok := got.(intent.CompleteNavTransaction)
		if !ok {
			t.Fatalf("got %T, want intent.CompleteNavTransaction", got)
		}
		if complete.IntentPriority() != 0 {
			t.Fatalf("priority = %v, want 0 regardless of actor priority", complete.IntentPriority())
		}
	case <-time.After(time.Second):
		t.Fatalf("no intent received")
	}
}
