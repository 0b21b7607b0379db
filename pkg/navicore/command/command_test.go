package command_test

import (
	"testing"

	"github.com/BrandonKowalski/navicore/pkg/navicore/backstack"
	"github.com/BrandonKowalski/navicore/pkg/navicore/command"
	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
)

func TestFromIntent_MapsEachVariant(t *testing.T) {
	route := graph.Route{Key: graph.RouteKey{Kind: "settings"}}
	opts := backstack.Options{AddToBackStack: true}
	dismissID := "dlg-1"

	tests := []struct {
		name string
		in   intent.Intent
		want command.Kind
	}{
		{"NavigateTo", intent.NewNavigateTo(intent.SenderUser, intent.PriorityUserDefault, route, opts), command.KindNavigateTo},
		{"Back", intent.NewBack(intent.SenderUser, intent.PriorityUserDefault), command.KindBack},
		{"PopUpTo", intent.NewPopUpTo(intent.SenderUser, intent.PriorityUserDefault, route.Key, true), command.KindPopUpTo},
		{"ClearBackStack", intent.NewClearBackStack(intent.SenderUser, intent.PriorityUserDefault), command.KindClearBackStack},
		{"DisplayDialog", intent.NewDisplayDialog(intent.SenderSystem, intent.PrioritySystemDefault, intent.Overlay{Title: "t"}, &dismissID), command.KindDialog},
		{"DismissOverlay", intent.NewDismissOverlay(intent.SenderUser, intent.PriorityUserDefault, "dlg-1"), command.KindDismissDialog},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := command.FromIntent(tc.in)
			if got.Kind() != tc.want {
				t.Fatalf("Kind() = %v, want %v", got.Kind(), tc.want)
			}
		})
	}
}

func TestFromIntent_NavigateToCarriesRouteAndOptions(t *testing.T) {
	route := graph.Route{Key: graph.RouteKey{Kind: "settings"}, Params: 42}
	opts := backstack.Options{SingleTop: true, AddToBackStack: true}
	i := intent.NewNavigateTo(intent.SenderUser, intent.PriorityUserDefault, route, opts)

	got := command.FromIntent(i).(command.NavigateTo)
	if got.Route.Key != route.Key || got.Options != opts {
		t.Fatalf("got = %+v", got)
	}
}

func TestFromIntent_PanicsOnInteractionTimeout(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for InteractionTimeout")
		}
	}()
	command.FromIntent(intent.NewInteractionTimeout(intent.PrioritySystemDefault))
}

func TestFromIntent_PanicsOnCompleteNavTransaction(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for CompleteNavTransaction")
		}
	}()
	command.FromIntent(intent.NewCompleteNavTransaction(graph.RouteKey{Kind: "login"}))
}
