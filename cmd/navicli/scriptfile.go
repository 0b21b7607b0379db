package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/navicore/pkg/navicore/backstack"
	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
)

// scriptFile is a scripted sequence of intents, each timestamped relative
// to the start of the replay rather than to each other, matching how the
// library's own black-box scenarios in spec §8 are phrased ("at t=50ms").
type scriptFile struct {
	Step []scriptStep `toml:"step"`
}

type scriptStep struct {
	AfterMS   int64  `toml:"after_ms"`
	Kind      string `toml:"kind"`
	Route     string `toml:"route"`
	Inclusive bool   `toml:"inclusive"`
	DialogID  string `toml:"dialog_id"`
	Title     string `toml:"title"`
	Message   string `toml:"message"`
}

func loadScriptFile(path string) (*scriptFile, error) {
	var sf scriptFile
	if _, err := toml.DecodeFile(path, &sf); err != nil {
		return nil, fmt.Errorf("navicli: decode %s: %w", path, err)
	}
	return &sf, nil
}

// toIntent converts one scripted step into the intent it names. Unknown
// kinds are reported rather than silently skipped, since a typo in a
// replay script should fail loudly.
func (s scriptStep) toIntent() (intent.Intent, error) {
	switch s.Kind {
	case "navigate_to":
		return intent.NewNavigateTo(intent.SenderUser, intent.PriorityUserDefault,
			graph.Route{Key: graph.RouteKey{Kind: graph.RouteKind(s.Route)}}, backstack.Options{AddToBackStack: true}), nil
	case "back":
		return intent.NewBack(intent.SenderUser, intent.PriorityUserDefault), nil
	case "pop_up_to":
		return intent.NewPopUpTo(intent.SenderUser, intent.PriorityUserDefault, graph.RouteKey{Kind: graph.RouteKind(s.Route)}, s.Inclusive), nil
	case "clear_back_stack":
		return intent.NewClearBackStack(intent.SenderUser, intent.PriorityUserDefault), nil
	case "display_dialog":
		return intent.NewDisplayDialog(intent.SenderSystem, intent.PrioritySystemDefault, intent.Overlay{Title: s.Title, Message: s.Message}, nil), nil
	case "dismiss_overlay":
		return intent.NewDismissOverlay(intent.SenderUser, intent.PriorityUserDefault, s.DialogID), nil
	case "complete_nav_transaction":
		return intent.NewCompleteNavTransaction(graph.RouteKey{Kind: graph.RouteKind(s.Route)}), nil
	default:
		return nil, fmt.Errorf("navicli: unknown step kind %q", s.Kind)
	}
}

func (s scriptStep) delay() time.Duration {
	return time.Duration(s.AfterMS) * time.Millisecond
}
