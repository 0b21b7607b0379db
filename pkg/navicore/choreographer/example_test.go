package choreographer_test

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/navicore/pkg/navicore/actor"
	"github.com/BrandonKowalski/navicore/pkg/navicore/backstack"
	"github.com/BrandonKowalski/navicore/pkg/navicore/choreographer"
	"github.com/BrandonKowalski/navicore/pkg/navicore/command"
	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
	"github.com/BrandonKowalski/navicore/pkg/navicore/validate"
)

// Example demonstrates a redirect chain: navigating to settings is
// intercepted by a login requirement, and the original navigation resumes
// once the login screen reports completion.
func Example() {
	root := &graph.Node{RouteKey: graph.RouteKey{Kind: "root"}, MenuChildren: []*graph.Node{
		{RouteKey: graph.RouteKey{Kind: "settings"}},
		{RouteKey: graph.RouteKey{Kind: "login"}},
	}}
	g, err := graph.New(root)
	if err != nil {
		fmt.Println("graph build failed:", err)
		return
	}

	settingsKey := graph.RouteKey{Kind: "settings"}
	loginKey := graph.RouteKey{Kind: "login"}

	requireLogin := validate.Func{FuncName: "require-login", FuncPriority: 1, FuncValidate: func(ctx context.Context, i intent.Intent, n *graph.Node) (validate.Result, error) {
		if n != nil && n.RouteKey == settingsKey {
			login := intent.NewNavigateTo(intent.SenderSystem, intent.PrioritySystemDefault, graph.Route{Key: loginKey}, backstack.Options{})
			return validate.Redirect(i, []intent.Intent{login}), nil
		}
		return validate.Valid(), nil
	}}

	user := newFakeSource("user")
	system := newFakeSource("system")
	chain := validate.NewChain(requireLogin)
	c := choreographer.New(g, chain, []actor.Source{user, system}, choreographer.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	commands := c.Subscribe()
	c.Initialize(ctx)
	defer c.Shutdown()

	user.ch <- intent.NewNavigateTo(intent.SenderUser, intent.PriorityUserDefault, graph.Route{Key: settingsKey}, backstack.Options{})

	redirected := (<-commands).(command.NavigateTo)
	fmt.Printf("navigated to %s\n", redirected.Route.Key.Kind)

	system.ch <- intent.NewCompleteNavTransaction(loginKey)

	resumed := (<-commands).(command.NavigateTo)
	fmt.Printf("navigated to %s\n", resumed.Route.Key.Kind)

	// Output:
	// navigated to login
	// navigated to settings
}
