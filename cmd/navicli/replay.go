package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/navicore/pkg/navicore/actor"
	"github.com/BrandonKowalski/navicore/pkg/navicore/choreographer"
	"github.com/BrandonKowalski/navicore/pkg/navicore/command"
	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
	"github.com/BrandonKowalski/navicore/pkg/navicore/validate"
)

// scriptActor is the actor.Source a replay drives: the script player is
// its only writer.
type scriptActor struct {
	ch chan intent.Intent
}

func newScriptActor() *scriptActor {
	return &scriptActor{ch: make(chan intent.Intent, 8)}
}

func (a *scriptActor) Name() string                   { return "navicli:replay" }
func (a *scriptActor) Outbound() <-chan intent.Intent { return a.ch }

// demoGraph is the fixed test graph replay drives scripts against: a root
// menu with settings, login and library screens, enough to exercise every step
// kind the script format supports.
func demoGraph() (*graph.Graph, error) {
	root := &graph.Node{RouteKey: graph.RouteKey{Kind: "root"}, MenuChildren: []*graph.Node{
		{RouteKey: graph.RouteKey{Kind: "settings"}},
		{RouteKey: graph.RouteKey{Kind: "login"}},
		{RouteKey: graph.RouteKey{Kind: "library"}},
	}}
	return graph.New(root)
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "replay <script.toml>",
		Short: "Drive a choreographer with a scripted sequence of intents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := loadScriptFile(args[0])
			if err != nil {
				return err
			}

			g, err := demoGraph()
			if err != nil {
				return err
			}

			actorSrc := newScriptActor()
			chain := validate.NewChain()
			c := choreographer.New(g, chain, []actor.Source{actorSrc}, choreographer.Options{})

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			commands := c.Subscribe()
			c.Initialize(ctx)
			defer c.Shutdown()

			done := make(chan struct{})
			go func() {
				defer close(done)
				for {
					select {
					case cmd, ok := <-commands:
						if !ok {
							return
						}
						fmt.Println(describeCommand(cmd))
					case <-ctx.Done():
						return
					}
				}
			}()

			start := time.Now()
			for _, step := range script.Step {
				target := start.Add(step.delay())
				if wait := time.Until(target); wait > 0 {
					time.Sleep(wait)
				}
				i, err := step.toIntent()
				if err != nil {
					return err
				}
				actorSrc.ch <- i
			}

			time.Sleep(200 * time.Millisecond) // let the last step's command settle
			cancel()
			<-done
			return nil
		},
	})
}

func describeCommand(c command.Command) string {
	switch v := c.(type) {
	case command.NavigateTo:
		return fmt.Sprintf("NavigateTo(%s)", v.Route.Key)
	case command.Back:
		return "Back"
	case command.PopUpTo:
		return fmt.Sprintf("PopUpTo(%s)", v.Route)
	case command.ClearBackStack:
		return "ClearBackStack"
	case command.Dialog:
		return fmt.Sprintf("Dialog(%s)", v.Overlay.Title)
	case command.DismissDialog:
		return fmt.Sprintf("DismissDialog(%s)", v.ID)
	default:
		return fmt.Sprintf("%v", c)
	}
}
