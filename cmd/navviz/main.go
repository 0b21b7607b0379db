// Command navviz is a minimal terminal visualizer for a navicore
// choreographer: it drives a small demo graph from keyboard input and
// renders the live back-stack depth, current route, and the last five
// emitted commands. It is a demo consumer of the command stream, not part
// of the library's public API.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/navicore/pkg/navicore/actor"
	"github.com/BrandonKowalski/navicore/pkg/navicore/backstack"
	"github.com/BrandonKowalski/navicore/pkg/navicore/choreographer"
	"github.com/BrandonKowalski/navicore/pkg/navicore/command"
	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/validate"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	routeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

func demoGraph() (*graph.Graph, error) {
	root := &graph.Node{RouteKey: graph.RouteKey{Kind: "root"}, Appearance: graph.Appearance{Title: "Home"}, MenuChildren: []*graph.Node{
		{RouteKey: graph.RouteKey{Kind: "settings"}, Appearance: graph.Appearance{Title: "Settings"}},
		{RouteKey: graph.RouteKey{Kind: "library"}, Appearance: graph.Appearance{Title: "Library"}},
	}}
	return graph.New(root)
}

// commandMsg wraps a command off the choreographer's stream as a
// bubbletea message, the channel-to-Cmd bridge the framework expects.
type commandMsg command.Command

func waitForCommand(ch <-chan command.Command) tea.Cmd {
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return commandMsg(c)
	}
}

type model struct {
	choreo   *choreographer.Choreographer
	nav      *actor.User
	commands <-chan command.Command
	history  []string
	cancel   context.CancelFunc
}

func newModel() (*model, error) {
	g, err := demoGraph()
	if err != nil {
		return nil, err
	}
	nav := actor.NewUser("navviz", 0)
	chain := validate.NewChain()
	c := choreographer.New(g, chain, []actor.Source{nav}, choreographer.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	commands := c.Subscribe()
	c.Initialize(ctx)

	return &model{choreo: c, nav: nav, commands: commands, cancel: cancel}, nil
}

func (m *model) Init() tea.Cmd {
	return waitForCommand(m.commands)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancel()
			return m, tea.Quit
		case "s":
			m.nav.Navigate(graph.Route{Key: graph.RouteKey{Kind: "settings"}}, backstack.Options{AddToBackStack: true})
		case "l":
			m.nav.Navigate(graph.Route{Key: graph.RouteKey{Kind: "library"}}, backstack.Options{AddToBackStack: true})
		case "backspace", "b":
			m.nav.Back()
		case "c":
			m.nav.ClearBackStack()
		}
		return m, nil
	case commandMsg:
		m.history = append([]string{describe(command.Command(msg))}, m.history...)
		if len(m.history) > 5 {
			m.history = m.history[:5]
		}
		return m, waitForCommand(m.commands)
	default:
		return m, nil
	}
}

func (m *model) View() string {
	current := m.choreo.Current()
	out := titleStyle.Render("navviz") + "\n\n"
	out += fmt.Sprintf("current route: %s\n", routeStyle.Render(string(current.RouteKey.Kind)))
	out += fmt.Sprintf("back-stack depth: %d\n\n", m.choreo.Depth())
	out += "last commands:\n"
	for _, h := range m.history {
		out += "  " + dimStyle.Render(h) + "\n"
	}
	out += helpStyle.Render("s settings · l library · b back · c clear · q quit")
	return out
}

func describe(c command.Command) string {
	switch v := c.(type) {
	case command.NavigateTo:
		return fmt.Sprintf("NavigateTo(%s)", v.Route.Key)
	case command.Back:
		return "Back"
	case command.ClearBackStack:
		return "ClearBackStack"
	case command.Dialog:
		return fmt.Sprintf("Dialog(%s)", v.Overlay.Title)
	default:
		return fmt.Sprintf("%v", c)
	}
}

func main() {
	m, err := newModel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
