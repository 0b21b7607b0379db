package choreographer

import (
	"context"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/BrandonKowalski/navicore/pkg/navicore/actor"
	"github.com/BrandonKowalski/navicore/pkg/navicore/command"
	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
	"github.com/BrandonKowalski/navicore/pkg/navicore/localize"
	"github.com/BrandonKowalski/navicore/pkg/navicore/state"
	"github.com/BrandonKowalski/navicore/pkg/navicore/timer"
	"github.com/BrandonKowalski/navicore/pkg/navicore/transaction"
	"github.com/BrandonKowalski/navicore/pkg/navicore/validate"
)

// Choreographer is the central serialising processor. Construct one with
// New, wire in an optional timer actor and message catalog, then call
// Initialize to start its pipeline.
type Choreographer struct {
	graph *graph.Graph
	state *state.Handler
	chain *validate.Chain
	txm   *transaction.Manager

	sources []actor.Source
	local   chan intent.Intent

	cmds *broadcast
	cfg  Options

	timerActor *timer.Actor
	catalog    *localize.Catalog
	locales    []language.Tag

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
}

// New constructs a Choreographer over g, validating NavigateTo/Back/PopUpTo/
// ClearBackStack/InteractionTimeout/DisplayDialog/DismissOverlay intents
// against chain. sources is the fixed set of actors registered for this
// choreographer's lifetime, per the specification's "actors are registered
// at construction" contract.
func New(g *graph.Graph, chain *validate.Chain, sources []actor.Source, opts Options) *Choreographer {
	opts = opts.withDefaults()
	return &Choreographer{
		graph:   g,
		state:   state.New(g),
		chain:   chain,
		txm:     transaction.NewManager(),
		sources: sources,
		local:   make(chan intent.Intent, opts.LocalSourceCapacity),
		cmds:    newBroadcast(opts.CommandBufferCapacity),
		cfg:     opts,
	}
}

// EnableInactivityTimer constructs the inactivity-timer actor over this
// Choreographer's own current-node observable, so the timer's per-screen
// lookup (graph.Node.Timeout) and its "restart on navigation" pulse both
// see the same node the back-stack handler actually maintains, and
// returns it so the caller can Acquire/Release lock reasons around
// long-running overlays. defaultTimeout substitutes for nodes that leave
// ScreenTimeout unset. Every admitted user-sent intent notifies the timer
// of an interaction pulse, and its outbound stream is merged alongside
// the registered actors once Initialize runs. Call before Initialize.
func (c *Choreographer) EnableInactivityTimer(defaultTimeout time.Duration) *timer.Actor {
	c.timerActor = timer.New(c.state.CurrentCell(), defaultTimeout)
	return c.timerActor
}

// SetCatalog wires in a message catalog used to localize synthesized
// error-dialog text, tried in order of locales. Call before Initialize.
func (c *Choreographer) SetCatalog(cat *localize.Catalog, locales ...language.Tag) {
	c.catalog = cat
	c.locales = locales
}

// Current returns the node currently considered displayed.
func (c *Choreographer) Current() *graph.Node {
	return c.state.Current()
}

// Depth returns the combined size of both back-stack tiers, for
// diagnostics and the terminal visualizer.
func (c *Choreographer) Depth() int {
	return c.state.Depth()
}

// Watch subscribes to every change of the current node.
func (c *Choreographer) Watch(ctx context.Context) <-chan *graph.Node {
	return c.state.Watch(ctx)
}

// Subscribe registers a new command subscriber.
func (c *Choreographer) Subscribe() <-chan command.Command {
	return c.cmds.subscribe()
}

// Graph returns the graph this choreographer was constructed over.
func (c *Choreographer) Graph() *graph.Graph {
	return c.graph
}

// Initialize starts the pipeline under ctx. It is idempotent: a second
// call while already running is a no-op and preserves the running task,
// per the specification's start-up contract.
func (c *Choreographer) Initialize(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.started = true
	go c.run(runCtx)
}

// Shutdown cancels the running pipeline, in turn cancelling every producer
// actor and the inactivity-timer actor that observes ctx. A Choreographer
// that was never Initialized does nothing.
func (c *Choreographer) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
}
