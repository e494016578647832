// ABOUTME: Feed controller orchestrating status, search, and card rendering for one viewer session
// ABOUTME: Tracks the last query and active navigation tab, and discards results from superseded requests

package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/harper/headlines/internal/card"
	"github.com/harper/headlines/internal/newsapi"
	"github.com/harper/headlines/internal/status"
)

// User-facing status texts
const (
	MsgBlankInput = "Please enter a keyword to search."
	MsgLoading    = "Loading news..."
	MsgNoResults  = "No results found. Try different keywords."
	msgFailed     = "Failed to load news. %s. Ensure your site is served over HTTPS and the API key is valid."
)

// Searcher runs one topic query.
type Searcher interface {
	Search(ctx context.Context, topic string) (*newsapi.Result, error)
}

// Container holds the rendered cards. It is cleared wholesale before each render.
type Container interface {
	Clear()
	Append(views ...card.View)
}

// Phase is where the controller is in the request cycle.
type Phase int

const (
	Idle Phase = iota
	Loading
	Rendered
	EmptyResult
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Rendered:
		return "rendered"
	case EmptyResult:
		return "empty"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// State is the per-session query state.
type State struct {
	LastQuery string
	ActiveNav *NavItem
}

// Ticket identifies one in-flight request.
type Ticket struct {
	ID    string
	Topic string
	gen   uint64
}

// Outcome reports how a request ended.
type Outcome struct {
	Phase Phase
	Cards int
	Err   error
	Stale bool // a newer request started before this one finished
}

// Options wires the controller's collaborators.
type Options struct {
	Searcher  Searcher
	Status    *status.Presenter
	Container Container
	Renderer  *card.Renderer
	Template  card.Template
	Nav       *NavList
	SeedTopic string
	Logger    *log.Logger
}

// Controller runs the query/render cycle.
type Controller struct {
	searcher  Searcher
	status    *status.Presenter
	container Container
	renderer  *card.Renderer
	tmpl      card.Template
	nav       *NavList
	seed      string
	logger    *log.Logger

	mu    sync.Mutex
	state State
	phase Phase
	gen   uint64
}

// New creates a Controller. Missing optional collaborators get defaults.
func New(opts Options) *Controller {
	c := &Controller{
		searcher:  opts.Searcher,
		status:    opts.Status,
		container: opts.Container,
		renderer:  opts.Renderer,
		tmpl:      opts.Template,
		nav:       opts.Nav,
		seed:      strings.TrimSpace(opts.SeedTopic),
		logger:    opts.Logger,
	}
	if c.status == nil {
		c.status = status.New()
	}
	if c.renderer == nil {
		c.renderer = card.NewRenderer(nil, nil)
	}
	if c.tmpl == nil {
		c.tmpl = card.CardTemplate{}
	}
	if c.nav == nil {
		c.nav = NewNavList(nil)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	c.state.LastQuery = c.seed
	return c
}

// Request runs one full cycle for topic and waits for the result.
func (c *Controller) Request(ctx context.Context, topic string) Outcome {
	ticket, ok := c.Begin(topic)
	if !ok {
		return Outcome{Phase: Idle}
	}
	result, err := c.searcher.Search(ctx, ticket.Topic)
	return c.Finish(ticket, result, err)
}

// Begin validates topic and enters Loading.
// Returns false for blank input, which only sets an info status.
func (c *Controller) Begin(topic string) (Ticket, bool) {
	q := strings.TrimSpace(topic)
	if q == "" {
		c.status.Set(MsgBlankInput, status.Info)
		return Ticket{}, false
	}

	c.mu.Lock()
	c.gen++
	ticket := Ticket{ID: uuid.NewString(), Topic: q, gen: c.gen}
	c.state.LastQuery = q
	c.phase = Loading
	c.mu.Unlock()

	c.status.Set(MsgLoading, status.Loading)
	if c.container != nil {
		c.container.Clear()
	}

	c.logger.Debug("search started", "request", ticket.ID, "topic", q)
	return ticket, true
}

// Finish applies a search result for ticket.
// Results for a ticket that has been superseded by a later Begin are dropped.
func (c *Controller) Finish(ticket Ticket, result *newsapi.Result, err error) Outcome {
	c.mu.Lock()
	if ticket.gen != c.gen {
		c.mu.Unlock()
		c.logger.Debug("discarding stale result", "request", ticket.ID, "topic", ticket.Topic)
		return Outcome{Phase: c.Phase(), Err: err, Stale: true}
	}
	c.mu.Unlock()

	if err != nil {
		c.status.Set(FailureMessage(err), status.Error)
		c.setPhase(Failed)
		c.logger.Warn("search failed", "request", ticket.ID, "topic", ticket.Topic, "err", err)
		return Outcome{Phase: Failed, Err: err}
	}

	var views []card.View
	if result != nil && !result.Empty {
		views = c.renderer.RenderAll(result.Articles, c.tmpl)
	}

	if len(views) == 0 {
		c.status.Set(MsgNoResults, status.Info)
		c.setPhase(EmptyResult)
		c.logger.Info("no results", "request", ticket.ID, "topic", ticket.Topic)
		return Outcome{Phase: EmptyResult}
	}

	if c.container != nil {
		c.container.Clear()
		c.container.Append(views...)
	}
	c.status.Clear()
	c.setPhase(Rendered)
	c.logger.Info("rendered", "request", ticket.ID, "topic", ticket.Topic, "cards", len(views))
	return Outcome{Phase: Rendered, Cards: len(views)}
}

// FailureMessage is the error status text for err.
func FailureMessage(err error) string {
	cause := err.Error()
	var httpErr *newsapi.HTTPError
	if errors.As(err, &httpErr) {
		cause = httpErr.Error()
	}
	return fmt.Sprintf(msgFailed, strings.TrimSuffix(cause, "."))
}

// SetActiveSelection deselects the current tab, then marks item active.
// A nil item clears the selection.
func (c *Controller) SetActiveSelection(item *NavItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.ActiveNav = c.nav.Select(item)
}

// Init requests the seed topic and activates its tab when one matches.
func (c *Controller) Init(ctx context.Context) Outcome {
	ticket, ok := c.BeginInit()
	if !ok {
		return Outcome{Phase: Idle}
	}
	result, err := c.searcher.Search(ctx, ticket.Topic)
	return c.Finish(ticket, result, err)
}

// BeginInit is the asynchronous half of Init.
func (c *Controller) BeginInit() (Ticket, bool) {
	ticket, ok := c.Begin(c.seed)
	c.SetActiveSelection(c.nav.Match(c.seed))
	return ticket, ok
}

// Home resets to the seed topic and requests it again.
func (c *Controller) Home(ctx context.Context) Outcome {
	ticket, ok := c.BeginHome()
	if !ok {
		return Outcome{Phase: Idle}
	}
	result, err := c.searcher.Search(ctx, ticket.Topic)
	return c.Finish(ticket, result, err)
}

// BeginHome is the asynchronous half of Home.
func (c *Controller) BeginHome() (Ticket, bool) {
	c.mu.Lock()
	c.state.LastQuery = c.seed
	c.mu.Unlock()

	c.SetActiveSelection(c.nav.Match(c.seed))
	return c.Begin(c.seed)
}

// Submit handles a free-text search. Free-text results are not tied to a tab.
func (c *Controller) Submit(ctx context.Context, input string) Outcome {
	ticket, ok := c.BeginSubmit(input)
	if !ok {
		return Outcome{Phase: Idle}
	}
	result, err := c.searcher.Search(ctx, ticket.Topic)
	return c.Finish(ticket, result, err)
}

// BeginSubmit is the asynchronous half of Submit.
func (c *Controller) BeginSubmit(input string) (Ticket, bool) {
	ticket, ok := c.Begin(input)
	if !ok {
		return ticket, false
	}
	c.SetActiveSelection(nil)
	return ticket, true
}

// ActivateTab marks item active and requests its topic.
// Items without a query are ignored.
func (c *Controller) ActivateTab(ctx context.Context, item *NavItem) Outcome {
	ticket, ok := c.BeginTab(item)
	if !ok {
		return Outcome{Phase: Idle}
	}
	result, err := c.searcher.Search(ctx, ticket.Topic)
	return c.Finish(ticket, result, err)
}

// BeginTab is the asynchronous half of ActivateTab.
func (c *Controller) BeginTab(item *NavItem) (Ticket, bool) {
	if item == nil || strings.TrimSpace(item.Query) == "" {
		return Ticket{}, false
	}
	c.SetActiveSelection(item)
	return c.Begin(item.Query)
}

// Search runs ticket's query. Used by asynchronous callers between Begin and Finish.
func (c *Controller) Search(ctx context.Context, ticket Ticket) (*newsapi.Result, error) {
	return c.searcher.Search(ctx, ticket.Topic)
}

// State returns a copy of the session state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Phase returns the current phase
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Controller) SeedTopic() string         { return c.seed }
func (c *Controller) Nav() *NavList             { return c.nav }
func (c *Controller) Status() *status.Presenter { return c.status }

func (c *Controller) setPhase(p Phase) {
	c.mu.Lock()
	c.phase = p
	c.mu.Unlock()
}
