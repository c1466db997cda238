package view

import (
	"fmt"

	"github.com/jmspence/slateview/internal/domain/model"
	"github.com/jmspence/slateview/internal/domain/text"
	"github.com/jmspence/slateview/pkg/metrics"
)

// Fixed user-facing messages. Empty roster and load failure must be
// distinguishable by text alone.
const (
	MsgNoPositions = "No positions found."
	MsgLoadFailed  = "Candidate information could not be loaded. Please try again later."
)

// State enumerates the controller states.
type State int

const (
	// StateNoSelection holds before a successful load, after a failed one,
	// and for empty rosters.
	StateNoSelection State = iota
	// StateShowing means exactly one position is active in the detail view.
	StateShowing
)

// Controller owns the loaded roster and the single active-position pointer.
// It never mutates the roster itself; every transition re-renders the bound
// target in full. A nil target advances state without rendering.
type Controller struct {
	target Target

	positions []model.Position
	index     map[string]model.Position

	state  State
	active string
}

// Option applies a configuration option to the Controller.
type Option func(*Controller)

// WithTarget binds the rendering surface driven on each transition.
func WithTarget(t Target) Option {
	return func(c *Controller) {
		c.target = t
	}
}

// New constructs a Controller in the no-selection state.
func New(opts ...Option) *Controller {
	c := &Controller{
		state: StateNoSelection,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current controller state.
func (c *Controller) State() State {
	return c.state
}

// ActiveSlug returns the identifier of the active position, or "" when
// nothing is selected.
func (c *Controller) ActiveSlug() string {
	return c.active
}

// LoadSuccess installs a loaded roster. A non-empty roster selects the
// first position; an empty one renders the no-positions message.
func (c *Controller) LoadSuccess(positions []model.Position) {
	c.positions = positions
	c.index = make(map[string]model.Position, len(positions))
	for _, p := range positions {
		// First occurrence wins on duplicate identifiers.
		if _, exists := c.index[p.ID()]; !exists {
			c.index[p.ID()] = p
		}
	}

	if len(positions) == 0 {
		c.state = StateNoSelection
		c.active = ""
		c.renderMessage(MsgNoPositions)
		return
	}

	c.state = StateShowing
	c.active = positions[0].ID()
	c.render()
}

// LoadFailure renders the fixed load-failure message. The failure is
// terminal: no tabs exist, so no further transition can occur.
func (c *Controller) LoadFailure() {
	c.positions = nil
	c.index = nil
	c.state = StateNoSelection
	c.active = ""
	c.renderMessage(MsgLoadFailed)
}

// Select activates the position identified by slug and re-renders.
// Unknown slugs are a tolerated no-op; the previous state stands.
func (c *Controller) Select(slug string) bool {
	if _, ok := c.index[slug]; !ok {
		metrics.RecordTabSelection(false)
		return false
	}
	c.state = StateShowing
	c.active = slug
	c.render()
	metrics.RecordTabSelection(true)
	return true
}

// renderMessage clears tabs and grid and shows a status line.
func (c *Controller) renderMessage(msg string) {
	if c.target == nil {
		return
	}
	c.target.ResetTabs()
	c.target.ResetGrid()
	c.target.SetSummary(msg)
}

// render rebuilds the whole view for the active position: the tab list,
// the summary line, and the candidate grid in roster order.
func (c *Controller) render() {
	if c.target == nil {
		return
	}

	c.target.ResetTabs()
	for _, p := range c.positions {
		c.target.AppendTab(Tab{Slug: p.ID(), Title: p.Title})
	}
	c.target.MarkActive(c.active)

	active := c.index[c.active]
	c.target.SetSummary(summaryLine(active))

	c.target.ResetGrid()
	for _, cand := range active.Candidates {
		c.target.AppendCard(buildCard(cand))
	}
}

// summaryLine formats "<title> • <n> candidate[s]".
func summaryLine(p model.Position) string {
	noun := "candidates"
	if len(p.Candidates) == 1 {
		noun = "candidate"
	}
	return fmt.Sprintf("%s • %d %s", p.Title, len(p.Candidates), noun)
}

func buildCard(c model.Candidate) Card {
	return Card{
		Name:       c.DisplayName(),
		Initial:    c.Initial(),
		Headshot:   c.Headshot,
		Paragraphs: text.Paragraphs(c.Statement),
	}
}
