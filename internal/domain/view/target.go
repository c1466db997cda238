// Package view implements the position tab / candidate detail state machine.
package view

// Tab is one selectable position in the tab list.
type Tab struct {
	Slug  string
	Title string
}

// Card is one fully prepared candidate card. Text fields are raw; escaping
// is the target's responsibility at markup-construction time.
type Card struct {
	Name       string
	Initial    string
	Headshot   string
	Paragraphs [][]string
}

// Target is the rendering surface the controller drives. Implementations
// decide what "rendering" means (server-side HTML, a test recorder).
// Every method must be safe to call in any order; a target that has no
// region for a given step treats it as a no-op.
type Target interface {
	// SetSummary replaces the summary/header text.
	SetSummary(text string)

	// ResetTabs discards all tabs; AppendTab adds one in order.
	ResetTabs()
	AppendTab(tab Tab)

	// MarkActive marks the first tab whose slug matches as active and all
	// others as inactive. This is a full re-mark, never an incremental
	// diff, so at most one tab ever carries the active marker.
	MarkActive(slug string)

	// ResetGrid discards all candidate cards; AppendCard adds one in order.
	ResetGrid()
	AppendCard(card Card)
}
