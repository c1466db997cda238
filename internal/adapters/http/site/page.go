// Package site renders the roster page server-side.
package site

import (
	"html"
	"net/url"
	"strings"

	view "github.com/jmspence/slateview/internal/domain/view"
)

// Page is a view.Target that accumulates the rendered regions and emits a
// complete HTML document. Candidate-supplied text (names, statements,
// titles) is escaped here, at markup-construction time; the controller
// hands over raw text.
type Page struct {
	title string

	summary   string
	tabs      []view.Tab
	activeIdx int
	cards     []view.Card
}

// NewPage creates an empty page with the given site heading.
func NewPage(title string) *Page {
	return &Page{
		title:     title,
		activeIdx: -1,
	}
}

// SetSummary replaces the summary/header text.
func (p *Page) SetSummary(text string) {
	p.summary = text
}

// ResetTabs discards all tabs.
func (p *Page) ResetTabs() {
	p.tabs = nil
	p.activeIdx = -1
}

// AppendTab adds one tab in order.
func (p *Page) AppendTab(tab view.Tab) {
	p.tabs = append(p.tabs, tab)
}

// MarkActive marks the first tab whose slug matches as active and all
// others as inactive.
func (p *Page) MarkActive(slug string) {
	p.activeIdx = -1
	for i, t := range p.tabs {
		if t.Slug == slug {
			p.activeIdx = i
			return
		}
	}
}

// ResetGrid discards all candidate cards.
func (p *Page) ResetGrid() {
	p.cards = nil
}

// AppendCard adds one candidate card in order.
func (p *Page) AppendCard(card view.Card) {
	p.cards = append(p.cards, card)
}

// Render emits the full HTML document for the current page state.
func (p *Page) Render() string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<title>" + html.EscapeString(p.title) + "</title>\n")
	b.WriteString("<link rel=\"stylesheet\" href=\"/static/style.css\">\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString("<header><h1>" + html.EscapeString(p.title) + "</h1></header>\n")
	b.WriteString("<main>\n")

	p.writeTabs(&b)
	b.WriteString("<p class=\"summary\">" + html.EscapeString(p.summary) + "</p>\n")
	p.writeGrid(&b)

	b.WriteString("</main>\n</body>\n</html>\n")
	return b.String()
}

func (p *Page) writeTabs(b *strings.Builder) {
	if len(p.tabs) == 0 {
		return
	}
	b.WriteString("<nav class=\"tabs\" role=\"tablist\">\n")
	for i, t := range p.tabs {
		class := "tab"
		selected := "false"
		if i == p.activeIdx {
			class = "tab active"
			selected = "true"
		}
		b.WriteString("<a class=\"" + class + "\"" +
			" role=\"tab\" aria-selected=\"" + selected + "\"" +
			" data-slug=\"" + html.EscapeString(t.Slug) + "\"" +
			" href=\"/?position=" + url.QueryEscape(t.Slug) + "\">" +
			html.EscapeString(t.Title) + "</a>\n")
	}
	b.WriteString("</nav>\n")
}

func (p *Page) writeGrid(b *strings.Builder) {
	b.WriteString("<section class=\"grid\">\n")
	for _, c := range p.cards {
		writeCard(b, c)
	}
	b.WriteString("</section>\n")
}

func writeCard(b *strings.Builder, c view.Card) {
	b.WriteString("<article class=\"card\">\n")

	if c.Headshot != "" {
		b.WriteString("<img class=\"headshot\" src=\"" + html.EscapeString(headshotPath(c.Headshot)) + "\"" +
			" alt=\"" + html.EscapeString(c.Name) + "\">\n")
	} else {
		b.WriteString("<div class=\"placeholder\" aria-hidden=\"true\">" + html.EscapeString(c.Initial) + "</div>\n")
	}

	b.WriteString("<h3 class=\"name\">" + html.EscapeString(c.Name) + "</h3>\n")

	for _, para := range c.Paragraphs {
		escaped := make([]string, len(para))
		for i, line := range para {
			escaped[i] = html.EscapeString(line)
		}
		b.WriteString("<p class=\"statement\">" + strings.Join(escaped, "<br>") + "</p>\n")
	}

	b.WriteString("</article>\n")
}

// headshotPath roots the generator's relative image path at the server's
// headshot mount.
func headshotPath(p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") || strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}
