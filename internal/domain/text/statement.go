// Package text formats free-text candidate statements for display.
package text

import "strings"

// Paragraphs splits a statement into paragraphs of lines. Blank lines
// (including whitespace-only ones) separate paragraphs; single newlines
// inside a paragraph are line breaks, not paragraph breaks. Statements
// come from free-text spreadsheet cells with inconsistent whitespace,
// so this contract is deliberately forgiving: leading and trailing blank
// runs are dropped and CRLF endings are normalized.
func Paragraphs(s string) [][]string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var (
		paragraphs [][]string
		current    []string
	)
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, current)
				current = nil
			}
			continue
		}
		current = append(current, strings.TrimRight(line, " \t"))
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, current)
	}
	return paragraphs
}
