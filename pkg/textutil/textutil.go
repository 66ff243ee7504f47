// Package textutil holds small text formatting helpers.
package textutil

import "strings"

// Wrap splits text into lines of at most width bytes, breaking on whitespace. Runs of whitespace
// collapse to a single space. A word longer than width gets a line of its own.
func Wrap(text string, width int) []string {
	var (
		lines []string
		cur   strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
