package backtrack

import (
	"fmt"
	"io"
	"strings"
)

// WriteJSON renders n in the parent module's nested-tree JSON shape:
// [name, [children…], start_offset, end_offset]. Commas inside name are
// escaped as the six-character JSON escape for U+002C (see jsonQuote), so
// they can't be mistaken for the structural commas
// of the surrounding array — a quirk of the format this runtime preserves
// rather than "fixes", since existing data files and tooling expect it.
func (n *Node) WriteJSON(w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	if _, err := io.WriteString(w, jsonQuote(n.Name)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ",["); err != nil {
		return err
	}
	for i, c := range n.Children {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if err := c.WriteJSON(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "],%d,%d]", n.Span.From(), n.Span.To())
	return err
}

func jsonQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case ',':
			b.WriteString(`\u002c`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
