package ansi

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ulfmagnetics/trix-hub/display"
)

// Frame renders d with an optional centered title and rule above it. Handy
// when dumping several providers to the same terminal.
func (r *Renderer) Frame(title string, d display.Data) string {
	body := r.Render(d)
	if title == "" {
		return body
	}
	var sb strings.Builder
	sb.WriteByte('\n')
	pad := (r.width - runewidth.StringWidth(title)) / 2
	if pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	sb.WriteString(title)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("=", r.width))
	sb.WriteByte('\n')
	sb.WriteString(body)
	return sb.String()
}
