package roster

import (
	"bytes"
	"fmt"
	"strings"
)

const paragraphSep = "\n\n"

// Letter is a rendered letter ready to be shown to its recipient.
type Letter struct {
	Recipient  string   `json:"recipient"`
	Paragraphs []string `json:"paragraphs"`
	HTML       string   `json:"html"`
}

// Render splits the person's letter into paragraphs and renders it as
// markdown. Raw HTML in the letter is not passed through.
func (r *Roster) Render(p Person) (Letter, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(p.Letter), &buf); err != nil {
		return Letter{}, fmt.Errorf("render letter of %q: %w", p.Name, err)
	}

	return Letter{
		Recipient:  p.Name,
		Paragraphs: Paragraphs(p.Letter),
		HTML:       buf.String(),
	}, nil
}

// Paragraphs splits text on blank lines, trimming each paragraph and
// dropping empty ones.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, paragraphSep)

	paragraphs := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			paragraphs = append(paragraphs, part)
		}
	}
	return paragraphs
}
