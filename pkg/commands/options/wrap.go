package options

import "strings"

// Wrap80 wraps help text to the conventional 80-column terminal width.
func Wrap80(text string) string {
	return Wrap(text, 80)
}

// Wrap greedily re-flows text to the given width, one word at a time.
// Words longer than the width land on their own line rather than being
// split.
func Wrap(text string, width int) string {
	words := strings.Fields(strings.TrimSpace(text))
	if len(words) == 0 {
		return text
	}

	var b strings.Builder
	b.WriteString(words[0])
	remaining := width - len(words[0])
	for _, word := range words[1:] {
		if len(word)+1 > remaining {
			b.WriteString("\n")
			b.WriteString(word)
			remaining = width - len(word)
			continue
		}
		b.WriteString(" ")
		b.WriteString(word)
		remaining -= 1 + len(word)
	}
	return b.String()
}
