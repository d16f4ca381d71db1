package render

import "strings"

// WrapText splits text into lines using a greedy word wrap: words accumulate
// onto a line until appending the next word would push it past limit
// characters, then a new line starts.
//
// The budget is a character count, not a measured text width. With a
// fixed-width face the two agree up to a constant factor, and the
// justification blocks this feeds are small enough that the approximation
// holds up. A single word longer than limit gets its own overlong line rather
// than being broken mid-word; a limit below 1 is treated as 1, so every word
// lands on its own line.
func WrapText(text string, limit int) []string {
	if limit < 1 {
		limit = 1
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, 1+len(text)/limit)
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > limit {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
