package report

import "strings"

// noteWrapWidth is the character width notes are wrapped to in the
// document encoding
const noteWrapWidth = 60

// wrapText fills lines greedily: the next word is appended while the line
// stays within width, otherwise the line is flushed and the word starts a
// new one. Single words are never broken. The result always has at least
// one (possibly empty) line.
func wrapText(text string, width int) []string {
	if text == "" {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range strings.Split(text, " ") {
		if len(current)+len(word) <= width {
			if current != "" {
				current += " "
			}
			current += word
		} else {
			if current != "" {
				lines = append(lines, current)
			}
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
