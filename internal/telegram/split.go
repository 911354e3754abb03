package telegram

import (
	"unicode/utf8"
)

// SplitMessage splits text into chunks of at most maxLen runes, preferring
// to break at a newline in the second half of a chunk.
func SplitMessage(text string, maxLen int) []string {
	if utf8.RuneCountInString(text) <= maxLen {
		return []string{text}
	}

	var parts []string
	for utf8.RuneCountInString(text) > maxLen {
		runes := []rune(text)
		splitAt := maxLen

		for i := maxLen - 1; i > maxLen/2; i-- {
			if runes[i] == '\n' {
				splitAt = i + 1
				break
			}
		}

		parts = append(parts, string(runes[:splitAt]))
		text = string(runes[splitAt:])
	}
	if text != "" {
		parts = append(parts, text)
	}
	return parts
}
