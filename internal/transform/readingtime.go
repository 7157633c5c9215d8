package transform

import "strings"

// wordsPerMinute is the fixed reading speed used for reading-time estimates.
const wordsPerMinute = 200

// ReadingTime estimates reading time in whole minutes for a rendered body,
// ceiling-rounded. Markup tags are stripped before counting so the estimate
// reflects the visible text.
func ReadingTime(body string) int {
	words := len(strings.Fields(stripTags(body)))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// stripTags removes markup tags from rendered output. The renderer is a
// black box upstream; this only has to be good enough for word counting.
func stripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
			// Tag boundaries separate words
			b.WriteByte(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
