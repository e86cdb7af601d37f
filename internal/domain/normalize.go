package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxQueryRunes caps the search text passed to the store.
const MaxQueryRunes = 200

// NormalizeQuery trims surrounding whitespace and truncates to MaxQueryRunes.
// Inner whitespace is kept as typed so the store matches the literal
// substring; case is preserved and the store matches case-insensitively.
func NormalizeQuery(text string) string {
	q := strings.TrimSpace(text)
	if utf8.RuneCountInString(q) <= MaxQueryRunes {
		return q
	}
	return strings.TrimRightFunc(string([]rune(q)[:MaxQueryRunes]), unicode.IsSpace)
}
