package logfilter

import "strings"

// MatchType controls how a phrase is anchored against the target text.
type MatchType string

const (
	MatchContains   MatchType = "contains"
	MatchStartsWith MatchType = "startsWith"
	MatchEndsWith   MatchType = "endsWith"
)

// Condition is a single phrase test against one text surface.
type Condition struct {
	Phrase    string    `json:"phrase" validate:"required"`
	MatchType MatchType `json:"matchType" validate:"required,oneof=contains startsWith endsWith"`
}

// Matches reports whether text satisfies the condition.
// Both operands are lower-cased first; no trimming or Unicode normalization
// happens beyond that, so surrounding whitespace is significant.
func Matches(text string, c Condition) bool {
	t := strings.ToLower(text)
	p := strings.ToLower(c.Phrase)

	switch c.MatchType {
	case MatchStartsWith:
		return strings.HasPrefix(t, p)
	case MatchEndsWith:
		return strings.HasSuffix(t, p)
	case MatchContains:
		return strings.Contains(t, p)
	default:
		return false
	}
}
