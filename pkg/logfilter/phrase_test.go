package logfilter

import "testing"

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		phrase    string
		matchType MatchType
		want      bool
	}{
		{
			name:      "contains case-insensitive",
			text:      "Flower Engine Roars",
			phrase:    "engine",
			matchType: MatchContains,
			want:      true,
		},
		{
			name:      "contains upper-cased phrase",
			text:      "flower engine roars",
			phrase:    "ENGINE",
			matchType: MatchContains,
			want:      true,
		},
		{
			name:      "contains miss",
			text:      "flower engine roars",
			phrase:    "turbine",
			matchType: MatchContains,
			want:      false,
		},
		{
			name:      "startsWith anchored",
			text:      "Flower Engine Roars",
			phrase:    "flower",
			matchType: MatchStartsWith,
			want:      true,
		},
		{
			name:      "startsWith not at boundary",
			text:      "a silent engine crashes",
			phrase:    "engine",
			matchType: MatchStartsWith,
			want:      false,
		},
		{
			name:      "endsWith anchored",
			text:      "connection Timeout",
			phrase:    "timeout",
			matchType: MatchEndsWith,
			want:      true,
		},
		{
			name:      "endsWith not at boundary",
			text:      "timeout on connection",
			phrase:    "timeout",
			matchType: MatchEndsWith,
			want:      false,
		},
		{
			name:      "no whitespace trimming",
			text:      " padded message",
			phrase:    "padded",
			matchType: MatchStartsWith,
			want:      false,
		},
		{
			name:      "empty phrase contains everything",
			text:      "anything",
			phrase:    "",
			matchType: MatchContains,
			want:      true,
		},
		{
			name:      "unknown match type rejects",
			text:      "anything",
			phrase:    "any",
			matchType: MatchType("fuzzy"),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Matches(tt.text, Condition{Phrase: tt.phrase, MatchType: tt.matchType})
			if got != tt.want {
				t.Errorf("Matches(%q, %q %s) = %v, want %v", tt.text, tt.phrase, tt.matchType, got, tt.want)
			}
		})
	}
}
