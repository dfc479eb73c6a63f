package alerting

import (
	"strings"

	"logfiber-be/internal/entity"
)

// RuleMatches evaluates one alarm rule against an ingested event. The match
// is conjunctive: logType equality, level membership, environment equality,
// and an optional case-insensitive substring test on the message. A rule
// without a message matches any message.
func RuleMatches(rule *entity.AlarmRule, ev *entity.LogEvent) bool {
	if rule.LogType != ev.LogType {
		return false
	}

	if !levelMatches(rule.Levels, ev.Level) {
		return false
	}

	if !strings.EqualFold(rule.Environment, ev.Environment) {
		return false
	}

	if rule.Message != nil {
		needle := strings.ToLower(*rule.Message)
		if !strings.Contains(strings.ToLower(ev.Message), needle) {
			return false
		}
	}

	return true
}

func levelMatches(ruleLevels []string, eventLevel string) bool {
	for _, lvl := range ruleLevels {
		if strings.EqualFold(lvl, eventLevel) {
			return true
		}
	}
	return false
}
