package searchindex

import (
	"fmt"
	"strings"

	"logfiber-be/pkg/logfilter"
)

// Surface names the logical text surface a phrase filter targets.
type Surface string

const (
	SurfaceNone       Surface = ""
	SurfaceDoc        Surface = "doc"
	SurfaceMessage    Surface = "message"
	SurfaceStackTrace Surface = "stackTrace"
	SurfaceDetails    Surface = "details"
)

// Stored fields queried per surface.
const (
	fieldsDoc        = "message,rawStackTrace,detailString"
	fieldsMessage    = "message"
	fieldsStackTrace = "rawStackTrace,detailString"
	fieldsDetails    = "detailString"
)

// Query is the logical search request handed to the translator. At most one
// phrase filter is honored; Doc supersedes the narrower three when present.
type Query struct {
	ProjectId    string
	Levels       []string
	Environments []string
	Hostnames    []string
	LogType      string
	Window       logfilter.TimeWindow

	Doc        *logfilter.Condition
	Message    *logfilter.Filter
	StackTrace *logfilter.Filter
	Details    *logfilter.Filter

	// SortBy is an explicit sort directive; it only applies when no
	// free-text query is active.
	SortBy  string
	Page    int
	PerPage int
}

// ActiveSurface resolves the filter priority: doc > message > stackTrace >
// details. overridden reports whether a lower-priority filter was supplied
// alongside the winning one and will be discarded.
func (q *Query) ActiveSurface() (Surface, bool) {
	supplied := 0
	if q.Doc != nil {
		supplied++
	}
	if q.Message != nil {
		supplied++
	}
	if q.StackTrace != nil {
		supplied++
	}
	if q.Details != nil {
		supplied++
	}

	switch {
	case q.Doc != nil:
		return SurfaceDoc, supplied > 1
	case q.Message != nil:
		return SurfaceMessage, supplied > 1
	case q.StackTrace != nil:
		return SurfaceStackTrace, supplied > 1
	case q.Details != nil:
		return SurfaceDetails, supplied > 1
	default:
		return SurfaceNone, false
	}
}

// ActiveFilter returns the honored phrase filter normalized to a Filter; the
// doc condition becomes a single-condition filter.
func (q *Query) ActiveFilter() *logfilter.Filter {
	surface, _ := q.ActiveSurface()
	switch surface {
	case SurfaceDoc:
		return &logfilter.Filter{Operator: logfilter.OperatorOr, Conditions: []logfilter.Condition{*q.Doc}}
	case SurfaceMessage:
		return q.Message
	case SurfaceStackTrace:
		return q.StackTrace
	case SurfaceDetails:
		return q.Details
	default:
		return nil
	}
}

// Translate builds the search-engine request. Phrase conditions map to the
// engine's free-text syntax: contains becomes a quoted exact phrase (which
// disables typo tolerance), startsWith a trailing wildcard, endsWith a
// leading wildcard. Equality filters and time bounds become a conjunctive
// filter_by clause, always scoped to the project.
func Translate(q *Query) SearchParams {
	params := SearchParams{
		Page:    q.Page,
		PerPage: q.PerPage,
		FacetBy: "level",
	}

	surface, _ := q.ActiveSurface()
	filter := q.ActiveFilter()

	switch surface {
	case SurfaceDoc:
		params.QueryBy = fieldsDoc
	case SurfaceMessage:
		params.QueryBy = fieldsMessage
	case SurfaceStackTrace:
		params.QueryBy = fieldsStackTrace
	case SurfaceDetails:
		params.QueryBy = fieldsDetails
	default:
		params.QueryBy = fieldsMessage
	}

	if filter == nil || len(filter.Conditions) == 0 {
		params.Q = "*"
	} else {
		terms := make([]string, 0, len(filter.Conditions))
		for _, c := range filter.Conditions {
			terms = append(terms, conditionTerm(c))
		}
		params.Q = strings.Join(terms, " ")
		params.UseBooleanAnd = filter.Operator == logfilter.OperatorAnd
	}

	params.FilterBy = buildFilterBy(q)

	// Relevance order while a free-text query is active; otherwise newest
	// first unless the caller asked for something else.
	if params.Q == "*" {
		if q.SortBy != "" {
			params.SortBy = q.SortBy
		} else {
			params.SortBy = "timestampMS:desc"
		}
	}

	return params
}

func conditionTerm(c logfilter.Condition) string {
	switch c.MatchType {
	case logfilter.MatchStartsWith:
		return c.Phrase + "*"
	case logfilter.MatchEndsWith:
		return "*" + c.Phrase
	default:
		return fmt.Sprintf("%q", c.Phrase)
	}
}

func buildFilterBy(q *Query) string {
	clauses := []string{fmt.Sprintf("projectId:=%s", q.ProjectId)}

	if clause := equalityClause("level", q.Levels); clause != "" {
		clauses = append(clauses, clause)
	}
	if clause := equalityClause("environment", q.Environments); clause != "" {
		clauses = append(clauses, clause)
	}
	if clause := equalityClause("hostname", q.Hostnames); clause != "" {
		clauses = append(clauses, clause)
	}
	if q.LogType != "" {
		clauses = append(clauses, fmt.Sprintf("logType:=%s", q.LogType))
	}
	if q.Window.MinTimestampMS != nil {
		clauses = append(clauses, fmt.Sprintf("timestampMS:>=%d", *q.Window.MinTimestampMS))
	}
	if q.Window.MaxTimestampMS != nil {
		clauses = append(clauses, fmt.Sprintf("timestampMS:<=%d", *q.Window.MaxTimestampMS))
	}

	return strings.Join(clauses, " && ")
}

func equalityClause(field string, values []string) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%s:=%s", field, values[0])
	default:
		return fmt.Sprintf("%s:=[%s]", field, strings.Join(values, ","))
	}
}

// NeedsVerification reports whether the engine's answer can contain false
// positives for the honored filter. Quoted exact phrases are already exact;
// multi-condition OR queries and wildcard anchors are not, and their hits
// must be re-checked against the canonical predicate.
func NeedsVerification(filter *logfilter.Filter) bool {
	if filter == nil || len(filter.Conditions) == 0 {
		return false
	}
	if filter.Operator == logfilter.OperatorOr && len(filter.Conditions) > 1 {
		return true
	}
	for _, c := range filter.Conditions {
		if c.MatchType == logfilter.MatchStartsWith || c.MatchType == logfilter.MatchEndsWith {
			return true
		}
	}
	return false
}
