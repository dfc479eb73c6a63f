package logfilter

// Operator combines multiple conditions into one predicate.
type Operator string

const (
	OperatorAnd Operator = "AND"
	OperatorOr  Operator = "OR"
)

// Filter applies one or more phrase conditions to a single text surface.
type Filter struct {
	Operator   Operator    `json:"operator" validate:"required,oneof=AND OR"`
	Conditions []Condition `json:"conditions" validate:"required,min=1,dive"`
}

// Evaluate is the single canonical predicate shared by the search-index
// verification path and the primary-store fallback path. Both must agree,
// so neither is allowed to carry its own copy of this logic.
//
// An empty condition list is vacuously true.
func Evaluate(text string, f Filter) bool {
	if len(f.Conditions) == 0 {
		return true
	}

	if f.Operator == OperatorOr {
		for _, c := range f.Conditions {
			if Matches(text, c) {
				return true
			}
		}
		return false
	}

	// AND is the default for any other operator value.
	for _, c := range f.Conditions {
		if !Matches(text, c) {
			return false
		}
	}
	return true
}
