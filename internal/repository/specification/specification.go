package specification

import "gorm.io/gorm"

// Specification composes gorm query clauses.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
