// Package repositories is the data access layer: parameterized CRUD over
// the four tables. Filters are optional equality predicates; an absent
// filter returns all rows. Mutations are single statements, and every
// failure is classified through pkg/apperr.
package repositories

import (
	"errors"
	"strings"

	"github.com/nikitaraj/foodbridge/pkg/apperr"
	"gorm.io/gorm"
)

// translateStore classifies a store error that slipped past the explicit
// pre-checks: foreign key or uniqueness violations become ConstraintError,
// anything else passes through unchanged.
func translateStore(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Constraint(msg, err)
	}
	// sqlite reports violations as plain "constraint failed" strings.
	if strings.Contains(strings.ToLower(err.Error()), "constraint") {
		return apperr.Constraint(msg, err)
	}
	return err
}
