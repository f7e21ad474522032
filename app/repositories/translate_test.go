package repositories

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/nikitaraj/foodbridge/pkg/apperr"
)

func TestTranslateStoreClassifiesConstraints(t *testing.T) {
	assert.True(t, apperr.IsConstraint(translateStore(gorm.ErrForeignKeyViolated, "fk violated")))
	assert.True(t, apperr.IsConstraint(translateStore(gorm.ErrDuplicatedKey, "duplicate key")))

	// sqlite has no sentinel; it reports violations as plain strings.
	assert.True(t, apperr.IsConstraint(translateStore(errors.New("FOREIGN KEY constraint failed"), "sqlite fk")))
}

func TestTranslateStorePassesOtherErrorsThrough(t *testing.T) {
	plain := errors.New("disk I/O error")
	assert.Equal(t, plain, translateStore(plain, "unrelated"))
	assert.NoError(t, translateStore(nil, "no error"))
}
