package postgres

import (
	domainerrors "blogauth/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking. They rely on gorm.Config.TranslateError.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// storeError marks err as a transient store failure. Context errors stay reachable through errors.Is.
func storeError(err error, details string) error {
	return domainerrors.NewDatabaseExecuteError(err, details)
}
