package store

import (
	"strings"

	"holocron/internal/errors"

	"gorm.io/gorm"
)

// The pure-Go SQLite driver does not go through gorm's error translation,
// so its constraint failures are recognized by message.
const (
	sqliteUniqueFailed     = "UNIQUE constraint failed"
	sqliteForeignKeyFailed = "FOREIGN KEY constraint failed"
	sqliteCheckFailed      = "CHECK constraint failed"
)

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || containsMessage(err, sqliteUniqueFailed)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || containsMessage(err, sqliteForeignKeyFailed)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || containsMessage(err, sqliteCheckFailed)
}

func containsMessage(err error, fragment string) bool {
	return err != nil && strings.Contains(err.Error(), fragment)
}
