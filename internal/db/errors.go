package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateID is returned when a create reuses an existing id.
	ErrDuplicateID = errors.New("id already exists")
	// ErrInvalidWinner is returned when a battle's winner does not reference
	// an existing monster.
	ErrInvalidWinner = errors.New("winner does not reference a monster")
)

// Postgres SQLSTATE codes for the two constraint classes the schema enforces.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateErr maps engine constraint errors onto the package sentinels.
// Anything else, connection failures included, passes through untouched.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateID
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrInvalidWinner
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicateID
		case pgForeignKeyViolation:
			return ErrInvalidWinner
		}
	}
	return err
}
