package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")
	// ErrSlotTaken is returned when a booking or availability slot is already held.
	ErrSlotTaken = errors.New("timeslot already taken")
)

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation covers PostgreSQL 23505 and the SQLite equivalent.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if pgCode(err) == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isExclusionViolation(err error) bool {
	return pgCode(err) == "23P01"
}

func isSerializationFailure(err error) bool {
	return pgCode(err) == "40001"
}

// mapWriteError turns constraint violations into repository sentinels.
func mapWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case isExclusionViolation(err):
		return ErrSlotTaken
	case IsUniqueViolation(err):
		return ErrDuplicate
	default:
		return err
	}
}
