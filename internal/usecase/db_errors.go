package usecase

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isDuplicateKeyError checks if the error is a unique violation on a constraint
// whose name contains constraintName. PostgreSQL reports code 23505; SQLite only
// reports "UNIQUE constraint failed: table.column" in the message.
func isDuplicateKeyError(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	name := strings.ToLower(constraintName)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), name)
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") && strings.Contains(msg, name)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
