package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isInvalidID reports whether err is Postgres rejecting a malformed uuid.
func isInvalidID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
