package postgres

import (
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgxmockExpectationsNotMetMsg = "there were unfulfilled expectations"

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

var pgconnDuplicateErr = pgconn.PgError{
	Code:           "23505",
	Message:        "duplicate key value violates unique constraint",
	ConstraintName: "customers_account_number_key",
}
