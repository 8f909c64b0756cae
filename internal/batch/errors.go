package batch

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

const errorLevel = "E"

// Describe turns a store error into the structured per-record form. Postgres
// errors keep their SQLSTATE prefixed with "PG"; SQLite errors map onto the
// closest category name.
func Describe(err error, record any) RecordError {
	rec := RecordError{
		Level:   errorLevel,
		Message: err.Error(),
		Detail:  err.Error(),
		Code:    "DatabaseError",
		Record:  record,
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		rec.Message = pgErr.Message
		rec.Code = "PG" + pgErr.Code
		if pgErr.Detail != "" {
			rec.Detail = pgErr.Detail
		} else {
			rec.Detail = pgErr.Message
		}
		return rec
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint:
			rec.Code = "ConstraintError"
		case sqlite3.ErrMismatch, sqlite3.ErrTooBig, sqlite3.ErrRange:
			rec.Code = "DataError"
		}
		return rec
	}

	return rec
}

// IsClientError reports whether err stems from the caller's data rather than
// a store fault. Postgres class 22 (data exception) and 23 (integrity
// constraint violation) qualify, as do SQLite constraint and data errors.
func IsClientError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if len(pgErr.Code) >= 2 {
			class := pgErr.Code[:2]
			return class == "22" || class == "23"
		}
		return false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint, sqlite3.ErrMismatch, sqlite3.ErrTooBig, sqlite3.ErrRange:
			return true
		}
	}
	return false
}
