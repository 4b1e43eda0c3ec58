// Package storeerr converts low-level store and driver errors into
// application HTTP errors.
//
// It understands pgx/pgconn errors (constraint violations, no rows)
// and the docstore's own not-found sentinel, and maps them to the errs
// taxonomy so cryptic driver codes never reach API clients.
package storeerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code classifies store errors into the categories the API layer
// cares about.
type Code int

const (
	// Other is any error not covered by a more specific code.
	Other Code = iota
	// UniqueViolation is a duplicate key on a unique constraint.
	UniqueViolation
	// ForeignKeyViolation is a reference to a missing row.
	ForeignKeyViolation
	// NotNullViolation is a missing required column value.
	NotNullViolation
	// CheckViolation is a failed CHECK constraint.
	CheckViolation
)

// Severity mirrors the severity reported by the database server.
type Severity int

const (
	SeverityError Severity = iota
	SeverityFatal
	SeverityPanic
	SeverityOther
)

// Error is a normalized store error carrying the metadata needed to
// build client-facing messages.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode translates a SQLSTATE code into a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	default:
		return Other
	}
}

// MapSeverity translates the server severity string into a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityOther
	}
}

// ErrCode reports the mapped Code for a given error, or Other when the
// error chain contains no *storeerr.Error.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a raw pgconn.PgError into a storeerr.Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}
