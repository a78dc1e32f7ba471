package errors

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// reKeyField extracts the column from a unique violation detail: "Key (email)=(a@b.com) already exists.".
var reKeyField = regexp.MustCompile(`Key \((?:lower\()?([a-z_]+)\)?\)=`)

// MapDBError maps database errors to AppError instances:
//   - pgx.ErrNoRows becomes NotFound
//   - unique violations become Conflict, with Field set when the column is known
//   - NOT NULL and CHECK violations become Validation
//   - context deadline/cancel become Timeout/Canceled
//
// Unrecognized errors are returned unchanged.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return Wrap(err, ErrCodeTimeout, "Request timed out. Please try again.")
	case errors.Is(err, context.Canceled):
		return Wrap(err, ErrCodeCanceled, "Request was canceled.")
	case errors.Is(err, pgx.ErrNoRows):
		return Wrap(err, ErrCodeNotFound, "Resource not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr)
	}
	return err
}

func mapPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		out := FieldConflict(uniqueViolationField(pgErr))
		out.Cause = pgErr
		return out
	case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
		return &AppError{
			Code:    ErrCodeValidation,
			Message: "Invalid data. Please check your input.",
			Field:   pgErr.ColumnName,
			Cause:   pgErr,
		}
	default:
		return Wrap(pgErr, ErrCodeInternal, "A database error occurred. Please try again.")
	}
}

// uniqueViolationField resolves the offending column from PgError metadata,
// then the Detail text, then the constraint name ("users_email_key" -> "email").
func uniqueViolationField(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	if m := reKeyField.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
		return m[1]
	}
	parts := strings.Split(pgErr.ConstraintName, "_")
	if len(parts) == 3 {
		return parts[1]
	}
	return ""
}

// FieldConflict builds the Conflict error reported when field's value is
// already taken. An empty field yields a generic message.
func FieldConflict(field string) *AppError {
	msg := "This value already exists. Please choose a different one."
	switch field {
	case "email":
		msg = "An account with this email address already exists."
	case "username":
		msg = "This username is already taken."
	}
	return &AppError{Code: ErrCodeConflict, Message: msg, Field: field}
}
