package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"crewboard/internal/models"
)

// SourceErrorMessage maps errors from the job/employee sources to an HTTP
// status and a message that is safe to show to callers.
func SourceErrorMessage(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "Data source timed out."
	case errors.Is(err, context.Canceled):
		return 499, "Request cancelled."
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, models.ErrOrgNotFound):
		return http.StatusNotFound, "Organisation not found."
	case errors.Is(err, models.ErrSourceUnavailable):
		return http.StatusServiceUnavailable, "Data source unavailable."
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		// Unknown error type; hide details
		return http.StatusInternalServerError, fallback
	}
	return PGErrorMessage(pgErr, fallback)
}

// PGErrorMessage maps common Postgres errors to user-friendly HTTP status + message.
func PGErrorMessage(pgErr *pgconn.PgError, fallback string) (int, string) {
	switch pgErr.Code {
	case "22P02": // invalid_text_representation (e.g., UUID/date)
		return http.StatusBadRequest, "Invalid value format."
	case "22007", "22008": // invalid_datetime_format, datetime_field_overflow
		return http.StatusUnprocessableEntity, "Stored job date is invalid."
	case "42P01", "42703": // undefined_table, undefined_column
		return http.StatusInternalServerError, "Schema is out of date."
	case "57P01", "57P03", "53300": // admin_shutdown, cannot_connect_now, too_many_connections
		return http.StatusServiceUnavailable, "Data source unavailable."
	default:
		// For any other PG error, avoid leaking internals
		return http.StatusInternalServerError, fallback
	}
}
