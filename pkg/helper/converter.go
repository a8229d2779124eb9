package helper

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// PgString converts a string to pgtype.Text; an empty string is stored as NULL.
func PgString(s string) pgtype.Text {
	return pgtype.Text{
		String: s,
		Valid:  s != "",
	}
}

// StringFromPg converts a pgtype.Text to a string
func StringFromPg(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}

	return t.String
}

// PgTimestamptz converts a time.Time object to pgtype.Timestamptz
func PgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:  t,
		Valid: true,
	}
}

var (
	// AppTimezone holds the application's timezone
	AppTimezone *time.Location
)

// InitTimezone initializes the application timezone, falling back to UTC.
func InitTimezone(timezone string) {
	if timezone == "" {
		timezone = "UTC"
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		AppTimezone = time.UTC

		return
	}

	AppTimezone = loc
}

// NowInAppTimezone returns the current time in the application's timezone
func NowInAppTimezone() time.Time {
	if AppTimezone == nil {
		return time.Now().UTC()
	}

	return time.Now().In(AppTimezone)
}

// FormatDateInAppTimezone formats a time in the application timezone using the given format
func FormatDateInAppTimezone(t time.Time, format string) string {
	if AppTimezone == nil {
		return t.UTC().Format(format)
	}

	return t.In(AppTimezone).Format(format)
}
