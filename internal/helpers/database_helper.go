package helpers

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// TimeToTimestamptz converts a time to a valid pgtype.Timestamptz.
func TimeToTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t.UTC(), Valid: true}
}

// TimestamptzToTime returns the instant in UTC, or the zero time for an invalid value.
// pgx scans timestamptz into the local zone of the process.
func TimestamptzToTime(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time.UTC()
}
