package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	if !pt.Valid {
		return time.Time{}
	}
	return pt.Time.UTC()
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: t.UTC(), Valid: true}
}

// RangeToPgtype builds a half-open [start, end) tstzrange.
func RangeToPgtype(start, end time.Time) pgtype.Range[pgtype.Timestamptz] {
	return pgtype.Range[pgtype.Timestamptz]{
		Lower:     TimeToPgtype(start),
		Upper:     TimeToPgtype(end),
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Exclusive,
		Valid:     true,
	}
}

// RangeFromPgtype returns the bounds of a finite range. ok is false for NULL,
// empty or unbounded ranges.
func RangeFromPgtype(r pgtype.Range[pgtype.Timestamptz]) (start, end time.Time, ok bool) {
	if !r.Valid || r.LowerType == pgtype.Empty {
		return time.Time{}, time.Time{}, false
	}
	if r.LowerType == pgtype.Unbounded || r.UpperType == pgtype.Unbounded {
		return time.Time{}, time.Time{}, false
	}
	return TimeFromPgtype(r.Lower), TimeFromPgtype(r.Upper), true
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// AsPgError extracts the server-side error, if any.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}
