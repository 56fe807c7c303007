package reservation

import (
	"fmt"
	"time"

	"github.com/zhangwenhan0216/reservation/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgtype"
)

// TimeSlot is a half-open window [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if err := ValidateWindow(start, end); err != nil {
		return TimeSlot{}, err
	}
	return TimeSlot{
		start: start.UTC(),
		end:   end.UTC(),
	}, nil
}

// ValidateWindow fails when an endpoint is missing or start is not strictly before end.
func ValidateWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return errs.Wrap(errs.ErrInvalidTime, "start and end are required")
	}
	if !start.Before(end) {
		return errs.Wrapf(errs.ErrInvalidTime, "start %s must be before end %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) IsZero() bool {
	return ts.start.IsZero() && ts.end.IsZero()
}

// Overlaps reports whether two half-open windows share an instant.
// Touching endpoints (a.end == b.start) do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

func (ts TimeSlot) Contains(t time.Time) bool {
	return !t.Before(ts.start) && t.Before(ts.end)
}

// Range is the tstzrange representation used for persistence and window filters.
func (ts TimeSlot) Range() pgtype.Range[pgtype.Timestamptz] {
	return pgtype.Range[pgtype.Timestamptz]{
		Lower:     pgtype.Timestamptz{Time: ts.start, Valid: true},
		Upper:     pgtype.Timestamptz{Time: ts.end, Valid: true},
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Exclusive,
		Valid:     true,
	}
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s, %s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
