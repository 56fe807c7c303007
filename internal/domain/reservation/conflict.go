package reservation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/zhangwenhan0216/reservation/internal/pkg/errs"
)

// Matches one "(resource_id, timespan)=(R, [S1,S2))" clause of an exclusion
// violation detail. Bracket style of the range is not significant.
var conflictClause = regexp.MustCompile(
	`\(\s*resource_id\s*,\s*timespan\s*\)=\(\s*"?(?P<rid>[^"(),\s]+)"?\s*,\s*[\[(](?P<span>[^\])]+)[\])]\)`,
)

var (
	ridIndex  = conflictClause.SubexpIndex("rid")
	spanIndex = conflictClause.SubexpIndex("span")
)

// PostgreSQL prints timestamptz with an hour-only offset unless the zone
// has minutes. Fractional seconds are accepted by time.Parse regardless.
var timestampLayouts = []string{
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05-07:00:00",
}

// Window is a concrete interval reported in a conflict.
type Window struct {
	ResourceID string
	Start      time.Time
	End        time.Time
}

// Conflict pairs the rejected window with the existing one it collided with.
type Conflict struct {
	New Window
	Old Window
}

// ConflictInfo is either a parsed Conflict or an opaque "unparsed" marker.
type ConflictInfo struct {
	conflict *Conflict
}

func ParsedConflict(c Conflict) ConflictInfo {
	return ConflictInfo{conflict: &c}
}

func UnparsedConflict() ConflictInfo {
	return ConflictInfo{}
}

func (i ConflictInfo) IsParsed() bool {
	return i.conflict != nil
}

func (i ConflictInfo) Conflict() (Conflict, bool) {
	if i.conflict == nil {
		return Conflict{}, false
	}
	return *i.conflict, true
}

func (i ConflictInfo) String() string {
	c, ok := i.Conflict()
	if !ok {
		return "unparsed"
	}
	return fmt.Sprintf("new %s [%s, %s) conflicts with old %s [%s, %s)",
		c.New.ResourceID, c.New.Start.Format(time.RFC3339), c.New.End.Format(time.RFC3339),
		c.Old.ResourceID, c.Old.Start.Format(time.RFC3339), c.Old.End.Format(time.RFC3339))
}

// ParseConflictInfo never fails: text that does not match the template, or
// whose fields do not parse, yields an unparsed info.
func ParseConflictInfo(detail string) ConflictInfo {
	c, err := ParseConflict(detail)
	if err != nil {
		return UnparsedConflict()
	}
	return ParsedConflict(c)
}

// ParseConflict reads the first two clauses of detail as the new and old windows.
func ParseConflict(detail string) (Conflict, error) {
	matches := conflictClause.FindAllStringSubmatch(detail, 2)
	if len(matches) < 2 {
		return Conflict{}, errs.New("conflict detail does not match the expected template")
	}

	newWindow, err := parseWindow(matches[0])
	if err != nil {
		return Conflict{}, errs.Wrap(err, "new window")
	}
	oldWindow, err := parseWindow(matches[1])
	if err != nil {
		return Conflict{}, errs.Wrap(err, "old window")
	}

	return Conflict{New: newWindow, Old: oldWindow}, nil
}

func parseWindow(match []string) (Window, error) {
	start, end, err := parseTimespan(match[spanIndex])
	if err != nil {
		return Window{}, err
	}
	return Window{
		ResourceID: match[ridIndex],
		Start:      start,
		End:        end,
	}, nil
}

func parseTimespan(s string) (time.Time, time.Time, error) {
	parts := strings.SplitN(strings.ReplaceAll(s, `"`, ""), ",", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, errs.New("timespan must have two bounds")
	}
	start, err := parseTimestamp(parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseTimestamp(parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errs.Newf("invalid timestamp %q", s)
}

// ConflictError is returned when storage rejects a reservation for overlapping
// an existing one. It matches errs.ErrReservationConflict.
type ConflictError struct {
	Info ConflictInfo
}

func NewConflictError(info ConflictInfo) *ConflictError {
	return &ConflictError{Info: info}
}

func (e *ConflictError) Error() string {
	if !e.Info.IsParsed() {
		return errs.ErrReservationConflict.Error()
	}
	return errs.ErrReservationConflict.Error() + ": " + e.Info.String()
}

func (e *ConflictError) Is(target error) bool {
	return target == errs.ErrReservationConflict
}
