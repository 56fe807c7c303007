package reservation

import "strings"

type Status string

const (
	StatusUnknown   Status = "unknown"
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusBlocked   Status = "blocked"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUnknown, StatusPending, StatusConfirmed, StatusBlocked:
		return true
	default:
		return false
	}
}

// OrDefault substitutes Pending for an unset or unknown status.
func (s Status) OrDefault() Status {
	switch s {
	case StatusPending, StatusConfirmed, StatusBlocked:
		return s
	default:
		return StatusPending
	}
}

// ParseStatus is lenient: anything unrecognised maps to StatusUnknown.
func ParseStatus(s string) Status {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return StatusUnknown
	}
	return st
}
