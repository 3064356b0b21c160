package reservation

import "fmt"

type Status string

const (
	StatusInquiry    Status = "INQUIRY"
	StatusQuoted     Status = "QUOTED"
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCancelled  Status = "CANCELLED"
	StatusNoShow     Status = "NO_SHOW"
)

var allStatuses = []Status{
	StatusInquiry,
	StatusQuoted,
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
	StatusNoShow,
}

func AllStatuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	for _, candidate := range allStatuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no command may move the reservation out of s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown reservation status %q", raw)
	}
	return s, nil
}

type StatusSet map[Status]struct{}

func NewStatusSet(statuses ...Status) StatusSet {
	set := make(StatusSet, len(statuses))
	for _, s := range statuses {
		set[s] = struct{}{}
	}
	return set
}

func (s StatusSet) Contains(status Status) bool {
	_, ok := s[status]
	return ok
}

// Members returns the statuses in lifecycle order.
func (s StatusSet) Members() []Status {
	out := make([]Status, 0, len(s))
	for _, candidate := range allStatuses {
		if s.Contains(candidate) {
			out = append(out, candidate)
		}
	}
	return out
}
