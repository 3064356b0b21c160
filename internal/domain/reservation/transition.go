package reservation

import (
	"errors"
	"fmt"
)

var ErrTransitionNotAllowed = errors.New("status transition not allowed")

// Transition is the allow-list a command checks before any side effect.
// Target is empty for commands that keep the current status.
type Transition struct {
	Command     string
	ValidPrior  StatusSet
	Target      Status
	TargetLabel string
}

type TransitionError struct {
	Command string
	From    Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s not allowed from status %s", e.Command, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrTransitionNotAllowed
}

func (t Transition) Check(current Status) error {
	if !t.ValidPrior.Contains(current) {
		return &TransitionError{Command: t.Command, From: current}
	}
	return nil
}

// ResultingStatus is the status after the command, given the current one.
func (t Transition) ResultingStatus(current Status) Status {
	if t.Target == "" {
		return current
	}
	return t.Target
}

const (
	CommandCreate     = "reservation.create"
	CommandModify     = "reservation.modify"
	CommandCancel     = "reservation.cancel"
	CommandNoShow     = "reservation.no_show"
	CommandWalkGuest  = "reservation.walk_guest"
	CommandExtendStay = "reservation.extend_stay"
	CommandAssignRoom = "reservation.assign_room"
	CommandCheckIn    = "reservation.check_in"
	CommandCheckOut   = "reservation.check_out"
)

const WalkedTag = "WALKED"

var (
	CancelTransition = Transition{
		Command:    CommandCancel,
		ValidPrior: NewStatusSet(StatusInquiry, StatusQuoted, StatusPending, StatusConfirmed),
		Target:     StatusCancelled,
	}
	NoShowTransition = Transition{
		Command:    CommandNoShow,
		ValidPrior: NewStatusSet(StatusPending, StatusConfirmed),
		Target:     StatusNoShow,
	}
	WalkTransition = Transition{
		Command:     CommandWalkGuest,
		ValidPrior:  NewStatusSet(StatusPending, StatusConfirmed),
		Target:      StatusCancelled,
		TargetLabel: WalkedTag,
	}
	ModifyTransition = Transition{
		Command:    CommandModify,
		ValidPrior: NewStatusSet(StatusInquiry, StatusQuoted, StatusPending, StatusConfirmed, StatusCheckedIn),
	}
	ExtendStayTransition = Transition{
		Command:    CommandExtendStay,
		ValidPrior: NewStatusSet(StatusPending, StatusConfirmed, StatusCheckedIn),
	}
	AssignRoomTransition = Transition{
		Command:    CommandAssignRoom,
		ValidPrior: NewStatusSet(StatusPending, StatusConfirmed, StatusCheckedIn),
	}
	CheckInTransition = Transition{
		Command:    CommandCheckIn,
		ValidPrior: NewStatusSet(StatusPending, StatusConfirmed),
		Target:     StatusCheckedIn,
	}
	CheckOutTransition = Transition{
		Command:    CommandCheckOut,
		ValidPrior: NewStatusSet(StatusCheckedIn),
		Target:     StatusCheckedOut,
	}
)

// Transitions lists every guarded command, used by the shared terminal-status test.
func Transitions() []Transition {
	return []Transition{
		CancelTransition,
		NoShowTransition,
		WalkTransition,
		ModifyTransition,
		ExtendStayTransition,
		AssignRoomTransition,
		CheckInTransition,
		CheckOutTransition,
	}
}

// InitialStatuses are the statuses a reservation may be created in.
var InitialStatuses = NewStatusSet(StatusInquiry, StatusQuoted, StatusPending, StatusConfirmed)
