package guard

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusLocked           Status = "LOCKED"
	StatusSkipped          Status = "SKIPPED"
	StatusReleaseRequested Status = "RELEASE_REQUESTED"
)

// Lock request reasons.
const (
	ReasonReservationCreate = "RESERVATION_CREATE"
	ReasonReservationModify = "RESERVATION_MODIFY"
	ReasonStayExtension     = "STAY_EXTENSION"
	ReasonRoomAssignment    = "ROOM_ASSIGNMENT"
	ReasonGroupBlockCreate  = "GROUP_BLOCK_CREATE"
)

// Release reasons.
const (
	ReleaseTransactionRollback = "TRANSACTION_FAILURE_ROLLBACK"
	ReleaseCancelled           = "RESERVATION_CANCELLED"
	ReleaseModified            = "RESERVATION_MODIFIED"
	ReleaseStayExtended        = "STAY_EXTENDED"
	ReleaseRoomReassigned      = "ROOM_REASSIGNED"
	ReleaseNoShow              = "NO_SHOW"
	ReleaseGuestWalked         = "GUEST_WALKED"
	ReleaseCheckedOut          = "CHECKED_OUT"
	ReleaseGroupBlockCancelled = "GROUP_BLOCK_CANCELLED"
)

// Skip messages recorded when no lock call was needed.
const (
	SkipNoStayCriticalChanges = "NO_STAY_CRITICAL_CHANGES"
	SkipRoomAlreadyAssigned   = "ROOM_ALREADY_ASSIGNED"
	SkipCoveredByGroupBlock   = "COVERED_BY_GROUP_BLOCK"
	SkipGuardDisabled         = "GUARD_DISABLED"
)

type LockRequest struct {
	TenantID      uuid.UUID
	ReservationID uuid.UUID
	RoomTypeID    uuid.UUID
	RoomID        *uuid.UUID
	Quantity      int
	StayStart     time.Time
	StayEnd       time.Time
	Reason        string
	CorrelationID string
}

// LockResult with StatusSkipped is a normal outcome, not an error.
type LockResult struct {
	Status  Status `json:"status"`
	LockID  string `json:"lockId,omitempty"`
	Message string `json:"message,omitempty"`
}

func Skipped(message string) LockResult {
	return LockResult{Status: StatusSkipped, Message: message}
}

func (r LockResult) Locked() bool {
	return r.Status == StatusLocked && r.LockID != ""
}

type ReleaseRequest struct {
	TenantID      uuid.UUID
	LockID        string
	ReservationID uuid.UUID
	Reason        string
	CorrelationID string
}

// Metadata is the last known lock outcome per (tenant, reservation). Group
// blocks reuse the same table keyed by block id.
type Metadata struct {
	TenantID      uuid.UUID
	ReservationID uuid.UUID
	LockID        string
	Status        Status
	Details       map[string]any
	UpdatedAt     time.Time
}

// HeldLockID returns the lock id a release should target, if any.
func (m *Metadata) HeldLockID() (string, bool) {
	if m == nil || m.Status != StatusLocked || m.LockID == "" {
		return "", false
	}
	return m.LockID, true
}
