package commands

import "fmt"

type Kind string

const (
	KindValidation  Kind = "VALIDATION"
	KindNotFound    Kind = "NOT_FOUND"
	KindConflict    Kind = "BUSINESS_RULE_CONFLICT"
	KindPolicyOptIn Kind = "POLICY_OPT_IN_REQUIRED"
	KindDependency  Kind = "DEPENDENCY_FAILURE"
)

const (
	CodeValidation               = "VALIDATION_ERROR"
	CodeTargetRequired           = "TARGET_REQUIRED"
	CodeReservationNotFound      = "RESERVATION_NOT_FOUND"
	CodeGroupBlockNotFound       = "GROUP_BLOCK_NOT_FOUND"
	CodeInvalidStatusForCancel   = "INVALID_STATUS_FOR_CANCEL"
	CodeInvalidStatusForNoShow   = "INVALID_STATUS_FOR_NO_SHOW"
	CodeInvalidStatusForWalk     = "INVALID_STATUS_FOR_WALK"
	CodeInvalidStatusForModify   = "INVALID_STATUS_FOR_MODIFY"
	CodeInvalidStatusForExtend   = "INVALID_STATUS_FOR_EXTEND_STAY"
	CodeInvalidStatusForAssign   = "INVALID_STATUS_FOR_ASSIGN_ROOM"
	CodeInvalidStatusForCheckIn  = "INVALID_STATUS_FOR_CHECK_IN"
	CodeInvalidStatusForCheckOut = "INVALID_STATUS_FOR_CHECK_OUT"
	CodeInvalidStatusGroupCancel = "INVALID_STATUS_FOR_GROUP_CANCEL"
	CodeRateFallbackNotAllowed   = "RATE_FALLBACK_NOT_ALLOWED"
	CodeNoRateAvailable          = "NO_RATE_AVAILABLE"
	CodeGroupBlockExhausted      = "GROUP_BLOCK_EXHAUSTED"
	CodeGroupBlockClosed         = "GROUP_BLOCK_CLOSED"
	CodeEventAlreadyRecorded     = "EVENT_ALREADY_RECORDED"
	CodeReservationAlreadyWalked = "RESERVATION_ALREADY_WALKED"
	CodeNoShowSweepInProgress    = "NO_SHOW_SWEEP_IN_PROGRESS"
	CodeAvailabilityLockFailed   = "AVAILABILITY_LOCK_FAILED"
	CodeRateResolutionFailed     = "RATE_RESOLUTION_FAILED"
	CodeSnapshotReadFailed       = "SNAPSHOT_READ_FAILED"
	CodeTransactionFailed        = "TRANSACTION_FAILED"
	CodeSweepLockFailed          = "SWEEP_LOCK_FAILED"
	CodeUnknownCommand           = "UNKNOWN_COMMAND"
)

// Error is the only error type handlers return. Two errors are equal for
// errors.Is when their codes match; dependency failures unwrap to their cause.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func (e *Error) ErrorCode() string {
	return e.Code
}

// Sentinels for errors.Is comparisons.
var (
	ErrValidation               = &Error{Kind: KindValidation, Code: CodeValidation}
	ErrTargetRequired           = &Error{Kind: KindValidation, Code: CodeTargetRequired}
	ErrReservationNotFound      = &Error{Kind: KindNotFound, Code: CodeReservationNotFound}
	ErrGroupBlockNotFound       = &Error{Kind: KindNotFound, Code: CodeGroupBlockNotFound}
	ErrInvalidStatusForCancel   = &Error{Kind: KindConflict, Code: CodeInvalidStatusForCancel}
	ErrInvalidStatusForNoShow   = &Error{Kind: KindConflict, Code: CodeInvalidStatusForNoShow}
	ErrInvalidStatusForWalk     = &Error{Kind: KindConflict, Code: CodeInvalidStatusForWalk}
	ErrInvalidStatusForModify   = &Error{Kind: KindConflict, Code: CodeInvalidStatusForModify}
	ErrRateFallbackNotAllowed   = &Error{Kind: KindPolicyOptIn, Code: CodeRateFallbackNotAllowed}
	ErrNoRateAvailable          = &Error{Kind: KindConflict, Code: CodeNoRateAvailable}
	ErrGroupBlockExhausted      = &Error{Kind: KindConflict, Code: CodeGroupBlockExhausted}
	ErrEventAlreadyRecorded     = &Error{Kind: KindConflict, Code: CodeEventAlreadyRecorded}
	ErrReservationAlreadyWalked = &Error{Kind: KindConflict, Code: CodeReservationAlreadyWalked}
	ErrNoShowSweepInProgress    = &Error{Kind: KindConflict, Code: CodeNoShowSweepInProgress}
	ErrAvailabilityLockFailed   = &Error{Kind: KindDependency, Code: CodeAvailabilityLockFailed}
	ErrTransactionFailed        = &Error{Kind: KindDependency, Code: CodeTransactionFailed}
	ErrUnknownCommand           = &Error{Kind: KindNotFound, Code: CodeUnknownCommand, Message: "unknown command"}
)

func newError(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func validationError(message string) *Error {
	return newError(KindValidation, CodeValidation, message)
}

func conflictError(code, message string) *Error {
	return newError(KindConflict, code, message)
}

func dependencyError(code, message string, cause error) *Error {
	return &Error{Kind: KindDependency, Code: code, Message: message, cause: cause}
}
