package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/lifecycle"
	"stay-command-core/internal/domain/outbox"
	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/infra"
	"stay-command-core/internal/pkg/clock"
	"stay-command-core/internal/pkg/config"
	"stay-command-core/internal/pkg/telemetry"
	"stay-command-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const StatusAccepted = "accepted"

// Meta travels with every command. A zero ActorID means the configured system actor.
type Meta struct {
	TenantID      uuid.UUID
	CorrelationID string
	ActorID       uuid.UUID
}

type Accepted struct {
	EventID       uuid.UUID `json:"eventId"`
	EntityID      uuid.UUID `json:"entityId"`
	CorrelationID string    `json:"correlationId"`
	Status        string    `json:"status"`
}

type Settings struct {
	SystemActorID    uuid.UUID
	LockTimeout      time.Duration
	ReleaseTimeout   time.Duration
	SweepConcurrency int
}

func NewSettings(cfg config.Config) (Settings, error) {
	actor, err := uuid.Parse(cfg.Commands.SystemActorID)
	if err != nil {
		return Settings{}, err
	}
	concurrency := cfg.Commands.NoShowSweepConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return Settings{
		SystemActorID:    actor,
		LockTimeout:      cfg.Guard.LockTimeout,
		ReleaseTimeout:   cfg.Guard.ReleaseTimeout,
		SweepConcurrency: concurrency,
	}, nil
}

type orchestrator struct {
	uow      shared.UnitOfWork
	guard    shared.GuardClient
	ids      shared.IDGenerator
	clock    clock.Clock
	logger   *slog.Logger
	metrics  *telemetry.Instruments
	settings Settings
}

// write describes everything one command commits atomically.
type write struct {
	command       string
	aggregateType string
	entityID      uuid.UUID
	eventType     string
	payload       any
	metadata      lifecycle.Metadata
	// lock is the outcome acquired before the transaction, if any. A LOCKED
	// outcome is released again when the transaction fails.
	lock       *guard.LockResult
	supersedes string
	guardRow   *guard.Metadata
	fallback   *rate.FallbackRecord
	// apply runs first inside the transaction, before the lifecycle record.
	apply func(ctx context.Context, tx shared.Tx, eventID uuid.UUID) error
}

// begin opens the command span and fills in the system actor. The returned
// func must receive the command's final error.
func (o *orchestrator) begin(ctx context.Context, command string, meta *Meta) (context.Context, func(error)) {
	if meta.ActorID == uuid.Nil {
		meta.ActorID = o.settings.SystemActorID
	}
	return o.metrics.StartCommand(ctx, command, meta.TenantID.String())
}

func requireTenant(meta Meta) error {
	if meta.TenantID == uuid.Nil {
		return validationError("tenant id is required")
	}
	return nil
}

func (o *orchestrator) commit(ctx context.Context, meta Meta, w write) (*Accepted, error) {
	eventID, err := o.ids.NewEventID()
	if err != nil {
		return nil, o.compensate(ctx, meta, w, dependencyError(CodeTransactionFailed, "generate event id", err))
	}
	now := o.clock.Now()
	partitionKey := outbox.PartitionKey(meta.TenantID, w.entityID)

	if w.lock != nil {
		w.metadata.Guard = &lifecycle.GuardDecision{
			Status:         string(w.lock.Status),
			LockID:         w.lock.LockID,
			Message:        w.lock.Message,
			SupersededLock: w.supersedes,
		}
	}

	err = o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if w.apply != nil {
			if err := w.apply(ctx, tx, eventID); err != nil {
				return err
			}
		}

		if w.fallback != nil {
			if err := tx.RateFallbacks().Record(ctx, *w.fallback); err != nil {
				return err
			}
		}

		rec, err := lifecycle.NewRecord(lifecycle.RecordParams{
			EventID:       eventID,
			TenantID:      meta.TenantID,
			EntityID:      w.entityID,
			EntityType:    w.aggregateType,
			Command:       w.command,
			CorrelationID: meta.CorrelationID,
			PartitionKey:  partitionKey,
			ActorID:       meta.ActorID,
			Metadata:      w.metadata,
			RecordedAt:    now,
		})
		if err != nil {
			return err
		}
		if err := tx.Lifecycle().Append(ctx, rec); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return conflictError(CodeEventAlreadyRecorded, "event "+eventID.String()+" already recorded")
			}
			return err
		}

		if w.guardRow != nil {
			row := *w.guardRow
			row.TenantID = meta.TenantID
			row.UpdatedAt = now
			if err := tx.GuardLocks().Upsert(ctx, row); err != nil {
				return err
			}
		}

		entry, err := outbox.NewEntry(outbox.EntryParams{
			EventID:       eventID,
			TenantID:      meta.TenantID,
			AggregateID:   w.entityID,
			AggregateType: w.aggregateType,
			EventType:     w.eventType,
			CorrelationID: meta.CorrelationID,
			Payload:       w.payload,
			OccurredAt:    now,
		})
		if err != nil {
			return err
		}
		return tx.Outbox().Enqueue(ctx, entry)
	})
	if err != nil {
		var cmdErr *Error
		if !errors.As(err, &cmdErr) {
			cmdErr = dependencyError(CodeTransactionFailed, "transaction failed", err)
		}
		return nil, o.compensate(ctx, meta, w, cmdErr)
	}

	return &Accepted{
		EventID:       eventID,
		EntityID:      w.entityID,
		CorrelationID: meta.CorrelationID,
		Status:        StatusAccepted,
	}, nil
}

// compensate releases a lock taken for a write that never committed and
// returns cause unchanged.
func (o *orchestrator) compensate(ctx context.Context, meta Meta, w write, cause error) error {
	if w.lock == nil || !w.lock.Locked() {
		return cause
	}
	if err := o.release(ctx, meta, w.lock.LockID, w.entityID, guard.ReleaseTransactionRollback); err != nil {
		o.logger.Error("compensating lock release failed, manual cleanup required",
			"command", w.command,
			"tenant_id", meta.TenantID,
			"entity_id", w.entityID,
			"lock_id", w.lock.LockID,
			"correlation_id", meta.CorrelationID,
			"cause", cause.Error(),
			"error", err.Error())
	}
	return cause
}

func (o *orchestrator) acquireLock(ctx context.Context, meta Meta, req guard.LockRequest) (guard.LockResult, error) {
	req.TenantID = meta.TenantID
	req.CorrelationID = meta.CorrelationID
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	lockCtx, cancel := context.WithTimeout(ctx, o.settings.LockTimeout)
	defer cancel()

	res, err := o.guard.Lock(lockCtx, req)
	if err != nil {
		return guard.LockResult{}, dependencyError(CodeAvailabilityLockFailed, "availability lock failed", err)
	}
	if res.Status == guard.StatusSkipped {
		o.logger.Info("availability lock skipped",
			"tenant_id", meta.TenantID,
			"entity_id", req.ReservationID,
			"message", res.Message,
			"correlation_id", meta.CorrelationID)
	}
	return res, nil
}

// release is bounded by its own timeout and survives caller cancellation.
func (o *orchestrator) release(ctx context.Context, meta Meta, lockID string, entityID uuid.UUID, reason string) error {
	relCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.settings.ReleaseTimeout)
	defer cancel()

	err := o.guard.Release(relCtx, guard.ReleaseRequest{
		TenantID:      meta.TenantID,
		LockID:        lockID,
		ReservationID: entityID,
		Reason:        reason,
		CorrelationID: meta.CorrelationID,
	})
	o.metrics.LockReleased(ctx, reason, err == nil)
	return err
}

func (o *orchestrator) releaseAfterCommit(ctx context.Context, meta Meta, lockID string, entityID uuid.UUID, reason string) {
	if lockID == "" {
		return
	}
	o.nonCritical(ctx, "lock_release", meta, entityID, func(ctx context.Context) error {
		return o.release(ctx, meta, lockID, entityID, reason)
	}, "lock_id", lockID, "reason", reason)
}

func (o *orchestrator) loadReservation(ctx context.Context, meta Meta, id uuid.UUID) (*reservation.Snapshot, error) {
	if id == uuid.Nil {
		return nil, newError(KindValidation, CodeTargetRequired, "reservation id is required")
	}
	snap, err := o.uow.CommandReads().ReservationByID(ctx, meta.TenantID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, newError(KindNotFound, CodeReservationNotFound, "reservation "+id.String()+" not found")
		}
		return nil, dependencyError(CodeSnapshotReadFailed, "read reservation", err)
	}
	return snap, nil
}

func (o *orchestrator) loadGuardLock(ctx context.Context, meta Meta, entityID uuid.UUID) (*guard.Metadata, error) {
	m, err := o.uow.CommandReads().GuardLock(ctx, meta.TenantID, entityID)
	if err != nil {
		return nil, dependencyError(CodeSnapshotReadFailed, "read guard metadata", err)
	}
	return m, nil
}

var transitionCodes = map[string]string{
	reservation.CommandCancel:     CodeInvalidStatusForCancel,
	reservation.CommandNoShow:     CodeInvalidStatusForNoShow,
	reservation.CommandWalkGuest:  CodeInvalidStatusForWalk,
	reservation.CommandModify:     CodeInvalidStatusForModify,
	reservation.CommandExtendStay: CodeInvalidStatusForExtend,
	reservation.CommandAssignRoom: CodeInvalidStatusForAssign,
	reservation.CommandCheckIn:    CodeInvalidStatusForCheckIn,
	reservation.CommandCheckOut:   CodeInvalidStatusForCheckOut,
}

func checkTransition(tr reservation.Transition, current reservation.Status) error {
	if err := tr.Check(current); err != nil {
		return conflictError(transitionCodes[tr.Command], err.Error())
	}
	return nil
}

// resolveRate applies the fallback opt-in policy on top of the resolver's decision.
func resolveRate(ctx context.Context, rates shared.RateResolver, q rate.Query, allowFallback bool) (rate.Decision, error) {
	decision, err := rates.Resolve(ctx, q)
	if err != nil {
		return rate.Decision{}, dependencyError(CodeRateResolutionFailed, "rate resolution failed", err)
	}
	if decision.AppliedCode == "" {
		return rate.Decision{}, conflictError(CodeNoRateAvailable, "no rate available for the requested stay")
	}
	if decision.FallbackApplied && !allowFallback {
		return rate.Decision{}, newError(KindPolicyOptIn, CodeRateFallbackNotAllowed,
			"rate "+decision.RequestedCode+" unavailable ("+decision.Reason+"); fallback "+decision.AppliedCode+" requires allowRateFallback")
	}
	return decision, nil
}

func lockedRow(entityID uuid.UUID, lock guard.LockResult, reason string) *guard.Metadata {
	return &guard.Metadata{
		ReservationID: entityID,
		LockID:        lock.LockID,
		Status:        guard.StatusLocked,
		Details:       map[string]any{"reason": reason},
	}
}

// releaseRequestedRow marks a held lock as being released after commit.
func releaseRequestedRow(entityID uuid.UUID, held *guard.Metadata, reason string) *guard.Metadata {
	lockID, ok := held.HeldLockID()
	if !ok {
		return nil
	}
	return &guard.Metadata{
		ReservationID: entityID,
		LockID:        lockID,
		Status:        guard.StatusReleaseRequested,
		Details:       map[string]any{"reason": reason},
	}
}

func rawJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
