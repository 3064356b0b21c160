package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"stay-command-core/internal/domain/group"
	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/internal/infra/readstore"
	"stay-command-core/internal/infra/repository"
	"stay-command-core/internal/pkg/errs"
	"stay-command-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// Pool is the subset of *pgxpool.Pool the unit of work needs.
type Pool interface {
	pgq.DBTX
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var _ Pool = (*pgxpool.Pool)(nil)

type PostgresUoW struct {
	pool       Pool
	q          *pgq.Queries
	logger     *slog.Logger
	maxRetries int
}

func NewPostgresUoW(pool Pool, q *pgq.Queries, logger *slog.Logger, maxRetries int) shared.UnitOfWork {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		logger:     logger,
		maxRetries: maxRetries,
	}
}

// ReadCommitted plus explicit FOR UPDATE on the rows a command mutates
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

func (u *PostgresUoW) Advisory() shared.AdvisoryWrites {
	return repository.NewAdvisoryRepository(u.q, u.pool, u.logger)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	maxRetries := u.maxRetries
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if isRetryableError(err) && attempt == maxRetries {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgq.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	lifecycleRepo    shared.LifecycleRepository
	outboxRepo       shared.OutboxRepository
	guardLockRepo    shared.GuardLockRepository
	rateFallbackRepo shared.RateFallbackRepository
	walkRepo         shared.WalkRepository
	groupBlockRepo   shared.GroupBlockRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) Lifecycle() shared.LifecycleRepository {
	if t.lifecycleRepo == nil {
		t.lifecycleRepo = repository.NewLifecycleRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.lifecycleRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.outboxRepo
}

func (t *pgTx) GuardLocks() shared.GuardLockRepository {
	if t.guardLockRepo == nil {
		t.guardLockRepo = repository.NewGuardLockRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.guardLockRepo
}

func (t *pgTx) RateFallbacks() shared.RateFallbackRepository {
	if t.rateFallbackRepo == nil {
		t.rateFallbackRepo = repository.NewRateFallbackRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.rateFallbackRepo
}

func (t *pgTx) Walks() shared.WalkRepository {
	if t.walkRepo == nil {
		t.walkRepo = repository.NewWalkRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.walkRepo
}

func (t *pgTx) GroupBlocks() shared.GroupBlockRepository {
	if t.groupBlockRepo == nil {
		t.groupBlockRepo = repository.NewGroupBlockRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.groupBlockRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx pgq.DBTX

	// Lazy-initialized readstores
	reservationStore *readstore.ReservationReadStore
	guardLockStore   *readstore.GuardLockReadStore
	groupBlockStore  *readstore.GroupBlockReadStore
}

func (r *commandReads) reservations() *readstore.ReservationReadStore {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx, r.uow.logger)
	}
	return r.reservationStore
}

func (r *commandReads) ReservationByID(ctx context.Context, tenantID, id uuid.UUID) (*reservation.Snapshot, error) {
	return r.reservations().FindByID(ctx, tenantID, id)
}

func (r *commandReads) ReservationForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*reservation.Snapshot, error) {
	return r.reservations().FindByIDForUpdate(ctx, tenantID, id)
}

func (r *commandReads) NoShowCandidates(ctx context.Context, q shared.NoShowQuery) ([]uuid.UUID, error) {
	return r.reservations().NoShowCandidates(ctx, q.TenantID, q.PropertyID, q.BusinessDate)
}

func (r *commandReads) GuardLock(ctx context.Context, tenantID, reservationID uuid.UUID) (*guard.Metadata, error) {
	if r.guardLockStore == nil {
		r.guardLockStore = readstore.NewGuardLockReadStore(r.uow.q, r.dbtx, r.uow.logger)
	}
	return r.guardLockStore.FindByReservation(ctx, tenantID, reservationID)
}

func (r *commandReads) GroupBlockByID(ctx context.Context, tenantID, id uuid.UUID) (*group.Block, error) {
	if r.groupBlockStore == nil {
		r.groupBlockStore = readstore.NewGroupBlockReadStore(r.uow.q, r.dbtx, r.uow.logger)
	}
	return r.groupBlockStore.FindByID(ctx, tenantID, id)
}
