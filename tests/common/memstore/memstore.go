//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for command tests.
// Writes made inside Within become visible only when the callback succeeds.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"stay-command-core/internal/domain/group"
	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/lifecycle"
	"stay-command-core/internal/domain/outbox"
	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/infra"
	"stay-command-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Operation names accepted by FailOn.
const (
	OpLifecycleAppend   = "lifecycle.append"
	OpOutboxEnqueue     = "outbox.enqueue"
	OpGuardLockUpsert   = "guard_lock.upsert"
	OpFallbackRecord    = "rate_fallback.record"
	OpWalkCreate        = "walk.create"
	OpBlockCreate       = "group_block.create"
	OpBlockIncrement    = "group_block.increment"
	OpBlockStatus       = "group_block.status"
	OpReadReservation   = "read.reservation"
	OpReadGuardLock     = "read.guard_lock"
	OpReadCandidates    = "read.candidates"
	OpAdvisoryNoShow    = "advisory.no_show"
	OpAdvisoryRoom      = "advisory.room"
	OpCommit            = "commit"
	dupEventLifecycleOp = "lifecycle.duplicate"
)

type key struct {
	tenant uuid.UUID
	id     uuid.UUID
}

type NoShowMark struct {
	Fee decimal.Decimal
	At  time.Time
}

type state struct {
	lifecycle []lifecycle.Record
	outbox    []outbox.Entry
	guardRows map[key]guard.Metadata
	fallbacks []rate.FallbackRecord
	walks     []reservation.WalkRecord
	blocks    map[key]group.Block
}

func (s state) clone() state {
	out := state{
		lifecycle: append([]lifecycle.Record(nil), s.lifecycle...),
		outbox:    append([]outbox.Entry(nil), s.outbox...),
		guardRows: make(map[key]guard.Metadata, len(s.guardRows)),
		fallbacks: append([]rate.FallbackRecord(nil), s.fallbacks...),
		walks:     append([]reservation.WalkRecord(nil), s.walks...),
		blocks:    make(map[key]group.Block, len(s.blocks)),
	}
	for k, v := range s.guardRows {
		out.guardRows[k] = v
	}
	for k, v := range s.blocks {
		out.blocks[k] = v
	}
	return out
}

type Store struct {
	txMu         sync.Mutex
	mu           sync.Mutex
	committed    state
	reservations map[key]reservation.Snapshot
	noShows      map[key]NoShowMark
	roomStatus   map[key]string
	failures     map[string]error
	entityFails  map[opKey]error
	transactions int
}

type opKey struct {
	op string
	id uuid.UUID
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{
		committed: state{
			guardRows: map[key]guard.Metadata{},
			blocks:    map[key]group.Block{},
		},
		reservations: map[key]reservation.Snapshot{},
		noShows:      map[key]NoShowMark{},
		roomStatus:   map[key]string{},
		failures:     map[string]error{},
		entityFails:  map[opKey]error{},
	}
}

// FailOn makes every later call of op return err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// FailLifecycleAsDuplicate makes the next lifecycle inserts fail with a unique violation.
func (s *Store) FailLifecycleAsDuplicate() {
	s.FailOn(dupEventLifecycleOp, infra.RepositoryError{Kind: infra.KindDuplicateKey})
}

// FailOnEntity fails op only for writes about the given entity. It applies to
// OpLifecycleAppend and OpOutboxEnqueue.
func (s *Store) FailOnEntity(op string, entityID uuid.UUID, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entityFails[opKey{op, entityID}] = err
}

func (s *Store) fail(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures[op]
}

func (s *Store) failFor(op string, entityID uuid.UUID) error {
	if err := s.fail(op); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entityFails[opKey{op, entityID}]
}

func (s *Store) PutReservation(snap reservation.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[key{snap.TenantID, snap.ID}] = snap
}

func (s *Store) PutGuardLock(m guard.Metadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed.guardRows[key{m.TenantID, m.ReservationID}] = m
}

func (s *Store) PutBlock(b group.Block) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed.blocks[key{b.TenantID, b.ID}] = b
}

func (s *Store) Lifecycle() []lifecycle.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]lifecycle.Record(nil), s.committed.lifecycle...)
}

func (s *Store) Outbox() []outbox.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]outbox.Entry(nil), s.committed.outbox...)
}

func (s *Store) Fallbacks() []rate.FallbackRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]rate.FallbackRecord(nil), s.committed.fallbacks...)
}

func (s *Store) Walks() []reservation.WalkRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]reservation.WalkRecord(nil), s.committed.walks...)
}

func (s *Store) GuardRow(tenantID, id uuid.UUID) (guard.Metadata, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.committed.guardRows[key{tenantID, id}]
	return m, ok
}

func (s *Store) Block(tenantID, id uuid.UUID) (group.Block, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.committed.blocks[key{tenantID, id}]
	return b, ok
}

func (s *Store) NoShow(tenantID, id uuid.UUID) (NoShowMark, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.noShows[key{tenantID, id}]
	return m, ok
}

func (s *Store) RoomStatus(tenantID, roomID uuid.UUID) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomStatus[key{tenantID, roomID}]
}

// Transactions counts Within calls, committed or not.
func (s *Store) Transactions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transactions
}

// Within stages writes on a copy and swaps it in on success. Transactions are
// serialized, which stands in for the row locks of the real store.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	s.transactions++
	staged := s.committed.clone()
	s.mu.Unlock()

	tx := &memTx{store: s, staged: &staged}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := s.fail(OpCommit); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed = staged
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{store: s}
}

func (s *Store) Advisory() shared.AdvisoryWrites {
	return &advisory{store: s}
}

type memTx struct {
	store  *Store
	staged *state
}

func (t *memTx) Lifecycle() shared.LifecycleRepository { return (*lifecycleRepo)(t) }
func (t *memTx) Outbox() shared.OutboxRepository { return (*outboxRepo)(t) }
func (t *memTx) GuardLocks() shared.GuardLockRepository { return (*guardRepo)(t) }
func (t *memTx) RateFallbacks() shared.RateFallbackRepository { return (*fallbackRepo)(t) }
func (t *memTx) Walks() shared.WalkRepository { return (*walkRepo)(t) }
func (t *memTx) GroupBlocks() shared.GroupBlockRepository { return (*blockRepo)(t) }
func (t *memTx) Reads() shared.CommandReads { return &reads{store: t.store, staged: t.staged} }

type lifecycleRepo memTx

func (r *lifecycleRepo) Append(_ context.Context, rec lifecycle.Record) error {
	if err := r.store.fail(dupEventLifecycleOp); err != nil {
		return err
	}
	if err := r.store.failFor(OpLifecycleAppend, rec.EntityID); err != nil {
		return err
	}
	for _, prev := range r.staged.lifecycle {
		if prev.EventID == rec.EventID {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey}
		}
	}
	r.staged.lifecycle = append(r.staged.lifecycle, rec)
	return nil
}

type outboxRepo memTx

func (r *outboxRepo) Enqueue(_ context.Context, entry outbox.Entry) error {
	if err := r.store.failFor(OpOutboxEnqueue, entry.AggregateID); err != nil {
		return err
	}
	r.staged.outbox = append(r.staged.outbox, entry)
	return nil
}

type guardRepo memTx

func (r *guardRepo) Upsert(_ context.Context, m guard.Metadata) error {
	if err := r.store.fail(OpGuardLockUpsert); err != nil {
		return err
	}
	r.staged.guardRows[key{m.TenantID, m.ReservationID}] = m
	return nil
}

type fallbackRepo memTx

func (r *fallbackRepo) Record(_ context.Context, rec rate.FallbackRecord) error {
	if err := r.store.fail(OpFallbackRecord); err != nil {
		return err
	}
	r.staged.fallbacks = append(r.staged.fallbacks, rec)
	return nil
}

type walkRepo memTx

func (r *walkRepo) Create(_ context.Context, rec reservation.WalkRecord) error {
	if err := r.store.fail(OpWalkCreate); err != nil {
		return err
	}
	for _, w := range r.staged.walks {
		if w.TenantID == rec.TenantID && w.ReservationID == rec.ReservationID {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey}
		}
	}
	r.staged.walks = append(r.staged.walks, rec)
	return nil
}

type blockRepo memTx

func (r *blockRepo) Create(_ context.Context, b group.Block) error {
	if err := r.store.fail(OpBlockCreate); err != nil {
		return err
	}
	k := key{b.TenantID, b.ID}
	if _, ok := r.staged.blocks[k]; ok {
		return infra.RepositoryError{Kind: infra.KindDuplicateKey}
	}
	r.staged.blocks[k] = b
	return nil
}

func (r *blockRepo) LockForPickup(_ context.Context, tenantID, blockID uuid.UUID) (*group.Block, error) {
	b, ok := r.staged.blocks[key{tenantID, blockID}]
	if !ok {
		return nil, infra.NotFound("group block not found")
	}
	return &b, nil
}

func (r *blockRepo) IncrementPickup(_ context.Context, tenantID, blockID uuid.UUID) error {
	if err := r.store.fail(OpBlockIncrement); err != nil {
		return err
	}
	k := key{tenantID, blockID}
	b, ok := r.staged.blocks[k]
	if !ok || !b.Status.IsOpen() || b.PickedUp >= b.RoomCount {
		return group.ErrBlockExhausted
	}
	b.PickedUp++
	r.staged.blocks[k] = b
	return nil
}

func (r *blockRepo) UpdateStatus(_ context.Context, tenantID, blockID uuid.UUID, status group.Status) error {
	if err := r.store.fail(OpBlockStatus); err != nil {
		return err
	}
	k := key{tenantID, blockID}
	b, ok := r.staged.blocks[k]
	if !ok {
		return infra.NotFound("group block not found")
	}
	b.Status = status
	r.staged.blocks[k] = b
	return nil
}

type reads struct {
	store  *Store
	staged *state
}

func (r *reads) ReservationByID(_ context.Context, tenantID, id uuid.UUID) (*reservation.Snapshot, error) {
	if err := r.store.fail(OpReadReservation); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	snap, ok := r.store.reservations[key{tenantID, id}]
	if !ok {
		return nil, infra.NotFound("reservation not found")
	}
	return &snap, nil
}

func (r *reads) ReservationForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*reservation.Snapshot, error) {
	return r.ReservationByID(ctx, tenantID, id)
}

func (r *reads) GuardLock(_ context.Context, tenantID, reservationID uuid.UUID) (*guard.Metadata, error) {
	if err := r.store.fail(OpReadGuardLock); err != nil {
		return nil, err
	}
	rows := r.rows()
	m, ok := rows.guardRows[key{tenantID, reservationID}]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *reads) NoShowCandidates(_ context.Context, q shared.NoShowQuery) ([]uuid.UUID, error) {
	if err := r.store.fail(OpReadCandidates); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []reservation.Snapshot
	for k, snap := range r.store.reservations {
		if k.tenant != q.TenantID || snap.PropertyID != q.PropertyID {
			continue
		}
		if snap.Status != reservation.StatusPending && snap.Status != reservation.StatusConfirmed {
			continue
		}
		if snap.Stay.CheckIn.After(q.BusinessDate) {
			continue
		}
		if _, marked := r.store.noShows[k]; marked {
			continue
		}
		out = append(out, snap)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Stay.CheckIn.Equal(out[j].Stay.CheckIn) {
			return out[i].Stay.CheckIn.Before(out[j].Stay.CheckIn)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	ids := make([]uuid.UUID, len(out))
	for i, snap := range out {
		ids[i] = snap.ID
	}
	return ids, nil
}

func (r *reads) GroupBlockByID(_ context.Context, tenantID, id uuid.UUID) (*group.Block, error) {
	rows := r.rows()
	b, ok := rows.blocks[key{tenantID, id}]
	if !ok {
		return nil, infra.NotFound("group block not found")
	}
	return &b, nil
}

func (r *reads) rows() state {
	if r.staged != nil {
		return *r.staged
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.committed.clone()
}

type advisory struct {
	store *Store
}

func (a *advisory) MarkNoShow(_ context.Context, tenantID, reservationID uuid.UUID, fee decimal.Decimal, at time.Time) error {
	if err := a.store.fail(OpAdvisoryNoShow); err != nil {
		return err
	}
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	a.store.noShows[key{tenantID, reservationID}] = NoShowMark{Fee: fee, At: at}
	return nil
}

func (a *advisory) ReleaseRoom(_ context.Context, tenantID, roomID uuid.UUID, status string) error {
	if err := a.store.fail(OpAdvisoryRoom); err != nil {
		return err
	}
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	a.store.roomStatus[key{tenantID, roomID}] = status
	return nil
}
