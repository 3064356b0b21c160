//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"stay-command-core/internal/pkg/pgconv"
	"stay-command-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// InsertReservation writes a projection row the way the reservation projection would.
func InsertReservation(t *testing.T, db DBLike, b *builder.ReservationBuilder) uuid.UUID {
	t.Helper()

	row := b.BuildRow()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations (
		    id, tenant_id, property_id, room_type_id, room_id, guest_id, group_block_id,
		    status, check_in_date, check_out_date, rate_code, room_rate, total_amount,
		    currency, adults, children, notes, cancellation_policy
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		row.ID, row.TenantID, row.PropertyID, row.RoomTypeID, row.RoomID, row.GuestID, row.GroupBlockID,
		row.Status, row.CheckInDate, row.CheckOutDate, row.RateCode, row.RoomRate, row.TotalAmount,
		row.Currency, row.Adults, row.Children, row.Notes, row.CancellationPolicy)
	require.NoError(t, err)
	return row.ID
}

func InsertRatePlan(t *testing.T, db DBLike, tenantID, propertyID, roomTypeID uuid.UUID, code string, rank int, amount decimal.Decimal) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO rate_plans (tenant_id, property_id, room_type_id, code, active, rank, amount)
		VALUES ($1, $2, $3, $4, true, $5, $6)`,
		tenantID, propertyID, roomTypeID, code, rank, pgconv.DecimalToPgtype(amount))
	require.NoError(t, err)
}

func InsertRoom(t *testing.T, db DBLike, tenantID, propertyID, roomTypeID uuid.UUID, number, status string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO rooms (id, tenant_id, property_id, room_type_id, room_number, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		roomID, tenantID, propertyID, roomTypeID, number, status)
	require.NoError(t, err)
	return roomID
}

// SeedReferenceData is a hook for data every test expects; the schema needs none today.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
