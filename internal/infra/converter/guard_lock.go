package converter

import (
	"encoding/json"
	"fmt"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/infra/pgq"
)

func GuardLockFromRow(row pgq.GetGuardLockRow) (*guard.Metadata, error) {
	meta := &guard.Metadata{
		TenantID:      row.TenantID,
		ReservationID: row.ReservationID,
		Status:        guard.Status(row.Status),
	}
	if row.LockID.Valid {
		meta.LockID = row.LockID.String
	}
	if row.UpdatedAt.Valid {
		meta.UpdatedAt = row.UpdatedAt.Time
	}
	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &meta.Details); err != nil {
			return nil, fmt.Errorf("guard lock metadata: %w", err)
		}
	}
	return meta, nil
}
