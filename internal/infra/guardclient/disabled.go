package guardclient

import (
	"context"

	"stay-command-core/internal/domain/guard"
)

// DisabledClient is wired when GUARD_MODE=disabled. Every lock is skipped,
// so commands still record guard metadata and never hold a lock.
type DisabledClient struct{}

func (DisabledClient) Lock(context.Context, guard.LockRequest) (guard.LockResult, error) {
	return guard.Skipped(guard.SkipGuardDisabled), nil
}

func (DisabledClient) Release(context.Context, guard.ReleaseRequest) error {
	return nil
}
