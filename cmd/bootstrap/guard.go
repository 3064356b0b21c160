package bootstrap

import (
	"net/http"

	"stay-command-core/internal/infra/guardclient"
	"stay-command-core/internal/pkg/config"
	"stay-command-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var GuardModule = fx.Module("guard",
	fx.Provide(
		NewGuardClient,
	),
)

func NewGuardClient(cfg config.Config) shared.GuardClient {
	if cfg.Guard.Mode == config.GuardModeDisabled {
		return guardclient.DisabledClient{}
	}
	return guardclient.NewHTTPClient(cfg.Guard.BaseURL, &http.Client{
		Timeout: cfg.Guard.LockTimeout + cfg.Guard.ReleaseTimeout,
	})
}
