package components

import (
	"stay-command-core/internal/handler"
	"stay-command-core/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCommandHandler,
	),
	fx.Invoke(handler.NewRouter),
)
