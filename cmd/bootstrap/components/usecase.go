package components

import (
	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/pkg/clock"
	"stay-command-core/internal/usecase/commands"
	"stay-command-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewUUIDv7Generator,
	commands.NewSettings,
	fx.Annotate(
		rate.NewResolver,
		fx.As(new(shared.RateResolver)),
	),
	fx.Annotate(
		reservation.NewFeeCalculator,
		fx.As(new(shared.FeeCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewGroupCommands,
	),
)
