// Package telemetry holds the OpenTelemetry instruments used by the command
// handlers. Exporters are configured by the process; without one the global
// no-op providers are used.
package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "stay-command-core/commands"

type Instruments struct {
	tracer          trace.Tracer
	commandsTotal   metric.Int64Counter
	rejectedTotal   metric.Int64Counter
	commandDuration metric.Float64Histogram
	compensations   metric.Int64Counter
	effectFailures  metric.Int64Counter
}

func New() (*Instruments, error) {
	meter := otel.Meter(instrumentationName)

	commandsTotal, err := meter.Int64Counter(
		"stay_commands_accepted_total",
		metric.WithDescription("Commands accepted and committed"),
	)
	if err != nil {
		return nil, err
	}

	rejectedTotal, err := meter.Int64Counter(
		"stay_commands_rejected_total",
		metric.WithDescription("Commands rejected or failed, by error code"),
	)
	if err != nil {
		return nil, err
	}

	commandDuration, err := meter.Float64Histogram(
		"stay_command_duration_seconds",
		metric.WithDescription("Command processing duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	compensations, err := meter.Int64Counter(
		"stay_lock_releases_total",
		metric.WithDescription("Availability lock releases, by reason and outcome"),
	)
	if err != nil {
		return nil, err
	}

	effectFailures, err := meter.Int64Counter(
		"stay_noncritical_effect_failures_total",
		metric.WithDescription("Best-effort side effects that failed after commit"),
	)
	if err != nil {
		return nil, err
	}

	return &Instruments{
		tracer:          otel.Tracer(instrumentationName),
		commandsTotal:   commandsTotal,
		rejectedTotal:   rejectedTotal,
		commandDuration: commandDuration,
		compensations:   compensations,
		effectFailures:  effectFailures,
	}, nil
}

// Coder lets the caller report a typed error code without this package
// depending on the command error type.
type Coder interface {
	ErrorCode() string
}

// StartCommand opens the command span. The returned func must be called with
// the command outcome.
func (i *Instruments) StartCommand(ctx context.Context, command, tenantID string) (context.Context, func(err error)) {
	start := time.Now()
	ctx, span := i.tracer.Start(ctx, command,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("command.name", command),
			attribute.String("tenant.id", tenantID),
		),
	)

	return ctx, func(err error) {
		attrs := []attribute.KeyValue{attribute.String("command", command)}
		if err != nil {
			code := "INTERNAL"
			var c Coder
			if errors.As(err, &c) {
				code = c.ErrorCode()
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, code)
			i.rejectedTotal.Add(ctx, 1, metric.WithAttributes(append(attrs, attribute.String("code", code))...))
		} else {
			span.SetStatus(codes.Ok, "")
			i.commandsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
		}
		i.commandDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attrs...))
		span.End()
	}
}

func (i *Instruments) LockReleased(ctx context.Context, reason string, ok bool) {
	i.compensations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
		attribute.Bool("ok", ok),
	))
}

func (i *Instruments) EffectFailed(ctx context.Context, effect string) {
	i.effectFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("effect", effect)))
	trace.SpanFromContext(ctx).AddEvent("noncritical_effect_failed", trace.WithAttributes(attribute.String("effect", effect)))
}
