package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/sublimegame/voxelworld/internal/logging"
)

// TracerName - имя трассировщика симулятора
const TracerName = "github.com/sublimegame/voxelworld"

// Options задаёт параметры экспорта трасс
type Options struct {
	ServiceName string
	Endpoint    string // host:port OTLP/HTTP коллектора
	RunID       string // Идентификатор запуска, попадает в service.instance.id
}

// InitTelemetry настраивает OTLP экспортер и устанавливает глобальный TracerProvider.
// Возвращает функцию shutdown, которую нужно вызвать при завершении приложения.
func InitTelemetry(ctx context.Context, opts Options) (func(context.Context) error, error) {
	exporterOpts := []otlptracehttp.Option{otlptracehttp.WithInsecure()}
	if opts.Endpoint != "" {
		exporterOpts = append(exporterOpts, otlptracehttp.WithEndpoint(opts.Endpoint))
	}
	exp, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("otlp экспортер: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(opts.ServiceName),
			attribute.String("service.instance.id", opts.RunID),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("ресурс телеметрии: %w", err)
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	logging.Info("📡 OpenTelemetry инициализирован (OTLP → %s, service=%s, run=%s)",
		opts.Endpoint, opts.ServiceName, opts.RunID)

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}
	return shutdown, nil
}

// Tracer возвращает трассировщик из глобального провайдера.
// Без InitTelemetry спаны ничего не делают.
func Tracer() oteltrace.Tracer {
	return otel.Tracer(TracerName)
}
