package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with an OTLP push exporter and
// returns a Recorder plus a shutdown function that flushes pending
// exports. A generator run has no scrape surface, so without an endpoint
// the recorder stays in-memory only.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	if !cfg.Enabled || cfg.OtlpEndpoint == "" {
		return NewRecorder(), noop, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "matchday-graphics"
	}

	reader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
	if err != nil {
		return nil, nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx             context.Context
	meter           metric.Meter
	fetchAttempts   metric.Int64Counter
	fetchErrors     metric.Int64Counter
	fetchLatencyMs  metric.Float64Histogram
	gamesFound      metric.Int64Counter
	graphics        metric.Int64Counter
	skips           metric.Int64Counter
	downloadErrors  metric.Int64Counter
	renderErrors    metric.Int64Counter
	renderLatencyMs metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("matchday-graphics")
	ctx := context.Background()

	fetchAttempts, err := meter.Int64Counter("schedule_fetch_attempts_total")
	if err != nil {
		return nil, err
	}
	fetchErrors, err := meter.Int64Counter("schedule_fetch_errors_total")
	if err != nil {
		return nil, err
	}
	fetchLatency, err := meter.Float64Histogram("schedule_fetch_duration_ms")
	if err != nil {
		return nil, err
	}
	gamesFound, err := meter.Int64Counter("games_found_total")
	if err != nil {
		return nil, err
	}
	graphics, err := meter.Int64Counter("graphics_produced_total")
	if err != nil {
		return nil, err
	}
	skips, err := meter.Int64Counter("graphics_skipped_total")
	if err != nil {
		return nil, err
	}
	downloadErrors, err := meter.Int64Counter("logo_download_errors_total")
	if err != nil {
		return nil, err
	}
	renderErrors, err := meter.Int64Counter("render_errors_total")
	if err != nil {
		return nil, err
	}
	renderLatency, err := meter.Float64Histogram("render_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:             ctx,
		meter:           meter,
		fetchAttempts:   fetchAttempts,
		fetchErrors:     fetchErrors,
		fetchLatencyMs:  fetchLatency,
		gamesFound:      gamesFound,
		graphics:        graphics,
		skips:           skips,
		downloadErrors:  downloadErrors,
		renderErrors:    renderErrors,
		renderLatencyMs: renderLatency,
	}, nil
}

func (o *otelInstruments) recordFetch(league string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrLeague, league)}
	o.recordCounter(o.fetchAttempts, 1, attrs...)
	o.recordHistogram(o.fetchLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.fetchErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordGamesFound(league string, count int) {
	if o == nil {
		return
	}
	o.recordCounter(o.gamesFound, int64(count), attribute.String(AttrLeague, league))
}

func (o *otelInstruments) recordGraphic(league string, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrLeague, league)}
	o.recordCounter(o.graphics, 1, attrs...)
	o.recordHistogram(o.renderLatencyMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordSkip(league, reason string) {
	if o == nil {
		return
	}
	o.recordCounter(o.skips, 1,
		attribute.String(AttrLeague, league),
		attribute.String(AttrReason, reason),
	)
}

func (o *otelInstruments) recordDownloadError(league string) {
	if o == nil {
		return
	}
	o.recordCounter(o.downloadErrors, 1, attribute.String(AttrLeague, league))
}

func (o *otelInstruments) recordRenderError(league string) {
	if o == nil {
		return
	}
	o.recordCounter(o.renderErrors, 1, attribute.String(AttrLeague, league))
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
