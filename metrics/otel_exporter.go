package metrics

import (
	"context"
	"fmt"
	"net/http"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	collector     Collector
	handler       http.Handler

	meter         metric.Meter
	statusGauge   metric.Int64ObservableGauge
	categoryGauge metric.Int64ObservableGauge
	catalogsGauge metric.Int64ObservableGauge
	usersGauge    metric.Int64ObservableGauge
}

// NewOTelExporter creates an exporter on the default Prometheus registry
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	return newOTelExporter(collector, promclient.DefaultRegisterer, promhttp.Handler())
}

// NewOTelExporterWithRegistry keeps the metrics in reg, so several exporters can coexist
func NewOTelExporterWithRegistry(collector Collector, reg *promclient.Registry) (*OTelExporter, error) {
	return newOTelExporter(collector, reg, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
}

func newOTelExporter(collector Collector, reg promclient.Registerer, handler http.Handler) (*OTelExporter, error) {
	exporter, err := prometheus.New(prometheus.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		"bookshelf",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		collector:     collector,
		handler:       handler,
		meter:         meter,
	}

	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.statusGauge, err = oe.meter.Int64ObservableGauge(
		"bookshelf.books.status",
		metric.WithDescription("Number of books by reading status in open catalogs"),
		metric.WithUnit("{books}"),
		metric.WithInt64Callback(oe.observeBookStatus),
	)
	if err != nil {
		return fmt.Errorf("creating status gauge: %w", err)
	}

	oe.categoryGauge, err = oe.meter.Int64ObservableGauge(
		"bookshelf.books.category",
		metric.WithDescription("Number of books by category in open catalogs"),
		metric.WithUnit("{books}"),
		metric.WithInt64Callback(oe.observeBookCategory),
	)
	if err != nil {
		return fmt.Errorf("creating category gauge: %w", err)
	}

	oe.catalogsGauge, err = oe.meter.Int64ObservableGauge(
		"bookshelf.catalogs.open",
		metric.WithDescription("Number of catalogs loaded in memory"),
		metric.WithUnit("{catalogs}"),
		metric.WithInt64Callback(oe.observeOpenCatalogs),
	)
	if err != nil {
		return fmt.Errorf("creating catalogs gauge: %w", err)
	}

	oe.usersGauge, err = oe.meter.Int64ObservableGauge(
		"bookshelf.users.registered",
		metric.WithDescription("Number of registered users"),
		metric.WithUnit("{users}"),
		metric.WithInt64Callback(oe.observeRegisteredUsers),
	)
	if err != nil {
		return fmt.Errorf("creating users gauge: %w", err)
	}

	return nil
}

func (oe *OTelExporter) observeBookStatus(ctx context.Context, observer metric.Int64Observer) error {
	byStatus, _, err := oe.collector.GetBookCounts(ctx)
	if err != nil {
		return err
	}
	for status, count := range byStatus {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("book.status", status),
		))
	}
	return nil
}

func (oe *OTelExporter) observeBookCategory(ctx context.Context, observer metric.Int64Observer) error {
	_, byCategory, err := oe.collector.GetBookCounts(ctx)
	if err != nil {
		return err
	}
	for category, count := range byCategory {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("book.category", category),
		))
	}
	return nil
}

func (oe *OTelExporter) observeOpenCatalogs(ctx context.Context, observer metric.Int64Observer) error {
	open, err := oe.collector.GetOpenCatalogs(ctx)
	if err != nil {
		return err
	}
	observer.Observe(open)
	return nil
}

func (oe *OTelExporter) observeRegisteredUsers(ctx context.Context, observer metric.Int64Observer) error {
	users, err := oe.collector.GetRegisteredUsers(ctx)
	if err != nil {
		return err
	}
	observer.Observe(users)
	return nil
}

// ServeHTTP returns the handler serving Prometheus-formatted metrics
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return oe.handler
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
