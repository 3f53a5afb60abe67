// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/microsoft/gpt-partition-types/toolkit/tools/internal/logger"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/internal/osinfo"
	autoexport "go.opentelemetry.io/contrib/exporters/autoexport"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	ServiceName = "partitiontypes"

	otlpEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

var tracerProvider *sdktrace.TracerProvider

// InitTelemetry installs an OTLP span exporter when an endpoint is configured.
// Without one the global no-op tracer provider stays in place.
func InitTelemetry(disableTelemetry bool, toolVersion string) error {
	if disableTelemetry {
		logger.Log.Debug("Telemetry collection disabled")
		return nil
	}

	if os.Getenv(otlpEndpointEnv) == "" {
		logger.Log.Debugf("%s is not set, telemetry will not be collected", otlpEndpointEnv)
		return nil
	}

	exporter, err := autoexport.NewSpanExporter(context.Background())
	if err != nil {
		return fmt.Errorf("failed to create span exporter:\n%w", err)
	}

	distro, version := osinfo.GetDistroAndVersion()

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(ServiceName),
			semconv.ServiceVersionKey.String(toolVersion),
			attribute.String("host.architecture", runtime.GOARCH),
			attribute.String("host.os", distro),
			attribute.String("host.os.version", version),
		),
	)
	if err != nil {
		// Schema URL conflicts still return a usable resource.
		logger.Log.Debugf("Telemetry resource merge reported:\n%s", err)
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)
	return nil
}

func ShutdownTelemetry(ctx context.Context) error {
	if tracerProvider == nil {
		return nil
	}

	provider := tracerProvider
	tracerProvider = nil

	err := provider.ForceFlush(ctx)
	if err != nil {
		logger.Log.Warnf("Failed to flush telemetry spans:\n%s", err)
	}

	return provider.Shutdown(ctx)
}
