// Package trace starts a Datadog tracer when WKREPORT_TRACE=1, so
// scheduled report runs can be followed alongside the services that
// consume them.
package trace

import (
	"context"
	"os"

	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

var (
	globalDDTraceID string
	globalDDSpanID  string
)

// MaybeTrace starts the tracer if tracing is enabled and reports
// whether it did; the caller owns calling tracer.Stop. DD_TRACE_ID
// and DD_SPAN_ID, when set by the invoking job, become the parent of
// every span we start, and are scrubbed from the environment so
// subprocesses do not re-parent onto them.
func MaybeTrace(serviceVersion string) bool {
	if os.Getenv("WKREPORT_TRACE") != "1" {
		return false
	}

	globalDDTraceID = os.Getenv("DD_TRACE_ID")
	globalDDSpanID = os.Getenv("DD_SPAN_ID")
	os.Unsetenv("DD_TRACE_ID")
	os.Unsetenv("DD_SPAN_ID")

	opts := []tracer.StartOption{
		tracer.WithService("wkreport"),
		tracer.WithServiceVersion(serviceVersion),
	}
	if logger, err := NewDatadogLogger(); err == nil {
		opts = append(opts, tracer.WithLogger(logger))
	}

	tracer.Start(opts...)
	return true
}

func StartSpanFromExistingContext(name string) (ddtrace.Span, context.Context) {
	ctx := context.Background()
	parentContext, _ := GetParentContext()
	if parentContext == nil {
		return tracer.StartSpanFromContext(ctx, name)
	}
	return tracer.StartSpanFromContext(ctx, name, WithParentContext(parentContext))
}

func GetParentContext() (*SpanContext, error) {
	traceID := globalDDTraceID
	spanID := globalDDSpanID
	if traceID == "" || spanID == "" {
		return nil, nil
	}
	parentContext := &SpanContext{}
	err := parentContext.ParseTraceID(traceID)
	if err != nil {
		return nil, err
	}
	err = parentContext.ParseSpanID(spanID)
	if err != nil {
		return nil, err
	}
	return parentContext, nil
}

func WithParentContext(c *SpanContext) ddtrace.StartSpanOption {
	return func(cfg *ddtrace.StartSpanConfig) {
		cfg.Parent = c
	}
}
