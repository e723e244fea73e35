package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryMetrics handles custom metrics for Sentry
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client. Pass enabled=false
// when no DSN is configured; every recorder is then a no-op.
func NewSentryMetrics(enabled bool) *SentryMetrics {
	return &SentryMetrics{enabled: enabled}
}

// RecordConversion records one CSV to SFZ conversion
func (m *SentryMetrics) RecordConversion(ctx context.Context, csvPath string, duration time.Duration, outBytes int, err error) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "csv2sfz.convert")
	defer span.Finish()

	// Set span tags and data
	span.SetTag("csv_path", csvPath)
	span.SetTag("success", fmt.Sprintf("%t", err == nil))
	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("output_bytes", outBytes)

	if err != nil {
		span.Status = sentry.SpanStatusInternalError
		sentry.CaptureException(err)
	} else {
		span.Status = sentry.SpanStatusOK
	}
	span.Description = fmt.Sprintf("Convert: %s", csvPath)
}

// RecordRun records a whole directory run
func (m *SentryMetrics) RecordRun(ctx context.Context, root string, files, failed int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "csv2sfz.run")
	defer span.Finish()

	span.SetTag("root", root)
	span.SetTag("failed", fmt.Sprintf("%d", failed))
	span.SetData("files", files)
	span.SetData("duration_ms", duration.Milliseconds())

	if failed > 0 {
		span.Status = sentry.SpanStatusInternalError
	} else {
		span.Status = sentry.SpanStatusOK
	}
	span.Description = fmt.Sprintf("Run: %s (%d files)", root, files)
}
