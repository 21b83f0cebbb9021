// Package trace records wake sessions as OpenTelemetry spans.
package trace

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"cyberfolio/internal/wake"
)

// SpanName is the name of the span covering one reveal.
const SpanName = "wake.reveal"

// SessionTracer turns reveal lifecycle callbacks into a single span.
type SessionTracer struct {
	tracer oteltrace.Tracer
	span   oteltrace.Span
}

var _ wake.Observer = (*SessionTracer)(nil)

// NewSessionTracer creates a tracer for one wake overlay lifetime.
func NewSessionTracer(t oteltrace.Tracer) *SessionTracer {
	return &SessionTracer{tracer: t}
}

// RevealStarted implements wake.Observer.
func (s *SessionTracer) RevealStarted(at time.Time, cue wake.CueOutcome) {
	_, s.span = s.tracer.Start(context.Background(), SpanName,
		oteltrace.WithTimestamp(at),
		oteltrace.WithAttributes(attribute.String("cyberfolio.cue", string(cue))),
	)
	if cue == wake.CueFailed {
		s.span.AddEvent("boot cue failed", oteltrace.WithTimestamp(at))
	}
}

// RevealDismissed implements wake.Observer.
func (s *SessionTracer) RevealDismissed(at time.Time) {
	s.end(at, "dismissed")
}

// RevealCancelled implements wake.Observer.
func (s *SessionTracer) RevealCancelled(at time.Time) {
	if s.span != nil {
		s.span.SetStatus(codes.Error, "overlay torn down before dismiss")
	}
	s.end(at, "cancelled")
}

func (s *SessionTracer) end(at time.Time, outcome string) {
	if s.span == nil {
		return
	}
	s.span.SetAttributes(attribute.String("cyberfolio.outcome", outcome))
	s.span.End(oteltrace.WithTimestamp(at))
	s.span = nil
}
