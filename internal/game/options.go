package game

import (
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTracer overrides the tracer used for combat spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Session) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}
