package jwtcompression

import "errors"

// Option configures the Compressor.
// Returns error for validation failures.
type Option func(*Compressor) error

// Sentinel errors for configuration validation.
var (
	ErrLoggerNil  = errors.New("logger cannot be nil")
	ErrMetricsNil = errors.New("metrics cannot be nil")
	ErrTracerNil  = errors.New("tracer cannot be nil")
)

// WithCompression sets whether Attach emits the compressed fragment form.
//
// Default: false (bearer authorization entry only)
func WithCompression(enabled bool) Option {
	return func(cp *Compressor) error {
		cp.enabled = enabled
		return nil
	}
}

// WithConfig applies process configuration, typically loaded once at
// startup via ConfigFromEnv or LoadConfig.
func WithConfig(cfg Config) Option {
	return func(cp *Compressor) error {
		cp.enabled = cfg.CompressionEnabled
		return nil
	}
}

// WithLogger sets the logger used for diagnostic output. Failures inside
// Decompose, Reassemble, and Attach surface only as absent results plus a
// log line, so this is the main observability hook.
//
// Default: DefaultLogger
func WithLogger(logger Logger) Option {
	return func(cp *Compressor) error {
		if logger == nil {
			return ErrLoggerNil
		}
		cp.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics sink for outcome counters and fragment-size
// histograms.
//
// Default: NoopMetrics
func WithMetrics(metrics Metrics) Option {
	return func(cp *Compressor) error {
		if metrics == nil {
			return ErrMetricsNil
		}
		cp.metrics = metrics
		return nil
	}
}

// WithTracer sets the tracer used to span Decompose and Reassemble.
//
// Default: NoopTracer
func WithTracer(tracer Tracer) Option {
	return func(cp *Compressor) error {
		if tracer == nil {
			return ErrTracerNil
		}
		cp.tracer = tracer
		return nil
	}
}
