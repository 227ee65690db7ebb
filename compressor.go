package jwtcompression

// Compressor orchestrates decomposition and reassembly. It is immutable
// after construction and safe for concurrent use: every operation is a pure
// computation over its inputs with no shared mutable state.
type Compressor struct {
	// enabled gates whether Attach emits the compressed form. Process
	// configuration is read once at startup and passed in explicitly, so
	// the core stays a pure function of its arguments.
	enabled bool
	logger  Logger
	metrics Metrics
	tracer  Tracer
}

// New creates a Compressor with the provided options. Compression is
// disabled by default; logging, metrics, and tracing default to no-op
// implementations.
func New(opts ...Option) (*Compressor, error) {
	cp := &Compressor{
		logger:  &DefaultLogger{},
		metrics: &NoopMetrics{},
		tracer:  &NoopTracer{},
	}

	for _, opt := range opts {
		if err := opt(cp); err != nil {
			return nil, err
		}
	}

	enabled := float64(0)
	if cp.enabled {
		enabled = 1
	}
	cp.metrics.SetGauge("jwt_compression_enabled", enabled, map[string]string{"component": "compressor"})

	return cp, nil
}

// Enabled reports whether Attach will emit the compressed form.
func (cp *Compressor) Enabled() bool {
	return cp.enabled
}
