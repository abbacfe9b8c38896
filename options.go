package conduit

import "log/slog"

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for delivery tracing and boundary
// diagnostics. The default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithVerbose enables debug-level tracing of every raise, delivery and
// catch.
func WithVerbose() Option {
	return func(m *Manager) {
		m.verbose = true
	}
}

// WithMetrics attaches a metrics collector to the manager.
func WithMetrics(mx *Metrics) Option {
	return func(m *Manager) {
		m.metrics = mx
	}
}
