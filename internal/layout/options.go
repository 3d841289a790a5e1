package layout

import "go.uber.org/zap"

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the engine's initial configuration.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg.clone()
	}
}

// WithLogger sets the logger used for diagnostics and tracing.
// A nil logger disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log == nil {
			log = zap.NewNop()
		}
		e.log = log
	}
}

// clone returns a copy of c that does not share WrapCount with c.
func (c Config) clone() Config {
	if c.WrapCount != nil {
		c.WrapCount = WrapAfter(*c.WrapCount)
	}
	return c
}
