// Package timeouts holds the deadlines handlers put on store calls.
//
//   - Ping: health checks and connectivity verification
//   - Short: single-record reads, toggles and edits
//   - Medium: page recomputation and reads spanning several collections
//
// Values are set once at startup with Configure.
package timeouts

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Defaults used until Configure is called.
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
)

// Config holds timeout values. Zero fields mean "keep the current value".
type Config struct {
	Ping   time.Duration
	Short  time.Duration
	Medium time.Duration
}

func defaults() *Config {
	return &Config{Ping: DefaultPing, Short: DefaultShort, Medium: DefaultMedium}
}

var current atomic.Pointer[Config]

func init() { current.Store(defaults()) }

func Ping() time.Duration   { return current.Load().Ping }
func Short() time.Duration  { return current.Load().Short }
func Medium() time.Duration { return current.Load().Medium }

// Current returns the active configuration.
func Current() Config { return *current.Load() }

// Configure overrides the non-zero fields of cfg.
func Configure(cfg Config) {
	next := *current.Load()
	if cfg.Ping > 0 {
		next.Ping = cfg.Ping
	}
	if cfg.Short > 0 {
		next.Short = cfg.Short
	}
	if cfg.Medium > 0 {
		next.Medium = cfg.Medium
	}
	current.Store(&next)
}

// WithTimeout derives a context bounded by timeout. Its cancel func logs a
// warning when the deadline was what ended the operation.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "users page")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, op string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if log != nil && ctx.Err() == context.DeadlineExceeded {
			log.Warn("operation timed out", zap.String("operation", op), zap.Duration("timeout", timeout))
		}
		cancel()
	}
}
