package runtime

import "log/slog"

// Config configures a Runtime. The zero value is usable: a default
// logger and no error hook.
type Config struct {
	// Logger receives a Debug message when a pass completes and a Warn
	// message when a background pass fails. Defaults to slog.Default().
	Logger *slog.Logger

	// OnUserError is called, in addition to logging, whenever a
	// background pass returns an error: a *vtree.UserError when a
	// component or effect panicked, or when hooks.Use re-raised the
	// error a resource factory returned, and a hooktree error type
	// otherwise. An error from Mount's first pass is returned by Mount
	// instead.
	OnUserError func(error)
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
