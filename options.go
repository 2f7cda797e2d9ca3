package hfcache

import "log/slog"

// Option configures a Locator.
type Option func(*Locator)

// WithLogger sets a logger for resolution diagnostics. By default,
// logging is disabled. Invalid fallback stages are logged at warn level
// and terminal misses at error level.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Locator) {
		l.logger = logger
	}
}

// WithEnv replaces the environment lookup function. The default is
// os.LookupEnv. Primarily useful for tests that want hermetic control
// over the environment.
func WithEnv(lookup func(key string) (value string, ok bool)) Option {
	return func(l *Locator) {
		l.env = lookup
	}
}

// WithHomeDir sets the home directory used to build the fixed default
// candidates, instead of os.UserHomeDir. Passing an empty string disables
// the default stage entirely.
func WithHomeDir(dir string) Option {
	return func(l *Locator) {
		l.home = dir
		l.homeSet = true
	}
}
