package archive

import "log/slog"

// Option configures an Archive at Open time.
type Option func(*Archive)

// WithCache enables a decode cache holding up to size recently-extracted
// entry bodies, keyed by entry id. Caching is disabled by default.
func WithCache(size int) Option {
	return func(a *Archive) {
		a.cache = newDecodeCache(size)
	}
}

// WithLogger sets the logger used for the archive's open/extract path.
// The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Archive) {
		a.log = logger
	}
}
