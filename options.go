package tsigo

import "log/slog"

type options struct {
	compression      Compression
	compressionSet   bool
	compressionLevel int
	logger           *Logger
}

// Option configures the file helpers ReadFile and WriteFile.
//
// Decode and Encode themselves take no options: the codec has a single
// canonical behavior.
type Option func(*options)

// WithCompression forces a compression codec, overriding the one implied by
// the file extension.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
		o.compressionSet = true
	}
}

// WithCompressionLevel tunes the compression codec. The scale depends on the
// codec (gzip 1-9, zstd 1-22, lz4 0-9); zero keeps the codec default. Reads
// ignore the level.
func WithCompressionLevel(level int) Option {
	return func(o *options) {
		o.compressionLevel = level
	}
}

// WithLogger configures structured logging for file operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
