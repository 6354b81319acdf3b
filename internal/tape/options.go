package tape

import (
	"io"
	"log/slog"
)

// DefaultChunkSize is the number of nodes per storage chunk.
const DefaultChunkSize = 4096

// Option configures an Arena.
type Option func(*options)

type options struct {
	chunkSize int
	maxNodes  int
	logger    *slog.Logger
}

func defaultOptions() *options {
	return &options{
		chunkSize: DefaultChunkSize,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithChunkSize sets the number of nodes per chunk. It is rounded up to a
// power of two; values below 1 keep the default.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n < 1 {
			return
		}
		size := 1
		for size < n {
			size <<= 1
		}
		o.chunkSize = size
	}
}

// WithMaxNodes caps the number of live nodes. Zero means unlimited.
func WithMaxNodes(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxNodes = n
		}
	}
}

// WithLogger sets the logger used for growth and rewind events.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
