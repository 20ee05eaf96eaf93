package photometa

import (
	"log/slog"
	"runtime"
)

// Option configures behavior when extracting metadata.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	meta, err := photometa.Extract("IMG_0001.jpg",
//	    photometa.WithIgnoreWarnings(),
//	    photometa.WithMaxSegmentSize(1<<20),
//	)
type Option func(*extractOptions)

// extractOptions holds configuration for an extraction call.
type extractOptions struct {
	logger         *slog.Logger
	ignoreWarnings bool  // Drop field warnings
	maxSegmentSize int64 // Maximum EXIF segment size in bytes (0 = no limit)
	concurrency    int   // Parallel extractions in ExtractMany
}

// defaultOptions returns the default configuration.
func defaultOptions() *extractOptions {
	return &extractOptions{
		logger:      slog.New(slog.DiscardHandler),
		concurrency: runtime.NumCPU(),
	}
}

func applyOptions(opts []Option) *extractOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithLogger sets the logger that receives debug records about each
// extraction stage: detected format, segment location, decoded entry counts
// and field warnings.
//
// By default nothing is logged.
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	meta, err := photometa.Extract("IMG_0001.jpg", photometa.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(o *extractOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default, tags that are present but cannot be interpreted (a zero
// denominator, a malformed date) are reported in CameraMetadata.Warnings.
// This option discards them. The affected fields stay nil either way.
func WithIgnoreWarnings() Option {
	return func(o *extractOptions) {
		o.ignoreWarnings = true
	}
}

// WithMaxSegmentSize sets a maximum size for the EXIF segment.
//
// A larger segment fails with ContainerFormatError before it is read.
// For TIFF files the segment is the whole file, so this also bounds how
// much of a TIFF is loaded into memory.
//
// Default is 0 (no limit).
//
// Example:
//
//	// Refuse segments over 4MB
//	meta, err := photometa.Extract("scan.tif",
//	    photometa.WithMaxSegmentSize(4*1024*1024),
//	)
func WithMaxSegmentSize(bytes int64) Option {
	return func(o *extractOptions) {
		o.maxSegmentSize = bytes
	}
}

// WithConcurrency sets how many files ExtractMany processes at once.
// Values below 1 keep the default of runtime.NumCPU().
func WithConcurrency(n int) Option {
	return func(o *extractOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
