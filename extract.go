package photometa

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/photometa/internal/binary"
	"github.com/simonhull/photometa/internal/exif"
	"github.com/simonhull/photometa/internal/interpret"
	"github.com/simonhull/photometa/internal/registry"
)

var errIsDirectory = errors.New("is a directory")

// Extract opens an image file and reads its camera metadata.
//
// Supported containers: JPEG, TIFF, PNG, WebP. The container is detected
// from its signature bytes, never from the file extension.
//
// A file without an EXIF segment is not an error: every field of the
// returned CameraMetadata is nil. Fields whose tags are present but cannot
// be interpreted are also nil and a Warning is recorded.
//
// Example:
//
//	meta, err := photometa.Extract("IMG_0001.jpg")
//	if err != nil {
//		return err
//	}
//	if meta.ShutterSpeed != nil {
//		fmt.Println("Shutter:", *meta.ShutterSpeed)
//	}
func Extract(path string, opts ...Option) (*CameraMetadata, error) {
	return ExtractContext(context.Background(), path, opts...)
}

// ExtractContext is Extract with a context that is checked before the file
// is opened and again before decoding.
func ExtractContext(ctx context.Context, path string, opts ...Option) (*CameraMetadata, error) {
	return extract(ctx, path, applyOptions(opts))
}

func extract(ctx context.Context, path string, options *extractOptions) (*CameraMetadata, error) {
	dir, format, err := readFile(ctx, path, options)
	if err != nil {
		return nil, err
	}

	meta := interpret.Interpret(dir)
	meta.Path = path
	meta.Format = format

	for _, w := range meta.Warnings {
		options.logger.Debug("field warning", "path", path, "warning", w.String())
	}
	if options.ignoreWarnings {
		meta.Warnings = nil
	}

	return &meta, nil
}

// ReadDirectory returns the decoded EXIF directory of an image file without
// interpreting it. Every tag is included, known or not.
//
// Example:
//
//	dir, err := photometa.ReadDirectory("IMG_0001.jpg")
//	if err != nil {
//		return err
//	}
//	for tag, value := range dir.All(photometa.NamespaceGPS) {
//		fmt.Printf("%s: %v\n", photometa.TagName(photometa.NamespaceGPS, tag), value)
//	}
func ReadDirectory(path string, opts ...Option) (*Directory, error) {
	dir, _, err := readFile(context.Background(), path, applyOptions(opts))
	return dir, err
}

// readFile opens path and decodes its EXIF directory. The file is closed
// before returning.
func readFile(ctx context.Context, path string, options *extractOptions) (*exif.Directory, Format, error) {
	if err := ctx.Err(); err != nil {
		return nil, FormatUnknown, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, FormatUnknown, &IOError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, FormatUnknown, &IOError{Path: path, Op: "stat", Err: err}
	}
	if stat.IsDir() {
		return nil, FormatUnknown, &IOError{Path: path, Op: "open", Err: errIsDirectory}
	}

	return readDirectory(ctx, f, stat.Size(), path, options)
}

// readDirectory runs the container and decode stages over r.
func readDirectory(ctx context.Context, r io.ReaderAt, size int64, path string, options *extractOptions) (*exif.Directory, Format, error) {
	format, err := DetectFormat(r, size, path)
	if err != nil {
		return nil, FormatUnknown, err
	}
	options.logger.Debug("format detected", "path", path, "format", format)

	reader := registry.Get(format)
	if reader == nil {
		return nil, format, &UnsupportedFormatError{
			Path:   path,
			Reason: fmt.Sprintf("no reader available for format %s", format),
		}
	}

	span, err := reader.FindSegment(r, size, path)
	if err != nil {
		return nil, format, fmt.Errorf("read %s container: %w", format, err)
	}
	options.logger.Debug("segment located", "path", path, "offset", span.Offset, "length", span.Length)

	if options.maxSegmentSize > 0 && span.Length > options.maxSegmentSize {
		return nil, format, &ContainerFormatError{
			Path:   path,
			Offset: span.Offset,
			Reason: fmt.Sprintf("EXIF segment of %d bytes exceeds limit of %d", span.Length, options.maxSegmentSize),
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, format, err
	}

	var segment []byte
	if !span.Empty() {
		segment, err = binary.NewSafeReader(r, size, path).Bytes(span.Offset, span.Length, "EXIF segment")
		if err != nil {
			return nil, format, &IOError{Path: path, Op: "read", Err: err}
		}
	}

	dir, err := exif.Decode(segment, path)
	if err != nil {
		return nil, format, fmt.Errorf("decode EXIF: %w", err)
	}
	options.logger.Debug("directory decoded", "path", path,
		"primary", dir.Len(exif.Primary),
		"exif", dir.Len(exif.ExifSpecific),
		"gps", dir.Len(exif.GPS))

	return dir, format, nil
}

// Result is the outcome of one extraction in a batch.
type Result struct {
	// Path as passed to ExtractMany
	Path string

	// Extracted metadata (nil when Err is set)
	Metadata *CameraMetadata

	// Per-file error (IOError, UnsupportedFormatError, ContainerFormatError)
	Err error
}

// ExtractMany extracts metadata from multiple files concurrently.
//
// Files are processed in parallel using up to runtime.NumCPU() goroutines,
// or the limit set with WithConcurrency. Results are returned in the same
// order as the input paths.
//
// A file that fails does not stop the batch; its error is reported in
// Result.Err. The returned error is non-nil only when ctx is cancelled.
//
// Example:
//
//	results, err := photometa.ExtractMany(ctx, paths)
//	if err != nil {
//		return err
//	}
//	for _, r := range results {
//		if r.Err != nil {
//			log.Printf("%s: %v", r.Path, r.Err)
//			continue
//		}
//		fmt.Println(r.Path, r.Metadata.Format)
//	}
func ExtractMany(ctx context.Context, paths []string, opts ...Option) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	options := applyOptions(opts)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(options.concurrency)

	results := make([]Result, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			// Only cancellation aborts the batch
			if err := gctx.Err(); err != nil {
				return err
			}

			meta, err := extract(gctx, path, options)
			results[i] = Result{Path: path, Metadata: meta, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
