package photometa

import (
	"github.com/simonhull/photometa/internal/types"
)

// IOError is an alias to types.IOError.
// Returned when the file cannot be opened or read; it unwraps to the
// underlying *fs.PathError, so errors.Is(err, fs.ErrNotExist) works.
type IOError = types.IOError

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Re-exporting from internal/types to maintain public API.
type OutOfBoundsError = types.OutOfBoundsError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exporting from internal/types to maintain public API.
type UnsupportedFormatError = types.UnsupportedFormatError

// ContainerFormatError is an alias to types.ContainerFormatError.
// Returned when the container or its EXIF segment is structurally invalid.
type ContainerFormatError = types.ContainerFormatError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning
