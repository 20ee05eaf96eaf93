package photometa

// Container readers register themselves with the format registry.
import (
	_ "github.com/simonhull/photometa/internal/jpeg"
	_ "github.com/simonhull/photometa/internal/png"
	_ "github.com/simonhull/photometa/internal/tiff"
	_ "github.com/simonhull/photometa/internal/webp"
)
