package interpret

import (
	"github.com/simonhull/photometa/internal/exif"
	"github.com/simonhull/photometa/internal/types"
)

// GPS returns the signed decimal position.
//
// Latitude, longitude and both reference tags must all be present and well
// formed; otherwise the whole position is absent. A position with no GPS
// tags at all is absent without a warning.
func GPS(dir *exif.Directory) (*types.Coordinates, *types.Warning) {
	if dir.Len(exif.GPS) == 0 {
		return nil, nil
	}

	lat, w := coordinate(dir, exif.TagGPSLatitude, exif.TagGPSLatitudeRef, "N")
	if w != nil {
		return nil, w
	}
	lon, w := coordinate(dir, exif.TagGPSLongitude, exif.TagGPSLongitudeRef, "E")
	if w != nil {
		return nil, w
	}
	if lat == nil || lon == nil {
		return nil, nil
	}

	return &types.Coordinates{Latitude: *lat, Longitude: *lon}, nil
}

// coordinate reads one axis. It returns nil, nil when either tag is missing
// and a warning when a tag is present but malformed. The value is negated
// unless the reference equals positive.
func coordinate(dir *exif.Directory, valueTag, refTag exif.Tag, positive string) (*float64, *types.Warning) {
	rawValue, hasValue := dir.Lookup(exif.GPS, valueTag)
	rawRef, hasRef := dir.Lookup(exif.GPS, refTag)
	if !hasValue || !hasRef {
		return nil, nil
	}

	dms, ok := rawValue.(exif.RationalTriple)
	if !ok {
		return nil, warn("%s is not a degrees/minutes/seconds triple", exif.TagName(exif.GPS, valueTag))
	}

	ref, ok := rawRef.(exif.ByteString)
	if !ok || ref.Trimmed() == "" {
		return nil, warn("%s is missing or not a string", exif.TagName(exif.GPS, refTag))
	}

	deg, err := dmsToDegrees(dms)
	if err != nil {
		return nil, warn("%s %s: %v", exif.TagName(exif.GPS, valueTag), dms, err)
	}

	if ref.Trimmed() != positive {
		deg = -deg
	}
	return &deg, nil
}

// dmsToDegrees computes deg + min/60 + sec/3600, dividing each component
// independently.
func dmsToDegrees(t exif.RationalTriple) (float64, error) {
	var parts [3]float64
	for i, r := range t {
		v, err := r.Float64()
		if err != nil {
			return 0, err
		}
		parts[i] = v
	}
	return parts[0] + parts[1]/60 + parts[2]/3600, nil
}
