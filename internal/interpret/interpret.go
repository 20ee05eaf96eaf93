// Package interpret turns a decoded EXIF directory into typed camera facts.
//
// Every function here is a pure function of the directory. A missing tag is
// reported as absent, never as an error. A tag that is present but cannot be
// interpreted is also absent and additionally yields a warning.
package interpret

import (
	"fmt"
	"math"
	"time"

	"github.com/simonhull/photometa/internal/exif"
	"github.com/simonhull/photometa/internal/types"
)

// DateLayout is the EXIF date/time layout ("YYYY:MM:DD HH:MM:SS").
const DateLayout = "2006:01:02 15:04:05"

const stage = "interpret"

// Interpret derives every supported field from dir.
func Interpret(dir *exif.Directory) types.CameraMetadata {
	var m types.CameraMetadata
	var warnings []types.Warning

	collect := func(w *types.Warning) {
		if w != nil {
			warnings = append(warnings, *w)
		}
	}

	m.Make = Make(dir)
	m.Model = Model(dir)

	date, w := DateTaken(dir)
	m.DateTaken = date
	collect(w)

	shutter, w := ShutterSpeed(dir)
	m.ShutterSpeed = shutter
	collect(w)

	aperture, w := Aperture(dir)
	m.Aperture = aperture
	collect(w)

	m.ISO = ISO(dir)

	focal, w := FocalLength(dir)
	m.FocalLength = focal
	collect(w)

	m.Flash = Flash(dir)

	gps, w := GPS(dir)
	m.GPS = gps
	collect(w)

	m.Warnings = warnings
	return m
}

// DateTaken parses the primary DateTime tag.
func DateTaken(dir *exif.Directory) (*time.Time, *types.Warning) {
	s, ok := dir.ASCII(exif.Primary, exif.TagDateTime)
	if !ok {
		return nil, nil
	}

	v := s.Trimmed()
	// time.Parse accepts a one-digit hour for "15".
	if len(v) != len(DateLayout) {
		return nil, warn("DateTime %q is not a valid date", v)
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return nil, warn("DateTime %q is not a valid date", v)
	}
	return &t, nil
}

// Make returns the camera manufacturer.
func Make(dir *exif.Directory) *string {
	return trimmedASCII(dir, exif.TagMake)
}

// Model returns the camera model.
func Model(dir *exif.Directory) *string {
	return trimmedASCII(dir, exif.TagModel)
}

func trimmedASCII(dir *exif.Directory, tag exif.Tag) *string {
	s, ok := dir.ASCII(exif.Primary, tag)
	if !ok {
		return nil
	}
	v := s.Trimmed()
	if v == "" {
		return nil
	}
	return &v
}

// ShutterSpeed renders ExposureTime as "<num>/<den> sec" without reducing
// the fraction.
func ShutterSpeed(dir *exif.Directory) (*string, *types.Warning) {
	r, ok := dir.Rational(exif.ExifSpecific, exif.TagExposureTime)
	if !ok {
		return nil, nil
	}
	if r.Den == 0 {
		return nil, warn("ExposureTime %s: %v", r, exif.ErrZeroDenominator)
	}

	s := fmt.Sprintf("%d/%d sec", r.Num, r.Den)
	return &s, nil
}

// Aperture returns the f-number rounded to two decimals.
func Aperture(dir *exif.Directory) (*float64, *types.Warning) {
	return roundedRational(dir, exif.TagFNumber, "FNumber")
}

// FocalLength returns the focal length in millimetres rounded to two decimals.
func FocalLength(dir *exif.Directory) (*float64, *types.Warning) {
	return roundedRational(dir, exif.TagFocalLength, "FocalLength")
}

func roundedRational(dir *exif.Directory, tag exif.Tag, name string) (*float64, *types.Warning) {
	r, ok := dir.Rational(exif.ExifSpecific, tag)
	if !ok {
		return nil, nil
	}

	v, err := r.Float64()
	if err != nil {
		return nil, warn("%s %s: %v", name, r, err)
	}

	v = round2(v)
	return &v, nil
}

// ISO returns ISOSpeedRatings as stored.
func ISO(dir *exif.Directory) *uint32 {
	v, ok := dir.Uint(exif.ExifSpecific, exif.TagISOSpeedRatings)
	if !ok {
		return nil
	}
	iso := uint32(v)
	return &iso
}

// Flash reports whether the flash fired. An absent Flash tag is absent,
// not "did not fire".
func Flash(dir *exif.Directory) *types.FlashStatus {
	v, ok := dir.Uint(exif.ExifSpecific, exif.TagFlash)
	if !ok {
		return nil
	}

	status := types.FlashDidNotFire
	if flashFired(v) {
		status = types.FlashFired
	}
	return &status
}

// flashFired reports bit 0 of the Flash tag.
func flashFired(v exif.UnsignedInt) bool {
	return v&1 == 1
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func warn(format string, args ...any) *types.Warning {
	return &types.Warning{
		Stage:   stage,
		Message: fmt.Sprintf(format, args...),
	}
}
