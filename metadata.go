package photometa

import (
	"github.com/simonhull/photometa/internal/exif"
	"github.com/simonhull/photometa/internal/types"
)

// CameraMetadata is an alias to types.CameraMetadata.
// Every field is a pointer; nil means the value was not available.
type CameraMetadata = types.CameraMetadata

// FlashStatus is an alias to types.FlashStatus.
type FlashStatus = types.FlashStatus

// Flash states.
const (
	FlashDidNotFire = types.FlashDidNotFire
	FlashFired      = types.FlashFired
)

// Coordinates is an alias to types.Coordinates.
type Coordinates = types.Coordinates

// Directory is an alias to exif.Directory, the decoded tag tables.
type Directory = exif.Directory

// Namespace is an alias to exif.Namespace.
type Namespace = exif.Namespace

// Namespaces.
const (
	NamespacePrimary = exif.Primary
	NamespaceExif    = exif.ExifSpecific
	NamespaceGPS     = exif.GPS
)

// Namespaces lists the namespaces in decoding order: 0th, Exif, GPS.
var Namespaces = exif.Namespaces

// Tag is an alias to exif.Tag.
type Tag = exif.Tag

// Value types stored in a Directory.
type (
	Value          = exif.Value
	ByteString     = exif.ByteString
	UnsignedInt    = exif.UnsignedInt
	Rational       = exif.Rational
	RationalTriple = exif.RationalTriple
	Raw            = exif.Raw
)

// TagName returns the name of a known tag, or "" for unknown tags.
func TagName(ns Namespace, tag Tag) string {
	return exif.TagName(ns, tag)
}
