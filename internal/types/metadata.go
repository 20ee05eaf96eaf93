package types

import "time"

// FlashStatus reports whether the flash fired when the picture was taken.
type FlashStatus int

const (
	// FlashDidNotFire means bit 0 of the Flash tag was clear.
	FlashDidNotFire FlashStatus = iota
	// FlashFired means bit 0 of the Flash tag was set.
	FlashFired
)

func (s FlashStatus) String() string {
	if s == FlashFired {
		return "fired"
	}
	return "did not fire"
}

// MarshalText implements encoding.TextMarshaler.
func (s FlashStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Coordinates is a GPS position in signed decimal degrees.
// South latitudes and west longitudes are negative.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CameraMetadata is the interpreted camera and GPS metadata of one image.
//
// Every field is optional and independent: a nil pointer means the tag was
// absent or could not be interpreted. A malformed tag only clears its own
// field and adds an entry to Warnings.
type CameraMetadata struct {
	DateTaken    *time.Time   `json:"date_taken,omitempty"`
	Make         *string      `json:"make,omitempty"`
	Model        *string      `json:"model,omitempty"`
	ShutterSpeed *string      `json:"shutter_speed,omitempty"`
	Aperture     *float64     `json:"aperture,omitempty"`
	ISO          *uint32      `json:"iso,omitempty"`
	FocalLength  *float64     `json:"focal_length,omitempty"`
	Flash        *FlashStatus `json:"flash,omitempty"`
	GPS          *Coordinates `json:"gps,omitempty"`

	// Path of the source file
	Path string `json:"path"`

	// Detected container format
	Format Format `json:"format"`

	// Fields that were present but could not be interpreted
	Warnings []Warning `json:"warnings,omitempty"`
}

// Empty reports whether no metadata field is present.
func (m *CameraMetadata) Empty() bool {
	return m.DateTaken == nil && m.Make == nil && m.Model == nil &&
		m.ShutterSpeed == nil && m.Aperture == nil && m.ISO == nil &&
		m.FocalLength == nil && m.Flash == nil && m.GPS == nil
}
