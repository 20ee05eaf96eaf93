package exif

// Tag identifies a directory entry within a namespace.
type Tag uint16

// Namespace selects one of the decoded IFDs.
type Namespace int

const (
	// Primary is IFD0 ("0th"), describing the main image.
	Primary Namespace = iota
	// ExifSpecific is the Exif sub-IFD referenced by ExifIFDPointer.
	ExifSpecific
	// GPS is the GPS sub-IFD referenced by GPSInfoIFDPointer.
	GPS

	namespaceCount
)

// Namespaces lists every namespace in decoding order.
var Namespaces = []Namespace{Primary, ExifSpecific, GPS}

func (n Namespace) String() string {
	switch n {
	case Primary:
		return "0th"
	case ExifSpecific:
		return "Exif"
	case GPS:
		return "GPS"
	default:
		return "unknown"
	}
}

// Primary IFD tags.
const (
	TagMake              Tag = 0x010F
	TagModel             Tag = 0x0110
	TagOrientation       Tag = 0x0112
	TagSoftware          Tag = 0x0131
	TagDateTime          Tag = 0x0132
	TagExifIFDPointer    Tag = 0x8769
	TagGPSInfoIFDPointer Tag = 0x8825
)

// Exif IFD tags.
const (
	TagExposureTime     Tag = 0x829A
	TagFNumber          Tag = 0x829D
	TagISOSpeedRatings  Tag = 0x8827
	TagDateTimeOriginal Tag = 0x9003
	TagFlash            Tag = 0x9209
	TagFocalLength      Tag = 0x920A
)

// GPS IFD tags.
const (
	TagGPSLatitudeRef  Tag = 0x0001
	TagGPSLatitude     Tag = 0x0002
	TagGPSLongitudeRef Tag = 0x0003
	TagGPSLongitude    Tag = 0x0004
)

var tagNames = map[Namespace]map[Tag]string{
	Primary: {
		TagMake:              "Make",
		TagModel:             "Model",
		TagOrientation:       "Orientation",
		TagSoftware:          "Software",
		TagDateTime:          "DateTime",
		TagExifIFDPointer:    "ExifIFDPointer",
		TagGPSInfoIFDPointer: "GPSInfoIFDPointer",
	},
	ExifSpecific: {
		TagExposureTime:     "ExposureTime",
		TagFNumber:          "FNumber",
		TagISOSpeedRatings:  "ISOSpeedRatings",
		TagDateTimeOriginal: "DateTimeOriginal",
		TagFlash:            "Flash",
		TagFocalLength:      "FocalLength",
	},
	GPS: {
		TagGPSLatitudeRef:  "GPSLatitudeRef",
		TagGPSLatitude:     "GPSLatitude",
		TagGPSLongitudeRef: "GPSLongitudeRef",
		TagGPSLongitude:    "GPSLongitude",
	},
}

// TagName returns the name of a known tag, or "" for tags this package does
// not interpret.
func TagName(ns Namespace, tag Tag) string {
	return tagNames[ns][tag]
}
