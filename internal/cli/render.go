package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/simonhull/photometa"
)

// notAvailable is printed for fields the photo does not record.
const notAvailable = "Not Available"

// dateLayout is how DateTaken is printed.
const dateLayout = "2006-01-02 15:04:05"

// renderMetadata prints one file's metadata as labelled lines.
func renderMetadata(w io.Writer, m *photometa.CameraMetadata) {
	fmt.Fprintf(w, "%s (%s)\n", m.Path, m.Format)

	field(w, "Camera Make", stringOr(m.Make))
	field(w, "Camera Model", stringOr(m.Model))

	date := notAvailable
	if m.DateTaken != nil {
		date = m.DateTaken.Format(dateLayout)
	}
	field(w, "Date Taken", date)

	field(w, "Shutter Speed", stringOr(m.ShutterSpeed))
	field(w, "Aperture (f)", floatOr(m.Aperture))

	iso := notAvailable
	if m.ISO != nil {
		iso = strconv.FormatUint(uint64(*m.ISO), 10)
	}
	field(w, "ISO", iso)

	field(w, "Focal Length (mm)", floatOr(m.FocalLength))

	flash := notAvailable
	if m.Flash != nil {
		flash = "Flash " + m.Flash.String()
	}
	field(w, "Flash", flash)

	gps := notAvailable
	if m.GPS != nil {
		gps = fmt.Sprintf("%.6f, %.6f", m.GPS.Latitude, m.GPS.Longitude)
	}
	field(w, "GPS Coordinates", gps)

	for _, warning := range m.Warnings {
		field(w, "Warning", warning.Message)
	}
}

func field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-18s %s\n", label+":", value)
}

func stringOr(s *string) string {
	if s == nil {
		return notAvailable
	}
	return *s
}

// floatOr prints at most two decimals without trailing zeros (2.8, 50).
func floatOr(f *float64) string {
	if f == nil {
		return notAvailable
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
