package photometa_test

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	goexif "github.com/rwcarlsen/goexif/exif"

	"github.com/simonhull/photometa"
	pbinary "github.com/simonhull/photometa/internal/binary"
	"github.com/simonhull/photometa/internal/exiftest"
)

// TestCrossCheckGoexif decodes the same files with goexif and compares the
// raw values it reports with ours.
func TestCrossCheckGoexif(t *testing.T) {
	for _, order := range []pbinary.Endianness{pbinary.LittleEndian, pbinary.BigEndian} {
		seg := exiftest.Sample(order).Bytes()

		for name, data := range map[string][]byte{
			"JPEG": exiftest.JPEG(seg),
			"TIFF": seg,
		} {
			t.Run(order.String()+"/"+name, func(t *testing.T) {
				x, err := goexif.Decode(bytes.NewReader(data))
				if err != nil {
					t.Fatalf("goexif.Decode() error = %v", err)
				}

				meta, err := photometa.Extract(exiftest.WriteFile(t, "photo", data))
				if err != nil {
					t.Fatalf("Extract() error = %v", err)
				}

				model, err := x.Get(goexif.Model)
				if err != nil {
					t.Fatalf("goexif Model: %v", err)
				}
				want, _ := model.StringVal()
				if meta.Model == nil || *meta.Model != strings.TrimRight(want, "\x00") {
					t.Errorf("Model = %v, goexif = %q", meta.Model, want)
				}

				fnumber, err := x.Get(goexif.FNumber)
				if err != nil {
					t.Fatalf("goexif FNumber: %v", err)
				}
				num, den, err := fnumber.Rat2(0)
				if err != nil {
					t.Fatalf("goexif FNumber Rat2: %v", err)
				}
				if meta.Aperture == nil || math.Abs(*meta.Aperture-float64(num)/float64(den)) > 0.005 {
					t.Errorf("Aperture = %v, goexif = %d/%d", meta.Aperture, num, den)
				}

				exposure, err := x.Get(goexif.ExposureTime)
				if err != nil {
					t.Fatalf("goexif ExposureTime: %v", err)
				}
				num, den, err = exposure.Rat2(0)
				if err != nil {
					t.Fatalf("goexif ExposureTime Rat2: %v", err)
				}
				if meta.ShutterSpeed == nil || *meta.ShutterSpeed != formatShutter(num, den) {
					t.Errorf("ShutterSpeed = %v, goexif = %d/%d", meta.ShutterSpeed, num, den)
				}

				lat, long, err := x.LatLong()
				if err != nil {
					t.Fatalf("goexif LatLong: %v", err)
				}
				if meta.GPS == nil || math.Abs(meta.GPS.Latitude-lat) > 1e-9 || math.Abs(meta.GPS.Longitude-long) > 1e-9 {
					t.Errorf("GPS = %v, goexif = (%v, %v)", meta.GPS, lat, long)
				}
			})
		}
	}
}

func formatShutter(num, den int64) string {
	return fmt.Sprintf("%d/%d sec", num, den)
}
