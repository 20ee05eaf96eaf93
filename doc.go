// Package photometa extracts camera metadata from the EXIF data embedded in
// image files.
//
// photometa reads the facts a photographer cares about (camera make and
// model, when the photo was taken, shutter speed, aperture, ISO, focal
// length, whether the flash fired, and where the photo was taken) from
// JPEG, TIFF, PNG and WebP files.
//
// # Quick Start
//
// Reading metadata from a photo:
//
//	meta, err := photometa.Extract("IMG_0001.jpg")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if meta.Model != nil {
//		fmt.Println("Camera:", *meta.Model)
//	}
//	if meta.GPS != nil {
//		fmt.Printf("Location: %.4f, %.4f\n", meta.GPS.Latitude, meta.GPS.Longitude)
//	}
//
// # Supported Formats
//
//   - JPEG: EXIF in the APP1 segment
//   - TIFF: the file is the EXIF structure
//   - PNG: the eXIf chunk
//   - WebP: the EXIF chunk of extended (VP8X) files
//
// # Architecture
//
// Extraction runs in three stages:
//
//	path ─ container reader ─▶ raw segment
//	     ─ EXIF decoder     ─▶ Directory (0th, Exif and GPS namespaces)
//	     ─ interpreter      ─▶ CameraMetadata
//
// Container readers register themselves per format, so adding a container
// does not change the public API. ReadDirectory stops after the second
// stage and returns every decoded tag, known or not.
//
// # Absent Values
//
// Every CameraMetadata field is optional. A missing tag yields a nil field,
// never an error and never a zero value: a photo without a Flash tag has
// Flash == nil, not FlashDidNotFire.
//
// # Error Handling
//
// photometa distinguishes between fatal errors and warnings:
//
//   - Fatal errors stop extraction: IOError (file missing or unreadable),
//     UnsupportedFormatError (signature not recognised), ContainerFormatError
//     (corrupt container or EXIF segment)
//   - Warnings describe tags that were present but unusable, such as a
//     rational with a zero denominator; the field is left nil
//
//	meta, err := photometa.Extract(path)
//	var formatErr *photometa.ContainerFormatError
//	if errors.As(err, &formatErr) {
//		log.Printf("corrupt EXIF at offset %d: %s", formatErr.Offset, formatErr.Reason)
//	}
//
// # Batches
//
// ExtractMany processes many files in parallel and reports per-file errors
// without stopping the batch:
//
//	results, err := photometa.ExtractMany(ctx, paths, photometa.WithConcurrency(8))
package photometa
