// Package exif decodes TIFF-structured EXIF segments into typed directories.
package exif

import (
	"fmt"

	"github.com/simonhull/photometa/internal/binary"
	"github.com/simonhull/photometa/internal/types"
)

// TIFF field types
const (
	typeByte      = 1
	typeASCII     = 2
	typeShort     = 3
	typeLong      = 4
	typeRational  = 5
	typeSByte     = 6
	typeUndefined = 7
	typeSShort    = 8
	typeSLong     = 9
	typeSRational = 10
	typeFloat     = 11
	typeDouble    = 12
)

// typeSizes holds the component size in bytes of each TIFF field type.
var typeSizes = [...]uint64{
	typeByte:      1,
	typeASCII:     1,
	typeShort:     2,
	typeLong:      4,
	typeRational:  8,
	typeSByte:     1,
	typeUndefined: 1,
	typeSShort:    2,
	typeSLong:     4,
	typeSRational: 8,
	typeFloat:     4,
	typeDouble:    8,
}

const (
	tiffMagic   = 42
	headerSize  = 8
	entrySize   = 12
	inlineLimit = 4
)

type decoder struct {
	sr    *binary.SafeReader
	dir   *Directory
	path  string
	order binary.Endianness
}

// Decode parses a TIFF-structured EXIF segment.
//
// The primary IFD is decoded along with the Exif and GPS sub-IFDs it points
// to. Every multi-byte field is read in the byte order announced by the
// segment header. Any offset or count that would read past the end of the
// segment produces a *types.ContainerFormatError and no directory.
//
// An empty segment decodes to an empty directory.
func Decode(segment []byte, path string) (*Directory, error) {
	if len(segment) == 0 {
		return &Directory{}, nil
	}

	d := &decoder{
		sr:   binary.NewBytesReader(segment, path),
		dir:  &Directory{},
		path: path,
	}

	ifd0, err := d.readHeader()
	if err != nil {
		return nil, err
	}

	if err := d.readIFD(Primary, ifd0); err != nil {
		return nil, err
	}

	if err := d.follow(TagExifIFDPointer, ExifSpecific); err != nil {
		return nil, err
	}
	if err := d.follow(TagGPSInfoIFDPointer, GPS); err != nil {
		return nil, err
	}

	return d.dir, nil
}

// readHeader validates the byte-order marker and magic number and returns
// the offset of IFD0.
func (d *decoder) readHeader() (int64, error) {
	marker := make([]byte, 2)
	if err := d.sr.ReadAt(marker, 0, "byte-order marker"); err != nil {
		return 0, d.formatError(0, "TIFF header truncated", err)
	}

	switch string(marker) {
	case "II":
		d.order = binary.LittleEndian
	case "MM":
		d.order = binary.BigEndian
	default:
		return 0, d.formatError(0, fmt.Sprintf("invalid byte-order marker %q", marker), nil)
	}

	if d.sr.Size() < headerSize {
		return 0, d.formatError(0, "TIFF header truncated", nil)
	}

	magic, err := binary.ReadEndian[uint16](d.sr, 2, "TIFF magic", d.order)
	if err != nil {
		return 0, d.formatError(2, "TIFF header truncated", err)
	}
	switch magic {
	case tiffMagic:
	case tiffMagic << 8:
		return 0, d.formatError(2, "TIFF magic disagrees with byte-order marker "+d.order.String(), nil)
	default:
		return 0, d.formatError(2, fmt.Sprintf("invalid TIFF magic %d", magic), nil)
	}

	ifd0, err := binary.ReadEndian[uint32](d.sr, 4, "IFD0 offset", d.order)
	if err != nil {
		return 0, d.formatError(4, "TIFF header truncated", err)
	}
	if ifd0 < headerSize {
		return 0, d.formatError(4, fmt.Sprintf("IFD0 offset %d points into the header", ifd0), nil)
	}

	return int64(ifd0), nil
}

// follow decodes the sub-IFD referenced by a pointer tag in the primary IFD.
func (d *decoder) follow(pointer Tag, ns Namespace) error {
	v, ok := d.dir.Lookup(Primary, pointer)
	if !ok {
		return nil
	}

	off, ok := v.(UnsignedInt)
	if !ok || off < headerSize {
		return d.formatError(0, fmt.Sprintf("invalid %s IFD pointer", ns), nil)
	}

	return d.readIFD(ns, int64(off))
}

// readIFD decodes the directory at off into namespace ns.
func (d *decoder) readIFD(ns Namespace, off int64) error {
	r := binary.NewOrderedReader(d.sr, off, d.order)

	count, err := binary.ReadValue[uint16](r, fmt.Sprintf("%s IFD entry count", ns))
	if err != nil {
		return d.formatError(off, fmt.Sprintf("%s IFD offset outside segment", ns), err)
	}

	if !d.sr.InBounds(r.Offset(), int64(count)*entrySize) {
		return d.formatError(off, fmt.Sprintf("%s IFD declares %d entries but segment is %d bytes",
			ns, count, d.sr.Size()), nil)
	}

	cr := binary.NewChainReader(r)
	for range count {
		entryOff := cr.Offset()

		tag := Tag(binary.ReadChained[uint16](cr, "entry tag"))
		typ := binary.ReadChained[uint16](cr, "entry type")
		n := binary.ReadChained[uint32](cr, "entry component count")
		field := cr.Bytes(inlineLimit, "entry value")
		if err := cr.Error(); err != nil {
			return d.formatError(entryOff, "truncated directory entry", err)
		}

		v, err := d.value(entryOff, tag, typ, n, field)
		if err != nil {
			return err
		}
		if v != nil {
			d.dir.set(ns, tag, v)
		}
	}

	return nil
}

// value decodes one entry. It returns nil for entries that carry nothing
// this package can represent (unknown type codes, zero components).
func (d *decoder) value(entryOff int64, tag Tag, typ uint16, count uint32, field []byte) (Value, error) {
	if typ == 0 || int(typ) >= len(typeSizes) || count == 0 {
		return nil, nil
	}

	size := typeSizes[typ] * uint64(count)
	data := field
	if size <= inlineLimit {
		data = field[:size]
	} else {
		off := binary.Decode[uint32](field, d.order)
		var err error
		data, err = d.sr.Bytes(int64(off), int64(size), fmt.Sprintf("value of tag 0x%04x", uint16(tag)))
		if err != nil {
			return nil, d.formatError(entryOff, fmt.Sprintf("value of tag 0x%04x lies outside segment", uint16(tag)), err)
		}
	}

	switch typ {
	case typeASCII:
		return ByteString(data), nil

	case typeShort:
		return UnsignedInt(binary.Decode[uint16](data, d.order)), nil

	case typeLong:
		return UnsignedInt(binary.Decode[uint32](data, d.order)), nil

	case typeRational:
		switch count {
		case 1:
			return d.rational(data), nil
		case 3:
			return RationalTriple{d.rational(data), d.rational(data[8:]), d.rational(data[16:])}, nil
		}
	}

	return Raw{Type: typ, Count: count, Data: data}, nil
}

func (d *decoder) rational(b []byte) Rational {
	return Rational{
		Num: binary.Decode[uint32](b, d.order),
		Den: binary.Decode[uint32](b[4:], d.order),
	}
}

func (d *decoder) formatError(off int64, reason string, err error) error {
	return &types.ContainerFormatError{
		Path:   d.path,
		Offset: off,
		Reason: reason,
		Err:    err,
	}
}
