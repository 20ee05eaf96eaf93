package exif

import (
	"iter"
	"maps"
	"slices"
)

// Directory is a decoded EXIF segment: one tag→value table per namespace.
//
// A Directory is built once by Decode and never modified afterwards.
// Lookups on a namespace that was not present behave as an empty table.
type Directory struct {
	ifds [namespaceCount]map[Tag]Value
}

// Lookup returns the value stored under tag in ns.
func (d *Directory) Lookup(ns Namespace, tag Tag) (Value, bool) {
	if d == nil || ns < 0 || ns >= namespaceCount {
		return nil, false
	}
	v, ok := d.ifds[ns][tag]
	return v, ok
}

// ASCII returns an ASCII value. ok is false when the tag is absent or holds
// another type.
func (d *Directory) ASCII(ns Namespace, tag Tag) (ByteString, bool) {
	v, _ := d.Lookup(ns, tag)
	s, ok := v.(ByteString)
	return s, ok
}

// Uint returns a SHORT or LONG value.
func (d *Directory) Uint(ns Namespace, tag Tag) (UnsignedInt, bool) {
	v, _ := d.Lookup(ns, tag)
	u, ok := v.(UnsignedInt)
	return u, ok
}

// Rational returns a single-component RATIONAL value.
func (d *Directory) Rational(ns Namespace, tag Tag) (Rational, bool) {
	v, _ := d.Lookup(ns, tag)
	r, ok := v.(Rational)
	return r, ok
}

// Triple returns a three-component RATIONAL value.
func (d *Directory) Triple(ns Namespace, tag Tag) (RationalTriple, bool) {
	v, _ := d.Lookup(ns, tag)
	t, ok := v.(RationalTriple)
	return t, ok
}

// Len returns the number of entries in ns.
func (d *Directory) Len(ns Namespace) int {
	if d == nil || ns < 0 || ns >= namespaceCount {
		return 0
	}
	return len(d.ifds[ns])
}

// All iterates over the entries of ns in ascending tag order.
//
// Example:
//
//	for tag, value := range dir.All(exif.GPS) {
//		fmt.Printf("0x%04x: %v\n", tag, value)
//	}
func (d *Directory) All(ns Namespace) iter.Seq2[Tag, Value] {
	return func(yield func(Tag, Value) bool) {
		if d.Len(ns) == 0 {
			return
		}
		table := d.ifds[ns]
		for _, tag := range slices.Sorted(maps.Keys(table)) {
			if !yield(tag, table[tag]) {
				return
			}
		}
	}
}

func (d *Directory) set(ns Namespace, tag Tag, v Value) {
	if d.ifds[ns] == nil {
		d.ifds[ns] = make(map[Tag]Value)
	}
	d.ifds[ns][tag] = v
}
