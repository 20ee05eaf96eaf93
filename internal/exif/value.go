package exif

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrZeroDenominator is returned when a rational with a zero denominator
// is converted to a number.
var ErrZeroDenominator = errors.New("rational has zero denominator")

// Value is a decoded directory entry value. The concrete type is one of
// ByteString, UnsignedInt, Rational, RationalTriple or Raw.
type Value interface {
	isValue()
}

// ByteString is an ASCII (type 2) value, including any trailing NUL bytes.
type ByteString []byte

// UnsignedInt is a SHORT (type 3) or LONG (type 4) value.
type UnsignedInt uint32

// Rational is an unsigned RATIONAL (type 5) value.
type Rational struct {
	Num uint32
	Den uint32
}

// RationalTriple is a RATIONAL value with exactly three components, as used
// by GPS degrees/minutes/seconds.
type RationalTriple [3]Rational

// Raw holds entries of valid TIFF types that are not interpreted, so unknown
// tags survive decoding.
type Raw struct {
	Data  []byte
	Count uint32
	Type  uint16
}

func (ByteString) isValue()     {}
func (UnsignedInt) isValue()    {}
func (Rational) isValue()       {}
func (RationalTriple) isValue() {}
func (Raw) isValue()            {}

// Trimmed returns the string with trailing NUL bytes and whitespace removed.
func (s ByteString) Trimmed() string {
	return string(bytes.TrimRight(s, "\x00 \t\r\n"))
}

func (s ByteString) String() string {
	return s.Trimmed()
}

// Float64 divides the numerator by the denominator.
func (r Rational) Float64() (float64, error) {
	if r.Den == 0 {
		return 0, ErrZeroDenominator
	}
	return float64(r.Num) / float64(r.Den), nil
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

func (t RationalTriple) String() string {
	return fmt.Sprintf("%s %s %s", t[0], t[1], t[2])
}

func (r Raw) String() string {
	return fmt.Sprintf("type %d, %d component(s), % x", r.Type, r.Count, r.Data)
}
