//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// LOC wire format from RFC 1876 — A Means for Expressing Location
// Information in the Domain Name System (January 1996).
//

package dnswire

import (
	"fmt"

	"github.com/miekg/dns"
)

func init() {
	RegisterRData(dns.TypeLOC, func(statedLength uint16, c *Cursor) (RData, error) {
		loc, err := ParseLOC(statedLength, c)
		if err != nil {
			return nil, err
		}
		return loc, nil
	})
}

const (
	// locMaxVersion is the only LOC encoding version RFC 1876 defines.
	locMaxVersion = 0

	// locRDATALength is the fixed length of the LOC record data.
	locRDATALength = 16
)

// LOC is a LOC (location) record body, which points to a location on
// Earth using its latitude, longitude, and altitude.
//
// Construct using [ParseLOC].
type LOC struct {
	// Size is the diameter of a sphere enclosing the entity at the
	// location, as a measure of its size, in centimetres.
	Size Size

	// HorizontalPrecision is the diameter of the "circle of error"
	// that this location could be in, in centimetres.
	HorizontalPrecision uint8

	// VerticalPrecision is the amount of vertical space that this
	// location could be in, in centimetres.
	VerticalPrecision uint8

	// Latitude is the latitude of the centre of the sphere.
	Latitude Position

	// Longitude is the longitude of the centre of the sphere.
	Longitude Position

	// Altitude is the altitude of the centre of the sphere, in
	// centimetres above a base of 100,000 metres below the WGS 84
	// reference spheroid. We keep the raw value and never subtract
	// the base offset.
	Altitude uint32
}

// Size is a measure of size in centimetres, kept as the raw base and
// power-of-ten nibbles rather than the combined magnitude.
type Size struct {
	// Base is the high nibble of the size byte (0-15).
	Base uint8

	// PowerOfTen is the low nibble of the size byte (0-15).
	PowerOfTen uint8
}

// Position is a position on one of the world's axes.
type Position struct {
	Degrees         uint32
	Arcminutes      uint32
	Arcseconds      uint32
	Milliarcseconds uint32

	// Direction is the hemisphere the position falls in.
	Direction Direction
}

// Direction is one of the directions a position could be in, relative
// to the equator or the prime meridian.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// ParseLOC decodes a LOC record body read through the given cursor.
//
// The statedLength is the RDLENGTH declared by the enclosing message
// for this record and must be exactly 16. Note that a wrong version is
// reported before a wrong length, so an unsupported record is flagged
// as such even when its framing is also off.
func ParseLOC(statedLength uint16, c *Cursor) (*LOC, error) {
	version, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	c.logger.Trace().Uint8("version", version).Msg("parsed version")

	if version != locMaxVersion {
		return nil, &WrongVersionError{
			StatedVersion:           version,
			MaximumSupportedVersion: locMaxVersion,
		}
	}

	if statedLength != locRDATALength {
		return nil, &WrongRecordLengthError{
			StatedLength:   statedLength,
			MandatedLength: Exactly(locRDATALength),
		}
	}

	sizeBits, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	size := SizeFromBits(sizeBits)
	c.logger.Trace().
		Uint8("base", size.Base).
		Uint8("powerOfTen", size.PowerOfTen).
		Msg("parsed size")

	horizontalPrecision, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	c.logger.Trace().Uint8("horizontalPrecision", horizontalPrecision).Msg("parsed horizontal precision")

	verticalPrecision, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	c.logger.Trace().Uint8("verticalPrecision", verticalPrecision).Msg("parsed vertical precision")

	latitudeNum, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	latitude := PositionFromUint32(latitudeNum, true)
	c.logger.Trace().Uint32("raw", latitudeNum).Stringer("latitude", latitude).Msg("parsed latitude")

	longitudeNum, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	longitude := PositionFromUint32(longitudeNum, false)
	c.logger.Trace().Uint32("raw", longitudeNum).Stringer("longitude", longitude).Msg("parsed longitude")

	altitude, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	c.logger.Trace().Uint32("altitude", altitude).Msg("parsed altitude")

	return &LOC{
		Size:                size,
		HorizontalPrecision: horizontalPrecision,
		VerticalPrecision:   verticalPrecision,
		Latitude:            latitude,
		Longitude:           longitude,
		Altitude:            altitude,
	}, nil
}

// positionHalf encodes the equator or the prime meridian.
const positionHalf = 1 << 31

// PositionFromUint32 converts a raw coordinate into the position it
// represents. The input is measured in thousandths of an arcsecond
// (milliarcseconds), with 2^31 as the equator or prime meridian.
// Vertical selects the latitude axis (north/south) over the longitude
// axis (east/west).
//
// Every uint32 is a valid input: this function is total, pure, and
// safe to call concurrently.
func PositionFromUint32(raw uint32, vertical bool) Position {
	var (
		offset    uint32
		direction Direction
	)
	if raw >= positionHalf {
		offset = raw - positionHalf
		direction = North
		if !vertical {
			direction = East
		}
	} else {
		// raw < 2^31, so this subtraction cannot underflow.
		offset = positionHalf - raw
		direction = South
		if !vertical {
			direction = West
		}
	}

	milliarcseconds := offset % 1000
	totalArcseconds := offset / 1000

	arcseconds := totalArcseconds % 60
	totalArcminutes := totalArcseconds / 60

	arcminutes := totalArcminutes % 60
	degrees := totalArcminutes / 60

	return Position{
		Degrees:         degrees,
		Arcminutes:      arcminutes,
		Arcseconds:      arcseconds,
		Milliarcseconds: milliarcseconds,
		Direction:       direction,
	}
}

// SizeFromBits splits a size byte into its base (high nibble) and
// power-of-ten (low nibble) fields. No range validation happens here:
// all sixteen values of each nibble are kept as stated.
func SizeFromBits(bits uint8) Size {
	return Size{
		Base:       bits >> 4,
		PowerOfTen: bits & 0b_0000_1111,
	}
}

// String renders the size as "{base}e{exponent}" with the raw digits,
// without evaluating the magnitude they denote.
func (s Size) String() string {
	return fmt.Sprintf("%de%d", s.Base, s.PowerOfTen)
}

// String renders the position as degrees, arcminutes and arcseconds
// followed by the one-letter direction code. The milliarcseconds
// appear as a decimal fraction of the seconds only when nonzero.
func (p Position) String() string {
	if p.Milliarcseconds != 0 {
		return fmt.Sprintf("%d°%d′%d.%03d″ %s",
			p.Degrees, p.Arcminutes, p.Arcseconds, p.Milliarcseconds, p.Direction)
	}
	return fmt.Sprintf("%d°%d′%d″ %s",
		p.Degrees, p.Arcminutes, p.Arcseconds, p.Direction)
}

// String returns the one-letter direction code.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	default:
		return "W"
	}
}

// String renders the whole record body on a single line.
func (l *LOC) String() string {
	return fmt.Sprintf("%s %s alt %d (size %s, hp %d, vp %d)",
		l.Latitude, l.Longitude, l.Altitude,
		l.Size, l.HorizontalPrecision, l.VerticalPrecision)
}
