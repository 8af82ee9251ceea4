//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package dnswire

import "fmt"

// MandatedLength describes the RDATA length a record type mandates.
//
// Construct using [Exactly] or [AtLeast].
type MandatedLength struct {
	length  uint16
	atLeast bool
}

// Exactly mandates an RDATA length of exactly n bytes.
func Exactly(n uint16) MandatedLength {
	return MandatedLength{length: n}
}

// AtLeast mandates an RDATA length of at least n bytes.
func AtLeast(n uint16) MandatedLength {
	return MandatedLength{length: n, atLeast: true}
}

// String describes the mandated length in prose.
func (m MandatedLength) String() string {
	if m.atLeast {
		return fmt.Sprintf("at least %d bytes", m.length)
	}
	return fmt.Sprintf("exactly %d bytes", m.length)
}

// WrongVersionError indicates that a record declared an encoding
// version more recent than this decoder supports.
type WrongVersionError struct {
	// StatedVersion is the version declared by the record.
	StatedVersion uint8

	// MaximumSupportedVersion is the most recent version the
	// decoder understands.
	MaximumSupportedVersion uint8
}

func (e *WrongVersionError) Error() string {
	return fmt.Sprintf("unsupported record version %d (maximum supported version is %d)",
		e.StatedVersion, e.MaximumSupportedVersion)
}

// WrongRecordLengthError indicates that the RDLENGTH declared by the
// enclosing message does not match what the record type mandates.
type WrongRecordLengthError struct {
	// StatedLength is the RDLENGTH declared by the message framing.
	StatedLength uint16

	// MandatedLength is the length the record type requires.
	MandatedLength MandatedLength
}

func (e *WrongRecordLengthError) Error() string {
	return fmt.Sprintf("wrong record length %d (mandated: %s)",
		e.StatedLength, e.MandatedLength)
}
