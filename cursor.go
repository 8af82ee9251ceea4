//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package dnswire

import (
	"encoding/binary"
	"errors"

	"github.com/rs/zerolog"
)

// ErrUnexpectedEOF indicates that the record data ended before a
// required field could be read in full.
var ErrUnexpectedEOF = errors.New("unexpected end of record data")

// Cursor is a bounded big-endian reader over a borrowed byte slice.
//
// A cursor is exclusively owned by the decode invocation holding it
// and must not be shared across goroutines.
//
// Construct using [NewCursor].
type Cursor struct {
	data   []byte
	logger zerolog.Logger
	off    int
}

// NewCursor creates a [*Cursor] reading from the beginning of data.
//
// The cursor borrows data without copying it. Tracing is disabled by
// default; use [Cursor.WithLogger] to enable it.
func NewCursor(data []byte) *Cursor {
	return &Cursor{
		data:   data,
		logger: zerolog.Nop(),
		off:    0,
	}
}

// WithLogger sets the logger used to trace parsed fields and returns
// the cursor itself. Tracing never affects decode outcomes.
func (c *Cursor) WithLogger(logger zerolog.Logger) *Cursor {
	c.logger = logger
	return c
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.off
}

// ReadUint8 reads the next byte. On failure, the error is
// [ErrUnexpectedEOF] and the cursor does not advance.
func (c *Cursor) ReadUint8() (uint8, error) {
	if c.Remaining() < 1 {
		return 0, ErrUnexpectedEOF
	}
	value := c.data[c.off]
	c.off++
	return value, nil
}

// ReadUint16 reads the next two bytes as a big-endian uint16. On
// failure, the error is [ErrUnexpectedEOF] and the cursor does not
// advance.
func (c *Cursor) ReadUint16() (uint16, error) {
	if c.Remaining() < 2 {
		return 0, ErrUnexpectedEOF
	}
	value := binary.BigEndian.Uint16(c.data[c.off:])
	c.off += 2
	return value, nil
}

// ReadUint32 reads the next four bytes as a big-endian uint32. On
// failure, the error is [ErrUnexpectedEOF] and the cursor does not
// advance.
func (c *Cursor) ReadUint32() (uint32, error) {
	if c.Remaining() < 4 {
		return 0, ErrUnexpectedEOF
	}
	value := binary.BigEndian.Uint32(c.data[c.off:])
	c.off += 4
	return value, nil
}

// Skip advances the cursor by n bytes. On failure, the error is
// [ErrUnexpectedEOF] and the cursor does not advance.
func (c *Cursor) Skip(n int) error {
	if c.Remaining() < n {
		return ErrUnexpectedEOF
	}
	c.off += n
	return nil
}
