//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package dnswire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorReads(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})
	require.Equal(t, 8, c.Remaining())

	v8, err := c.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x01), v8)
	require.Equal(t, 7, c.Remaining())

	v16, err := c.ReadUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0203), v16)
	require.Equal(t, 5, c.Remaining())

	v32, err := c.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x04050607), v32)
	require.Equal(t, 1, c.Remaining())

	require.NoError(t, c.Skip(1))
	require.Equal(t, 0, c.Remaining())
}

func TestCursorExhaustion(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(c *Cursor) error
	}{
		{
			name: "Uint8OnEmpty",
			data: []byte{},
			read: func(c *Cursor) error {
				_, err := c.ReadUint8()
				return err
			},
		},

		{
			name: "Uint16OnOneByte",
			data: []byte{0x01},
			read: func(c *Cursor) error {
				_, err := c.ReadUint16()
				return err
			},
		},

		{
			name: "Uint32OnThreeBytes",
			data: []byte{0x01, 0x02, 0x03},
			read: func(c *Cursor) error {
				_, err := c.ReadUint32()
				return err
			},
		},

		{
			name: "SkipPastEnd",
			data: []byte{0x01, 0x02},
			read: func(c *Cursor) error {
				return c.Skip(3)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.data)
			before := c.Remaining()

			err := tt.read(c)
			require.ErrorIs(t, err, ErrUnexpectedEOF)

			// A failed read must leave the cursor where it was.
			require.Equal(t, before, c.Remaining())
		})
	}
}

func TestCursorWithLogger(t *testing.T) {
	c := NewCursor([]byte{0x01})
	require.Same(t, c, c.WithLogger(c.logger))
}
