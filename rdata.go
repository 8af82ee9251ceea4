//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package dnswire

import (
	"errors"
	"fmt"

	"github.com/miekg/dns"
)

// ErrUnknownRRType means no record-data decoder is registered for
// the given RR type.
var ErrUnknownRRType = errors.New("no decoder registered for RR type")

// RData is the decoded data portion of a resource record.
//
// Every decoded record body renders itself as human-readable text.
type RData interface {
	fmt.Stringer
}

// RDataDecoder decodes the data portion of one resource record. The
// statedLength is the RDLENGTH declared by the enclosing message for
// the record and the cursor reads the record's data bytes.
type RDataDecoder func(statedLength uint16, c *Cursor) (RData, error)

// rdataRegistry maps an RR type to the decoder for its data portion.
//
// Populated by init functions, read-only afterwards.
var rdataRegistry = make(map[uint16]RDataDecoder)

// RegisterRData registers decoder for the given RR type, replacing
// any previous registration. Not safe for concurrent use with
// [DecodeRData]; register decoders during initialization.
func RegisterRData(rrtype uint16, decoder RDataDecoder) {
	rdataRegistry[rrtype] = decoder
}

// DecodeRData decodes a record body of the given RR type from its raw
// RDATA bytes, using len(data) as the stated length. It returns
// [ErrUnknownRRType] when no decoder is registered for rrtype.
func DecodeRData(rrtype uint16, data []byte) (RData, error) {
	decoder := rdataRegistry[rrtype]
	if decoder == nil {
		return nil, ErrUnknownRRType
	}
	return decoder(uint16(len(data)), NewCursor(data))
}

// rrRDATA extracts the raw RDATA bytes of an RR by packing it in
// uncompressed wire form, then skipping the owner name and the fixed
// header fields that precede the data.
func rrRDATA(rr dns.RR) ([]byte, error) {
	buf := make([]byte, dns.Len(rr))
	off, err := dns.PackRR(rr, buf, 0, nil, false)
	if err != nil {
		return nil, err
	}
	c := NewCursor(buf[:off])

	// The owner name is a sequence of length-prefixed labels ending
	// with a zero length. Packing without a compression map never
	// emits compression pointers, so we need not chase any.
	for {
		n, err := c.ReadUint8()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
		if err := c.Skip(int(n)); err != nil {
			return nil, err
		}
	}

	// Skip TYPE, CLASS, and TTL, then let RDLENGTH delimit the data.
	if err := c.Skip(2 + 2 + 4); err != nil {
		return nil, err
	}
	rdlength, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	if int(rdlength) > c.Remaining() {
		return nil, ErrUnexpectedEOF
	}
	return c.data[c.off : c.off+int(rdlength)], nil
}
