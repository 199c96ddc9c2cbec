/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package bitcursor provides sequential, MSB-first reads of unsigned integers
// from byte slices, without requiring fields to align to byte boundaries.
//
// It's the lowest-level primitive of the EPC decoders: tag memory banks pack
// fields at arbitrary bit offsets, so decoders read them as a stream of
// fixed-width integers rather than as bytes.
package bitcursor

import (
	"github.com/pkg/errors"
)

// Cursor reads consecutive runs of bits from an underlying byte slice,
// advancing a bit position with each read.
//
// Bit 0 is the most significant bit of byte 0, matching the bit-packing
// convention of the EPC Tag Data Standard. The Cursor never modifies or
// retains the slice beyond the reads themselves.
//
// A Cursor is not safe for concurrent use; give each decode call its own.
type Cursor struct {
	data []byte
	pos  int // bit position of the next read
}

// New returns a Cursor positioned at the first bit of data.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Remaining returns the number of unread bits.
func (c *Cursor) Remaining() int {
	return len(c.data)*8 - c.pos
}

// ReadUint returns the next n bits as an unsigned integer, most significant
// bit first, and advances the cursor past them. Reads may span byte
// boundaries.
//
// n must be in [1, 64]; if n exceeds the remaining bits, ReadUint returns an
// error and leaves the cursor where it was.
func (c *Cursor) ReadUint(n int) (uint64, error) {
	if n < 1 || n > 64 {
		return 0, errors.Errorf("bit read size must be in [1, 64], but is %d", n)
	}
	if n > c.Remaining() {
		return 0, errors.Errorf("insufficient data: "+
			"need %d bits, but only %d remain", n, c.Remaining())
	}

	var v uint64
	for n > 0 {
		avail := 8 - (c.pos & 7)
		take := avail
		if take > n {
			take = n
		}
		// bits [pos, pos+take) of the current byte, right-aligned
		b := c.data[c.pos>>3] >> uint(avail-take)
		b &= byte(1<<uint(take)) - 1
		v = v<<uint(take) | uint64(b)
		c.pos += take
		n -= take
	}
	return v, nil
}

// ReadBool returns the next bit as a boolean.
func (c *Cursor) ReadBool() (bool, error) {
	v, err := c.ReadUint(1)
	return v != 0, err
}
