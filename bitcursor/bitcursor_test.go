/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bitcursor

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestReadUint(t *testing.T) {
	w := expect.WrapT(t)

	c := New([]byte{0xF0, 0x0F})
	w.ShouldBeEqual(c.Remaining(), 16)

	v := w.ShouldHaveResult(c.ReadUint(4)).(uint64)
	w.As("leading nibble").ShouldBeEqual(v, uint64(0xF))
	w.ShouldBeEqual(c.Remaining(), 12)

	// spans the byte boundary
	v = w.ShouldHaveResult(c.ReadUint(8)).(uint64)
	w.As("middle byte").ShouldBeEqual(v, uint64(0x00))

	v = w.ShouldHaveResult(c.ReadUint(4)).(uint64)
	w.As("trailing nibble").ShouldBeEqual(v, uint64(0xF))
	w.ShouldBeEqual(c.Remaining(), 0)
}

func TestReadUint_MSBFirst(t *testing.T) {
	w := expect.WrapT(t)

	c := New([]byte{0xA5}) // 1010 0101
	for i, bit := range []uint64{1, 0, 1, 0, 0, 1, 0, 1} {
		v := w.ShouldHaveResult(c.ReadUint(1)).(uint64)
		w.As(fmt.Sprintf("bit %d", i)).ShouldBeEqual(v, bit)
	}
}

func TestReadUint_fullWidth(t *testing.T) {
	w := expect.WrapT(t)

	data := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	c := New(data)
	w.ShouldHaveResult(c.ReadUint(4))

	// a 64-bit read that is not byte aligned
	v := w.ShouldHaveResult(c.ReadUint(64)).(uint64)
	w.ShouldBeEqual(v, uint64(0xFFFFFFFFFFFFFFFF))
	w.ShouldBeEqual(c.Remaining(), 4)
}

func TestReadUint_sizeLimits(t *testing.T) {
	w := expect.WrapT(t)

	c := New(make([]byte, 16))
	_, err := c.ReadUint(0)
	w.As("n=0").ShouldFail(err)
	_, err = c.ReadUint(65)
	w.As("n=65").ShouldFail(err)

	// failed reads must not move the cursor
	w.ShouldBeEqual(c.Remaining(), 128)
}

func TestReadUint_insufficientData(t *testing.T) {
	w := expect.WrapT(t)

	c := New([]byte{0xAB})
	w.ShouldHaveResult(c.ReadUint(6))

	_, err := c.ReadUint(3)
	w.As("3 bits of 2").ShouldFail(err)
	w.ShouldBeEqual(c.Remaining(), 2)

	v := w.ShouldHaveResult(c.ReadUint(2)).(uint64)
	w.ShouldBeEqual(v, uint64(0x3))

	_, err = c.ReadUint(1)
	w.As("empty cursor").ShouldFail(err)
}

func TestReadBool(t *testing.T) {
	w := expect.WrapT(t)

	c := New([]byte{0x80})
	v := w.ShouldHaveResult(c.ReadBool()).(bool)
	w.ShouldBeEqual(v, true)
	v = w.ShouldHaveResult(c.ReadBool()).(bool)
	w.ShouldBeEqual(v, false)
}
