/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestDecode_unprogrammed(t *testing.T) {
	w := expect.WrapT(t)

	data := []byte{0x00, 0xB0, 0x7A, 0x14, 0x0C, 0x5F, 0x9C, 0x51, 0x40, 0x00, 0x03, 0xEE}
	decoded := w.ShouldHaveResult(Decode(data)).(EPC)

	u, ok := decoded.(*Unprogrammed)
	w.StopOnMismatch().As("variant").ShouldBeEqual(ok, true)
	if !bytes.Equal(u.Data(), data[1:]) {
		t.Errorf("unprogrammed data %X should be the bytes after the header %X",
			u.Data(), data[1:])
	}
	w.ShouldBeEqual(u.URI(), "urn:epc:id:unprogrammed")
	w.ShouldBeEqual(u.TagURI(), "urn:epc:tag:unprogrammed")

	// the decoded value must not alias the input buffer
	data[1] = 0xFF
	w.As("aliasing").ShouldBeEqual(u.Data()[0], byte(0xB0))
}

func TestDecode_unimplementedHeaders(t *testing.T) {
	w := expect.WrapT(t)

	// recognized TDS Table 14-1 schemes without decoders
	for _, header := range []byte{
		HeaderGDTI96, HeaderGSRN96, HeaderGSRNP96, HeaderUSDoD96,
		HeaderSGLN96, HeaderGIAI96, HeaderGRAI170, HeaderGIAI202,
		HeaderSGLN195, HeaderGDTI113, HeaderADIVar, HeaderCPI96,
		HeaderCPIVar, HeaderGDTI174, HeaderSGCN96, HeaderITIP110,
		HeaderITIP212,
	} {
		data := make([]byte, 12)
		data[0] = header
		_, err := Decode(data)
		as := w.As(fmt.Sprintf("header %#02X", header))
		as.ShouldFail(err)
		as.ShouldBeEqual(IsUnimplemented(err), true)
	}
}

func TestDecode_unknownHeaders(t *testing.T) {
	w := expect.WrapT(t)

	// 0xE2 is the TID allocation class; it never starts a valid EPC bank.
	// The others simply match nothing in Table 14-1.
	for _, epc := range []string{
		"E2801160600002054CC2096F",
		"01301CA0",
		"FF301CA0",
		"42000000000000000000000000",
	} {
		_, err := DecodeString(epc)
		w.As(epc).ShouldFail(err)
		w.As(epc).ShouldBeEqual(IsUnimplemented(err), false)
	}
}

func TestDecode_emptyAndMalformed(t *testing.T) {
	w := expect.WrapT(t)

	_, err := Decode(nil)
	w.As("nil").ShouldFail(err)
	_, err = Decode([]byte{})
	w.As("empty").ShouldFail(err)
	_, err = DecodeString("30X4")
	w.As("bad hex").ShouldFail(err)

	// header alone isn't enough for any programmed scheme
	for _, header := range []byte{HeaderSGTIN96, HeaderSGTIN198, HeaderSSCC96,
		HeaderGID96, HeaderGRAI96} {
		_, err := Decode([]byte{header})
		as := w.As(fmt.Sprintf("header %#02X", header))
		as.ShouldFail(err)
		as.ShouldBeEqual(IsUnimplemented(err), false)
	}

	// truncated bodies fail with a parse error, not a panic
	_, err = DecodeString("3074257BF7194E40")
	w.As("truncated SGTIN-96").ShouldFail(err)
	_, err = DecodeString("3174257BF44996")
	w.As("truncated SSCC-96").ShouldFail(err)
	_, err = DecodeString("355AB1C6000303")
	w.As("truncated GID-96").ShouldFail(err)
}
