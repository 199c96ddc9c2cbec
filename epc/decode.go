/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// EPC binary header values, TDS Table 14-1. The header is the first byte of
// the EPC memory bank and selects the binary encoding scheme for the rest.
//
// Note that 0xE2 is deliberately absent: TDS reserves it as the allocation
// class byte of the TID memory bank, and it can never start a valid EPC.
const (
	HeaderUnprogrammed = 0x00
	HeaderGDTI96       = 0x2C
	HeaderGSRN96       = 0x2D
	HeaderGSRNP96      = 0x2E
	HeaderUSDoD96      = 0x2F
	HeaderSGTIN96      = 0x30
	HeaderSSCC96       = 0x31
	HeaderSGLN96       = 0x32
	HeaderGRAI96       = 0x33
	HeaderGIAI96       = 0x34
	HeaderGID96        = 0x35
	HeaderSGTIN198     = 0x36
	HeaderGRAI170      = 0x37
	HeaderGIAI202      = 0x38
	HeaderSGLN195      = 0x39
	HeaderGDTI113      = 0x3A
	HeaderADIVar       = 0x3B
	HeaderCPI96        = 0x3C
	HeaderCPIVar       = 0x3D
	HeaderGDTI174      = 0x3E
	HeaderSGCN96       = 0x3F
	HeaderITIP110      = 0x40
	HeaderITIP212      = 0x41
)

// Decode decodes the binary contents of a tag's EPC memory bank, as captured
// from the air interface: big-endian, with the most significant bit of the
// first byte as the first bit of the EPC.
//
// The error is nil exactly when the header byte selects an encoding scheme
// this package implements and the remaining bytes split cleanly into that
// scheme's fields. A recognized scheme without a decoder yields an
// UnimplementedError (see IsUnimplemented); a header byte that matches no
// scheme in TDS Table 14-1, or data too short for its scheme, yields a plain
// error.
//
// Decode does not validate that field values fall within the ranges the
// standards permit, and it never retains the input slice.
func Decode(data []byte) (EPC, error) {
	if len(data) == 0 {
		return nil, errors.New("no data provided")
	}

	body := data[1:]
	switch data[0] {
	case HeaderUnprogrammed:
		return decodeUnprogrammed(body), nil
	case HeaderSGTIN96:
		return decodeSGTIN96(body)
	case HeaderSGTIN198:
		return decodeSGTIN198(body)
	case HeaderSSCC96:
		return decodeSSCC96(body)
	case HeaderGID96:
		return decodeGID96(body)
	case HeaderGRAI96:
		return decodeGRAI96(body)
	case HeaderGDTI96, HeaderGSRN96, HeaderGSRNP96, HeaderUSDoD96,
		HeaderSGLN96, HeaderGIAI96, HeaderGRAI170, HeaderGIAI202,
		HeaderSGLN195, HeaderGDTI113, HeaderADIVar, HeaderCPI96,
		HeaderCPIVar, HeaderGDTI174, HeaderSGCN96, HeaderITIP110,
		HeaderITIP212:
		return nil, UnimplementedError{Header: data[0]}
	}
	return nil, errors.Errorf("unknown EPC header: %#02X", data[0])
}

// DecodeString decodes a big-endian, hex-encoded EPC memory bank.
func DecodeString(data string) (EPC, error) {
	b, err := hex.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode EPC data as hex")
	}
	return Decode(b)
}
