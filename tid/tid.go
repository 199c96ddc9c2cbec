/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package tid decodes the Tag Identification (TID) memory bank of Gen2 RFID
// tags, per section 16 of the GS1 EPC Tag Data Standard, and resolves the
// mask designer and tag model numbers it carries to manufacturer and model
// names.
//
// Unlike the EPC bank, the TID bank has a fixed layout: an allocation class
// byte (0xE2 for EPCglobal tags), three capability bits, a 9-bit mask
// designer identifier, and a 12-bit tag model number.
package tid

import (
	"encoding/hex"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decoder/bitcursor"
	"github.com/pkg/errors"
)

// AllocationClass is the permanently reserved first byte of the TID bank of
// EPCglobal tags.
const AllocationClass = 0xE2

// TID is the decoded fixed-layout portion of a TID memory bank.
type TID struct {
	// XTID indicates the tag implements the extended TID layout beyond
	// these fixed fields.
	XTID bool
	// Security indicates the tag supports the Gen2 security command set.
	Security bool
	// File indicates the tag supports the Gen2 file command set.
	File bool
	// MaskDesignerID identifies the tag chip's designer; resolve it to a
	// name with ManufacturerName.
	MaskDesignerID uint16
	// TagModelID identifies the chip model, scoped to the mask designer;
	// resolve it to a name with ModelName.
	TagModelID uint16
}

// Decode decodes the fixed-layout fields of a TID memory bank. The first byte
// must be the 0xE2 allocation class.
func Decode(data []byte) (TID, error) {
	c := bitcursor.New(data)

	header, err := c.ReadUint(8)
	if err != nil {
		return TID{}, errors.Wrap(err, "allocation class")
	}
	if header != AllocationClass {
		return TID{}, errors.Errorf("TID banks start with %#02X, "+
			"but this starts with %#02X", AllocationClass, header)
	}

	xtid, err := c.ReadBool()
	if err != nil {
		return TID{}, errors.Wrap(err, "XTID indicator")
	}
	security, err := c.ReadBool()
	if err != nil {
		return TID{}, errors.Wrap(err, "security indicator")
	}
	file, err := c.ReadBool()
	if err != nil {
		return TID{}, errors.Wrap(err, "file indicator")
	}
	mdid, err := c.ReadUint(9)
	if err != nil {
		return TID{}, errors.Wrap(err, "mask designer ID")
	}
	tmid, err := c.ReadUint(12)
	if err != nil {
		return TID{}, errors.Wrap(err, "tag model number")
	}

	return TID{
		XTID:           xtid,
		Security:       security,
		File:           file,
		MaskDesignerID: uint16(mdid),
		TagModelID:     uint16(tmid),
	}, nil
}

// DecodeString decodes a big-endian, hex-encoded TID memory bank.
func DecodeString(data string) (TID, error) {
	b, err := hex.DecodeString(data)
	if err != nil {
		return TID{}, errors.Wrap(err, "unable to decode TID data as hex")
	}
	return Decode(b)
}
