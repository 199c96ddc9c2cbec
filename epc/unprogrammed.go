/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

// Unprogrammed represents an EPC bank whose header byte is 0x00, which TDS
// Table 14-1 assigns to tags that have not been programmed. The bytes after
// the header are carried verbatim.
type Unprogrammed struct {
	data []byte
}

// Data returns a copy of the bytes following the header.
func (u Unprogrammed) Data() []byte {
	d := make([]byte, len(u.data))
	copy(d, u.data)
	return d
}

// URI returns a fixed URI: an unprogrammed tag carries no identifier.
func (u Unprogrammed) URI() string {
	return "urn:epc:id:unprogrammed"
}

func (u Unprogrammed) TagURI() string {
	return "urn:epc:tag:unprogrammed"
}

func decodeUnprogrammed(data []byte) *Unprogrammed {
	d := make([]byte, len(data))
	copy(d, data)
	return &Unprogrammed{data: d}
}
