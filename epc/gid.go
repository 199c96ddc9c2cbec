/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decoder/bitcursor"
	"github.com/pkg/errors"
)

// GID96 is a General Identifier decoded from the GID-96 binary encoding (TDS
// section 14.5.9): a general manager number assigned by GS1, an object class
// assigned by that manager, and a serial number identifying the instance.
//
// GID is self-contained within the EPC system -- it corresponds to no GS1 key
// and has no element string form. Its fields have fixed widths (28, 24, and
// 36 bits), so there is no partition or filter value.
type GID96 struct {
	manager int
	class   int
	serial  uint64
}

// Manager returns the general manager number.
func (g GID96) Manager() int {
	return g.manager
}

// Class returns the object class.
func (g GID96) Class() int {
	return g.class
}

func (g GID96) Serial() uint64 {
	return g.serial
}

// URI returns the pure-identity URI, TDS section 6.3.16. GID fields have no
// assigned digit counts, so none of the segments is zero-padded.
func (g GID96) URI() string {
	return fmt.Sprintf("urn:epc:id:gid:%d.%d.%d", g.manager, g.class, g.serial)
}

// TagURI returns the tag URI. GID-96 has no filter value, so it adds only the
// encoding scheme.
func (g GID96) TagURI() string {
	return fmt.Sprintf("urn:epc:tag:gid-96:%d.%d.%d", g.manager, g.class, g.serial)
}

func decodeGID96(data []byte) (EPC, error) {
	c := bitcursor.New(data)
	manager, err := c.ReadUint(28)
	if err != nil {
		return nil, errors.Wrap(err, "manager number")
	}
	class, err := c.ReadUint(24)
	if err != nil {
		return nil, errors.Wrap(err, "object class")
	}
	serial, err := c.ReadUint(36)
	if err != nil {
		return nil, errors.Wrap(err, "serial")
	}
	return &GID96{
		manager: int(manager),
		class:   int(class),
		serial:  serial,
	}, nil
}
