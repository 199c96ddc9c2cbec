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

// GRAI96 is a Global Returnable Asset Identifier decoded from the GRAI-96
// binary encoding (TDS section 14.5.5). A GRAI identifies a returnable asset,
// such as a reusable crate, keg, or pallet.
//
// The company prefix and asset type share 12 digits according to the
// partition; the 38-bit serial number distinguishes individual assets of the
// same type.
type GRAI96 struct {
	filter        int
	partition     int
	companyPrefix uint64
	assetType     uint64
	serial        uint64
}

func (g GRAI96) Filter() int {
	return g.filter
}

func (g GRAI96) Partition() int {
	return g.partition
}

// CompanyPrefix returns the GS1 company prefix, zero-padded to its partition
// digit count.
func (g GRAI96) CompanyPrefix() string {
	return zeroPad(g.companyPrefix, 12-g.partition)
}

// AssetType returns the asset type, zero-padded to its partition digit count.
// At partition 0 the company prefix takes all 12 digits and the asset type is
// empty.
func (g GRAI96) AssetType() string {
	if g.partition == 0 {
		return ""
	}
	return zeroPad(g.assetType, g.partition)
}

func (g GRAI96) Serial() uint64 {
	return g.serial
}

// URI returns the pure-identity URI, TDS section 6.3.8:
//     urn:epc:id:grai:CompanyPrefix.AssetType.Serial
func (g GRAI96) URI() string {
	return fmt.Sprintf("urn:epc:id:grai:%s.%s.%d",
		g.CompanyPrefix(), g.AssetType(), g.serial)
}

// TagURI returns the tag URI, which adds the filter value and the encoding
// scheme to the pure-identity fields.
func (g GRAI96) TagURI() string {
	return fmt.Sprintf("urn:epc:tag:grai-96:%d.%s.%s.%d",
		g.filter, g.CompanyPrefix(), g.AssetType(), g.serial)
}

func decodeGRAI96(data []byte) (EPC, error) {
	c := bitcursor.New(data)
	filter, err := c.ReadUint(3)
	if err != nil {
		return nil, errors.Wrap(err, "filter")
	}
	partition, err := c.ReadUint(3)
	if err != nil {
		return nil, errors.Wrap(err, "partition")
	}
	part, err := lookupPartition(&graiPartitions, partition)
	if err != nil {
		return nil, err
	}
	company, err := c.ReadUint(part.companyBits)
	if err != nil {
		return nil, errors.Wrap(err, "company prefix")
	}
	assetType, err := c.ReadUint(part.otherBits)
	if err != nil {
		return nil, errors.Wrap(err, "asset type")
	}
	serial, err := c.ReadUint(38)
	if err != nil {
		return nil, errors.Wrap(err, "serial")
	}
	return &GRAI96{
		filter:        int(filter),
		partition:     int(partition),
		companyPrefix: company,
		assetType:     assetType,
		serial:        serial,
	}, nil
}
