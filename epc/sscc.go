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

// SSCC96 is a Serial Shipping Container Code decoded from the SSCC-96 binary
// encoding (TDS section 14.5.2). An SSCC identifies a logistics unit, such as
// a pallet or a parcel.
//
// An SSCC is 18 digits: the extension digit (stored here as the indicator),
// the company prefix and serial reference sharing 17 digits according to the
// partition, and the check digit, which is not stored but recomputed when
// formatting the element string.
type SSCC96 struct {
	filter        int
	partition     int
	indicator     int
	companyPrefix uint64
	serial        uint64
}

func (s SSCC96) Filter() int {
	return s.filter
}

func (s SSCC96) Partition() int {
	return s.partition
}

// Indicator returns the SSCC extension digit.
func (s SSCC96) Indicator() int {
	return s.indicator
}

// CompanyPrefix returns the GS1 company prefix, zero-padded to its partition
// digit count.
func (s SSCC96) CompanyPrefix() string {
	return zeroPad(s.companyPrefix, 12-s.partition)
}

// SerialReference returns the serial reference (without the extension digit),
// zero-padded to its partition digit count.
func (s SSCC96) SerialReference() string {
	return zeroPad(s.serial, s.partition+4)
}

// URI returns the pure-identity URI, TDS section 6.3.1:
//     urn:epc:id:sscc:CompanyPrefix.ExtensionSerialRef
func (s SSCC96) URI() string {
	return fmt.Sprintf("urn:epc:id:sscc:%s.%d%s",
		s.CompanyPrefix(), s.indicator, s.SerialReference())
}

// TagURI returns the tag URI, which adds the filter value and the encoding
// scheme to the pure-identity fields.
func (s SSCC96) TagURI() string {
	return fmt.Sprintf("urn:epc:tag:sscc-96:%d.%s.%d%s",
		s.filter, s.CompanyPrefix(), s.indicator, s.SerialReference())
}

// ElementString returns the GS1 element string: the 18-digit SSCC under
// AI 00, with its check digit appended.
func (s SSCC96) ElementString() string {
	sscc := fmt.Sprintf("%d%s%s", s.indicator, s.CompanyPrefix(), s.SerialReference())
	return fmt.Sprintf("(%02d) %s%d", aiSSCC, sscc, checkDigit(sscc))
}

func decodeSSCC96(data []byte) (EPC, error) {
	c := bitcursor.New(data)
	filter, err := c.ReadUint(3)
	if err != nil {
		return nil, errors.Wrap(err, "filter")
	}
	partition, err := c.ReadUint(3)
	if err != nil {
		return nil, errors.Wrap(err, "partition")
	}
	part, err := lookupPartition(&ssccPartitions, partition)
	if err != nil {
		return nil, err
	}
	company, err := c.ReadUint(part.companyBits)
	if err != nil {
		return nil, errors.Wrap(err, "company prefix")
	}
	field, err := c.ReadUint(part.otherBits)
	if err != nil {
		return nil, errors.Wrap(err, "serial reference")
	}
	serial, indicator, err := extractIndicator(field, part.otherDigits)
	if err != nil {
		return nil, err
	}
	return &SSCC96{
		filter:        int(filter),
		partition:     int(partition),
		indicator:     indicator,
		companyPrefix: company,
		serial:        serial,
	}, nil
}
