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

// SGTIN96 is a serialized GTIN with a numeric serial number, decoded from the
// SGTIN-96 binary encoding (TDS section 14.5.1).
//
// An SGTIN does not directly correspond to a GS1 identifier; it combines a
// GS1 GTIN (which identifies a trade item class) with a serial number that
// identifies the specific instance of that class. The indicator digit is part
// of the GTIN but is carried inside the partitioned item reference field of
// the binary encoding, so it is split out during decoding.
//
// Although the company prefix and item reference are, in principle, strings
// with significant leading '0's, the partition value unambiguously fixes
// their digit counts, so they are stored as integers and re-padded when
// formatted.
type SGTIN96 struct {
	filter        int
	partition     int
	companyPrefix uint64
	indicator     int
	itemRef       uint64
	serial        uint64
}

func (s SGTIN96) Filter() int {
	return s.filter
}

func (s SGTIN96) Partition() int {
	return s.partition
}

// CompanyPrefix returns the GS1 company prefix, zero-padded to its partition
// digit count.
func (s SGTIN96) CompanyPrefix() string {
	return zeroPad(s.companyPrefix, 12-s.partition)
}

// Indicator returns the GTIN-14 indicator digit.
func (s SGTIN96) Indicator() int {
	return s.indicator
}

// ItemReference returns the item reference (without the indicator digit),
// zero-padded to its partition digit count.
func (s SGTIN96) ItemReference() string {
	return zeroPad(s.itemRef, s.partition)
}

func (s SGTIN96) Serial() uint64 {
	return s.serial
}

// URI returns the pure-identity URI, TDS section 6.3.1:
//     urn:epc:id:sgtin:CompanyPrefix.IndicatorItemRef.Serial
func (s SGTIN96) URI() string {
	return fmt.Sprintf("urn:epc:id:sgtin:%s.%d%s.%d",
		s.CompanyPrefix(), s.indicator, s.ItemReference(), s.serial)
}

// TagURI returns the tag URI, which adds the filter value and the encoding
// scheme to the pure-identity fields.
func (s SGTIN96) TagURI() string {
	return fmt.Sprintf("urn:epc:tag:sgtin-96:%d.%s.%d%s.%d",
		s.filter, s.CompanyPrefix(), s.indicator, s.ItemReference(), s.serial)
}

// ElementString returns the GS1 element string: the GTIN-14 under AI 01 and
// the serial number under AI 21.
func (s SGTIN96) ElementString() string {
	gtin := fmt.Sprintf("%d%s%s", s.indicator, s.CompanyPrefix(), s.ItemReference())
	return fmt.Sprintf("(%02d) %s%d (%02d) %d",
		aiGTIN, gtin, checkDigit(gtin), aiSerialNumber, s.serial)
}

// SGTIN198 is a serialized GTIN with an alphanumeric serial number, decoded
// from the SGTIN-198 binary encoding (TDS section 14.5.1.2).
//
// Its serial is a string of up to 20 characters packed as 7-bit ISO 646. The
// GS1 General Specifications treat all serials as strings, where '0', '07',
// and '007' are distinct; SGTIN-198 can represent all of them, unlike
// SGTIN-96, which is restricted to numeric serials without leading zeros.
type SGTIN198 struct {
	filter        int
	partition     int
	companyPrefix uint64
	indicator     int
	itemRef       uint64
	serial        string
}

func (s SGTIN198) Filter() int {
	return s.filter
}

func (s SGTIN198) Partition() int {
	return s.partition
}

// CompanyPrefix returns the GS1 company prefix, zero-padded to its partition
// digit count.
func (s SGTIN198) CompanyPrefix() string {
	return zeroPad(s.companyPrefix, 12-s.partition)
}

// Indicator returns the GTIN-14 indicator digit.
func (s SGTIN198) Indicator() int {
	return s.indicator
}

// ItemReference returns the item reference (without the indicator digit),
// zero-padded to its partition digit count.
func (s SGTIN198) ItemReference() string {
	return zeroPad(s.itemRef, s.partition)
}

func (s SGTIN198) Serial() string {
	return s.serial
}

// URI returns the pure-identity URI; the serial segment is percent-encoded.
func (s SGTIN198) URI() string {
	return fmt.Sprintf("urn:epc:id:sgtin:%s.%d%s.%s",
		s.CompanyPrefix(), s.indicator, s.ItemReference(), uriEncode(s.serial))
}

// TagURI returns the tag URI; the serial segment is percent-encoded.
func (s SGTIN198) TagURI() string {
	return fmt.Sprintf("urn:epc:tag:sgtin-198:%d.%s.%d%s.%s",
		s.filter, s.CompanyPrefix(), s.indicator, s.ItemReference(),
		uriEncode(s.serial))
}

// ElementString returns the GS1 element string: the GTIN-14 under AI 01 and
// the serial number, unescaped, under AI 21.
func (s SGTIN198) ElementString() string {
	gtin := fmt.Sprintf("%d%s%s", s.indicator, s.CompanyPrefix(), s.ItemReference())
	return fmt.Sprintf("(%02d) %s%d (%02d) %s",
		aiGTIN, gtin, checkDigit(gtin), aiSerialNumber, s.serial)
}

// sgtinFields reads the fields SGTIN-96 and SGTIN-198 share: the filter, the
// partition, and the partitioned company prefix and indicator/item reference.
func sgtinFields(c *bitcursor.Cursor) (s SGTIN96, err error) {
	filter, err := c.ReadUint(3)
	if err != nil {
		return s, errors.Wrap(err, "filter")
	}
	partition, err := c.ReadUint(3)
	if err != nil {
		return s, errors.Wrap(err, "partition")
	}
	part, err := lookupPartition(&sgtinPartitions, partition)
	if err != nil {
		return s, err
	}
	company, err := c.ReadUint(part.companyBits)
	if err != nil {
		return s, errors.Wrap(err, "company prefix")
	}
	field, err := c.ReadUint(part.otherBits)
	if err != nil {
		return s, errors.Wrap(err, "item reference")
	}
	item, indicator, err := extractIndicator(field, part.otherDigits)
	if err != nil {
		return s, err
	}
	return SGTIN96{
		filter:        int(filter),
		partition:     int(partition),
		companyPrefix: company,
		indicator:     indicator,
		itemRef:       item,
	}, nil
}

func decodeSGTIN96(data []byte) (EPC, error) {
	c := bitcursor.New(data)
	s, err := sgtinFields(c)
	if err != nil {
		return nil, err
	}
	serial, err := c.ReadUint(38)
	if err != nil {
		return nil, errors.Wrap(err, "serial")
	}
	s.serial = serial
	return &s, nil
}

func decodeSGTIN198(data []byte) (EPC, error) {
	c := bitcursor.New(data)
	s, err := sgtinFields(c)
	if err != nil {
		return nil, err
	}
	serial, err := readString(c, 140)
	if err != nil {
		return nil, errors.Wrap(err, "serial")
	}
	return &SGTIN198{
		filter:        s.filter,
		partition:     s.partition,
		companyPrefix: s.companyPrefix,
		indicator:     s.indicator,
		itemRef:       s.itemRef,
		serial:        serial,
	}, nil
}
