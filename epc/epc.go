/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

// EPC is a decoded Electronic Product Code from a tag's EPC memory bank.
//
// The set of implementations is closed: an EPC is always one of Unprogrammed,
// SGTIN96, SGTIN198, SSCC96, GID96, or GRAI96, and callers may type-switch
// over pointers to those types to inspect the fields of a particular variant.
type EPC interface {
	// URI returns the EPC pure-identity URI for this identifier, e.g.
	//     urn:epc:id:sgtin:0614141.812345.6789
	URI() string

	// TagURI returns the EPC tag URI, which includes all data from the
	// pure-identity URI plus the filter value and the binary encoding
	// scheme, e.g.
	//     urn:epc:tag:sgtin-96:3.0614141.812345.6789
	TagURI() string

	// epcVariant restricts implementations to this package.
	epcVariant()
}

// GS1 is satisfied by EPC variants whose identifier is a key defined in the
// GS1 General Specifications and thus has an element string form.
type GS1 interface {
	EPC

	// ElementString returns the GS1 element string, e.g.
	//     (01) 80614141123458 (21) 6789
	ElementString() string
}

// GS1 General Specifications, Figure 3.2-1: the application identifiers used
// in element strings.
const (
	aiSSCC         = 0
	aiGTIN         = 1
	aiSerialNumber = 21
)

func (SGTIN96) epcVariant()      {}
func (SGTIN198) epcVariant()     {}
func (SSCC96) epcVariant()       {}
func (GID96) epcVariant()        {}
func (GRAI96) epcVariant()       {}
func (Unprogrammed) epcVariant() {}
