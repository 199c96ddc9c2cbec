/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package epc decodes the binary EPC memory bank of Gen2 RFID tags into
// structured GS1 identifiers and renders them in the textual forms defined by
// the GS1 EPC Tag Data Standard.
//
// The following are links to the GS1 General Standard and the EPC Tag Data
// Standard; this code is based on these documents and does its best to both
// follow their guidelines and properly implement their definitions:
// - https://www.gs1.org/sites/default/files/docs/barcodes/GS1_General_Specifications.pdf
// - https://www.gs1.org/standards/epcrfid-epcis-id-keys/epc-rfid-tds/1-12
//
// Decoding starts from the EPC binary header (TDS Table 14-1): the first byte
// of the bank selects the binary encoding scheme, and the remaining bytes are
// split into fields at bit granularity. Decode distinguishes three outcomes:
// a successfully decoded identifier; a recognized encoding this package does
// not implement (see UnimplementedError); and data that is not a valid EPC
// bank at all, which is reported as a plain error. Callers that need to react
// differently to "valid but unsupported" and "malformed" should test errors
// with IsUnimplemented.
//
// GS1 recommends the pure-identity URI as the canonical representation of an
// EPC, since it is independent of the tag encoding: two EPCs are the same if
// and only if their pure-identity URIs are character-for-character identical.
// Every decoded identifier provides that form via URI(). The tag URI form
// (TagURI) additionally captures the filter value and the binary encoding
// scheme, so it can be used to recover the exact binary shape of the tag.
// Identifiers that correspond to keys in the GS1 General Specifications
// (GTIN, SSCC) also render as GS1 element strings with their application
// identifiers and mod-10 check digit.
package epc
