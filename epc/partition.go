/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "github.com/pkg/errors"

// partitionEntry gives the bit widths and decimal digit counts of the two
// variable-width fields of a partitioned EPC encoding: the GS1 company prefix
// and whatever shares its 44-bit (or wider) field with it -- the item
// reference, the serial reference, or the asset type, depending on scheme.
//
// The digit counts always sum to the scheme's fixed total: 13 for SGTIN
// (where one of the "other" digits is the indicator digit), 17 for SSCC, and
// 12 for GRAI.
type partitionEntry struct {
	companyBits   int
	companyDigits int
	otherBits     int
	otherDigits   int
}

var (
	// TDS Table 14-2 (SGTIN): company prefix and indicator/item reference.
	sgtinPartitions = [7]partitionEntry{
		{40, 12, 4, 1},
		{37, 11, 7, 2},
		{34, 10, 10, 3},
		{30, 9, 14, 4},
		{27, 8, 17, 5},
		{24, 7, 20, 6},
		{20, 6, 24, 7},
	}

	// TDS Table 14-5 (SSCC): company prefix and extension/serial reference.
	ssccPartitions = [7]partitionEntry{
		{40, 12, 18, 5},
		{37, 11, 21, 6},
		{34, 10, 24, 7},
		{30, 9, 28, 8},
		{27, 8, 31, 9},
		{24, 7, 34, 10},
		{20, 6, 48, 11},
	}

	// TDS Table 14-14 (GRAI): company prefix and asset type.
	graiPartitions = [7]partitionEntry{
		{40, 12, 4, 0},
		{37, 11, 7, 1},
		{34, 10, 10, 2},
		{30, 9, 14, 3},
		{27, 8, 17, 4},
		{24, 7, 20, 5},
		{20, 6, 24, 6},
	}
)

// lookupPartition resolves a 3-bit partition value against one of the TDS
// partition tables. The standard assigns only values 0-6; 7 is an error, not
// a default row, since without a valid partition the remaining fields cannot
// be split.
func lookupPartition(table *[7]partitionEntry, partition uint64) (partitionEntry, error) {
	if partition > 6 {
		return partitionEntry{}, errors.Errorf("invalid partition value: %d", partition)
	}
	return table[partition], nil
}
