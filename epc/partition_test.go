/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestPartitionTables_digitBudgets(t *testing.T) {
	w := expect.WrapT(t)

	for _, tt := range []struct {
		name        string
		table       *[7]partitionEntry
		totalDigits int
	}{
		{"sgtin", &sgtinPartitions, 13},
		{"sscc", &ssccPartitions, 17},
		{"grai", &graiPartitions, 12},
	} {
		for p := uint64(0); p <= 6; p++ {
			entry := w.ShouldHaveResult(lookupPartition(tt.table, p)).(partitionEntry)
			as := w.As(fmt.Sprintf("%s partition %d", tt.name, p))
			as.ShouldBeEqual(entry.companyDigits+entry.otherDigits, tt.totalDigits)
			as.ShouldBeEqual(entry.companyDigits, 12-int(p))
		}
	}
}

func TestPartitionTables_failClosed(t *testing.T) {
	w := expect.WrapT(t)

	for _, table := range []*[7]partitionEntry{
		&sgtinPartitions, &ssccPartitions, &graiPartitions,
	} {
		for p := uint64(7); p < 10; p++ {
			_, err := lookupPartition(table, p)
			w.As(fmt.Sprintf("partition %d", p)).ShouldFail(err)
		}
	}
}

func TestDecode_invalidPartition(t *testing.T) {
	w := expect.WrapT(t)

	// second byte 0x1C puts partition 7 after a 0 filter value
	for _, epc := range []string{
		"301C00004000004000000001",                           // SGTIN-96
		"361C0000400000400000000100000000000000000000000000", // SGTIN-198
		"311C00004000004000000001",                           // SSCC-96
		"331C00004000004000000001",                           // GRAI-96
	} {
		_, err := DecodeString(epc)
		w.As(epc).ShouldFail(err)
		w.As(epc).ShouldBeEqual(IsUnimplemented(err), false)
	}
}
