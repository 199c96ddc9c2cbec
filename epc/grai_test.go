/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestDecodeGRAI96(t *testing.T) {
	w := expect.WrapT(t)

	// filter 3, partition 5, company 0614141, asset type 12345, serial 400
	decoded := w.ShouldHaveResult(DecodeString("3374257BF40C0E4000000190")).(EPC)
	g, ok := decoded.(*GRAI96)
	w.StopOnMismatch().As("variant").ShouldBeEqual(ok, true)

	w.ShouldBeEqual(g.Filter(), 3)
	w.ShouldBeEqual(g.Partition(), 5)
	w.ShouldBeEqual(g.CompanyPrefix(), "0614141")
	w.ShouldBeEqual(g.AssetType(), "12345")
	w.ShouldBeEqual(g.Serial(), uint64(400))

	w.ShouldBeEqual(g.URI(), "urn:epc:id:grai:0614141.12345.400")
	w.ShouldBeEqual(g.TagURI(), "urn:epc:tag:grai-96:3.0614141.12345.400")

	// GRAI-96 has no element string rendering here
	if _, ok := decoded.(GS1); ok {
		t.Error("GRAI-96 should not satisfy the GS1 element string interface")
	}
}

func TestDecodeGRAI96_digitBudget(t *testing.T) {
	w := expect.WrapT(t)

	// company prefix and asset type always split 12 digits
	for partition := 0; partition <= 6; partition++ {
		data := make([]byte, 12)
		data[0] = HeaderGRAI96
		data[1] = byte(partition << 2)

		decoded, err := Decode(data)
		w.StopOnMismatch().As("decode").ShouldSucceed(err)
		g := decoded.(*GRAI96)
		w.ShouldBeEqual(len(g.CompanyPrefix())+len(g.AssetType()), 12)
	}
}
