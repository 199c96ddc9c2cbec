/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package tid

// Unknown is returned by the name lookups when the registry has no entry.
const Unknown = "Unknown"

// Mask designer identifiers registered with EPCglobal. The registry is larger
// than this; these are the designers whose tags show up in practice.
var maskDesigners = map[uint16]string{
	1:  "Impinj",
	2:  "Texas Instruments",
	3:  "Alien Technology",
	4:  "Intelleflex",
	5:  "Atmel",
	6:  "NXP Semiconductors",
	7:  "ST Microelectronics",
	8:  "EP Memory",
	9:  "Motorola",
	10: "Sentech Snell",
	11: "EM Microelectronics",
	12: "Celis Semiconductor",
	13: "ON Semiconductor",
	14: "Ramtron",
	15: "Tego",
}

// Tag model numbers, keyed by mask designer then model. Model numbers are
// scoped to their designer, so the tables nest.
var tagModels = map[uint16]map[uint16]string{
	1: { // Impinj
		0x100: "Monza 4D",
		0x105: "Monza 4QT",
		0x10C: "Monza 4E",
		0x130: "Monza 5",
		0x160: "Monza R6",
		0x170: "Monza R6-P",
	},
}

// ManufacturerName returns the name of the registered mask designer, or
// "Unknown" if the ID isn't in the registry.
func ManufacturerName(maskDesignerID uint16) string {
	if name, ok := maskDesigners[maskDesignerID]; ok {
		return name
	}
	return Unknown
}

// ModelName returns the name of a tag model, scoped to its mask designer, or
// "Unknown" if either the designer or the model isn't in the registry.
func ModelName(maskDesignerID, tagModelID uint16) string {
	if name, ok := tagModels[maskDesignerID][tagModelID]; ok {
		return name
	}
	return Unknown
}
