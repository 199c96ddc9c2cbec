/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decoder/bitcursor"
	"github.com/pkg/errors"
)

// zeroPad renders v as a decimal string left-padded with '0's to the given
// number of digits. Values wider than the digit count are not truncated.
func zeroPad(v uint64, digits int) string {
	return fmt.Sprintf("%0*d", digits, v)
}

// extractIndicator splits a raw partitioned item field into the item value
// and the indicator digit, per TDS section 14.5.1: the field rendered as a
// decimal string zero-padded to its partition digit count starts with the
// indicator digit, and the remaining characters are the item value.
//
// If the remaining characters don't parse as an unsigned integer -- which can
// only happen at a digit count of 1, where nothing follows the indicator --
// that's an error.
func extractIndicator(field uint64, digits int) (item uint64, indicator int, err error) {
	s := zeroPad(field, digits)
	indicator = int(s[0] - '0')
	item, err = strconv.ParseUint(s[1:], 10, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err,
			"item field %q has no item value after the indicator digit", s)
	}
	return item, indicator, nil
}

// readString reads a 7-bit ISO 646 (ASCII) character string from the cursor,
// per TDS section 14.4.2. It reads min(remaining, maxBits)/7 characters and
// drops every character whose value is zero: the standard null-pads
// variable-length string fields, and a zero septet is padding wherever it
// occurs.
func readString(c *bitcursor.Cursor, maxBits int) (string, error) {
	bits := c.Remaining()
	if maxBits < bits {
		bits = maxBits
	}
	numChars := bits / 7
	buf := make([]byte, 0, numChars)
	for i := 0; i < numChars; i++ {
		v, err := c.ReadUint(7)
		if err != nil {
			return "", err
		}
		if v != 0 {
			buf = append(buf, byte(v))
		}
	}
	return string(buf), nil
}

// uriEncode percent-encodes every non-alphanumeric character of s for use in
// the serial segment of an EPC URI, using upper-case hex per RFC 3986.
func uriEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case '0' <= ch && ch <= '9',
			'A' <= ch && ch <= 'Z',
			'a' <= ch && ch <= 'z':
			b.WriteByte(ch)
		default:
			fmt.Fprintf(&b, "%%%02X", ch)
		}
	}
	return b.String()
}
