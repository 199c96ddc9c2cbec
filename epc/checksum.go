/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "github.com/pkg/errors"

// GS1Checksum returns the GS1 mod-10 check digit for a string of decimal
// digits, per GS1 General Specifications section 7.9: counting from the
// rightmost digit, digits in odd positions are weighted x3 and digits in even
// positions x1; the check digit is the mod-10 additive inverse of the
// weighted sum.
//
// The input must consist entirely of the characters '0'-'9'; anything else is
// an error.
func GS1Checksum(digits string) (int, error) {
	if digits == "" {
		return 0, errors.New("checksum input is empty")
	}
	var odd, even int
	for i := 0; i < len(digits); i++ {
		ch := digits[len(digits)-1-i]
		if ch < '0' || ch > '9' {
			return 0, errors.Errorf("checksum input must be numeric, "+
				"but %q contains %q", digits, ch)
		}
		if i%2 == 0 {
			odd += int(ch - '0')
		} else {
			even += int(ch - '0')
		}
	}
	check := (3*odd + even) % 10
	if check > 0 {
		check = 10 - check
	}
	return check, nil
}

// checkDigit is GS1Checksum for element strings this package builds itself,
// which are always numeric.
func checkDigit(digits string) int {
	check, _ := GS1Checksum(digits)
	return check
}
