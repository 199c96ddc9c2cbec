/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"

	"github.com/pkg/errors"
)

// UnimplementedError reports an EPC header byte that names a valid binary
// encoding scheme from TDS Table 14-1 for which this package has no decoder.
//
// It is distinct from the plain errors returned for malformed data so that
// callers can tell "this tag used an encoding we haven't built" apart from
// "this tag is corrupt or isn't an EPC at all".
type UnimplementedError struct {
	Header byte
}

func (e UnimplementedError) Error() string {
	return fmt.Sprintf("EPC header %#02X is a recognized encoding scheme, "+
		"but this package does not implement it", e.Header)
}

// IsUnimplemented returns true if err (or its cause) is an UnimplementedError.
func IsUnimplemented(err error) bool {
	_, ok := errors.Cause(err).(UnimplementedError)
	return ok
}
