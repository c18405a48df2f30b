// SPDX-License-Identifier: MIT

package bench

import "errors"

// ErrInvalidHarness indicates a Harness configured with unusable values
// (trials < 1, probability outside [0,1], nil clock or solver).
var ErrInvalidHarness = errors.New("bench: invalid harness configuration")
