// SPDX-License-Identifier: MIT

package bench

import "time"

// Clock supplies timestamps to the harness.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock (monotonic reading included).
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }
