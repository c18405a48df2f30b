// SPDX-License-Identifier: MIT
// Package: apcover/instance
//
// errors.go - sentinel errors for the instance package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Context is attached with %w and a method prefix, e.g.
//     "Random: p=1.500000 not in [0.0,1.0]: instance: probability out of range".
//   • Option constructors (WithX) panic on meaningless input; Random and
//     Decode never panic.

package instance

import "errors"

// ErrBadSize indicates a negative room or AP count.
var ErrBadSize = errors.New("instance: invalid size")

// ErrInvalidProbability indicates a coverage probability outside [0,1] or NaN.
var ErrInvalidProbability = errors.New("instance: probability out of range")

// ErrMalformedInstance indicates an instance document that cannot be decoded
// or whose parts disagree (e.g. one cost per AP is violated).
var ErrMalformedInstance = errors.New("instance: malformed instance")

// ErrInvalidCostRange indicates cost bounds that are not finite or violate 0 < lo <= hi.
var ErrInvalidCostRange = errors.New("instance: invalid cost range")
