// SPDX-License-Identifier: MIT
// Package: einsolid/joint
//
// errors.go — sentinel errors for the joint package.
//
// Parameter validation reuses multiplicity.ErrInvalidArgument so callers test
// one sentinel for every domain violation regardless of the layer that saw it.

package joint

import "errors"

var (
	// ErrOutOfRange indicates that a q_A index lies outside [0, q_total].
	ErrOutOfRange = errors.New("joint: q_A out of range")

	// ErrIdentityViolated indicates that the distribution does not sum to
	// Ω(q_total, N_A+N_B). It signals a defect, never bad input.
	ErrIdentityViolated = errors.New("joint: sum of distribution differs from combined multiplicity")
)

// Operation names used when wrapping sentinels.
const (
	opBuild    = "Build"
	opSequence = "Sequence"
	opAt       = "Distribution.At"
	opVerify   = "Distribution.Verify"
)
