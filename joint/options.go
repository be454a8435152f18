// SPDX-License-Identifier: MIT
// Package: einsolid/joint
//
// options.go — functional options for Build.

package joint

// Option customizes a Build call.
type Option func(*buildConfig)

// buildConfig is the resolved set of options.
type buildConfig struct {
	memo   bool
	verify bool
}

// WithMemo evaluates each solid through a multiplicity.Table, so consecutive
// q values reuse the previous binomial instead of recomputing it.
// Results are identical to the direct path.
func WithMemo() Option {
	return func(c *buildConfig) {
		c.memo = true
	}
}

// WithVerify makes Build check the convolution identity before returning.
// A mismatch yields ErrIdentityViolated.
func WithVerify() Option {
	return func(c *buildConfig) {
		c.verify = true
	}
}

// newBuildConfig applies opts over the defaults (direct evaluation, no check).
func newBuildConfig(opts ...Option) buildConfig {
	var cfg buildConfig
	for _, opt := range opts {
		if opt == nil {
			panic("joint: nil Option")
		}
		opt(&cfg)
	}

	return cfg
}
