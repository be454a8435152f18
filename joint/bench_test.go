package joint_test

import (
	"testing"

	"github.com/katalvlaran/einsolid/joint"
)

// benchmarkBuild runs Build at the upper end of the interactive ranges.
func benchmarkBuild(b *testing.B, opts ...joint.Option) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := joint.Build(100, 300, 300, opts...); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_Direct evaluates every binomial from scratch.
func BenchmarkBuild_Direct(b *testing.B) { benchmarkBuild(b) }

// BenchmarkBuild_Memo reuses per-solid Tables across the sweep.
func BenchmarkBuild_Memo(b *testing.B) { benchmarkBuild(b, joint.WithMemo()) }
