package bnb_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/hkbb/bnb"
	"github.com/katalvlaran/hkbb/heldkarp"
)

func benchmarkSolve(b *testing.B, n int, opts bnb.Options) {
	in := randomInstance(b, n, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bnb.Solve(context.Background(), in, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_N12(b *testing.B) { benchmarkSolve(b, 12, bnb.Options{}) }
func BenchmarkSolve_N20(b *testing.B) { benchmarkSolve(b, 20, bnb.Options{}) }
func BenchmarkSolve_N20Seeded(b *testing.B) {
	benchmarkSolve(b, 20, bnb.Options{SeedTour: true})
}
func BenchmarkSolve_N20Workers(b *testing.B) {
	benchmarkSolve(b, 20, bnb.Options{Workers: 3})
}

func BenchmarkNewRoot_N40(b *testing.B) {
	in := randomInstance(b, 40, 7)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bnb.NewRoot(in, heldkarp.Config{}); err != nil {
			b.Fatal(err)
		}
	}
}
