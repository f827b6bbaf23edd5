// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/katalvlaran/kngen/builder"
)

func BenchmarkComplete_256(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Complete(256); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompleteGraph_256(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := builder.CompleteGraph(256); err != nil {
			b.Fatal(err)
		}
	}
}
