package ucomp_test

import (
	"testing"

	"github.com/qmetrika/uqm/ucomp"
)

func buildChain(depth int) ucomp.Component {
	x, _ := ucomp.NewInput(1, 0.1)

	node := ucomp.Component(x)
	for i := 0; i < depth; i++ {
		node = ucomp.Add(ucomp.Mul(node, ucomp.Const(1.0001)), x)
	}

	return node
}

func BenchmarkUncertainty_Chain1k(b *testing.B) {
	root := buildChain(1_000)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ucomp.NewContext().Uncertainty(root); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUncertainty_Cached(b *testing.B) {
	root := buildChain(1_000)
	ctx := ucomp.NewContext()
	if _, err := ctx.Uncertainty(root); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ctx.Uncertainty(root); err != nil {
			b.Fatal(err)
		}
	}
}
