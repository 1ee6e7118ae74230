package bflang

import (
	"testing"

	"github.com/reusee/bf/bfvm"
)

func BenchmarkRun(b *testing.B) {
	// busy nested countdown
	fn, err := CompileString("bench", "++++++++[>++++++++[>++++++++<-]<-]")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for range b.N {
		vm := bfvm.NewVM(fn, nil, nil)
		for err := range vm.Run {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkCompile(b *testing.B) {
	const src = `++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.`
	for range b.N {
		if _, err := CompileString("bench", src); err != nil {
			b.Fatal(err)
		}
	}
}
