package signed_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hilbert/numeric"
	"github.com/katalvlaran/hilbert/signed"
)

// ExampleBasis bounds a single non-negative variable: x ≤ 1. Basis rows
// run over (c, x) with the constant coordinate first; the row with c = 1
// is the extreme point x = 1.
func ExampleBasis() {
	b := signed.New()
	_ = b.AddLe(numeric.Vec(1), numeric.One())

	fmt.Println(b.Saturate())

	rows := make([]string, 0, b.Size())
	for i := 0; i < b.Size(); i++ {
		rows = append(rows, fmt.Sprint(b.Row(i)))
	}
	sort.Strings(rows)
	for _, r := range rows {
		fmt.Println(r)
	}
	// Output:
	// satisfiable
	// [1 0]
	// [1 1]
}
