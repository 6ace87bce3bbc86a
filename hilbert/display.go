package hilbert

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hilbert/numeric"
)

// FormatIneq renders one inequality row in human-readable form, e.g.
// "x0 + 2*x1 - x2 >= 0". A row of all zeros renders as "0 >= 0".
func FormatIneq(v []numeric.Int) string {
	var sb strings.Builder
	for j, c := range v {
		if c.IsZero() {
			continue
		}
		if sb.Len() > 0 {
			if c.IsPos() {
				sb.WriteString(" + ")
			} else {
				sb.WriteString(" - ")
			}
		} else if c.IsNeg() {
			sb.WriteByte('-')
		}
		if !c.IsOne() && !c.IsMinusOne() {
			sb.WriteString(c.Abs().String())
			sb.WriteByte('*')
		}
		fmt.Fprintf(&sb, "x%d", j)
	}
	if sb.Len() == 0 {
		sb.WriteByte('0')
	}
	sb.WriteString(" >= 0")

	return sb.String()
}

// String renders the engine's inequalities, the current basis and any live
// working sets. Diagnostic only; the layout is not a stable surface.
func (b *Basis) String() string {
	var sb strings.Builder
	sb.WriteString("inequalities:\n")
	for _, ineq := range b.ineqs {
		sb.WriteString("  ")
		sb.WriteString(FormatIneq(ineq))
		sb.WriteByte('\n')
	}
	if len(b.basis) > 0 {
		sb.WriteString("basis:\n")
		for _, o := range b.basis {
			b.writeRow(&sb, o)
		}
	}
	if len(b.active) > 0 {
		sb.WriteString("active:\n")
		for _, o := range b.active {
			b.writeRow(&sb, o)
		}
	}
	if b.passive != nil && !b.passive.empty() {
		sb.WriteString("passive:\n")
		b.passive.iterate(func(o Offset) bool {
			b.writeRow(&sb, o)

			return true
		})
	}
	if len(b.zero) > 0 {
		sb.WriteString("zero:\n")
		for _, o := range b.zero {
			b.writeRow(&sb, o)
		}
	}

	return sb.String()
}

// writeRow appends "  v0 v1 ... -> eval" for the row at o.
func (b *Basis) writeRow(sb *strings.Builder, o Offset) {
	sb.WriteString(" ")
	for _, v := range b.st.row(o) {
		sb.WriteByte(' ')
		sb.WriteString(v.String())
	}
	sb.WriteString(" -> ")
	sb.WriteString(b.st.eval(o).String())
	sb.WriteByte('\n')
}
