package spatialmath

import (
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/samber/lo"
)

// String returns the twist as "( v1 v2 ... ; w1 w2 ... )" with 5 significant digits.
func (t *Twist) String() string {
	var b strings.Builder
	b.WriteString("( ")
	writeFloats(&b, t.V())
	b.WriteString(" ; ")
	writeFloats(&b, t.W())
	b.WriteString(" )")
	return b.String()
}

// FormatTwists renders one twist per line, in order.
func FormatTwists(twists []*Twist) string {
	return strings.Join(lo.Map(twists, func(t *Twist, _ int) string {
		return t.String()
	}), "\n")
}

func formatVector(v r3.Vector) string {
	var b strings.Builder
	writeFloats(&b, []float64{v.X, v.Y, v.Z})
	return b.String()
}

func writeFloats(b *strings.Builder, xs []float64) {
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(' ')
		}
		if x == 0 {
			x = 0 // no "-0"
		}
		b.WriteString(strconv.FormatFloat(x, 'g', 5, 64))
	}
}

// FormatFloats renders xs space separated with the same precision as (*Twist).String.
func FormatFloats(xs []float64) string {
	var b strings.Builder
	writeFloats(&b, xs)
	return b.String()
}
