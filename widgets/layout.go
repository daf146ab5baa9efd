package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack renders widgets top to bottom. Ratios, when given, must have one
// entry per widget; otherwise rows are shared evenly.
type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
}

func (v VStack) Render(width, height int) string {
	n := len(v.Widgets)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}
	rows := allot(max(1, height-v.Spacing*(n-1)), n, v.Ratios)
	spacer := strings.Repeat("\n", v.Spacing)

	var b strings.Builder
	for i, w := range v.Widgets {
		if i > 0 {
			b.WriteString("\n")
			b.WriteString(spacer)
		}
		b.WriteString(w.Render(width, max(1, rows[i])))
	}
	return b.String()
}

// HStack renders widgets side by side, each column padded to its share so
// rows line up.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	n := len(h.Widgets)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}
	cols := allot(max(1, width-h.Gap*(n-1)), n, h.Ratios)
	columns := make([][]string, n)
	depth := 0
	for i, w := range h.Widgets {
		columns[i] = splitLines(w.Render(max(1, cols[i]), height))
		depth = max(depth, len(columns[i]))
	}

	gap := strings.Repeat(" ", h.Gap)
	out := make([]string, depth)
	for row := range out {
		var b strings.Builder
		for i, col := range columns {
			if i > 0 {
				b.WriteString(gap)
			}
			cell := ""
			if row < len(col) {
				cell = col[row]
			}
			b.WriteString(padRight(cell, cols[i]))
		}
		out[row] = b.String()
	}
	return strings.Join(out, "\n")
}

// allot divides total cells among n parts by weight. Remainders go to the
// parts with the largest fractional share, so the result always sums to total.
func allot(total, n int, weights []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(weights) != n {
		weights = nil
	}
	w := make([]float64, n)
	sum := 0.0
	for i := range w {
		w[i] = 1
		if weights != nil && weights[i] > 0 {
			w[i] = weights[i]
		}
		sum += w[i]
	}

	out := make([]int, n)
	rem := make([]float64, n)
	used := 0
	for i := range out {
		exact := w[i] / sum * float64(total)
		out[i] = int(exact)
		rem[i] = exact - float64(out[i])
		used += out[i]
	}
	for ; used < total; used++ {
		best := 0
		for i := range rem {
			if rem[i] > rem[best] {
				best = i
			}
		}
		out[best]++
		rem[best] = -1
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
