package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup centres popup in a bordered card over base. Base rows outside
// the card stay visible.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	c := newCanvas(base, width, height)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(1, 2).
		Render(popup)
	block := strings.Split(card, "\n")
	cardW := widest(block)
	if cardW == 0 {
		return c.String()
	}
	c.stamp(max(0, (width-cardW)/2), max(0, (height-len(block))/2), block)
	return c.String()
}

// canvas is a fixed grid of ANSI-styled rows, each padded to width.
type canvas struct {
	rows  []string
	width int
}

func newCanvas(s string, width, height int) *canvas {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return &canvas{rows: lines, width: width}
}

// stamp writes block over the canvas with its top-left corner at (x, y).
// Cells right of the block keep their original content and styling.
func (c *canvas) stamp(x, y int, block []string) {
	blockW := widest(block)
	for i, line := range block {
		row := y + i
		if row < 0 || row >= len(c.rows) {
			continue
		}
		target := c.rows[row]
		left := padRight(ansi.Truncate(target, x, ""), x)
		mid := padRight(line, blockW)
		end := x + ansi.StringWidth(mid)
		right := dropColumns(target, end)
		c.rows[row] = padRight(left+mid+right, c.width)
	}
}

func (c *canvas) String() string {
	return strings.Join(c.rows, "\n")
}

func widest(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}
