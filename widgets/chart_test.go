package widgets

import (
	"strings"
	"testing"
)

func TestChartScalesToLargest(t *testing.T) {
	c := Chart{Title: "Yield", Data: []ChartPoint{{"Jan", 10}, {"Feb", 20}}, Unit: "t"}
	out := c.Render(40, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if strings.Count(lines[2], "█") <= strings.Count(lines[1], "█") {
		t.Fatalf("larger value should draw a longer bar:\n%s", out)
	}
	if !strings.Contains(lines[2], "20t") {
		t.Fatalf("missing value label: %q", lines[2])
	}
}

func TestChartEmpty(t *testing.T) {
	if out := (Chart{Title: "x"}).Render(20, 3); !strings.Contains(out, "no data") {
		t.Fatalf("got %q", out)
	}
}

func TestSparklineRange(t *testing.T) {
	out := Sparkline{Values: []float64{1, 5, 9}}.Render(10, 1)
	if !strings.HasPrefix(out, "▁▄█") {
		t.Fatalf("got %q", out)
	}
	flat := Sparkline{Values: []float64{3, 3}}.Render(4, 1)
	if !strings.HasPrefix(flat, "██") {
		t.Fatalf("flat series got %q", flat)
	}
}

func TestHeatmapUsesTone(t *testing.T) {
	calls := 0
	h := Heatmap{Cells: [][]int{{10, 60}, {40, 50}}, RowLabels: []string{"A", "B"}, Tone: func(v int) Tone {
		calls++
		return ToneSafe
	}}
	out := h.Render(30, 4)
	if calls != 4 {
		t.Fatalf("tone called %d times", calls)
	}
	if !strings.Contains(out, " 60") || !strings.HasPrefix(out, "A ") {
		t.Fatalf("got:\n%s", out)
	}
}

func TestGaugeClampsFraction(t *testing.T) {
	out := Gauge{Label: "Threshold", Value: "35%", Fraction: 2, MinLabel: "20", MaxLabel: "50"}.Render(30, 2)
	if strings.Contains(out, "─") {
		t.Fatalf("full gauge should have no empty track:\n%s", out)
	}
	empty := Gauge{Fraction: -1, MinLabel: "20", MaxLabel: "50"}.Render(30, 2)
	if strings.Contains(empty, "━") {
		t.Fatalf("empty gauge should have no fill:\n%s", empty)
	}
}

func TestToggleLine(t *testing.T) {
	if !strings.Contains(Toggle{Label: "Pump", On: true}.Line(), "on") {
		t.Fatalf("on toggle")
	}
	if !strings.Contains(Toggle{Label: "Pump", Selected: true}.Line(), "▶ Pump") {
		t.Fatalf("selected marker missing")
	}
}

func TestListScrollsToCursor(t *testing.T) {
	l := List{Items: []string{"a", "b", "c", "d", "e"}, Cursor: 4}
	out := l.Render(10, 2)
	if !strings.Contains(out, "▶ e") || strings.Contains(out, "a") {
		t.Fatalf("got:\n%s", out)
	}
}

func TestTableRendersRows(t *testing.T) {
	tbl := Table{Columns: []Column{{"Device", 10}, {"State", 6}}, Rows: [][]string{{"Pump", "on"}, {"Fan", "off"}}, Cursor: -1}
	out := tbl.Render(30, 5)
	if !strings.Contains(out, "Pump") || !strings.Contains(out, "Fan") {
		t.Fatalf("got:\n%s", out)
	}
}
