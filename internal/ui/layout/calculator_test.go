package layout

import "testing"

var chrome = Chrome{Header: 1, PlayerBar: 3, Status: 2}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(40, chrome); got != 34 {
		t.Errorf("ContentHeight(40) = %d, want 34", got)
	}
	if got := ContentHeight(3, chrome); got != 0 {
		t.Errorf("ContentHeight(3) = %d, want 0", got)
	}
}

func TestCompute_Wide(t *testing.T) {
	l := Compute(150, 40, chrome, 3)
	if l.Narrow {
		t.Fatal("150 columns should not be narrow")
	}
	if l.QueueWidth != 50 || l.ResultsWidth != 100 {
		t.Errorf("widths = %d/%d, want 100/50", l.ResultsWidth, l.QueueWidth)
	}
	if l.ResultsHeight != 34 || l.QueueHeight != 34 {
		t.Errorf("heights = %d/%d, want 34/34", l.ResultsHeight, l.QueueHeight)
	}
}

func TestCompute_Narrow(t *testing.T) {
	l := Compute(80, 36, chrome, 3)
	if !l.Narrow {
		t.Fatal("80 columns should be narrow")
	}
	if l.ResultsWidth != 80 || l.QueueWidth != 80 {
		t.Errorf("widths = %d/%d, want full width", l.ResultsWidth, l.QueueWidth)
	}
	if l.ResultsHeight+l.QueueHeight != 30 {
		t.Errorf("heights %d+%d should fill 30 rows", l.ResultsHeight, l.QueueHeight)
	}
	if l.QueueHeight != 10 {
		t.Errorf("QueueHeight = %d, want 10", l.QueueHeight)
	}
}
