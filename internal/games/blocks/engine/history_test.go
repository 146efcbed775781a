package engine

import (
	"math"
	"testing"
)

func TestHistorySaveAndPop(t *testing.T) {
	var h History
	g := NewGrid(4, 4)
	g.set(1, 1, 5)

	h.Save(NewSnapshot(g, 100, 2))
	g.set(1, 1, 0)
	g.set(3, 3, 7)

	s, ok := h.Pop(1)
	if !ok {
		t.Fatal("Pop() returned nothing after Save")
	}
	want := NewGrid(4, 4)
	want.set(1, 1, 5)
	if !s.Grid().Equal(want) {
		t.Errorf("snapshot grid changed with the live grid: %v", s.Grid().Rows())
	}
	if s.Score() != 100 || s.Level() != 2 {
		t.Errorf("snapshot score=%d level=%d, want 100 and 2", s.Score(), s.Level())
	}

	if _, ok := h.Pop(1); ok {
		t.Error("second Pop() without Save returned a snapshot")
	}
}

func TestHistoryKeepsOnlyLatest(t *testing.T) {
	var h History
	h.Save(NewSnapshot(NewGrid(2, 2), 1, 1))
	h.Save(NewSnapshot(NewGrid(2, 2), 2, 1))

	s, ok := h.Pop(5)
	if !ok || s.Score() != 2 {
		t.Fatalf("Pop() = %v score %d, want latest snapshot", ok, s.Score())
	}
	if _, ok := h.Pop(5); ok {
		t.Error("older snapshot was retained")
	}
}

func TestHistoryBudget(t *testing.T) {
	var h History
	budget := 3
	for i := range budget {
		h.Save(NewSnapshot(NewGrid(2, 2), i, 1))
		if _, ok := h.Pop(budget); !ok {
			t.Fatalf("pop %d within budget failed", i+1)
		}
	}

	h.Save(NewSnapshot(NewGrid(2, 2), 9, 1))
	if _, ok := h.Pop(budget); ok {
		t.Error("pop beyond the budget succeeded")
	}
	if !h.Pending() {
		t.Error("rejected pop consumed the snapshot")
	}
	if h.Used() != budget {
		t.Errorf("Used() = %d, want %d", h.Used(), budget)
	}

	h.Reset()
	if h.Pending() || h.Used() != 0 {
		t.Error("Reset() left state behind")
	}
}

func TestHistoryEmptyPopDoesNotSpendBudget(t *testing.T) {
	var h History
	if _, ok := h.Pop(1); ok {
		t.Fatal("Pop() on empty history returned a snapshot")
	}
	h.Save(NewSnapshot(NewGrid(2, 2), 0, 1))
	if _, ok := h.Pop(1); !ok {
		t.Error("empty pop consumed the budget")
	}
}

func TestModePolicies(t *testing.T) {
	std := ModeStandard.Policy(-1)
	if !std.Leveling || !std.HighScore || !std.Danger || std.UndoBudget != 3 || std.OnGameOver != GameOverEnd {
		t.Errorf("standard policy = %+v", std)
	}
	for _, budget := range []int{0, 5} {
		if got := ModeStandard.Policy(budget).UndoBudget; got != budget {
			t.Errorf("configured standard undo budget = %d, want %d", got, budget)
		}
	}

	rel := ModeRelaxed.Policy(3)
	if rel.Leveling || rel.HighScore || rel.Danger || rel.UndoBudget != math.MaxInt || rel.OnGameOver != GameOverRestart {
		t.Errorf("relaxed policy = %+v", rel)
	}
	if !rel.Unlimited() {
		t.Error("relaxed undo budget should be unlimited")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeStandard, false},
		{"standard", ModeStandard, false},
		{"Normal", ModeStandard, false},
		{"relaxed", ModeRelaxed, false},
		{"zen", ModeRelaxed, false},
		{"marathon", ModeStandard, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
