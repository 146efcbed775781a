package engine

import "testing"

func TestLineClearPoints(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{0, 0},
		{1, 50},
		{2, 200},
		{3, 450},
		{4, 800},
	}

	for _, tt := range tests {
		tr := NewTracker(DefaultScoreConfig(), true)
		if got := tr.OnLinesCleared(tt.lines); got != tt.want {
			t.Errorf("OnLinesCleared(%d) = %d, want %d", tt.lines, got, tt.want)
		}
		if tr.Score() != tt.want {
			t.Errorf("Score() after %d lines = %d, want %d", tt.lines, tr.Score(), tt.want)
		}
	}
}

func TestDropPoints(t *testing.T) {
	tr := NewTracker(DefaultScoreConfig(), true)
	if got := tr.OnHardDrop(5); got != 5 {
		t.Errorf("OnHardDrop(5) = %d, want 5", got)
	}
	if got := tr.OnSoftDrop(); got != 1 {
		t.Errorf("OnSoftDrop() = %d, want 1", got)
	}
	if tr.Score() != 6 {
		t.Errorf("Score() = %d, want 6", tr.Score())
	}

	cfg := DefaultScoreConfig()
	cfg.HardDropMultiplier = 2
	tr = NewTracker(cfg, true)
	if got := tr.OnHardDrop(5); got != 10 {
		t.Errorf("OnHardDrop(5) with multiplier 2 = %d, want 10", got)
	}
}

func TestLeveling(t *testing.T) {
	tests := []struct {
		name   string
		clears []int
		want   int
	}{
		{"nine singles", []int{1, 1, 1, 1, 1, 1, 1, 1, 1}, 1},
		{"ten singles", []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, 2},
		{"tetrises to ten", []int{4, 4, 2}, 2},
		{"one clear past threshold", []int{4, 4, 4}, 2},
		{"twenty lines", []int{4, 4, 4, 4, 4}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(DefaultScoreConfig(), true)
			for _, n := range tt.clears {
				tr.OnLinesCleared(n)
			}
			if tr.Level() != tt.want {
				t.Errorf("Level() = %d, want %d (lines %d)", tr.Level(), tt.want, tr.Lines())
			}
		})
	}
}

func TestLevelingDisabled(t *testing.T) {
	tr := NewTracker(DefaultScoreConfig(), false)
	for range 10 {
		tr.OnLinesCleared(4)
	}
	if tr.Level() != 1 {
		t.Errorf("Level() = %d with leveling off, want 1", tr.Level())
	}
	if tr.Lines() != 40 {
		t.Errorf("Lines() = %d, want 40", tr.Lines())
	}
}

func TestTrackerRestoreAndReset(t *testing.T) {
	tr := NewTracker(DefaultScoreConfig(), true)
	tr.OnLinesCleared(4)
	tr.Restore(120, 3)
	if tr.Score() != 120 || tr.Level() != 3 {
		t.Errorf("after Restore got score=%d level=%d", tr.Score(), tr.Level())
	}
	tr.Reset()
	if tr.Score() != 0 || tr.Lines() != 0 || tr.Level() != 1 {
		t.Errorf("after Reset got score=%d lines=%d level=%d", tr.Score(), tr.Lines(), tr.Level())
	}
}
