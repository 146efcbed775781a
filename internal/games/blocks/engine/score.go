package engine

// ScoreConfig sets the scoring constants.
type ScoreConfig struct {
	LinePoints         int // Base points, multiplied by lines squared
	LinesPerLevel      int // Level n ends after n*LinesPerLevel total lines
	HardDropMultiplier int // Points per row of hard drop
}

// DefaultScoreConfig returns the standard scoring constants.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		LinePoints:         50,
		LinesPerLevel:      10,
		HardDropMultiplier: 1,
	}
}

// Tracker accumulates score, cleared lines and level.
type Tracker struct {
	cfg      ScoreConfig
	leveling bool
	score    int
	lines    int
	level    int
}

// NewTracker creates a tracker at level 1. Leveling only happens when
// leveling is true.
func NewTracker(cfg ScoreConfig, leveling bool) *Tracker {
	if cfg.HardDropMultiplier < 0 {
		cfg.HardDropMultiplier = 0
	}
	t := &Tracker{cfg: cfg, leveling: leveling}
	t.Reset()
	return t
}

func (t *Tracker) Score() int { return t.score }
func (t *Tracker) Lines() int { return t.lines }
func (t *Tracker) Level() int { return t.level }

// OnLinesCleared awards points for n simultaneously cleared lines and
// returns them.
func (t *Tracker) OnLinesCleared(n int) int {
	if n <= 0 {
		return 0
	}
	points := t.cfg.LinePoints * n * n
	t.score += points
	t.lines += n
	if t.leveling && t.cfg.LinesPerLevel > 0 {
		for t.lines >= t.level*t.cfg.LinesPerLevel {
			t.level++
		}
	}
	return points
}

// OnHardDrop awards points for a hard drop of the given rows.
func (t *Tracker) OnHardDrop(rows int) int {
	if rows <= 0 {
		return 0
	}
	points := rows * t.cfg.HardDropMultiplier
	t.score += points
	return points
}

// OnSoftDrop awards the single point of a player-driven step down.
func (t *Tracker) OnSoftDrop() int {
	t.score++
	return 1
}

// Restore overwrites score and level, as undo does.
func (t *Tracker) Restore(score, level int) {
	t.score = score
	t.level = level
}

// Reset zeroes score and lines and returns to level 1.
func (t *Tracker) Reset() {
	t.score = 0
	t.lines = 0
	t.level = 1
}
