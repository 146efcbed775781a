package config

import "time"

// SpeedCurve maps a level to how often the active piece falls one row.
type SpeedCurve struct {
	speeds []time.Duration
}

// NewSpeedCurve builds a curve from the timing section. An empty table
// falls back to the default speeds.
func NewSpeedCurve(cfg TimingConfig) *SpeedCurve {
	ms := cfg.LevelSpeedsMs
	if len(ms) == 0 {
		ms = DefaultBlocksConfig().Timing.LevelSpeedsMs
	}
	c := &SpeedCurve{speeds: make([]time.Duration, len(ms))}
	for i, v := range ms {
		c.speeds[i] = time.Duration(v) * time.Millisecond
	}
	return c
}

// Interval returns the fall interval for a 1-based level. Levels past the
// end of the table keep the last speed.
func (c *SpeedCurve) Interval(level int) time.Duration {
	i := min(max(level-1, 0), len(c.speeds)-1)
	return c.speeds[i]
}

// Ticks converts the fall interval for level into simulation ticks at
// tickRate. The result is never below one tick.
func (c *SpeedCurve) Ticks(level, tickRate int) int {
	if tickRate <= 0 {
		return 1
	}
	ticks := int(c.Interval(level) * time.Duration(tickRate) / time.Second)
	return max(ticks, 1)
}

// Levels returns the number of distinct speeds.
func (c *SpeedCurve) Levels() int {
	return len(c.speeds)
}
