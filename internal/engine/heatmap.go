package engine

import "timetable-tracker/pkg/datemath"

// HeatmapDays is the number of trailing days covered by Heatmap.
const HeatmapDays = 365

// HeatmapEntry is one day of the activity heatmap.
type HeatmapEntry struct {
	Date  datemath.Date
	Count int
	Level int
}

// Heatmap returns HeatmapDays entries ending at ref inclusive, oldest first.
func (s Snapshot) Heatmap(ref datemath.Date) []HeatmapEntry {
	idx := s.index()

	out := make([]HeatmapEntry, 0, HeatmapDays)
	for i := HeatmapDays - 1; i >= 0; i-- {
		d := ref.AddDays(-i)
		st := s.dailyStats(d, idx)
		out = append(out, HeatmapEntry{
			Date:  d,
			Count: st.Completed,
			Level: HeatmapLevel(st),
		})
	}
	return out
}

// HeatmapLevel maps a day's stats to an intensity in 0..5. Each threshold can
// only raise the level set by the previous one; 5 requires exactly 100%.
func HeatmapLevel(st Stats) int {
	level := 0
	if st.Total == 0 {
		return level
	}

	rate := st.Rate
	if rate > 0 {
		level = 1
	}
	if rate >= 25 {
		level = 2
	}
	if rate >= 50 {
		level = 3
	}
	if rate >= 75 {
		level = 4
	}
	if rate == 100 {
		level = 5
	}
	return level
}
