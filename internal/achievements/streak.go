package achievements

import "time"

const dayFormat = "2006-01-02"

// ConsecutiveDays counts the visit streak ending today: today plus every
// unbroken preceding calendar day present in days (stamped YYYY-MM-DD).
// Today itself always counts — evaluating the streak is a visit.
func ConsecutiveDays(days map[string]bool, today time.Time) int {
	streak := 1
	for i := 1; ; i++ {
		d := today.AddDate(0, 0, -i)
		if !days[d.Format(dayFormat)] {
			break
		}
		streak++
	}
	return streak
}
