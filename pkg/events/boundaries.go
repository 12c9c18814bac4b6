package events

// Boundaries holds, per data level, the amount of commits that must land on
// a day to force it into that level on the contribution calendar.
type Boundaries [5]int

// GetBoundaries derives commit-count boundaries from the busiest day found
// in the user's recent activity.
//
// When dilute is set the boundaries are spread so that maxPerDay falls into
// the lowest visible level, drowning out existing activity at the cost of
// generating far more commits.
func GetBoundaries(maxPerDay int, dilute bool) Boundaries {
	step := maxPerDay
	if !dilute {
		step = maxPerDay / 4
	}
	if step < 1 {
		step = 1
	}

	var boundaries Boundaries
	for level := 1; level < len(boundaries); level++ {
		boundaries[level] = step * level
	}

	return boundaries
}
