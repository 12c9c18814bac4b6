// Package render turns text into the per-day activity levels needed to
// draw it on the GitHub contribution calendar.
package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/joshmeranda/forgehub/pkg/events"
)

// MaxDataLevel is the highest shade the contribution calendar displays.
const MaxDataLevel = 4

// dayDuration is one calendar day.
const dayDuration = 24 * time.Hour

// Day truncates a time to the start of its day in UTC. All DataLevelMap
// keys are normalized through it.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DataLevelMap maps days to their data levels. Before scaling the values
// are calendar shades (0..4), after scaling they are commit counts.
type DataLevelMap map[time.Time]int

// NewDataLevelMap creates an empty DataLevelMap.
func NewDataLevelMap() DataLevelMap {
	return make(DataLevelMap)
}

// Set records the level for the day containing t.
func (m DataLevelMap) Set(t time.Time, level int) {
	m[Day(t)] = level
}

// Get returns the level for the day containing t.
func (m DataLevelMap) Get(t time.Time) (int, bool) {
	level, ok := m[Day(t)]
	return level, ok
}

// Item is a single day and its data level.
type Item struct {
	Day   time.Time
	Level int
}

// Items returns the map's entries ordered by day.
func (m DataLevelMap) Items() []Item {
	items := make([]Item, 0, len(m))
	for day, level := range m {
		items = append(items, Item{Day: day, Level: level})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Day.Before(items[j].Day)
	})

	return items
}

// Scale maps each level through the given boundaries, producing the amount
// of commits to forge per day.
func (m DataLevelMap) Scale(boundaries events.Boundaries) (DataLevelMap, error) {
	scaled := NewDataLevelMap()

	for day, level := range m {
		if level < 0 || level > MaxDataLevel {
			return nil, fmt.Errorf("invalid data level '%d'", level)
		}
		scaled[day] = boundaries[level]
	}

	return scaled, nil
}

// levelRunes are the human readable forms of each data level, in order.
var levelRunes = [MaxDataLevel + 1]rune{' ', '-', '=', 'H', '#'}

// LevelOf returns the data level a human readable cell rune stands for.
func LevelOf(r rune) (int, bool) {
	for level, known := range levelRunes {
		if r == known {
			return level, true
		}
	}

	return 0, false
}

// String renders the map as a 7 row calendar, one column per week, using
// ' ', '-', '=', 'H' and '#' from lightest to darkest.
func (m DataLevelMap) String() string {
	var rows [7]strings.Builder

	for i, item := range m.Items() {
		c := '?'
		if item.Level >= 0 && item.Level <= MaxDataLevel {
			c = levelRunes[item.Level]
		}
		rows[i%7].WriteRune(c)
	}

	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = rows[i].String()
	}

	return strings.Join(lines, "\n")
}
