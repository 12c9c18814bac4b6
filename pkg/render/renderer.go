package render

import (
	"fmt"
	"time"
)

// Renderer produces a DataLevelMap whose newest day is end.
type Renderer interface {
	Render(text string, end time.Time) (DataLevelMap, error)
}

// LastWeekEnd returns the most recent Saturday, the newest day that can
// hold a full calendar column.
func LastWeekEnd() time.Time {
	now := time.Now()
	back := (int(now.Weekday()) + 1) % 7

	return Day(now.AddDate(0, 0, -back))
}

// TextRenderer renders a string of supported characters.
type TextRenderer struct{}

// Render maps text onto days ending at end, working right to left so the
// message reads correctly on the calendar. A blank week separates glyphs.
func (TextRenderer) Render(text string, end time.Time) (DataLevelMap, error) {
	date := Day(end)
	m := NewDataLevelMap()

	runes := []rune(text)
	for i := len(runes) - 1; i >= 0; i-- {
		glyph, ok := GlyphFor(runes[i])
		if !ok {
			return nil, fmt.Errorf("character '%c' cannot be rendered", runes[i])
		}

		for j := len(glyph) - 1; j >= 0; j-- {
			m[date] = glyph[j]
			date = date.Add(-dayDuration)
		}

		for range 7 {
			m[date] = 0
			date = date.Add(-dayDuration)
		}
	}

	return m, nil
}

// RenderDataLevels maps raw levels onto days ending at end, newest level
// last.
func RenderDataLevels(levels []int, end time.Time) DataLevelMap {
	date := Day(end)
	m := NewDataLevelMap()

	for i := len(levels) - 1; i >= 0; i-- {
		m[date] = levels[i]
		date = date.Add(-dayDuration)
	}

	return m
}
