package render

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshmeranda/forgehub/pkg/events"
)

// saturday is an arbitrary fixed week end so tests do not depend on the
// current date.
var saturday = time.Date(2021, time.December, 4, 0, 0, 0, 0, time.UTC)

func TestDayNormalizes(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	noon := time.Date(2021, time.December, 4, 12, 30, 9, 0, loc)

	assert.Equal(t, saturday, Day(noon))
}

func TestLastWeekEnd(t *testing.T) {
	end := LastWeekEnd()

	assert.Equal(t, time.Saturday, end.Weekday())
	assert.False(t, end.After(time.Now()))
}

func TestTextRendererSingleCharacter(t *testing.T) {
	m, err := TextRenderer{}.Render("A", saturday)
	require.NoError(t, err)

	// one glyph plus the separator week
	assert.Len(t, m, GlyphDays+7)

	// the middle column of 'A' is the two horizontal bars
	wantMiddle := []int{0, 4, 0, 0, 4, 0, 0}
	for i, want := range wantMiddle {
		day := saturday.AddDate(0, 0, -13+i)
		level, ok := m.Get(day)
		require.True(t, ok, "missing day %s", day)
		assert.Equal(t, want, level, "day %s", day)
	}

	// the separator week before the glyph is blank
	level, ok := m.Get(saturday.AddDate(0, 0, -GlyphDays-1))
	require.True(t, ok)
	assert.Equal(t, 0, level)
}

func TestTextRendererMultipleCharacters(t *testing.T) {
	m, err := TextRenderer{}.Render("ABC", saturday)
	require.NoError(t, err)

	assert.Len(t, m, 3*(GlyphDays+7))

	items := m.Items()
	assert.Equal(t, saturday, items[len(items)-1].Day)

	// days are contiguous
	for i := 1; i < len(items); i++ {
		assert.Equal(t, items[i-1].Day.AddDate(0, 0, 1), items[i].Day)
	}
}

func TestTextRendererUnsupportedCharacter(t *testing.T) {
	_, err := TextRenderer{}.Render("a", saturday)
	assert.ErrorContains(t, err, "'a' cannot be rendered")

	_, err = TextRenderer{}.Render("|", saturday)
	assert.ErrorContains(t, err, "cannot be rendered")
}

func TestRenderDataLevels(t *testing.T) {
	m := RenderDataLevels([]int{1, 2, 3}, saturday)

	require.Len(t, m, 3)

	items := m.Items()
	assert.Equal(t, []Item{
		{Day: saturday.AddDate(0, 0, -2), Level: 1},
		{Day: saturday.AddDate(0, 0, -1), Level: 2},
		{Day: saturday, Level: 3},
	}, items)
}

func TestScale(t *testing.T) {
	boundaries := events.Boundaries{0, 5, 10, 15, 20}
	m := RenderDataLevels([]int{0, 1, 2, 3, 4}, saturday)

	scaled, err := m.Scale(boundaries)
	require.NoError(t, err)

	items := scaled.Items()
	levels := make([]int, 0, len(items))
	for _, item := range items {
		levels = append(levels, item.Level)
	}

	assert.Equal(t, []int{0, 5, 10, 15, 20}, levels)
}

func TestScaleRejectsInvalidLevel(t *testing.T) {
	m := RenderDataLevels([]int{7}, saturday)

	_, err := m.Scale(events.Boundaries{})
	assert.ErrorContains(t, err, "invalid data level")
}

func TestString(t *testing.T) {
	levels := []int{
		0, 1, 2, 3, 4, 0, 0,
		4, 4, 4, 4, 4, 4, 4,
	}
	m := RenderDataLevels(levels, saturday)

	expected := " #\n-#\n=#\nH#\n##\n #\n #"
	assert.Equal(t, expected, m.String())
}

func TestGlyphFor(t *testing.T) {
	_, ok := GlyphFor('A')
	assert.True(t, ok)

	_, ok = GlyphFor('a')
	assert.False(t, ok)
}

func TestStyledHasSevenRows(t *testing.T) {
	m, err := TextRenderer{}.Render("HI", saturday)
	require.NoError(t, err)

	styled := m.Styled()
	assert.Len(t, splitLines(styled), 7)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := range len(s) {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")

	m, err := TextRenderer{}.Render("GO", saturday)
	require.NoError(t, err)

	require.NoError(t, m.WriteFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, m, loaded)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
