package render

// GlyphDays is the number of days a single glyph occupies: three calendar
// columns of seven weekdays.
const GlyphDays = 21

// Glyph holds the data level for each day of a character, column major so
// that the first seven values form the glyph's first week.
type Glyph [GlyphDays]int

// font maps every renderable character to its glyph. Levels are kept in
// the 5 shade space the contribution calendar displays.
var font = map[rune]Glyph{
	'A': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 0, 4, 0, 0,
		0, 4, 4, 4, 4, 4, 0,
	},
	'B': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 0, 4, 4, 4, 0, 0,
	},
	'C': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 4, 0, 4, 4, 0,
	},
	'D': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
		0, 0, 4, 4, 4, 0, 0,
	},
	'E': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
	},
	'F': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 4, 0, 0, 0,
		0, 4, 0, 0, 0, 0, 0,
	},
	'G': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 0, 4, 4, 4, 0,
	},
	'H': {
		0, 4, 4, 4, 4, 4, 0,
		0, 0, 0, 4, 0, 0, 0,
		0, 4, 4, 4, 4, 4, 0,
	},
	'I': {
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
	},
	'J': {
		0, 4, 0, 0, 4, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
	},
	'K': {
		0, 4, 4, 4, 4, 4, 0,
		0, 0, 0, 4, 0, 0, 0,
		0, 4, 4, 0, 4, 4, 0,
	},
	'L': {
		0, 4, 4, 4, 4, 4, 0,
		0, 0, 0, 0, 0, 4, 0,
		0, 0, 0, 0, 0, 4, 0,
	},
	'M': {
		0, 4, 4, 4, 4, 4, 0,
		0, 0, 4, 4, 0, 0, 0,
		0, 4, 4, 4, 4, 4, 0,
	},
	'N': {
		0, 4, 4, 4, 4, 4, 0,
		0, 0, 4, 4, 4, 0, 0,
		0, 4, 4, 4, 4, 4, 0,
	},
	'O': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
	},
	'P': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 4, 0, 0, 0,
		0, 4, 4, 4, 0, 0, 0,
	},
	'Q': {
		0, 4, 4, 4, 4, 0, 0,
		0, 4, 0, 0, 4, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
	},
	'R': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 4, 0, 0, 0,
		0, 4, 4, 0, 4, 4, 0,
	},
	'S': {
		0, 4, 4, 4, 0, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 4, 0, 4, 4, 4, 0,
	},
	'T': {
		0, 4, 0, 0, 0, 0, 0,
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 0, 0, 0, 0,
	},
	'U': {
		0, 4, 4, 4, 4, 4, 0,
		0, 0, 0, 0, 0, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
	},
	'V': {
		0, 4, 4, 4, 4, 0, 0,
		0, 0, 0, 0, 0, 4, 0,
		0, 4, 4, 4, 4, 0, 0,
	},
	'W': {
		0, 4, 4, 4, 4, 4, 0,
		0, 0, 0, 4, 4, 0, 0,
		0, 4, 4, 4, 4, 4, 0,
	},
	'X': {
		0, 4, 4, 0, 4, 4, 0,
		0, 0, 0, 4, 0, 0, 0,
		0, 4, 4, 0, 4, 4, 0,
	},
	'Y': {
		0, 4, 4, 4, 0, 0, 0,
		0, 0, 0, 4, 4, 4, 0,
		0, 4, 4, 4, 0, 0, 0,
	},
	'Z': {
		0, 4, 0, 0, 4, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 4, 4, 0, 0, 4, 0,
	},
	'0': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
	},
	'1': {
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
		0, 0, 0, 0, 0, 4, 0,
	},
	'2': {
		0, 4, 0, 4, 4, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 4, 4, 4, 0, 4, 0,
	},
	'3': {
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
	},
	'4': {
		0, 4, 4, 4, 0, 0, 0,
		0, 0, 0, 4, 0, 0, 0,
		0, 4, 4, 4, 4, 4, 0,
	},
	'5': {
		0, 4, 4, 4, 0, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 4, 0, 4, 4, 4, 0,
	},
	'6': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 4, 0, 4, 4, 4, 0,
	},
	'7': {
		0, 4, 0, 0, 0, 0, 0,
		0, 4, 0, 4, 4, 4, 0,
		0, 4, 4, 0, 0, 0, 0,
	},
	'8': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
	},
	'9': {
		0, 4, 4, 4, 0, 0, 0,
		0, 4, 0, 4, 0, 0, 0,
		0, 4, 4, 4, 4, 4, 0,
	},
	'?': {
		0, 4, 0, 0, 0, 0, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 0, 4, 0, 0, 0, 0,
	},
	'!': {
		0, 0, 0, 0, 0, 0, 0,
		0, 4, 4, 4, 0, 4, 0,
		0, 0, 0, 0, 0, 0, 0,
	},
	'_': {
		0, 0, 0, 0, 0, 4, 0,
		0, 0, 0, 0, 0, 4, 0,
		0, 0, 0, 0, 0, 4, 0,
	},
	'+': {
		0, 0, 4, 0, 0, 0, 4,
		4, 4, 0, 0, 0, 4, 0,
		0, 0, 0, 0, 0, 0, 0,
	},
	'-': {
		0, 0, 0, 0, 0, 0, 4,
		4, 4, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
	},
	'%': {
		0, 4, 0, 0, 4, 4, 0,
		0, 0, 0, 4, 0, 0, 0,
		0, 4, 4, 0, 0, 4, 0,
	},
	'(': {
		0, 0, 4, 4, 4, 0, 0,
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
	},
	')': {
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
		0, 0, 4, 4, 4, 0, 0,
	},
	'{': {
		0, 0, 0, 4, 0, 0, 0,
		0, 4, 4, 0, 4, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
	},
	'}': {
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 4, 0, 4, 4, 0,
		0, 0, 0, 4, 0, 0, 0,
	},
	'=': {
		0, 0, 4, 0, 4, 0, 0,
		0, 0, 4, 0, 4, 0, 0,
		0, 0, 4, 0, 4, 0, 0,
	},
	'<': {
		0, 0, 0, 4, 0, 0, 0,
		0, 0, 4, 0, 4, 0, 0,
		0, 0, 4, 0, 4, 0, 0,
	},
	'>': {
		0, 0, 4, 0, 4, 0, 0,
		0, 0, 4, 0, 4, 0, 0,
		0, 0, 0, 4, 0, 0, 0,
	},
	'^': {
		0, 0, 4, 0, 0, 0, 0,
		4, 0, 0, 0, 0, 0, 0,
		4, 0, 0, 0, 0, 0, 0,
	},
	' ': {
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
	},
	':': {
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 3, 0, 4, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
	},
}

// GlyphFor returns the glyph for a character.
func GlyphFor(r rune) (Glyph, bool) {
	glyph, ok := font[r]
	return glyph, ok
}
