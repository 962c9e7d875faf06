package render

// digitRows is the height of the block glyph set
const digitRows = 5

// digitGlyphs maps the MM:SS alphabet to 5-row block glyphs
var digitGlyphs = map[rune][digitRows]string{
	'0': {
		" 0000 ",
		"00  00",
		"00  00",
		"00  00",
		" 0000 ",
	},
	'1': {
		" 1111 ",
		"   11 ",
		"   11 ",
		"   11 ",
		"111111",
	},
	'2': {
		" 2222 ",
		"22  22",
		"   22 ",
		"  22  ",
		"222222",
	},
	'3': {
		" 3333 ",
		"33  33",
		"   333",
		"33  33",
		" 3333 ",
	},
	'4': {
		"44  44",
		"44  44",
		"444444",
		"    44",
		"    44",
	},
	'5': {
		"555555",
		"55    ",
		"55555 ",
		"    55",
		"55555 ",
	},
	'6': {
		" 6666 ",
		"66    ",
		"66666 ",
		"66  66",
		" 6666 ",
	},
	'7': {
		"777777",
		"   77 ",
		"  77  ",
		" 77   ",
		"77    ",
	},
	'8': {
		" 8888 ",
		"88  88",
		" 8888 ",
		"88  88",
		" 8888 ",
	},
	'9': {
		" 9999 ",
		"99  99",
		" 99999",
		"    99",
		" 9999 ",
	},
	':': {
		"      ",
		"  ::  ",
		"      ",
		"  ::  ",
		"      ",
	},
}

var blankGlyph = [digitRows]string{
	"      ",
	"      ",
	"      ",
	"      ",
	"      ",
}

// TimeLines renders a time string like "25:00" as 5 rows of block
// glyphs separated by single spaces
func TimeLines(timeStr string) [digitRows]string {
	var lines [digitRows]string
	for _, ch := range timeStr {
		glyph, ok := digitGlyphs[ch]
		if !ok {
			glyph = blankGlyph
		}
		for i := 0; i < digitRows; i++ {
			lines[i] += glyph[i] + " "
		}
	}
	return lines
}
