package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tomatick/session"
)

// Palette
var (
	primaryColor   = tcell.NewRGBColor(144, 255, 161)
	highlightColor = tcell.NewRGBColor(0, 255, 150)

	primaryStyle   = tcell.StyleDefault.Foreground(primaryColor)
	boldStyle      = primaryStyle.Bold(true)
	highlightStyle = tcell.StyleDefault.Foreground(highlightColor)
	plainStyle     = tcell.StyleDefault
	labelStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// State is everything the view needs for one frame
type State struct {
	TimeText  string // MM:SS remaining
	Progress  float64
	Kind      session.Kind
	Mode      session.Mode
	Running   bool
	Completed int
	Muted     bool

	ShowHelp  bool
	ShowInput bool
	Input     string
}

// Draw paints a full frame
func Draw(s tcell.Screen, st State) {
	s.Clear()
	width, height := s.Size()

	y := 0
	y += drawTitleBox(s, y, width)
	y += drawCountdownBox(s, y, width, st)
	y += drawProgressBox(s, y, width, st)
	drawStatusBox(s, y, width, st)

	if st.ShowHelp {
		drawHelpPopup(s, width, height)
	}
	if st.ShowInput {
		drawInputPopup(s, width, height, st.Input)
	}

	s.Show()
}

func drawTitleBox(s tcell.Screen, y, width int) int {
	const h = 3
	drawBox(s, 0, y, width, h, primaryStyle)
	drawTextCentered(s, y+1, width, "TOMATICK", boldStyle)
	return h
}

func drawCountdownBox(s tcell.Screen, y, width int, st State) int {
	const h = digitRows + 2
	drawBox(s, 0, y, width, h, primaryStyle)

	style := primaryStyle
	if st.Kind == session.Break {
		style = plainStyle
	}

	lines := TimeLines(st.TimeText)
	for i, line := range lines {
		drawTextCentered(s, y+1+i, width, line, style)
	}
	return h
}

func drawProgressBox(s tcell.Screen, y, width int, st State) int {
	const h = 3
	drawBox(s, 0, y, width, h, primaryStyle)
	drawText(s, 2, y, " Progress ", primaryStyle)

	barStyle := primaryStyle
	if st.Kind == session.Break {
		barStyle = plainStyle
	}

	inner := width - 2
	if inner < 1 {
		return h
	}
	filled := int(st.Progress * float64(inner))
	if filled > inner {
		filled = inner
	}
	for x := 0; x < inner; x++ {
		ch := ' '
		if x < filled {
			ch = '█'
		}
		s.SetContent(1+x, y+1, ch, nil, barStyle)
	}

	label := fmt.Sprintf(" %.1f%% ", st.Progress*100)
	drawTextCentered(s, y+1, width, label, labelStyle)
	return h
}

func drawStatusBox(s tcell.Screen, y, width int, st State) int {
	const h = 3
	drawBox(s, 0, y, width, h, primaryStyle)
	drawText(s, 2, y, " Status ", primaryStyle)

	status := "Paused"
	if st.Running {
		if st.Kind == session.Work {
			status = "Working"
		} else {
			status = "On Break"
		}
	}

	sound := ""
	if st.Muted {
		sound = " | Sound: off"
	}

	text := fmt.Sprintf("  Mode: %s | Status: %s | Done: %d%s | ",
		st.Mode, status, st.Completed, sound)
	x := drawText(s, 1, y+1, text, plainStyle)
	x = drawText(s, x, y+1, "X", boldStyle)
	drawText(s, x, y+1, ": Help", plainStyle)
	return h
}

// helpLines pairs a key with its description
var helpLines = [][2]string{
	{" W  ", " - Start work interval"},
	{" B  ", " - Start break interval"},
	{" C  ", " - Custom intervals"},
	{" ␣/↵", " - Pause/Resume timer"},
	{" T  ", " - Toggle Manual/Auto mode"},
	{" S  ", " - Toggle sound"},
	{" M  ", " - Replay celebration"},
	{" X  ", " - Close this popup"},
	{" Esc", " - Exit application"},
}

func drawHelpPopup(s tcell.Screen, width, height int) {
	w, h := 40, len(helpLines)+4
	x, y := centered(width, height, w, h)

	fillRegion(s, x, y, w, h, plainStyle)
	drawBox(s, x, y, w, h, primaryStyle)
	drawText(s, x+2, y, " Help ", primaryStyle)
	drawTextCentered(s, y+1, width, "CONTROLS", boldStyle)

	for i, line := range helpLines {
		row := y + 3 + i
		cx := drawText(s, x+2, row, line[0], boldStyle)
		drawText(s, cx, row, line[1], plainStyle)
	}
}

func drawInputPopup(s tcell.Screen, width, height int, input string) {
	w, h := 44, 9
	x, y := centered(width, height, w, h)

	fillRegion(s, x, y, w, h, plainStyle)
	drawBox(s, x, y, w, h, primaryStyle)
	drawText(s, x+2, y, " Custom Timer ", primaryStyle)

	cx := drawText(s, x+2, y+2, "Format: ", plainStyle)
	cx = drawText(s, cx, y+2, "work,break", highlightStyle)
	cx = drawText(s, cx, y+2, " or ", plainStyle)
	drawText(s, cx, y+2, "work", highlightStyle)

	cx = drawText(s, x+2, y+3, "Examples: ", plainStyle)
	cx = drawText(s, cx, y+3, "30,10", highlightStyle)
	cx = drawText(s, cx, y+3, " or ", plainStyle)
	drawText(s, cx, y+3, "20", highlightStyle)

	cx = drawText(s, x+2, y+5, "Input: ", plainStyle)
	cx = drawText(s, cx, y+5, input, labelStyle.Bold(true))
	drawText(s, cx, y+5, "█", primaryStyle)

	cx = drawText(s, x+2, y+7, "↵", boldStyle)
	cx = drawText(s, cx, y+7, " - Confirm | ", plainStyle)
	cx = drawText(s, cx, y+7, "X", boldStyle)
	drawText(s, cx, y+7, " - Cancel", plainStyle)
}

// --- drawing helpers ---

// drawText writes a string and returns the x after its last cell
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func drawTextCentered(s tcell.Screen, y, width int, text string, style tcell.Style) {
	x := (width - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	drawText(s, x, y, text, style)
}

// drawBox draws a single-line border
func drawBox(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for cx := x + 1; cx < x+w-1; cx++ {
		s.SetContent(cx, y, tcell.RuneHLine, nil, style)
		s.SetContent(cx, y+h-1, tcell.RuneHLine, nil, style)
	}
	for cy := y + 1; cy < y+h-1; cy++ {
		s.SetContent(x, cy, tcell.RuneVLine, nil, style)
		s.SetContent(x+w-1, cy, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, style)
	s.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	s.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	s.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}

func fillRegion(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			s.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

func centered(screenW, screenH, w, h int) (int, int) {
	x := (screenW - w) / 2
	y := (screenH - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
