package term

import (
	"fmt"

	"retro-snake/game"
	"retro-snake/game/types"
	"retro-snake/ranking"

	"github.com/gdamore/tcell/v2"
)

// Each board cell is two terminal columns wide so the board looks square.
const cellWidth = 2

// view holds the dialog state of the terminal frontend.
type view struct {
	showGameOver bool
	showRanking  bool
	scores       []int
}

func (v view) dialogOpen() bool {
	return v.showGameOver || v.showRanking
}

type theme struct {
	bg       tcell.Style
	hud      tcell.Style
	border   tcell.Style
	obstacle tcell.Style
	food     tcell.Style
	body     tcell.Style
	head     tcell.Style
	dialog   tcell.Style
	title    tcell.Style
}

var defaultTheme = theme{
	bg:       tcell.StyleDefault.Background(tcell.ColorBlack),
	hud:      tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkGreen),
	border:   tcell.StyleDefault.Foreground(tcell.ColorDimGray).Background(tcell.ColorBlack),
	obstacle: tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorGray),
	food:     tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Background(tcell.ColorBlack),
	body:     tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorGreen),
	head:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorLawnGreen).Bold(true),
	dialog:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon),
	title:    tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorMaroon).Bold(true),
}

// headGlyphs puts the eyes on the leading edge of the head.
var headGlyphs = map[types.Direction][2]rune{
	types.Up:    {'˙', '˙'},
	types.Down:  {'.', '.'},
	types.Left:  {':', ' '},
	types.Right: {' ', ':'},
}

// draw renders the whole frame. The board sits below a one-line HUD and is
// framed by a border.
func draw(s tcell.Screen, snap game.Snapshot, v view, th theme) {
	s.Clear()
	width, height := s.Size()
	fill(s, 0, 0, width, height, ' ', th.bg)

	drawText(s, 0, 0, padRight(hudLine(snap), width), th.hud)

	ox, oy := 1, 2
	boardW := snap.BoardSize * cellWidth
	drawFrame(s, ox-1, oy-1, boardW+2, snap.BoardSize+2, th.border)

	for y, row := range snap.Grid() {
		for x, kind := range row {
			sx, sy := ox+x*cellWidth, oy+y
			switch kind {
			case game.CellObstacle:
				putCell(s, sx, sy, '█', '█', th.obstacle)
			case game.CellFood:
				putCell(s, sx, sy, '●', ' ', th.food)
			case game.CellBody:
				putCell(s, sx, sy, ' ', ' ', th.body)
			case game.CellHead:
				eyes := headGlyphs[snap.Direction]
				putCell(s, sx, sy, eyes[0], eyes[1], th.head)
			}
		}
	}

	help := "arrows/WASD move  space pause  enter start  r reset  l level  t ranking  q quit"
	drawText(s, 0, oy+snap.BoardSize+1, help, th.border)

	cx, cy := ox+boardW/2, oy+snap.BoardSize/2
	switch {
	case v.showRanking:
		lines := append([]string{ranking.Title, ""}, ranking.Lines(v.scores)...)
		lines = append(lines, "", "[Esc] Close")
		drawDialog(s, cx, cy, lines, th)
	case v.showGameOver:
		drawDialog(s, cx, cy, gameOverLines(snap), th)
	case snap.State == types.Paused:
		drawCentered(s, cx, cy, " Paused ", th.title)
	case snap.State == types.Idle:
		drawCentered(s, cx, cy, " Press Enter to start ", th.title)
	}

	s.Show()
}

func hudLine(snap game.Snapshot) string {
	return fmt.Sprintf(" Retro Snake  Score: %d  Level: %s  %s", snap.Score, snap.Level.Title(), snap.State)
}

func gameOverLines(snap game.Snapshot) []string {
	lines := []string{"Game Over!", "", "You hit something. Your final score is:", fmt.Sprintf("%d", snap.Score), ""}
	if snap.EndReason == types.BoardFullCollision {
		lines[2] = "The board is full. Your final score is:"
	}
	return append(lines, "[Enter] Play Again  [T] Ranking  [Esc] Close")
}

func putCell(s tcell.Screen, x, y int, left, right rune, st tcell.Style) {
	s.SetContent(x, y, left, nil, st)
	s.SetContent(x+1, y, right, nil, st)
}

func fill(s tcell.Screen, x, y, w, h int, r rune, st tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, r, nil, st)
		}
	}
}

func drawFrame(s tcell.Screen, x, y, w, h int, st tcell.Style) {
	for col := x + 1; col < x+w-1; col++ {
		s.SetContent(col, y, '─', nil, st)
		s.SetContent(col, y+h-1, '─', nil, st)
	}
	for row := y + 1; row < y+h-1; row++ {
		s.SetContent(x, row, '│', nil, st)
		s.SetContent(x+w-1, row, '│', nil, st)
	}
	s.SetContent(x, y, '┌', nil, st)
	s.SetContent(x+w-1, y, '┐', nil, st)
	s.SetContent(x, y+h-1, '└', nil, st)
	s.SetContent(x+w-1, y+h-1, '┘', nil, st)
}

// drawDialog draws a box around lines centred on (cx, cy). The first line is
// the title.
func drawDialog(s tcell.Screen, cx, cy int, lines []string, th theme) {
	w := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > w {
			w = n
		}
	}
	w += 4
	h := len(lines) + 2
	x, y := cx-w/2, cy-h/2

	fill(s, x, y, w, h, ' ', th.dialog)
	drawFrame(s, x, y, w, h, th.dialog)
	for i, line := range lines {
		st := th.dialog
		if i == 0 {
			st = th.title
		}
		drawCentered(s, cx, y+1+i, line, st)
	}
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	drawText(s, cx-len([]rune(text))/2, cy, text, st)
}

func padRight(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	pad := make([]rune, width-n)
	for i := range pad {
		pad[i] = ' '
	}
	return text + string(pad)
}
