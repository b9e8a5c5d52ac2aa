package ui

import (
	"fmt"

	"retro-snake/game"
	"retro-snake/game/types"
	"retro-snake/ranking"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	minPanelWidth = 220
)

var (
	boardColor    = rl.Color{R: 20, G: 40, B: 24, A: 255}
	obstacleColor = rl.Color{R: 110, G: 110, B: 110, A: 255}
	snakeColor    = rl.Color{R: 60, G: 200, B: 90, A: 255}
	headColor     = rl.Color{R: 90, G: 240, B: 120, A: 255}
	foodColor     = rl.Color{R: 245, G: 140, B: 40, A: 255}
	panelColor    = rl.Color{R: 35, G: 35, B: 35, A: 255}
	overlayColor  = rl.Color{R: 0, G: 0, B: 0, A: 170}
)

// layout is where the board and the side panel go for a given window size.
type layout struct {
	cellSize   int32
	offsetX    int32
	offsetY    int32
	gridSize   int32
	panelX     int32
	panelWidth int32
}

// computeLayout fits a square board into the window, keeping room for the
// side panel on the right.
func computeLayout(screenWidth, screenHeight int32, boardSize int) layout {
	panelWidth := screenWidth / 4
	if panelWidth < minPanelWidth {
		panelWidth = minPanelWidth
	}

	availableWidth := screenWidth - panelWidth - borderPadding*2
	availableHeight := screenHeight - borderPadding*2
	cellSize := min(availableWidth/int32(boardSize), availableHeight/int32(boardSize))
	if cellSize < 1 {
		cellSize = 1
	}

	gridSize := cellSize * int32(boardSize)
	return layout{
		cellSize:   cellSize,
		offsetX:    borderPadding,
		offsetY:    (screenHeight - gridSize) / 2,
		gridSize:   gridSize,
		panelX:     borderPadding*2 + gridSize,
		panelWidth: screenWidth - (borderPadding*2 + gridSize),
	}
}

// eyeCenters gives the two eye positions as fractions of a cell, placed on the
// side of the head facing the direction of travel.
func eyeCenters(d types.Direction) [2]rl.Vector2 {
	switch d {
	case types.Up:
		return [2]rl.Vector2{{X: 0.3, Y: 0.3}, {X: 0.7, Y: 0.3}}
	case types.Down:
		return [2]rl.Vector2{{X: 0.3, Y: 0.7}, {X: 0.7, Y: 0.7}}
	case types.Left:
		return [2]rl.Vector2{{X: 0.3, Y: 0.3}, {X: 0.3, Y: 0.7}}
	default:
		return [2]rl.Vector2{{X: 0.7, Y: 0.3}, {X: 0.7, Y: 0.7}}
	}
}

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	layout       layout
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Draw renders one frame of snap plus whichever dialog is open.
func (r *Renderer) Draw(snap game.Snapshot, d dialogs) {
	r.UpdateDimensions()
	r.layout = computeLayout(r.screenWidth, r.screenHeight, snap.BoardSize)
	l := r.layout

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := max(r.screenHeight/40, 12)

	// Draw grid background
	rl.DrawRectangle(l.offsetX-1, l.offsetY-1, l.gridSize+2, l.gridSize+2, rl.DarkGray)
	rl.DrawRectangle(l.offsetX, l.offsetY, l.gridSize, l.gridSize, boardColor)

	for _, p := range snap.Obstacles {
		r.fillCell(p, obstacleColor)
	}

	if snap.HasFood {
		half := float32(l.cellSize) / 2
		rl.DrawCircle(
			l.offsetX+int32(snap.Food.X)*l.cellSize+int32(half),
			l.offsetY+int32(snap.Food.Y)*l.cellSize+int32(half),
			half*0.8, foodColor)
	}

	// Draw snake body, tail first so the head stays on top
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.drawHead(snap.Snake[0], snap.Direction)
			continue
		}
		r.fillCell(snap.Snake[i], snakeColor)
	}

	r.drawStatsPanel(snap, d.scores, fontSize)

	switch {
	case d.showRanking:
		r.drawRankingDialog(d.scores, fontSize)
	case d.showGameOver:
		r.drawGameOverDialog(snap, fontSize)
	case snap.State == types.Paused:
		r.drawBanner("Paused", fontSize*2)
	case snap.State == types.Idle:
		r.drawBanner("Press Enter to start", fontSize*2)
	}

	rl.EndDrawing()
}

func (r *Renderer) fillCell(p types.Point, color rl.Color) {
	l := r.layout
	rl.DrawRectangle(
		l.offsetX+int32(p.X)*l.cellSize,
		l.offsetY+int32(p.Y)*l.cellSize,
		l.cellSize, l.cellSize, color)
}

func (r *Renderer) drawHead(p types.Point, d types.Direction) {
	l := r.layout
	r.fillCell(p, headColor)

	x := float32(l.offsetX + int32(p.X)*l.cellSize)
	y := float32(l.offsetY + int32(p.Y)*l.cellSize)
	size := float32(l.cellSize)
	for _, eye := range eyeCenters(d) {
		rl.DrawCircle(int32(x+eye.X*size), int32(y+eye.Y*size), size/10, rl.White)
	}
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, scores []int, fontSize int32) {
	l := r.layout
	lineHeight := fontSize + fontSize/2
	x := l.panelX + 5
	y := int32(borderPadding)

	rl.DrawRectangle(l.panelX, 0, l.panelWidth, r.screenHeight, panelColor)

	rl.DrawText("Retro Snake", x, y, fontSize+fontSize/2, snakeColor)
	y += lineHeight * 2
	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), x, y, fontSize, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Level: %s", snap.Level.Title()), x, y, fontSize, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("State: %s", snap.State), x, y, fontSize, rl.LightGray)
	y += lineHeight * 2

	controls := []string{
		"Arrows/WASD  move",
		"Space  pause/resume",
		"Enter  start",
		"R  reset",
	}
	muted := snap.State == types.Running
	for _, line := range controls {
		rl.DrawText(line, x, y, fontSize, rl.Gray)
		y += lineHeight
	}
	// Level change and ranking are unavailable while the snake moves.
	for _, line := range []string{"L  next level", "T  ranking"} {
		color := rl.Gray
		if muted {
			color = rl.DarkGray
		}
		rl.DrawText(line, x, y, fontSize, color)
		y += lineHeight
	}

	r.drawScoreGraph(scores, x, y+lineHeight, fontSize)
}

// drawScoreGraph draws the top scores as horizontal bars, best first.
func (r *Renderer) drawScoreGraph(scores []int, x, y, fontSize int32) {
	if len(scores) == 0 {
		return
	}
	l := r.layout
	graphWidth := l.panelWidth - 30
	barHeight := fontSize

	rl.DrawText("Best scores", x, y, fontSize, rl.White)
	y += fontSize + 5

	maxScore := scores[0]
	for i, score := range scores {
		w := int32(float32(graphWidth) * float32(score) / float32(maxScore))
		color := snakeColor
		if i > 0 {
			color = rl.Fade(snakeColor, 0.6)
		}
		rl.DrawRectangle(x, y, w, barHeight-2, color)
		rl.DrawText(fmt.Sprintf("%d", score), x+2, y, fontSize-2, rl.Black)
		y += barHeight
	}
}

func (r *Renderer) drawGameOverDialog(snap game.Snapshot, fontSize int32) {
	lines := []string{"You hit something. Your final score is:"}
	if snap.EndReason == types.BoardFullCollision {
		lines[0] = "The board is full. Your final score is:"
	}
	r.drawDialog("Game Over!", append(lines, fmt.Sprintf("%d", snap.Score), "",
		"[Enter] Play Again   [T] Ranking   [Esc] Close"), fontSize)
}

func (r *Renderer) drawRankingDialog(scores []int, fontSize int32) {
	lines := []string{ranking.HeaderText}
	if len(scores) == 0 {
		lines = nil
	}
	lines = append(lines, ranking.Lines(scores)...)
	r.drawDialog(ranking.Title, append(lines, "", "[Esc] Close"), fontSize)
}

// drawDialog draws a centred box over the board with a title and lines.
func (r *Renderer) drawDialog(title string, lines []string, fontSize int32) {
	l := r.layout
	lineHeight := fontSize + fontSize/2

	width := rl.MeasureText(title, fontSize*2)
	for _, line := range lines {
		width = max(width, rl.MeasureText(line, fontSize))
	}
	width += 40
	height := fontSize*2 + lineHeight*int32(len(lines)) + 40

	x := l.offsetX + (l.gridSize-width)/2
	y := l.offsetY + (l.gridSize-height)/2

	rl.DrawRectangle(l.offsetX, l.offsetY, l.gridSize, l.gridSize, overlayColor)
	rl.DrawRectangle(x, y, width, height, panelColor)
	rl.DrawRectangleLines(x, y, width, height, rl.White)

	rl.DrawText(title, x+(width-rl.MeasureText(title, fontSize*2))/2, y+15, fontSize*2, foodColor)
	ty := y + 20 + fontSize*2
	for _, line := range lines {
		rl.DrawText(line, x+(width-rl.MeasureText(line, fontSize))/2, ty, fontSize, rl.White)
		ty += lineHeight
	}
}

func (r *Renderer) drawBanner(text string, fontSize int32) {
	l := r.layout
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, l.offsetX+(l.gridSize-w)/2, l.offsetY+(l.gridSize-fontSize)/2, fontSize, rl.White)
}
