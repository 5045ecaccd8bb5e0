package tui

import (
	"fmt"
	"math"

	"github.com/ametelin/blockfall/internal/core"
	"github.com/ametelin/blockfall/internal/game"
)

// Board layout constants. Cells are drawn two runes wide so the
// playfield looks roughly square in a terminal.
const (
	boardOffsetX = 1
	boardOffsetY = 2
	cellWidth    = 2
)

// RenderGame draws the game state to the screen buffer.
func RenderGame(s game.State, dst *core.Screen) {
	dst.Clear()

	renderHUD(s, dst)

	if dst.Width() < s.Width*cellWidth+boardOffsetX+14 || dst.Height() < s.Height+boardOffsetY+2 {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	renderBoard(s, dst)
	renderNext(s, dst)

	switch {
	case s.Phase == game.PhaseStopped && (s.Score > 0 || s.Grid.Count() > 0):
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - Press R to restart", s.Score))
	case s.Phase == game.PhaseStopped:
		renderOverlay(dst, "Blockfall", "Press Enter to start")
	case s.Phase == game.PhasePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func renderHUD(s game.State, dst *core.Screen) {
	hud := fmt.Sprintf(" Blockfall — Score: %d  Lines: %d  Level: %d", s.Score, s.Lines, s.Level())

	for x := 0; x < dst.Width() && x < len(hud); x++ {
		dst.Set(x, 0, rune(hud[x]))
	}

	// Draw separator
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderBoard draws the playfield border, settled cells, and the active piece.
func renderBoard(s game.State, dst *core.Screen) {
	dst.DrawBox(core.NewRect(boardOffsetX, boardOffsetY, s.Width*cellWidth+2, s.Height+2))

	// Settled cells
	for _, p := range s.Grid.Points() {
		if p.Y < 0 {
			continue
		}
		drawCell(dst, p.X, p.Y, core.ColorGray)
	}

	// Active piece. Rows above the visible top are simply not drawn.
	row := int(math.Floor(s.Pos.Row))
	for _, c := range s.Active.Cells {
		cy := row + c.Y
		if cy < 0 {
			continue
		}
		drawCell(dst, s.Pos.Col+c.X, cy, s.Active.Color())
	}
}

// drawCell paints one board cell at board coordinates (x, y).
func drawCell(dst *core.Screen, x, y int, color core.Color) {
	sx := boardOffsetX + 1 + x*cellWidth
	sy := boardOffsetY + 1 + y
	dst.SetCell(sx, sy, '█', color)
	dst.SetCell(sx+1, sy, '█', color)
}

// renderNext draws the upcoming piece preview beside the board.
func renderNext(s game.State, dst *core.Screen) {
	x := boardOffsetX + s.Width*cellWidth + 4
	y := boardOffsetY

	dst.DrawText(x+1, y, "Next")
	dst.DrawBox(core.NewRect(x, y+1, 4*cellWidth+2, 4))

	offX := (4 - s.Next.Width()) * cellWidth / 2
	for _, c := range s.Next.Cells {
		sx := x + 1 + offX + c.X*cellWidth
		sy := y + 2 + c.Y
		dst.SetCell(sx, sy, '█', s.Next.Color())
		dst.SetCell(sx+1, sy, '█', s.Next.Color())
	}
}

// renderOverlay draws a centered overlay message.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	// Draw text lines centered
	dst.DrawText(boxX+(boxW-len(line1))/2, boxY+1, line1)
	dst.DrawText(boxX+(boxW-len(line2))/2, boxY+3, line2)
}
