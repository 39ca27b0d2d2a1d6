package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// halfBlock shows two grid rows per terminal row: FG is the upper cell,
// BG the lower one.
const halfBlock = '▀'

var (
	colorDoublePoints = core.MustParseHex("#ffd700")
	colorPanel        = core.MustParseHex("#d0d0d0")
	colorBorder       = core.MustParseHex("#444444")
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if !sameColor(cell.FG, start.FG) || !sameColor(cell.BG, start.BG) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}

func sameColor(a, b *core.RGB) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func cellStyle(c core.Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.FG != nil {
		style = style.Foreground(lipgloss.Color(c.FG.Hex()))
	}
	if c.BG != nil {
		style = style.Background(lipgloss.Color(c.BG.Hex()))
	}
	return style
}

// boardSize returns the terminal cells needed for a grid, border included.
func boardSize(gridW, gridH int) (w, h int) {
	return gridW + 2, (gridH+1)/2 + 2
}

// viewSize is the area DrawGame needs: score panel plus bordered board.
func viewSize(gridW, gridH int) (w, h int) {
	bw, bh := boardSize(gridW, gridH)
	return bw, bh + 1
}

// RequiredSize returns the smallest terminal that fits the game view
// including the help footer.
func RequiredSize(gridW, gridH int) (w, h int) {
	w, h = viewSize(gridW, gridH)
	return w, h + 1
}

// DrawGame renders a snapshot into dst. Score panel on the first row,
// board below, overlays on top.
func DrawGame(dst *core.Screen, snap snake.Snapshot, panel *Panel) {
	dst.Clear()

	needW, needH := viewSize(snap.GridW, snap.GridH)
	if dst.Width() < needW || dst.Height() < needH {
		drawTooSmall(dst, needW, needH+1)
		return
	}

	bw, bh := boardSize(snap.GridW, snap.GridH)
	ox := (dst.Width() - bw) / 2
	oy := 1

	dst.DrawTextCentered(0, panel.Line(), &colorPanel)
	dst.DrawBox(core.NewRect(ox, oy, bw, bh), &colorBorder)
	drawBoard(dst, snap, ox+1, oy+1)

	mid := oy + bh/2
	switch {
	case snap.GameOver():
		fg := snap.GameOverColor
		dst.DrawTextCentered(mid-1, " Game Over ", &fg)
		dst.DrawTextCentered(mid+1, " Press SPACE to retry ", &fg)
	case snap.Paused:
		white := core.ColorWhite
		dst.DrawTextCentered(mid, " Paused ", &white)
	}
}

// drawBoard paints the grid with half-block cells starting at (ox, oy).
func drawBoard(dst *core.Screen, snap snake.Snapshot, ox, oy int) {
	colors := make([]core.RGB, snap.GridW*snap.GridH)
	for i := range colors {
		colors[i] = core.ColorBoard
	}
	paint := func(c snake.Cell, rgb core.RGB) {
		if c.X >= 0 && c.X < snap.GridW && c.Y >= 0 && c.Y < snap.GridH {
			colors[c.Y*snap.GridW+c.X] = rgb
		}
	}

	if snap.Item != nil {
		switch snap.Item.PowerUp {
		case snake.PowerUpSpeed:
			paint(snap.Item.Cell, core.ColorPowerUp)
		case snake.PowerUpDoublePoints:
			paint(snap.Item.Cell, colorDoublePoints)
		default:
			paint(snap.Item.Cell, core.ColorFood)
		}
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		rgb := snap.SnakeColor
		if i == 0 {
			rgb = rgb.Blend(core.ColorWhite, 0.35)
		}
		paint(snap.Snake[i], rgb)
	}

	for row := 0; row < (snap.GridH+1)/2; row++ {
		for x := range snap.GridW {
			top := colors[(2*row)*snap.GridW+x]
			if 2*row+1 >= snap.GridH {
				dst.SetStyled(ox+x, oy+row, halfBlock, &top, nil)
				continue
			}
			bottom := colors[(2*row+1)*snap.GridW+x]
			dst.SetStyled(ox+x, oy+row, halfBlock, &top, &bottom)
		}
	}
}

func drawTooSmall(dst *core.Screen, needW, needH int) {
	y := dst.Height() / 2
	white := core.ColorWhite
	dst.DrawTextCentered(y-1, "Terminal too small", &white)
	dst.DrawTextCentered(y, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()), nil)
	dst.DrawTextCentered(y+1, "Resize the window or press Q to quit", nil)
}
