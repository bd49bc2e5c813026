package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorDarkRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("88")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
}

// cellWidth is how many terminal columns one board cell takes.
// Terminal glyphs are about twice as tall as wide.
const cellWidth = 2

// CellColor maps a cell classification to its display color.
func CellColor(p config.PaletteConfig, c snake.Cell) core.Color {
	switch c {
	case snake.CellOccupied:
		return p.Occupied
	case snake.CellTarget:
		return p.Target
	case snake.CellGameOver:
		return p.GameOver
	case snake.CellExcellent:
		return p.Excellent
	default:
		return p.Empty
	}
}

// cellGlyph returns the two runes drawn for a cell.
func cellGlyph(c snake.Cell) (rune, rune) {
	switch c {
	case snake.CellOccupied, snake.CellGameOver, snake.CellExcellent:
		return '█', '█'
	case snake.CellTarget:
		return '●', ' '
	default:
		return '·', ' '
	}
}

// HUD holds the status figures shown around the board.
type HUD struct {
	Snapshot snake.Snapshot
	Stats    storage.Stats // finished runs so far, this one included once recorded
	Top      []storage.Run // longest runs, shown after the run ends
	Paused   bool
}

// BoardRect returns where the framed board sits on a w×h screen, below
// the HUD line. ok is false when the screen is too small for it.
func BoardRect(v snake.View, w, h int) (core.Rect, bool) {
	boxW := v.Columns()*cellWidth + 2
	boxH := v.Rows() + 2
	area := h - 2 // HUD line and status line
	r := core.CenteredRect(w, area, boxW, boxH)
	r.Y++
	return r, boxW <= w && boxH <= area
}

// Draw paints the HUD, the framed board and the status line onto dst.
func Draw(dst *core.Screen, v snake.View, hud HUD, palette config.PaletteConfig) {
	dst.Clear()

	drawHUD(dst, hud)

	box, ok := BoardRect(v, dst.Width(), dst.Height())
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("need %dx%d", box.W, box.H+2), core.ColorGray)
		return
	}

	dst.DrawBox(box, core.ColorGray)

	// Row 0 is drawn at the bottom so that Up (row+1) moves up the screen.
	for row := range v.Rows() {
		y := box.Bottom() - 2 - row
		for col := range v.Columns() {
			cell := v.Get(snake.Position{Row: row, Col: col})
			color := CellColor(palette, cell)
			left, right := cellGlyph(cell)
			x := box.X + 1 + col*cellWidth
			dst.SetColored(x, y, left, color)
			dst.SetColored(x+1, y, right, color)
		}
	}

	if snap := hud.Snapshot; snap.State == snake.StateTerminated {
		drawTopRuns(dst, box, hud.Top)
	}

	status, color := statusLine(hud)
	dst.DrawTextCentered(dst.Height()-1, status, color)
}

// topPanelWidth fits "10. 9999 15:04" with a little slack.
const topPanelWidth = 16

// drawTopRuns lists the longest runs beside the board, right of it when
// there is room and left of it otherwise. Nothing is drawn when neither
// side fits. Runs that filled the board are highlighted.
func drawTopRuns(dst *core.Screen, board core.Rect, runs []storage.Run) {
	if len(runs) == 0 {
		return
	}

	h := len(runs) + 1
	x := board.Right() + 2
	if x+topPanelWidth > dst.Width() {
		x = board.X - 2 - topPanelWidth
	}
	y := core.Clamp(board.Y, 1, dst.Height()-1-h)

	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	if !screen.Contains(x, y) || !screen.Contains(x+topPanelWidth-1, y+h-1) {
		return
	}

	dst.DrawTextColored(x, y, "Top runs", core.ColorCyan)
	for i, r := range runs {
		line := fmt.Sprintf("%2d. %-4d %s", i+1, r.Length, r.EndedAt.Local().Format("15:04"))
		color := core.ColorWhite
		if r.Outcome == snake.OutcomeFull.String() {
			color = core.ColorBrightGreen
		}
		dst.DrawTextColored(x, y+1+i, line, color)
	}
}

func drawHUD(dst *core.Screen, hud HUD) {
	snap := hud.Snapshot
	text := fmt.Sprintf(" Snake   length %d   best %d   tick %d   heading %s",
		snap.Len, hud.Stats.Best, snap.Tick, snap.Heading)
	dst.DrawTextColored(0, 0, text, core.ColorCyan)
}

func statusLine(hud HUD) (string, core.Color) {
	snap := hud.Snapshot
	switch {
	case snap.Outcome == snake.OutcomeFull:
		return fmt.Sprintf("Excellent! Board filled at length %d - %s - R to play again",
			snap.Len, sessionSummary(hud.Stats)), core.ColorBrightGreen
	case snap.State == snake.StateTerminated:
		return fmt.Sprintf("Game over at length %d - %s - R to play again",
			snap.Len, sessionSummary(hud.Stats)), core.ColorBrightRed
	case hud.Paused:
		return "Paused - press P to continue", core.ColorYellow
	default:
		return fmt.Sprintf("run %d", hud.Stats.Runs+1), core.ColorGray
	}
}

func sessionSummary(s storage.Stats) string {
	return fmt.Sprintf("runs %d, fulls %d, avg %.1f", s.Runs, s.Fulls, s.AvgLength)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
