package blocks

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

const (
	cellWidth = 2 // Terminal columns per board cell
	panelW    = 12
	gap       = 1
)

// Visual glyphs, two columns per cell.
const (
	blockGlyph = "██"
	ghostGlyph = "░░"
	emptyGlyph = " ·"
)

var pieceColors = map[engine.PieceType]core.Color{
	engine.PieceI: core.ColorCyan,
	engine.PieceJ: core.ColorBlue,
	engine.PieceL: core.ColorOrange,
	engine.PieceO: core.ColorYellow,
	engine.PieceS: core.ColorGreen,
	engine.PieceT: core.ColorMagenta,
	engine.PieceZ: core.ColorRed,
}

func pieceColor(v int) core.Color {
	if c, ok := pieceColors[engine.PieceType(v)]; ok {
		return c
	}
	return core.ColorWhite
}

// layout is the screen placement of the board and side panels.
type layout struct {
	board core.Rect // Includes the border
	left  int       // X of the hold/stats panel
	right int       // X of the next panel
}

func (g *Game) boardSize() (w, h int) {
	return g.cfg.Board.Width*cellWidth + 2, g.cfg.Board.VisibleRows() + 2
}

// minSize is the smallest screen the full layout fits on: title row, board
// and controls row.
func (g *Game) minSize() (w, h int) {
	bw, bh := g.boardSize()
	return panelW + gap + bw + gap + panelW, bh + 2
}

func (g *Game) layout() layout {
	bw, bh := g.boardSize()
	totalW, _ := g.minSize()
	originX := max((g.runtime.ScreenW-totalW)/2, 0)
	boardX := originX + panelW + gap
	return layout{
		board: core.NewRect(boardX, 1, bw, bh),
		left:  originX,
		right: boardX + bw + gap,
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	view := g.session.View()

	g.renderTitle(dst, l)
	g.renderBoard(dst, l, view)
	g.renderHold(dst, l, view)
	g.renderStats(dst, l)
	g.renderNext(dst, l, view)
	g.renderControls(dst, l)
	g.renderOverlays(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minSize()
	y := g.runtime.ScreenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, please resize terminal", minW, minH), core.ColorGray)
}

func (g *Game) renderTitle(dst *core.Screen, l layout) {
	title := "BLOCKS"
	if g.mode == engine.ModeRelaxed {
		title = "BLOCKS · RELAXED"
	}
	x := l.board.X + (l.board.W-len([]rune(title)))/2
	dst.DrawTextColor(x, 0, title, core.ColorBrightWhite)
}

func (g *Game) renderBoard(dst *core.Screen, l layout, view engine.View) {
	border := core.ColorWhite
	if g.session.Danger() {
		border = core.ColorRed
	}
	dst.DrawBox(l.board, border)

	grid := g.session.Grid()
	hidden := g.cfg.Board.HiddenRows
	inner := l.board.Inset(1)

	cellAt := func(x, y int) (int, int) {
		return inner.X + x*cellWidth, inner.Y + y - hidden
	}

	for y := hidden; y < grid.Height(); y++ {
		for x := range grid.Width() {
			sx, sy := cellAt(x, y)
			if v := grid.At(x, y); v != 0 {
				dst.DrawTextColor(sx, sy, blockGlyph, pieceColor(v))
			} else {
				dst.DrawTextColor(sx, sy, emptyGlyph, core.ColorGray)
			}
		}
	}

	if g.session.Over() {
		return
	}

	drawPiece := func(py int, glyph string, c core.Color) {
		for my := range engine.MaskSize {
			for mx := range engine.MaskSize {
				if view.Mask[my][mx] == 0 {
					continue
				}
				x, y := view.X+mx, py+my
				if y < hidden || !grid.InBounds(x, y) {
					continue
				}
				sx, sy := cellAt(x, y)
				dst.DrawTextColor(sx, sy, glyph, c)
			}
		}
	}

	if view.GhostY != view.Y {
		drawPiece(view.GhostY, ghostGlyph, core.ColorGray)
	}
	drawPiece(view.Y, blockGlyph, pieceColors[view.Piece])
}

// maskBounds returns the occupied bounding box of m.
func maskBounds(m engine.Mask) (x0, y0, x1, y1 int, ok bool) {
	x0, y0 = engine.MaskSize, engine.MaskSize
	x1, y1 = -1, -1
	for y := range engine.MaskSize {
		for x := range engine.MaskSize {
			if m[y][x] == 0 {
				continue
			}
			x0, y0 = min(x0, x), min(y0, y)
			x1, y1 = max(x1, x), max(y1, y)
		}
	}
	return x0, y0, x1, y1, x1 >= 0
}

// drawMask draws the occupied part of m with its top-left at (x, y) and
// returns the rows it used.
func drawMask(dst *core.Screen, m engine.Mask, x, y int, c core.Color) int {
	x0, y0, x1, y1, ok := maskBounds(m)
	if !ok {
		return 0
	}
	for my := y0; my <= y1; my++ {
		for mx := x0; mx <= x1; mx++ {
			if m[my][mx] != 0 {
				dst.DrawTextColor(x+(mx-x0)*cellWidth, y+my-y0, blockGlyph, c)
			}
		}
	}
	return y1 - y0 + 1
}

// centerMaskX returns the x that centers m inside a panel of width w at x.
func centerMaskX(m engine.Mask, x, w int) int {
	x0, _, x1, _, ok := maskBounds(m)
	if !ok {
		return x
	}
	return x + (w-(x1-x0+1)*cellWidth)/2
}

func (g *Game) renderHold(dst *core.Screen, l layout, view engine.View) {
	box := core.NewRect(l.left, l.board.Y, panelW, 4)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawTextColor(box.X+2, box.Y, " HOLD ", core.ColorWhite)

	if !view.HasHeld {
		return
	}
	c := pieceColors[view.HeldPiece]
	if !view.CanHold {
		c = core.ColorGray
	}
	inner := box.Inset(1)
	drawMask(dst, view.Held, centerMaskX(view.Held, inner.X, inner.W), inner.Y, c)
}

func (g *Game) renderStats(dst *core.Screen, l layout) {
	undo := "∞"
	if !g.session.Policy().Unlimited() {
		undo = strconv.Itoa(g.session.UndosLeft())
	}

	stats := []struct {
		label string
		value string
	}{
		{"SCORE", strconv.Itoa(g.session.Score())},
		{"BEST", strconv.Itoa(max(g.best, g.session.Score()))},
		{"LEVEL", strconv.Itoa(g.session.Level())},
		{"LINES", strconv.Itoa(g.session.Lines())},
		{"UNDO", undo},
	}
	if g.mode == engine.ModeRelaxed {
		stats = append(stats[:1], stats[3:]...)
	}

	y := l.board.Y + 5
	for _, s := range stats {
		dst.DrawTextColor(l.left+1, y, s.label, core.ColorGray)
		dst.DrawTextColor(l.left+1, y+1, s.value, core.ColorBrightWhite)
		y += 3
	}
}

func (g *Game) renderNext(dst *core.Screen, l layout, view engine.View) {
	h := min(2+len(view.Upcoming)*3, l.board.H)
	box := core.NewRect(l.right, l.board.Y, panelW, h)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawTextColor(box.X+2, box.Y, " NEXT ", core.ColorWhite)

	inner := box.Inset(1)
	y := inner.Y
	for i, m := range view.Upcoming {
		if y+2 > inner.Bottom() {
			break
		}
		c := pieceColors[view.UpcomingPieces[i]]
		if i > 0 {
			c = core.ColorGray
		}
		rows := drawMask(dst, m, centerMaskX(m, inner.X, inner.W), y, c)
		y += max(rows, 2) + 1
	}
}

func (g *Game) renderControls(dst *core.Screen, l layout) {
	y := l.board.Bottom()
	controls := g.Controls()
	if len([]rune(controls)) > g.runtime.ScreenW {
		controls = "←→ ↑ ↓ Space | C U N P Q"
	}
	dst.DrawTextCentered(y, controls, core.ColorGray)
}

// renderOverlays draws game state overlays on top of the board.
func (g *Game) renderOverlays(dst *core.Screen, l layout) {
	cx := l.board.X + l.board.W/2
	cy := l.board.Y + l.board.H/2

	switch {
	case g.session.Over():
		lines := []string{"GAME OVER", "Score: " + strconv.Itoa(g.session.Score())}
		if g.newHigh {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "R: restart  Q: quit")
		drawOverlay(dst, cx, cy, core.ColorRed, lines...)
	case g.paused:
		drawOverlay(dst, cx, cy, core.ColorYellow, "PAUSED", "Press P to resume")
	case g.countdown > 0:
		secs := (g.countdown + g.runtime.TickRate - 1) / g.runtime.TickRate
		drawOverlay(dst, cx, cy, core.ColorBrightWhite, "GET READY", strconv.Itoa(secs))
	case g.banner != "":
		dst.DrawTextColor(cx-len([]rune(g.banner))/2, l.board.Y+l.board.H/3, g.banner, core.ColorBrightYellow)
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawTextColor(x, box.Y+1+i, line, c)
	}
}
