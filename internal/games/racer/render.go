package racer

import (
	"fmt"

	platformcore "github.com/vovakirdan/paperacers/internal/core"
	"github.com/vovakirdan/paperacers/internal/games/racer/core"
)

// Glyphs used on the board.
const (
	glyphDot        = '·'
	glyphRoad       = '░'
	glyphEdge       = '#'
	glyphStart      = '='
	glyphTrail      = '*'
	glyphPath       = 'o'
	glyphHead       = '@'
	glyphProjection = 'x'
	glyphCandidate  = '+'
	glyphCursor     = 'X'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	if g.cfg.Display.ShowTrack {
		g.renderRoad(dst)
	}
	g.renderDots(dst)
	g.renderEdges(dst)
	g.renderStart(dst)
	g.renderHints(dst)
	g.renderPath(dst)
	g.renderCursor(dst)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	velocity := "-"
	if v, ok := g.race.Velocity(); ok {
		velocity = v.String()
	}
	hud := fmt.Sprintf(" %s | %s | Moves: %d  Vel: %s  Cursor: %s",
		g.Title(), g.track.Name, g.race.Len(), velocity, g.cursor)
	dst.DrawText(0, 0, hud)

	// Last result goes after the status text, colored by outcome
	if g.last != ResultNone {
		color := platformcore.ColorGreen
		if g.last == ResultRejected {
			color = platformcore.ColorRed
		}
		dst.DrawTextColor(len([]rune(hud))+2, 0, string(g.last), color)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderRoad shades every screen cell whose nearest grid point is on course.
func (g *Game) renderRoad(dst *platformcore.Screen) {
	area := g.view.Area()
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			if g.track.OnCourse(g.view.ToGrid(x, y)) {
				dst.SetColor(x, y, glyphRoad, platformcore.ColorDarkGray)
			}
		}
	}
}

// renderDots draws the grid points of the squared paper.
func (g *Game) renderDots(dst *platformcore.Screen) {
	for row, rows := 0, g.view.Rows(); row < rows; row++ {
		for col, cols := 0, g.view.Cols(); col < cols; col++ {
			p := g.view.Origin.Add(core.Pos(col, row))
			g.plot(dst, p, glyphDot, platformcore.ColorGray)
		}
	}
}

// renderEdges draws the outer and inner polygons.
func (g *Game) renderEdges(dst *platformcore.Screen) {
	for _, poly := range []core.Polygon{g.track.Outer, g.track.Inner} {
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			g.line(dst, a, b, glyphEdge, platformcore.ColorWhite)
		}
	}
}

// renderStart marks the start line cells.
func (g *Game) renderStart(dst *platformcore.Screen) {
	for _, p := range g.track.Start {
		g.plot(dst, p, glyphStart, platformcore.ColorYellow)
	}
}

// renderHints draws the legal window and the coasting point.
func (g *Game) renderHints(dst *platformcore.Screen) {
	if g.cfg.Display.ShowCandidates {
		for _, p := range g.race.Candidates() {
			g.plot(dst, p, glyphCandidate, platformcore.ColorCyan)
		}
	}
	if g.cfg.Display.ShowProjection {
		if p, ok := g.race.Projection(); ok {
			g.plot(dst, p, glyphProjection, platformcore.ColorBrightBlue)
		}
	}
}

// renderPath draws the segments between accepted positions, then the positions.
func (g *Game) renderPath(dst *platformcore.Screen) {
	path := g.race.Path()
	for i := 1; i < len(path); i++ {
		g.line(dst, path[i-1], path[i], glyphTrail, platformcore.ColorYellow)
	}
	for i, p := range path {
		if i == len(path)-1 {
			g.plot(dst, p, glyphHead, platformcore.ColorBrightGreen)
		} else {
			g.plot(dst, p, glyphPath, platformcore.ColorBlue)
		}
	}
}

// renderCursor draws the cursor, green when the race would accept it.
func (g *Game) renderCursor(dst *platformcore.Screen) {
	color := platformcore.ColorBrightRed
	if g.race.ValidMove(g.cursor) {
		color = platformcore.ColorBrightGreen
	}

	x, y := g.view.ToScreen(g.cursor)
	if !g.view.Area().Contains(x, y) {
		return
	}
	dst.SetColor(x, y, glyphCursor, color)
	if g.view.CellW >= 3 {
		dst.SetColor(x-1, y, '[', color)
		dst.SetColor(x+1, y, ']', color)
	}
}

// plot draws a glyph on grid point p if it is inside the viewport.
func (g *Game) plot(dst *platformcore.Screen, p core.GridPos, r rune, c platformcore.Color) {
	x, y := g.view.ToScreen(p)
	if g.view.Area().Contains(x, y) {
		dst.SetColor(x, y, r, c)
	}
}

// line draws the segment between two grid points in screen space,
// clipped to the viewport. Endpoints are drawn too.
func (g *Game) line(dst *platformcore.Screen, from, to core.GridPos, r rune, c platformcore.Color) {
	x0, y0 := g.view.ToScreen(from)
	x1, y1 := g.view.ToScreen(to)
	area := g.view.Area()

	// Bresenham
	dx := platformcore.Abs(x1 - x0)
	dy := -platformcore.Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	errAcc := dx + dy
	for {
		if area.Contains(x0, y0) {
			dst.SetColor(x0, y0, r, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x0 += sx
		}
		if e2 <= dx {
			errAcc += dx
			y0 += sy
		}
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	maxLen := max(len(line1), len(line2))
	box := platformcore.NewRect((dst.Width()-maxLen-4)/2, (dst.Height()-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
