package core

// CellWidth is the number of terminal columns used for one grid cell, which
// keeps cells roughly square in most terminal fonts.
const CellWidth = 2

// glyphs holds the two-column glyph drawn for each filled cell role.
var glyphs = map[Role][CellWidth]rune{
	RoleBody:  {'█', '█'},
	RoleHead:  {'▓', '▓'},
	RoleApple: {'(', ')'},
}

// Viewport places a board of Cols x Rows grid cells on a terminal screen.
type Viewport struct {
	OriginX int // Screen column of grid cell (0, 0)
	OriginY int // Screen row of grid cell (0, 0)
	Cols    int // Board width in cells
	Rows    int // Board height in cells
	Unit    int // Pixel size of one cell in primitive space
}

// MinScreenSize returns the terminal size needed to show a board of cols x rows:
// one HUD row plus the board frame.
func MinScreenSize(cols, rows int) (w, h int) {
	return cols*CellWidth + 2, rows + 3
}

// NewViewport centers a cols x rows board on a screenW x screenH terminal.
// ok is false when the screen is too small.
func NewViewport(cols, rows, unit, screenW, screenH int) (vp Viewport, ok bool) {
	needW, needH := MinScreenSize(cols, rows)
	if screenW < needW || screenH < needH || unit <= 0 {
		return Viewport{}, false
	}
	return Viewport{
		OriginX: (screenW-needW)/2 + 1,
		OriginY: 2,
		Cols:    cols,
		Rows:    rows,
		Unit:    unit,
	}, true
}

// frame returns the screen rectangle of the board border.
func (vp Viewport) frame() Rect {
	return Rect{X: vp.OriginX - 1, Y: vp.OriginY - 1, W: vp.Cols*CellWidth + 2, H: vp.Rows + 2}
}

// Rasterize draws primitives onto dst in order. Pixel-space rectangles and
// circles are mapped back onto the grid cells they touch; anything outside
// the board is clipped.
func Rasterize(dst *Screen, prims []Primitive, vp Viewport) {
	for _, p := range prims {
		switch p.Shape {
		case ShapeRect:
			if p.Role == RoleBoard {
				dst.DrawBox(vp.frame(), RoleColor(p.Role))
				continue
			}
			vp.fillCells(dst, p.Rect, p.Role)
		case ShapeCircle:
			vp.fillCells(dst, p.Circle.Bounds(), p.Role)
		case ShapeText:
			vp.drawText(dst, p)
		}
	}
}

// fillCells paints every on-board cell covered by r.
func (vp Viewport) fillCells(dst *Screen, r Rect, role Role) {
	if r.Empty() {
		return
	}
	g, ok := glyphs[role]
	if !ok {
		return
	}
	color := RoleColor(role)

	x0 := Clamp(floorDiv(r.X, vp.Unit), 0, vp.Cols)
	x1 := Clamp(floorDiv(r.Right()-1, vp.Unit), -1, vp.Cols-1)
	y0 := Clamp(floorDiv(r.Y, vp.Unit), 0, vp.Rows)
	y1 := Clamp(floorDiv(r.Bottom()-1, vp.Unit), -1, vp.Rows-1)

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			sx := vp.OriginX + cx*CellWidth
			sy := vp.OriginY + cy
			for i, ch := range g {
				dst.SetCell(sx+i, sy, ch, color)
			}
		}
	}
}

// drawText lays out a text primitive: top-anchored text goes on the HUD row,
// centered text becomes a framed banner over the middle of the board.
func (vp Viewport) drawText(dst *Screen, p Primitive) {
	color := RoleColor(p.Role)
	frame := vp.frame()

	if p.Anchor == AnchorTop {
		for i, line := range p.Lines {
			dst.DrawText(frame.X, frame.Y-len(p.Lines)+i, line, color)
		}
		return
	}

	width := 0
	for _, line := range p.Lines {
		width = max(width, len([]rune(line)))
	}
	box := Rect{W: width + 4, H: len(p.Lines)*2 + 1}
	box.X = frame.X + (frame.W-box.W)/2
	box.Y = frame.Y + (frame.H-box.H)/2

	dst.FillRect(box, ' ', ColorDefault)
	dst.DrawBox(box, color)
	for i, line := range p.Lines {
		dst.DrawTextCentered(box.X, box.W, box.Y+1+i*2, line, color)
	}
}
