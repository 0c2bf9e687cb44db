package core

import "math"

// Viewport maps the fixed world playfield onto a grid of terminal cells.
// Games simulate in world units; only rendering and pointer input see cells.
type Viewport struct {
	WorldW, WorldH   float64
	ScreenW, ScreenH int
}

// NewViewport creates a viewport projecting a world of worldW×worldH units
// onto screenW×screenH cells.
func NewViewport(worldW, worldH float64, screenW, screenH int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, ScreenW: screenW, ScreenH: screenH}
}

// Valid reports whether both the world and the screen have a non-zero area.
func (v Viewport) Valid() bool {
	return v.WorldW > 0 && v.WorldH > 0 && v.ScreenW > 0 && v.ScreenH > 0
}

// ToCell projects a world point to the cell containing it.
func (v Viewport) ToCell(p Vec2) (x, y int, ok bool) {
	if !v.Valid() {
		return 0, 0, false
	}
	x = int(math.Floor(p.X * float64(v.ScreenW) / v.WorldW))
	y = int(math.Floor(p.Y * float64(v.ScreenH) / v.WorldH))
	return x, y, true
}

// BoxToRect projects a world box to the cells it covers.
// Boxes smaller than a cell still occupy one cell so entities never vanish.
func (v Viewport) BoxToRect(b Box) (Rect, bool) {
	x0, y0, ok := v.ToCell(Vec2{X: b.X, Y: b.Y})
	if !ok {
		return Rect{}, false
	}
	x1 := int(math.Ceil(b.Right() * float64(v.ScreenW) / v.WorldW))
	y1 := int(math.Ceil(b.Bottom() * float64(v.ScreenH) / v.WorldH))
	return NewRect(x0, y0, Max(1, x1-x0), Max(1, y1-y0)), true
}

// ToWorld converts a cell coordinate, relative to the canvas origin, to the
// world point at the center of that cell. Coordinates outside the canvas are
// clamped to its edge.
func (v Viewport) ToWorld(cx, cy int) (Vec2, bool) {
	if !v.Valid() {
		return Vec2{}, false
	}
	cx = Clamp(cx, 0, v.ScreenW-1)
	cy = Clamp(cy, 0, v.ScreenH-1)
	return Vec2{
		X: (float64(cx) + 0.5) * v.WorldW / float64(v.ScreenW),
		Y: (float64(cy) + 0.5) * v.WorldH / float64(v.ScreenH),
	}, true
}

// RowOf returns the screen row for a world y coordinate, clamped to the screen.
func (v Viewport) RowOf(y float64) int {
	if !v.Valid() {
		return 0
	}
	return Clamp(int(math.Floor(y*float64(v.ScreenH)/v.WorldH)), 0, v.ScreenH-1)
}

// ColOf returns the screen column for a world x coordinate, clamped to the screen.
func (v Viewport) ColOf(x float64) int {
	if !v.Valid() {
		return 0
	}
	return Clamp(int(math.Floor(x*float64(v.ScreenW)/v.WorldW)), 0, v.ScreenW-1)
}
