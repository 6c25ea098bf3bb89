package layout

import "math"

// Position is the rectangle of one block. X and Y are the top-left corner.
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CenterX returns the horizontal centre.
func (p Position) CenterX() float64 { return p.X + p.Width/2 }

// CenterY returns the vertical centre.
func (p Position) CenterY() float64 { return p.Y + p.Height/2 }

// Right returns the x coordinate of the right edge.
func (p Position) Right() float64 { return p.X + p.Width }

// Bottom returns the y coordinate of the bottom edge.
func (p Position) Bottom() float64 { return p.Y + p.Height }

// Bounds returns the smallest rectangle containing every position. The zero
// Position is returned for an empty map.
func Bounds(positions map[string]Position) Position {
	if len(positions) == 0 {
		return Position{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range positions {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.Right())
		maxY = max(maxY, p.Bottom())
	}
	return Position{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Translate returns a copy of positions shifted by dx, dy.
func Translate(positions map[string]Position, dx, dy float64) map[string]Position {
	out := make(map[string]Position, len(positions))
	for id, p := range positions {
		p.X += dx
		p.Y += dy
		out[id] = p
	}
	return out
}
