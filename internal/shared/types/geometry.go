package types

// Point is a position in viewport pixels, origin at the top-left corner
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the offset from o to p
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Size represents window or icon dimensions
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Frame is a position plus size pair
type Frame struct {
	Position Point `json:"position"`
	Size     Size  `json:"size"`
}
