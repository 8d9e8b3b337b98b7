package world

// Rect is an axis-aligned block of tiles used for rooms, corridors and exits.
type Rect struct {
	X, Y         int // Lowest corner
	XSize, YSize int // Extent along each axis
}

// Contains returns true if the given point is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.XSize && y >= r.Y && y < r.Y+r.YSize
}

// ContainsStrict returns true if the point is inside the rect and not on its outermost ring.
func (r Rect) ContainsStrict(x, y int) bool {
	return x > r.X && x < r.X+r.XSize-1 && y > r.Y && y < r.Y+r.YSize-1
}

// OnBorder returns true if the point lies on the one-tile ring around the rect.
func (r Rect) OnBorder(x, y int) bool {
	outer := Rect{X: r.X - 1, Y: r.Y - 1, XSize: r.XSize + 2, YSize: r.YSize + 2}
	return outer.Contains(x, y) && !r.Contains(x, y)
}

// Intersects returns true if this rect overlaps with another rect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.XSize &&
		r.X+r.XSize > other.X &&
		r.Y < other.Y+other.YSize &&
		r.Y+r.YSize > other.Y
}

// Area returns the number of tiles covered by the rect.
func (r Rect) Area() int {
	return r.XSize * r.YSize
}
