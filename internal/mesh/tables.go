package mesh

import "github.com/samdwyer/dungeoncrawl/internal/features"

const (
	wallHeight    = 3 // stacked one-unit panels
	wallThickness = 0.2
)

// quadrantOffsets place each half-size floor quad in its corner of the tile.
var quadrantOffsets = [...]struct {
	flag features.Flags
	x, z float32
}{
	{features.NorthWestFloor, 0, 0.5},
	{features.NorthEastFloor, 0.5, 0.5},
	{features.SouthWestFloor, 0, 0},
	{features.SouthEastFloor, 0.5, 0},
}

// wallShape is the footprint of one wall segment relative to the tile corner.
// The top cap spans offset to offset+width; the front face runs from
// offset+front to the offset corner and the back face from offset+back to offset+backEnd.
type wallShape struct {
	offsetX, offsetZ   float32
	widthX, widthZ     float32
	frontX, frontZ     float32
	backX, backZ       float32
	backEndX, backEndZ float32
	frontNormal        [2]float32 // x, z
	backNormal         [2]float32
}

// wallSpec keys a segment's shape on its side. When the segment on the
// opposite side of the same tile is present, the shortened shape is used so
// the two halves meet instead of overlapping.
type wallSpec struct {
	full      wallShape
	shortened *wallShape
}

var (
	alongZFront = [2]float32{1, 0}
	alongZBack  = [2]float32{-1, 0}
	alongXFront = [2]float32{0, 1}
	alongXBack  = [2]float32{0, -1}
)

var wallSpecs = [...]wallSpec{
	features.SideNorth: {
		full: wallShape{
			offsetX: 0.6, offsetZ: 0.4, widthX: -wallThickness, widthZ: 0.6,
			frontX: 0, frontZ: 0.6,
			backX: -wallThickness, backZ: 0.6, backEndX: -wallThickness, backEndZ: 0,
			frontNormal: alongZFront, backNormal: alongZBack,
		},
	},
	features.SideSouth: {
		full: wallShape{
			offsetX: 0.6, offsetZ: 0, widthX: -wallThickness, widthZ: 0.6,
			frontX: 0, frontZ: 0.6,
			backX: -wallThickness, backZ: 0.6, backEndX: -wallThickness, backEndZ: 0,
			frontNormal: alongZFront, backNormal: alongZBack,
		},
		shortened: &wallShape{
			offsetX: 0.6, offsetZ: 0, widthX: -wallThickness, widthZ: 0.4,
			frontX: 0, frontZ: 0.4,
			backX: -wallThickness, backZ: 0.4, backEndX: -wallThickness, backEndZ: 0,
			frontNormal: alongZFront, backNormal: alongZBack,
		},
	},
	features.SideEast: {
		full: wallShape{
			offsetX: 0.4, offsetZ: 0.6, widthX: 0.6, widthZ: -wallThickness,
			frontX: 0.6, frontZ: 0,
			backX: 0, backZ: -wallThickness, backEndX: 0.6, backEndZ: -wallThickness,
			frontNormal: alongXFront, backNormal: alongXBack,
		},
	},
	features.SideWest: {
		full: wallShape{
			offsetX: 0, offsetZ: 0.6, widthX: 0.6, widthZ: -wallThickness,
			frontX: 0.6, frontZ: 0,
			backX: 0, backZ: -wallThickness, backEndX: 0.6, backEndZ: -wallThickness,
			frontNormal: alongXFront, backNormal: alongXBack,
		},
		shortened: &wallShape{
			offsetX: 0, offsetZ: 0.6, widthX: 0.4, widthZ: -wallThickness,
			frontX: 0.4, frontZ: 0,
			backX: 0, backZ: -wallThickness, backEndX: 0.4, backEndZ: -wallThickness,
			frontNormal: alongXFront, backNormal: alongXBack,
		},
	},
}

// shape picks the footprint for the segment on side s of a tile with flags f.
func (w wallSpec) shape(s features.Side, f features.Flags) wallShape {
	if w.shortened != nil && f.Has(s.Opposite().Wall()) {
		return *w.shortened
	}
	return w.full
}

// capShape closes the open end of a wall run on one side.
type capShape struct {
	offsetX, offsetZ float32
	widthX, widthZ   float32
	normal           [2]float32
}

var capShapes = [...]capShape{
	features.SideNorth: {offsetX: 0.6, offsetZ: 1, widthX: -wallThickness, widthZ: 0, normal: [2]float32{0, 1}},
	features.SideSouth: {offsetX: 0.4, offsetZ: 0, widthX: wallThickness, widthZ: 0, normal: [2]float32{0, -1}},
	features.SideEast:  {offsetX: 1, offsetZ: 0.4, widthX: 0, widthZ: wallThickness, normal: [2]float32{1, 0}},
	features.SideWest:  {offsetX: 0, offsetZ: 0.6, widthX: 0, widthZ: -wallThickness, normal: [2]float32{-1, 0}},
}
