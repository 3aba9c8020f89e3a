package game

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned rectangle on the ground (XZ) plane. Bounds are inclusive.
type Rect struct {
	MinX float64 `json:"minX" yaml:"min_x"`
	MaxX float64 `json:"maxX" yaml:"max_x"`
	MinZ float64 `json:"minZ" yaml:"min_z"`
	MaxZ float64 `json:"maxZ" yaml:"max_z"`
}

func (r Rect) Contains(x, z float64) bool {
	return x >= r.MinX && x <= r.MaxX && z >= r.MinZ && z <= r.MaxZ
}

// Within reports whether r lies entirely inside o.
func (r Rect) Within(o Rect) bool {
	return r.MinX >= o.MinX && r.MaxX <= o.MaxX && r.MinZ >= o.MinZ && r.MaxZ <= o.MaxZ
}

func (r Rect) Valid() bool {
	return r.MinX <= r.MaxX && r.MinZ <= r.MaxZ
}

// Footprint is the building's ground rectangle with a walkable doorway cut into it.
type Footprint struct {
	Outer   Rect `json:"outer" yaml:"outer"`
	Doorway Rect `json:"doorway" yaml:"doorway"`
}

// Collides reports whether standing at p would put the player inside a wall.
// Height is ignored.
func (f Footprint) Collides(p mgl64.Vec3) bool {
	x, z := p.X(), p.Z()
	if !f.Outer.Contains(x, z) {
		return false
	}
	return !f.Doorway.Contains(x, z)
}
