package cam

import (
	"encoding/json"
	"math"
)

// Point is a position in integer machine units.
//
// Z is the cut depth at this position. A freshly built point has no Z; most
// generators leave Z unassigned and expect the caller to apply a uniform
// depth, while depth-producing generators (drill, perforate, v-bit pocket)
// and the tab splitter set it per vertex.
type Point struct {
	X, Y int64

	// Z is the depth value, meaningful only when HasZ is true.
	Z int64

	// HasZ reports whether Z has been assigned.
	HasZ bool
}

// Pt is a convenience function to create a Point with no Z.
func Pt(x, y int64) Point {
	return Point{X: x, Y: y}
}

// PtZ is a convenience function to create a Point with an assigned Z.
func PtZ(x, y, z int64) Point {
	return Point{X: x, Y: y, Z: z, HasZ: true}
}

// WithZ returns a copy of the point with Z assigned.
func (p Point) WithZ(z int64) Point {
	return Point{X: p.X, Y: p.Y, Z: z, HasZ: true}
}

// EqualXY reports whether two points coincide in the XY plane, ignoring Z.
func (p Point) EqualXY(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Equal reports whether two points coincide in X, Y, and Z.
// Points with unassigned Z compare equal to each other in Z.
func (p Point) Equal(q Point) bool {
	if !p.EqualXY(q) {
		return false
	}
	if p.HasZ != q.HasZ {
		return false
	}
	return !p.HasZ || p.Z == q.Z
}

// DistanceSq returns the squared XY distance to q in machine units.
func (p Point) DistanceSq(q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return dx*dx + dy*dy
}

// Distance returns the XY distance to q in machine units.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSq(q))
}

// pointJSON is the persisted shape of a Point. Z is omitted when unassigned.
type pointJSON struct {
	X int64  `json:"X"`
	Y int64  `json:"Y"`
	Z *int64 `json:"Z,omitempty"`
}

// MarshalJSON implements json.Marshaler. Z is omitted when unassigned.
func (p Point) MarshalJSON() ([]byte, error) {
	pj := pointJSON{X: p.X, Y: p.Y}
	if p.HasZ {
		z := p.Z
		pj.Z = &z
	}
	return json.Marshal(pj)
}

// UnmarshalJSON implements json.Unmarshaler. A missing Z stays unassigned.
func (p *Point) UnmarshalJSON(data []byte) error {
	var pj pointJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return err
	}
	p.X, p.Y = pj.X, pj.Y
	if pj.Z != nil {
		p.Z = *pj.Z
		p.HasZ = true
	} else {
		p.Z = 0
		p.HasZ = false
	}
	return nil
}
