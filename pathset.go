package cam

import "encoding/json"

// PathSet is an ordered collection of paths. It serves both as a set of
// disjoint machining passes and as one polygon-with-holes (outer contour
// plus inner contours as peer entries); the distinction comes from the
// boolean engine's fill-rule interpretation, not from the type.
type PathSet []Path

// Clone creates a deep copy of the set.
func (ps PathSet) Clone() PathSet {
	out := make(PathSet, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}
	return out
}

// IsEmpty reports whether the set contains no non-empty path.
func (ps PathSet) IsEmpty() bool {
	for _, p := range ps {
		if len(p.Pts) > 0 {
			return false
		}
	}
	return true
}

// SplitByKind partitions the set into its closed and open paths. The
// returned sets share no storage with the receiver.
func (ps PathSet) SplitByKind() (closed, open PathSet) {
	for _, p := range ps {
		if p.Closed {
			closed = append(closed, p.Clone())
		} else {
			open = append(open, p.Clone())
		}
	}
	return closed, open
}

// Perimeter returns the summed perimeter of every path in the set.
func (ps PathSet) Perimeter() float64 {
	var total float64
	for _, p := range ps {
		total += p.Perimeter()
	}
	return total
}

// ToJSON encodes the set in the stable persisted form: an array of
// {"isClosed": bool, "pts": [...]} records.
func (ps PathSet) ToJSON() ([]byte, error) {
	if ps == nil {
		ps = PathSet{}
	}
	return json.Marshal(ps)
}

// FromJSON decodes a set from its persisted form.
func FromJSON(data []byte) (PathSet, error) {
	var ps PathSet
	if err := json.Unmarshal(data, &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// Bounds3 is a 3D axis-aligned bounding box, derived on demand by folding
// min/max over X, Y, and Z. Z bounds only cover vertices with an assigned Z.
type Bounds3 struct {
	MinX, MinY, MaxX, MaxY int64
	MinZ, MaxZ             int64

	// HasZ reports whether any folded vertex carried a Z value.
	HasZ bool

	// Valid reports whether any vertex was folded at all.
	Valid bool
}

// extend folds one point into the box.
func (b *Bounds3) extend(p Point) {
	if !b.Valid {
		b.MinX, b.MaxX = p.X, p.X
		b.MinY, b.MaxY = p.Y, p.Y
		b.Valid = true
	} else {
		b.MinX = min64(b.MinX, p.X)
		b.MaxX = max64(b.MaxX, p.X)
		b.MinY = min64(b.MinY, p.Y)
		b.MaxY = max64(b.MaxY, p.Y)
	}
	if p.HasZ {
		if !b.HasZ {
			b.MinZ, b.MaxZ = p.Z, p.Z
			b.HasZ = true
		} else {
			b.MinZ = min64(b.MinZ, p.Z)
			b.MaxZ = max64(b.MaxZ, p.Z)
		}
	}
}

// Bounds computes the bounding box of the path.
func (p Path) Bounds() Bounds3 {
	var b Bounds3
	for _, pt := range p.Pts {
		b.extend(pt)
	}
	return b
}

// Bounds computes the bounding box of the whole set.
func (ps PathSet) Bounds() Bounds3 {
	var b Bounds3
	for _, p := range ps {
		for _, pt := range p.Pts {
			b.extend(pt)
		}
	}
	return b
}
