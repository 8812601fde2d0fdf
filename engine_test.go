package cam

// Test doubles for the Engine capability. rectEngine offsets axis-aligned
// rectangles analytically, which keeps generator tests deterministic and
// independent of the clipper backend. stubEngine exposes function fields so
// individual tests can script boolean results.

// rect builds a closed CCW rectangle.
func rect(minX, minY, maxX, maxY int64) Path {
	return Polygon(Pt(minX, minY), Pt(maxX, minY), Pt(maxX, maxY), Pt(minX, maxY))
}

// rectEngine treats every closed path as its axis-aligned bounding
// rectangle and offsets that rectangle exactly. Booleans are pass-through:
// Difference and Xor return the first operand, Intersection returns the
// first operand unchanged (so merge joins are never vetoed), Union
// concatenates.
type rectEngine struct{}

var _ Engine = rectEngine{}

func (rectEngine) Offset(ps PathSet, amount float64, _ JoinStyle, end EndStyle, _, _ float64) (PathSet, error) {
	var out PathSet
	d := round(amount)
	for _, p := range ps {
		if len(p.Pts) == 0 {
			continue
		}
		if !p.Closed {
			if end == EndClosedPolygon {
				out = append(out, p.Clone())
			}
			continue
		}
		b := p.Bounds()
		minX, minY := b.MinX-d, b.MinY-d
		maxX, maxY := b.MaxX+d, b.MaxY+d
		if minX >= maxX || minY >= maxY {
			continue
		}
		out = append(out, rect(minX, minY, maxX, maxY))
	}
	return out, nil
}

func (rectEngine) Union(a, b PathSet) (PathSet, error) {
	return append(a.Clone(), b.Clone()...), nil
}

func (rectEngine) Difference(a, b PathSet) (PathSet, error)   { return a.Clone(), nil }
func (rectEngine) Intersection(a, b PathSet) (PathSet, error) { return a.Clone(), nil }
func (rectEngine) Xor(a, b PathSet) (PathSet, error)          { return a.Clone(), nil }
func (rectEngine) Clean(p Path, _ float64) Path               { return p.Clone() }
func (rectEngine) Simplify(p Path, _ FillRule) PathSet        { return PathSet{p.Clone()} }

// stubEngine dispatches to its function fields; nil fields behave like
// rectEngine's pass-through booleans.
type stubEngine struct {
	offsetFn    func(ps PathSet, amount float64, end EndStyle) (PathSet, error)
	intersectFn func(a, b PathSet) (PathSet, error)
	differFn    func(a, b PathSet) (PathSet, error)
}

var _ Engine = (*stubEngine)(nil)

func (s *stubEngine) Offset(ps PathSet, amount float64, _ JoinStyle, end EndStyle, _, _ float64) (PathSet, error) {
	if s.offsetFn != nil {
		return s.offsetFn(ps, amount, end)
	}
	return ps.Clone(), nil
}

func (s *stubEngine) Intersection(a, b PathSet) (PathSet, error) {
	if s.intersectFn != nil {
		return s.intersectFn(a, b)
	}
	return a.Clone(), nil
}

func (s *stubEngine) Difference(a, b PathSet) (PathSet, error) {
	if s.differFn != nil {
		return s.differFn(a, b)
	}
	return a.Clone(), nil
}

func (s *stubEngine) Union(a, b PathSet) (PathSet, error) {
	return append(a.Clone(), b.Clone()...), nil
}

func (s *stubEngine) Xor(a, b PathSet) (PathSet, error)   { return a.Clone(), nil }
func (s *stubEngine) Clean(p Path, _ float64) Path        { return p.Clone() }
func (s *stubEngine) Simplify(p Path, _ FillRule) PathSet { return PathSet{p.Clone()} }
