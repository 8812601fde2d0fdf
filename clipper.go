package cam

import (
	"errors"

	clipper "github.com/ctessum/go.clipper"
)

// ErrClipFailed is returned when the polygon clipper rejects its input,
// typically because a polygon is malformed. The engine does no recovery of
// its own; the error propagates to the caller unchanged.
var ErrClipFailed = errors.New("cam: boolean clip failed")

// JoinStyle selects how the offset engine joins edges at convex corners.
type JoinStyle int

const (
	JoinSquare JoinStyle = iota
	JoinRound
	JoinMiter
)

// EndStyle selects how the offset engine terminates open paths.
type EndStyle int

const (
	EndClosedPolygon EndStyle = iota
	EndClosedLine
	EndOpenButt
	EndOpenSquare
	EndOpenRound
)

// FillRule selects the winding interpretation for simplification.
type FillRule int

const (
	FillEvenOdd FillRule = iota
	FillNonZero
)

// Engine is the polygon boolean/offset capability the generators depend on.
// It is injected (see WithEngine) so a different clipping backend can be
// substituted without touching generator logic.
//
// All operations treat coordinates as already integer-scaled; no scaling
// happens inside the engine. Clip operands are always interpreted as closed
// polygons; subjects may be open, in which case results synthesized at
// clip-boundary intersections carry a Z linearly interpolated between the
// endpoints of the subject edge that was cut.
type Engine interface {
	// Offset grows (positive amount) or shrinks (negative amount) the
	// closed paths of the set; with end EndClosedPolygon, open paths pass
	// through unchanged. Any other end style offsets every path as a line
	// instead, producing the closed loop(s) at the given distance on both
	// sides of it.
	Offset(ps PathSet, amount float64, join JoinStyle, end EndStyle, miterLimit, arcTolerance float64) (PathSet, error)

	Union(a, b PathSet) (PathSet, error)
	Difference(a, b PathSet) (PathSet, error)
	Intersection(a, b PathSet) (PathSet, error)
	Xor(a, b PathSet) (PathSet, error)

	// Clean removes near-duplicate and near-collinear vertices within the
	// given tolerance.
	Clean(p Path, tolerance float64) Path

	// Simplify resolves self-intersections under the given fill rule. The
	// result may contain several paths.
	Simplify(p Path, rule FillRule) PathSet
}

// ClipperEngine is the default Engine, backed by the Clipper polygon
// clipping library.
type ClipperEngine struct{}

// NewClipperEngine returns the default boolean/offset engine.
func NewClipperEngine() *ClipperEngine {
	return &ClipperEngine{}
}

var _ Engine = (*ClipperEngine)(nil)

// Offset implements Engine.
func (e *ClipperEngine) Offset(ps PathSet, amount float64, join JoinStyle, end EndStyle, miterLimit, arcTolerance float64) (PathSet, error) {
	co := clipper.NewClipperOffset()
	if miterLimit > 0 {
		co.MiterLimit = miterLimit
	}
	if arcTolerance > 0 {
		co.ArcTolerance = arcTolerance
	}

	var out PathSet
	added := false
	for _, p := range ps {
		if len(p.Pts) == 0 {
			continue
		}
		switch {
		case end == EndClosedPolygon && !p.Closed:
			// Polygon offsetting leaves open paths untouched.
			out = append(out, p.Clone())
			continue
		case end == EndClosedPolygon:
			co.AddPath(toClipperPath(p), toClipperJoin(join), clipper.EtClosedPolygon)
		case p.Closed:
			// Line offsetting of a closed ring puts a loop on both sides.
			co.AddPath(toClipperPath(p), toClipperJoin(join), clipper.EtClosedLine)
		default:
			co.AddPath(toClipperPath(p), toClipperJoin(join), toClipperEnd(end))
		}
		added = true
	}
	if !added {
		return out, nil
	}
	sol := co.Execute(amount)
	return append(fromClipperPaths(sol, true), out...), nil
}

// Union implements Engine.
func (e *ClipperEngine) Union(a, b PathSet) (PathSet, error) {
	return e.boolean(clipper.CtUnion, a, b)
}

// Difference implements Engine.
func (e *ClipperEngine) Difference(a, b PathSet) (PathSet, error) {
	return e.boolean(clipper.CtDifference, a, b)
}

// Intersection implements Engine.
func (e *ClipperEngine) Intersection(a, b PathSet) (PathSet, error) {
	return e.boolean(clipper.CtIntersection, a, b)
}

// Xor implements Engine.
func (e *ClipperEngine) Xor(a, b PathSet) (PathSet, error) {
	return e.boolean(clipper.CtXor, a, b)
}

// Clean implements Engine.
func (e *ClipperEngine) Clean(p Path, tolerance float64) Path {
	if len(p.Pts) == 0 {
		return p.Clone()
	}
	c := clipper.NewClipper(clipper.IoNone)
	cleaned := c.CleanPolygon(toClipperPath(p), tolerance)
	out := fromClipperPath(cleaned, p.Closed)
	return out
}

// Simplify implements Engine.
func (e *ClipperEngine) Simplify(p Path, rule FillRule) PathSet {
	if len(p.Pts) == 0 {
		return nil
	}
	c := clipper.NewClipper(clipper.IoNone)
	fill := clipper.PftEvenOdd
	if rule == FillNonZero {
		fill = clipper.PftNonZero
	}
	sol := c.SimplifyPolygon(toClipperPath(p), fill)
	return fromClipperPaths(sol, true)
}

// boolean runs one clip operation. Closed subjects go through the plain
// path-to-path execute; as soon as any open subject is present the PolyTree
// form is required, and open results get their Z values re-derived from the
// subject paths (the clipper works in 2D, so interpolation happens here).
func (e *ClipperEngine) boolean(op clipper.ClipType, a, b PathSet) (PathSet, error) {
	c := clipper.NewClipper(clipper.IoNone)
	var openSubjects PathSet
	for _, p := range a {
		if len(p.Pts) == 0 {
			continue
		}
		if p.Closed {
			c.AddPath(toClipperPath(p), clipper.PtSubject, true)
		} else {
			c.AddPath(toClipperPath(p), clipper.PtSubject, false)
			openSubjects = append(openSubjects, p)
		}
	}
	for _, p := range b {
		if len(p.Pts) == 0 {
			continue
		}
		c.AddPath(toClipperPath(p), clipper.PtClip, true)
	}

	if len(openSubjects) == 0 {
		sol, ok := c.Execute1(op, clipper.PftEvenOdd, clipper.PftEvenOdd)
		if !ok {
			return nil, ErrClipFailed
		}
		return fromClipperPaths(sol, true), nil
	}

	tree, ok := c.Execute2(op, clipper.PftEvenOdd, clipper.PftEvenOdd)
	if !ok {
		return nil, ErrClipFailed
	}
	out := fromClipperPaths(c.ClosedPathsFromPolyTree(tree), true)
	for _, cp := range c.OpenPathsFromPolyTree(tree) {
		p := fromClipperPath(cp, false)
		out = append(out, reattachZ(p, openSubjects))
	}
	return out, nil
}

// reattachZ assigns each vertex of a clipped open path the Z it had, or
// would have had, on the original subject: vertices coinciding with a
// subject vertex take its Z, synthesized intersection vertices take a Z
// linearly interpolated between the endpoints of the subject edge they were
// cut from. Vertices whose nearest subject edge carries no Z are left
// unassigned.
func reattachZ(p Path, subjects PathSet) Path {
	for i, q := range p.Pts {
		bestD := -1.0
		var bestA, bestB Point
		var bestT float64
		for _, s := range subjects {
			for j := 1; j < len(s.Pts); j++ {
				a, b := s.Pts[j-1], s.Pts[j]
				d, t := segmentDistSq(q, a, b)
				if bestD < 0 || d < bestD {
					bestD, bestA, bestB, bestT = d, a, b, t
				}
			}
		}
		if bestD < 0 || !bestA.HasZ || !bestB.HasZ {
			continue
		}
		z := float64(bestA.Z) + bestT*float64(bestB.Z-bestA.Z)
		p.Pts[i] = q.WithZ(round(z))
	}
	return p
}

// segmentDistSq returns the squared distance from q to segment a-b and the
// clamped projection parameter of q along it.
func segmentDistSq(q, a, b Point) (float64, float64) {
	ab := vec(a, b)
	aq := vec(a, q)
	den := ab.Dot(ab)
	if den == 0 {
		return aq.Dot(aq), 0
	}
	t := aq.Dot(ab) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	dx := aq.X - t*ab.X
	dy := aq.Y - t*ab.Y
	return dx*dx + dy*dy, t
}

func toClipperJoin(j JoinStyle) clipper.JoinType {
	switch j {
	case JoinRound:
		return clipper.JtRound
	case JoinMiter:
		return clipper.JtMiter
	default:
		return clipper.JtSquare
	}
}

func toClipperEnd(e EndStyle) clipper.EndType {
	switch e {
	case EndClosedLine:
		return clipper.EtClosedLine
	case EndOpenButt:
		return clipper.EtOpenButt
	case EndOpenSquare:
		return clipper.EtOpenSquare
	case EndOpenRound:
		return clipper.EtOpenRound
	default:
		return clipper.EtClosedPolygon
	}
}

func toClipperPath(p Path) clipper.Path {
	cp := make(clipper.Path, 0, len(p.Pts))
	for _, pt := range p.Pts {
		cp = append(cp, &clipper.IntPoint{X: clipper.CInt(pt.X), Y: clipper.CInt(pt.Y)})
	}
	return cp
}

func fromClipperPath(cp clipper.Path, closed bool) Path {
	p := Path{Closed: closed, Pts: make([]Point, 0, len(cp))}
	for _, ip := range cp {
		p.Pts = append(p.Pts, Pt(int64(ip.X), int64(ip.Y)))
	}
	return p
}

func fromClipperPaths(cps clipper.Paths, closed bool) PathSet {
	if len(cps) == 0 {
		return nil
	}
	out := make(PathSet, 0, len(cps))
	for _, cp := range cps {
		if len(cp) == 0 {
			continue
		}
		out = append(out, fromClipperPath(cp, closed))
	}
	return out
}
