package cam

// This file is the path merge/order optimizer: given disjoint passes it
// stitches them into as few continuous tool motions as possible without
// crossing a forbidden boundary, and otherwise orders them to minimize
// travel. The underlying routing problem is NP-hard; what is implemented
// here is a greedy nearest-neighbor heuristic with a boundary-crossing
// veto. It is suboptimal but bounded and deterministic.

// MergeClosedPaths stitches closed passes into continuous tool motions.
//
// Starting from the first pass, it repeatedly finds the globally nearest
// vertex among the remaining passes, rotates that pass so the nearest
// vertex comes first, and checks the straight edge from the current
// trailing point to it against the boundary. If the edge does not cross,
// the pass is concatenated (the joining edge becomes an actual tool move,
// legal because it stays inside already-cleared material); if it does, a
// new independent output motion starts.
//
// Each ring is traced fully: its start vertex is materialized again at the
// end. Output paths are therefore open. A nil or empty boundary vetoes
// every join, so passes are only ordered, never connected.
func MergeClosedPaths(e Engine, paths PathSet, boundary PathSet) (PathSet, error) {
	var rings PathSet
	for _, p := range paths {
		if p.Closed && len(p.Pts) > 0 {
			rings = append(rings, p)
		}
	}
	if len(rings) == 0 {
		return PathSet{}, nil
	}

	cur := rings[0].materialized()
	remaining := make(PathSet, len(rings)-1)
	copy(remaining, rings[1:])

	var out PathSet
	for len(remaining) > 0 {
		tail := cur.Last()

		best := 0
		bestVertex, bestD := remaining[0].NearestVertex(tail)
		for i := 1; i < len(remaining); i++ {
			if v, d := remaining[i].NearestVertex(tail); d < bestD {
				best, bestVertex, bestD = i, v, d
			}
		}

		next := remaining[best].RotateToFirst(bestVertex).materialized()
		remaining = append(remaining[:best], remaining[best+1:]...)

		crosses, err := CrossesBoundary(e, tail, next.First(), boundary)
		if err != nil {
			return nil, err
		}
		if crosses {
			out = append(out, cur)
			cur = next
		} else {
			cur.Pts = append(cur.Pts, next.Pts...)
		}
	}
	out = append(out, cur)

	Logger().Debug("merged closed passes", "passes", len(rings), "motions", len(out))
	return out, nil
}

// CrossesBoundary reports whether the straight segment a-b crosses the
// forbidden boundary, interpreted as closed polygons. The segment crosses
// unless intersecting it against the boundary yields exactly its own two
// endpoints: any synthesized intersection point, missing piece, or extra
// fragment counts as a crossing. Degenerate zero-length segments never
// cross.
func CrossesBoundary(e Engine, a, b Point, boundary PathSet) (bool, error) {
	if a.EqualXY(b) {
		return false, nil
	}
	if len(boundary) == 0 {
		return true, nil
	}
	seg := PathSet{Polyline(Pt(a.X, a.Y), Pt(b.X, b.Y))}
	clipped, err := e.Intersection(seg, boundary)
	if err != nil {
		return false, err
	}
	if len(clipped) != 1 {
		return true, nil
	}
	got := clipped[0]
	if got.Closed || len(got.Pts) != 2 {
		return true, nil
	}
	p0, p1 := got.Pts[0], got.Pts[1]
	forward := p0.EqualXY(a) && p1.EqualXY(b)
	backward := p0.EqualXY(b) && p1.EqualXY(a)
	return !(forward || backward), nil
}

// SortPaths merges and orders open passes.
//
// It grows one pass at a time: whichever remaining path has an endpoint
// nearest either end of the pass being grown is picked next, reversed if
// needed for continuity. When the joint distance is exactly zero in 2D
// (and the joint Z values also match, in strict mode) the two are
// concatenated into one continuous pass; otherwise the grown pass is
// finished and the pick starts a new pass, so output order still minimizes
// travel.
func SortPaths(paths PathSet, strictZ bool) PathSet {
	var open PathSet
	for _, p := range paths {
		if !p.Closed && len(p.Pts) > 0 {
			open = append(open, p.Clone())
		}
	}
	if len(open) == 0 {
		return PathSet{}
	}

	cur := open[0]
	remaining := open[1:]
	var out PathSet

	for len(remaining) > 0 {
		type pick struct {
			idx     int
			atHead  bool // joint is at cur's first vertex
			reverse bool // candidate must be reversed before joining
			d       float64
		}
		best := pick{d: -1}
		for i, q := range remaining {
			for _, end := range []struct {
				pt      Point
				reverse bool
			}{
				{q.First(), false},
				{q.Last(), true},
			} {
				if d := cur.Last().DistanceSq(end.pt); best.d < 0 || d < best.d {
					best = pick{idx: i, atHead: false, reverse: end.reverse, d: d}
				}
				if d := cur.First().DistanceSq(end.pt); best.d < 0 || d < best.d {
					best = pick{idx: i, atHead: true, reverse: !end.reverse, d: d}
				}
			}
		}

		next := remaining[best.idx]
		remaining = append(remaining[:best.idx], remaining[best.idx+1:]...)
		if best.reverse {
			next.Reverse()
		}

		if best.atHead {
			// Candidate joins before cur; next's last vertex meets cur's
			// first.
			if best.d == 0 && zMatches(next.Last(), cur.First(), strictZ) {
				cur.Pts = append(next.Pts, cur.Pts[1:]...)
				continue
			}
			// Not joinable: keep growing at the tail instead, with the
			// candidate as the next independent pass.
			out = append(out, cur)
			cur = next
			continue
		}

		if best.d == 0 && zMatches(cur.Last(), next.First(), strictZ) {
			cur.Pts = append(cur.Pts, next.Pts[1:]...)
			continue
		}
		out = append(out, cur)
		cur = next
	}
	out = append(out, cur)
	return out
}

// zMatches reports whether a joint between two endpoint vertices is
// acceptable. In strict mode both must carry the same Z assignment state
// and value; otherwise only the 2D coincidence already checked matters.
func zMatches(a, b Point, strict bool) bool {
	if !strict {
		return true
	}
	if a.HasZ != b.HasZ {
		return false
	}
	return !a.HasZ || a.Z == b.Z
}

// mergeAll dispatches mixed open/closed passes to the two optimizers and
// concatenates the results, closed-path motions first.
func (g *Generator) mergeAll(paths PathSet, boundary PathSet) (PathSet, error) {
	closed, open := paths.SplitByKind()
	out, err := MergeClosedPaths(g.engine, closed, boundary)
	if err != nil {
		return nil, err
	}
	return append(out, SortPaths(open, false)...), nil
}
