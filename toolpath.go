package cam

import "math"

// This file holds the hand-off conveniences between the geometry engine
// and a G-code emitter: uniform depth assignment, safe-height linking of
// separate passes, and rough cycle statistics.

// WithDepth returns a copy of the set with z assigned to every vertex that
// does not already carry a Z value. Depth-producing generators are left
// untouched by it.
func (ps PathSet) WithDepth(z int64) PathSet {
	out := ps.Clone()
	for i := range out {
		for j := range out[i].Pts {
			if !out[i].Pts[j].HasZ {
				out[i].Pts[j] = out[i].Pts[j].WithZ(z)
			}
		}
	}
	return out
}

// LinkAtSafeHeight links separate passes into one continuous motion: the
// tool rises to safeZ, rapids over the next pass start, and descends into
// it. Closed passes are materialized so each ring is traced fully. The
// result is a single open path ready for sequential emission.
func LinkAtSafeHeight(ps PathSet, safeZ int64) Path {
	var pts []Point
	for _, pass := range ps {
		if len(pass.Pts) == 0 {
			continue
		}
		pass = pass.materialized()
		first, last := pass.First(), pass.Last()
		pts = append(pts, PtZ(first.X, first.Y, safeZ))
		pts = append(pts, pass.Pts...)
		pts = append(pts, PtZ(last.X, last.Y, safeZ))
	}
	return Polyline(pts...)
}

// CycleLength sums the 3D length of a linked motion, split into cutting
// length (segments at or below the stock top) and travel length (segments
// with an endpoint above topZ). It is a quick cost estimate, not a feed
// simulation.
func CycleLength(motion Path, topZ int64) (cut, travel float64) {
	for i := 1; i < len(motion.Pts); i++ {
		a, b := motion.Pts[i-1], motion.Pts[i]
		d := dist3(a, b)
		if (a.HasZ && a.Z > topZ) || (b.HasZ && b.Z > topZ) {
			travel += d
		} else {
			cut += d
		}
	}
	return cut, travel
}

// dist3 is the 3D distance between two points; vertices without Z are
// treated as lying at Z 0.
func dist3(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	dz := float64(a.Z - b.Z)
	if !a.HasZ || !b.HasZ {
		dz = 0
	}
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
