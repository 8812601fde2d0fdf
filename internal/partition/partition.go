// Package partition decomposes simple polygons into convex pieces.
//
// The decomposition runs in two phases: ear-clipping triangulation, then
// Hertel-Mehlhorn style removal of diagonals whose two incident pieces stay
// convex when merged. The result is not a minimal convex partition, but it
// is at most four times the minimal piece count, which is plenty for
// raster-sweeping pocket regions.
package partition

// Point is a polygon vertex in integer coordinates.
type Point struct {
	X, Y int64
}

// cross returns the z-component of (b-a) x (c-a).
func cross(a, b, c Point) int64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// signedArea2 returns twice the signed area of the ring (positive for CCW).
func signedArea2(poly []Point) int64 {
	var area int64
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return area
}

// isConvex reports whether the CCW ring is convex. Collinear edges are
// permitted and do not break convexity.
func isConvex(poly []Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		if cross(poly[i], poly[(i+1)%n], poly[(i+2)%n]) < 0 {
			return false
		}
	}
	return true
}

// inTriangle reports whether p lies inside or on the CCW triangle a,b,c.
func inTriangle(p, a, b, c Point) bool {
	return cross(a, b, p) >= 0 && cross(b, c, p) >= 0 && cross(c, a, p) >= 0
}

// dedupe removes consecutive coincident vertices, including the wrap pair.
func dedupe(poly []Point) []Point {
	out := make([]Point, 0, len(poly))
	for _, p := range poly {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

// Convex decomposes a simple polygon into convex pieces. The input ring may
// wind either way; pieces come back CCW. Polygons with fewer than three
// distinct vertices yield no pieces; already-convex input comes back as a
// single piece.
func Convex(poly []Point) [][]Point {
	ring := dedupe(poly)
	if len(ring) < 3 {
		return nil
	}
	if signedArea2(ring) < 0 {
		for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
			ring[i], ring[j] = ring[j], ring[i]
		}
	}
	if isConvex(ring) {
		return [][]Point{ring}
	}
	tris := triangulate(ring)
	return mergePieces(tris)
}

// triangulate ear-clips a CCW simple polygon into triangles.
func triangulate(ring []Point) [][]Point {
	idx := make([]int, len(ring))
	for i := range idx {
		idx[i] = i
	}
	var out [][]Point
	for len(idx) > 3 {
		clipped := false
		for k := 0; k < len(idx); k++ {
			ia := idx[(k-1+len(idx))%len(idx)]
			ib := idx[k]
			ic := idx[(k+1)%len(idx)]
			a, b, c := ring[ia], ring[ib], ring[ic]
			if cross(a, b, c) <= 0 {
				continue // reflex or collinear corner, not an ear
			}
			blocked := false
			for _, other := range idx {
				if other == ia || other == ib || other == ic {
					continue
				}
				if inTriangle(ring[other], a, b, c) {
					blocked = true
					break
				}
			}
			if blocked {
				continue
			}
			out = append(out, []Point{a, b, c})
			idx = append(idx[:k], idx[k+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Degenerate remainder (all collinear or self-touching);
			// emit it as-is rather than spinning.
			break
		}
	}
	if len(idx) == 3 {
		out = append(out, []Point{ring[idx[0]], ring[idx[1]], ring[idx[2]]})
	} else if len(idx) > 3 {
		rest := make([]Point, len(idx))
		for i, id := range idx {
			rest[i] = ring[id]
		}
		out = append(out, rest)
	}
	return out
}

// mergePieces greedily removes diagonals between adjacent pieces whenever
// the union stays convex (Hertel-Mehlhorn).
func mergePieces(pieces [][]Point) [][]Point {
	merged := true
	for merged {
		merged = false
		for i := 0; i < len(pieces) && !merged; i++ {
			for j := i + 1; j < len(pieces) && !merged; j++ {
				if m, ok := tryMerge(pieces[i], pieces[j]); ok {
					pieces[i] = m
					pieces = append(pieces[:j], pieces[j+1:]...)
					merged = true
				}
			}
		}
	}
	return pieces
}

// tryMerge joins two pieces across a shared diagonal if the result is
// convex. Pieces are CCW, so a shared diagonal appears with opposite
// orientation in the two rings.
func tryMerge(p, q []Point) ([]Point, bool) {
	for i := 0; i < len(p); i++ {
		u := p[i]
		v := p[(i+1)%len(p)]
		for j := 0; j < len(q); j++ {
			if q[j] != v || q[(j+1)%len(q)] != u {
				continue
			}
			out := make([]Point, 0, len(p)+len(q)-2)
			out = append(out, p[:i+1]...) // ... up to and including u
			for k := 2; k < len(q); k++ {
				out = append(out, q[(j+k)%len(q)]) // q interior between u and v
			}
			out = append(out, p[i+1:]...) // v and the rest
			if isConvex(out) {
				return out, true
			}
			return nil, false
		}
	}
	return nil, false
}
