package cam

// sweepConvex fills one convex polygon with boustrophedon scan lines.
//
// Scan lines run parallel to the X axis, spaced by step, starting one step
// inside the far (top) edge. Each line is intersected with the polygon
// boundary and the intersection points sorted along the scan direction,
// which alternates every line, so concatenating them yields one continuous
// in-and-out zig-zag per convex region with no retracts.
func sweepConvex(piece Path, step float64) Path {
	if !piece.Closed || len(piece.Pts) < 3 || step <= 0 {
		return Path{}
	}
	b := piece.Bounds()

	var pts []Point
	descending := false
	for y := float64(b.MaxY) - step; y > float64(b.MinY); y -= step {
		xs := scanlineHits(piece, y)
		if len(xs) == 0 {
			descending = !descending
			continue
		}
		sortFloats(xs)
		if descending {
			for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
				xs[i], xs[j] = xs[j], xs[i]
			}
		}
		yi := round(y)
		for _, x := range xs {
			pts = append(pts, Pt(round(x), yi))
		}
		descending = !descending
	}
	return Polyline(pts...)
}

// scanlineHits returns the X coordinates where the horizontal line at y
// crosses the polygon boundary, closing edge included. A convex polygon
// yields at most two hits; horizontal edges produce none of their own (the
// neighboring edges supply the endpoints).
func scanlineHits(piece Path, y float64) []float64 {
	n := len(piece.Pts)
	var xs []float64
	for i := 0; i < n; i++ {
		a := piece.Pts[i]
		c := piece.Pts[(i+1)%n]
		ay, cy := float64(a.Y), float64(c.Y)
		if ay == cy {
			continue
		}
		if (ay < y) == (cy < y) {
			continue
		}
		t := (y - ay) / (cy - ay)
		xs = append(xs, float64(a.X)+t*float64(c.X-a.X))
	}
	return xs
}

// sortFloats sorts a tiny slice in place; scan lines rarely have more than
// two hits, so insertion sort beats pulling in a comparator.
func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
