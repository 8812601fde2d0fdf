package cam

// SplitPathOverTabs splits one finished toolpath against a set of
// non-overlapping closed tab polygons into alternating through-cut and
// over-tab sub-segments, assigning each its cut depth: cutZ outside the
// tabs, the shallower tabZ within them.
//
// Closed toolpaths are materialized with an explicit duplicate closing
// vertex first, so the wrap-around edge participates in the split. Both
// boolean calls run with Z interpolation, so the vertices synthesized at
// tab boundaries sit exactly on the boundary with a defined Z and the
// depth transition happens there, not at the nearest original vertex. The
// pieces are then re-stitched with the strict 3D merge into a continuous
// sequence of alternating segments in original path order.
func SplitPathOverTabs(e Engine, toolPath Path, tabs PathSet, cutZ, tabZ int64) (PathSet, error) {
	if len(toolPath.Pts) == 0 {
		return PathSet{}, nil
	}
	if len(tabs) == 0 {
		whole := toolPath.Clone()
		setZ(&whole, cutZ)
		return PathSet{whole}, nil
	}

	subject := toolPath.materialized()
	// Seed every subject vertex so interpolated boundary vertices come out
	// with a defined Z.
	setZ(&subject, cutZ)

	outside, err := e.Difference(PathSet{subject}, tabs)
	if err != nil {
		return nil, err
	}
	within, err := e.Intersection(PathSet{subject}, tabs)
	if err != nil {
		return nil, err
	}

	var pieces PathSet
	for _, p := range outside {
		setZ(&p, cutZ)
		pieces = append(pieces, p)
	}
	for _, p := range within {
		setZ(&p, tabZ)
		pieces = append(pieces, p)
	}
	if len(pieces) == 0 {
		return PathSet{}, nil
	}

	seedFront(pieces, subject.First())
	return SortPaths(pieces, true), nil
}

// setZ assigns z to every vertex of the path.
func setZ(p *Path, z int64) {
	for i := range p.Pts {
		p.Pts[i] = p.Pts[i].WithZ(z)
	}
}

// seedFront moves the piece nearest the original path start to the front,
// oriented to begin there, so re-stitching walks the pieces in original
// path order.
func seedFront(pieces PathSet, start Point) {
	best := 0
	bestAtStart, bestD := pieces[0].NearestEnd(start)
	for i := 1; i < len(pieces); i++ {
		if atStart, d := pieces[i].NearestEnd(start); d < bestD {
			best, bestAtStart, bestD = i, atStart, d
		}
	}
	pieces[0], pieces[best] = pieces[best], pieces[0]
	if !bestAtStart {
		pieces[0].Reverse()
	}
}
