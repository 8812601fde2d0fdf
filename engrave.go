package cam

// engrave follows the artwork itself (EngraveOn), or steps a band of
// passes beside it exactly the way outline does, with the clip polygon
// formed from the width band.
func (g *Generator) engrave(geometry PathSet, p Params) (PathSet, error) {
	if p.Engrave == EngraveOn {
		var passes PathSet
		for _, path := range geometry {
			path = path.Dedupe()
			if len(path.Pts) == 0 {
				continue
			}
			if p.Climb {
				path.Reverse()
			}
			passes = append(passes, path)
		}
		// No cleared material to travel through, so joins are vetoed and
		// the passes are only ordered.
		return g.mergeAll(passes, nil)
	}

	inside := p.Engrave == EngraveInside
	closed, open := geometry.SplitByKind()

	dir := 1.0
	if inside {
		dir = -1
	}
	passes, bounds, err := g.steppedBand(closed, p, dir, p.Climb == inside)
	if err != nil {
		return nil, err
	}
	merged, err := MergeClosedPaths(g.engine, passes, bounds)
	if err != nil {
		return nil, err
	}

	// Open artwork cannot carry a band; it is followed as-is.
	for i := range open {
		open[i] = open[i].Dedupe()
		if p.Climb {
			open[i].Reverse()
		}
	}
	return append(merged, SortPaths(open, false)...), nil
}
