package cam

// outline cuts a band of the requested width beside a closed boundary,
// stepping parallel passes inward (inside=true) or outward from it.
func (g *Generator) outline(geometry PathSet, p Params, inside bool) (PathSet, error) {
	dir := 1.0
	if inside {
		dir = -1
	}
	// Offsetting moves the winding the wrong way for climb on one side
	// only, hence the asymmetry.
	reverse := p.Climb == inside
	passes, bounds, err := g.steppedBand(geometry, p, dir, reverse)
	if err != nil {
		return nil, err
	}
	return MergeClosedPaths(g.engine, passes, bounds)
}

// steppedBand produces the successive parallel passes covering a band of
// Params.Width beside the geometry, stepping by CutterDiameter*(1-Overlap)
// from an initial offset of half the cutter diameter. The final pass is
// clipped exactly to the requested width even when that is not a whole
// multiple of the step. It also returns the clip polygon (the annulus
// between the first and the last offset) used to decide, while merging,
// whether two passes may be joined without crossing material.
//
// dir is +1 to step outward, -1 to step inward. Every pass is reversed
// when reverse is set, because offsetting does not preserve the winding
// needed for the requested cut direction.
func (g *Generator) steppedBand(geometry PathSet, p Params, dir float64, reverse bool) (passes, bounds PathSet, err error) {
	cutter := float64(p.CutterDiameter)
	width := float64(p.Width)
	if width < cutter {
		width = cutter
	}
	step := p.step()

	offset := func(ps PathSet, amount float64) (PathSet, error) {
		return g.engine.Offset(ps, amount, p.Join, EndClosedPolygon, p.MiterLimit, p.ArcTolerance)
	}

	first, err := offset(geometry, dir*cutter/2)
	if err != nil {
		return nil, nil, err
	}
	last, err := offset(geometry, dir*(width-cutter/2))
	if err != nil {
		return nil, nil, err
	}
	if dir < 0 {
		bounds, err = g.engine.Difference(first, last)
	} else {
		bounds, err = g.engine.Difference(last, first)
	}
	if err != nil {
		return nil, nil, err
	}

	current := first
	currentWidth := cutter
	for len(current) > 0 {
		for _, pass := range current {
			pass = pass.Dedupe()
			if len(pass.Pts) == 0 {
				continue
			}
			if reverse {
				pass.Reverse()
			}
			passes = append(passes, pass)
		}
		if currentWidth >= width {
			break
		}
		next := currentWidth + step
		if next > width {
			// Clip the final pass exactly to the requested width.
			current, err = offset(geometry, dir*(width-cutter/2))
			currentWidth = width
		} else {
			current, err = offset(current, dir*step)
			currentWidth = next
		}
		if err != nil {
			return nil, nil, err
		}
	}

	Logger().Debug("stepped band", "passes", len(passes), "width", p.Width, "step", step)
	return passes, bounds, nil
}
