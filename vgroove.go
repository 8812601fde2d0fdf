package cam

// vGroove cuts a symmetric band of total width Params.Width centered on
// the artwork, stepping passes inward from the band edges toward the
// centerline. The stepping mirrors outline, but with no inside/outside
// asymmetry: each offset distance yields a pass on both sides of the path
// at once (closed artwork is offset as a closed line; open artwork is
// conceptually closed by reflection, so its band wraps around the ends).
func (g *Generator) vGroove(geometry PathSet, p Params) (PathSet, error) {
	half := float64(p.Width) / 2
	cutter := float64(p.CutterDiameter)
	step := p.step()

	// Pass centerline offsets, outermost first, always ending with the
	// centerline pass itself.
	var offsets []float64
	for w := half - cutter/2; w > 0; w -= step {
		offsets = append(offsets, w)
	}
	offsets = append(offsets, 0)

	closed, open := geometry.SplitByKind()
	band := func(amount float64) (PathSet, error) {
		loops, err := g.engine.Offset(closed, amount, p.Join, EndClosedLine, p.MiterLimit, p.ArcTolerance)
		if err != nil {
			return nil, err
		}
		// Open artwork is conceptually closed by reflection: its band wraps
		// around the path ends instead of closing across them.
		wrapped, err := g.engine.Offset(open, amount, p.Join, EndOpenButt, p.MiterLimit, p.ArcTolerance)
		if err != nil {
			return nil, err
		}
		return append(loops, wrapped...), nil
	}

	var bounds PathSet
	if outer := offsets[0]; outer > 0 {
		var err error
		bounds, err = band(outer)
		if err != nil {
			return nil, err
		}
	}

	var passes PathSet
	for _, w := range offsets {
		var ring PathSet
		if w == 0 {
			ring = geometry.Clone()
		} else {
			loops, err := band(w)
			if err != nil {
				return nil, err
			}
			ring = loops
		}
		for _, pass := range ring {
			pass = pass.Dedupe()
			if len(pass.Pts) == 0 {
				continue
			}
			if p.Climb {
				pass.Reverse()
			}
			passes = append(passes, pass)
		}
	}

	Logger().Debug("v-groove band", "layers", len(offsets), "passes", len(passes))
	return g.mergeAll(passes, bounds)
}
