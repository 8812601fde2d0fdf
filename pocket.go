package cam

import "math"

// pocket clears closed regions using the clearing mode selected by
// Params.Strategy.
func (g *Generator) pocket(geometry PathSet, p Params) (PathSet, error) {
	switch p.Strategy {
	case StrategyRaster:
		return g.rasterPocket(geometry, p, false)
	case StrategyCombined:
		return g.rasterPocket(geometry, p, true)
	default:
		return g.annularPocket(geometry, p)
	}
}

// annularPocket clears a pocket by repeatedly shrinking the margin-adjusted
// boundary, collecting each successive closed contour as a pass until
// shrinking yields an empty set. The innermost contour is cut first.
//
// With a V-bit (Params.CutterAngle > 0) the pocket is self-relieving: each
// successive annulus also steps down in Z by the shrink amount divided by
// tan(cutterAngle), clamped to Params.CutDepth below Params.TopZ.
func (g *Generator) annularPocket(geometry PathSet, p Params) (PathSet, error) {
	cutter := float64(p.CutterDiameter)
	step := p.step()

	current, err := g.shrink(geometry, cutter/2+float64(p.Margin), p)
	if err != nil {
		return nil, err
	}
	bounds := current.Clone()

	vbit := p.CutterAngle > 0
	inset := cutter / 2

	var passes PathSet
	for iter := 0; len(current) > 0; iter++ {
		ring := make(PathSet, 0, len(current))
		for _, pass := range current {
			pass = pass.Dedupe()
			if len(pass.Pts) == 0 {
				continue
			}
			if p.Climb {
				// Offsetting does not preserve the winding needed for
				// climb cutting.
				pass.Reverse()
			}
			if vbit {
				depth := inset / math.Tan(p.CutterAngle)
				if max := float64(p.CutDepth); p.CutDepth > 0 && depth > max {
					depth = max
				}
				z := p.TopZ - round(depth)
				for i := range pass.Pts {
					pass.Pts[i] = pass.Pts[i].WithZ(z)
				}
			}
			ring = append(ring, pass)
		}
		// Prepend so the merge starts at the innermost contour and works
		// outward.
		passes = append(ring, passes...)

		current, err = g.shrink(current, step, p)
		if err != nil {
			return nil, err
		}
		inset += step
		Logger().Debug("annular shrink", "iteration", iter, "contours", len(current))
	}

	return MergeClosedPaths(g.engine, passes, bounds)
}

// rasterPocket clears a pocket with boustrophedon scan lines over the
// convex decomposition of the shrunk boundary. With allRings set (the
// combined strategy) the full annular contour set is cut as well;
// otherwise only the boundary contour itself gets a finishing pass.
func (g *Generator) rasterPocket(geometry PathSet, p Params, allRings bool) (PathSet, error) {
	cutter := float64(p.CutterDiameter)
	step := p.step()

	shrunk, err := g.shrink(geometry, cutter/2+float64(p.Margin), p)
	if err != nil {
		return nil, err
	}
	if len(shrunk) == 0 {
		return PathSet{}, nil
	}
	bounds := shrunk.Clone()

	outers, holes := splitByOrientation(shrunk)

	var sweeps PathSet
	for _, outer := range outers {
		for _, piece := range g.partitioner.ConvexPartition(outer.Dedupe()) {
			zig := sweepConvex(piece, step)
			if len(zig.Pts) > 0 {
				sweeps = append(sweeps, zig)
			}
		}
	}
	if len(holes) > 0 && len(sweeps) > 0 {
		// Scan lines may pass over islands; cut those spans out.
		sweeps, err = g.engine.Difference(sweeps, holes)
		if err != nil {
			return nil, err
		}
	}

	var rings PathSet
	if allRings {
		current := shrunk
		for len(current) > 0 {
			rings = append(rings, current...)
			current, err = g.shrink(current, step, p)
			if err != nil {
				return nil, err
			}
		}
	} else {
		rings = shrunk.Clone()
	}

	var seed Point
	if len(sweeps) > 0 && len(sweeps[0].Pts) > 0 {
		seed = sweeps[0].First()
	}
	var passes PathSet
	for _, ring := range rings {
		ring = ring.Dedupe()
		if len(ring.Pts) == 0 {
			continue
		}
		// Re-seed the contour so its start vertex is nearest the first
		// raster point, reducing travel between outline and interior.
		if len(sweeps) > 0 {
			i, _ := ring.NearestVertex(seed)
			ring = ring.RotateToFirst(i)
		}
		if p.Climb {
			ring.Reverse()
		}
		passes = append(passes, ring)
	}

	Logger().Debug("raster pocket", "contours", len(passes), "sweeps", len(sweeps))
	return g.mergeAll(append(passes, sweeps...), bounds)
}

// shrink offsets every closed path inward by amount, using the configured
// join style.
func (g *Generator) shrink(ps PathSet, amount float64, p Params) (PathSet, error) {
	return g.engine.Offset(ps, -amount, p.Join, EndClosedPolygon, p.MiterLimit, p.ArcTolerance)
}

// splitByOrientation partitions polygon-with-holes output into outer
// contours and holes by signed area.
func splitByOrientation(ps PathSet) (outers, holes PathSet) {
	for _, p := range ps {
		if !p.Closed || len(p.Pts) < 3 {
			continue
		}
		if signedArea2(p) >= 0 {
			outers = append(outers, p)
		} else {
			holes = append(holes, p)
		}
	}
	return outers, holes
}

// signedArea2 returns twice the signed area of a closed path.
func signedArea2(p Path) int64 {
	var area int64
	n := len(p.Pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Pts[i].X*p.Pts[j].Y - p.Pts[j].X*p.Pts[i].Y
	}
	return area
}
