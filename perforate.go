package cam

import "math"

// perforate drills a row of evenly spaced holes along each path.
//
// The path length is divided into ceil(L/(cutterDiameter+spacing))
// equal-length intervals and a hole dropped at every interval boundary.
// Closed input is first bloated outward (or shrunk inward, per Params.Side)
// by half the cutter diameter so holes sit on the cutter centerline
// relative to the material edge, and its implicit closing edge takes part
// in the walk. Every hole becomes a three-point plunge/retract.
func (g *Generator) perforate(geometry PathSet, p Params) (PathSet, error) {
	var out PathSet
	for _, path := range geometry {
		path = path.Dedupe()
		if len(path.Pts) == 0 {
			continue
		}
		if !path.Closed {
			if holes := perforateWalk(path, p); len(holes.Pts) > 0 {
				out = append(out, holes)
			}
			continue
		}

		amount := float64(p.CutterDiameter) / 2
		if p.Side == SideInside {
			amount = -amount
		}
		offset, err := g.engine.Offset(PathSet{path}, amount, p.Join, EndClosedPolygon, p.MiterLimit, p.ArcTolerance)
		if err != nil {
			return nil, err
		}
		for _, ring := range offset {
			if holes := perforateWalk(ring.Dedupe(), p); len(holes.Pts) > 0 {
				out = append(out, holes)
			}
		}
	}
	return out, nil
}

// perforateWalk walks one path accumulating edge length and emits a
// plunge/retract triple at every interval boundary.
func perforateWalk(path Path, p Params) Path {
	pitch := float64(p.CutterDiameter + p.Spacing)
	length := path.Perimeter()

	var holes []Point
	if length == 0 {
		holes = []Point{path.First()}
	} else {
		count := int(math.Ceil(length / pitch))
		if count < 1 {
			count = 1
		}
		interval := length / float64(count)

		// Open paths get holes at both ends; on closed paths the final
		// boundary coincides with the start and is de-duplicated.
		last := count
		if path.Closed {
			last = count - 1
		}

		walk := path.materialized()
		acc := 0.0
		edge := 1
		for k := 0; k <= last; k++ {
			target := float64(k) * interval
			for edge < len(walk.Pts) {
				a, b := walk.Pts[edge-1], walk.Pts[edge]
				elen := a.Distance(b)
				if acc+elen >= target || edge == len(walk.Pts)-1 {
					t := 0.0
					if elen > 0 {
						t = (target - acc) / elen
						if t < 0 {
							t = 0
						} else if t > 1 {
							t = 1
						}
					}
					holes = append(holes, Pt(
						a.X+round(t*float64(b.X-a.X)),
						a.Y+round(t*float64(b.Y-a.Y)),
					))
					break
				}
				acc += elen
				edge++
			}
		}
	}

	pts := make([]Point, 0, len(holes)*3)
	for _, h := range holes {
		pts = append(pts,
			PtZ(h.X, h.Y, p.SafeZ),
			PtZ(h.X, h.Y, p.BotZ),
			PtZ(h.X, h.Y, p.SafeZ),
		)
	}
	return Polyline(pts...)
}
