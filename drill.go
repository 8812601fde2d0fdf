package cam

// drill emits a plunge/retract triple for every vertex of every input
// path, in path and vertex order, with no offsetting.
func (g *Generator) drill(geometry PathSet, p Params) (PathSet, error) {
	var out PathSet
	for _, path := range geometry {
		if len(path.Pts) == 0 {
			continue
		}
		pts := make([]Point, 0, len(path.Pts)*3)
		for _, v := range path.Pts {
			pts = append(pts,
				PtZ(v.X, v.Y, p.SafeZ),
				PtZ(v.X, v.Y, p.BotZ),
				PtZ(v.X, v.Y, p.SafeZ),
			)
		}
		out = append(out, Polyline(pts...))
	}
	return out, nil
}
