package cam

import "encoding/json"

// Path is an ordered sequence of points, open or closed.
//
// A closed path never duplicates its first point as its last: closure is
// implicit. Vertex order encodes cut direction; reversing a path toggles
// climb vs. conventional milling.
type Path struct {
	Pts    []Point
	Closed bool
}

// Polygon creates a closed path from the given vertices.
func Polygon(pts ...Point) Path {
	return Path{Pts: pts, Closed: true}
}

// Polyline creates an open path from the given vertices.
func Polyline(pts ...Point) Path {
	return Path{Pts: pts}
}

// Clone creates a deep copy of the path. Every operation that would mutate
// a path the caller still holds works on a clone; the vertex slice is never
// shared between input and output.
func (p Path) Clone() Path {
	pts := make([]Point, len(p.Pts))
	copy(pts, p.Pts)
	return Path{Pts: pts, Closed: p.Closed}
}

// IsEmpty reports whether the path has no vertices.
func (p Path) IsEmpty() bool {
	return len(p.Pts) == 0
}

// First returns the first vertex. Panics on an empty path.
func (p Path) First() Point {
	return p.Pts[0]
}

// Last returns the last vertex. Panics on an empty path.
func (p Path) Last() Point {
	return p.Pts[len(p.Pts)-1]
}

// Reverse reverses the vertex order in place, toggling the cut direction.
func (p Path) Reverse() {
	for i, j := 0, len(p.Pts)-1; i < j; i, j = i+1, j-1 {
		p.Pts[i], p.Pts[j] = p.Pts[j], p.Pts[i]
	}
}

// Reversed returns a reversed copy of the path.
func (p Path) Reversed() Path {
	q := p.Clone()
	q.Reverse()
	return q
}

// Perimeter returns the total edge length, including the implicit closing
// edge for closed paths.
func (p Path) Perimeter() float64 {
	n := len(p.Pts)
	if n < 2 {
		return 0
	}
	var total float64
	for i := 1; i < n; i++ {
		total += p.Pts[i-1].Distance(p.Pts[i])
	}
	if p.Closed {
		total += p.Pts[n-1].Distance(p.Pts[0])
	}
	return total
}

// NearestVertex returns the index of the vertex nearest to q in the XY
// plane and its squared distance. Returns (-1, 0) for an empty path.
func (p Path) NearestVertex(q Point) (int, float64) {
	if len(p.Pts) == 0 {
		return -1, 0
	}
	best := 0
	bestD := p.Pts[0].DistanceSq(q)
	for i := 1; i < len(p.Pts); i++ {
		if d := p.Pts[i].DistanceSq(q); d < bestD {
			best, bestD = i, d
		}
	}
	return best, bestD
}

// NearestEnd compares only the two ends of the path against q and returns
// whether the start is the nearer one, plus its squared distance. Used when
// stitching open paths, where only endpoints can join.
func (p Path) NearestEnd(q Point) (atStart bool, distSq float64) {
	ds := p.First().DistanceSq(q)
	de := p.Last().DistanceSq(q)
	if ds <= de {
		return true, ds
	}
	return false, de
}

// Containment is the result of a point-in-polygon query.
type Containment int

const (
	// Outside means the point is strictly outside the polygon.
	Outside Containment = iota

	// OnEdge means the point lies exactly on a vertex or edge. Degenerate
	// queries resolve here rather than flip-flopping between inside and
	// outside.
	OnEdge

	// Inside means the point is strictly inside the polygon.
	Inside
)

// Contains classifies q against a closed path using exact integer
// arithmetic. A point on a vertex, on a horizontal edge, or collinear with
// an edge is reported as OnEdge. Open paths contain nothing; q can only be
// OnEdge or Outside.
func (p Path) Contains(q Point) Containment {
	n := len(p.Pts)
	if n == 0 {
		return Outside
	}
	if !p.Closed {
		for i := 1; i < n; i++ {
			if onSegment(q, p.Pts[i-1], p.Pts[i]) {
				return OnEdge
			}
		}
		return Outside
	}
	inside := false
	for i := 0; i < n; i++ {
		a := p.Pts[i]
		b := p.Pts[(i+1)%n]
		if onSegment(q, a, b) {
			return OnEdge
		}
		if (a.Y > q.Y) != (b.Y > q.Y) {
			// Which side of edge a->b the horizontal ray crossing is on.
			cross := (b.X-a.X)*(q.Y-a.Y) - (b.Y-a.Y)*(q.X-a.X)
			if cross == 0 {
				return OnEdge
			}
			if (cross > 0) == (b.Y > a.Y) {
				inside = !inside
			}
		}
	}
	if inside {
		return Inside
	}
	return Outside
}

// onSegment reports whether q lies exactly on the segment a-b.
func onSegment(q, a, b Point) bool {
	if (b.X-a.X)*(q.Y-a.Y) != (b.Y-a.Y)*(q.X-a.X) {
		return false
	}
	return min64(a.X, b.X) <= q.X && q.X <= max64(a.X, b.X) &&
		min64(a.Y, b.Y) <= q.Y && q.Y <= max64(a.Y, b.Y)
}

// RotateToFirst returns a copy of a closed path rotated so vertex i comes
// first. Re-seeds the start point of a pass before merging. Open paths and
// out-of-range indices return an unrotated clone.
func (p Path) RotateToFirst(i int) Path {
	n := len(p.Pts)
	if !p.Closed || i <= 0 || i >= n {
		return p.Clone()
	}
	pts := make([]Point, 0, n)
	pts = append(pts, p.Pts[i:]...)
	pts = append(pts, p.Pts[:i]...)
	return Path{Pts: pts, Closed: true}
}

// RotateToLast returns a copy of a closed path rotated so vertex i comes
// last.
func (p Path) RotateToLast(i int) Path {
	n := len(p.Pts)
	if !p.Closed || i < 0 || i >= n {
		return p.Clone()
	}
	return p.RotateToFirst((i + 1) % n)
}

// Dedupe returns a copy with consecutive coincident vertices removed. For
// closed paths the wrap-around pair (last vertex equal to first) is removed
// as well.
func (p Path) Dedupe() Path {
	q := Path{Closed: p.Closed}
	for _, pt := range p.Pts {
		if len(q.Pts) > 0 && q.Pts[len(q.Pts)-1].EqualXY(pt) {
			continue
		}
		q.Pts = append(q.Pts, pt)
	}
	if p.Closed {
		for len(q.Pts) > 1 && q.Pts[len(q.Pts)-1].EqualXY(q.Pts[0]) {
			q.Pts = q.Pts[:len(q.Pts)-1]
		}
	}
	return q
}

// Simplify returns a copy with vertices that sit exactly on the straight
// line between their neighbors removed. The endpoints of an open path are
// always kept.
func (p Path) Simplify() Path {
	n := len(p.Pts)
	if n < 3 {
		return p.Clone()
	}
	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}
	lo, hi := 1, n-1
	if p.Closed {
		lo, hi = 0, n
	}
	for i := lo; i < hi; i++ {
		a := p.Pts[(i-1+n)%n]
		b := p.Pts[i]
		c := p.Pts[(i+1)%n]
		if onSegment(b, a, c) {
			keep[i] = false
		}
	}
	q := Path{Closed: p.Closed}
	for i, k := range keep {
		if k {
			q.Pts = append(q.Pts, p.Pts[i])
		}
	}
	return q
}

// Translate returns a copy of the path shifted by (dx, dy).
func (p Path) Translate(dx, dy int64) Path {
	q := p.Clone()
	for i := range q.Pts {
		q.Pts[i].X += dx
		q.Pts[i].Y += dy
	}
	return q
}

// materialized returns the path as an open vertex sequence with the closing
// edge made explicit: closed paths get their first vertex appended. The
// result is always a fresh slice.
func (p Path) materialized() Path {
	q := p.Clone()
	if p.Closed && len(q.Pts) > 0 {
		q.Pts = append(q.Pts, q.Pts[0])
		q.Closed = false
	}
	return q
}

// pathJSON is the persisted shape of a Path.
type pathJSON struct {
	IsClosed bool    `json:"isClosed"`
	Pts      []Point `json:"pts"`
}

// MarshalJSON implements json.Marshaler using the stable persisted shape
// {"isClosed": bool, "pts": [...]}.
func (p Path) MarshalJSON() ([]byte, error) {
	pts := p.Pts
	if pts == nil {
		pts = []Point{}
	}
	return json.Marshal(pathJSON{IsClosed: p.Closed, Pts: pts})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Path) UnmarshalJSON(data []byte) error {
	var pj pathJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return err
	}
	p.Closed = pj.IsClosed
	p.Pts = pj.Pts
	return nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
