package cam

import (
	"reflect"
	"testing"
)

func square10() Path {
	return Polygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
}

func TestPathCloneIsDeep(t *testing.T) {
	p := square10()
	q := p.Clone()
	q.Pts[0] = Pt(99, 99)
	if p.Pts[0] != Pt(0, 0) {
		t.Error("Clone shares vertex storage with the original")
	}
}

func TestPathReverse(t *testing.T) {
	p := Polyline(Pt(0, 0), Pt(1, 0), Pt(2, 0))
	r := p.Reversed()
	want := []Point{Pt(2, 0), Pt(1, 0), Pt(0, 0)}
	if !reflect.DeepEqual(r.Pts, want) {
		t.Errorf("Reversed = %v, want %v", r.Pts, want)
	}
	if !reflect.DeepEqual(p.Pts, []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)}) {
		t.Error("Reversed mutated the original")
	}
}

func TestPathPerimeter(t *testing.T) {
	tests := []struct {
		name string
		p    Path
		want float64
	}{
		{"closed square", square10(), 40},
		{"open square outline", Polyline(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)), 30},
		{"single point", Polyline(Pt(5, 5)), 0},
		{"empty", Path{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Perimeter(); got != tt.want {
				t.Errorf("Perimeter = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestPathNearestVertex(t *testing.T) {
	p := square10()
	i, d := p.NearestVertex(Pt(9, 9))
	if i != 2 || d != 2 {
		t.Errorf("NearestVertex = (%d, %g), want (2, 2)", i, d)
	}
	i, _ = Path{}.NearestVertex(Pt(0, 0))
	if i != -1 {
		t.Errorf("NearestVertex on empty path = %d, want -1", i)
	}
}

func TestPathNearestEnd(t *testing.T) {
	p := Polyline(Pt(0, 0), Pt(5, 5), Pt(10, 0))
	atStart, d := p.NearestEnd(Pt(1, 0))
	if !atStart || d != 1 {
		t.Errorf("NearestEnd near start = (%v, %g)", atStart, d)
	}
	atStart, d = p.NearestEnd(Pt(10, 1))
	if atStart || d != 1 {
		t.Errorf("NearestEnd near end = (%v, %g)", atStart, d)
	}
}

func TestPathContains(t *testing.T) {
	sq := square10()
	lshape := Polygon(Pt(0, 0), Pt(20, 0), Pt(20, 10), Pt(10, 10), Pt(10, 20), Pt(0, 20))
	open := Polyline(Pt(0, 0), Pt(10, 0))

	tests := []struct {
		name string
		p    Path
		q    Point
		want Containment
	}{
		{"square center", sq, Pt(5, 5), Inside},
		{"square outside", sq, Pt(15, 5), Outside},
		{"square vertex", sq, Pt(0, 0), OnEdge},
		{"square bottom edge", sq, Pt(5, 0), OnEdge},
		{"square left edge", sq, Pt(0, 5), OnEdge},
		{"square top edge", sq, Pt(5, 10), OnEdge},
		{"lshape lower arm", lshape, Pt(15, 5), Inside},
		{"lshape notch", lshape, Pt(15, 15), Outside},
		{"lshape reflex vertex", lshape, Pt(10, 10), OnEdge},
		{"open on segment", open, Pt(5, 0), OnEdge},
		{"open beside segment", open, Pt(5, 1), Outside},
		{"empty", Path{}, Pt(0, 0), Outside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Contains(tt.q); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestPathRotate(t *testing.T) {
	p := square10()
	r := p.RotateToFirst(2)
	want := []Point{Pt(10, 10), Pt(0, 10), Pt(0, 0), Pt(10, 0)}
	if !reflect.DeepEqual(r.Pts, want) {
		t.Errorf("RotateToFirst(2) = %v, want %v", r.Pts, want)
	}

	r = p.RotateToLast(0)
	want = []Point{Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0)}
	if !reflect.DeepEqual(r.Pts, want) {
		t.Errorf("RotateToLast(0) = %v, want %v", r.Pts, want)
	}

	// Open paths and out-of-range indices come back unrotated.
	open := Polyline(Pt(0, 0), Pt(1, 1))
	if got := open.RotateToFirst(1); !reflect.DeepEqual(got.Pts, open.Pts) {
		t.Errorf("open RotateToFirst = %v", got.Pts)
	}
	if got := p.RotateToFirst(7); !reflect.DeepEqual(got.Pts, p.Pts) {
		t.Errorf("out of range RotateToFirst = %v", got.Pts)
	}
}

func TestPathDedupe(t *testing.T) {
	p := Polygon(Pt(0, 0), Pt(0, 0), Pt(5, 0), Pt(5, 5), Pt(5, 5), Pt(0, 0))
	got := p.Dedupe()
	want := []Point{Pt(0, 0), Pt(5, 0), Pt(5, 5)}
	if !reflect.DeepEqual(got.Pts, want) {
		t.Errorf("Dedupe = %v, want %v", got.Pts, want)
	}
	if !got.Closed {
		t.Error("Dedupe dropped the closed flag")
	}

	open := Polyline(Pt(0, 0), Pt(5, 0), Pt(5, 0), Pt(0, 0))
	got = open.Dedupe()
	// The wrap-around pair only collapses on closed paths.
	want = []Point{Pt(0, 0), Pt(5, 0), Pt(0, 0)}
	if !reflect.DeepEqual(got.Pts, want) {
		t.Errorf("open Dedupe = %v, want %v", got.Pts, want)
	}
}

func TestPathSimplify(t *testing.T) {
	p := Polyline(Pt(0, 0), Pt(5, 0), Pt(10, 0), Pt(10, 5))
	got := p.Simplify()
	want := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 5)}
	if !reflect.DeepEqual(got.Pts, want) {
		t.Errorf("Simplify = %v, want %v", got.Pts, want)
	}

	// Closed paths also drop collinear vertices across the wrap edge.
	c := Polygon(Pt(5, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0))
	got = c.Simplify()
	want = []Point{Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0)}
	if !reflect.DeepEqual(got.Pts, want) {
		t.Errorf("closed Simplify = %v, want %v", got.Pts, want)
	}
}

func TestPathTranslate(t *testing.T) {
	p := Polyline(Pt(0, 0), Pt(1, 2))
	got := p.Translate(10, -5)
	want := []Point{Pt(10, -5), Pt(11, -3)}
	if !reflect.DeepEqual(got.Pts, want) {
		t.Errorf("Translate = %v, want %v", got.Pts, want)
	}
	if p.Pts[0] != Pt(0, 0) {
		t.Error("Translate mutated the original")
	}
}

func TestPathJSON(t *testing.T) {
	p := Polygon(Pt(1, 2), PtZ(3, 4, -5))
	data, err := p.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	want := `{"isClosed":true,"pts":[{"X":1,"Y":2},{"X":3,"Y":4,"Z":-5}]}`
	if string(data) != want {
		t.Errorf("MarshalJSON = %s, want %s", data, want)
	}

	var back Path
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !back.Closed || !reflect.DeepEqual(back.Pts, p.Pts) {
		t.Errorf("round trip: got %+v, want %+v", back, p)
	}
}
