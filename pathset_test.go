package cam

import (
	"reflect"
	"testing"
)

func TestPathSetSplitByKind(t *testing.T) {
	ps := PathSet{
		Polygon(Pt(0, 0), Pt(1, 0), Pt(1, 1)),
		Polyline(Pt(2, 2), Pt(3, 3)),
		Polygon(Pt(5, 5), Pt(6, 5), Pt(6, 6)),
	}
	closed, open := ps.SplitByKind()
	if len(closed) != 2 || len(open) != 1 {
		t.Fatalf("SplitByKind = %d closed, %d open", len(closed), len(open))
	}
	closed[0].Pts[0] = Pt(99, 99)
	if ps[0].Pts[0] != Pt(0, 0) {
		t.Error("SplitByKind shares storage with the receiver")
	}
}

func TestPathSetIsEmpty(t *testing.T) {
	if !(PathSet{}).IsEmpty() {
		t.Error("empty set should be empty")
	}
	if !(PathSet{Path{}, Path{Closed: true}}).IsEmpty() {
		t.Error("set of empty paths should be empty")
	}
	if (PathSet{Polyline(Pt(0, 0))}).IsEmpty() {
		t.Error("set with a vertex should not be empty")
	}
}

func TestPathSetPerimeter(t *testing.T) {
	ps := PathSet{square10(), Polyline(Pt(0, 0), Pt(3, 4))}
	if got := ps.Perimeter(); got != 45 {
		t.Errorf("Perimeter = %g, want 45", got)
	}
}

func TestPathSetJSONRoundTrip(t *testing.T) {
	ps := PathSet{
		Polygon(Pt(0, 0), Pt(10, 0), Pt(10, 10)),
		Polyline(PtZ(1, 2, -3), Pt(4, 5)),
	}
	data, err := ps.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	back, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if !reflect.DeepEqual(back, ps) {
		t.Errorf("round trip:\n got %+v\nwant %+v", back, ps)
	}
}

func TestPathSetJSONEmpty(t *testing.T) {
	data, err := PathSet(nil).ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("nil set marshals to %s, want []", data)
	}
}

func TestBounds(t *testing.T) {
	p := Polyline(Pt(-5, 2), PtZ(10, -3, -8), PtZ(0, 0, -1))
	b := p.Bounds()
	if !b.Valid {
		t.Fatal("Bounds not valid")
	}
	if b.MinX != -5 || b.MaxX != 10 || b.MinY != -3 || b.MaxY != 2 {
		t.Errorf("XY bounds = %+v", b)
	}
	if !b.HasZ || b.MinZ != -8 || b.MaxZ != -1 {
		t.Errorf("Z bounds = %+v", b)
	}

	if (Path{}).Bounds().Valid {
		t.Error("empty path bounds should be invalid")
	}

	noZ := Polyline(Pt(0, 0), Pt(1, 1)).Bounds()
	if noZ.HasZ {
		t.Error("bounds over unassigned Z should report HasZ false")
	}
}
