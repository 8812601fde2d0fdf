package cam

import (
	"encoding/json"
	"testing"
)

func TestPointZAssignment(t *testing.T) {
	p := Pt(3, 4)
	if p.HasZ {
		t.Error("Pt should not assign Z")
	}
	q := p.WithZ(-7)
	if !q.HasZ || q.Z != -7 {
		t.Errorf("WithZ: got %+v", q)
	}
	if p.HasZ {
		t.Error("WithZ mutated the receiver")
	}
	r := PtZ(3, 4, -7)
	if r != q {
		t.Errorf("PtZ and WithZ disagree: %+v vs %+v", r, q)
	}
}

func TestPointEqual(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Point
		xy, xyz bool
	}{
		{"same no z", Pt(1, 2), Pt(1, 2), true, true},
		{"different xy", Pt(1, 2), Pt(2, 1), false, false},
		{"same xy one z", Pt(1, 2), PtZ(1, 2, 0), true, false},
		{"same xyz", PtZ(1, 2, -3), PtZ(1, 2, -3), true, true},
		{"same xy different z", PtZ(1, 2, -3), PtZ(1, 2, -4), true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.EqualXY(tt.b); got != tt.xy {
				t.Errorf("EqualXY = %v, want %v", got, tt.xy)
			}
			if got := tt.a.Equal(tt.b); got != tt.xyz {
				t.Errorf("Equal = %v, want %v", got, tt.xyz)
			}
		})
	}
}

func TestPointDistance(t *testing.T) {
	a, b := Pt(0, 0), Pt(3, 4)
	if d := a.DistanceSq(b); d != 25 {
		t.Errorf("DistanceSq = %g, want 25", d)
	}
	if d := a.Distance(b); d != 5 {
		t.Errorf("Distance = %g, want 5", d)
	}
}

func TestPointJSON(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want string
	}{
		{"no z", Pt(1, 2), `{"X":1,"Y":2}`},
		{"with z", PtZ(1, 2, -3), `{"X":1,"Y":2,"Z":-3}`},
		{"zero z assigned", PtZ(0, 0, 0), `{"X":0,"Y":0,"Z":0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.p)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}
			var back Point
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if back != tt.p {
				t.Errorf("round trip: got %+v, want %+v", back, tt.p)
			}
		})
	}
}

func TestPointUnmarshalMissingZ(t *testing.T) {
	var p Point
	if err := json.Unmarshal([]byte(`{"X":5,"Y":6}`), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p.HasZ {
		t.Errorf("missing Z must stay unassigned, got %+v", p)
	}
}
