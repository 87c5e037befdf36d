package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 3, 3), true},
		{"touching edges", NewRect(10, 0, 5, 5), false},
		{"disjoint", NewRect(20, 20, 5, 5), false},
	}

	for _, c := range cases {
		if got := a.Intersects(c.b); got != c.want {
			t.Errorf("%s: Intersects = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(2, 3) {
		t.Error("top-left corner should be contained")
	}
	if r.Contains(6, 3) {
		t.Error("right edge is exclusive")
	}
	if !r.ContainsVec(Vec2{X: 5.9, Y: 7.9}) {
		t.Error("float point just inside should be contained")
	}
	if r.ContainsVec(Vec2{X: 6.0, Y: 4.0}) {
		t.Error("float point on right edge should not be contained")
	}
}

func TestVec2Normalized(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	n := v.Normalized()
	if math.Abs(n.Len()-1.0) > 1e-9 {
		t.Errorf("normalized length = %f, want 1", n.Len())
	}

	zero := Vec2{}.Normalized()
	if zero.X != 0 || zero.Y != 0 {
		t.Error("normalizing zero vector should stay zero")
	}
}

func TestVec2Dist(t *testing.T) {
	a := Vec2{X: 1, Y: 1}
	b := Vec2{X: 4, Y: 5}
	if d := a.Dist(b); math.Abs(d-5.0) > 1e-9 {
		t.Errorf("Dist = %f, want 5", d)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(0)
	if math.Abs(v.X-1) > 1e-9 || math.Abs(v.Y) > 1e-9 {
		t.Errorf("FromAngle(0) = %+v, want (1, 0)", v)
	}

	v = FromAngle(math.Pi / 2)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-1) > 1e-9 {
		t.Errorf("FromAngle(pi/2) = %+v, want (0, 1)", v)
	}
}

func TestClampVec(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	v := ClampVec(Vec2{X: -5, Y: 20}, r)
	if v.X != 0 || v.Y != 9 {
		t.Errorf("ClampVec = %+v, want (0, 9)", v)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("value in range should be unchanged")
	}
	if Clamp(-1, 0, 10) != 0 {
		t.Error("value below min should clamp to min")
	}
	if Clamp(11, 0, 10) != 10 {
		t.Error("value above max should clamp to max")
	}
}

func TestRNGDeterminism(t *testing.T) {
	r1 := NewRNG(42)
	r2 := NewRNG(42)

	for i := 0; i < 100; i++ {
		if r1.Next() != r2.Next() {
			t.Fatal("same seed should produce same sequence")
		}
	}
}

func TestRNGIntnBounds(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		n := r.Intn(10)
		if n < 0 || n >= 10 {
			t.Fatalf("Intn(10) = %d, out of range", n)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

func TestRNGFloat64Range(t *testing.T) {
	r := NewRNG(99)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 = %f, out of [0, 1)", f)
		}
	}
}

func TestRNGChance(t *testing.T) {
	r := NewRNG(1)
	if r.Chance(0) {
		t.Error("Chance(0) should never be true")
	}
	if !r.Chance(1) {
		t.Error("Chance(1) should always be true")
	}
}
