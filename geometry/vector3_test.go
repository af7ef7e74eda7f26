package geometry

import "testing"

func TestVector3AddSub(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	if got := a.Add(b); !got.Eq(NewVector3(5, 7, 9)) {
		t.Fatalf("Add = %v, want (5,7,9)", got)
	}
	if got := b.Sub(a); !got.Eq(NewVector3(3, 3, 3)) {
		t.Fatalf("Sub = %v, want (3,3,3)", got)
	}
}

func TestVector3DotCross(t *testing.T) {
	x := NewVector3(1, 0, 0)
	y := NewVector3(0, 1, 0)

	if got := x.Dot(y); got != 0 {
		t.Fatalf("Dot = %v, want 0", got)
	}
	if got := x.Cross(y); !got.Eq(NewVector3(0, 0, 1)) {
		t.Fatalf("Cross = %v, want (0,0,1)", got)
	}
}

func TestVector3Normalized(t *testing.T) {
	v := NewVector3(3, 0, 4)
	n := v.Normalized()
	if !n.Eq(NewVector3(0.6, 0, 0.8)) {
		t.Fatalf("Normalized = %v, want (0.6,0,0.8)", n)
	}

	if z := Zero.Normalized(); !z.Eq(Zero) {
		t.Fatalf("Normalized zero = %v, want zero", z)
	}
}

func TestVector3Reflect(t *testing.T) {
	d := NewVector3(1, -1, 0)
	n := NewVector3(0, 1, 0)
	r := d.Reflect(n)
	if !r.Eq(NewVector3(1, 1, 0)) {
		t.Fatalf("Reflect = %v, want (1,1,0)", r)
	}
}

func TestVector3Eq(t *testing.T) {
	a := NewVector3(1, 1, 1)
	b := NewVector3(1.0000001, 1, 1)
	if !a.Eq(b) {
		t.Fatalf("expected approximate equality")
	}
	c := NewVector3(1.1, 1, 1)
	if a.Eq(c) {
		t.Fatalf("expected inequality")
	}
}
