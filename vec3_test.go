package lumen

import "testing"

func TestVec3Cross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	if got := x.Cross(y); got != (Vec3{Z: 1}) {
		t.Errorf("x cross y = %v, want (0,0,1)", got)
	}
	if got := y.Cross(x); got != (Vec3{Z: -1}) {
		t.Errorf("y cross x = %v, want (0,0,-1)", got)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
}

func TestVec3NormalizeUnit(t *testing.T) {
	v := Vec3{X: 3, Y: 4, Z: 12}.Normalize()
	if !approxEqual(v.Norm(), 1, epsilon) {
		t.Errorf("length = %f, want 1", v.Norm())
	}
}

func TestVec3MulEach(t *testing.T) {
	got := Vec3{X: 1, Y: 2, Z: 3}.MulEach(Vec3{X: 2, Y: 0, Z: -1})
	if got != (Vec3{X: 2, Y: 0, Z: -3}) {
		t.Errorf("MulEach = %v", got)
	}
}

func TestVec3DotOrthogonal(t *testing.T) {
	if d := (Vec3{X: 1}).Dot(Vec3{Y: 1}); d != 0 {
		t.Errorf("dot = %f, want 0", d)
	}
}
