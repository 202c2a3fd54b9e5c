package math

import (
	stdmath "math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2MinMax(t *testing.T) {
	a := Vec2{1, 4}
	b := Vec2{3, 2}
	if got := a.Max(b); got != (Vec2{3, 4}) {
		t.Errorf("Vec2.Max() = %v, want {3 4}", got)
	}
	if got := a.Min(b); got != (Vec2{1, 2}) {
		t.Errorf("Vec2.Min() = %v, want {1 2}", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero", zero)
	}
}

func TestVec3IsFinite(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want bool
	}{
		{"finite", Vec3{1, 2, 3}, true},
		{"nan", Vec3{float32(stdmath.NaN()), 0, 0}, false},
		{"inf", Vec3{0, float32(stdmath.Inf(1)), 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec4Add(t *testing.T) {
	a := Vec4{1, 2, 3, 0}
	b := Vec4{4, 5, 6, 1}
	got := a.Add(b)
	want := Vec4{5, 7, 9, 1}
	if got != want {
		t.Errorf("Vec4.Add() = %v, want %v", got, want)
	}
}

func TestVec4XYZ(t *testing.T) {
	v := Vec4{1, 2, 3, -1}
	if got := v.XYZ(); got != (Vec3{1, 2, 3}) {
		t.Errorf("Vec4.XYZ() = %v, want {1 2 3}", got)
	}
}
