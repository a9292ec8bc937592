// SPDX-License-Identifier: EPL-2.0

package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b Vec3, eps float32) bool {
	d := a.Sub(b)
	return float32(math.Abs(float64(d.X))) < eps &&
		float32(math.Abs(float64(d.Y))) < eps &&
		float32(math.Abs(float64(d.Z))) < eps
}

func TestVec3_Basics(t *testing.T) {
	t.Parallel()

	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	if got := a.Add(b); got != (Vec3{5, -3, 9}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec3{-3, 7, -3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Dot(b); got != 4-10+18 {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale = %v", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	t.Parallel()

	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}

	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Errorf("x cross y = %v, want +z", got)
	}
	if got := y.Cross(x); got != (Vec3{0, 0, -1}) {
		t.Errorf("y cross x = %v, want -z", got)
	}
}

func TestVec3_LengthAndNormalize(t *testing.T) {
	t.Parallel()

	v := Vec3{3, 4, 0}
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	n := v.Normalized()
	if !almostEqual(n, Vec3{0.6, 0.8, 0}, 1e-6) {
		t.Errorf("Normalized = %v", n)
	}
	if got := (Vec3{}).Normalized(); !got.IsZero() {
		t.Errorf("zero Normalized = %v, want zero", got)
	}
}

func TestVec3_DistanceTo(t *testing.T) {
	t.Parallel()

	a := Vec3{1, 1, 1}
	b := Vec3{1, 1, 6}
	if got := a.DistanceTo(b); got != 5 {
		t.Errorf("DistanceTo = %v, want 5", got)
	}
}

func TestVec3_RotatedAround(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		v     Vec3
		axis  Vec3
		angle float32
		want  Vec3
	}{
		{"quarter turn around z", Vec3{1, 0, 0}, Vec3{0, 0, 1}, math.Pi / 2, Vec3{0, 1, 0}},
		{"half turn around z", Vec3{1, 0, 0}, Vec3{0, 0, 1}, math.Pi, Vec3{-1, 0, 0}},
		{"around own axis is identity", Vec3{0, 0, 2}, Vec3{0, 0, 1}, 1.234, Vec3{0, 0, 2}},
		{"unnormalized axis", Vec3{1, 0, 0}, Vec3{0, 0, 10}, math.Pi / 2, Vec3{0, 1, 0}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.v.RotatedAround(tt.axis, tt.angle)
			if !almostEqual(got, tt.want, 1e-5) {
				t.Errorf("RotatedAround = %v, want %v", got, tt.want)
			}
		})
	}
}
