// SPDX-License-Identifier: EPL-2.0

package geom

import "math"

// Vec3 is a 3-D vector. Used for positions, velocities and directions in
// world units (1 unit = 1 meter).
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

func (v Vec3) DistanceTo(o Vec3) float32 {
	return v.Sub(o).Length()
}

// Normalized returns the unit vector pointing in the direction of v.
// The zero vector normalizes to itself.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// RotatedAround rotates v around the given axis by angle radians using
// Rodrigues' rotation formula. axis does not need to be normalized.
func (v Vec3) RotatedAround(axis Vec3, angle float32) Vec3 {
	k := axis.Normalized()
	sin := float32(math.Sin(float64(angle)))
	cos := float32(math.Cos(float64(angle)))

	// v*cos + (k x v)*sin + k*(k . v)*(1 - cos)
	return v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))
}
