package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Forward is the canonical forward unit vector. The scene looks down -Z.
var Forward = mgl64.Vec3{0, 0, -1}

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

// Orientation holds Euler angles in radians, applied in X, Y, Z order.
// Pitch turns about X, Yaw about Y and Roll (bank) about Z.
type Orientation struct {
	Pitch float64
	Yaw   float64
	Roll  float64
}

// Quat returns the rotation described by the Euler angles.
func (o Orientation) Quat() mgl64.Quat {
	return mgl64.AnglesToQuat(o.Pitch, o.Yaw, o.Roll, mgl64.XYZ)
}

// Rotate applies the orientation to v.
func (o Orientation) Rotate(v mgl64.Vec3) mgl64.Vec3 {
	return o.Quat().Rotate(v)
}

// Heading returns the unit vector the orientation points along.
func (o Orientation) Heading() mgl64.Vec3 {
	return Normalize(o.Rotate(Forward))
}

// Add returns the component-wise sum of two orientations.
func (o Orientation) Add(other Orientation) Orientation {
	return Orientation{
		Pitch: o.Pitch + other.Pitch,
		Yaw:   o.Yaw + other.Yaw,
		Roll:  o.Roll + other.Roll,
	}
}

// Normalize returns v scaled to unit length, or the zero vector when v has
// no length (mgl64's Normalize divides by zero in that case).
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// IsUnit reports whether v has unit length within eps.
func IsUnit(v mgl64.Vec3, eps float64) bool {
	return NearlyEqual(v.Len(), 1, eps)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}

// RandomInBall maps three uniform draws in [0,1) to a point uniformly
// distributed in a ball of the given radius. The radius uses the cube root
// of its draw so points are not clustered at the center.
func RandomInBall(radius, u, v, w float64) mgl64.Vec3 {
	theta := u * 2 * math.Pi
	phi := math.Acos(2*v - 1)
	r := radius * math.Cbrt(w)

	return mgl64.Vec3{
		r * math.Sin(phi) * math.Cos(theta),
		r * math.Sin(phi) * math.Sin(theta),
		r * math.Cos(phi),
	}
}
