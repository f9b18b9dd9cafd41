// Package render turns a cube into shaded ASCII frames: an orbiting camera,
// per-facelet projection, and a depth-tested character rasterizer.
package render

import (
	"math"

	"github.com/SeamusWaldron/cubeascii/internal/math3d"
)

// Camera limits.
const (
	CameraMinRadius = 2.8
	CameraMaxRadius = 9.5
	MaxElevation    = 1.2
)

// Camera orbits a fixed target on a sphere.
type Camera struct {
	theta  float64 // azimuth, wrapped into [0, 2π)
	phi    float64 // elevation, clamped to ±MaxElevation
	roll   float64 // view-plane rotation, clamped to [-π, π]
	radius float64
	target math3d.Vec3
	fovY   float64
}

// NewCamera creates the startup camera looking at the origin from above-front-right.
func NewCamera() *Camera {
	return &Camera{
		theta:  math.Pi / 4,
		phi:    math.Pi / 6,
		radius: 3.0,
		fovY:   1.0,
	}
}

// Orbit adds deltas to azimuth and elevation.
func (c *Camera) Orbit(dTheta, dPhi float64) {
	c.theta = wrapAngle(c.theta + dTheta)
	c.phi = math3d.Clamp(c.phi+dPhi, -MaxElevation, MaxElevation)
}

// Roll rotates the view plane around the view direction.
func (c *Camera) Roll(delta float64) {
	c.roll = math3d.Clamp(c.roll+delta, -math.Pi, math.Pi)
}

// Zoom moves the eye toward (negative delta) or away from the target.
func (c *Camera) Zoom(delta float64) {
	c.radius = math3d.Clamp(c.radius+delta, CameraMinRadius, CameraMaxRadius)
}

// SetView moves the camera to the given angles and radius through the
// regular Orbit/Roll/Zoom paths so the same bounds apply.
func (c *Camera) SetView(theta, phi, roll, radius float64) {
	c.Orbit(theta-c.theta, phi-c.phi)
	c.Roll(roll - c.roll)
	c.Zoom(radius - c.radius)
}

func (c *Camera) Theta() float64     { return c.theta }
func (c *Camera) Phi() float64       { return c.phi }
func (c *Camera) RollAngle() float64 { return c.roll }
func (c *Camera) Radius() float64    { return c.radius }
func (c *Camera) FOV() float64       { return c.fovY }

func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// Basis is the camera frame in world space.
type Basis struct {
	Eye     math3d.Vec3
	Forward math3d.Vec3
	Right   math3d.Vec3
	Up      math3d.Vec3
	FovY    float64
}

// Basis derives the view frame. The unrolled frame is computed first and
// roll is then applied about the forward axis.
func (c *Camera) Basis() Basis {
	sinPhi, cosPhi := math.Sincos(c.phi)
	sinTheta, cosTheta := math.Sincos(c.theta)

	eye := c.target.Add(math3d.V3(
		c.radius*cosPhi*sinTheta,
		c.radius*sinPhi,
		c.radius*cosPhi*cosTheta,
	))

	forward := c.target.Sub(eye).Normalize()
	right := forward.Cross(math3d.Up())
	if right.Len() < 0.001 {
		// Looking straight up or down.
		right = forward.Cross(math3d.V3(0, 0, 1))
	}
	right = right.Normalize()
	up := right.Cross(forward).Normalize()

	if math.Abs(c.roll) > 1e-9 {
		right = right.RotateAbout(forward, c.roll)
		up = right.Cross(forward).Normalize()
	}

	return Basis{
		Eye:     eye,
		Forward: forward,
		Right:   right,
		Up:      up,
		FovY:    c.fovY,
	}
}
