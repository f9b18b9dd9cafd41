package render

import "github.com/charmbracelet/harmonica"

// axisMotion tracks one camera velocity that decays toward zero on a spring.
type axisMotion struct {
	velocity float64
	accel    float64 // spring's own velocity while animating velocity toward 0
	spring   harmonica.Spring
}

// Critically damped: velocity decays without overshoot.
const (
	springFrequency = 4.0
	springDamping   = 1.0
)

func newAxisMotion(fps int) axisMotion {
	return axisMotion{spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping)}
}

func (a *axisMotion) step() float64 {
	v := a.velocity
	a.velocity, a.accel = a.spring.Update(a.velocity, a.accel, 0)
	return v
}

func (a *axisMotion) moving() bool {
	return abs(a.velocity) > 1e-4 || abs(a.accel) > 1e-4
}

// Orbiter gives camera commands inertia. Impulses add velocity; every Step
// feeds the current velocities through the camera's Orbit/Roll/Zoom and
// lets them decay.
type Orbiter struct {
	theta, phi, roll, zoom axisMotion
	fps                    int
}

// NewOrbiter creates an orbiter stepped fps times per second.
func NewOrbiter(fps int) *Orbiter {
	o := &Orbiter{fps: fps}
	o.Stop()
	return o
}

// Impulse adds motion on each camera axis. The velocity is scaled so that,
// once it has decayed, each axis has travelled roughly its delta.
func (o *Orbiter) Impulse(dTheta, dPhi, dRoll, dZoom float64) {
	k := springFrequency / (2 * float64(o.fps))
	o.theta.velocity += dTheta * k
	o.phi.velocity += dPhi * k
	o.roll.velocity += dRoll * k
	o.zoom.velocity += dZoom * k
}

// Step applies one tick of motion to cam.
func (o *Orbiter) Step(cam *Camera) {
	if !o.Moving() {
		return
	}
	cam.Orbit(o.theta.step(), o.phi.step())
	cam.Roll(o.roll.step())
	cam.Zoom(o.zoom.step())
}

// Moving reports whether any axis still has velocity.
func (o *Orbiter) Moving() bool {
	return o.theta.moving() || o.phi.moving() || o.roll.moving() || o.zoom.moving()
}

// Stop zeroes all velocities.
func (o *Orbiter) Stop() {
	o.theta = newAxisMotion(o.fps)
	o.phi = newAxisMotion(o.fps)
	o.roll = newAxisMotion(o.fps)
	o.zoom = newAxisMotion(o.fps)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
