package camera

import "math"

// Orbit drives a State's pose from an orbit target, distance, and
// yaw/pitch, the same interaction model sparkos/quarkgl/controls.go's
// OrbitController offers a look-at camera, adapted to a position+turns
// pose instead of a Position/Target/Up triple.
type Orbit struct {
	TargetX, TargetY, TargetZ float64
	Radius                    float64

	MinRadius, MaxRadius float64

	yaw, pitch float64
}

// Rotate nudges yaw/pitch by normalized-turn deltas, wrapping yaw into
// [0,1) and clamping pitch into [-1,1].
func (o *Orbit) Rotate(deltaYaw, deltaPitch float64) {
	o.yaw += deltaYaw
	o.yaw -= float64(int(o.yaw))
	if o.yaw < 0 {
		o.yaw++
	}
	o.pitch += deltaPitch
	if o.pitch < -1 {
		o.pitch = -1
	}
	if o.pitch > 1 {
		o.pitch = 1
	}
}

// Zoom adjusts Radius by delta, clamped to [MinRadius, MaxRadius] when
// those bounds are set (zero means unbounded on that side).
func (o *Orbit) Zoom(delta float64) {
	o.Radius += delta
	if o.MinRadius != 0 && o.Radius < o.MinRadius {
		o.Radius = o.MinRadius
	}
	if o.MaxRadius != 0 && o.Radius > o.MaxRadius {
		o.Radius = o.MaxRadius
	}
}

// Pose computes the camera pose looking at (TargetX,TargetY,TargetZ) from
// Radius away at the orbit's current yaw/pitch, with roll 0.
//
// Because yaw/pitch here are the camera's own turns rather than a
// look-at direction, the orbit position is derived directly: walking
// Radius back along the view axis implied by yaw/pitch from the target.
func (o *Orbit) Pose() Pose {
	r := o.Radius
	if r == 0 {
		r = 3
	}
	yawRad := o.yaw * 2 * math.Pi
	pitchRad := o.pitch * math.Pi / 2

	cosPitch := math.Cos(pitchRad)
	x := o.TargetX + r*math.Sin(yawRad)*cosPitch
	y := o.TargetY - r*math.Sin(pitchRad)
	z := o.TargetZ + r*math.Cos(yawRad)*cosPitch

	return Pose{X: x, Y: y, Z: z, Yaw: o.yaw, Pitch: o.pitch, Roll: 0}
}

// Apply installs the orbit's current pose onto s.
func (o *Orbit) Apply(s *State) {
	s.SetPose(o.Pose())
}
