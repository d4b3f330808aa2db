// Package camera holds a scene's viewpoint and lens state, the CameraState
// component spec.md §2 assigns 10% of the core: background color, camera
// pose, and projection parameters, with validated setters.
//
// This mirrors sparkos/quarkgl's Camera/Scalar pairing (camera.go holds
// state, controls.go's OrbitController builds a pose from it), generalized
// from quarkgl's look-at Position/Target/Up triple to the normalized-turn
// yaw/pitch/roll pose spec.md §4.1 specifies.
package camera

import (
	"fmt"
	"math"
)

// RGB is an 8-bit-per-channel color, the external boundary representation
// spec.md §6's public API uses (15-bit hicolor packing is an internal
// render-time detail, not exposed here).
type RGB struct {
	R, G, B uint8
}

// Pose is the camera's worldspace position and orientation.
type Pose struct {
	X, Y, Z          float64
	Yaw, Pitch, Roll float64 // normalized turns: yaw,roll in [0,1); pitch in [-1,1]
}

// Projection is the lens state: field of view plus near/far clip planes.
type Projection struct {
	FOV  float64 // normalized half-turn, (0,1) exclusive
	Near float64
	Far  float64
}

// State is a scene's camera, projection, and background color. The zero
// value is not valid; use New.
type State struct {
	background RGB
	pose       Pose
	proj       Projection
}

// New returns a State with a sane default pose: identity camera at the
// origin, the default-scene projection spec.md §8's S1 fixture uses
// (far=-100, near=0, fov=0.25), and mid-gray background.
func New() *State {
	return &State{
		background: RGB{170, 170, 170},
		pose:       Pose{},
		proj:       Projection{FOV: 0.25, Near: 0, Far: -100},
	}
}

// Background returns the current background color.
func (s *State) Background() RGB { return s.background }

// SetBackground sets the background color. 8-bit RGB has no invalid range,
// so this never panics.
func (s *State) SetBackground(c RGB) { s.background = c }

// Pose returns a copy of the current camera pose.
func (s *State) Pose() Pose { return s.pose }

// SetPose validates and installs a new camera pose. It panics on an
// invalid pose: per spec.md §6, setters reject bad input as a programmer
// error, unlike load_scene's soft failure.
func (s *State) SetPose(p Pose) {
	if err := validatePose(p); err != nil {
		panic(err)
	}
	s.pose = p
}

// Projection returns a copy of the current projection state.
func (s *State) Projection() Projection { return s.proj }

// SetProjection validates and installs new projection parameters. It
// panics on an invalid projection.
func (s *State) SetProjection(p Projection) {
	if err := validateProjection(p); err != nil {
		panic(err)
	}
	s.proj = p
}

func validatePose(p Pose) error {
	if !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
		return fmt.Errorf("camera position must be finite")
	}
	if p.Yaw < 0 || p.Yaw >= 1 {
		return fmt.Errorf("camera yaw must be in [0,1)")
	}
	if p.Roll < 0 || p.Roll >= 1 {
		return fmt.Errorf("camera roll must be in [0,1)")
	}
	if p.Pitch < -1 || p.Pitch > 1 {
		return fmt.Errorf("camera pitch must be in [-1,1]")
	}
	return nil
}

// validateProjection enforces spec.md §4.1: fov in (0,1) exclusive, and
// far < near < 1/tan(fov*pi/2) (the near-plane bound keeps the pinhole
// matrix's 1/d term finite).
func validateProjection(p Projection) error {
	if p.FOV <= 0 || p.FOV >= 1 {
		return fmt.Errorf("projection fov must be in (0,1)")
	}
	d := 1 / math.Tan(p.FOV*math.Pi/2)
	if !finite(d) {
		return fmt.Errorf("projection fov produces a non-finite pinhole distance")
	}
	if !(p.Far < p.Near && p.Near < d) {
		return fmt.Errorf("projection must satisfy far < near < 1/tan(fov*pi/2)")
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
