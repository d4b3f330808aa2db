package render

import (
	"math"

	"delilah/camera"
	"delilah/mat4"
)

// buildView constructs the inverse of the camera's pose: translate to the
// origin, then undo yaw/pitch/roll in the reverse of the order the pose
// applies them (the pose applies roll, pitch, yaw, then translate).
func buildView(p camera.Pose) mat4.M {
	return mat4.Identity().
		Translate(-p.X, -p.Y, -p.Z).
		RotateY(-p.Yaw * 2 * math.Pi).
		RotateX(-p.Pitch * math.Pi / 2).
		RotateZ(-p.Roll * 2 * math.Pi)
}

// buildProjection constructs the pinhole projection for a w x h viewport:
// perspective divide at distance d, then flip Y into screen-down and
// recenter into pixel coordinates.
func buildProjection(proj camera.Projection, width, height float64) mat4.M {
	d := pinholeDistance(proj)
	return mat4.Identity().
		Perspective(d).
		Scale(width/2, -height/2, 1).
		Translate(width/2, height/2, 0)
}

func pinholeDistance(proj camera.Projection) float64 {
	return 1 / math.Tan(proj.FOV*math.Pi/2)
}
