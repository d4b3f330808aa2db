package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"delilah"
	"delilah/camera"
)

// orbitInput drives the engine's camera from the arrow keys and +/-,
// trimmed from hal/host_keyboard.go's ebiten.IsKeyPressed polling down to
// just the keys an orbit camera needs.
type orbitInput struct {
	orbit camera.Orbit
}

func newOrbitInput() *orbitInput {
	return &orbitInput{orbit: camera.Orbit{Radius: 40, MinRadius: 5, MaxRadius: 200}}
}

const orbitTurnPerFrame = 0.004

func (o *orbitInput) poll(engine *delilah.Engine) {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		o.orbit.Rotate(-orbitTurnPerFrame, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		o.orbit.Rotate(orbitTurnPerFrame, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		o.orbit.Rotate(0, orbitTurnPerFrame)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		o.orbit.Rotate(0, -orbitTurnPerFrame)
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) {
		o.orbit.Zoom(-0.5)
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) {
		o.orbit.Zoom(0.5)
	}

	engine.SetCamera(o.orbit.Pose())
}
