// Package delilah is the public core of a software 3D scene previewer:
// load a scene description, hold a camera, and render it onto an abstract
// 2D drawing surface every frame.
//
// This is the Engine façade spec.md §9 asks a port to use in place of the
// reference's module-level globals: scene.Store, camera.State, and the
// Renderer are bundled into one explicitly-owned object instead of being
// process-wide state.
package delilah

import (
	"delilah/camera"
	"delilah/render"
	"delilah/scene"
	"delilah/sceneparser"
	"delilah/surface"
)

// Logger receives diagnostics for programmer errors the core detects.
// The Engine logs through it when the built-in default scene fails to
// build, just before panicking; SetCamera and SetProjection panic on an
// invalid argument without logging anything. Analogous to sparkos'
// hal.Logger: a minimal seam the host supplies, never a hard dependency on
// any particular logging library.
type Logger interface {
	Printf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Engine owns a loaded scene, the camera/projection/background state, and
// the renderer that paints them. The zero value is not valid; use New.
type Engine struct {
	store    *scene.Store
	cam      *camera.State
	renderer *render.Renderer
	logger   Logger
	lastErr  string
}

// New returns an Engine with the default scene loaded and a default
// camera (see camera.New).
func New() *Engine {
	e := &Engine{
		cam:      camera.New(),
		renderer: render.New(),
		logger:   nopLogger{},
	}
	e.LoadDefaultScene()
	return e
}

// SetLogger installs the sink for programmer-error diagnostics. A nil
// logger restores the no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	e.logger = l
}

// LoadScene parses raw as a scene file (spec.md §6's JSON grammar) and, on
// success, atomically replaces the loaded scene. On failure the previous
// scene is left intact and LastError reports why.
func (e *Engine) LoadScene(raw []byte) bool {
	st, err := sceneparser.Parse(raw)
	if err != nil {
		e.lastErr = err.Error()
		return false
	}
	e.store = st
	e.lastErr = ""
	return true
}

// LoadDefaultScene replaces the loaded scene with the built-in placeholder
// (spec.md §6's grid-plus-axis-line scene). It cannot fail.
func (e *Engine) LoadDefaultScene() {
	st, err := sceneparser.LoadDefaultScene()
	if err != nil {
		e.logger.Printf("delilah: default scene failed to build: %v", err)
		panic(err)
	}
	e.store = st
	e.lastErr = ""
}

// LastError returns the message from the most recent failed LoadScene
// call, or "" if the last LoadScene call succeeded, none has been made, or
// LoadDefaultScene has run since (it clears the message).
func (e *Engine) LastError() string {
	return e.lastErr
}

// Render clears surface to the background color and paints the loaded
// scene. width and height must each be at least 2.
func (e *Engine) Render(sfc surface.Surface, width, height int) {
	e.renderer.Render(sfc, e.store, e.cam, width, height)
}

// Background returns the current background color.
func (e *Engine) Background() camera.RGB { return e.cam.Background() }

// SetBackground sets the background color.
func (e *Engine) SetBackground(c camera.RGB) { e.cam.SetBackground(c) }

// Camera returns the current camera pose.
func (e *Engine) Camera() camera.Pose { return e.cam.Pose() }

// SetCamera validates and installs a new camera pose. It panics (via
// camera.State.SetPose) on an invalid pose.
func (e *Engine) SetCamera(p camera.Pose) {
	e.cam.SetPose(p)
}

// Projection returns the current projection parameters.
func (e *Engine) Projection() camera.Projection { return e.cam.Projection() }

// SetProjection validates and installs new projection parameters. It
// panics (via camera.State.SetProjection) on an invalid projection.
func (e *Engine) SetProjection(p camera.Projection) {
	e.cam.SetProjection(p)
}
