// Command delilah-viewer is a desktop demo host for the delilah scene
// previewer: it opens a window, renders the loaded scene every frame, and
// drives the camera from keyboard input. With -headless it instead ticks
// the engine offscreen on a timer until -ticks frames have rendered (or,
// with -ticks 0, until interrupted), the way main_host.go's
// hal.RunHeadless lets the teacher's OS run without a window.
//
// This is the Go-native stand-in for the out-of-scope "host window" spec.md
// §1 names as an external collaborator, grounded on hal/host_window.go's
// ebiten.RunGame loop and hal/host_keyboard.go's arrow-key polling.
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/gogpu/gg"

	"delilah"
	"delilah/internal/buildinfo"
	"delilah/internal/config"
	"delilah/surface/ggsurface"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	engine := delilah.New()
	if cfg.ScenePath != "" {
		raw, err := os.ReadFile(cfg.ScenePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if !engine.LoadScene(raw) {
			fmt.Fprintln(os.Stderr, engine.LastError())
			os.Exit(1)
		}
	}

	if cfg.Headless {
		if err := runHeadless(engine, cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	g := newGame(engine, cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Delilah (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type game struct {
	engine       *delilah.Engine
	width        int
	height       int
	orbit        *orbitInput
	ctx          *gg.Context
	sfc          *ggsurface.Surface
	frame        *ebiten.Image
}

func newGame(engine *delilah.Engine, width, height int) *game {
	ctx := gg.NewContext(width, height)
	return &game{
		engine: engine,
		width:  width,
		height: height,
		orbit:  newOrbitInput(),
		ctx:    ctx,
		sfc:    ggsurface.New(ctx),
		frame:  ebiten.NewImage(width, height),
	}
}

func (g *game) Update() error {
	g.orbit.poll(g.engine)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.engine.Render(g.sfc, g.width, g.height)
	g.frame.WritePixels(rgbaBytes(g.ctx))
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func rgbaBytes(ctx *gg.Context) []byte {
	img := ctx.Image()
	b := img.Bounds()
	out := make([]byte, 0, b.Dx()*b.Dy()*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, gr, bl, a := img.At(x, y).RGBA()
			out = append(out, byte(r>>8), byte(gr>>8), byte(bl>>8), byte(a>>8))
		}
	}
	return out
}
