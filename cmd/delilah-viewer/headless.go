package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gogpu/gg"

	"delilah"
	"delilah/internal/config"
	"delilah/surface/ggsurface"
)

// runHeadless ticks the engine offscreen at cfg.Hz until cfg.Ticks frames
// have rendered (0 = run forever) or the process receives an interrupt,
// the no-window mirror of main_host.go's hal.RunHeadless.
func runHeadless(engine *delilah.Engine, cfg config.Config) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctxt := gg.NewContext(cfg.Width, cfg.Height)
	sfc := ggsurface.New(ctxt)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			engine.Render(sfc, cfg.Width, cfg.Height)
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
