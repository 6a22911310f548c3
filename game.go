package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/parallax/common"
	"github.com/milk9111/parallax/prefabs"
	"github.com/milk9111/parallax/system"
)

type Game struct {
	driver    *system.Driver
	source    *keySource
	sceneName string
	viewport  common.Size

	watcher *prefabs.Watcher

	debug   bool
	overlay *debugUI

	focused bool
}

func NewGame(scene *system.Scene, sceneName string, debug bool) *Game {
	g := &Game{
		driver:    system.NewDriver(scene),
		source:    &keySource{},
		sceneName: sceneName,
		viewport:  scene.Camera.Viewport(),
		debug:     debug,
		focused:   true,
	}
	if debug {
		g.overlay = newDebugUI()
	}
	return g
}

// Watch starts reloading the static batch and background whenever the scene
// or a layout script changes on disk.
func (g *Game) Watch() error {
	w, err := prefabs.WatchScene(g.sceneName)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	focused := ebiten.IsFocused()
	if g.focused && !focused {
		// Key-ups that happen while unfocused are never delivered.
		g.driver.Release()
	}
	g.focused = focused

	g.pollReload()

	if err := g.driver.Update(g.source.Poll()); err != nil {
		if errors.Is(err, system.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}

	if g.overlay != nil {
		g.overlay.Refresh(g.driver)
		g.overlay.ui.Update()
	}
	return nil
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	spec, err := prefabs.LoadSceneSpec(change.Scene)
	if err != nil {
		log.Printf("reload %s after %s change %s: %v", change.Scene, change.Kind, change.Path, err)
		return
	}
	if err := g.driver.Reload(spec); err != nil {
		log.Printf("reload %s after %s change %s: %v", change.Scene, change.Kind, change.Path, err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.driver.Draw(screenSink{screen: screen})

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.driver.Frame(), ebiten.ActualFPS()))
	}
	if g.overlay != nil {
		g.overlay.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.viewport.Width), float64(g.viewport.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// screenSink draws projected rectangles onto an ebiten image.
type screenSink struct {
	screen *ebiten.Image
}

func (s screenSink) Clear(c color.Color) {
	s.screen.Fill(c)
}

func (s screenSink) FillRect(r common.Rect, c color.Color) {
	vector.FillRect(s.screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}
