package main

import (
	"errors"
	"flag"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parallax/prefabs"
	"github.com/milk9111/parallax/system"
)

func main() {
	sceneName := flag.String("scene", prefabs.DefaultScene, "scene file in the prefabs directory")
	dir := flag.String("dir", prefabs.Dir, "directory whose files shadow the embedded prefabs")
	watch := flag.Bool("watch", false, "reload statics when the scene or its layout script changes")
	debug := flag.Bool("debug", false, "show the debug overlay")
	seed := flag.Uint64("seed", 0, "shake jitter seed (0 picks one at random)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	prefabs.Dir = *dir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	spec, err := prefabs.LoadSceneSpec(*sceneName)
	if err != nil {
		log.Fatal(err)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}
	scene, err := system.BuildScene(spec, rng)
	if err != nil {
		log.Fatal(err)
	}

	game := NewGame(scene, *sceneName, *debug)
	if *watch {
		if err := game.Watch(); err != nil {
			log.Printf("watch disabled: %v", err)
		}
	}
	defer game.Close()

	ebiten.SetWindowSize(spec.Viewport.Width, spec.Viewport.Height)
	ebiten.SetWindowTitle(spec.Name)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
