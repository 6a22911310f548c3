// Command parallax-tty runs the parallax scene in a terminal. Each cell
// stands for a block of viewport pixels; key releases are synthesized on the
// poll after the press since terminals do not report them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/parallax/prefabs"
	"github.com/milk9111/parallax/system"
)

const frameInterval = 16 * time.Millisecond

func main() {
	sceneName := flag.String("scene", prefabs.DefaultScene, "scene file in the prefabs directory")
	dir := flag.String("dir", prefabs.Dir, "directory whose files shadow the embedded prefabs")
	seed := flag.Uint64("seed", 0, "shake jitter seed (0 picks one at random)")
	mute := flag.Bool("mute", false, "do not beep on camera shake")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	prefabs.Dir = *dir

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

	if err := run(scene, *logPath, !*mute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(scene *system.Scene, logPath string, sound bool) error {
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	driver := system.NewDriver(scene)
	if sound {
		driver.OnShake = newBeeper().Play
	}

	src := newTermSource(events, screen.Sync)
	sink := newTermSink(screen, scene.Camera.Viewport())

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for range ticker.C {
		err := driver.Tick(src, sink)
		if errors.Is(err, system.ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		screen.Show()
	}
	return nil
}
