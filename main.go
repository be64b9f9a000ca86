package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/barrelclimb/levels"
)

func main() {
	debug := flag.Bool("debug", false, "draw colliders and log gameplay events")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	watch := flag.Bool("watch", false, "restart the scene when prefabs or levels change on disk")
	listLevels := flag.Bool("levels", false, "list the embedded levels and exit")
	flag.Parse()

	if *listLevels {
		names, err := levels.List()
		if err != nil {
			log.Fatal(err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(Options{Level: *levelName, Debug: *debug, Watch: *watch})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(windowSize(game.set.Game.Width, game.set.Game.Height))
	ebiten.SetWindowTitle(game.set.Game.Title)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// windowSize scales the internal resolution by the largest whole factor that
// fits the monitor.
func windowSize(w, h int) (int, int) {
	_, mh := ebiten.Monitor().Size()
	scale := 1
	for h*(scale+1) <= mh*9/10 {
		scale++
	}
	return w * scale, h * scale
}
