package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/motionlayer/prefabs"
)

func main() {
	file := flag.String("file", prefabs.DefaultOverrideFile, "override preset file")
	dir := flag.String("dir", prefabs.Dir, "directory searched for preset files and scripts")
	watch := flag.Bool("watch", true, "reload presets when files under -dir change")
	gravity := flag.Float64("gravity", 30, "downward gravity in units/s²")
	debug := flag.Bool("debug", false, "log directive lifecycle")
	flag.Parse()

	prefabs.Dir = *dir
	lib, err := prefabs.LoadLibrary(*file)
	if err != nil {
		log.Fatalf("overrideview: %v", err)
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(*dir, filepath.Join(*dir, "scripts"))
		if err != nil {
			log.Printf("overrideview: hot reload disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("motionlayer")
	ebiten.SetTPS(ticksPerSecond)

	game := NewGame(lib, watcher, *gravity, *debug)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
