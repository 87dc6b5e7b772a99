package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/snowfall/common"
)

func main() {
	debug := flag.Bool("debug", false, "draw the debug overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Uint64("seed", 0, "random seed for snow and puzzle shuffles (0 = time based)")
	scene := flag.String("scene", "", "scene file in prefabs/ (default scene.yaml)")
	watch := flag.Bool("watch", false, "reload prefabs/snow.yaml when it changes on disk")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("snowfall")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(Options{
		Seed:  *seed,
		Scene: *scene,
		Debug: *debug,
		Watch: *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
