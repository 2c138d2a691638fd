package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-caves/config"
	"ebiten-caves/generation"
	"ebiten-caves/meshing"
)

func main() {
	presetID := flag.String("preset", "", "cave preset id from "+config.PresetDirectory)
	seed := flag.Int64("seed", 0, "fixed generation seed (0 picks a new one every run)")
	traversal := flag.String("traversal", config.DefaultTraversal, "solid merge order: rows, columns or spiral")
	width := flag.Int("width", config.MapWidth, "requested map width in tiles")
	height := flag.Int("height", config.MapHeight, "requested map height in tiles")
	flag.Parse()

	order, err := meshing.ParseTraversal(*traversal)
	if err != nil {
		log.Fatal(err)
	}

	caveConfig := generation.DefaultCaveConfig()

	presets := generation.NewCavePresetManager()
	if err := presets.LoadPresetsFromDirectory(config.PresetDirectory); err != nil {
		fmt.Printf("Warning: Failed to load cave presets: %v\n", err)
	}
	if *presetID != "" {
		preset := presets.GetPreset(*presetID)
		if preset == nil {
			log.Fatalf("unknown cave preset %q", *presetID)
		}
		caveConfig = preset.Apply(caveConfig)
		fmt.Println("INFO: Using cave preset", preset.Name)
	}

	if *seed != 0 {
		caveConfig.Seed = *seed
		caveConfig.UseRandomSeed = false
	}

	game, err := NewGame(caveConfig, order, *width, *height)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.GetWindowSize())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Ebiten Caves")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
