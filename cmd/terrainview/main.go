package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/faiface/mainthread"
	"github.com/memmaker/smoothterrain/engine/config"
	"github.com/memmaker/smoothterrain/engine/terrain"
	"github.com/memmaker/smoothterrain/engine/util"
	"github.com/memmaker/smoothterrain/engine/voxel"
)

func main() {
	var (
		configPath = flag.String("config", "", "scene configuration (yaml), defaults are used when empty")
		loadPath   = flag.String("load", "", "open this snapshot instead of building the scene")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "terrainview:", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if err := cfg.Log.Apply(); err != nil {
		fmt.Fprintln(os.Stderr, "terrainview:", err)
		os.Exit(1)
	}

	volume, err := buildVolume(cfg, *loadPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "terrainview:", err)
		os.Exit(1)
	}

	var runErr error
	mainthread.Run(func() {
		runErr = runViewer(cfg, volume)
	})
	if runErr != nil {
		fmt.Fprintln(os.Stderr, "terrainview:", runErr)
		os.Exit(1)
	}
}

func buildVolume(cfg config.Config, loadPath string) (*voxel.Volume, error) {
	if loadPath != "" {
		volume, err := voxel.LoadVolumeFromFile(loadPath)
		if err != nil {
			return nil, err
		}
		volume.SetWorkers(cfg.Volume.Workers)
		return volume, nil
	}
	volume := voxel.NewVolume()
	volume.SetWorkers(cfg.Volume.Workers)
	if err := terrain.ApplyScene(volume, cfg.Scene); err != nil {
		return nil, err
	}
	stats := volume.Stats()
	util.LogSystemInfo(fmt.Sprintf("[terrainview] scene ready: %d chunks, %d occupied cells", stats.Chunks, stats.OccupiedCells))
	return volume, nil
}
