package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/memmaker/smoothterrain/engine/config"
	"github.com/memmaker/smoothterrain/engine/meshio"
	"github.com/memmaker/smoothterrain/engine/terrain"
	"github.com/memmaker/smoothterrain/engine/util"
	"github.com/memmaker/smoothterrain/engine/voxel"
)

func main() {
	var (
		configPath = flag.String("config", "", "scene configuration (yaml), defaults are used when empty")
		loadPath   = flag.String("load", "", "start from this snapshot instead of an empty volume")
		savePath   = flag.String("save", "", "write the resulting volume snapshot here (overrides output.snapshot)")
		glbPath    = flag.String("glb", "", "export the chunk meshes as binary glTF here (overrides output.glb)")
		noScene    = flag.Bool("no-scene", false, "skip the scene shapes, useful together with -load")
	)
	flag.Parse()

	if err := run(*configPath, *loadPath, *savePath, *glbPath, *noScene); err != nil {
		fmt.Fprintln(os.Stderr, "terraintool:", err)
		os.Exit(1)
	}
}

func run(configPath, loadPath, savePath, glbPath string, noScene bool) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.Log.Apply(); err != nil {
		return err
	}
	if savePath == "" {
		savePath = cfg.Output.Snapshot
	}
	if glbPath == "" {
		glbPath = cfg.Output.GLB
	}

	timer := util.NewTimer()
	volume := voxel.NewVolume()
	if loadPath != "" {
		stop := timer.Start("load")
		loaded, err := voxel.LoadVolumeFromFile(loadPath)
		if err != nil {
			return err
		}
		volume = loaded
		stop()
	}
	volume.SetWorkers(cfg.Volume.Workers)

	if !noScene {
		stop := timer.Start("scene")
		if err := terrain.ApplyScene(volume, cfg.Scene); err != nil {
			return err
		}
		stop()
	}

	stop := timer.Start("rebuild")
	if err := volume.RebuildDirty(nil); err != nil {
		return err
	}
	stop()

	stats := volume.Stats()
	util.LogSystemInfo(fmt.Sprintf("[terraintool] %d chunks, %d occupied cells, %d triangles", stats.Chunks, stats.OccupiedCells, stats.Triangles))

	if savePath != "" {
		stop := timer.Start("save")
		if err := volume.SaveToFile(savePath); err != nil {
			return err
		}
		stop()
		util.LogIOInfo(fmt.Sprintf("[terraintool] snapshot written to %s", savePath))
	}
	if glbPath != "" {
		stop := timer.Start("export")
		meshes, err := meshio.VolumeMeshes(volume)
		if err != nil {
			return err
		}
		if err := meshio.ExportGLBFile(glbPath, meshes); err != nil {
			return err
		}
		stop()
		util.LogIOInfo(fmt.Sprintf("[terraintool] %d meshes exported to %s", len(meshes), glbPath))
	}
	util.LogSystemInfo("[terraintool] timings\n" + timer.String())
	return nil
}
