package main

import (
	"fmt"

	"github.com/faiface/mainthread"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/smoothterrain/engine/config"
	"github.com/memmaker/smoothterrain/engine/glhf"
	"github.com/memmaker/smoothterrain/engine/meshio"
	"github.com/memmaker/smoothterrain/engine/physics"
	"github.com/memmaker/smoothterrain/engine/terrain"
	"github.com/memmaker/smoothterrain/engine/util"
	"github.com/memmaker/smoothterrain/engine/voxel"
)

type editKind int

const (
	editDig editKind = iota
	editBuild
)

type pendingEdit struct {
	kind     editKind
	rayStart mgl32.Vec3
	rayEnd   mgl32.Vec3
}

type viewer struct {
	cfg       config.Config
	app       *glhf.GlApplication
	volume    *voxel.Volume
	gpu       *glhf.TerrainRenderer
	colliders *physics.ColliderSet
	camera    *util.FPSCamera
	timer     *util.Timer

	brushMaterial voxel.Material
	brushRadius   float32

	keys         map[glfw.Key]bool
	captured     bool
	lastMouse    [2]float64
	hasLastMouse bool
	edits        []pendingEdit
	saveQueued   bool
	exportQueued bool
}

func runViewer(cfg config.Config, volume *voxel.Volume) error {
	brushMaterial, err := voxel.ParseMaterial(cfg.Viewer.BrushMaterial)
	if err != nil {
		return err
	}
	v := &viewer{
		cfg:           cfg,
		volume:        volume,
		colliders:     physics.NewColliderSet(),
		timer:         util.NewTimer(),
		brushMaterial: brushMaterial,
		brushRadius:   cfg.Viewer.BrushRadius,
		keys:          make(map[glfw.Key]bool),
	}

	var initErr error
	mainthread.Call(func() {
		initErr = v.initWindow()
	})
	if initErr != nil {
		return initErr
	}

	v.app.Run()
	util.LogSystemInfo("[terrainview] timings\n" + v.timer.String())
	return nil
}

func (v *viewer) initWindow() error {
	window, terminate, err := glhf.InitOpenGL(v.cfg.Viewer.Title, v.cfg.Viewer.Width, v.cfg.Viewer.Height)
	if err != nil {
		return err
	}
	gpu, err := glhf.NewTerrainRenderer()
	if err != nil {
		terminate()
		return err
	}
	v.gpu = gpu
	v.camera = util.NewFPSCamera(mgl32.Vec3(v.cfg.Viewer.CameraStart), v.cfg.Viewer.Width, v.cfg.Viewer.Height, 0.1)
	v.camera.SetFOV(v.cfg.Viewer.FieldOfView)
	v.camera.SetLookTarget(mgl32.Vec3{})

	v.app = &glhf.GlApplication{
		Window:       window,
		WindowWidth:  v.cfg.Viewer.Width,
		WindowHeight: v.cfg.Viewer.Height,
		Title:        v.cfg.Viewer.Title,
		ClearColor:   [3]float32{0.55, 0.7, 0.85},
		TerminateFunc: func() {
			v.gpu.Release()
			terminate()
		},
		UpdateFunc:         v.update,
		DrawFunc:           v.draw,
		KeyHandler:         v.handleKey,
		MousePosHandler:    v.handleMouseMove,
		MouseButtonHandler: v.handleMouseButton,
		ScrollHandler:      v.handleScroll,
	}
	v.app.RegisterCallbacks()
	return nil
}

// update runs off the main thread; the renderer hands its GL work over by itself.
func (v *viewer) update(elapsed float64) {
	v.moveCamera(float32(elapsed))

	edits := v.edits
	v.edits = nil
	for _, edit := range edits {
		v.applyEdit(edit)
	}

	stop := v.timer.Start("rebuild")
	focus := voxel.ChunkCoordOf(voxel.WorldToCell(v.camera.GetPosition()))
	if _, err := v.volume.RebuildDirtyNear(voxel.MultiRenderer{v.gpu, v.colliders}, focus, v.cfg.Viewer.RebuildBudget); err != nil {
		util.LogMeshError(fmt.Sprintf("[terrainview] %v", err))
	}
	stop()

	if v.saveQueued {
		v.saveQueued = false
		v.saveSnapshot()
	}
	if v.exportQueued {
		v.exportQueued = false
		v.exportGLB()
	}
}

func (v *viewer) draw(elapsed float64) {
	stop := v.timer.Start("draw")
	v.gpu.Draw(v.camera.GetViewMatrix(), v.camera.GetProjectionMatrix())
	stop()
}

func (v *viewer) moveCamera(elapsed float32) {
	dir := [3]int{}
	if v.keys[glfw.KeyW] {
		dir[1]++
	}
	if v.keys[glfw.KeyS] {
		dir[1]--
	}
	if v.keys[glfw.KeyD] {
		dir[0]++
	}
	if v.keys[glfw.KeyA] {
		dir[0]--
	}
	if v.keys[glfw.KeySpace] {
		dir[2]++
	}
	if v.keys[glfw.KeyLeftShift] {
		dir[2]--
	}
	if dir != [3]int{} {
		v.camera.Move(v.cfg.Viewer.MoveSpeed*elapsed, dir)
	}
}

// pick finds the surface point hit by the ray. The collision meshes give the
// exact surface, the cell raycast covers chunks that have not been meshed yet.
func (v *viewer) pick(rayStart, rayEnd mgl32.Vec3) (mgl32.Vec3, bool) {
	if hit, point := v.colliders.IntersectsRay(rayStart, rayEnd); hit {
		return point, true
	}
	hit := v.volume.Raycast(rayStart, rayEnd)
	if !hit.Hit {
		return mgl32.Vec3{}, false
	}
	return hit.Position, true
}

func (v *viewer) applyEdit(edit pendingEdit) {
	point, ok := v.pick(edit.rayStart, edit.rayEnd)
	if !ok {
		return
	}
	dir := edit.rayEnd.Sub(edit.rayStart).Normalize()
	switch edit.kind {
	case editDig:
		center := worldToCellSpace(point.Add(dir.Mul(voxel.CELL_SIZE * 0.5)))
		terrain.CarveSphere(v.volume, center, v.brushRadius)
		util.LogVoxelInfo(fmt.Sprintf("[terrainview] dug at %v", center))
	case editBuild:
		center := worldToCellSpace(point.Sub(dir.Mul(voxel.CELL_SIZE * 0.5)))
		terrain.AddSphere(v.volume, center, v.brushRadius, v.brushMaterial)
		util.LogVoxelInfo(fmt.Sprintf("[terrainview] placed %s at %v", v.brushMaterial, center))
	}
}

func worldToCellSpace(p mgl32.Vec3) mgl32.Vec3 {
	return p.Sub(mgl32.Vec3{voxel.CELL_CENTER_OFFSET, voxel.CELL_CENTER_OFFSET, voxel.CELL_CENTER_OFFSET}).Mul(1.0 / voxel.CELL_SIZE)
}

func (v *viewer) saveSnapshot() {
	path := v.cfg.Output.Snapshot
	if path == "" {
		path = "terrain.snap"
	}
	if err := v.volume.SaveToFile(path); err != nil {
		util.LogIOError(fmt.Sprintf("[terrainview] save failed: %v", err))
		return
	}
	util.LogIOInfo(fmt.Sprintf("[terrainview] saved %s", path))
}

func (v *viewer) exportGLB() {
	path := v.cfg.Output.GLB
	if path == "" {
		path = "terrain.glb"
	}
	// flush deferred chunks through the renderers first, VolumeMeshes would mesh them without uploading
	err := v.volume.RebuildDirty(voxel.MultiRenderer{v.gpu, v.colliders})
	var meshes []meshio.NamedMesh
	if err == nil {
		meshes, err = meshio.VolumeMeshes(v.volume)
	}
	if err == nil {
		err = meshio.ExportGLBFile(path, meshes)
	}
	if err != nil {
		util.LogIOError(fmt.Sprintf("[terrainview] export failed: %v", err))
		return
	}
	util.LogIOInfo(fmt.Sprintf("[terrainview] exported %s", path))
}
