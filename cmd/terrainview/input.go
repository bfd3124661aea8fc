package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/memmaker/smoothterrain/engine/util"
	"github.com/memmaker/smoothterrain/engine/voxel"
)

const (
	minBrushRadius = 1
	maxBrushRadius = 24
)

// input handlers run on the main thread during PollEvents and only record state,
// the volume is edited in update.

func (v *viewer) handleKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		v.keys[key] = true
	case glfw.Release:
		v.keys[key] = false
		return
	default:
		return
	}

	switch key {
	case glfw.KeyEscape:
		v.app.Window.SetShouldClose(true)
	case glfw.KeyTab:
		v.setCaptured(!v.captured)
	case glfw.KeyF:
		v.gpu.Wireframe = !v.gpu.Wireframe
	case glfw.KeyF5:
		v.saveQueued = true
	case glfw.KeyG:
		v.exportQueued = true
	case glfw.KeyP:
		util.LogSystemInfo(fmt.Sprintf("[terrainview] %s, %d chunks on the gpu, %d colliders", v.camera.DebugAim(), v.gpu.ChunkCount(), v.colliders.Len()))
	case glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4, glfw.Key5, glfw.Key6, glfw.Key7:
		v.brushMaterial = voxel.Grass + voxel.Material(key-glfw.Key1)
		util.LogSystemInfo(fmt.Sprintf("[terrainview] brush material: %s", v.brushMaterial))
	}
}

func (v *viewer) setCaptured(captured bool) {
	v.captured = captured
	v.hasLastMouse = false
	if captured {
		v.app.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		v.app.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (v *viewer) handleMouseMove(xpos, ypos float64) {
	if !v.captured {
		v.lastMouse = [2]float64{xpos, ypos}
		return
	}
	if v.hasLastMouse {
		v.camera.ChangeAngles(float32(xpos-v.lastMouse[0]), float32(ypos-v.lastMouse[1]))
	}
	v.lastMouse = [2]float64{xpos, ypos}
	v.hasLastMouse = true
}

func (v *viewer) handleMouseButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	var kind editKind
	switch button {
	case glfw.MouseButtonLeft:
		kind = editDig
	case glfw.MouseButtonRight:
		kind = editBuild
	default:
		return
	}
	x, y := v.lastMouse[0], v.lastMouse[1]
	if v.captured {
		// crosshair
		x, y = float64(v.cfg.Viewer.Width)/2, float64(v.cfg.Viewer.Height)/2
	}
	start, end := v.camera.GetPickingRayFromScreenPosition(x, y, v.cfg.Viewer.ReachDistance)
	v.edits = append(v.edits, pendingEdit{kind: kind, rayStart: start, rayEnd: end})
}

func (v *viewer) handleScroll(xoff, yoff float64) {
	radius := v.brushRadius + float32(yoff)
	if radius < minBrushRadius {
		radius = minBrushRadius
	}
	if radius > maxBrushRadius {
		radius = maxBrushRadius
	}
	v.brushRadius = radius
	util.LogSystemInfo(fmt.Sprintf("[terrainview] brush radius: %.0f cells", radius))
}
