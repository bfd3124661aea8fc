package util

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Camera interface {
	GetViewMatrix() mgl32.Mat4
	GetProjectionMatrix() mgl32.Mat4
	GetPosition() mgl32.Vec3
	GetFront() mgl32.Vec3
}

// GetRayFromCameraPlane unprojects a point given in normalized device
// coordinates (-1..1) and returns a ray of rayLength starting on the near plane.
func GetRayFromCameraPlane(cam Camera, normalizedX, normalizedY, rayLength float32) (mgl32.Vec3, mgl32.Vec3) {
	projViewInverted := cam.GetProjectionMatrix().Mul4(cam.GetViewMatrix()).Inv()

	nearWorldPos := projViewInverted.Mul4x1(mgl32.Vec4{normalizedX, normalizedY, -1, 1})
	farWorldPos := projViewInverted.Mul4x1(mgl32.Vec4{normalizedX, normalizedY, 1, 1})
	// perspective divide
	rayStart := nearWorldPos.Vec3().Mul(1 / nearWorldPos.W())
	farPosCorrected := farWorldPos.Vec3().Mul(1 / farWorldPos.W())
	dir := farPosCorrected.Sub(rayStart).Normalize()
	return rayStart, rayStart.Add(dir.Mul(rayLength))
}
