package util

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// FPSCamera is a free flying camera steered by yaw (rotatex) and pitch (rotatey) in degrees.
type FPSCamera struct {
	position        mgl32.Vec3
	cameraFront     mgl32.Vec3
	cameraRight     mgl32.Vec3
	cameraUp        mgl32.Vec3
	rotatex         float32
	rotatey         float32
	lookSensitivity float32
	invertedY       bool
	fov             float32
	nearPlaneDist   float32
	farPlaneDist    float32
	windowWidth     int
	windowHeight    int
}

func NewFPSCamera(pos mgl32.Vec3, windowWidth, windowHeight int, sensitivity float32) *FPSCamera {
	f := &FPSCamera{
		position:        pos,
		lookSensitivity: sensitivity,
		rotatey:         0,
		rotatex:         -90,
		invertedY:       true,
		fov:             60,
		nearPlaneDist:   0.1,
		farPlaneDist:    2000,
		windowWidth:     windowWidth,
		windowHeight:    windowHeight,
	}
	f.updateTransform()
	return f
}

func (c *FPSCamera) GetPosition() mgl32.Vec3 {
	return c.position
}

func (c *FPSCamera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

func (c *FPSCamera) GetFront() mgl32.Vec3 {
	return c.cameraFront
}

func (c *FPSCamera) GetUp() mgl32.Vec3 {
	return c.cameraUp
}

func (c *FPSCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.cameraFront), c.cameraUp)
}

func (c *FPSCamera) GetProjectionMatrix() mgl32.Mat4 {
	aspect := float32(c.windowWidth) / float32(c.windowHeight)
	return mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, c.nearPlaneDist, c.farPlaneDist)
}

func (c *FPSCamera) GetProjectionViewMatrix() mgl32.Mat4 {
	return c.GetProjectionMatrix().Mul4(c.GetViewMatrix())
}

// GetPickingRayFromScreenPosition turns a window position in pixels into a world space ray.
func (c *FPSCamera) GetPickingRayFromScreenPosition(x, y float64, rayLength float32) (mgl32.Vec3, mgl32.Vec3) {
	// normalize x and y to -1..1
	normalizedX := (float32(x)/float32(c.windowWidth))*2 - 1
	normalizedY := ((float32(y)/float32(c.windowHeight))*2 - 1) * -1

	return GetRayFromCameraPlane(c, normalizedX, normalizedY, rayLength)
}

// Move walks along the camera axes. dir is (right, forward, up), each -1, 0 or 1.
func (c *FPSCamera) Move(delta float32, dir [3]int) {
	moveVector := mgl32.Vec3{0, 0, 0}
	if dir[0] != 0 {
		moveVector = moveVector.Add(c.cameraRight.Mul(float32(dir[0]) * delta))
	}
	if dir[1] != 0 {
		moveVector = moveVector.Add(c.cameraFront.Mul(float32(dir[1]) * delta))
	}
	if dir[2] != 0 {
		moveVector = moveVector.Add(mgl32.Vec3{0, 1, 0}.Mul(float32(dir[2]) * delta))
	}
	c.position = c.position.Add(moveVector)
}

// ChangeAngles changes the camera's angles by dx and dy.
// Used for mouse look.
func (c *FPSCamera) ChangeAngles(dx, dy float32) {
	if mgl32.Abs(dx) > 200 || mgl32.Abs(dy) > 200 {
		return
	}
	c.rotatex += dx * c.lookSensitivity
	yChange := dy * c.lookSensitivity
	if c.invertedY {
		c.rotatey -= yChange
	} else {
		c.rotatey += yChange
	}

	c.updateTransform()
}

func (c *FPSCamera) SetInvertedY(inverted bool) {
	c.invertedY = inverted
}

func (c *FPSCamera) SetLookTarget(position mgl32.Vec3) {
	front := position.Sub(c.position).Normalize()
	c.rotatex = mgl32.RadToDeg(Atan2(front.Z(), front.X()))
	c.rotatey = mgl32.RadToDeg(Asin(front.Y()))
	c.updateTransform()
}

func (c *FPSCamera) GetRotation() (float32, float32) {
	return c.rotatex, c.rotatey
}

func (c *FPSCamera) SetFOV(fov float32) {
	c.fov = fov
}

func (c *FPSCamera) GetFOV() float32 {
	return c.fov
}

func (c *FPSCamera) SetScreenSize(width int, height int) {
	c.windowWidth = width
	c.windowHeight = height
}

func (c *FPSCamera) updateTransform() {
	if c.rotatey > 89 {
		c.rotatey = 89
	}
	if c.rotatey < -89 {
		c.rotatey = -89
	}
	front := mgl32.Vec3{
		Cos(ToRadian(c.rotatey)) * Cos(ToRadian(c.rotatex)),
		Sin(ToRadian(c.rotatey)),
		Cos(ToRadian(c.rotatey)) * Sin(ToRadian(c.rotatex)),
	}
	c.cameraFront = front.Normalize()
	c.cameraRight = c.cameraFront.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	c.cameraUp = c.cameraRight.Cross(c.cameraFront).Normalize()
}

func (c *FPSCamera) DebugAim() string {
	pos := c.position
	return fmt.Sprintf("Pos: (%0.2f, %0.2f, %0.2f) Aim: (%0.2f, %0.2f)", pos.X(), pos.Y(), pos.Z(), c.rotatex, c.rotatey)
}
