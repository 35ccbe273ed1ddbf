// Package camera implements a first-person fly camera that caches one world-space
// ray direction per viewport pixel.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"sphere-raycaster/internal/input"
	"sphere-raycaster/internal/mathutil"
)

const (
	// MouseSensitivity scales raw mouse deltas (pixels) before rotation.
	MouseSensitivity = float32(0.002)

	// MoveSpeed is the translation speed in world units per second.
	MoveSpeed = float32(5.0)

	rotationSpeed = float32(3.0)
)

// Camera owns view/projection transforms and the per-pixel ray-direction cache.
// It is not safe for concurrent use.
type Camera struct {
	input input.Input

	verticalFOV float32
	nearClip    float32
	farClip     float32

	viewportWidth  int
	viewportHeight int

	position  mgl32.Vec3
	forward   mgl32.Vec3
	lastMouse mgl32.Vec2

	projection        mgl32.Mat4
	inverseProjection mgl32.Mat4
	view              mgl32.Mat4
	inverseView       mgl32.Mat4

	rayDirections []mgl32.Vec3
}

// Option configures a Camera at construction.
type Option func(*Camera)

// WithPosition overrides the default eye position (0, 0, 6).
func WithPosition(p mgl32.Vec3) Option {
	return func(c *Camera) { c.position = p }
}

// WithDirection overrides the default forward direction (0, 0, -1).
// The vector is used as given.
func WithDirection(d mgl32.Vec3) Option {
	return func(c *Camera) { c.forward = d }
}

// New creates a camera polling in. verticalFOV is in degrees.
// The viewport is empty until the first OnResize.
func New(in input.Input, verticalFOV, nearClip, farClip float32, opts ...Option) *Camera {
	c := &Camera{
		input:             in,
		verticalFOV:       verticalFOV,
		nearClip:          nearClip,
		farClip:           farClip,
		position:          mgl32.Vec3{0, 0, 6},
		forward:           mathutil.WorldForward,
		projection:        mgl32.Ident4(),
		inverseProjection: mgl32.Ident4(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.recalculateView()
	return c
}

// OnUpdate polls input and applies one frame of movement. ts is the elapsed time
// in seconds. It reports whether the camera moved; when it did, the view matrix
// and ray cache have been rebuilt.
func (c *Camera) OnUpdate(ts float32) bool {
	mousePos := c.input.MousePosition()
	delta := mousePos.Sub(c.lastMouse).Mul(MouseSensitivity)
	c.lastMouse = mousePos

	if !c.input.IsMouseButtonDown(input.MouseButtonRight) {
		c.input.SetCursorMode(input.CursorModeNormal)
		return false
	}
	c.input.SetCursorMode(input.CursorModeLocked)

	moved := false

	up := mathutil.WorldUp
	right := c.forward.Cross(up)
	step := MoveSpeed * ts

	// Opposite keys are else-if pairs: the first key of a pair wins.
	if c.input.IsKeyDown(input.KeyW) {
		c.position = c.position.Add(c.forward.Mul(step))
		moved = true
	} else if c.input.IsKeyDown(input.KeyS) {
		c.position = c.position.Sub(c.forward.Mul(step))
		moved = true
	}
	if c.input.IsKeyDown(input.KeyA) {
		c.position = c.position.Sub(right.Mul(step))
		moved = true
	} else if c.input.IsKeyDown(input.KeyD) {
		c.position = c.position.Add(right.Mul(step))
		moved = true
	}
	if c.input.IsKeyDown(input.KeyQ) {
		c.position = c.position.Sub(up.Mul(step))
		moved = true
	} else if c.input.IsKeyDown(input.KeyE) {
		c.position = c.position.Add(up.Mul(step))
		moved = true
	}

	if delta.X() != 0 || delta.Y() != 0 {
		pitchDelta := delta.Y() * c.RotationSpeed()
		yawDelta := delta.X() * c.RotationSpeed()

		// right is from the pre-rotation forward, so pitch and yaw share one basis.
		q := mathutil.ComposeAxisAngles(-pitchDelta, right, -yawDelta, up)
		c.forward = q.Rotate(c.forward)
		moved = true
	}

	if moved {
		c.recalculateView()
		c.recalculateRayDirections()
	}
	return moved
}

// OnResize sets the viewport size in pixels. Negative sizes are treated as 0.
// Same-size calls are no-ops.
func (c *Camera) OnResize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.viewportWidth && height == c.viewportHeight {
		return
	}
	c.viewportWidth = width
	c.viewportHeight = height

	c.recalculateProjection()
	c.recalculateRayDirections()
}

// Projection is the perspective matrix for the current viewport.
func (c *Camera) Projection() mgl32.Mat4 { return c.projection }

// InverseProjection maps clip space back to view space.
func (c *Camera) InverseProjection() mgl32.Mat4 { return c.inverseProjection }

// View is the world-to-view matrix.
func (c *Camera) View() mgl32.Mat4 { return c.view }

// InverseView maps view space back to world space.
func (c *Camera) InverseView() mgl32.Mat4 { return c.inverseView }

// Position is the eye position in world space.
func (c *Camera) Position() mgl32.Vec3 { return c.position }

// Direction is the forward vector.
func (c *Camera) Direction() mgl32.Vec3 { return c.forward }

// RayDirections returns the cached world-space direction for each pixel, indexed
// x + y*width. The slice is owned by the camera and must not be modified.
func (c *Camera) RayDirections() []mgl32.Vec3 { return c.rayDirections }

// RotationSpeed is the radians-per-unit factor applied to scaled mouse deltas.
func (c *Camera) RotationSpeed() float32 { return rotationSpeed }

// Viewport returns the current viewport size.
func (c *Camera) Viewport() (width, height int) {
	return c.viewportWidth, c.viewportHeight
}
