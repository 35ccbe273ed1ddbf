package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"sphere-raycaster/internal/input"
)

var ebitenKeys = map[input.Key]ebiten.Key{
	input.KeyW: ebiten.KeyW,
	input.KeyA: ebiten.KeyA,
	input.KeyS: ebiten.KeyS,
	input.KeyD: ebiten.KeyD,
	input.KeyQ: ebiten.KeyQ,
	input.KeyE: ebiten.KeyE,
}

var ebitenButtons = map[input.MouseButton]ebiten.MouseButton{
	input.MouseButtonLeft:   ebiten.MouseButtonLeft,
	input.MouseButtonRight:  ebiten.MouseButtonRight,
	input.MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// windowInput polls ebiten for the camera. It must only be used from the game loop.
type windowInput struct {
	cursor input.CursorMode
}

func (in *windowInput) MousePosition() mgl32.Vec2 {
	x, y := ebiten.CursorPosition()
	return mgl32.Vec2{float32(x), float32(y)}
}

func (in *windowInput) IsMouseButtonDown(b input.MouseButton) bool {
	eb, ok := ebitenButtons[b]
	return ok && ebiten.IsMouseButtonPressed(eb)
}

func (in *windowInput) IsKeyDown(k input.Key) bool {
	ek, ok := ebitenKeys[k]
	return ok && ebiten.IsKeyPressed(ek)
}

// SetCursorMode is called every frame; ebiten is only told about changes.
func (in *windowInput) SetCursorMode(m input.CursorMode) {
	if m == in.cursor {
		return
	}
	in.cursor = m
	switch m {
	case input.CursorModeHidden:
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	case input.CursorModeLocked:
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	default:
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}
