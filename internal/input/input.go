// Package input defines the polled-input contract the camera controller reads
// every frame, plus in-memory and scripted implementations of it.
package input

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Key identifies a keyboard key the camera controller understands.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
)

// CursorMode is the pointer state requested by the camera.
type CursorMode int

const (
	CursorModeNormal CursorMode = iota
	CursorModeHidden
	CursorModeLocked
)

func (m CursorMode) String() string {
	switch m {
	case CursorModeNormal:
		return "normal"
	case CursorModeHidden:
		return "hidden"
	case CursorModeLocked:
		return "locked"
	}
	return fmt.Sprintf("CursorMode(%d)", int(m))
}

// Input is polled once per frame by the camera.
type Input interface {
	MousePosition() mgl32.Vec2
	IsMouseButtonDown(b MouseButton) bool
	IsKeyDown(k Key) bool
	SetCursorMode(m CursorMode)
}

var keyNames = map[string]Key{
	"w": KeyW, "a": KeyA, "s": KeyS, "d": KeyD, "q": KeyQ, "e": KeyE,
}

var buttonNames = map[string]MouseButton{
	"left": MouseButtonLeft, "right": MouseButtonRight, "middle": MouseButtonMiddle,
}

// ParseKey resolves a case-insensitive key name ("w", "A", ...).
func ParseKey(name string) (Key, error) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("input: unknown key %q", name)
	}
	return k, nil
}

// ParseMouseButton resolves "left", "right" or "middle".
func ParseMouseButton(name string) (MouseButton, error) {
	b, ok := buttonNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("input: unknown mouse button %q", name)
	}
	return b, nil
}
