package input

import "github.com/go-gl/mathgl/mgl32"

// State is a settable input snapshot. It records the last cursor mode requested
// so hosts and tests can observe pointer lock changes.
type State struct {
	Mouse   mgl32.Vec2
	Buttons map[MouseButton]bool
	Keys    map[Key]bool
	Cursor  CursorMode

	// CursorChanges counts SetCursorMode calls.
	CursorChanges int
}

// NewState returns an empty snapshot: no buttons, no keys, mouse at the origin.
func NewState() *State {
	return &State{
		Buttons: make(map[MouseButton]bool),
		Keys:    make(map[Key]bool),
	}
}

// MousePosition returns Mouse.
func (s *State) MousePosition() mgl32.Vec2 { return s.Mouse }

// IsMouseButtonDown reports whether b is set in Buttons.
func (s *State) IsMouseButtonDown(b MouseButton) bool { return s.Buttons[b] }

// IsKeyDown reports whether k is set in Keys.
func (s *State) IsKeyDown(k Key) bool { return s.Keys[k] }

// SetCursorMode records m as the current cursor mode.
func (s *State) SetCursorMode(m CursorMode) {
	s.Cursor = m
	s.CursorChanges++
}

// Press marks keys as held.
func (s *State) Press(keys ...Key) {
	for _, k := range keys {
		s.Keys[k] = true
	}
}

// ReleaseAll clears every key and button.
func (s *State) ReleaseAll() {
	clear(s.Keys)
	clear(s.Buttons)
}
