package input

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a recorded input sequence, one entry per camera update.
type Script struct {
	Frames []ScriptFrame `yaml:"frames"`
}

// ScriptFrame is the input state for one (or Repeat) updates.
type ScriptFrame struct {
	DT      float32    `yaml:"dt"`
	Mouse   [2]float32 `yaml:"mouse"`
	Buttons []string   `yaml:"buttons"`
	Keys    []string   `yaml:"keys"`
	Repeat  int        `yaml:"repeat"`
}

// DefaultDT is used for frames that leave dt unset (60 updates per second).
const DefaultDT = float32(1.0 / 60.0)

// LoadScript reads a YAML input script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: read %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("input: parse %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes a YAML script and validates every key and button name.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	for i, f := range s.Frames {
		for _, k := range f.Keys {
			if _, err := ParseKey(k); err != nil {
				return nil, fmt.Errorf("frame %d: %w", i, err)
			}
		}
		for _, b := range f.Buttons {
			if _, err := ParseMouseButton(b); err != nil {
				return nil, fmt.Errorf("frame %d: %w", i, err)
			}
		}
		if f.DT < 0 {
			return nil, fmt.Errorf("frame %d: negative dt %v", i, f.DT)
		}
	}
	return &s, nil
}

// Len returns the number of updates the script drives, with repeats expanded.
func (s *Script) Len() int {
	n := 0
	for _, f := range s.Frames {
		n += f.repeat()
	}
	return n
}

func (f ScriptFrame) repeat() int {
	if f.Repeat <= 0 {
		return 1
	}
	return f.Repeat
}

// Player replays a Script through a State. Call Next before each camera update.
type Player struct {
	*State
	script *Script
	frame  int
	left   int
}

// NewPlayer returns a player positioned before the first frame.
func NewPlayer(s *Script) *Player {
	return &Player{State: NewState(), script: s}
}

// Next loads the next scripted frame into the state and returns its dt.
// It returns false once the script is exhausted.
func (p *Player) Next() (float32, bool) {
	for p.left == 0 {
		if p.frame >= len(p.script.Frames) {
			return 0, false
		}
		p.left = p.script.Frames[p.frame].repeat()
		p.frame++
	}
	p.left--

	f := p.script.Frames[p.frame-1]
	p.ReleaseAll()
	p.Mouse[0], p.Mouse[1] = f.Mouse[0], f.Mouse[1]
	for _, name := range f.Keys {
		k, _ := ParseKey(name)
		p.Keys[k] = true
	}
	for _, name := range f.Buttons {
		b, _ := ParseMouseButton(name)
		p.Buttons[b] = true
	}

	dt := f.DT
	if dt == 0 {
		dt = DefaultDT
	}
	return dt, true
}
