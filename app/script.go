package app

import (
	"encoding/json"
	"fmt"
)

// Step is one action of a Script.
//
// Actions:
//   - "wait": do nothing for Frames frames
//   - "screenshot": queue a capture labeled Label
//   - "call": invoke the action registered under Name
//   - "exit": finish the script
type Step struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Name   string `json:"name,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// Script sequences actions and screenshots across frames for unattended
// runs, such as capturing reference images of an example. Call Step once
// per Update; return ebiten.Termination once Done reports true.
type Script struct {
	steps     []Step
	actions   map[string]func()
	cursor    int
	waitCount int
	done      bool
}

// ParseScript parses a JSON script of the form {"steps": [...]}.
func ParseScript(data []byte) (*Script, error) {
	var doc struct {
		Steps []Step `json:"steps"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("app: parse script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("app: parse script: no steps")
	}
	for i, st := range doc.Steps {
		switch st.Action {
		case "wait", "screenshot", "call", "exit":
		default:
			return nil, fmt.Errorf("app: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: doc.Steps, actions: make(map[string]func())}, nil
}

// Register binds name to fn for "call" steps.
func (s *Script) Register(name string, fn func()) {
	s.actions[name] = fn
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.done
}

// Step advances the script by one frame. Screenshots are queued on shots,
// which may be nil when the script takes none.
func (s *Script) Step(shots *Screenshots) error {
	if s.done {
		return nil
	}
	if s.waitCount > 0 {
		s.waitCount--
		return nil
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return nil
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "screenshot":
		if shots != nil {
			shots.Queue(st.Label)
		}
	case "call":
		fn, ok := s.actions[st.Name]
		if !ok {
			return fmt.Errorf("app: script step %d: no action %q", s.cursor-1, st.Name)
		}
		fn()
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1
		}
	case "exit":
		s.done = true
		return nil
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
	return nil
}
