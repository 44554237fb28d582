package systems

import "github.com/nancyzera/jurassic-game/internal/domain"

// InputSampler tracks which movement keys are held and counts inventory
// toggle presses. Fed by key-down/key-up edges from the host.
type InputSampler struct {
	held          domain.Directions
	inventoryHeld bool
	toggles       int
}

func NewInputSampler() *InputSampler {
	return &InputSampler{}
}

// KeyDown handles a key-down edge for a browser key code.
func (s *InputSampler) KeyDown(code string) {
	s.Press(domain.ParseKeyCode(code))
}

// KeyUp handles a key-up edge for a browser key code.
func (s *InputSampler) KeyUp(code string) {
	s.Release(domain.ParseKeyCode(code))
}

// Press marks a control as held. The inventory toggle fires once per
// physical press: auto-repeat downs while already held are ignored.
func (s *InputSampler) Press(k domain.Key) {
	switch k {
	case domain.KeyForward:
		s.held.Forward = true
	case domain.KeyBackward:
		s.held.Backward = true
	case domain.KeyLeft:
		s.held.Left = true
	case domain.KeyRight:
		s.held.Right = true
	case domain.KeySprint:
		s.held.Sprint = true
	case domain.KeyInventory:
		if !s.inventoryHeld {
			s.inventoryHeld = true
			s.toggles++
		}
	}
}

// Release clears a held control. Never fires a toggle.
func (s *InputSampler) Release(k domain.Key) {
	switch k {
	case domain.KeyForward:
		s.held.Forward = false
	case domain.KeyBackward:
		s.held.Backward = false
	case domain.KeyLeft:
		s.held.Left = false
	case domain.KeyRight:
		s.held.Right = false
	case domain.KeySprint:
		s.held.Sprint = false
	case domain.KeyInventory:
		s.inventoryHeld = false
	}
}

// Sample returns the held set at this instant (a copy).
func (s *InputSampler) Sample() domain.Directions {
	return s.held
}

// TakeToggles returns and clears the number of pending inventory toggles.
func (s *InputSampler) TakeToggles() int {
	n := s.toggles
	s.toggles = 0
	return n
}

// Reset drops all held keys and pending toggles.
func (s *InputSampler) Reset() {
	*s = InputSampler{}
}
