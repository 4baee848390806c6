package lsystem

import "github.com/katalvlaran/fractalis/geom"

// turtleState is one saved (position, heading) pair.
type turtleState struct {
	pos     geom.Point
	heading float64
}

// stateStack is a LIFO arena: slots are reused once allocated and depth
// marks the live top, so deep nesting costs one slice, not a call stack.
type stateStack struct {
	slots []turtleState
	depth int
}

func (s *stateStack) push(st turtleState) {
	if s.depth < len(s.slots) {
		s.slots[s.depth] = st
	} else {
		s.slots = append(s.slots, st)
	}
	s.depth++
}

// pop reports false on an empty stack.
func (s *stateStack) pop() (turtleState, bool) {
	if s.depth == 0 {
		return turtleState{}, false
	}
	s.depth--

	return s.slots[s.depth], true
}
