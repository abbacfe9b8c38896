package region

// Token identifies a frame saved on a Stack. It is the frame's depth at
// save time; the first frame pushed gets token 1.
type Token int

// Stack is the LIFO stack of registration lists saved across suspension
// calls. It mirrors the call-stack nesting of those calls exactly: a
// frame is pushed immediately before the suspension and popped
// immediately after the matching return.
type Stack struct {
	frames []*List
}

// Push saves l as a new frame and returns its token.
func (s *Stack) Push(l *List) Token {
	s.frames = append(s.frames, l)
	return Token(len(s.frames))
}

// Pop removes and returns the topmost frame, or nil when the stack is
// empty. Callers verify the token against Top before popping.
func (s *Stack) Pop() *List {
	if len(s.frames) == 0 {
		return nil
	}
	top := s.frames[len(s.frames)-1]
	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
	return top
}

// Top returns the token of the topmost frame, or 0 when the stack is
// empty.
func (s *Stack) Top() Token {
	return Token(len(s.frames))
}

// Depth returns the number of saved frames.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Each calls fn for every saved frame, outermost first.
func (s *Stack) Each(fn func(*List)) {
	for _, f := range s.frames {
		fn(f)
	}
}
