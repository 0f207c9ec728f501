package control

// Frame is an entered container.
type Frame struct {
	Type Type

	// For ContainerBounded, Size is the length of the embedded stream and
	// Remaining is how much of it is still unread.
	Size      uint64
	Remaining uint64
}

// Stack holds the containers enclosing the current field, innermost last.
type Stack []*Frame

func (s *Stack) Push(f *Frame) {
	*s = append(*s, f)
}

// Top returns the innermost frame or nil.
func (s *Stack) Top() *Frame {
	if len(*s) == 0 {
		return nil
	}

	return (*s)[len(*s)-1]
}

// Pop removes the innermost frame. A bounded frame can only be removed once
// fully read.
func (s *Stack) Pop() (err error) {
	top := s.Top()
	if top == nil {
		return Error.New("no frame on stack")
	}

	if top.Type == ContainerBounded && top.Remaining != 0 {
		return Error.New(
			"data remaining in bounded: size=%d remaining=%d",
			top.Size,
			top.Remaining,
		)
	}

	*s = (*s)[:len(*s)-1]

	return nil
}

// Consume accounts for size bytes read from the input against every enclosing
// bounded container.
func (s *Stack) Consume(size uint64) (err error) {
	for i, f := range *s {
		if f.Type != ContainerBounded {
			continue
		}

		if size > f.Remaining {
			return Error.New(
				"exceeded bounded: depth=%d/%d size=%d remaining=%d consuming=%d",
				i,
				len(*s),
				f.Size,
				f.Remaining,
				size,
			)
		}

		f.Remaining -= size
	}

	return nil
}

// Trim pops the innermost bounded containers that have been fully read. It is
// called between fields so a field cannot straddle the end of its container.
func (s *Stack) Trim() (err error) {
	for top := s.Top(); top != nil && top.Type == ContainerBounded && top.Remaining == 0; top = s.Top() {
		err = s.Pop()
		if err != nil {
			return err
		}
	}

	return nil
}
