package lox

// Stack is a LIFO; the tokenizer keeps the positions of open block
// comments on one.
type Stack[T any] []T

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

// Top returns the most recently pushed element without removing it.
func (s Stack[T]) Top() (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	return s[len(s)-1], true
}

func (s *Stack[T]) Pop() (T, bool) {
	top, ok := s.Top()
	if ok {
		*s = (*s)[:len(*s)-1]
	}
	return top, ok
}

func (s Stack[T]) Empty() bool {
	return len(s) == 0
}
