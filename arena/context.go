package arena

import (
	"errors"
	"fmt"
)

// MaxContextDepth bounds nesting of allocation contexts
const MaxContextDepth = 32

var (
	// ErrContextUnderflow is raised by Pop or Current on an empty stack
	ErrContextUnderflow = errors.New("arena: context stack underflow")
	// ErrContextOverflow is raised by Push past MaxContextDepth
	ErrContextOverflow = errors.New("arena: context stack overflow")
	// ErrNoContext is raised when an implicit allocation finds no allocator
	ErrNoContext = errors.New("arena: no allocation context")
	// ErrUnbalancedScope is raised when a scope exits out of LIFO order
	ErrUnbalancedScope = errors.New("arena: scope exited out of order")
)

// Context is the allocation strategy consulted by implicit allocations
type Context struct {
	// Allocator serves Alloc and MakeSliceIn
	Allocator Allocator
	// Scratch serves TempAlloc and TempSlice
	Scratch *Region
}

// Stack is a LIFO of contexts owned by one simulation instance
// Not goroutine-safe; each instance keeps its own
type Stack struct {
	items [MaxContextDepth]Context
	depth int
}

// Push makes ctx current
func (s *Stack) Push(ctx Context) {
	if s.depth == MaxContextDepth {
		panic(fmt.Errorf("%w: depth %d", ErrContextOverflow, s.depth))
	}
	s.items[s.depth] = ctx
	s.depth++
}

// Pop discards the current context
func (s *Stack) Pop() {
	if s.depth == 0 {
		panic(ErrContextUnderflow)
	}
	s.depth--
	s.items[s.depth] = Context{}
}

// Current returns the top-of-stack context
func (s *Stack) Current() *Context {
	if s.depth == 0 {
		panic(ErrContextUnderflow)
	}
	return &s.items[s.depth-1]
}

// Depth returns the number of pushed contexts
func (s *Stack) Depth() int { return s.depth }

// Derive copies the current context, or returns a zero context on an empty stack
// Callers override fields and push the result
func (s *Stack) Derive() Context {
	if s.depth == 0 {
		return Context{}
	}
	return s.items[s.depth-1]
}

// Scope is a pushed context that must be exited exactly once
type Scope struct {
	stack *Stack
	depth int
}

// Enter pushes ctx and returns the scope to exit, typically via defer
func (s *Stack) Enter(ctx Context) Scope {
	s.Push(ctx)
	return Scope{stack: s, depth: s.depth}
}

// Exit pops the scope's context; inner scopes must have exited first
func (sc Scope) Exit() {
	if sc.stack.depth != sc.depth {
		panic(fmt.Errorf("%w: depth %d, scope %d", ErrUnbalancedScope, sc.stack.depth, sc.depth))
	}
	sc.stack.Pop()
}

// With runs fn with ctx current and pops on every exit path, panics included
func (s *Stack) With(ctx Context, fn func()) {
	sc := s.Enter(ctx)
	defer sc.Exit()
	fn()
}

// Alloc allocates through the current context's allocator
func (s *Stack) Alloc(size, align int) []byte {
	return s.allocator().Alloc(size, align)
}

// TempAlloc allocates from the current context's scratch region
func (s *Stack) TempAlloc(size, align int) []byte {
	return s.scratch().Alloc(size, align)
}

func (s *Stack) allocator() Allocator {
	a := s.Current().Allocator
	if a == nil {
		panic(fmt.Errorf("%w: allocator not set", ErrNoContext))
	}
	return a
}

func (s *Stack) scratch() *Region {
	r := s.Current().Scratch
	if r == nil {
		panic(fmt.Errorf("%w: scratch region not set", ErrNoContext))
	}
	return r
}
