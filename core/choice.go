package core

import "slices"

// Choice is a single selection among a fixed, non-empty option list.
type Choice[T comparable] struct {
	options []T
	index   int
}

// NewChoice selects the first option. It panics on an empty list.
func NewChoice[T comparable](options ...T) *Choice[T] {
	if len(options) == 0 {
		panic("choice: no options")
	}
	return &Choice[T]{options: slices.Clone(options)}
}

func (c *Choice[T]) Current() T   { return c.options[c.index] }
func (c *Choice[T]) Index() int   { return c.index }
func (c *Choice[T]) Options() []T { return slices.Clone(c.options) }

// Set selects v and reports whether it is one of the options. Unknown
// values leave the selection unchanged.
func (c *Choice[T]) Set(v T) bool {
	i := slices.Index(c.options, v)
	if i < 0 {
		return false
	}
	c.index = i
	return true
}

func (c *Choice[T]) Next() T {
	c.index = (c.index + 1) % len(c.options)
	return c.Current()
}

func (c *Choice[T]) Prev() T {
	c.index = (c.index - 1 + len(c.options)) % len(c.options)
	return c.Current()
}
