package scenegraph

import (
	"fmt"
	"slices"
)

// container holds a duplicate free, insertion ordered child set
type container struct {
	node
	children []Component
	index    map[Component]int
}

func (c *container) Children() []Component {
	result := make([]Component, len(c.children))
	copy(result, c.children)
	return result
}

// Len returns the number of children
func (c *container) Len() int {
	return len(c.children)
}

// Has returns true if component is a child
func (c *container) Has(component Component) bool {
	_, ok := c.index[component]
	return ok
}

func (c *container) add(owner Component, component Component) error {
	if isNil(component) {
		return &OperationError{Op: "add", Kind: owner.Kind(), Err: fmt.Errorf("%w: nil component", ErrInvalidChild)}
	}
	if component.base() == owner.base() {
		return &OperationError{Op: "add", Kind: owner.Kind(), Err: fmt.Errorf("%w: self", ErrInvalidChild)}
	}
	if c.index == nil {
		c.index = make(map[Component]int)
	}
	if _, ok := c.index[component]; !ok {
		c.index[component] = len(c.children)
		c.children = append(c.children, component)
	}
	component.SetParent(owner)
	return nil
}

func (c *container) remove(owner Component, component Component) error {
	if isNil(component) {
		return nil
	}
	pos, ok := c.index[component]
	if !ok {
		return nil
	}
	c.children = slices.Delete(c.children, pos, pos+1)
	delete(c.index, component)
	for i := pos; i < len(c.children); i++ {
		c.index[c.children[i]] = i
	}
	if parent := component.Parent(); parent != nil && parent.base() == owner.base() {
		component.SetParent(nil)
	}
	return nil
}
