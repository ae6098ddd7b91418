package scenegraph

import "reflect"

// Component represents a scene graph node: a container or a shape.
// The set of implementations is closed to this package.
type Component interface {
	// Kind returns the concrete node kind
	Kind() Kind
	// Parent returns the container this component was last added to, or nil
	Parent() Component
	// SetParent records a back-reference, no validation is performed
	SetParent(parent Component)
	// Children returns the child components; shapes return nil
	Children() []Component
	// Add adds a child component
	Add(component Component) error
	// Remove removes a child component
	Remove(component Component) error
	// Accept calls the visitor method matching the component kind
	Accept(visitor NodeVisitor) error

	base() *node
}

// node holds the parent back-reference shared by all components
type node struct {
	parent Component
}

func (n *node) Parent() Component {
	return n.parent
}

func (n *node) SetParent(parent Component) {
	n.parent = parent
}

func (n *node) base() *node {
	return n
}

// isNil returns true for nil and typed nil components
func isNil(component Component) bool {
	if component == nil {
		return true
	}
	value := reflect.ValueOf(component)
	return value.Kind() == reflect.Ptr && value.IsNil()
}
