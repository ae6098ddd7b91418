package scenegraph

import "fmt"

// CompoundShape represents a group of shapes; it never holds a page
type CompoundShape struct {
	container
}

// Kind returns KindCompoundShape
func (s *CompoundShape) Kind() Kind {
	return KindCompoundShape
}

// Add adds a child or returns ErrInvalidChild for a page
func (s *CompoundShape) Add(component Component) error {
	if !isNil(component) && component.Kind() == KindPage {
		return &OperationError{Op: "add", Kind: KindCompoundShape, Err: fmt.Errorf("%w: %v", ErrInvalidChild, KindPage)}
	}
	return s.add(s, component)
}

// Remove removes a child, absent children are ignored
func (s *CompoundShape) Remove(component Component) error {
	return s.remove(s, component)
}

// Accept calls visitor.VisitCompoundShape
func (s *CompoundShape) Accept(visitor NodeVisitor) error {
	return visitor.VisitCompoundShape(s)
}

// NewCompoundShape creates an empty compound shape
func NewCompoundShape() *CompoundShape {
	return &CompoundShape{}
}
