package scenegraph

import "fmt"

// NodeVisitor defines one operation per component kind, it is called by Component.Accept
type NodeVisitor interface {
	VisitPage(page *Page) error
	VisitCompoundShape(shape *CompoundShape) error
	VisitCircle(circle *Circle) error
	VisitRectangle(rectangle *Rectangle) error
}

// Exporter builds a T representation per component kind.
// Container operations are expected to export each child with the same exporter.
type Exporter[T any] interface {
	ExportPage(page *Page) (T, error)
	ExportCompoundShape(shape *CompoundShape) (T, error)
	ExportCircle(circle *Circle) (T, error)
	ExportRectangle(rectangle *Rectangle) (T, error)
}

// Export dispatches component to the matching exporter operation
func Export[T any](component Component, exporter Exporter[T]) (T, error) {
	if isNil(component) {
		var zero T
		return zero, fmt.Errorf("failed to export: component was nil")
	}
	dispatcher := &exportDispatcher[T]{exporter: exporter}
	err := component.Accept(dispatcher)
	return dispatcher.result, err
}

type exportDispatcher[T any] struct {
	exporter Exporter[T]
	result   T
}

func (d *exportDispatcher[T]) VisitPage(page *Page) (err error) {
	d.result, err = d.exporter.ExportPage(page)
	return err
}

func (d *exportDispatcher[T]) VisitCompoundShape(shape *CompoundShape) (err error) {
	d.result, err = d.exporter.ExportCompoundShape(shape)
	return err
}

func (d *exportDispatcher[T]) VisitCircle(circle *Circle) (err error) {
	d.result, err = d.exporter.ExportCircle(circle)
	return err
}

func (d *exportDispatcher[T]) VisitRectangle(rectangle *Rectangle) (err error) {
	d.result, err = d.exporter.ExportRectangle(rectangle)
	return err
}

// ExportChildren exports every child of component in iteration order
func ExportChildren[T any](component Component, exporter Exporter[T]) ([]T, error) {
	children := component.Children()
	result := make([]T, 0, len(children))
	for _, child := range children {
		item, err := Export[T](child, exporter)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}
