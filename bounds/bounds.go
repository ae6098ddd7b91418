// Package bounds computes axis aligned bounding boxes of scene graph components.
package bounds

import (
	"github.com/viant/scenegraph"
	"seehuhn.de/go/geom/rect"
)

// ExportVisitor exports component bounding box, nil is returned for containers without shapes.
// Degenerate boxes (zero sized shapes at the origin) still take part in the union.
type ExportVisitor struct{}

// ExportPage returns union of children boxes
func (v ExportVisitor) ExportPage(page *scenegraph.Page) (*rect.Rect, error) {
	return v.union(page)
}

// ExportCompoundShape returns union of children boxes
func (v ExportVisitor) ExportCompoundShape(shape *scenegraph.CompoundShape) (*rect.Rect, error) {
	return v.union(shape)
}

func (v ExportVisitor) ExportCircle(circle *scenegraph.Circle) (*rect.Rect, error) {
	center, radius := circle.Center(), circle.Radius()
	return &rect.Rect{
		LLx: center.X - radius,
		LLy: center.Y - radius,
		URx: center.X + radius,
		URy: center.Y + radius,
	}, nil
}

func (v ExportVisitor) ExportRectangle(rectangle *scenegraph.Rectangle) (*rect.Rect, error) {
	position := rectangle.Position()
	return &rect.Rect{
		LLx: position.X,
		LLy: position.Y,
		URx: position.X + rectangle.Width(),
		URy: position.Y + rectangle.Height(),
	}, nil
}

func (v ExportVisitor) union(component scenegraph.Component) (*rect.Rect, error) {
	boxes, err := scenegraph.ExportChildren[*rect.Rect](component, v)
	if err != nil {
		return nil, err
	}
	var result *rect.Rect
	for _, box := range boxes {
		if box == nil {
			continue
		}
		if result == nil {
			clone := *box
			result = &clone
			continue
		}
		result.LLx = min(result.LLx, box.LLx)
		result.LLy = min(result.LLy, box.LLy)
		result.URx = max(result.URx, box.URx)
		result.URy = max(result.URy, box.URy)
	}
	return result, nil
}

// Of returns component bounding box or nil if component holds no shapes
func Of(component scenegraph.Component) (*rect.Rect, error) {
	return scenegraph.Export[*rect.Rect](component, ExportVisitor{})
}
