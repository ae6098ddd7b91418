package json

import "github.com/viant/scenegraph"

// Object represents an exported component
type Object = map[string]interface{}

// ExportVisitor exports components as nested mapping
type ExportVisitor struct {
	config *config
}

// ExportPage exports page as {children: [...]}
func (v *ExportVisitor) ExportPage(page *scenegraph.Page) (Object, error) {
	return v.container(page)
}

// ExportCompoundShape exports compound shape as {children: [...]}
func (v *ExportVisitor) ExportCompoundShape(shape *scenegraph.CompoundShape) (Object, error) {
	return v.container(shape)
}

// ExportCircle exports circle as {center, radius}
func (v *ExportVisitor) ExportCircle(circle *scenegraph.Circle) (Object, error) {
	return Object{
		v.config.key("center"): v.point(circle.Center()),
		v.config.key("radius"): circle.Radius(),
	}, nil
}

// ExportRectangle exports rectangle as {position, width, height}
func (v *ExportVisitor) ExportRectangle(rectangle *scenegraph.Rectangle) (Object, error) {
	return Object{
		v.config.key("position"): v.point(rectangle.Position()),
		v.config.key("width"):    rectangle.Width(),
		v.config.key("height"):   rectangle.Height(),
	}, nil
}

func (v *ExportVisitor) container(component scenegraph.Component) (Object, error) {
	objects, err := scenegraph.ExportChildren[Object](component, v)
	if err != nil {
		return nil, err
	}
	children := make([]interface{}, 0, len(objects))
	for _, object := range objects {
		children = append(children, object)
	}
	return Object{v.config.key("children"): children}, nil
}

func (v *ExportVisitor) point(point scenegraph.Point) Object {
	return Object{v.config.key("x"): point.X, v.config.key("y"): point.Y}
}

// Export exports component as nested mapping
func (v *ExportVisitor) Export(component scenegraph.Component) (Object, error) {
	return scenegraph.Export[Object](component, v)
}

// New creates an export visitor
func New(opts ...Option) *ExportVisitor {
	return &ExportVisitor{config: newConfig(opts)}
}
