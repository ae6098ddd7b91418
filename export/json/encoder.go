package json

import (
	"fmt"
	"io"

	"github.com/francoispqt/gojay"
	"github.com/viant/scenegraph"
)

// Encoder writes components as JSON text
type Encoder struct {
	w      io.Writer
	config *config
}

// Encode writes component JSON
func (e *Encoder) Encode(component scenegraph.Component) error {
	if component == nil {
		return fmt.Errorf("failed to encode: component was nil")
	}
	object := &componentObject{component: component, config: e.config}
	if err := gojay.NewEncoder(e.w).EncodeObject(object); err != nil {
		return err
	}
	return object.err
}

// NewEncoder creates an encoder
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, config: newConfig(opts)}
}

// Marshal returns component JSON
func Marshal(component scenegraph.Component, opts ...Option) ([]byte, error) {
	if component == nil {
		return nil, fmt.Errorf("failed to marshal: component was nil")
	}
	object := &componentObject{component: component, config: newConfig(opts)}
	data, err := gojay.MarshalJSONObject(object)
	if err != nil {
		return nil, err
	}
	if object.err != nil {
		return nil, object.err
	}
	return data, nil
}

// componentObject adapts a component to gojay.MarshalerJSONObject
type componentObject struct {
	component scenegraph.Component
	config    *config
	err       error
}

func (o *componentObject) MarshalJSONObject(enc *gojay.Encoder) {
	writer := &objectWriter{enc: enc, config: o.config}
	if err := o.component.Accept(writer); err != nil && o.err == nil {
		o.err = err
	}
}

func (o *componentObject) IsNil() bool {
	return o.component == nil
}

// objectWriter writes the fields of the visited component
type objectWriter struct {
	enc    *gojay.Encoder
	config *config
}

func (w *objectWriter) VisitPage(page *scenegraph.Page) error {
	return w.children(page)
}

func (w *objectWriter) VisitCompoundShape(shape *scenegraph.CompoundShape) error {
	return w.children(shape)
}

func (w *objectWriter) VisitCircle(circle *scenegraph.Circle) error {
	w.enc.ObjectKey(w.config.key("center"), &pointObject{point: circle.Center(), config: w.config})
	w.enc.Float64Key(w.config.key("radius"), circle.Radius())
	return nil
}

func (w *objectWriter) VisitRectangle(rectangle *scenegraph.Rectangle) error {
	w.enc.ObjectKey(w.config.key("position"), &pointObject{point: rectangle.Position(), config: w.config})
	w.enc.Float64Key(w.config.key("width"), rectangle.Width())
	w.enc.Float64Key(w.config.key("height"), rectangle.Height())
	return nil
}

func (w *objectWriter) children(component scenegraph.Component) error {
	array := &childrenArray{children: component.Children(), config: w.config}
	w.enc.ArrayKey(w.config.key("children"), array)
	return array.err
}

type childrenArray struct {
	children []scenegraph.Component
	config   *config
	err      error
}

func (a *childrenArray) MarshalJSONArray(enc *gojay.Encoder) {
	for _, child := range a.children {
		object := &componentObject{component: child, config: a.config}
		enc.Object(object)
		if object.err != nil && a.err == nil {
			a.err = object.err
		}
	}
}

func (a *childrenArray) IsNil() bool {
	return len(a.children) == 0
}

type pointObject struct {
	point  scenegraph.Point
	config *config
}

func (p *pointObject) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key(p.config.key("x"), p.point.X)
	enc.Float64Key(p.config.key("y"), p.point.Y)
}

func (p *pointObject) IsNil() bool {
	return p == nil
}
