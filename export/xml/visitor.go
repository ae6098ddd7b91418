package xml

import (
	"math"
	"strconv"
	"strings"

	"github.com/viant/scenegraph"
	"github.com/viant/scenegraph/format/text"
)

// ExportVisitor exports components as XML like string
type ExportVisitor struct {
	caseFormat text.CaseFormat
}

type attribute struct {
	name  string
	value float64
}

// ExportPage exports page with its children
func (v *ExportVisitor) ExportPage(page *scenegraph.Page) (string, error) {
	return v.container(page)
}

// ExportCompoundShape exports compound shape with its children
func (v *ExportVisitor) ExportCompoundShape(shape *scenegraph.CompoundShape) (string, error) {
	return v.container(shape)
}

// ExportCircle exports circle, area is truncated with floor
func (v *ExportVisitor) ExportCircle(circle *scenegraph.Circle) (string, error) {
	center := circle.Center()
	radius := circle.Radius()
	return v.shape(circle.Kind(),
		attribute{"centerX", center.X},
		attribute{"centerY", center.Y},
		attribute{"radius", radius},
		attribute{"area", math.Floor(radius * radius * math.Pi)},
	), nil
}

// ExportRectangle exports rectangle
func (v *ExportVisitor) ExportRectangle(rectangle *scenegraph.Rectangle) (string, error) {
	position := rectangle.Position()
	width, height := rectangle.Width(), rectangle.Height()
	return v.shape(rectangle.Kind(),
		attribute{"left", position.X},
		attribute{"top", position.Y},
		attribute{"right", position.X + width},
		attribute{"bottom", position.Y + height},
		attribute{"width", width},
		attribute{"height", height},
		attribute{"area", width * height},
	), nil
}

func (v *ExportVisitor) container(component scenegraph.Component) (string, error) {
	children, err := scenegraph.ExportChildren[string](component, v)
	if err != nil {
		return "", err
	}
	tag := tagName(component.Kind())
	builder := strings.Builder{}
	builder.WriteString("<")
	builder.WriteString(tag)
	builder.WriteString(">")
	for _, child := range children {
		builder.WriteString(child)
	}
	builder.WriteString("</")
	builder.WriteString(tag)
	builder.WriteString(">")
	return builder.String(), nil
}

func (v *ExportVisitor) shape(kind scenegraph.Kind, attributes ...attribute) string {
	builder := strings.Builder{}
	builder.WriteString("<")
	builder.WriteString(tagName(kind))
	for _, attr := range attributes {
		builder.WriteString(" ")
		builder.WriteString(v.caseFormat.Format(attr.name))
		builder.WriteString(`="`)
		builder.WriteString(formatNumber(attr.value))
		builder.WriteString(`"`)
	}
	builder.WriteString("/>")
	return builder.String()
}

func tagName(kind scenegraph.Kind) string {
	return text.CaseFormatUpperCamel.Format(kind.String())
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Export exports component as XML like string
func (v *ExportVisitor) Export(component scenegraph.Component) (string, error) {
	return scenegraph.Export[string](component, v)
}

// New creates an export visitor
func New(opts ...Option) *ExportVisitor {
	ret := &ExportVisitor{}
	Options(opts).Apply(ret)
	return ret
}
