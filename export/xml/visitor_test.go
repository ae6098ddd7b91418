package xml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/scenegraph"
	"github.com/viant/scenegraph/format/text"
)

const (
	rectangleXML = `<Rectangle left="40" top="50" right="50" bottom="100" width="10" height="50" area="500"/>`
	circleXML    = `<Circle centerX="80" centerY="20" radius="20" area="1256"/>`
)

func newCompoundShape(t *testing.T) *scenegraph.CompoundShape {
	compoundShape := scenegraph.NewCompoundShape()
	require.NoError(t, compoundShape.Add(scenegraph.NewRectangle(scenegraph.Point{X: 40, Y: 50}, 10, 50)))
	require.NoError(t, compoundShape.Add(scenegraph.NewCircle(scenegraph.Point{X: 80, Y: 20}, 20)))
	return compoundShape
}

func newPage(t *testing.T) *scenegraph.Page {
	page := scenegraph.NewPage()
	require.NoError(t, page.Add(newCompoundShape(t)))
	require.NoError(t, page.Add(scenegraph.NewRectangle(scenegraph.Point{X: 10, Y: 10}, 20, 40)))
	return page
}

func TestExportVisitor_Export(t *testing.T) {
	var testCases = []struct {
		description string
		component   scenegraph.Component
		expect      string
	}{
		{
			description: "rectangle",
			component:   scenegraph.NewRectangle(scenegraph.Point{X: 40, Y: 50}, 10, 50),
			expect:      rectangleXML,
		},
		{
			description: "circle",
			component:   scenegraph.NewCircle(scenegraph.Point{X: 80, Y: 20}, 20),
			expect:      circleXML,
		},
		{
			description: "compound shape",
			component:   newCompoundShape(t),
			expect:      `<CompoundShape>` + rectangleXML + circleXML + `</CompoundShape>`,
		},
		{
			description: "page",
			component:   newPage(t),
			expect: `<Page><CompoundShape>` + rectangleXML + circleXML + `</CompoundShape>` +
				`<Rectangle left="10" top="10" right="30" bottom="50" width="20" height="40" area="800"/></Page>`,
		},
		{
			description: "empty page",
			component:   scenegraph.NewPage(),
			expect:      `<Page></Page>`,
		},
		{
			description: "fractional values",
			component:   scenegraph.NewCircle(scenegraph.Point{X: 1.5, Y: -2.25}, 1),
			expect:      `<Circle centerX="1.5" centerY="-2.25" radius="1" area="3"/>`,
		},
	}

	visitor := New()
	for _, testCase := range testCases {
		actual, err := visitor.Export(testCase.component)
		assert.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)

		viaAccept, err := scenegraph.Export[string](testCase.component, visitor)
		assert.NoError(t, err, testCase.description)
		assert.Equal(t, actual, viaAccept, testCase.description)
	}
}

func TestExportVisitor_CircleAreaFloor(t *testing.T) {
	visitor := New()
	// 2.5 * 2.5 * pi = 19.63...
	actual, err := visitor.Export(scenegraph.NewCircle(scenegraph.Point{}, 2.5))
	require.NoError(t, err)
	assert.Equal(t, `<Circle centerX="0" centerY="0" radius="2.5" area="19"/>`, actual)
}

func TestExportVisitor_CaseFormat(t *testing.T) {
	visitor := New(WithCaseFormat(text.CaseFormatLowerUnderscore))
	actual, err := visitor.Export(scenegraph.NewCircle(scenegraph.Point{X: 80, Y: 20}, 20))
	require.NoError(t, err)
	assert.Equal(t, `<Circle center_x="80" center_y="20" radius="20" area="1256"/>`, actual)
}
