package visitor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/scenegraph"
)

func newScene(t *testing.T) *scenegraph.Page {
	page := scenegraph.NewPage()
	compoundShape := scenegraph.NewCompoundShape()
	require.NoError(t, compoundShape.Add(scenegraph.NewRectangle(scenegraph.Point{X: 40, Y: 50}, 10, 50)))
	require.NoError(t, compoundShape.Add(scenegraph.NewCircle(scenegraph.Point{X: 80, Y: 20}, 20)))
	require.NoError(t, page.Add(compoundShape))
	require.NoError(t, page.Add(scenegraph.NewRectangle(scenegraph.Point{X: 10, Y: 10}, 20, 40)))
	return page
}

func TestChildrenOf(t *testing.T) {
	page := newScene(t)
	var kinds []scenegraph.Kind
	err := ChildrenOf(page)(func(index int, child scenegraph.Component) (bool, error) {
		kinds = append(kinds, child.Kind())
		return true, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []scenegraph.Kind{scenegraph.KindCompoundShape, scenegraph.KindRectangle}, kinds)

	calls := 0
	err = ChildrenOf(scenegraph.NewCircle(scenegraph.Point{}, 1))(func(index int, child scenegraph.Component) (bool, error) {
		calls++
		return true, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, calls)
}

func TestDepthFirst(t *testing.T) {
	type visit struct {
		depth int
		kind  scenegraph.Kind
	}
	var testCases = []struct {
		description string
		stopAfter   int
		expect      []visit
	}{
		{
			description: "full walk",
			stopAfter:   -1,
			expect: []visit{
				{0, scenegraph.KindPage},
				{1, scenegraph.KindCompoundShape},
				{2, scenegraph.KindRectangle},
				{2, scenegraph.KindCircle},
				{1, scenegraph.KindRectangle},
			},
		},
		{
			description: "stop inside nested container",
			stopAfter:   3,
			expect: []visit{
				{0, scenegraph.KindPage},
				{1, scenegraph.KindCompoundShape},
				{2, scenegraph.KindRectangle},
			},
		},
	}

	page := newScene(t)
	for _, testCase := range testCases {
		var actual []visit
		err := DepthFirst(page)(func(depth int, component scenegraph.Component) (bool, error) {
			actual = append(actual, visit{depth, component.Kind()})
			return testCase.stopAfter < 0 || len(actual) < testCase.stopAfter, nil
		})
		assert.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}

	expectErr := errors.New("failed")
	err := DepthFirst(page)(func(depth int, component scenegraph.Component) (bool, error) {
		if component.Kind() == scenegraph.KindCircle {
			return false, expectErr
		}
		return true, nil
	})
	assert.Equal(t, expectErr, err)
}
