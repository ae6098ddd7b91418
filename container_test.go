package scenegraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_RemoveClearsBackingArray(t *testing.T) {
	page := NewPage()
	first := NewCircle(Point{X: 1, Y: 1}, 1)
	second := NewRectangle(Point{X: 2, Y: 2}, 2, 2)
	require.NoError(t, page.Add(first))
	require.NoError(t, page.Add(second))

	require.NoError(t, page.Remove(first))
	require.Len(t, page.children, 1)
	assert.Equal(t, second, page.children[0])
	assert.Nil(t, page.children[:2][1])
	assert.Equal(t, 0, page.index[second])
}

func TestContainer_TypedNil(t *testing.T) {
	var circle *Circle
	var page *Page
	for _, parent := range []Component{NewPage(), NewCompoundShape()} {
		err := parent.Add(circle)
		assert.True(t, errors.Is(err, ErrInvalidChild), parent.Kind().String())
		err = parent.Add(page)
		assert.True(t, errors.Is(err, ErrInvalidChild), parent.Kind().String())
		assert.NoError(t, parent.Remove(circle), parent.Kind().String())
		assert.Empty(t, parent.Children(), parent.Kind().String())
	}
	assert.True(t, isNil(circle))
	assert.False(t, isNil(NewCircle(Point{}, 1)))
}
