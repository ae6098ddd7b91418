package visitor

import "github.com/viant/scenegraph"

// ChildrenOf creates a Visitor over component children, keyed by position
func ChildrenOf(component scenegraph.Component) Visitor[int, scenegraph.Component] {
	return SliceVisitorOf[scenegraph.Component](component.Children())
}

// DepthFirst creates a pre-order Visitor over root and its descendants, keyed by depth.
// Returning false from the callback stops the whole walk.
func DepthFirst(root scenegraph.Component) Visitor[int, scenegraph.Component] {
	return func(f func(depth int, component scenegraph.Component) (bool, error)) error {
		_, err := walk(root, 0, f)
		return err
	}
}

func walk(component scenegraph.Component, depth int, f func(depth int, component scenegraph.Component) (bool, error)) (bool, error) {
	continueVisit, err := f(depth, component)
	if err != nil || !continueVisit {
		return false, err
	}
	completed := true
	err = ChildrenOf(component)(func(_ int, child scenegraph.Component) (bool, error) {
		var walkErr error
		completed, walkErr = walk(child, depth+1, f)
		return completed && walkErr == nil, walkErr
	})
	if err != nil || !completed {
		return false, err
	}
	return true, nil
}
