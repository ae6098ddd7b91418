package visitor

// SliceVisitor implements Visitor[int, E] for []E
type SliceVisitor[E any] struct {
	data []E
}

// SliceVisitorOf creates a Visitor for []E
func SliceVisitorOf[E any](slice []E) Visitor[int, E] {
	visitor := &SliceVisitor[E]{data: slice}
	return visitor.Visit
}

// Visit iterates over the slice, calling the provided function for each element.
// The key is the slice index.
func (sw *SliceVisitor[E]) Visit(f func(key int, element E) (bool, error)) error {
	for i, elem := range sw.data {
		continueVisit, err := f(i, elem)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
