package scenegraph

// shape holds the position shared by circles and rectangles
type shape struct {
	node
	position Point
}

// Children returns nil, shapes have no children
func (s *shape) Children() []Component {
	return nil
}

func (s *shape) unsupported(op string, kind Kind) error {
	return &OperationError{Op: op, Kind: kind, Err: ErrUnsupported}
}

// Circle represents a circle defined by its center and radius
type Circle struct {
	shape
	radius float64
}

func (c *Circle) Kind() Kind {
	return KindCircle
}

// Center returns the circle center
func (c *Circle) Center() Point {
	return c.position
}

// Radius returns the circle radius
func (c *Circle) Radius() float64 {
	return c.radius
}

// Add always returns ErrUnsupported
func (c *Circle) Add(Component) error {
	return c.unsupported("add", KindCircle)
}

// Remove always returns ErrUnsupported
func (c *Circle) Remove(Component) error {
	return c.unsupported("remove", KindCircle)
}

// Accept calls visitor.VisitCircle
func (c *Circle) Accept(visitor NodeVisitor) error {
	return visitor.VisitCircle(c)
}

// NewCircle creates a circle
func NewCircle(center Point, radius float64) *Circle {
	return &Circle{shape: shape{position: center}, radius: radius}
}

// Rectangle represents an axis aligned rectangle anchored at its left top corner
type Rectangle struct {
	shape
	width  float64
	height float64
}

func (r *Rectangle) Kind() Kind {
	return KindRectangle
}

// Position returns the left top corner
func (r *Rectangle) Position() Point {
	return r.position
}

func (r *Rectangle) Width() float64 {
	return r.width
}

func (r *Rectangle) Height() float64 {
	return r.height
}

// Add always returns ErrUnsupported
func (r *Rectangle) Add(Component) error {
	return r.unsupported("add", KindRectangle)
}

// Remove always returns ErrUnsupported
func (r *Rectangle) Remove(Component) error {
	return r.unsupported("remove", KindRectangle)
}

// Accept calls visitor.VisitRectangle
func (r *Rectangle) Accept(visitor NodeVisitor) error {
	return visitor.VisitRectangle(r)
}

// NewRectangle creates a rectangle
func NewRectangle(position Point, width, height float64) *Rectangle {
	return &Rectangle{shape: shape{position: position}, width: width, height: height}
}
