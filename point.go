package scenegraph

// Point represents a position on the page
type Point struct {
	X float64
	Y float64
}
