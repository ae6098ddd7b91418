package scenegraph

// Page represents a document holding any component
type Page struct {
	container
}

// Kind returns KindPage
func (p *Page) Kind() Kind {
	return KindPage
}

// Add adds a child, adding an existing child only refreshes its parent
func (p *Page) Add(component Component) error {
	return p.add(p, component)
}

// Remove removes a child, absent children are ignored
func (p *Page) Remove(component Component) error {
	return p.remove(p, component)
}

// Accept calls visitor.VisitPage
func (p *Page) Accept(visitor NodeVisitor) error {
	return visitor.VisitPage(p)
}

// NewPage creates an empty page
func NewPage() *Page {
	return &Page{}
}
