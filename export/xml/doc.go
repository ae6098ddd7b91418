// Package xml exports scene graph components to an XML like string.
// Composite components are rendered as open and close tags around their
// children, shapes as self closing tags with geometry derived attributes.
package xml
