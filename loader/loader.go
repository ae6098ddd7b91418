// Package loader builds scene graph components from YAML scene descriptions.
package loader

import (
	"fmt"
	"os"

	"github.com/viant/scenegraph"
	"gopkg.in/yaml.v3"
)

// Point represents a YAML point
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Node represents a YAML scene node
type Node struct {
	Kind     string  `yaml:"kind"`
	Position *Point  `yaml:"position,omitempty"`
	Center   *Point  `yaml:"center,omitempty"`
	Width    float64 `yaml:"width,omitempty"`
	Height   float64 `yaml:"height,omitempty"`
	Radius   float64 `yaml:"radius,omitempty"`
	Children []*Node `yaml:"children,omitempty"`
}

// Decode builds component from YAML scene description
func Decode(data []byte) (scenegraph.Component, error) {
	root := &Node{}
	if err := yaml.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	return root.Component("")
}

// Load builds component from YAML scene file
func Load(path string) (scenegraph.Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	component, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return component, nil
}

// Component builds the node component, location prefixes error messages
func (n *Node) Component(location string) (scenegraph.Component, error) {
	kind, err := scenegraph.ParseKind(n.Kind)
	if err != nil {
		return nil, locate(location, err)
	}
	var component scenegraph.Component
	switch kind {
	case scenegraph.KindPage:
		component = scenegraph.NewPage()
	case scenegraph.KindCompoundShape:
		component = scenegraph.NewCompoundShape()
	case scenegraph.KindCircle:
		component = scenegraph.NewCircle(n.Center.point(), n.Radius)
	case scenegraph.KindRectangle:
		component = scenegraph.NewRectangle(n.Position.point(), n.Width, n.Height)
	}
	if !kind.IsContainer() {
		if len(n.Children) > 0 {
			return nil, locate(location, scenegraph.ErrUnsupported)
		}
		return component, nil
	}
	for i, child := range n.Children {
		childLocation := fmt.Sprintf("children[%d]", i)
		if location != "" {
			childLocation = location + "." + childLocation
		}
		if child == nil {
			return nil, locate(childLocation, fmt.Errorf("%w: empty node", scenegraph.ErrInvalidChild))
		}
		childComponent, err := child.Component(childLocation)
		if err != nil {
			return nil, err
		}
		if err = component.Add(childComponent); err != nil {
			return nil, locate(childLocation, err)
		}
	}
	return component, nil
}

func locate(location string, err error) error {
	if location == "" {
		location = "root"
	}
	return fmt.Errorf("%v: %w", location, err)
}

func (p *Point) point() scenegraph.Point {
	if p == nil {
		return scenegraph.Point{}
	}
	return scenegraph.Point{X: p.X, Y: p.Y}
}
