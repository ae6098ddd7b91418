package scenegraph

import (
	"fmt"
	"strings"
)

// Kind identifies the concrete node type of a component.
type Kind int

const (
	KindUndefined Kind = iota
	KindPage
	KindCompoundShape
	KindCircle
	KindRectangle
)

func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindCompoundShape:
		return "compoundShape"
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	default:
		return "undefined"
	}
}

// IsContainer returns true if nodes of this kind hold children
func (k Kind) IsContainer() bool {
	return k == KindPage || k == KindCompoundShape
}

// ParseKind returns the kind for a name, ignoring case, dashes and underscores
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(name)
	normalized = strings.NewReplacer("_", "", "-", "", " ", "").Replace(normalized)
	switch normalized {
	case "page":
		return KindPage, nil
	case "compoundshape", "compound":
		return KindCompoundShape, nil
	case "circle":
		return KindCircle, nil
	case "rectangle", "rect":
		return KindRectangle, nil
	}
	return KindUndefined, fmt.Errorf("unknown kind: %q", name)
}
