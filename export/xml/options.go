package xml

import "github.com/viant/scenegraph/format/text"

// Option export visitor option
type Option func(v *ExportVisitor)

// Options represents export visitor options
type Options []Option

// Apply applies options
func (o Options) Apply(v *ExportVisitor) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(v)
	}
}

// WithCaseFormat sets attribute name case format
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(v *ExportVisitor) {
		v.caseFormat = caseFormat
	}
}
