package json

import "github.com/viant/scenegraph/format/text"

// Option export option
type Option func(c *config)

// Options represents export options
type Options []Option

type config struct {
	caseFormat text.CaseFormat
}

// Apply applies options
func (o Options) Apply(c *config) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(c)
	}
}

// WithCaseFormat sets key case format
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(c *config) {
		c.caseFormat = caseFormat
	}
}

func (c *config) key(name string) string {
	if c == nil {
		return name
	}
	return c.caseFormat.Format(name)
}

func newConfig(opts []Option) *config {
	ret := &config{}
	Options(opts).Apply(ret)
	return ret
}
