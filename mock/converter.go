package mock

import "github.com/fwojciec/htmlstore"

var _ htmlstore.Converter = (*Converter)(nil)

// Converter is a mock implementation of htmlstore.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
