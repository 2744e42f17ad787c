package mock

import "github.com/fwojciec/pbinfo"

var _ pbinfo.Converter = (*Converter)(nil)

// Converter is a mock implementation of pbinfo.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
