package mock

import "github.com/fwojciec/pbinfo"

var (
	_ pbinfo.PageLocator       = (*PageLocator)(nil)
	_ pbinfo.MetadataExtractor = (*MetadataExtractor)(nil)
	_ pbinfo.StatementCleaner  = (*StatementCleaner)(nil)
)

// PageLocator is a mock implementation of pbinfo.PageLocator.
type PageLocator struct {
	LocateFn func(page string) (*pbinfo.PageFragments, error)
}

func (l *PageLocator) Locate(page string) (*pbinfo.PageFragments, error) {
	return l.LocateFn(page)
}

// MetadataExtractor is a mock implementation of pbinfo.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(metaText string) (*pbinfo.Metadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(metaText string) (*pbinfo.Metadata, error) {
	return e.ExtractMetadataFn(metaText)
}

// StatementCleaner is a mock implementation of pbinfo.StatementCleaner.
type StatementCleaner struct {
	CleanFn func(html string, baseURL string) (string, error)
}

func (c *StatementCleaner) Clean(html string, baseURL string) (string, error) {
	return c.CleanFn(html, baseURL)
}
