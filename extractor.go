package pbinfo

// PageFragments holds the parts of a problem page the extractors work on.
type PageFragments struct {
	// Name is the lower-cased problem name taken from the page title.
	Name string

	// ProblemText is the statement HTML.
	ProblemText string

	// MetaText is the inner HTML of the metadata table.
	MetaText string
}

// PageLocator finds the title, statement and metadata table in a problem page.
type PageLocator interface {
	// Locate returns the page fragments, or EPATTERN if any is missing.
	Locate(page string) (*PageFragments, error)
}

// MetadataExtractor extracts metadata fields from a metadata table fragment.
type MetadataExtractor interface {
	// ExtractMetadata runs every field extractor in order and stops at the
	// first failure, which is returned as a *FieldError.
	ExtractMetadata(metaText string) (*Metadata, error)
}

// StatementCleaner prepares statement HTML for rendering.
type StatementCleaner interface {
	// Clean strips non-content markup from the statement and resolves
	// relative links against baseURL.
	Clean(html string, baseURL string) (string, error)
}
