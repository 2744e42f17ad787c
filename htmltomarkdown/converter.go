// Package htmltomarkdown renders problem statements as Markdown.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pbinfo"
)

// Ensure Converter implements pbinfo.Converter at compile time.
var _ pbinfo.Converter = (*Converter)(nil)

var (
	headingLineRe = regexp.MustCompile(`(?m)^#{1,6} .*$`)
	blankRunRe    = regexp.MustCompile(`\n{3,}`)

	// Older statements spell headings with cedillas ("Cerinţa", "Restricţii").
	cedillas = strings.NewReplacer("ţ", "ț", "Ţ", "Ț", "ş", "ș", "Ş", "Ș")
)

// Converter renders statement HTML as Markdown. Headings are always ATX so
// pbinfo.ExtractSections can split them, and heading text uses the
// comma-below letters so section lookup does not depend on page age.
// Example tables are kept as Markdown tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
				commonmark.WithBulletListMarker("-"),
			),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms statement HTML into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pbinfo.Errorf(pbinfo.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", pbinfo.Errorf(pbinfo.EINTERNAL, "failed to convert statement: %v", err)
	}

	result = headingLineRe.ReplaceAllStringFunc(result, cedillas.Replace)
	result = blankRunRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result), nil
}
