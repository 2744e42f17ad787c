package regexp

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/pbinfo"
)

// Ensure Extractor implements pbinfo.MetadataExtractor at compile time.
var _ pbinfo.MetadataExtractor = (*Extractor)(nil)

// Site tokens for standard input and output.
const (
	stdInputToken  = "tastatură"
	stdOutputToken = "ecran"
	emptyToken     = "-"
)

// Metadata table cells, 1-based, in the order the site renders them.
const (
	cellGrade       = 2
	cellTimeLimit   = 4
	cellMemoryLimit = 5
	cellSource      = 6
	cellAuthor      = 7
	cellDifficulty  = 8
)

var (
	// rowRe matches eight consecutive <td> cells; group N is the content of cell N.
	rowRe = regexp.MustCompile(strings.Repeat(`<td[ \S]*?>([\s\S]*?)</td>\s*?`, 7) + `<td[ \S]*?>([\s\S]*?)</td>`)

	ioRe     = regexp.MustCompile(`<span style="background: url\(.*?>\s*([\w\.ă]+) / ([\w\.ă]+)\s*</span>`)
	memoryRe = regexp.MustCompile(`>([\w -]*)<`)
)

// Extractor runs every field extractor over a metadata fragment.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMetadata extracts input source, output source, grade, time limit,
// memory limit, source, author and difficulty, in that order. The first
// failure is returned as a *pbinfo.FieldError.
func (e *Extractor) ExtractMetadata(metaText string) (*pbinfo.Metadata, error) {
	var m pbinfo.Metadata
	var err error

	if m.InputSource, err = ExtractInputSource(metaText); err != nil {
		return nil, &pbinfo.FieldError{Field: "input_source", Err: err}
	}
	if m.OutputSource, err = ExtractOutputSource(metaText); err != nil {
		return nil, &pbinfo.FieldError{Field: "output_source", Err: err}
	}
	if m.Grade, err = ExtractGrade(metaText); err != nil {
		return nil, &pbinfo.FieldError{Field: "grade", Err: err}
	}
	if m.TimeLimit, err = ExtractTimeLimit(metaText); err != nil {
		return nil, &pbinfo.FieldError{Field: "time_limit", Err: err}
	}
	if m.MemoryLimit, err = ExtractMemoryLimit(metaText); err != nil {
		return nil, &pbinfo.FieldError{Field: "memory_limit", Err: err}
	}
	if m.Source, err = ExtractSource(metaText); err != nil {
		return nil, &pbinfo.FieldError{Field: "source", Err: err}
	}
	if m.Author, err = ExtractAuthor(metaText); err != nil {
		return nil, &pbinfo.FieldError{Field: "author", Err: err}
	}
	if m.Difficulty, err = ExtractDifficulty(metaText); err != nil {
		return nil, &pbinfo.FieldError{Field: "difficulty", Err: err}
	}

	return &m, nil
}

// ExtractInputSource returns where the problem reads its input from.
func ExtractInputSource(metaText string) (pbinfo.IOSource, error) {
	m := ioRe.FindStringSubmatch(metaText)
	if m == nil {
		return pbinfo.IOSource{}, pbinfo.Errorf(pbinfo.EPATTERN, "failed to locate the input source in the HTML")
	}
	return ioSource(m[1], stdInputToken), nil
}

// ExtractOutputSource returns where the problem writes its output to.
func ExtractOutputSource(metaText string) (pbinfo.IOSource, error) {
	m := ioRe.FindStringSubmatch(metaText)
	if m == nil {
		return pbinfo.IOSource{}, pbinfo.Errorf(pbinfo.EPATTERN, "failed to locate the output source in the HTML")
	}
	return ioSource(m[2], stdOutputToken), nil
}

func ioSource(token, stdToken string) pbinfo.IOSource {
	token = strings.TrimSpace(token)
	if token == stdToken {
		return pbinfo.Std
	}
	return pbinfo.FileSource(token)
}

// ExtractGrade returns the school grade (9 to 11) the problem targets.
func ExtractGrade(metaText string) (int, error) {
	cell, err := cellText(metaText, cellGrade, "grade")
	if err != nil {
		return 0, err
	}

	grade, err := strconv.Atoi(cell)
	if err != nil || grade <= 0 {
		return 0, pbinfo.Errorf(pbinfo.EPARSE, "could not convert the grade %q into a positive integer", cell)
	}
	return grade, nil
}

// ExtractTimeLimit returns the time limit, or nil if the problem has none.
func ExtractTimeLimit(metaText string) (*string, error) {
	return optionalCell(metaText, cellTimeLimit, "time limit")
}

// ExtractMemoryLimit returns the memory limit as "total / stack", with "-"
// standing in for a missing stack limit, or nil if the problem has none.
func ExtractMemoryLimit(metaText string) (*string, error) {
	cell, err := cellText(metaText, cellMemoryLimit, "memory limit")
	if err != nil {
		return nil, err
	}

	matches := memoryRe.FindAllStringSubmatch(cell, -1)
	var limit string
	switch len(matches) {
	case 2:
		limit = strings.TrimSpace(matches[0][1]) + " / " + strings.TrimSpace(matches[1][1])
	case 1:
		limit = strings.TrimSpace(matches[0][1]) + " / -"
	default:
		return nil, nil
	}
	return &limit, nil
}

// ExtractSource returns the problem's source (usually a contest), or nil.
func ExtractSource(metaText string) (*string, error) {
	return optionalCell(metaText, cellSource, "source")
}

// ExtractAuthor returns the problem's author, or nil.
func ExtractAuthor(metaText string) (*string, error) {
	return optionalCell(metaText, cellAuthor, "author")
}

// ExtractDifficulty returns the problem's difficulty, or nil if unrated.
func ExtractDifficulty(metaText string) (*pbinfo.Difficulty, error) {
	token, err := optionalCell(metaText, cellDifficulty, "difficulty")
	if err != nil || token == nil {
		return nil, err
	}

	d, err := pbinfo.ParseDifficulty(*token)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// cellText returns the trimmed content of the given 1-based metadata cell.
func cellText(metaText string, cell int, field string) (string, error) {
	m := rowRe.FindStringSubmatch(metaText)
	if m == nil {
		return "", pbinfo.Errorf(pbinfo.EPATTERN, "failed to locate the %s in the HTML", field)
	}
	return strings.TrimSpace(m[cell]), nil
}

// optionalCell is cellText with the "-" placeholder mapped to nil.
func optionalCell(metaText string, cell int, field string) (*string, error) {
	text, err := cellText(metaText, cell, field)
	if err != nil {
		return nil, err
	}
	if text == emptyToken {
		return nil, nil
	}
	return &text, nil
}
