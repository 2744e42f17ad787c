package pbinfo

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Problem is a problem page fetched from the site together with the
// metadata extracted from it.
type Problem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	// ProblemText is the statement HTML, from the "Cerința" heading up to
	// the end of the article.
	ProblemText string `json:"problemText"`

	// MetaText is the inner HTML of the metadata table. Kept so extraction
	// can be re-run against exactly what was fetched.
	MetaText string `json:"metaText"`

	Metadata
}

// URL returns the address of the problem page on the site at baseURL.
func (p *Problem) URL(baseURL string) string {
	return ProblemURL(baseURL, p.ID)
}

// Metadata holds the fields extracted from a problem's metadata table.
// Nil pointers mean the table shows "-" for that field.
type Metadata struct {
	InputSource  IOSource `json:"inputSource"`
	OutputSource IOSource `json:"outputSource"`
	Grade        int      `json:"grade"`

	TimeLimit   *string `json:"timeLimit,omitempty"`
	MemoryLimit *string `json:"memoryLimit,omitempty"`

	Source     *string     `json:"source,omitempty"`
	Author     *string     `json:"author,omitempty"`
	Difficulty *Difficulty `json:"difficulty,omitempty"`
}

// Equal reports whether m and other hold the same field values.
func (m Metadata) Equal(other Metadata) bool {
	return m.InputSource == other.InputSource &&
		m.OutputSource == other.OutputSource &&
		m.Grade == other.Grade &&
		equalPtr(m.TimeLimit, other.TimeLimit) &&
		equalPtr(m.MemoryLimit, other.MemoryLimit) &&
		equalPtr(m.Source, other.Source) &&
		equalPtr(m.Author, other.Author) &&
		equalPtr(m.Difficulty, other.Difficulty)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// IOSource describes where a problem reads its input or writes its output.
// The zero value is Std (keyboard for input, screen for output).
// In JSON, Std is the string "std" and a file source is {"file": name}.
type IOSource struct {
	File string
}

// Std is the standard input/output source.
var Std = IOSource{}

// FileSource returns a source backed by the named file.
func FileSource(name string) IOSource {
	return IOSource{File: name}
}

// IsStd reports whether the source is standard input/output.
func (s IOSource) IsStd() bool {
	return s.File == ""
}

func (s IOSource) String() string {
	if s.IsStd() {
		return "std"
	}
	return s.File
}

type fileSourceJSON struct {
	File string `json:"file"`
}

func (s IOSource) MarshalJSON() ([]byte, error) {
	if s.IsStd() {
		return []byte(`"std"`), nil
	}
	return json.Marshal(fileSourceJSON{File: s.File})
}

func (s *IOSource) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "std" {
			return Errorf(EINVALID, "unknown io source %q", tag)
		}
		*s = Std
		return nil
	}
	var f fileSourceJSON
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f.File == "" {
		return Errorf(EINVALID, "io source file name required")
	}
	*s = FileSource(f.File)
	return nil
}

// Difficulty is the difficulty level the site assigns to a problem.
type Difficulty string

// Difficulty levels.
const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyDifficult Difficulty = "difficult"
	DifficultyContest   Difficulty = "contest"
)

// ParseDifficulty maps the site's lowercase difficulty token to a Difficulty.
// Both the comma-below and the cedilla spelling of "ușor" are accepted.
func ParseDifficulty(token string) (Difficulty, error) {
	switch strings.TrimSpace(token) {
	case "ușor", "uşor":
		return DifficultyEasy, nil
	case "mediu":
		return DifficultyMedium, nil
	case "dificil":
		return DifficultyDifficult, nil
	case "concurs":
		return DifficultyContest, nil
	default:
		return "", Errorf(EPARSE, "unknown difficulty %q", strings.TrimSpace(token))
	}
}

// ProblemService fetches problems from the site.
type ProblemService interface {
	// FindProblemByID fetches and extracts the problem with the given id.
	// Returns *UnknownIDError if the site has no such problem.
	FindProblemByID(ctx context.Context, id int) (*Problem, error)

	// FindProblemByName resolves a problem name through the search endpoint
	// and fetches the exact (case-insensitive) match.
	// Returns *UnknownNameError if no candidate matches exactly.
	FindProblemByName(ctx context.Context, name string) (*Problem, error)
}

// StoredProblem is a problem kept in the local archive.
type StoredProblem struct {
	Problem
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// ProblemFilter represents a filter for FindProblems.
type ProblemFilter struct {
	ID    *int    `json:"id"`
	Name  *string `json:"name"`
	Grade *int    `json:"grade"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ProblemStore archives fetched problems locally. The archive is never
// consulted when fetching from the site.
type ProblemStore interface {
	// SaveProblem inserts the problem or replaces the stored copy with the same id.
	SaveProblem(ctx context.Context, p *Problem) (*StoredProblem, error)

	// FindProblemByID returns the archived problem with the given id.
	// Returns ENOTFOUND if the problem is not archived.
	FindProblemByID(ctx context.Context, id int) (*StoredProblem, error)

	// FindProblems returns archived problems matching the filter, ordered by id.
	FindProblems(ctx context.Context, filter ProblemFilter) ([]*StoredProblem, error)

	// DeleteProblem removes a problem from the archive.
	// Returns ENOTFOUND if the problem is not archived.
	DeleteProblem(ctx context.Context, id int) error
}

// Validate returns an error if the problem cannot be archived.
func (p *Problem) Validate() error {
	if p.ID <= 0 {
		return Errorf(EINVALID, "problem id must be positive, got %d", p.ID)
	}
	if p.Name == "" {
		return Errorf(EINVALID, "problem name required")
	}
	return nil
}

// ProblemURL returns the address of the problem page for id.
func ProblemURL(baseURL string, id int) string {
	return strings.TrimSuffix(baseURL, "/") + "/probleme/" + strconv.Itoa(id)
}
