package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/pbinfo"
)

// Compile-time interface verification.
var _ pbinfo.ProblemStore = (*ProblemStore)(nil)

// ProblemStore implements pbinfo.ProblemStore using SQLite.
type ProblemStore struct {
	db *DB

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewProblemStore creates a new ProblemStore.
func NewProblemStore(db *DB) *ProblemStore {
	return &ProblemStore{db: db, Now: time.Now}
}

const problemColumns = `id, name, problem_text, meta_text, input_file, output_file, grade,
	time_limit, memory_limit, source, author, difficulty, content_hash, fetched_at`

// SaveProblem inserts p or replaces the archived copy with the same id.
func (s *ProblemStore) SaveProblem(ctx context.Context, p *pbinfo.Problem) (*pbinfo.StoredProblem, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	stored := &pbinfo.StoredProblem{
		Problem:     *p,
		ContentHash: hashContent(p.MetaText, p.ProblemText),
		FetchedAt:   s.Now().UTC().Truncate(time.Second),
	}

	var difficulty sql.NullString
	if p.Difficulty != nil {
		difficulty = sql.NullString{String: string(*p.Difficulty), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO problems (`+problemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			problem_text = excluded.problem_text,
			meta_text = excluded.meta_text,
			input_file = excluded.input_file,
			output_file = excluded.output_file,
			grade = excluded.grade,
			time_limit = excluded.time_limit,
			memory_limit = excluded.memory_limit,
			source = excluded.source,
			author = excluded.author,
			difficulty = excluded.difficulty,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, p.ID, p.Name, p.ProblemText, p.MetaText, p.InputSource.File, p.OutputSource.File, p.Grade,
		nullString(p.TimeLimit), nullString(p.MemoryLimit), nullString(p.Source), nullString(p.Author),
		difficulty, stored.ContentHash, stored.FetchedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// FindProblemByID retrieves an archived problem by id.
func (s *ProblemStore) FindProblemByID(ctx context.Context, id int) (*pbinfo.StoredProblem, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+problemColumns+` FROM problems WHERE id = ?`, id)

	p, err := scanProblem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pbinfo.Errorf(pbinfo.ENOTFOUND, "problem %d not archived", id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FindProblems retrieves archived problems matching the filter, ordered by id.
func (s *ProblemStore) FindProblems(ctx context.Context, filter pbinfo.ProblemFilter) ([]*pbinfo.StoredProblem, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + problemColumns + " FROM problems WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, strings.ToLower(*filter.Name))
	}
	if filter.Grade != nil {
		query.WriteString(" AND grade = ?")
		args = append(args, *filter.Grade)
	}

	query.WriteString(" ORDER BY id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var problems []*pbinfo.StoredProblem
	for rows.Next() {
		p, err := scanProblem(rows)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}

	return problems, rows.Err()
}

// DeleteProblem removes a problem from the archive.
func (s *ProblemStore) DeleteProblem(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM problems WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pbinfo.Errorf(pbinfo.ENOTFOUND, "problem %d not archived", id)
	}

	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProblem(sc scanner) (*pbinfo.StoredProblem, error) {
	var p pbinfo.StoredProblem
	var inputFile, outputFile, fetchedAt string
	var timeLimit, memoryLimit, source, author, difficulty sql.NullString

	if err := sc.Scan(&p.ID, &p.Name, &p.ProblemText, &p.MetaText, &inputFile, &outputFile, &p.Grade,
		&timeLimit, &memoryLimit, &source, &author, &difficulty, &p.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	p.InputSource = pbinfo.FileSource(inputFile)
	p.OutputSource = pbinfo.FileSource(outputFile)
	p.TimeLimit = stringPtr(timeLimit)
	p.MemoryLimit = stringPtr(memoryLimit)
	p.Source = stringPtr(source)
	p.Author = stringPtr(author)
	if difficulty.Valid {
		d := pbinfo.Difficulty(difficulty.String)
		p.Difficulty = &d
	}

	var err error
	p.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &p, nil
}
