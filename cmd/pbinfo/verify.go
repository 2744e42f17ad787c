package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/fwojciec/pbinfo"
	"github.com/fwojciec/pbinfo/scrape"
)

// Run executes the verify command.
func (c *VerifyCmd) Run(deps *Dependencies) error {
	problems, err := c.load(deps)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	if len(problems) == 0 {
		fmt.Fprintln(deps.Stdout, "No archived problems to verify.")
		return nil
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	failed := 0
	for _, p := range problems {
		err := scrape.Verify(deps.Extractor, &p.Problem)
		var mismatch *scrape.Mismatch
		switch {
		case err == nil:
			fmt.Fprintf(deps.Stdout, "%s %d %s\n", green("ok"), p.ID, p.Name)
		case errors.As(err, &mismatch):
			failed++
			fmt.Fprintf(deps.Stdout, "%s %d %s\n", red("changed"), p.ID, p.Name)
			printDiff(deps.Stdout, mismatch)
		default:
			failed++
			fmt.Fprintf(deps.Stdout, "%s %d %s\n", red("failed"), p.ID, p.Name)
			printError(deps.Stderr, err)
		}
	}

	if failed > 0 {
		return pbinfo.Errorf(pbinfo.EINTERNAL, "%d of %d archived problems failed verification", failed, len(problems))
	}
	return nil
}

func (c *VerifyCmd) load(deps *Dependencies) ([]*pbinfo.StoredProblem, error) {
	if len(c.IDs) == 0 {
		return deps.Store.FindProblems(deps.Ctx, pbinfo.ProblemFilter{})
	}
	problems := make([]*pbinfo.StoredProblem, 0, len(c.IDs))
	for _, id := range c.IDs {
		p, err := deps.Store.FindProblemByID(deps.Ctx, id)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}
	return problems, nil
}

// printDiff writes one line per metadata field whose stored and
// re-extracted values differ.
func printDiff(w io.Writer, m *scrape.Mismatch) {
	field := func(name string, stored, actual string) {
		if stored != actual {
			fmt.Fprintf(w, "  %s: stored %q, extracted %q\n", name, stored, actual)
		}
	}
	s, a := m.Stored, m.Actual
	field("input_source", s.InputSource.String(), a.InputSource.String())
	field("output_source", s.OutputSource.String(), a.OutputSource.String())
	field("grade", fmt.Sprint(s.Grade), fmt.Sprint(a.Grade))
	field("time_limit", orDash(s.TimeLimit), orDash(a.TimeLimit))
	field("memory_limit", orDash(s.MemoryLimit), orDash(a.MemoryLimit))
	field("source", orDash(s.Source), orDash(a.Source))
	field("author", orDash(s.Author), orDash(a.Author))
	field("difficulty", difficultyText(s.Difficulty), difficultyText(a.Difficulty))
}
