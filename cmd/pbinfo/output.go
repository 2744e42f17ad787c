package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/fwojciec/pbinfo"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// findProblem resolves ref as a numeric id when it parses as one and as a
// problem name otherwise.
func findProblem(ctx context.Context, problems pbinfo.ProblemService, ref string) (*pbinfo.Problem, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(ref)); err == nil {
		return problems.FindProblemByID(ctx, id)
	}
	return problems.FindProblemByName(ctx, ref)
}

// printError writes a one-line diagnostic for err, followed by the search
// candidates when a name could not be resolved.
func printError(w io.Writer, err error) {
	red := color.New(color.FgRed).SprintFunc()

	var nameErr *pbinfo.UnknownNameError
	if errors.As(err, &nameErr) {
		fmt.Fprintf(w, "%s unknown problem name %q\n", red("error:"), nameErr.Name)
		if len(nameErr.Suggestions) > 0 {
			fmt.Fprintln(w, "Did you mean:")
			for _, s := range nameErr.Suggestions {
				fmt.Fprintf(w, "  %s\n", s)
			}
		}
		return
	}

	var fieldErr *pbinfo.FieldError
	if errors.As(err, &fieldErr) {
		fmt.Fprintf(w, "%s %s: %s\n", red("error:"), fieldErr.Field, pbinfo.ErrorMessage(fieldErr.Err))
		return
	}

	fmt.Fprintf(w, "%s %s\n", red("error:"), pbinfo.ErrorMessage(err))
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func difficultyText(d *pbinfo.Difficulty) string {
	if d == nil {
		return "-"
	}
	return string(*d)
}

// renderProblem writes the metadata of p as a two-column table.
func renderProblem(w io.Writer, p *pbinfo.Problem, baseURL string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, WidthMax: 20},
		{Number: 2, Align: text.AlignLeft, WidthMax: 80},
	})

	t.AppendRows([]table.Row{
		{"ID", p.ID},
		{"Name", p.Name},
		{"URL", p.URL(baseURL)},
		{"Grade", p.Grade},
		{"Input", p.InputSource},
		{"Output", p.OutputSource},
		{"Time limit", orDash(p.TimeLimit)},
		{"Memory limit", orDash(p.MemoryLimit)},
		{"Source", orDash(p.Source)},
		{"Author", orDash(p.Author)},
		{"Difficulty", difficultyText(p.Difficulty)},
	})
	t.Render()
}

// renderArchive writes archived problems as one table row each.
func renderArchive(w io.Writer, problems []*pbinfo.StoredProblem) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Grade", "Difficulty", "Fetched"})
	for _, p := range problems {
		t.AppendRow(table.Row{
			p.ID,
			p.Name,
			p.Grade,
			difficultyText(p.Difficulty),
			p.FetchedAt.Format("2006-01-02 15:04"),
		})
	}
	t.Render()
}
