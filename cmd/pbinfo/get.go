package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/fwojciec/pbinfo"
	"golang.org/x/sync/errgroup"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	if len(c.Refs) == 0 {
		fmt.Fprintln(deps.Stderr, "error: at least one problem id or name is required")
		return pbinfo.Errorf(pbinfo.EINVALID, "no problem given")
	}
	if c.Save && deps.Store == nil {
		return pbinfo.Errorf(pbinfo.EINTERNAL, "archive not configured")
	}

	problems := make([]*pbinfo.Problem, len(c.Refs))
	errs := make([]error, len(c.Refs))

	// Failures are collected per ref so one bad ref does not cancel the rest.
	var g errgroup.Group
	g.SetLimit(max(c.Concurrency, 1))
	for i, ref := range c.Refs {
		g.Go(func() error {
			problems[i], errs[i] = findProblem(deps.Ctx, deps.Problems, ref)
			return nil
		})
	}
	_ = g.Wait()

	var found []*pbinfo.Problem
	failed := 0
	for i, ref := range c.Refs {
		if errs[i] != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "%s: ", ref)
			printError(deps.Stderr, errs[i])
			continue
		}
		p := problems[i]

		if c.Save {
			stored, err := deps.Store.SaveProblem(deps.Ctx, p)
			if err != nil {
				failed++
				fmt.Fprintf(deps.Stderr, "%s: ", ref)
				printError(deps.Stderr, err)
				continue
			}
			fmt.Fprintf(deps.Stderr, "%s problem %d (%s) hash %s\n",
				color.GreenString("saved"), stored.ID, stored.Name, stored.ContentHash)
		}
		found = append(found, p)
	}

	if err := c.render(deps, found); err != nil {
		return err
	}

	if failed > 0 {
		return pbinfo.Errorf(pbinfo.EINTERNAL, "%d of %d problems failed", failed, len(c.Refs))
	}
	return nil
}

func (c *GetCmd) render(deps *Dependencies, problems []*pbinfo.Problem) error {
	if c.Format == "json" {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		var v any = problems
		if len(c.Refs) == 1 && len(problems) == 1 {
			v = problems[0]
		}
		if len(problems) == 0 {
			return nil
		}
		return enc.Encode(v)
	}

	for i, p := range problems {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		renderProblem(deps.Stdout, p, deps.BaseURL)
	}
	return nil
}
