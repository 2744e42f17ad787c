package main

import (
	"fmt"

	"github.com/fwojciec/pbinfo"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pbinfo.ProblemFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Grade > 0 {
		filter.Grade = &c.Grade
	}

	problems, err := deps.Store.FindProblems(deps.Ctx, filter)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	if len(problems) == 0 {
		fmt.Fprintln(deps.Stdout, "No archived problems. Use 'pbinfo get --save' to store some.")
		return nil
	}

	renderArchive(deps.Stdout, problems)
	return nil
}
