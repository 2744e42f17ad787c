package main

import (
	"fmt"

	"github.com/fwojciec/pbinfo"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pbinfo.Errorf(pbinfo.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Store.DeleteProblem(deps.Ctx, c.ID); err != nil {
		if pbinfo.ErrorCode(err) == pbinfo.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: problem %d is not archived. Use 'pbinfo list' to see archived problems.\n", c.ID)
			return err
		}
		printError(deps.Stderr, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted problem %d\n", c.ID)
	return nil
}
