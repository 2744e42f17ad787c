package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pbinfo"
)

// Run executes the statement command.
func (c *StatementCmd) Run(deps *Dependencies) error {
	p, err := findProblem(deps.Ctx, deps.Problems, c.Ref)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	cleaned, err := deps.Cleaner.Clean(p.ProblemText, deps.BaseURL)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	md, err := deps.Converter.Convert(cleaned)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	if !c.Sections && c.Section == "" {
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	sections := pbinfo.ExtractSections(md)

	if c.Sections {
		for _, s := range sections {
			indent := strings.Repeat("  ", s.Level-1)
			fmt.Fprintf(deps.Stdout, "%s%s (#%s)\n", indent, s.Title, s.Anchor)
		}
		return nil
	}

	s, ok := pbinfo.FindSection(sections, c.Section)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: section %q not found. Use --sections to list them.\n", c.Section)
		return pbinfo.Errorf(pbinfo.ENOTFOUND, "section %q not found", c.Section)
	}
	fmt.Fprintln(deps.Stdout, strings.TrimSpace(s.Body))
	return nil
}
