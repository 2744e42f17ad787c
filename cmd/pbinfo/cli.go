package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/pbinfo"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	BaseURL   string
	Problems  pbinfo.ProblemService
	Store     pbinfo.ProblemStore
	Extractor pbinfo.MetadataExtractor
	Cleaner   pbinfo.StatementCleaner
	Converter pbinfo.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL string        `name:"base-url" env:"PBINFO_BASE_URL" default:"https://www.pbinfo.ro" help:"Site base URL"`
	DB      string        `name:"db" env:"PBINFO_DB" help:"Archive database path (default ~/.pbinfo/pbinfo.db)"`
	Timeout time.Duration `default:"10s" help:"Per-request timeout"`
	Rate    float64       `default:"1" help:"Maximum requests per second (0 disables pacing)"`
	Verbose bool          `short:"v" help:"Log requests to stderr"`

	Get       GetCmd       `cmd:"" help:"Fetch problems by id or name and show their metadata"`
	Statement StatementCmd `cmd:"" help:"Print a problem statement as Markdown"`
	List      ListCmd      `cmd:"" help:"List archived problems"`
	Verify    VerifyCmd    `cmd:"" help:"Re-extract archived metadata and report differences"`
	Delete    DeleteCmd    `cmd:"" help:"Delete an archived problem"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	Refs        []string `arg:"" name:"ref" help:"Problem id or name (repeatable)"`
	Save        bool     `short:"s" help:"Store fetched problems in the archive"`
	Format      string   `short:"f" enum:"text,json" default:"text" help:"Output format (text, json)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// StatementCmd is the "statement" subcommand.
type StatementCmd struct {
	Ref      string `arg:"" help:"Problem id or name"`
	Sections bool   `help:"List statement headings instead of the full text"`
	Section  string `help:"Print only the named section (title or anchor)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Grade  int `help:"Only problems for this grade"`
	Limit  int `help:"Maximum number of problems to list"`
	Offset int `help:"Number of problems to skip"`
}

// VerifyCmd is the "verify" subcommand.
type VerifyCmd struct {
	IDs []int `arg:"" optional:"" name:"id" help:"Archived problem ids (default all)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    int  `arg:"" help:"Problem id"`
	Force bool `help:"Confirm deletion"`
}
