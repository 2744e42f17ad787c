// Package pbinfo fetches competitive-programming problems from
// www.pbinfo.ro and extracts their metadata (grade, limits, source,
// author, difficulty, input/output channel) from the problem page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., regexp/, http/, sqlite/).
package pbinfo

// DefaultBaseURL is the address of the site every problem is fetched from.
const DefaultBaseURL = "https://www.pbinfo.ro"
