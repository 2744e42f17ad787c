package pbinfo

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Section is one headed part of a rendered statement, such as "Cerința"
// or "Date de intrare".
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
	Body   string `json:"body"`
}

var (
	headingRe   = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	codeBlockRe = regexp.MustCompile("(?s)```.*?```")
)

// ExtractSections splits statement markdown at its headings (H1-H6).
// Text before the first heading is dropped. Anchors are URL-safe and
// duplicates get numeric suffixes.
func ExtractSections(markdown string) []Section {
	if markdown == "" {
		return nil
	}

	// Headings inside code blocks (example input files) are not headings.
	masked := codeBlockRe.ReplaceAllStringFunc(markdown, func(block string) string {
		return strings.Repeat(" ", len(block))
	})

	locs := headingRe.FindAllStringSubmatchIndex(masked, -1)
	if len(locs) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(locs))
	anchorCounts := make(map[string]int)

	for i, loc := range locs {
		level := loc[3] - loc[2]
		title := strings.TrimSpace(markdown[loc[4]:loc[5]])

		end := len(markdown)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}

		baseAnchor := generateAnchor(title)
		anchor := baseAnchor
		if count, exists := anchorCounts[baseAnchor]; exists {
			anchor = baseAnchor + "-" + strconv.Itoa(count)
			anchorCounts[baseAnchor]++
		} else {
			anchorCounts[baseAnchor] = 1
		}

		sections = append(sections, Section{
			Level:  level,
			Title:  title,
			Anchor: anchor,
			Body:   strings.TrimSpace(markdown[loc[1]:end]),
		})
	}

	return sections
}

// FindSection returns the first section whose title or anchor matches
// name, ignoring case.
func FindSection(sections []Section, name string) (Section, bool) {
	name = strings.TrimSpace(name)
	for _, s := range sections {
		if strings.EqualFold(s.Title, name) || strings.EqualFold(s.Anchor, name) {
			return s, true
		}
	}
	return Section{}, false
}

// generateAnchor creates a URL-safe anchor from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func generateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
