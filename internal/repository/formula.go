package repository

import (
	"fmt"
	"strings"

	"github.com/maheshrc27/content-pipeline/internal/models"
)

type FilterOp int

const (
	FilterNone FilterOp = iota
	FilterEquals
	FilterNotIn
)

type StatusFilter struct {
	Op       FilterOp
	Statuses []models.Status
}

func StatusIs(s models.Status) StatusFilter {
	return StatusFilter{Op: FilterEquals, Statuses: []models.Status{s}}
}

func StatusNotIn(s ...models.Status) StatusFilter {
	return StatusFilter{Op: FilterNotIn, Statuses: s}
}

func StatusIn(s ...models.Status) StatusFilter {
	return StatusFilter{Op: FilterEquals, Statuses: s}
}

type ListOptions struct {
	Status        StatusFilter
	ExcludePosted bool
	// RecurringOn keeps only recurring templates for that day when set.
	RecurringOn models.RepeatDay
	// MaxRecords <= 0 means DefaultMaxRecords.
	MaxRecords int
}

const DefaultMaxRecords = 100

func quote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", `\'`) + "'"
}

func statusField() string {
	return "{" + fieldAIStatus + "}"
}

func combine(fn string, parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return fmt.Sprintf("%s(%s)", fn, strings.Join(parts, ", "))
}

// buildFormula renders the options as an Airtable filterByFormula expression.
func buildFormula(opts ListOptions) string {
	var parts []string

	switch opts.Status.Op {
	case FilterEquals:
		var eq []string
		for _, s := range opts.Status.Statuses {
			eq = append(eq, fmt.Sprintf("%s = %s", statusField(), quote(string(s))))
		}
		if c := combine("OR", eq); c != "" {
			parts = append(parts, c)
		}
	case FilterNotIn:
		for _, s := range opts.Status.Statuses {
			parts = append(parts, fmt.Sprintf("%s != %s", statusField(), quote(string(s))))
		}
	}

	if opts.ExcludePosted {
		parts = append(parts, "{"+fieldPosted+"} != TRUE()")
	}

	if opts.RecurringOn != "" {
		parts = append(parts,
			"{"+fieldIsRecurring+"} = TRUE()",
			fmt.Sprintf("{%s} = %s", fieldRepeatDay, quote(string(opts.RecurringOn))),
		)
	}

	return combine("AND", parts)
}
