package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/temirov/codeclip/internal/types"
	"github.com/temirov/codeclip/internal/utils"
)

// Destination names where the document was delivered.
type Destination int

const (
	DestinationClipboard Destination = iota
	DestinationStandardOutput
)

const (
	headlineFormat        = "%s %d %s (%s) from %s to %s.\n"
	filtersFormat         = "Filters: %s\n"
	tokensSummaryFormat   = "Tokens: %d (%s)\n"
	oversizedNoticeFormat = "Omitted content of %d oversized %s.\n"
	warningsFormat        = "Skipped %d unreadable %s; see warnings above.\n"
)

func (destination Destination) verb() string {
	if destination == DestinationStandardOutput {
		return "Printed"
	}
	return "Copied"
}

func (destination Destination) String() string {
	if destination == DestinationStandardOutput {
		return "standard output"
	}
	return "clipboard"
}

// Summarize aggregates the totals reported after a run. model is empty when
// tokens were not counted.
func Summarize(rootPath string, entries []*types.FileEntry, oversized []*types.FileEntry, warningCount int, model string) types.OutputSummary {
	summary := types.OutputSummary{
		RootPath:   rootPath,
		TotalFiles: len(entries),
		Model:      model,
		Oversized:  len(oversized),
		Warnings:   warningCount,
	}
	for _, entry := range entries {
		summary.TotalBytes += entry.SizeBytes
		summary.TotalTokens += entry.Tokens
	}
	return summary
}

// WriteSummary writes the human-readable summary of a run. Colors are applied
// only when the process writes to a terminal.
func WriteSummary(writer io.Writer, summary types.OutputSummary, destination Destination, filters string) {
	headline := color.New(color.FgGreen, color.Bold)
	faint := color.New(color.Faint)
	warning := color.New(color.FgYellow)

	headline.Fprintf(writer, headlineFormat,
		destination.verb(),
		summary.TotalFiles,
		utils.Pluralize(summary.TotalFiles, "file", "files"),
		utils.FormatFileSize(summary.TotalBytes),
		summary.RootPath,
		destination)
	if filters != "" {
		faint.Fprintf(writer, filtersFormat, filters)
	}
	if summary.Model != "" {
		fmt.Fprintf(writer, tokensSummaryFormat, summary.TotalTokens, summary.Model)
	}
	if summary.Oversized > 0 {
		warning.Fprintf(writer, oversizedNoticeFormat, summary.Oversized, utils.Pluralize(summary.Oversized, "file", "files"))
	}
	if summary.Warnings > 0 {
		warning.Fprintf(writer, warningsFormat, summary.Warnings, utils.Pluralize(summary.Warnings, "entry", "entries"))
	}
}
