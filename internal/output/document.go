package output

import (
	"fmt"
	"strings"

	"github.com/temirov/codeclip/internal/types"
	"github.com/temirov/codeclip/internal/utils"
)

const (
	structureHeading   = "# Directory Structure"
	sourceFilesHeading = "# Source Files"
	fileHeadingFormat  = "## File: %s"
	metadataFormat     = "Size: %s | Last Modified: %s"
	tokensFormat       = " | Tokens: %d"
	binaryNoticeFormat = "_%s (%s)_"
	noFilesNotice      = "_No files matched the active filters._"
	truncatedLegend    = "`/ ...` marks a directory at the depth limit whose contents were not listed."
	oversizedLegend    = "`[too large: <size>]` marks a file above the size limit; its content is omitted."

	backtick         = '`'
	minimumFenceSize = 3
)

// DocumentFormatter assembles the Markdown document for a collected tree.
type DocumentFormatter struct {
	// ShowTokens appends the token estimate to every file's metadata line.
	ShowTokens bool
}

// Format renders tree followed by one section per entry, in entry order.
func (formatter DocumentFormatter) Format(tree *types.DirectoryNode, entries []*types.FileEntry) string {
	var builder strings.Builder

	renderedTree := RenderTree(tree)
	treeFence := fenceFor(renderedTree)
	builder.WriteString(structureHeading + "\n\n")
	builder.WriteString(treeFence + "\n")
	builder.WriteString(renderedTree)
	builder.WriteString(treeFence + "\n")

	hasTruncated, hasOversized := treeMarkers(tree)
	if hasTruncated || hasOversized {
		builder.WriteString("\n")
		if hasTruncated {
			builder.WriteString(truncatedLegend + "\n")
		}
		if hasOversized {
			builder.WriteString(oversizedLegend + "\n")
		}
	}

	builder.WriteString("\n" + sourceFilesHeading + "\n")
	if len(entries) == 0 {
		builder.WriteString("\n" + noFilesNotice + "\n")
		return builder.String()
	}
	for _, entry := range entries {
		builder.WriteString("\n")
		formatter.writeEntry(&builder, entry)
	}
	return builder.String()
}

func (formatter DocumentFormatter) writeEntry(builder *strings.Builder, entry *types.FileEntry) {
	builder.WriteString(fmt.Sprintf(fileHeadingFormat, entry.RelativePath) + "\n")
	metadata := fmt.Sprintf(metadataFormat, utils.FormatSizeDetail(entry.SizeBytes), utils.FormatTimestamp(entry.LastModified))
	if formatter.ShowTokens {
		metadata += fmt.Sprintf(tokensFormat, entry.Tokens)
	}
	builder.WriteString(metadata + "\n\n")

	if entry.IsBinary {
		builder.WriteString(fmt.Sprintf(binaryNoticeFormat, types.BinaryPlaceholder, entry.MimeType) + "\n")
		return
	}

	fence := fenceFor(entry.Content)
	builder.WriteString(fence + fenceLanguage(entry.Name) + "\n")
	builder.WriteString(entry.Content)
	if entry.Content != "" && !strings.HasSuffix(entry.Content, "\n") {
		builder.WriteString("\n")
	}
	builder.WriteString(fence + "\n")
}

// fenceFor returns a backtick fence one longer than the longest backtick run in
// content, and never shorter than three.
func fenceFor(content string) string {
	longestRun, currentRun := 0, 0
	for index := 0; index < len(content); index++ {
		if content[index] == backtick {
			currentRun++
			if currentRun > longestRun {
				longestRun = currentRun
			}
			continue
		}
		currentRun = 0
	}
	size := longestRun + 1
	if size < minimumFenceSize {
		size = minimumFenceSize
	}
	return strings.Repeat(string(backtick), size)
}
