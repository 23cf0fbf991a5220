// Package output renders collected trees and files into the Markdown document
// and the run summary.
package output

import (
	"fmt"
	"strings"

	"github.com/temirov/codeclip/internal/types"
	"github.com/temirov/codeclip/internal/utils"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	directorySuffix = "/"
	truncatedSuffix = " ..."
	binarySuffix    = " [binary]"
	oversizedFormat = " [too large: %s]"
)

type treeFrame struct {
	directory *types.DirectoryNode
	file      *types.FileEntry
	prefix    string
	isLast    bool
}

// RenderTree returns the indented text tree for root, one line per entry.
// Children are listed directories first, each group in stored order.
func RenderTree(root *types.DirectoryNode) string {
	if root == nil {
		return ""
	}
	var builder strings.Builder
	builder.WriteString(directoryLabel(root))
	builder.WriteString("\n")

	stack := childFrames(root, "")
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		connector, childPrefix := treeBranchConnector, frame.prefix+treeBranchPadding
		if frame.isLast {
			connector, childPrefix = treeLastConnector, frame.prefix+treeLastPadding
		}
		builder.WriteString(frame.prefix)
		builder.WriteString(connector)
		if frame.file != nil {
			builder.WriteString(fileLabel(frame.file))
			builder.WriteString("\n")
			continue
		}
		builder.WriteString(directoryLabel(frame.directory))
		builder.WriteString("\n")
		stack = append(stack, childFrames(frame.directory, childPrefix)...)
	}
	return builder.String()
}

// childFrames returns the children of node in reverse render order so that
// popping the stack yields them first to last.
func childFrames(node *types.DirectoryNode, prefix string) []treeFrame {
	total := len(node.Directories) + len(node.Files)
	frames := make([]treeFrame, 0, total)
	for index := len(node.Files) - 1; index >= 0; index-- {
		position := len(node.Directories) + index
		frames = append(frames, treeFrame{file: node.Files[index], prefix: prefix, isLast: position == total-1})
	}
	for index := len(node.Directories) - 1; index >= 0; index-- {
		frames = append(frames, treeFrame{directory: node.Directories[index], prefix: prefix, isLast: index == total-1})
	}
	return frames
}

func directoryLabel(node *types.DirectoryNode) string {
	label := node.Name + directorySuffix
	if node.Truncated {
		label += truncatedSuffix
	}
	return label
}

func fileLabel(entry *types.FileEntry) string {
	switch {
	case entry.Oversized:
		return entry.Name + formatOversized(entry.SizeBytes)
	case entry.IsBinary:
		return entry.Name + binarySuffix
	default:
		return entry.Name
	}
}

func formatOversized(sizeBytes int64) string {
	return fmt.Sprintf(oversizedFormat, utils.FormatFileSize(sizeBytes))
}

// treeMarkers reports whether any directory of root is truncated and whether any
// file is listed as oversized.
func treeMarkers(root *types.DirectoryNode) (hasTruncated bool, hasOversized bool) {
	if root == nil {
		return false, false
	}
	stack := []*types.DirectoryNode{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		hasTruncated = hasTruncated || node.Truncated
		for _, entry := range node.Files {
			hasOversized = hasOversized || entry.Oversized
		}
		stack = append(stack, node.Directories...)
	}
	return hasTruncated, hasOversized
}
