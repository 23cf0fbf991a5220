// Package types defines every cross‑package data structure used by the codeclip CLI.
package types

import "time"

const (
	// RootRelativePath is the relative path recorded for the traversal root.
	RootRelativePath = "."

	// BinaryPlaceholder replaces the content of files that are not valid UTF-8 text.
	BinaryPlaceholder = "binary file, content omitted"
)

// FileEntry is one file listed in the collected tree.
type FileEntry struct {
	AbsolutePath string
	RelativePath string
	Name         string
	Depth        int
	SizeBytes    int64
	LastModified time.Time
	Content      string
	IsBinary     bool
	// Oversized entries exceed the configured size ceiling. They appear in the
	// tree but never receive a content section.
	Oversized bool
	MimeType  string
	Tokens    int
}

// DirectoryNode is one directory level of the collected tree. Directories and
// files are each kept in byte-wise alphabetical order; directories render first.
type DirectoryNode struct {
	AbsolutePath string
	RelativePath string
	Name         string
	Depth        int
	// Truncated marks a directory at the depth boundary whose children were not visited.
	Truncated   bool
	Directories []*DirectoryNode
	Files       []*FileEntry
}

// HasChildren reports whether the node lists any directory or file.
func (node *DirectoryNode) HasChildren() bool {
	return node != nil && (len(node.Directories) > 0 || len(node.Files) > 0)
}

// OutputSummary captures aggregate information about a completed run.
type OutputSummary struct {
	RootPath    string
	TotalFiles  int
	TotalBytes  int64
	TotalTokens int
	Model       string
	Oversized   int
	Warnings    int
}
