package output_test

import (
	"strings"
	"testing"
	"time"

	"github.com/temirov/codeclip/internal/output"
	"github.com/temirov/codeclip/internal/types"
)

var sampleLastModified = time.Date(2024, time.January, 2, 3, 4, 5, 0, time.Local)

func textEntry(relativePath string, name string, content string) *types.FileEntry {
	return &types.FileEntry{
		RelativePath: relativePath,
		Name:         name,
		SizeBytes:    int64(len(content)),
		LastModified: sampleLastModified,
		Content:      content,
	}
}

func TestFormatDocumentLayout(testingInstance *testing.T) {
	entry := textEntry("a.py", "a.py", "print('a')\n")
	tree := &types.DirectoryNode{Name: "project", Files: []*types.FileEntry{entry}}

	document := output.DocumentFormatter{}.Format(tree, []*types.FileEntry{entry})

	expected := "# Directory Structure\n\n" +
		"```\n" +
		"project/\n" +
		"└── a.py\n" +
		"```\n\n" +
		"# Source Files\n\n" +
		"## File: a.py\n" +
		"Size: 11b (11 bytes) | Last Modified: 2024-01-02 03:04\n\n" +
		"```python\n" +
		"print('a')\n" +
		"```\n"
	if document != expected {
		testingInstance.Fatalf("unexpected document:\n%s\nwant:\n%s", document, expected)
	}
}

func TestFormatDocumentSectionsFollowEntryOrder(testingInstance *testing.T) {
	first := textEntry("src/z.go", "z.go", "package src\n")
	second := textEntry("a.go", "a.go", "package main\n")
	tree := &types.DirectoryNode{
		Name:        "project",
		Directories: []*types.DirectoryNode{{Name: "src", Files: []*types.FileEntry{first}}},
		Files:       []*types.FileEntry{second},
	}

	document := output.DocumentFormatter{}.Format(tree, []*types.FileEntry{first, second})

	firstIndex := strings.Index(document, "## File: src/z.go")
	secondIndex := strings.Index(document, "## File: a.go")
	if firstIndex < 0 || secondIndex < 0 || firstIndex > secondIndex {
		testingInstance.Fatalf("sections out of order:\n%s", document)
	}
	if document != (output.DocumentFormatter{}).Format(tree, []*types.FileEntry{first, second}) {
		testingInstance.Fatalf("formatting is not deterministic")
	}
}

func TestFormatDocumentEscalatesFence(testingInstance *testing.T) {
	content := "Example:\n```go\nfmt.Println()\n```\nand ````four````\n"
	entry := textEntry("README.md", "README.md", content)
	tree := &types.DirectoryNode{Name: "docs", Files: []*types.FileEntry{entry}}

	document := output.DocumentFormatter{}.Format(tree, []*types.FileEntry{entry})

	if !strings.Contains(document, "`````markdown\n"+content+"`````\n") {
		testingInstance.Fatalf("expected a five backtick fence:\n%s", document)
	}
}

func TestFormatDocumentAddsMissingTrailingNewline(testingInstance *testing.T) {
	entry := textEntry("main.go", "main.go", "package main")
	tree := &types.DirectoryNode{Name: "project", Files: []*types.FileEntry{entry}}

	document := output.DocumentFormatter{}.Format(tree, []*types.FileEntry{entry})

	if !strings.Contains(document, "```go\npackage main\n```\n") {
		testingInstance.Fatalf("expected the closing fence on its own line:\n%s", document)
	}
}

func TestFormatDocumentUnknownExtensionHasNoTag(testingInstance *testing.T) {
	entry := textEntry("notes.xyz", "notes.xyz", "plain\n")
	tree := &types.DirectoryNode{Name: "project", Files: []*types.FileEntry{entry}}

	document := output.DocumentFormatter{}.Format(tree, []*types.FileEntry{entry})

	if !strings.Contains(document, "\n```\nplain\n```\n") {
		testingInstance.Fatalf("expected an untagged fence:\n%s", document)
	}
}

func TestFormatDocumentBinaryPlaceholder(testingInstance *testing.T) {
	entry := &types.FileEntry{
		RelativePath: "logo.png",
		Name:         "logo.png",
		SizeBytes:    4,
		LastModified: sampleLastModified,
		Content:      types.BinaryPlaceholder,
		IsBinary:     true,
		MimeType:     "image/png",
	}
	tree := &types.DirectoryNode{Name: "assets", Files: []*types.FileEntry{entry}}

	document := output.DocumentFormatter{}.Format(tree, []*types.FileEntry{entry})

	if !strings.Contains(document, "└── logo.png [binary]\n") {
		testingInstance.Fatalf("expected binary marker in tree:\n%s", document)
	}
	if !strings.Contains(document, "_binary file, content omitted (image/png)_\n") {
		testingInstance.Fatalf("expected binary placeholder:\n%s", document)
	}
	if strings.Count(document, "```") != 2 {
		testingInstance.Fatalf("expected only the tree to be fenced:\n%s", document)
	}
}

func TestFormatDocumentTokens(testingInstance *testing.T) {
	entry := textEntry("a.txt", "a.txt", "hello\n")
	entry.Tokens = 2
	tree := &types.DirectoryNode{Name: "project", Files: []*types.FileEntry{entry}}

	withTokens := output.DocumentFormatter{ShowTokens: true}.Format(tree, []*types.FileEntry{entry})
	if !strings.Contains(withTokens, "Last Modified: 2024-01-02 03:04 | Tokens: 2\n") {
		testingInstance.Fatalf("expected token count in metadata:\n%s", withTokens)
	}
	withoutTokens := output.DocumentFormatter{}.Format(tree, []*types.FileEntry{entry})
	if strings.Contains(withoutTokens, "Tokens:") {
		testingInstance.Fatalf("unexpected token count:\n%s", withoutTokens)
	}
}

func TestFormatDocumentLegendAndEmptySelection(testingInstance *testing.T) {
	tree := &types.DirectoryNode{
		Name:        "project",
		Directories: []*types.DirectoryNode{{Name: "deep", Depth: 1, Truncated: true}},
		Files:       []*types.FileEntry{{Name: "huge.log", RelativePath: "huge.log", Oversized: true, SizeBytes: 10 << 20}},
	}

	document := output.DocumentFormatter{}.Format(tree, nil)

	for _, fragment := range []string{
		"├── deep/ ...\n",
		"└── huge.log [too large: 10mb]\n",
		"`/ ...` marks a directory",
		"`[too large: <size>]` marks a file",
		"# Source Files\n\n_No files matched the active filters._\n",
	} {
		if !strings.Contains(document, fragment) {
			testingInstance.Fatalf("expected %q in:\n%s", fragment, document)
		}
	}
	if strings.Contains(document, "## File:") {
		testingInstance.Fatalf("oversized files must not receive a section:\n%s", document)
	}
}

func TestFormatDocumentOmitsLegendWithoutMarkers(testingInstance *testing.T) {
	tree := &types.DirectoryNode{Name: "project"}

	document := output.DocumentFormatter{}.Format(tree, nil)

	if strings.Contains(document, "marks a") {
		testingInstance.Fatalf("unexpected legend:\n%s", document)
	}
}
