package output_test

import (
	"testing"

	"github.com/temirov/codeclip/internal/output"
	"github.com/temirov/codeclip/internal/types"
)

func sampleTree() *types.DirectoryNode {
	return &types.DirectoryNode{
		Name:         "project",
		RelativePath: types.RootRelativePath,
		Directories: []*types.DirectoryNode{
			{
				Name:       "cmd",
				Depth:      1,
				Truncated:  false,
				Files:      []*types.FileEntry{{Name: "main.go", RelativePath: "cmd/main.go", Depth: 2}},
				Directories: []*types.DirectoryNode{
					{Name: "tools", Depth: 2, Truncated: true},
				},
			},
			{
				Name:  "internal",
				Depth: 1,
				Files: []*types.FileEntry{
					{Name: "logo.png", RelativePath: "internal/logo.png", Depth: 2, IsBinary: true},
					{Name: "data.json", RelativePath: "internal/data.json", Depth: 2, Oversized: true, SizeBytes: 2048},
				},
			},
		},
		Files: []*types.FileEntry{{Name: "go.mod", RelativePath: "go.mod", Depth: 1}},
	}
}

func TestRenderTree(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		tree     *types.DirectoryNode
		expected string
	}{
		{
			name:     "nil tree",
			tree:     nil,
			expected: "",
		},
		{
			name:     "empty root",
			tree:     &types.DirectoryNode{Name: "empty"},
			expected: "empty/\n",
		},
		{
			name:     "truncated root",
			tree:     &types.DirectoryNode{Name: "root", Truncated: true},
			expected: "root/ ...\n",
		},
		{
			name: "nested tree with markers",
			tree: sampleTree(),
			expected: "project/\n" +
				"├── cmd/\n" +
				"│   ├── tools/ ...\n" +
				"│   └── main.go\n" +
				"├── internal/\n" +
				"│   ├── logo.png [binary]\n" +
				"│   └── data.json [too large: 2kb]\n" +
				"└── go.mod\n",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			if rendered := output.RenderTree(testCase.tree); rendered != testCase.expected {
				t.Fatalf("unexpected tree:\n%s\nwant:\n%s", rendered, testCase.expected)
			}
		})
	}
}

func TestRenderTreeIsDeterministic(t *testing.T) {
	t.Parallel()

	first := output.RenderTree(sampleTree())
	for iteration := 0; iteration < 5; iteration++ {
		if output.RenderTree(sampleTree()) != first {
			t.Fatalf("rendering changed between calls")
		}
	}
}

func TestRenderTreeLastDirectoryUsesBlankPadding(t *testing.T) {
	t.Parallel()

	tree := &types.DirectoryNode{
		Name: "root",
		Directories: []*types.DirectoryNode{{
			Name:  "only",
			Files: []*types.FileEntry{{Name: "a.txt"}, {Name: "b.txt"}},
		}},
	}
	expected := "root/\n" +
		"└── only/\n" +
		"    ├── a.txt\n" +
		"    └── b.txt\n"
	if rendered := output.RenderTree(tree); rendered != expected {
		t.Fatalf("unexpected tree:\n%s", rendered)
	}
}
