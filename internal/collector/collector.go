// Package collector walks a directory tree and gathers the files selected by the
// active filters together with the tree that lists them.
package collector

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/codeclip/internal/config"
	"github.com/temirov/codeclip/internal/filter"
	"github.com/temirov/codeclip/internal/tokenizer"
	"github.com/temirov/codeclip/internal/types"
	"github.com/temirov/codeclip/internal/utils"
)

const (
	warningReadDirectoryMessage = "skipping unreadable directory"
	warningReadFileMessage      = "skipping unreadable file"
	warningStatMessage          = "skipping entry that cannot be inspected"
	warningRevisitedMessage     = "skipping directory link to an already visited directory"
	warningTokenCountMessage    = "token count failed"
	debugExcludedMessage        = "skipping excluded directory"
	debugIgnoredMessage         = "skipping ignored path"
	debugSpecialFileMessage     = "skipping non-regular file"
	debugRejectedFileMessage    = "skipping filtered file"

	revisitedErrorFormat = "%s: %w"
	pathFieldName        = "path"
	reasonFieldName      = "reason"
)

var (
	// ErrNotDirectory is wrapped in the PathError returned for a root that is not a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrDirectoryRevisited is wrapped in the warning recorded for a skipped directory link.
	ErrDirectoryRevisited = errors.New("directory already visited through another path")
)

// Result holds everything gathered by one traversal.
type Result struct {
	// Tree is the pruned directory tree rooted at the configured root.
	Tree *types.DirectoryNode
	// Entries lists the files that receive a content section, in tree order.
	Entries []*types.FileEntry
	// Oversized lists the files shown in the tree without content, in tree order.
	Oversized []*types.FileEntry
	// Warnings records every entry skipped because it could not be read.
	Warnings []error
}

// Collector gathers files and directory structure for a Configuration.
type Collector struct {
	logger       *zap.Logger
	tokenCounter tokenizer.Counter
}

// New returns a Collector that logs through logger and, when tokenCounter is not
// nil, records token estimates for text files.
func New(logger *zap.Logger, tokenCounter tokenizer.Counter) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{logger: logger, tokenCounter: tokenCounter}
}

type traversal struct {
	collector  *Collector
	pathFilter *filter.PathFilter
	visited    map[string]struct{}
	warnings   []error
}

// Collect walks the configured root depth first with an explicit stack. It fails
// only when the root itself cannot be listed; every other unreadable entry is
// skipped and recorded as a warning.
func (collector *Collector) Collect(configuration config.Configuration) (Result, error) {
	rootPath := configuration.Root()
	rootInfo, statError := os.Stat(rootPath)
	if statError != nil {
		return Result{}, &types.PathError{Path: rootPath, Err: statError}
	}
	if !rootInfo.IsDir() {
		return Result{}, &types.PathError{Path: rootPath, Err: ErrNotDirectory}
	}
	rootEntries, readError := os.ReadDir(rootPath)
	if readError != nil {
		return Result{}, &types.PathError{Path: rootPath, Err: readError}
	}

	walk := &traversal{
		collector:  collector,
		pathFilter: filter.New(configuration),
		visited:    make(map[string]struct{}),
	}
	rootNode := &types.DirectoryNode{
		AbsolutePath: rootPath,
		RelativePath: types.RootRelativePath,
		Name:         filepath.Base(rootPath),
	}
	walk.markVisited(rootPath, rootInfo)

	var preorder []*types.DirectoryNode
	pending := []*types.DirectoryNode{rootNode}
	for len(pending) > 0 {
		node := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		preorder = append(preorder, node)
		if node == rootNode && !walk.pathFilter.CanDescend(0) {
			rootNode.Truncated = walk.hasVisibleChildren(rootNode)
			continue
		}

		entries := rootEntries
		if node != rootNode {
			var listError error
			entries, listError = os.ReadDir(node.AbsolutePath)
			if listError != nil {
				walk.warn(warningReadDirectoryMessage, node.AbsolutePath, &types.PermissionError{Path: node.AbsolutePath, Err: listError})
				continue
			}
		}

		descendInto := walk.expand(node, entries)
		for index := len(descendInto) - 1; index >= 0; index-- {
			pending = append(pending, descendInto[index])
		}
	}

	prune(preorder)
	entries, oversized := Flatten(rootNode)
	return Result{Tree: rootNode, Entries: entries, Oversized: oversized, Warnings: walk.warnings}, nil
}

// expand attaches the visible children of node and returns the child directories
// that must be visited next.
func (walk *traversal) expand(node *types.DirectoryNode, entries []os.DirEntry) []*types.DirectoryNode {
	var descendInto []*types.DirectoryNode
	childDepth := node.Depth + 1
	for _, entry := range entries {
		name := entry.Name()
		absolutePath := filepath.Join(node.AbsolutePath, name)
		relativePath := utils.JoinRelativePath(node.RelativePath, name)
		isLink := entry.Type()&os.ModeSymlink != 0

		info, infoError := walk.inspect(absolutePath, entry, isLink)
		if infoError != nil {
			walk.warn(warningStatMessage, absolutePath, &types.PermissionError{Path: absolutePath, Err: infoError})
			continue
		}

		if info.IsDir() {
			if !walk.pathFilter.ShouldIncludeDirectory(name, childDepth) {
				walk.collector.logger.Debug(debugExcludedMessage, zap.String(pathFieldName, relativePath))
				continue
			}
			if !walk.pathFilter.ShouldIncludePath(relativePath, true) {
				walk.collector.logger.Debug(debugIgnoredMessage, zap.String(pathFieldName, relativePath))
				continue
			}
			firstVisit := walk.markVisited(absolutePath, info)
			if isLink && !firstVisit {
				walk.warn(warningRevisitedMessage, absolutePath, fmt.Errorf(revisitedErrorFormat, absolutePath, ErrDirectoryRevisited))
				continue
			}
			child := &types.DirectoryNode{
				AbsolutePath: absolutePath,
				RelativePath: relativePath,
				Name:         name,
				Depth:        childDepth,
			}
			node.Directories = append(node.Directories, child)
			if walk.pathFilter.CanDescend(childDepth) {
				descendInto = append(descendInto, child)
			} else {
				child.Truncated = walk.hasVisibleChildren(child)
			}
			continue
		}

		if !info.Mode().IsRegular() {
			walk.collector.logger.Debug(debugSpecialFileMessage, zap.String(pathFieldName, relativePath))
			continue
		}
		if !walk.pathFilter.ShouldIncludePath(relativePath, false) {
			walk.collector.logger.Debug(debugIgnoredMessage, zap.String(pathFieldName, relativePath))
			continue
		}
		fileEntry, listed := walk.buildFileEntry(absolutePath, relativePath, name, childDepth, info)
		if listed {
			node.Files = append(node.Files, fileEntry)
		}
	}
	return descendInto
}

func (walk *traversal) inspect(absolutePath string, entry os.DirEntry, isLink bool) (os.FileInfo, error) {
	if isLink {
		return os.Stat(absolutePath)
	}
	return entry.Info()
}

func (walk *traversal) buildFileEntry(absolutePath, relativePath, name string, depth int, info os.FileInfo) (*types.FileEntry, bool) {
	decision := walk.pathFilter.EvaluateFile(name, info.Size(), depth)
	fileEntry := &types.FileEntry{
		AbsolutePath: absolutePath,
		RelativePath: relativePath,
		Name:         name,
		Depth:        depth,
		SizeBytes:    info.Size(),
		LastModified: info.ModTime(),
	}
	switch decision {
	case filter.Included:
	case filter.RejectedOversized:
		fileEntry.Oversized = true
		return fileEntry, true
	default:
		walk.collector.logger.Debug(debugRejectedFileMessage, zap.String(pathFieldName, relativePath), zap.Stringer(reasonFieldName, decision))
		return nil, false
	}

	data, readError := os.ReadFile(absolutePath)
	if readError != nil {
		walk.warn(warningReadFileMessage, absolutePath, &types.PermissionError{Path: absolutePath, Err: readError})
		return nil, false
	}
	if utils.IsBinary(data) {
		fileEntry.IsBinary = true
		fileEntry.MimeType = utils.DetectMimeType(data)
		fileEntry.Content = types.BinaryPlaceholder
		return fileEntry, true
	}
	fileEntry.Content = string(data)

	if walk.collector.tokenCounter != nil {
		countResult, countError := tokenizer.CountBytes(walk.collector.tokenCounter, data)
		if countError != nil {
			walk.collector.logger.Warn(warningTokenCountMessage, zap.String(pathFieldName, absolutePath), zap.Error(countError))
		} else if countResult.Counted {
			fileEntry.Tokens = countResult.Tokens
		}
	}
	return fileEntry, true
}

// hasVisibleChildren reports whether a directory left unexpanded at the depth
// boundary holds anything that the filters would show one level deeper.
func (walk *traversal) hasVisibleChildren(node *types.DirectoryNode) bool {
	entries, readError := os.ReadDir(node.AbsolutePath)
	if readError != nil {
		walk.collector.logger.Debug(warningReadDirectoryMessage, zap.String(pathFieldName, node.AbsolutePath), zap.Error(readError))
		return false
	}
	for _, entry := range entries {
		name := entry.Name()
		absolutePath := filepath.Join(node.AbsolutePath, name)
		relativePath := utils.JoinRelativePath(node.RelativePath, name)
		info, infoError := walk.inspect(absolutePath, entry, entry.Type()&os.ModeSymlink != 0)
		if infoError != nil {
			continue
		}
		if info.IsDir() {
			if walk.pathFilter.AllowsDirectoryName(name) && walk.pathFilter.ShouldIncludePath(relativePath, true) {
				return true
			}
			continue
		}
		if !info.Mode().IsRegular() || !walk.pathFilter.ShouldIncludePath(relativePath, false) {
			continue
		}
		decision := walk.pathFilter.EvaluateFile(name, info.Size(), node.Depth)
		if decision == filter.Included || decision == filter.RejectedOversized {
			return true
		}
	}
	return false
}

// markVisited records the identity of a directory and reports whether it was new.
func (walk *traversal) markVisited(absolutePath string, info os.FileInfo) bool {
	identity := directoryIdentity(absolutePath, info)
	if _, seen := walk.visited[identity]; seen {
		return false
	}
	walk.visited[identity] = struct{}{}
	return true
}

func (walk *traversal) warn(message string, path string, warning error) {
	walk.warnings = append(walk.warnings, warning)
	walk.collector.logger.Warn(message, zap.String(pathFieldName, path), zap.Error(warning))
}

// prune drops directories that list nothing and are not truncated. Nodes are
// visited children first so emptiness propagates upward; the root is kept.
func prune(preorder []*types.DirectoryNode) {
	for index := len(preorder) - 1; index >= 0; index-- {
		node := preorder[index]
		kept := node.Directories[:0]
		for _, child := range node.Directories {
			if child.HasChildren() || child.Truncated {
				kept = append(kept, child)
			}
		}
		node.Directories = kept
	}
}

type flattenFrame struct {
	node      *types.DirectoryNode
	filesOnly bool
}

// Flatten lists the files of tree in render order: each directory's
// subdirectories first, then its own files. Oversized files are returned separately.
func Flatten(tree *types.DirectoryNode) (entries []*types.FileEntry, oversized []*types.FileEntry) {
	if tree == nil {
		return nil, nil
	}
	stack := []flattenFrame{{node: tree}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if frame.filesOnly {
			for _, fileEntry := range frame.node.Files {
				if fileEntry.Oversized {
					oversized = append(oversized, fileEntry)
				} else {
					entries = append(entries, fileEntry)
				}
			}
			continue
		}
		stack = append(stack, flattenFrame{node: frame.node, filesOnly: true})
		for index := len(frame.node.Directories) - 1; index >= 0; index-- {
			stack = append(stack, flattenFrame{node: frame.node.Directories[index]})
		}
	}
	return entries, oversized
}
