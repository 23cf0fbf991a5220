// Package filter decides which directories and files of a traversal are kept.
package filter

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/temirov/codeclip/internal/config"
)

// FileDecision explains the outcome of evaluating a file against the active filters.
type FileDecision int

const (
	Included FileDecision = iota
	RejectedHidden
	RejectedExtension
	RejectedDepth
	RejectedOversized
)

const (
	hiddenPrefix       = "."
	extensionSeparator = "."
	patternSeparator   = "/"
)

func (decision FileDecision) String() string {
	switch decision {
	case Included:
		return "included"
	case RejectedHidden:
		return "hidden"
	case RejectedExtension:
		return "extension"
	case RejectedDepth:
		return "depth"
	case RejectedOversized:
		return "oversized"
	default:
		return "unknown"
	}
}

// PathFilter evaluates names, sizes, and depths against a Configuration.
type PathFilter struct {
	configuration config.Configuration
	maxDepth      int
	depthLimited  bool
	maxSizeBytes  int64
}

// New builds a PathFilter for configuration.
func New(configuration config.Configuration) *PathFilter {
	maxDepth, depthLimited := configuration.MaxDepth()
	return &PathFilter{
		configuration: configuration,
		maxDepth:      maxDepth,
		depthLimited:  depthLimited,
		maxSizeBytes:  configuration.MaxSizeBytes(),
	}
}

// ShouldIncludeDirectory reports whether a directory named name at depth is shown.
// Depth 0 is the traversal root, which is always shown.
func (pathFilter *PathFilter) ShouldIncludeDirectory(name string, depth int) bool {
	if depth == 0 {
		return true
	}
	if !pathFilter.AllowsDirectoryName(name) {
		return false
	}
	return !pathFilter.depthLimited || depth <= pathFilter.maxDepth
}

// AllowsDirectoryName applies the name rules for directories without regard to depth.
func (pathFilter *PathFilter) AllowsDirectoryName(name string) bool {
	return !pathFilter.configuration.IsExcludedDirectory(name) && !pathFilter.isHidden(name)
}

// CanDescend reports whether the children of a directory at depth are visited.
func (pathFilter *PathFilter) CanDescend(depth int) bool {
	return !pathFilter.depthLimited || depth < pathFilter.maxDepth
}

// ShouldIncludeFile reports whether a file passes every filter.
func (pathFilter *PathFilter) ShouldIncludeFile(name string, sizeBytes int64, depth int) bool {
	return pathFilter.EvaluateFile(name, sizeBytes, depth) == Included
}

// EvaluateFile returns the first filter a file fails, or Included.
// Size is checked last so callers can list oversized files that pass everything else.
func (pathFilter *PathFilter) EvaluateFile(name string, sizeBytes int64, depth int) FileDecision {
	if pathFilter.isHidden(name) {
		return RejectedHidden
	}
	if pathFilter.depthLimited && depth > pathFilter.maxDepth {
		return RejectedDepth
	}
	if pathFilter.configuration.HasExtensionFilter() {
		extension := Extension(name)
		if extension == "" || !pathFilter.configuration.AllowsExtension(extension) {
			return RejectedExtension
		}
	}
	if sizeBytes > pathFilter.maxSizeBytes {
		return RejectedOversized
	}
	return Included
}

// ShouldIncludePath reports whether relativePath survives the ignore patterns.
// Patterns without a slash match the final element; others match the whole
// slash-separated path. A directory match also hides everything beneath it.
func (pathFilter *PathFilter) ShouldIncludePath(relativePath string, isDirectory bool) bool {
	if relativePath == "" || relativePath == "." {
		return true
	}
	name := path.Base(relativePath)
	for _, pattern := range pathFilter.configuration.IgnorePatterns() {
		candidate := relativePath
		if !strings.Contains(pattern, patternSeparator) {
			candidate = name
		}
		if matched, _ := doublestar.Match(pattern, candidate); matched {
			return false
		}
		if isDirectory {
			if matched, _ := doublestar.Match(pattern, candidate+patternSeparator); matched {
				return false
			}
		}
	}
	return true
}

// Extension returns the lower-cased text after the last dot of name, or "" when
// name has no dot or ends in one.
func Extension(name string) string {
	separatorIndex := strings.LastIndex(name, extensionSeparator)
	if separatorIndex < 0 || separatorIndex == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[separatorIndex+1:])
}

func (pathFilter *PathFilter) isHidden(name string) bool {
	return !pathFilter.configuration.IncludeHidden() && strings.HasPrefix(name, hiddenPrefix)
}
