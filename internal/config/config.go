// Package config turns raw command line and environment values into the
// immutable Configuration shared by every stage of a run.
package config

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/temirov/codeclip/internal/types"
	"github.com/temirov/codeclip/internal/utils"
)

const (
	// DefaultMaxSizeKB is the per-file size ceiling applied when none is given.
	DefaultMaxSizeKB = 500
	// DefaultTokenModel is the tokenizer model used when token counting is enabled.
	DefaultTokenModel = "gpt-4o"

	bytesPerKilobyte = 1024

	rootOptionName       = "root path"
	maxSizeOptionName    = "--max-size"
	maxDepthOptionName   = "--max-depth"
	ignoreOptionName     = "--ignore"
	hiddenOptionName     = "--hidden"
	tokensOptionName     = "--tokens"
	printOptionName      = "--print"
	noFallbackOptionName = "--no-fallback"
	emptyRootMessage     = "a root directory is required"
	notIntegerMessage    = "must be a whole number"
	negativeMessage      = "must not be negative"
	sizeOverflowMessage  = "is too large"
	notBooleanMessage    = "must be true or false"
	invalidGlobMessage   = "is not a valid glob pattern"
	absoluteRootFormat   = "resolve %s: %w"
	extensionSeparator   = "."
	directorySeparator   = "/"
	unboundedDepthLabel  = "unbounded"
	allExtensionsLabel   = "all"
	noExclusionsLabel    = "none"
	maxSizeKBUpperBound  = math.MaxInt64 / bytesPerKilobyte
	unboundedDepth       = -1
)

// Options carries raw option values before validation. Empty strings select defaults.
type Options struct {
	Root          string
	Extensions    string
	Exclude       string
	Ignore        []string
	MaxSizeKB     string
	MaxDepth      string
	IncludeHidden string
	CountTokens   string
	TokenModel    string
	PrintOnly     string
	NoFallback    string
}

// Configuration is the validated, read-only set of run options.
type Configuration struct {
	root                string
	extensionList       []string
	extensions          map[string]struct{}
	excludedList        []string
	excludedDirectories map[string]struct{}
	ignorePatterns      []string
	maxSizeKB           int64
	maxDepth            int
	includeHidden       bool
	countTokens         bool
	tokenModel          string
	printOnly           bool
	clipboardFallback   bool
}

// Parse validates options and returns the resulting Configuration. Every failure
// is a *types.UsageError so callers can reject the run before any traversal.
func Parse(options Options) (Configuration, error) {
	trimmedRoot := strings.TrimSpace(options.Root)
	if trimmedRoot == "" {
		return Configuration{}, &types.UsageError{Option: rootOptionName, Message: emptyRootMessage}
	}
	absoluteRoot, absoluteError := filepath.Abs(trimmedRoot)
	if absoluteError != nil {
		return Configuration{}, &types.UsageError{Option: rootOptionName, Value: trimmedRoot, Err: fmt.Errorf(absoluteRootFormat, trimmedRoot, absoluteError)}
	}

	maxSizeKB, maxSizeError := parseMaxSize(options.MaxSizeKB)
	if maxSizeError != nil {
		return Configuration{}, maxSizeError
	}
	maxDepth, maxDepthError := parseMaxDepth(options.MaxDepth)
	if maxDepthError != nil {
		return Configuration{}, maxDepthError
	}
	includeHidden, hiddenError := parseBoolean(hiddenOptionName, options.IncludeHidden)
	if hiddenError != nil {
		return Configuration{}, hiddenError
	}
	countTokens, tokensError := parseBoolean(tokensOptionName, options.CountTokens)
	if tokensError != nil {
		return Configuration{}, tokensError
	}
	printOnly, printError := parseBoolean(printOptionName, options.PrintOnly)
	if printError != nil {
		return Configuration{}, printError
	}
	noFallback, noFallbackError := parseBoolean(noFallbackOptionName, options.NoFallback)
	if noFallbackError != nil {
		return Configuration{}, noFallbackError
	}
	ignorePatterns, ignoreError := parseIgnorePatterns(options.Ignore)
	if ignoreError != nil {
		return Configuration{}, ignoreError
	}

	extensionList := NormalizeExtensions(utils.SplitList(options.Extensions))
	excludedList := NormalizeDirectoryNames(utils.SplitList(options.Exclude))

	tokenModel := strings.TrimSpace(options.TokenModel)
	if tokenModel == "" {
		tokenModel = DefaultTokenModel
	}

	return Configuration{
		root:                filepath.Clean(absoluteRoot),
		extensionList:       extensionList,
		extensions:          toSet(extensionList),
		excludedList:        excludedList,
		excludedDirectories: toSet(excludedList),
		ignorePatterns:      ignorePatterns,
		maxSizeKB:           maxSizeKB,
		maxDepth:            maxDepth,
		includeHidden:       includeHidden,
		countTokens:         countTokens,
		tokenModel:          tokenModel,
		printOnly:           printOnly,
		clipboardFallback:   !noFallback,
	}, nil
}

// NormalizeExtensions lower-cases extensions, strips leading dots, and removes
// empty and duplicate values.
func NormalizeExtensions(rawExtensions []string) []string {
	normalized := make([]string, 0, len(rawExtensions))
	for _, rawExtension := range rawExtensions {
		extension := strings.ToLower(strings.TrimLeft(strings.TrimSpace(rawExtension), extensionSeparator))
		if extension != "" {
			normalized = append(normalized, extension)
		}
	}
	return utils.DeduplicateValues(normalized)
}

// NormalizeDirectoryNames trims directory names and their trailing separators.
// Case is preserved because directory exclusion is case-sensitive.
func NormalizeDirectoryNames(rawNames []string) []string {
	normalized := make([]string, 0, len(rawNames))
	for _, rawName := range rawNames {
		name := strings.TrimRight(strings.TrimSpace(rawName), directorySeparator+`\`)
		if name != "" {
			normalized = append(normalized, name)
		}
	}
	return utils.DeduplicateValues(normalized)
}

func parseMaxSize(rawValue string) (int64, error) {
	trimmedValue := strings.TrimSpace(rawValue)
	if trimmedValue == "" {
		return DefaultMaxSizeKB, nil
	}
	value, parseError := strconv.ParseInt(trimmedValue, 10, 64)
	if parseError != nil {
		return 0, &types.UsageError{Option: maxSizeOptionName, Value: rawValue, Message: notIntegerMessage, Err: parseError}
	}
	if value < 0 {
		return 0, &types.UsageError{Option: maxSizeOptionName, Value: rawValue, Message: negativeMessage}
	}
	if value > maxSizeKBUpperBound {
		return 0, &types.UsageError{Option: maxSizeOptionName, Value: rawValue, Message: sizeOverflowMessage}
	}
	return value, nil
}

func parseMaxDepth(rawValue string) (int, error) {
	trimmedValue := strings.TrimSpace(rawValue)
	if trimmedValue == "" || strings.EqualFold(trimmedValue, unboundedDepthLabel) {
		return unboundedDepth, nil
	}
	value, parseError := strconv.Atoi(trimmedValue)
	if parseError != nil {
		return 0, &types.UsageError{Option: maxDepthOptionName, Value: rawValue, Message: notIntegerMessage, Err: parseError}
	}
	if value < 0 {
		return 0, &types.UsageError{Option: maxDepthOptionName, Value: rawValue, Message: negativeMessage}
	}
	return value, nil
}

func parseBoolean(optionName string, rawValue string) (bool, error) {
	trimmedValue := strings.TrimSpace(rawValue)
	if trimmedValue == "" {
		return false, nil
	}
	value, parseError := strconv.ParseBool(trimmedValue)
	if parseError != nil {
		return false, &types.UsageError{Option: optionName, Value: rawValue, Message: notBooleanMessage, Err: parseError}
	}
	return value, nil
}

func parseIgnorePatterns(rawPatterns []string) ([]string, error) {
	patterns := make([]string, 0, len(rawPatterns))
	for _, rawPattern := range rawPatterns {
		pattern := strings.TrimSpace(rawPattern)
		if pattern == "" {
			continue
		}
		pattern = strings.TrimSuffix(filepath.ToSlash(pattern), directorySeparator)
		if !doublestar.ValidatePattern(pattern) {
			return nil, &types.UsageError{Option: ignoreOptionName, Value: rawPattern, Message: invalidGlobMessage}
		}
		patterns = append(patterns, pattern)
	}
	return utils.DeduplicateValues(patterns), nil
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}

// Root returns the absolute, cleaned root directory.
func (configuration Configuration) Root() string { return configuration.root }

// HasExtensionFilter reports whether an extension allow-list is active.
func (configuration Configuration) HasExtensionFilter() bool {
	return len(configuration.extensionList) > 0
}

// AllowsExtension reports whether a normalized extension is on the allow-list.
func (configuration Configuration) AllowsExtension(extension string) bool {
	_, allowed := configuration.extensions[extension]
	return allowed
}

// Extensions returns a copy of the normalized allow-list.
func (configuration Configuration) Extensions() []string {
	return append([]string(nil), configuration.extensionList...)
}

// IsExcludedDirectory reports whether name exactly matches an excluded directory.
func (configuration Configuration) IsExcludedDirectory(name string) bool {
	_, excluded := configuration.excludedDirectories[name]
	return excluded
}

// ExcludedDirectories returns a copy of the excluded directory names.
func (configuration Configuration) ExcludedDirectories() []string {
	return append([]string(nil), configuration.excludedList...)
}

// IgnorePatterns returns a copy of the glob ignore patterns.
func (configuration Configuration) IgnorePatterns() []string {
	return append([]string(nil), configuration.ignorePatterns...)
}

// MaxSizeKB returns the per-file size ceiling in kilobytes.
func (configuration Configuration) MaxSizeKB() int64 { return configuration.maxSizeKB }

// MaxSizeBytes returns the per-file size ceiling in bytes.
func (configuration Configuration) MaxSizeBytes() int64 {
	return configuration.maxSizeKB * bytesPerKilobyte
}

// MaxDepth returns the depth ceiling and whether one is set.
func (configuration Configuration) MaxDepth() (int, bool) {
	if configuration.maxDepth == unboundedDepth {
		return 0, false
	}
	return configuration.maxDepth, true
}

// IncludeHidden reports whether names beginning with a dot are kept.
func (configuration Configuration) IncludeHidden() bool { return configuration.includeHidden }

// CountTokens reports whether token estimates are requested.
func (configuration Configuration) CountTokens() bool { return configuration.countTokens }

// TokenModel returns the tokenizer model name.
func (configuration Configuration) TokenModel() string { return configuration.tokenModel }

// PrintOnly reports whether the document goes to standard output instead of the clipboard.
func (configuration Configuration) PrintOnly() bool { return configuration.printOnly }

// ClipboardFallback reports whether a failed clipboard write prints the document instead.
func (configuration Configuration) ClipboardFallback() bool { return configuration.clipboardFallback }

// Describe renders the active filters for the run summary.
func (configuration Configuration) Describe() string {
	extensionsLabel := allExtensionsLabel
	if configuration.HasExtensionFilter() {
		extensionsLabel = strings.Join(configuration.extensionList, ", ")
	}
	excludedLabel := noExclusionsLabel
	if len(configuration.excludedList) > 0 {
		excludedLabel = strings.Join(configuration.excludedList, ", ")
	}
	depthLabel := unboundedDepthLabel
	if maxDepth, limited := configuration.MaxDepth(); limited {
		depthLabel = strconv.Itoa(maxDepth)
	}
	description := fmt.Sprintf("Extensions: %s | Excluded: %s | Max size: %dkb | Max depth: %s",
		extensionsLabel, excludedLabel, configuration.maxSizeKB, depthLabel)
	if len(configuration.ignorePatterns) > 0 {
		description += " | Ignored: " + strings.Join(configuration.ignorePatterns, ", ")
	}
	if configuration.includeHidden {
		description += " | Hidden: included"
	}
	return description
}
