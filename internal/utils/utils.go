// Package utils contains general helper functions used across codeclip.
package utils

import "strings"

const listSeparator = ","

// SplitList splits a comma-separated value into trimmed, non-empty items.
func SplitList(value string) []string {
	var items []string
	for _, rawItem := range strings.Split(value, listSeparator) {
		trimmedItem := strings.TrimSpace(rawItem)
		if trimmedItem != "" {
			items = append(items, trimmedItem)
		}
	}
	return items
}

// DeduplicateValues removes duplicate values from a slice while preserving order.
// The first occurrence of each unique value is kept.
func DeduplicateValues(values []string) []string {
	encounteredValues := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		if _, exists := encounteredValues[value]; !exists {
			encounteredValues[value] = struct{}{}
			result = append(result, value)
		}
	}
	return result
}

// JoinRelativePath appends name to a slash-separated relative parent path.
// The root is represented by ".".
func JoinRelativePath(parentRelativePath string, name string) string {
	if parentRelativePath == "" || parentRelativePath == "." {
		return name
	}
	return parentRelativePath + "/" + name
}
