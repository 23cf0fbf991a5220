package utils

import (
	"fmt"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02 15:04"

var sizeUnits = []string{"b", "kb", "mb", "gb", "tb", "pb"}

// FormatFileSize converts a byte length into a human-readable lower-case unit string.
func FormatFileSize(bytes int64) string {
	if bytes < 0 {
		return "0b"
	}
	value := float64(bytes)
	unitIndex := 0
	for value >= 1024 && unitIndex < len(sizeUnits)-1 {
		value /= 1024
		unitIndex++
	}
	if unitIndex == 0 {
		return fmt.Sprintf("%db", bytes)
	}
	if value < 10 {
		formatted := strings.TrimSuffix(fmt.Sprintf("%.1f", value), ".0")
		return formatted + sizeUnits[unitIndex]
	}
	return fmt.Sprintf("%.0f%s", value, sizeUnits[unitIndex])
}

// FormatSizeDetail renders the human-readable size followed by the exact byte count.
func FormatSizeDetail(bytes int64) string {
	return fmt.Sprintf("%s (%d %s)", FormatFileSize(bytes), bytes, Pluralize(int(bytes), "byte", "bytes"))
}

// FormatTimestamp returns value in the local time zone with minute precision.
func FormatTimestamp(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.In(time.Local).Format(timestampLayout)
}

// Pluralize picks the singular label for a count of one and the plural otherwise.
func Pluralize(count int, singular string, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
