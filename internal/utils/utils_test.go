package utils_test

import (
	"testing"
	"time"

	"github.com/temirov/codeclip/internal/utils"
)

func TestFormatFileSize(t *testing.T) {
	testCases := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "negative", bytes: -1, expected: "0b"},
		{name: "zero", bytes: 0, expected: "0b"},
		{name: "bytes", bytes: 512, expected: "512b"},
		{name: "one kilobyte", bytes: 1024, expected: "1kb"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5kb"},
		{name: "default size ceiling", bytes: 500 * 1024, expected: "500kb"},
		{name: "ten megabytes", bytes: 10 * 1024 * 1024, expected: "10mb"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := utils.FormatFileSize(testCase.bytes)
			if result != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, result)
			}
		})
	}
}

func TestFormatSizeDetail(t *testing.T) {
	testCases := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "single byte", bytes: 1, expected: "1b (1 byte)"},
		{name: "kilobytes", bytes: 2048, expected: "2kb (2048 bytes)"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if result := utils.FormatSizeDetail(testCase.bytes); result != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, result)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	location := time.Now().Location()
	testCases := []struct {
		name     string
		value    time.Time
		expected string
	}{
		{name: "zero time", value: time.Time{}, expected: ""},
		{name: "local timestamp", value: time.Date(2024, time.January, 2, 15, 4, 59, 0, location), expected: "2024-01-02 15:04"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if result := utils.FormatTimestamp(testCase.value); result != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, result)
			}
		})
	}
}

func TestIsBinary(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		data     []byte
		expected bool
	}{
		{testName: "utf8 text", data: []byte("hello"), expected: false},
		{testName: "multibyte text", data: []byte("héllo wörld"), expected: false},
		{testName: "null byte", data: []byte{'a', 0x00, 'b'}, expected: true},
		{testName: "invalid utf8", data: []byte{0xff, 0xfe}, expected: true},
		{testName: "empty slice", data: []byte{}, expected: false},
	}
	for index, testCase := range testCases {
		actual := utils.IsBinary(testCase.data)
		if actual != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %t, got %t", index, testCase.testName, testCase.expected, actual)
		}
	}
}

func TestDetectMimeType(t *testing.T) {
	pngHeader := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	if mimeType := utils.DetectMimeType(pngHeader); mimeType != "image/png" {
		t.Fatalf("expected image/png, got %q", mimeType)
	}
	if mimeType := utils.DetectMimeType(nil); mimeType != utils.UnknownMimeType {
		t.Fatalf("expected unknown mime type for empty data, got %q", mimeType)
	}
}

func TestSplitList(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		value    string
		expected []string
	}{
		{testName: "empty", value: "", expected: nil},
		{testName: "trims items", value: " py , js ", expected: []string{"py", "js"}},
		{testName: "drops empty items", value: "py,,js,", expected: []string{"py", "js"}},
	}
	for index, testCase := range testCases {
		actual := utils.SplitList(testCase.value)
		if len(actual) != len(testCase.expected) {
			testingInstance.Errorf("case %d (%s): expected %v, got %v", index, testCase.testName, testCase.expected, actual)
			continue
		}
		for position, value := range actual {
			if value != testCase.expected[position] {
				testingInstance.Errorf("case %d (%s): expected %s at position %d, got %s", index, testCase.testName, testCase.expected[position], position, value)
			}
		}
	}
}

func TestDeduplicateValues(testingInstance *testing.T) {
	actual := utils.DeduplicateValues([]string{"a", "b", "a", "c", "b"})
	expected := []string{"a", "b", "c"}
	if len(actual) != len(expected) {
		testingInstance.Fatalf("expected %v, got %v", expected, actual)
	}
	for position, value := range actual {
		if value != expected[position] {
			testingInstance.Errorf("expected %s at position %d, got %s", expected[position], position, value)
		}
	}
}

func TestJoinRelativePath(testingInstance *testing.T) {
	testCases := []struct {
		parent   string
		name     string
		expected string
	}{
		{parent: ".", name: "a.py", expected: "a.py"},
		{parent: "", name: "src", expected: "src"},
		{parent: "src/pkg", name: "main.go", expected: "src/pkg/main.go"},
	}
	for index, testCase := range testCases {
		if actual := utils.JoinRelativePath(testCase.parent, testCase.name); actual != testCase.expected {
			testingInstance.Errorf("case %d: expected %s, got %s", index, testCase.expected, actual)
		}
	}
}
