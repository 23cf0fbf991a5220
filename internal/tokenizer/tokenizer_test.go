package tokenizer

import (
	"errors"
	"testing"
)

type testCounter struct{}

func (testCounter) Name() string { return "stub" }

func (testCounter) CountString(input string) (int, error) { return len([]rune(input)), nil }

type failingCounter struct{}

func (failingCounter) Name() string { return "failing" }

func (failingCounter) CountString(string) (int, error) { return 0, errors.New("encoder unavailable") }

func TestCountBytesText(t *testing.T) {
	result, err := CountBytes(testCounter{}, []byte("hello"))
	if err != nil {
		t.Fatalf("CountBytes error: %v", err)
	}
	if !result.Counted {
		t.Fatalf("expected counted result")
	}
	if result.Tokens != len([]rune("hello")) {
		t.Fatalf("expected %d tokens, got %d", len([]rune("hello")), result.Tokens)
	}
}

func TestCountBytesEmpty(t *testing.T) {
	result, err := CountBytes(testCounter{}, nil)
	if err != nil {
		t.Fatalf("CountBytes error: %v", err)
	}
	if !result.Counted || result.Tokens != 0 {
		t.Fatalf("expected empty input to count as zero tokens, got %+v", result)
	}
}

func TestCountBytesBinary(t *testing.T) {
	testCases := map[string][]byte{
		"nul bytes":    {0x00, 0x01, 0x02},
		"invalid utf8": {0xff, 0xfe, 0x41},
	}
	for name, data := range testCases {
		t.Run(name, func(t *testing.T) {
			result, err := CountBytes(testCounter{}, data)
			if err != nil {
				t.Fatalf("CountBytes error: %v", err)
			}
			if result.Counted {
				t.Fatalf("expected binary data to be skipped")
			}
		})
	}
}

func TestCountBytesErrors(t *testing.T) {
	if _, err := CountBytes(nil, []byte("x")); !errors.Is(err, errNilCounter) {
		t.Fatalf("expected nil counter error, got %v", err)
	}
	if _, err := CountBytes(failingCounter{}, []byte("x")); err == nil {
		t.Fatalf("expected counter failure to propagate")
	}
}

func TestIsOpenAIModel(t *testing.T) {
	testCases := map[string]bool{
		"gpt-4o":                 true,
		"text-embedding-3-small": true,
		"o3-mini":                true,
		"claude-3-5-sonnet":      false,
		"llama-3":                false,
	}
	for model, expected := range testCases {
		if actual := isOpenAIModel(model); actual != expected {
			t.Fatalf("isOpenAIModel(%q) = %t, want %t", model, actual, expected)
		}
	}
}

func TestNewCounterDefault(t *testing.T) {
	counter, model, err := NewCounter(Config{Model: "gpt-4o"})
	if err != nil {
		t.Skipf("tiktoken encoding unavailable: %v", err)
	}
	if counter == nil {
		t.Fatalf("expected non-nil counter")
	}
	if model != "gpt-4o" {
		t.Fatalf("expected model gpt-4o, got %q", model)
	}
	tokens, err := counter.CountString("hello world")
	if err != nil {
		t.Fatalf("CountString error: %v", err)
	}
	if tokens <= 0 {
		t.Fatalf("expected positive token count, got %d", tokens)
	}
}

func TestNewCounterFallsBackForUnknownModels(t *testing.T) {
	counter, model, err := NewCounter(Config{Model: "claude-3-5-sonnet"})
	if err != nil {
		t.Skipf("tiktoken encoding unavailable: %v", err)
	}
	if model != defaultEncodingName || counter.Name() != defaultEncodingName {
		t.Fatalf("expected fallback encoding %s, got model %q counter %q", defaultEncodingName, model, counter.Name())
	}
}

func TestEncodingCounterWithoutEncoding(t *testing.T) {
	if _, err := (encodingCounter{}).CountString("text"); !errors.Is(err, errNilEncoding) {
		t.Fatalf("expected nil encoding error, got %v", err)
	}
}
