package playground

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed examples.yaml
var defaultExamples []byte

const defaultSeparatorWidth = 80

// WordQuery asks for several words of one text.
type WordQuery struct {
	Text    string `yaml:"text"`
	Indexes []int  `yaml:"indexes"`
}

// TwoSumCase is one input of the two-sum section.
type TwoSumCase struct {
	Nums   []int32 `yaml:"nums"`
	Target int32   `yaml:"target"`
}

// Examples holds the inputs every section runs over.
type Examples struct {
	SeparatorWidth int          `yaml:"separator_width"`
	NthWord        []WordQuery  `yaml:"nth_word"`
	FirstWordLen   []string     `yaml:"first_word_len"`
	BubbleSort     [][]uint64   `yaml:"bubble_sort"`
	TwoSum         []TwoSumCase `yaml:"two_sum"`
	DigitCount     []uint64     `yaml:"digit_count"`
	MaxDigit       []int64      `yaml:"max_digit"`
}

// ValidationError reports a field of the examples file that cannot be run.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on %q: %s", e.Field, e.Message)
}

// Default returns the examples embedded in the binary.
func Default() (*Examples, error) {
	ex, err := Parse(bytes.NewReader(defaultExamples))
	if err != nil {
		return nil, fmt.Errorf("default examples: %w", err)
	}
	return ex, nil
}

// Load reads examples from path. An empty path selects the embedded defaults.
func Load(path string) (*Examples, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load examples: %w", err)
	}
	defer f.Close()

	ex, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load examples %s: %w", path, err)
	}
	return ex, nil
}

// Parse decodes and validates a YAML examples document. Unknown keys are an
// error.
func Parse(r io.Reader) (*Examples, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ex Examples
	if err := dec.Decode(&ex); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	ex.withDefaults()
	if err := ex.Validate(); err != nil {
		return nil, err
	}
	return &ex, nil
}

func (e *Examples) withDefaults() {
	if e.SeparatorWidth == 0 {
		e.SeparatorWidth = defaultSeparatorWidth
	}
}

// Validate rejects inputs that would break a function's preconditions.
func (e *Examples) Validate() error {
	if e.SeparatorWidth < 0 {
		return &ValidationError{Field: "separator_width", Message: "must not be negative"}
	}
	for i, q := range e.NthWord {
		for _, n := range q.Indexes {
			if n < 1 {
				return &ValidationError{
					Field:   fmt.Sprintf("nth_word[%d].indexes", i),
					Message: fmt.Sprintf("word index %d must be >= 1", n),
				}
			}
		}
	}
	return nil
}
