// Package words locates space-delimited words inside a byte buffer without
// copying it.
//
// A word is the run of bytes between two ASCII spaces (0x20), or between the
// start of the text and the first space. Words may be empty: a leading space
// yields an empty first word and two adjacent spaces yield an empty word
// between them.
package words

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the text holds fewer words than requested.
var ErrNotFound = errors.New("word not found")

const space = ' '

// Span is a half-open byte range [Start, End) into a text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool { return s.Start == s.End }

// Bytes reslices text to the span. The result shares text's backing array.
func (s Span) Bytes(text []byte) []byte { return text[s.Start:s.End:s.End] }

// String formats the span as "[Start,End)".
func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }

// Locate returns the span of the nth word (1-based) of text.
//
// A word is only terminated by a space, so the bytes after the last space
// are never reported as a word. The one exception is a text with no spaces
// at all: word 1 is then the whole text. Every other miss returns
// ErrNotFound.
//
// Locate panics if n < 1.
func Locate(text []byte, n int) (Span, error) {
	return locate(text, n)
}

func locate[T []byte | string](text T, n int) (Span, error) {
	if n < 1 {
		panic(fmt.Sprintf("words: word index must be >= 1, got %d", n))
	}

	spaces := 0
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != space {
			continue
		}
		spaces++
		if spaces == n {
			return Span{Start: start, End: i}, nil
		}
		start = i + 1
	}

	if spaces == 0 && n == 1 {
		return Span{Start: 0, End: len(text)}, nil
	}
	return Span{}, ErrNotFound
}

// NthWord is Locate for strings. The returned word is a substring of s.
func NthWord(s string, n int) (string, error) {
	sp, err := locate(s, n)
	if err != nil {
		return "", fmt.Errorf("word %d of %q: %w", n, s, err)
	}
	return s[sp.Start:sp.End], nil
}

// FirstWordLen returns the number of bytes before the first space, or
// len(text) when text has no space.
func FirstWordLen(text []byte) int {
	for i, b := range text {
		if b == space {
			return i
		}
	}
	return len(text)
}
