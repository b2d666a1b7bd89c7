// Package playground runs each exercise as a titled section over inputs taken
// from an examples file and prints the results.
package playground

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/dan-bear/playground/leetcode"
	"github.com/dan-bear/playground/words"
)

// ErrUnknownSection is returned by Run when asked for a section that does not
// exist.
var ErrUnknownSection = errors.New("unknown section")

// Config holds Runner construction parameters.
type Config struct {
	// Out receives the section output. Defaults to os.Stdout.
	Out io.Writer

	// Logger is used for operational messages. If nil, log.Default() is used.
	Logger *log.Logger
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Out == nil {
		out.Out = os.Stdout
	}
	if out.Logger == nil {
		out.Logger = log.Default()
	}
	return out
}

type section struct {
	name  string
	title string
	run   func(r *Runner)
}

// sections are printed in this order.
var sections = []section{
	{"nth-word", "Nth word — half-open spans over a byte buffer", (*Runner).nthWord},
	{"first-word-len", "First word length", (*Runner).firstWordLen},
	{"bubble-sort", "Bubble sort", (*Runner).bubbleSort},
	{"two-sum", "Two sum", (*Runner).twoSum},
	{"digit-count", "Digit count", (*Runner).digitCount},
	{"max-digit", "Max digit", (*Runner).maxDigit},
}

// Sections returns the section names accepted by Run, in run order.
func Sections() []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.name
	}
	return names
}

// Runner prints every section over one set of examples.
type Runner struct {
	cfg Config
	ex  *Examples
}

// NewRunner returns a Runner over ex.
func NewRunner(ex *Examples, cfg Config) *Runner {
	return &Runner{cfg: cfg.withDefaults(), ex: ex}
}

// Run prints the section named only, or every section when only is empty.
func (r *Runner) Run(only string) error {
	if only != "" && !slices.Contains(Sections(), only) {
		return fmt.Errorf("%w %q (have %s)", ErrUnknownSection, only, strings.Join(Sections(), ", "))
	}

	ran := 0
	for _, s := range sections {
		if only != "" && s.name != only {
			continue
		}
		r.printf("\n━━━ %s ━━━\n", s.title)
		s.run(r)
		r.printf("%s\n", strings.Repeat("_", max(r.ex.SeparatorWidth, 0)))
		ran++
	}
	r.cfg.Logger.Printf("[playground] ran %d section(s)", ran)
	return nil
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.cfg.Out, format, args...)
}

func (r *Runner) nthWord() {
	for _, q := range r.ex.NthWord {
		text := []byte(q.Text)
		for _, n := range q.Indexes {
			sp, err := words.Locate(text, n)
			switch {
			case errors.Is(err, words.ErrNotFound):
				r.printf("  %q word %d → %v\n", q.Text, n, err)
			case err != nil:
				r.printf("  %q word %d → unexpected error: %v\n", q.Text, n, err)
			default:
				r.printf("  %q word %d → %s %q\n", q.Text, n, sp, sp.Bytes(text))
			}
		}
	}
}

func (r *Runner) firstWordLen() {
	for _, s := range r.ex.FirstWordLen {
		r.printf("  %q bytes till space: %d\n", s, words.FirstWordLen([]byte(s)))
	}
}

func (r *Runner) bubbleSort() {
	for _, in := range r.ex.BubbleSort {
		s := slices.Clone(in)
		leetcode.BubbleSort(s)
		r.printf("  %v → %v\n", in, s)
		if !slices.IsSorted(s) {
			r.cfg.Logger.Printf("[playground] bubble sort left %v unsorted", s)
		}
	}
}

func (r *Runner) twoSum() {
	for _, c := range r.ex.TwoSum {
		r.printf("  nums=%v target=%d → %v\n", c.Nums, c.Target, leetcode.TwoSum(c.Nums, c.Target))
	}
}

func (r *Runner) digitCount() {
	for _, n := range r.ex.DigitCount {
		r.printf("  %d has %d digit(s)\n", n, leetcode.DigitCount(n))
	}
}

func (r *Runner) maxDigit() {
	for _, n := range r.ex.MaxDigit {
		r.printf("  max digit of %d = %d\n", n, leetcode.MaxDigit(n))
	}
}
