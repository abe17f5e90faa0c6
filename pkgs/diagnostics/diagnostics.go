package diagnostics

import (
	"fmt"
	"io"
	"sync"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single reported condition with its source
// location. Snippet holds the offending or partial source text, so an
// unterminated literal keeps what was read for later rendering.
type Diagnostic struct {
	Severity Severity
	Code     string // stable code like "L0001"
	Message  string
	Line     int // 1-based, 0 when unknown
	Column   int // 1-based, 0 when unknown
	Snippet  string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s[%s] %d:%d: %s", d.Severity, d.Code, d.Line, d.Column, d.Message)
	}
	return fmt.Sprintf("%s[%s]: %s", d.Severity, d.Code, d.Message)
}

// Reporter receives diagnostics as they are produced. The lexer takes
// one as an option so error reporting stays observable and testable
// instead of going to process-wide output.
type Reporter interface {
	Report(d Diagnostic)
}

// Bag collects diagnostics during a compilation pass
type Bag struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
	errorCount  int
	warnCount   int
}

// NewBag creates an empty diagnostic bag
func NewBag() *Bag {
	return &Bag{}
}

// Report adds a diagnostic to the bag
func (b *Bag) Report(d Diagnostic) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.diagnostics = append(b.diagnostics, d)
	switch d.Severity {
	case Error:
		b.errorCount++
	case Warning:
		b.warnCount++
	}
}

// HasErrors returns true if any error-severity diagnostic was reported
func (b *Bag) HasErrors() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount > 0
}

// ErrorCount returns the number of error-severity diagnostics
func (b *Bag) ErrorCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount
}

// All returns a copy of the collected diagnostics in report order
func (b *Bag) All() []Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Diagnostic, len(b.diagnostics))
	copy(out, b.diagnostics)
	return out
}

// Render writes every collected diagnostic to w, one per line,
// prefixed with the file path when one is given.
func (b *Bag) Render(w io.Writer, path string) error {
	for _, d := range b.All() {
		var err error
		if path != "" {
			_, err = fmt.Fprintf(w, "%s: %s\n", path, d)
		} else {
			_, err = fmt.Fprintln(w, d)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Discard is a Reporter that drops everything. It is the default sink
// for lexers constructed without one.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(Diagnostic) {}
