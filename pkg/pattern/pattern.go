// Package pattern defines the semantic data types for demo output.
// Patterns are pure data — renderers decide presentation.
package pattern

import "fmt"

// PatternType identifies the kind of output pattern.
type PatternType string

const (
	PatternTypeTranscript PatternType = "transcript"
)

// Pattern is the interface all output patterns implement.
// Patterns hold data; renderers decide how to present it.
type Pattern interface {
	Type() PatternType
}

// LineKind classifies a transcript line for styling.
type LineKind string

const (
	LineNote   LineKind = "note"   // commentary about what the demo is doing
	LineStep   LineKind = "step"   // an action the demo performs
	LineResult LineKind = "result" // output produced by the pattern under demonstration
)

// Line is one printed line of a demo transcript.
type Line struct {
	Kind LineKind
	Text string
}

// Transcript is the ordered output of one pattern demonstration.
type Transcript struct {
	Label string
	Lines []Line
}

// Type implements Pattern.
func (t *Transcript) Type() PatternType { return PatternTypeTranscript }

// Writeln appends a formatted line of the given kind.
func (t *Transcript) Writeln(kind LineKind, format string, args ...any) {
	t.Lines = append(t.Lines, Line{Kind: kind, Text: fmt.Sprintf(format, args...)})
}
