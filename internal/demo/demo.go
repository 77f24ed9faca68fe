// Package demo builds the transcripts for the three pattern demonstrations.
// Each demo is independent and single-threaded; All returns them in their
// fixed presentation order.
package demo

import "github.com/dkoosis/patternbook/pkg/pattern"

// Names of the available demos, in presentation order.
var Names = []string{"adapter", "template", "factory"}

// ByName returns the transcript for a single named demo, or nil if the
// name is unknown.
func ByName(name string) *pattern.Transcript {
	switch name {
	case "adapter":
		return Adapter()
	case "template":
		return TemplateMethod()
	case "factory":
		return FactoryMethod()
	default:
		return nil
	}
}

// All runs every demo in order.
func All() []pattern.Pattern {
	return []pattern.Pattern{Adapter(), TemplateMethod(), FactoryMethod()}
}
