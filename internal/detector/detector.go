// Package detector implements six independent, heuristic detection routines
// over the text of a single source file. Matching is regex and line oriented:
// each rule preserves its documented trigger condition and severity, nothing
// more. The routines are pure functions over (file, lines) and safe for
// concurrent use.
package detector

import "github.com/aleister1102/bugsentry/internal/models"

// Func is one category detector applied to a scanned file. The file argument
// is the path relative to the scan root and is copied verbatim into findings.
type Func func(file string, lines []string) []models.Finding

// All returns the six category detectors in report order. The order only
// affects the raw finding stream; the aggregator re-sorts deterministically.
func All() []Func {
	return []Func{
		DetectInputInteraction,
		DetectResourceManagement,
		DetectConcurrency,
		DetectBoundaryConditions,
		DetectEnvironmentDependencies,
		DetectDynamicCodeExecution,
	}
}
