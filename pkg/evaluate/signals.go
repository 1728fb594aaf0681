// Package evaluate implements the two-stage attempt evaluation: the
// deterministic guard computes provable pass-blocks and score caps, then the
// rubric judge scores the attempt with the judge model.
package evaluate

import "strings"

// NormalizeSignal lowercases and collapses all whitespace runs to single
// spaces. Signal matching is a normalized substring test.
func NormalizeSignal(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// SignalCoverage returns matched/total for the expected signals against the
// text. No signals means full coverage.
func SignalCoverage(text string, signals []string) float64 {
	if len(signals) == 0 {
		return 1
	}
	normalized := NormalizeSignal(text)
	matched := 0
	for _, sig := range signals {
		if sig = NormalizeSignal(sig); sig != "" && strings.Contains(normalized, sig) {
			matched++
		}
	}
	return float64(matched) / float64(len(signals))
}
