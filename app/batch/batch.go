// Package batch holds the shared heuristic that recovers a batch name from
// free-text log descriptions. The pipeline writes descriptions shaped like
// "xds_cron - ((93vl)) import failed"; the part before the first " - " is
// the batch label.
package batch

import "strings"

const separator = " - "

// Extract returns the batch name embedded in description and true, or
// ("", false) when the description carries none. A description without the
// separator is inert, it never falls back to the whole string. A blank
// prefix counts as no batch.
func Extract(description string) (string, bool) {
	before, _, found := strings.Cut(description, separator)
	if !found {
		return "", false
	}
	name := strings.TrimSpace(before)
	if name == "" {
		return "", false
	}
	return name, true
}
