package dataprocessing

import (
	"regexp"
	"strings"

	"gymcli/internal/config"
)

// Regex fallbacks for pages whose wording drifts from the literal markers
// (extra whitespace, different casing).
var eventProbes = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`(?i)Women's\s+Vault`), "Vault"},
	{regexp.MustCompile(`(?i)Women's\s+Uneven\s+Bars`), "Uneven Bars"},
	{regexp.MustCompile(`(?i)Women's\s+Balance\s+Beam`), "Balance Beam"},
	{regexp.MustCompile(`(?i)Women's\s+Floor`), "Floor"},
}

// DetectEventName classifies one page of an event-finals report by its raw
// text. Literal markers are tried in priority order, then the regex
// probes. Classification is total: pages matching nothing are labeled
// Unknown. Only this page's text is consulted.
func DetectEventName(pageText string) string {
	for _, p := range config.EventPatterns {
		if strings.Contains(pageText, p.Marker) {
			return p.Label
		}
	}
	for _, p := range eventProbes {
		if p.re.MatchString(pageText) {
			return p.label
		}
	}
	return config.UnknownEventLabel
}

// ClassifyPages labels every page of a document. The result is indexed by
// page (0-based) and always has one label per input page.
func ClassifyPages(pageTexts []string) []string {
	labels := make([]string, len(pageTexts))
	for i, text := range pageTexts {
		labels[i] = DetectEventName(text)
	}
	return labels
}
