package quiz

import (
	"regexp"
	"strings"
)

// Drafting models wrap JSON in markdown code fences (and sometimes
// surrounding prose) often enough that the payload has to be cut out before
// parsing. The rules are deliberately narrow, with each fence case defined:
//
//   - no fence marker: the blob passes through unchanged;
//   - an opening fence (optional language tag) with a closing fence: the
//     content strictly between the first such pair;
//   - an opening fence with no closing fence: everything after it.
//
// Interior content is never altered; anything beyond fence stripping is the
// schema normalizer's job.
var fenceRe = regexp.MustCompile("(?s)```[a-zA-Z0-9_-]*[ \\t]*\\r?\\n?(.*?)(?:```|\\z)")

// Sanitize extracts the structured payload from a raw model blob.
func Sanitize(raw string) string {
	if !strings.Contains(raw, "```") {
		return strings.TrimSpace(raw)
	}
	m := fenceRe.FindStringSubmatch(raw)
	if m == nil {
		return strings.TrimSpace(raw)
	}
	return strings.TrimSpace(m[1])
}
