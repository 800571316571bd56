package diffutil

import (
	"regexp"
	"strings"
)

// indexLineRe matches git's per-file "index <hash>..<hash> [<mode>]" metadata
// line. git and the GitHub API abbreviate object hashes to different lengths
// for the same change, so these lines cannot be compared verbatim.
var indexLineRe = regexp.MustCompile(`^index [0-9a-f]+\.\.[0-9a-f]+( [0-9]+)?$`)

// Normalize strips index metadata lines from a textual diff so that diffs of
// the same change produced by different sources compare equal. All other
// lines, including content lines that merely contain the word "index", are
// preserved verbatim.
func Normalize(diff string) string {
	lines := strings.Split(diff, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if indexLineRe.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
