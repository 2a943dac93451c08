package text

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Delta encodes the edit from original to modified as a diff-match-patch
// delta ("=3\t-1\t=2" style). Applying it to original with
// DiffFromDelta reproduces modified.
func Delta(original, modified string) string {
	if original == modified {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, modified, false)
	return dmp.DiffToDelta(diffs)
}
