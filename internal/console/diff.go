package console

import (
	"fmt"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// cardDiff returns a unified diff between two renderings of a client card,
// or "" when nothing changed.
func cardDiff(before, after string) string {
	if before == after {
		return ""
	}
	edits := myers.ComputeEdits(span.URIFromPath("before"), before, after)
	return fmt.Sprint(gotextdiff.ToUnified("before", "after", before, edits))
}
