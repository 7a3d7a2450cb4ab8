package analyzer

import (
	"fmt"

	"github.com/alexandramedway/odds/internal/tast"
)

// nameCounter is the process-wide, monotonically increasing counter used to
// mint unique names (spec.md §3, §5). It is intentionally package-level
// state, mirroring the source implementation's own process-wide counter,
// and is not threaded through Env.
var nameCounter int

// mintName returns a fresh alpha-renamed identifier of the form
// <source>_<N>. Minting is strictly monotonic across an entire analysis
// run so that source order matches uname order (spec.md §5).
func mintName(source string) tast.UniqueName {
	nameCounter++
	return tast.UniqueName(fmt.Sprintf("%s_%d", source, nameCounter))
}

// resetNameCounter restarts the unique-name counter. It is unexported and
// used by this package's tests, which need deterministic uname output across independent analysis runs;
// production callers (cmd/odds, pkg/odds) never call this within a single
// process lifetime, since uniqueness is specified as global to a run, not
// merely to a single call to Analyze.
func resetNameCounter() {
	nameCounter = 0
}
