package integrationtest

import (
	"testing"

	"github.com/randalmurphal/expconf"
	"github.com/randalmurphal/expconf/testutil"
)

// setupComposer writes the canonical base tree to disk and returns a
// composer reading it, exercising the real os.DirFS store path.
func setupComposer(t *testing.T) *expconf.Composer {
	t.Helper()

	dir := testutil.WriteBaseTree(t)
	return expconf.NewComposer(expconf.ComposerConfig{
		Store: expconf.NewStore(dir),
	})
}
