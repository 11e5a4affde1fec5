package assert

import "testing"

// Exercises the release build (no "debug" build tag): DEBUG is false and
// Assert never panics regardless of the condition.
func TestAssertIsNoOpWithoutDebugTag(t *testing.T) {
	if DEBUG {
		t.Skip("running under the debug build tag, release behavior not in effect")
	}
	Assert(false, "this must never panic: %d", 1)
}

func TestDebugFlagMatchesBuildTag(t *testing.T) {
	if DEBUG {
		t.Error("DEBUG should be false when the debug build tag is not set")
	}
}
