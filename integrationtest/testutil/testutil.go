// Package testutil provides shared infrastructure for integration tests.
package testutil

import (
	"flag"
	"os"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

var update = flag.Bool("update", false, "rewrite golden files with current output")

// AssertGolden compares got against the golden file at path and fails the
// test with a unified diff on mismatch. Run tests with -update to rewrite
// the golden files instead.
func AssertGolden(t *testing.T, path string, got string) {
	t.Helper()

	if *update {
		if err := os.WriteFile(path, []byte(got+"\n"), 0644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", path, err)
		}
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", path, err)
	}

	want := trimTrailingNewline(string(raw))
	if got == want {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: path,
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("failed to diff against %s: %v", path, err)
	}
	t.Errorf("output does not match %s:\n%s", path, diff)
}

func trimTrailingNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
