// Package integrationtest exercises the full pipeline: YAML resume file ->
// validated document -> section formatting -> Typst markup.
package integrationtest

import (
	"path/filepath"
	"testing"

	"github.com/rickchristie/vitae"
	"github.com/rickchristie/vitae/integrationtest/testutil"
	"github.com/rickchristie/vitae/render"
	"github.com/rickchristie/vitae/resume"
	"github.com/stretchr/testify/require"
)

func TestResumeToTypst(t *testing.T) {
	doc, err := resume.LoadFile(filepath.Join("testdata", "resume.yaml"))
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", doc.Name)

	markup, err := render.NewTypst().Render(doc.Content())
	require.NoError(t, err)

	testutil.AssertGolden(t, filepath.Join("testdata", "resume.typ.golden"), markup)
}

func TestResumeEntryOrdering(t *testing.T) {
	doc, err := resume.LoadFile(filepath.Join("testdata", "resume.yaml"))
	require.NoError(t, err)

	// The named day-job entry is listed second in the file but sorts ahead
	// of the positional volunteer entry.
	entries := doc.Sections[0].Build().Entries()
	require.Len(t, entries, 2)
	require.Equal(t, vitae.Text("Owner"), entries[0].Position)
	require.Equal(t, vitae.Text("Volunteer"), entries[1].Position)
}
