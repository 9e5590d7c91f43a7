package output_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"
	"testing"

	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newSink(t *testing.T, format string) (*output.Sink, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer
	sink, err := output.NewSink(output.Options{
		Format: format,
		Root:   "/work",
		Out:    &out,
		Err:    &errOut,
	})
	require.NoError(t, err)
	return sink, &out, &errOut
}

func listingError(path, reason string) error {
	return errors.Wrapf(fs.ErrPermission, errors.ErrListing, "cannot list %s", path).
		WithDetail("path", path).
		WithDetail("reason", reason)
}

func TestSink_TextStreamsPaths(t *testing.T) {
	sink, out, errOut := newSink(t, output.FormatText)

	require.NoError(t, sink.Report(output.Match{Path: "/work/b/node_modules", Kind: "dir", Pattern: "node_modules"}))
	require.NoError(t, sink.Report(output.Match{Path: "/work/a/.pnpm-debug.log", Kind: "file", Pattern: ".pnpm-debug.log"}))
	assert.Equal(t, "/work/b/node_modules\n/work/a/.pnpm-debug.log\n", out.String(), "text output is not sorted")

	require.NoError(t, sink.Close())
	assert.Equal(t, "/work/b/node_modules\n/work/a/.pnpm-debug.log\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestSink_TextProblemsGoToErrorWriter(t *testing.T) {
	sink, out, errOut := newSink(t, output.FormatText)

	sink.ReportError(listingError("/work/locked", "EACCES"))

	assert.Empty(t, out.String())
	assert.Equal(t, "EACCES /work/locked\n", errOut.String())
}

func TestSink_ProblemWithoutDetailsUsesCode(t *testing.T) {
	sink, _, errOut := newSink(t, output.FormatText)

	sink.ReportError(errors.New(errors.ErrListing, "boom"))
	sink.ReportError(fmt.Errorf("plain"))

	problems := sink.Problems()
	require.Len(t, problems, 2)
	assert.ElementsMatch(t, []string{"LISTING", "UNKNOWN"}, []string{problems[0].Code, problems[1].Code})
	assert.Contains(t, errOut.String(), "LISTING")
}

func TestSink_JSONDocument(t *testing.T) {
	sink, out, errOut := newSink(t, output.FormatJSON)

	require.NoError(t, sink.Report(output.Match{Path: "/work/z/node_modules", Kind: "dir", Pattern: "node_modules"}))
	require.NoError(t, sink.Report(output.Match{Path: "/work/a/node_modules", Kind: "dir", Pattern: "node_modules"}))
	sink.ReportError(listingError("/work/locked", "EACCES"))
	assert.Empty(t, out.String(), "nothing is written before Close")

	require.NoError(t, sink.Close())
	assert.Empty(t, errOut.String())

	var doc output.Document
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "/work", doc.Root)
	require.Len(t, doc.Matches, 2)
	assert.Equal(t, "/work/a/node_modules", doc.Matches[0].Path)
	assert.Equal(t, "/work/z/node_modules", doc.Matches[1].Path)
	require.Len(t, doc.Problems, 1)
	assert.Equal(t, "EACCES", doc.Problems[0].Code)
	assert.Equal(t, "/work/locked", doc.Problems[0].Path)
}

func TestSink_YAMLDocument(t *testing.T) {
	sink, out, _ := newSink(t, output.FormatYAML)

	require.NoError(t, sink.Report(output.Match{Path: "/work/.pnpm-debug.log", Kind: "file", Pattern: ".pnpm-debug.log"}))
	require.NoError(t, sink.Close())

	var doc output.Document
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Matches, 1)
	assert.Equal(t, output.Match{Path: "/work/.pnpm-debug.log", Kind: "file", Pattern: ".pnpm-debug.log"}, doc.Matches[0])
	assert.Empty(t, doc.Problems)
}

func TestSink_CloseIsIdempotent(t *testing.T) {
	sink, out, _ := newSink(t, output.FormatJSON)

	require.NoError(t, sink.Close())
	first := out.String()
	require.NoError(t, sink.Close())
	assert.Equal(t, first, out.String())
}

func TestSink_EmptyDocumentHasMatchesArray(t *testing.T) {
	sink, out, _ := newSink(t, output.FormatJSON)
	require.NoError(t, sink.Close())
	assert.Contains(t, out.String(), `"matches": []`)
}

func TestSink_UnknownFormat(t *testing.T) {
	_, err := output.NewSink(output.Options{Format: "xml", Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestSink_ConcurrentReports(t *testing.T) {
	sink, out, _ := newSink(t, output.FormatText)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, sink.Report(output.Match{Path: fmt.Sprintf("/work/%02d", i), Kind: "dir"}))
		}(i)
	}
	wg.Wait()

	matches := sink.Matches()
	require.Len(t, matches, 50)
	assert.Equal(t, "/work/00", matches[0].Path)
	assert.Equal(t, "/work/49", matches[49].Path)
	assert.Equal(t, 50, bytes.Count(out.Bytes(), []byte("\n")))
}

func TestUseColor(t *testing.T) {
	assert.False(t, output.UseColor(&bytes.Buffer{}, false), "buffers are not terminals")
	assert.False(t, output.UseColor(&bytes.Buffer{}, true))
}
