package domain_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"sift.dev/pkg/sift/internal/adapter"
	adaptermocks "sift.dev/pkg/sift/internal/adapter/mocks"
	"sift.dev/pkg/sift/internal/controller"
	controllermocks "sift.dev/pkg/sift/internal/controller/mocks"
	"sift.dev/pkg/sift/internal/domain"
	m "sift.dev/pkg/sift/internal/model"
)

func newBufferedUI(out *bytes.Buffer) controller.UI {
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return controller.NewSimpleUI(cmd)
}

// splitGroups breaks rendered output into one block per file, order-independent.
func splitGroups(output string) []string {
	var blocks []string

	for _, block := range strings.Split(output, "\n\n") {
		if block != "" {
			blocks = append(blocks, block)
		}
	}

	return blocks
}

func TestWorkflow_Search_ExplicitFile(t *testing.T) {
	root := t.TempDir()
	poem := filepath.Join(root, "poem.txt")
	writeFile(t, poem, "I'm nobody! Who are you?\nAre you nobody, too?\nThen there's a pair of us - don't tell!\n")

	var out bytes.Buffer
	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), newBufferedUI(&out))

	err := wf.Search(context.Background(), domain.SearchArgs{
		Query:      "nobody",
		Path:       m.Path(poem),
		MinMatches: domain.DefaultMinMatches,
	})
	require.NoError(t, err)

	assert.Equal(t, "File: "+poem+"\n0: I'm nobody! Who are you?\n1: Are you nobody, too?\n\n", out.String())
}

func TestWorkflow_Search_ExplicitFileSingleMatchIsDropped(t *testing.T) {
	root := t.TempDir()
	poem := filepath.Join(root, "poem.txt")
	writeFile(t, poem, "Rust:\nsafe, fast, productive.\nPick three.")

	var out bytes.Buffer
	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), newBufferedUI(&out))

	err := wf.Search(context.Background(), domain.SearchArgs{Query: "duct", Path: m.Path(poem), MinMatches: domain.DefaultMinMatches})
	require.NoError(t, err)
	assert.Empty(t, out.String())

	err = wf.Search(context.Background(), domain.SearchArgs{Query: "duct", Path: m.Path(poem), MinMatches: 1})
	require.NoError(t, err)
	assert.Equal(t, "File: "+poem+"\n1: safe, fast, productive.\n\n", out.String())
}

func TestWorkflow_Search_ExplicitMissingFile(t *testing.T) {
	var out bytes.Buffer
	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), newBufferedUI(&out))

	err := wf.Search(context.Background(), domain.SearchArgs{
		Query: "x",
		Path:  m.Path(filepath.Join(t.TempDir(), "missing.txt")),
	})

	var ioErr *m.IoError
	require.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, out.String())
}

func TestWorkflow_Search_DiscoveredTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "to be\nor not\nto be\n")
	writeFile(t, filepath.Join(root, "nested", "b.txt"), "to\nto\nto\n")
	writeFile(t, filepath.Join(root, "nested", "c.txt"), "only one to\n")
	writeFile(t, filepath.Join(root, "d.txt"), "nothing\n")

	t.Chdir(root)

	wd, err := os.Getwd()
	require.NoError(t, err)

	var out bytes.Buffer
	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), newBufferedUI(&out))

	err = wf.Search(context.Background(), domain.SearchArgs{Query: "to", MinMatches: domain.DefaultMinMatches})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"File: " + filepath.Join(wd, "a.txt") + "\n0: to be\n2: to be",
		"File: " + filepath.Join(wd, "nested", "b.txt") + "\n0: to\n1: to\n2: to",
	}, splitGroups(out.String()))
}

func TestWorkflow_Search_EmptyQueryReportsEveryLine(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "first\nsecond\n")
	writeFile(t, filepath.Join(root, "b.txt"), "x\ny\nz")

	t.Chdir(root)

	wd, err := os.Getwd()
	require.NoError(t, err)

	var out bytes.Buffer
	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), newBufferedUI(&out))

	require.NoError(t, wf.Search(context.Background(), domain.SearchArgs{Query: "", MinMatches: domain.DefaultMinMatches}))

	assert.ElementsMatch(t, []string{
		"File: " + filepath.Join(wd, "a.txt") + "\n0: first\n1: second",
		"File: " + filepath.Join(wd, "b.txt") + "\n0: x\n1: y\n2: z",
	}, splitGroups(out.String()))
}

func TestWorkflow_Search_UnreadableDiscoveredFileIsSkipped(t *testing.T) {
	ctx := context.Background()
	mockFSAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	mockFSAdapter.On("Getwd", ctx).Return(m.Path("/work"), nil)
	mockFSAdapter.On("Walk", ctx, m.Path("/work"), true, mock.Anything).Return(nil, []adaptermocks.WalkEntry{
		{Path: "/work/a.txt", Info: adaptermocks.FakeFileInfo{FileName: "a.txt"}},
		{Path: "/work/vanished.txt", Info: adaptermocks.FakeFileInfo{FileName: "vanished.txt"}},
		{Path: "/work/b.txt", Info: adaptermocks.FakeFileInfo{FileName: "b.txt"}},
	})
	mockFSAdapter.On("ReadFile", ctx, m.Path("/work/a.txt")).Return([]byte("hit\nhit"), nil)
	mockFSAdapter.On("ReadFile", ctx, m.Path("/work/vanished.txt")).Return(nil, os.ErrNotExist)
	mockFSAdapter.On("ReadFile", ctx, m.Path("/work/b.txt")).Return([]byte("hit\nmiss\nhit"), nil)

	mockUI.On("DisplayMatches", ctx, mock.MatchedBy(func(groups []m.FileMatchGroup) bool {
		if len(groups) != 2 {
			return false
		}

		seen := map[m.Path]int{}
		for _, group := range groups {
			seen[group.FileName] = len(group.Matches)
		}

		return seen["/work/a.txt"] == 2 && seen["/work/b.txt"] == 2
	})).Return(nil)

	wf := domain.NewWorkflow(mockFSAdapter, mockUI)

	require.NoError(t, wf.Search(ctx, domain.SearchArgs{Query: "hit", MinMatches: domain.DefaultMinMatches}))
}

func TestWorkflow_Search_ConfigErrorStopsBeforeIO(t *testing.T) {
	ctx := context.Background()
	mockFSAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	mockFSAdapter.On("Getwd", ctx).Return(m.Path(""), errors.New("deleted"))

	err := domain.NewWorkflow(mockFSAdapter, mockUI).Search(ctx, domain.SearchArgs{Query: "x"})

	var cfgErr *m.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	mockFSAdapter.AssertNotCalled(t, "ReadFile", mock.Anything, mock.Anything)
	mockUI.AssertNotCalled(t, "DisplayMatches", mock.Anything, mock.Anything)
}

func TestWorkflow_Search_DisplayError(t *testing.T) {
	ctx := context.Background()
	mockFSAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	writeErr := m.NewIoError("write", "", errors.New("broken pipe"))
	mockFSAdapter.On("ReadFile", ctx, m.Path("poem.txt")).Return([]byte("a\na"), nil)
	mockUI.On("DisplayMatches", ctx, mock.Anything).Return(writeErr)

	err := domain.NewWorkflow(mockFSAdapter, mockUI).Search(ctx, domain.SearchArgs{Query: "a", Path: "poem.txt"})

	var ioErr *m.IoError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "write", ioErr.Op)
}
