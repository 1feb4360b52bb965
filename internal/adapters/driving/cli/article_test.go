package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleCmd_Use(t *testing.T) {
	assert.Equal(t, "article [title]", articleCmd.Use)
}

func TestArticleCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"article"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestArticleCmd_PrintsStats(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"article", "Alan Turing"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Title: Alan Turing")
	assert.Contains(t, out, "Language: en")
	assert.Contains(t, out, "Page ID: 1208")
	assert.Contains(t, out, "Extract: 68 chars")
	assert.Contains(t, out, "Chunks: 1")
	assert.Contains(t, out, "Alan Turing was an English mathematician.")
}

func TestArticleCmd_FetchError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	articleFetcher.(*mockFetcher).fetchErr = errors.New("no article found")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"article", "Xyzzy Plugh"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fetch failed")
}

func TestArticleCmd_TruncatesLongExtract(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	long := make([]byte, 0, previewLength*2)
	for len(long) < previewLength*2 {
		long = append(long, "All work and no play. "...)
	}
	articleFetcher.(*mockFetcher).article.Extract = string(long)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"article", "The Shining"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "...")
}
