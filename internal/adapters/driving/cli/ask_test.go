package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [title] [question]", askCmd.Use)
}

func TestAskCmd_RequiresExactlyTwoArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "Alan Turing"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestAskCmd_PrintsAnswer(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "Alan Turing", "Where was Turing born?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Answer: Maida Vale, London")
	assert.Contains(t, buf.String(), "Confidence: 0.8700")
	assert.Contains(t, buf.String(), "Chunk: 3/5")
}

func TestAskCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--json", "Alan Turing", "Where was Turing born?"})
	defer func() {
		rootCmd.SetArgs(nil)
		askJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"answer": "Maida Vale, London"`)
	assert.Contains(t, buf.String(), `"confidence": 0.87`)
	assert.Contains(t, buf.String(), `"chunk_index": 2`)
	assert.Contains(t, buf.String(), `"question": "Where was Turing born?"`)
}

func TestAskCmd_NoAnswerFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	qaService.(*mockQAService).answer.Text = ""
	qaService.(*mockQAService).answer.Score = 0.0
	qaService.(*mockQAService).answer.ChunkIndex = -1

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "Alan Turing", "What colour is seven?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No answer found (searched 5 chunks)")
}

func TestAskCmd_RecordsHistory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "Alan Turing", "Where was Turing born?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	store := historyStore.(*mockHistoryStore)
	require.Len(t, store.entries, 1)
	assert.Equal(t, "Alan Turing", store.entries[0].ArticleTitle)
	assert.Equal(t, "en", store.entries[0].Language)
	assert.Equal(t, "Where was Turing born?", store.entries[0].Answer.Question)
	assert.NotEmpty(t, store.entries[0].ID)
}

func TestAskCmd_HistoryFailureNotFatal(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	historyStore.(*mockHistoryStore).appendErr = errors.New("disk full")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "Alan Turing", "Where was Turing born?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Answer:")
}

func TestAskCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	qaService.(*mockQAService).err = errors.New("article not found")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "Xyzzy", "What?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ask failed")
}

func TestAskCmd_HasOverrideFlags(t *testing.T) {
	require.NotNil(t, askCmd.Flags().Lookup("json"))
	require.NotNil(t, askCmd.Flags().Lookup("lang"))
	require.NotNil(t, askCmd.Flags().Lookup("max-length"))
}
