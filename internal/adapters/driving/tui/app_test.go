package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
)

type mockSession struct {
	article  *domain.Article
	setErr   error
	askErr   error
	answer   domain.Answer
	asked    []string
	cleared  bool
	setCalls []string
}

func (m *mockSession) SetArticle(_ context.Context, title string) (domain.Article, error) {
	m.setCalls = append(m.setCalls, title)
	if m.setErr != nil {
		return domain.Article{}, m.setErr
	}
	article := domain.Article{Title: title, Language: "en", Extract: "Some extract. More text."}
	m.article = &article
	return article, nil
}

func (m *mockSession) Article() (domain.Article, bool) {
	if m.article == nil {
		return domain.Article{}, false
	}
	return *m.article, true
}

func (m *mockSession) ClearArticle() {
	m.cleared = true
	m.article = nil
}

func (m *mockSession) Ask(_ context.Context, question string) (domain.Answer, error) {
	m.asked = append(m.asked, question)
	if m.askErr != nil {
		return domain.Answer{}, m.askErr
	}
	answer := m.answer
	answer.Question = question
	return answer, nil
}

func typeString(app *App, s string) *App {
	for _, r := range s {
		model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		app = model.(*App)
	}
	return app
}

func pressEnter(t *testing.T, app *App) (*App, tea.Cmd) {
	t.Helper()
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return model.(*App), cmd
}

func TestNewApp_StartsInArticleMode(t *testing.T) {
	app := NewApp(&mockSession{})

	assert.Equal(t, modeArticle, app.mode)
	assert.Contains(t, app.View(), "wikiqa")
}

func TestApp_LoadArticleFlow(t *testing.T) {
	session := &mockSession{}
	app := NewApp(session)

	app = typeString(app, "Alan Turing")
	app, cmd := pressEnter(t, app)

	// Submission switches to busy mode and returns the fetch command.
	assert.Equal(t, modeBusy, app.mode)
	require.NotNil(t, cmd)

	// Run the async command and feed its message back in.
	msg := findMsg(t, cmd, articleLoadedMsg{})
	model, _ := app.Update(msg)
	app = model.(*App)

	assert.Equal(t, modeQuestion, app.mode)
	assert.Equal(t, []string{"Alan Turing"}, session.setCalls)
	assert.Contains(t, app.View(), "Article: Alan Turing")
}

func TestApp_AskFlow(t *testing.T) {
	session := &mockSession{
		answer: domain.Answer{
			Text:        "Maida Vale, London",
			Score:       0.87,
			ChunkIndex:  2,
			TotalChunks: 5,
		},
	}
	app := NewApp(session)

	// Load an article first.
	app = typeString(app, "Alan Turing")
	app, cmd := pressEnter(t, app)
	model, _ := app.Update(findMsg(t, cmd, articleLoadedMsg{}))
	app = model.(*App)

	// Ask a question.
	app = typeString(app, "Where was Turing born?")
	app, cmd = pressEnter(t, app)
	assert.Equal(t, modeBusy, app.mode)

	model, _ = app.Update(findMsg(t, cmd, answerMsg{}))
	app = model.(*App)

	assert.Equal(t, modeQuestion, app.mode)
	assert.Equal(t, []string{"Where was Turing born?"}, session.asked)
	view := app.View()
	assert.Contains(t, view, "Q: Where was Turing born?")
	assert.Contains(t, view, "Maida Vale, London")
	assert.Contains(t, view, "chunk 3/5")
}

func TestApp_NoAnswerRendered(t *testing.T) {
	session := &mockSession{
		answer: domain.Answer{ChunkIndex: domain.NoAnswerChunk, TotalChunks: 4},
	}
	app := NewApp(session)

	app = typeString(app, "Alan Turing")
	app, cmd := pressEnter(t, app)
	model, _ := app.Update(findMsg(t, cmd, articleLoadedMsg{}))
	app = model.(*App)

	app = typeString(app, "What colour is seven?")
	app, cmd = pressEnter(t, app)
	model, _ = app.Update(findMsg(t, cmd, answerMsg{}))
	app = model.(*App)

	assert.Contains(t, app.View(), "no answer found (searched 4 chunks)")
}

func TestApp_FetchErrorReturnsToArticleMode(t *testing.T) {
	session := &mockSession{setErr: errors.New("no article found")}
	app := NewApp(session)

	app = typeString(app, "Xyzzy Plugh")
	app, cmd := pressEnter(t, app)

	msg := findMsg(t, cmd, errMsg{})
	model, _ := app.Update(msg)
	app = model.(*App)

	assert.Equal(t, modeArticle, app.mode)
	assert.Contains(t, app.View(), "no article found")
}

func TestApp_EscClearsArticle(t *testing.T) {
	session := &mockSession{}
	app := NewApp(session)

	app = typeString(app, "Alan Turing")
	app, cmd := pressEnter(t, app)
	model, _ := app.Update(findMsg(t, cmd, articleLoadedMsg{}))
	app = model.(*App)
	require.Equal(t, modeQuestion, app.mode)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)

	assert.True(t, session.cleared)
	assert.Equal(t, modeArticle, app.mode)
	assert.NotContains(t, app.View(), "Article:")
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := NewApp(&mockSession{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_EmptySubmitIgnored(t *testing.T) {
	app := NewApp(&mockSession{})

	app, cmd := pressEnter(t, app)

	assert.Nil(t, cmd)
	assert.Equal(t, modeArticle, app.mode)
}

func TestApp_KeysIgnoredWhileBusy(t *testing.T) {
	app := NewApp(&mockSession{})
	app = typeString(app, "Alan Turing")
	app, _ = pressEnter(t, app)
	require.Equal(t, modeBusy, app.mode)

	app = typeString(app, "ignored")
	_, cmd := pressEnter(t, app)

	assert.Nil(t, cmd)
	assert.Equal(t, modeBusy, app.mode)
}

// findMsg runs the batched command tree and returns the first message
// with the same type as want.
func findMsg(t *testing.T, cmd tea.Cmd, want tea.Msg) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)

	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		switch want.(type) {
		case articleLoadedMsg:
			if _, ok := msg.(articleLoadedMsg); ok {
				return msg
			}
		case answerMsg:
			if _, ok := msg.(answerMsg); ok {
				return msg
			}
		case errMsg:
			if _, ok := msg.(errMsg); ok {
				return msg
			}
		}
	}

	t.Fatalf("command tree produced no %T", want)
	return nil
}
