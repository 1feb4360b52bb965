// Package tui provides the interactive question answering session.
//
// The session holds one article at a time: the user loads an article by
// title, then asks any number of questions against it. Esc drops the
// article and returns to title entry.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
	"github.com/veldt-labs/wikiqa-cli/internal/core/ports/driving"
)

// mode identifies what the input line is currently for.
type mode int

const (
	// modeArticle: the input takes an article title.
	modeArticle mode = iota
	// modeQuestion: an article is loaded, the input takes questions.
	modeQuestion
	// modeBusy: a fetch or scoring run is in flight.
	modeBusy
)

// exchange is one answered question shown in the transcript.
type exchange struct {
	question string
	answer   domain.Answer
}

// Messages produced by async commands.
type (
	articleLoadedMsg struct{ article domain.Article }
	answerMsg        struct{ answer domain.Answer }
	errMsg           struct{ err error }
)

// App is the bubbletea model for the interactive session.
type App struct {
	session driving.SessionService
	ctx     context.Context

	input   textinput.Model
	spinner spinner.Model
	styles  *Styles

	mode      mode
	afterBusy mode // mode to return to when the in-flight command fails
	article   *domain.Article
	exchanges []exchange
	err       error

	width  int
	height int
}

// NewApp creates the interactive session model.
func NewApp(session driving.SessionService) *App {
	styles := DefaultStyles()

	input := textinput.New()
	input.Placeholder = "Article title, e.g. Alan Turing"
	input.Prompt = "> "
	input.CharLimit = 256
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return &App{
		session: session,
		ctx:     context.Background(),
		input:   input,
		spinner: sp,
		styles:  styles,
		mode:    modeArticle,
		width:   80,
		height:  24,
	}
}

// WithContext sets the context used for fetches and scoring.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = msg.Width - 4
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		if a.mode != modeBusy {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case articleLoadedMsg:
		a.article = &msg.article
		a.err = nil
		a.mode = modeQuestion
		a.resetInput("Ask a question about this article")
		return a, nil

	case answerMsg:
		a.exchanges = append(a.exchanges, exchange{
			question: msg.answer.Question,
			answer:   msg.answer,
		})
		a.err = nil
		a.mode = modeQuestion
		a.resetInput("Ask another question")
		return a, nil

	case errMsg:
		a.err = msg.err
		a.mode = a.afterBusy
		a.input.Focus()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit

	case tea.KeyEsc:
		if a.mode == modeBusy {
			return a, nil
		}
		// Drop the current article and start over.
		a.session.ClearArticle()
		a.article = nil
		a.exchanges = nil
		a.err = nil
		a.mode = modeArticle
		a.resetInput("Article title, e.g. Alan Turing")
		return a, nil

	case tea.KeyEnter:
		return a.submit()

	default:
		if a.mode == modeBusy {
			return a, nil
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
}

func (a *App) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(a.input.Value())
	if value == "" || a.mode == modeBusy {
		return a, nil
	}

	switch a.mode {
	case modeArticle:
		a.afterBusy = modeArticle
		a.mode = modeBusy
		a.input.Blur()
		return a, tea.Batch(a.spinner.Tick, a.loadArticle(value))

	case modeQuestion:
		a.afterBusy = modeQuestion
		a.mode = modeBusy
		a.input.Blur()
		return a, tea.Batch(a.spinner.Tick, a.ask(value))
	}

	return a, nil
}

// loadArticle fetches the titled article through the session.
func (a *App) loadArticle(title string) tea.Cmd {
	return func() tea.Msg {
		article, err := a.session.SetArticle(a.ctx, title)
		if err != nil {
			return errMsg{err}
		}
		return articleLoadedMsg{article}
	}
}

// ask answers a question against the session's current article.
func (a *App) ask(question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := a.session.Ask(a.ctx, question)
		if err != nil {
			return errMsg{err}
		}
		return answerMsg{answer}
	}
}

func (a *App) resetInput(placeholder string) {
	a.input.SetValue("")
	a.input.Placeholder = placeholder
	a.input.Focus()
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("wikiqa"))
	b.WriteString("\n\n")

	if a.article != nil {
		info := fmt.Sprintf("Article: %s (%s, %d chars)",
			a.article.Title, a.article.Language, len(a.article.Extract))
		b.WriteString(a.styles.ArticleInfo.Render(info))
		b.WriteString("\n\n")
	}

	for _, ex := range a.exchanges {
		b.WriteString(a.styles.Question.Render("Q: " + ex.question))
		b.WriteString("\n")
		b.WriteString(a.renderAnswer(ex.answer))
		b.WriteString("\n\n")
	}

	switch a.mode {
	case modeBusy:
		b.WriteString(a.spinner.View())
		if a.afterBusy == modeArticle {
			b.WriteString(" Fetching article...")
		} else {
			b.WriteString(" Scoring chunks...")
		}
	default:
		b.WriteString(a.input.View())
	}
	b.WriteString("\n")

	if a.err != nil {
		b.WriteString("\n")
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render(a.helpLine()))
	b.WriteString("\n")

	return b.String()
}

func (a *App) renderAnswer(answer domain.Answer) string {
	if !answer.Found() {
		return a.styles.NoAnswer.Render(
			fmt.Sprintf("A: no answer found (searched %d chunks)", answer.TotalChunks))
	}
	return a.styles.Answer.Render(
		fmt.Sprintf("A: %s  (%.4f, chunk %d/%d)",
			answer.Text, answer.Score, answer.ChunkIndex+1, answer.TotalChunks))
}

func (a *App) helpLine() string {
	switch a.mode {
	case modeArticle:
		return "enter: load article • ctrl+c: quit"
	case modeQuestion:
		return "enter: ask • esc: change article • ctrl+c: quit"
	default:
		return "ctrl+c: quit"
	}
}
