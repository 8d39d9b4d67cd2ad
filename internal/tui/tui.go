// Package tui implements the root Bubble Tea model for zpersona.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpersona/internal/identity"
	"github.com/zarlcorp/zpersona/internal/refdata"
)

// Generator produces personas. *identity.Generator implements it.
type Generator interface {
	Generate(ctx context.Context, gender refdata.Gender) identity.Record
}

// Model is the root TUI model.
type Model struct {
	version  string
	gen      Generator
	gender   refdata.Gender
	generate generateModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root model and generates the first persona.
func New(version string, gen Generator, gender refdata.Gender) Model {
	m := Model{
		version: version,
		gen:     gen,
		gender:  gender,
	}
	m.generate = newGenerateModel(gen.Generate(context.Background(), gender))
	return m
}

func (m Model) Init() tea.Cmd {
	return m.generate.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case regenerateMsg:
		return m.regenerate(), nil

	case cycleGenderMsg:
		m.gender = m.gender.Next()
		return m.regenerate(), nil
	}

	var cmd tea.Cmd
	m.generate, cmd = m.generate.Update(msg)
	return m, cmd
}

// regenerate replaces the view state with a fresh persona, keeping the
// cursor position and clipboard hook.
func (m Model) regenerate() Model {
	prev := m.generate
	next := newGenerateModel(m.gen.Generate(context.Background(), m.gender))
	next.state.cursor = prev.state.cursor
	next.copy = prev.copy
	m.generate = next
	return m
}

func (m Model) View() string {
	header := zstyle.RenderHeader("zpersona", "Generate Persona", zstyle.ZburnAccent) +
		" " + zstyle.MutedText.Render(m.version)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpPairs())

	return "\n" + header + "\n" + sep + "\n" + m.generate.View() + "\n" + footer + "\n"
}

// helpPairs returns keybinding pairs for the footer.
func helpPairs() []zstyle.HelpPair {
	return []zstyle.HelpPair{
		{Key: "j/k", Desc: "navigate"},
		{Key: "enter", Desc: "copy field"},
		{Key: "c", Desc: "copy all"},
		{Key: "n", Desc: "new"},
		{Key: "g", Desc: "gender"},
		{Key: "q", Desc: "quit"},
	}
}
