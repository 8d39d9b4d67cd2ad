package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpersona/internal/identity"
)

// personaField is a labeled value that can be selected and copied.
type personaField struct {
	label    string
	value    string
	degraded bool
}

// viewState is everything the generate view renders. It is owned by
// generateModel and replaced wholesale when a new persona is generated.
type viewState struct {
	record   identity.Record
	fields   []personaField
	cursor   int
	flash    string
	flashErr bool
}

// generateModel displays a generated persona with copy actions.
type generateModel struct {
	state viewState
	copy  func(string) error
}

// regenerateMsg asks the root model for a new persona.
type regenerateMsg struct{}

// cycleGenderMsg asks the root model to switch the name filter.
type cycleGenderMsg struct{}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func newGenerateModel(rec identity.Record) generateModel {
	return generateModel{
		state: viewState{record: rec, fields: recordFields(rec)},
		copy:  copyToClipboard,
	}
}

func recordFields(rec identity.Record) []personaField {
	return []personaField{
		{"name", rec.DisplayName, rec.IsDegraded(identity.FieldName)},
		{"login", rec.Login, rec.IsDegraded(identity.FieldLogin)},
		{"cpf", rec.NationalID, false},
		{"phone", rec.PhoneFormatted, rec.IsDegraded(identity.FieldPhone)},
		{"phone raw", rec.PhoneRaw, rec.IsDegraded(identity.FieldPhone)},
	}
}

func (m generateModel) Init() tea.Cmd {
	return nil
}

func (m generateModel) Update(msg tea.Msg) (generateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.state.flash = ""
		m.state.flashErr = false
		return m, nil
	}

	return m, nil
}

func (m generateModel) handleKey(msg tea.KeyMsg) (generateModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.state.cursor > 0 {
			m.state.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.state.cursor < len(m.state.fields)-1 {
			m.state.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		f := m.state.fields[m.state.cursor]
		if err := m.copy(f.value); err != nil {
			return m.setFlash("copy: "+err.Error(), true), clearFlashAfter()
		}
		return m.setFlash(f.label+" copied!", false), clearFlashAfter()
	}

	switch msg.String() {
	case "c":
		if err := m.copy(allFieldsText(m.state.fields)); err != nil {
			return m.setFlash("copy: "+err.Error(), true), clearFlashAfter()
		}
		return m.setFlash("copied all!", false), clearFlashAfter()

	case "n", " ":
		return m, func() tea.Msg { return regenerateMsg{} }

	case "g":
		return m, func() tea.Msg { return cycleGenderMsg{} }
	}

	return m, nil
}

func (m generateModel) setFlash(msg string, isErr bool) generateModel {
	m.state.flash = msg
	m.state.flashErr = isErr
	return m
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func allFieldsText(fields []personaField) string {
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	return b.String()
}

func (m generateModel) View() string {
	return render(m.state)
}

// render draws the generate view from vs.
func render(vs viewState) string {
	accentStyle := lipgloss.NewStyle().Foreground(zstyle.ZburnAccent).Bold(true)

	title := zstyle.Title.Render("generated persona")
	gender := zstyle.MutedText.Render("gender ") + accentStyle.Render(vs.record.Gender.String())
	s := fmt.Sprintf("\n  %s  %s\n\n", title, gender)

	for i, f := range vs.fields {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-10s", f.label))
		value := f.value
		if f.degraded {
			value = zstyle.StatusWarn.Render(value) + " " + zstyle.MutedText.Render("(fallback)")
		}
		if i == vs.cursor {
			s += "  " + accentStyle.Render("▸") + " " + label + " " + value + "\n"
		} else {
			s += "    " + label + " " + value + "\n"
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	switch {
	case vs.flash == "":
		s += "\n"
	case vs.flashErr:
		s += "  " + zstyle.StatusErr.Render(vs.flash) + "\n"
	default:
		s += "  " + zstyle.StatusOK.Render(vs.flash) + "\n"
	}

	return s
}
