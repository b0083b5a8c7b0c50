package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kbenhamou/souschef/internal/appearance"
	"github.com/kbenhamou/souschef/internal/domain"
	"github.com/kbenhamou/souschef/internal/theme"
)

// AccentModel is the interactive accent picker: a cursor over the
// Catppuccin accents with a live swatch per entry. Confirming persists
// the choice and switches to catppuccin mode.
type AccentModel struct {
	store  *appearance.Store
	styles Styles
	dark   bool

	options []theme.AccentOption
	cursor  int
	saved   bool
	errMsg  string
}

// NewAccentModel creates the picker with the cursor on the current accent.
func NewAccentModel(store *appearance.Store, current string, styles Styles, dark bool) AccentModel {
	m := AccentModel{
		store:   store,
		styles:  styles,
		dark:    dark,
		options: theme.AccentOptions(),
	}
	for i, opt := range m.options {
		if opt.Value == current {
			m.cursor = i
			break
		}
	}
	return m
}

// RunAccentPicker opens the accent picker. Blocks until the user confirms
// or bails out.
func RunAccentPicker(store *appearance.Store, current string, styles Styles, dark bool) error {
	p := tea.NewProgram(NewAccentModel(store, current, styles, dark))
	_, err := p.Run()
	return err
}

func (m AccentModel) Init() tea.Cmd {
	return nil
}

func (m AccentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		if _, err := m.store.SetAccent(context.Background(), m.options[m.cursor].Value); err != nil {
			m.errMsg = fmt.Sprintf("could not save: %v", err)
			return m, nil
		}
		m.saved = true
		return m, tea.Quit
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m AccentModel) View() string {
	if m.saved {
		return m.styles.Primary.Render("accent set to "+m.options[m.cursor].Value) + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("  Pick an accent") + "\n\n")

	for i, opt := range m.options {
		c := theme.Resolve(domain.AppearanceSettings{
			ThemeMode:        domain.ThemeCatppuccin,
			CatppuccinAccent: opt.Value,
		}, m.dark, nil)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Primary)).Render("   ")

		if i == m.cursor {
			b.WriteString("  " + swatch + " " + m.styles.Selected.Render(" "+opt.Name+" ") + "\n")
		} else {
			b.WriteString("  " + swatch + " " + m.styles.Primary.Render(" "+opt.Name) + "\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + m.styles.Urgent.Render("  "+m.errMsg) + "\n")
	}
	b.WriteString("\n" + m.styles.Hint.Render("  ↑/↓ move · enter choose · q cancel") + "\n")
	return b.String()
}
