package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/kbenhamou/souschef/internal/domain"
	"github.com/kbenhamou/souschef/internal/logger"
	"github.com/kbenhamou/souschef/internal/recipes"
	"github.com/kbenhamou/souschef/internal/scale"
)

// BrowseModel is the interactive catalog: a cursor over the stored
// recipes with a detail pane and in-place favorite toggling.
type BrowseModel struct {
	repo   *recipes.Repository
	styles Styles
	log    *logger.Logger

	items  []domain.Recipe
	cursor int
	detail bool
	errMsg string
}

// NewBrowseModel creates the catalog browser over the given recipes.
func NewBrowseModel(repo *recipes.Repository, items []domain.Recipe, styles Styles, log *logger.Logger) BrowseModel {
	return BrowseModel{repo: repo, items: items, styles: styles, log: log}
}

// RunBrowse opens the catalog browser. Blocks until the user quits.
func RunBrowse(repo *recipes.Repository, items []domain.Recipe, styles Styles, log *logger.Logger) error {
	p := tea.NewProgram(NewBrowseModel(repo, items, styles, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.detail {
		switch key.String() {
		case "esc", "b", "enter":
			m.detail = false
		case "f":
			m.toggleFavorite()
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.items) > 0 {
			m.detail = true
		}
	case "f":
		m.toggleFavorite()
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m *BrowseModel) toggleFavorite() {
	if len(m.items) == 0 {
		return
	}
	r := &m.items[m.cursor]
	on, err := m.repo.ToggleFavorite(context.Background(), r.ID)
	if err != nil {
		m.errMsg = fmt.Sprintf("could not update favorite: %v", err)
		m.log.Error("browse: toggle favorite %s: %v", r.ID, err)
		return
	}
	m.errMsg = ""
	r.IsFavorite = on
}

func (m BrowseModel) View() string {
	if m.detail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m BrowseModel) viewList() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("  Recipes") + "\n\n")

	if len(m.items) == 0 {
		b.WriteString(m.styles.Hint.Render("  Nothing here yet. Add one with 'souschef add'.") + "\n")
		return b.String()
	}

	for i, r := range m.items {
		line := r.Title
		if r.IsFavorite {
			line += " ♥"
		}
		if i == m.cursor {
			b.WriteString("  " + m.styles.Selected.Render(" "+line+" ") + "\n")
			meta := fmt.Sprintf("    %s · %d servings · updated %s", r.Category, r.Servings, humanize.Time(r.UpdatedAt))
			b.WriteString(m.styles.Hint.Render(meta) + "\n")
		} else {
			b.WriteString(m.styles.Primary.Render("   "+line) + "\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + m.styles.Urgent.Render("  "+m.errMsg) + "\n")
	}
	b.WriteString("\n" + m.styles.Hint.Render("  ↑/↓ move · enter details · f favorite · q quit") + "\n")
	return b.String()
}

func (m BrowseModel) viewDetail() string {
	r := &m.items[m.cursor]

	var b strings.Builder
	title := r.Title
	if r.IsFavorite {
		title += " ♥"
	}
	b.WriteString(m.styles.Title.Render("  "+title) + "\n")
	if r.Description != "" {
		b.WriteString(m.styles.Primary.Render("  "+r.Description) + "\n")
	}
	meta := fmt.Sprintf("  %s · %d servings · ~%.0f min total", r.Category, r.Servings, scale.TotalCookingTime(r))
	b.WriteString(m.styles.Secondary.Render(meta) + "\n\n")

	b.WriteString(m.styles.Header.Render("  Ingredients:") + "\n")
	for _, e := range scale.Consolidate(r.Steps) {
		b.WriteString(m.styles.Primary.Render("    - "+scale.FormatEntry(e)) + "\n")
	}

	b.WriteString("\n" + m.styles.Header.Render("  Steps:") + "\n")
	for _, s := range r.Steps {
		head := fmt.Sprintf("    %d. %s", s.Order, s.Name)
		if s.Duration > 0 {
			head += fmt.Sprintf(" (~%.0f min)", s.Duration)
		}
		b.WriteString(m.styles.Primary.Render(head) + "\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + m.styles.Urgent.Render("  "+m.errMsg) + "\n")
	}
	b.WriteString("\n" + m.styles.Hint.Render("  esc back · f favorite · q quit") + "\n")
	return b.String()
}
