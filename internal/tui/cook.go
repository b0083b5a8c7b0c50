package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kbenhamou/souschef/internal/cookflow"
	"github.com/kbenhamou/souschef/internal/domain"
	"github.com/kbenhamou/souschef/internal/logger"
	"github.com/kbenhamou/souschef/internal/scale"
	"github.com/kbenhamou/souschef/internal/timer"
)

// CookModel is the Bubble Tea model for a guided cooking session. It
// renders whatever stage the flow is in and owns the step countdown,
// which is cancelled whenever the cook navigates away from the step.
type CookModel struct {
	flow     *cookflow.Flow
	styles   Styles
	notifier domain.Notifier
	log      *logger.Logger

	width  int
	height int
	prog   progress.Model

	countdown   *timer.Countdown
	cancelTimer context.CancelFunc
	snap        timer.Snapshot
	hasTimer    bool

	quitting bool
}

// NewCookModel creates the wizard model for an open session.
func NewCookModel(flow *cookflow.Flow, styles Styles, notifier domain.Notifier, log *logger.Logger) CookModel {
	prog := progress.New(
		progress.WithSolidFill(styles.AccentHex),
		progress.WithoutPercentage(),
	)
	prog.Width = 30
	return CookModel{
		flow:     flow,
		styles:   styles,
		notifier: notifier,
		log:      log,
		prog:     prog,
	}
}

// RunCook drives a full cooking session in the terminal. Blocks until the
// cook finishes or bails out.
func RunCook(flow *cookflow.Flow, styles Styles, notifier domain.Notifier, log *logger.Logger) error {
	m := NewCookModel(flow, styles, notifier, log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Messages.
type timerMsg timer.Snapshot
type timerClosedMsg struct{}

func waitForTimer(ch <-chan timer.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return timerClosedMsg{}
		}
		return timerMsg(snap)
	}
}

func (m CookModel) Init() tea.Cmd {
	return nil
}

func (m CookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 6; w > 10 && w < 60 {
			m.prog.Width = w
		}
		return m, nil

	case timerMsg:
		m.snap = timer.Snapshot(msg)
		return m, waitForTimer(m.countdown.Updates())

	case timerClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m CookModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.stopCountdown()
		m.quitting = true
		return m, tea.Quit
	}

	switch m.flow.Stage {
	case cookflow.StageServings:
		return m.handleServingsKey(msg)
	case cookflow.StageIngredients:
		return m.handleIngredientsKey(msg)
	case cookflow.StageSteps:
		return m.handleStepKey(msg)
	case cookflow.StageDone:
		return m.handleDoneKey(msg)
	}
	return m, nil
}

func (m CookModel) handleServingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "+":
		m.flow.SelectServings(m.flow.SelectedServings + 1)
	case "down", "j", "-":
		m.flow.SelectServings(m.flow.SelectedServings - 1)
	case "enter", "n":
		m.flow.Next()
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m CookModel) handleIngredientsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "n":
		m.flow.Next()
	case "b", "esc":
		m.flow.Back()
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m CookModel) handleStepKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "n":
		m.stopCountdown()
		m.flow.Next()
		return m, nil
	case "b", "esc":
		m.stopCountdown()
		if m.flow.Back() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case "s":
		return m.startCountdown()
	case "x":
		m.stopCountdown()
		return m, nil
	case "q":
		m.stopCountdown()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m CookModel) handleDoneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.flow.Restart()
	case "q", "enter", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// startCountdown launches a countdown for the current step's duration.
// Steps without a duration have nothing to count.
func (m CookModel) startCountdown() (tea.Model, tea.Cmd) {
	step := m.flow.CurrentStep()
	if step == nil || step.Duration <= 0 {
		return m, nil
	}
	if m.hasTimer && m.countdown.State() == timer.StateRunning {
		return m, nil
	}

	d := time.Duration(step.Duration * float64(time.Minute))
	m.countdown = timer.New(step.Name, d, m.notifier, m.log)
	m.snap = timer.Snapshot{Label: step.Name, Remaining: d, State: timer.StateRunning}
	m.hasTimer = true

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelTimer = cancel
	m.countdown.Start(ctx)
	return m, waitForTimer(m.countdown.Updates())
}

func (m *CookModel) stopCountdown() {
	if m.cancelTimer != nil {
		m.cancelTimer()
		m.cancelTimer = nil
	}
	m.hasTimer = false
	m.snap = timer.Snapshot{}
}

func (m CookModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.flow.Stage {
	case cookflow.StageServings:
		return m.viewServings()
	case cookflow.StageIngredients:
		return m.viewIngredients()
	case cookflow.StageSteps:
		return m.viewStep()
	case cookflow.StageDone:
		return m.viewDone()
	}
	return ""
}

func (m CookModel) viewServings() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("  "+m.flow.Recipe.Title) + "\n\n")
	b.WriteString(m.styles.Primary.Render("  How many servings?") + "\n\n")

	sel := fmt.Sprintf("  %d  ", m.flow.SelectedServings)
	b.WriteString("  " + m.styles.Selected.Render(sel) + "\n\n")

	if m.flow.SelectedServings != m.flow.Recipe.Servings {
		note := fmt.Sprintf("  recipe is written for %d", m.flow.Recipe.Servings)
		b.WriteString(m.styles.Hint.Render(note) + "\n\n")
	}

	total := scale.TotalCookingTime(m.flow.Recipe)
	if total > 0 {
		b.WriteString(m.styles.Secondary.Render(fmt.Sprintf("  total cooking time: ~%s", formatMinutes(total))) + "\n\n")
	}

	b.WriteString(m.styles.Hint.Render("  ↑/↓ adjust · enter continue · q quit") + "\n")
	return b.String()
}

func (m CookModel) viewIngredients() string {
	var b strings.Builder
	header := fmt.Sprintf("  %s · %d servings", m.flow.Recipe.Title, m.flow.SelectedServings)
	b.WriteString(m.styles.Title.Render(header) + "\n\n")
	b.WriteString(m.styles.Header.Render("  You will need:") + "\n\n")

	for _, e := range m.flow.ShoppingList() {
		b.WriteString(m.styles.Primary.Render("  - "+scale.FormatEntry(e)) + "\n")
	}

	b.WriteString("\n" + m.styles.Hint.Render("  enter start cooking · b back · q quit") + "\n")
	return b.String()
}

func (m CookModel) viewStep() string {
	step := m.flow.CurrentStep()
	if step == nil {
		return ""
	}
	cur, total := m.flow.Progress()

	var b strings.Builder
	header := fmt.Sprintf("  Step %d/%d · %s", cur, total, step.Name)
	if step.Duration > 0 {
		header += fmt.Sprintf(" (~%s)", formatMinutes(step.Duration))
	}
	b.WriteString(m.styles.Title.Render(header) + "\n")
	b.WriteString("  " + m.prog.ViewAs(float64(cur)/float64(total)) + "\n\n")
	b.WriteString(m.styles.Primary.Render("  "+step.Description) + "\n")

	if ings := m.flow.StepIngredients(); len(ings) > 0 {
		b.WriteString("\n" + m.styles.Header.Render("  For this step:") + "\n")
		for _, ing := range ings {
			line := "  - " + ing.Name
			var q float64
			if ing.Quantity != nil {
				q = *ing.Quantity
			}
			if qty := scale.FormatQuantity(q, ing.Unit); qty != "" {
				line += " (" + qty + ")"
			}
			b.WriteString(m.styles.Secondary.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + m.renderTimer(step) + "\n")
	b.WriteString("\n" + m.styles.Hint.Render("  enter next · b back · s timer · x cancel timer · q quit") + "\n")
	return b.String()
}

func (m CookModel) renderTimer(step *domain.Step) string {
	if step.Duration <= 0 {
		return m.styles.Hint.Render("  no timer for this step")
	}
	if !m.hasTimer {
		return m.styles.Hint.Render(fmt.Sprintf("  timer ready: %s (press s to start)", formatMinutes(step.Duration)))
	}
	if m.snap.State == timer.StateFinished {
		return m.styles.TimerDone.Render("  ⏰ TIME'S UP")
	}
	return m.styles.Timer.Render("  ⏱ " + timer.FormatRemaining(m.snap.Remaining))
}

func (m CookModel) viewDone() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("  Done!") + "\n\n")
	b.WriteString(m.styles.Primary.Render(fmt.Sprintf("  %s is ready. Enjoy your meal.", m.flow.Recipe.Title)) + "\n\n")
	b.WriteString(m.styles.Hint.Render("  r cook again · q quit") + "\n")
	return b.String()
}

func formatMinutes(mins float64) string {
	d := time.Duration(mins * float64(time.Minute))
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		mm := int(d.Minutes())
		ss := int(d.Seconds()) % 60
		if ss == 0 {
			return fmt.Sprintf("%dm", mm)
		}
		return fmt.Sprintf("%dm%ds", mm, ss)
	}
	h := int(d.Hours())
	mm := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, mm)
}
