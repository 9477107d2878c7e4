package display

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/ottobar/internal/actuator"
	"github.com/hammamikhairi/ottobar/internal/domain"
	"github.com/hammamikhairi/ottobar/internal/timer"
)

// Quantity bounds of the selector.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

const refreshInterval = 200 * time.Millisecond

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	ctx  context.Context
	deps Deps

	cursor   int
	quantity int
	busy     bool
	pouring  string
	spinner  spinner.Model

	pumps []actuator.State
	job   *domain.Job // active job snapshot from the store
	now   func() time.Time
	width int
}

// Messages.
type (
	tickMsg      time.Time
	orderDoneMsg struct {
		job *domain.Job
		err error
	}
)

func newModel(ctx context.Context, deps Deps) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = phaseStyle

	m := model{
		ctx:      ctx,
		deps:     deps,
		quantity: MinQuantity,
		spinner:  sp,
		now:      time.Now,
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		tea.SetWindowTitle("ottobar"),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// orderCmd runs the blocking order off the event loop.
func (m model) orderCmd(name string, qty int) tea.Cmd {
	ctx, orderer := m.ctx, m.deps.Orderer
	return func() tea.Msg {
		job, err := orderer.PlaceOrder(ctx, name, qty)
		return orderDoneMsg{job: job, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tickCmd()

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case orderDoneMsg:
		m.busy = false
		m.pouring = ""
		m.refresh()
		if msg.err != nil && !reported(msg.err) {
			return m, tea.Println(errorStyle.Render("  " + msg.err.Error()))
		}
		return m, nil
	}
	return m, nil
}

// reported tells whether the engine already surfaced err through the
// reporter. Hardware faults are; rejections before start are not.
func reported(err error) bool {
	return errors.Is(err, domain.ErrHardwareIO) || errors.Is(err, domain.ErrInvalidActuatorIndex)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		if !m.busy {
			return m, tea.Quit
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.deps.Recipes)-1 {
			m.cursor++
		}
	case "left", "h", "-":
		if m.quantity > MinQuantity {
			m.quantity--
		}
	case "right", "l", "+", "=":
		if m.quantity < MaxQuantity {
			m.quantity++
		}
	case "enter", " ":
		if m.busy || len(m.deps.Recipes) == 0 {
			return m, nil
		}
		name := m.deps.Recipes[m.cursor].Name
		m.busy = true
		m.pouring = fmt.Sprintf("%s x%d", name, m.quantity)
		return m, tea.Batch(m.spinner.Tick, m.orderCmd(name, m.quantity))
	}
	return m, nil
}

// refresh pulls pump states and the active job snapshot.
func (m *model) refresh() {
	if m.deps.Pumps != nil {
		m.pumps = m.deps.Pumps.States()
	}
	m.job = nil
	if m.deps.Store == nil {
		return
	}
	jobs, err := m.deps.Store.ListActive(m.ctx)
	if err != nil || len(jobs) == 0 {
		return
	}
	m.job = jobs[0]
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Menu"))
	b.WriteByte('\n')
	if len(m.deps.Recipes) == 0 {
		b.WriteString(hintStyle.Render("  no recipes loaded"))
		b.WriteByte('\n')
	}
	for i, r := range m.deps.Recipes {
		line := fmt.Sprintf("%-24s %2d ingredients  %5.0f ml", r.Name, r.Ingredients, r.TotalML)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> ") + selectedStyle.Render(line))
		} else {
			b.WriteString("  " + itemStyle.Render(line))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	fmt.Fprintf(&b, "Quantity: %s %s %s",
		hintStyle.Render("◂"), qtyStyle.Render(fmt.Sprintf("%2d", m.quantity)), hintStyle.Render("▸"))
	b.WriteByte('\n')

	b.WriteString(m.renderStatus())
	b.WriteByte('\n')
	b.WriteString(m.renderBar())
	b.WriteByte('\n')
	b.WriteString(hintStyle.Render("↑/↓ select  ←/→ quantity  enter pour  q quit"))
	return b.String()
}

func (m model) renderStatus() string {
	if !m.busy {
		return hintStyle.Render("Ready")
	}
	status := m.spinner.View() + " Pouring " + m.pouring
	if m.job != nil && m.job.State == domain.JobRunning {
		status += phaseStyle.Render(fmt.Sprintf("  %s, %s left",
			m.job.Phase, timer.FormatRemaining(m.job.Remaining(m.now()))))
	}
	return status
}

func (m model) renderBar() string {
	parts := make([]string, len(m.pumps))
	for i, s := range m.pumps {
		label := strconv.Itoa(i)
		if s == actuator.On {
			parts[i] = pumpOnStyle.Render(label + "●")
		} else {
			parts[i] = pumpOffStyle.Render(label + "○")
		}
	}

	w := m.width
	if w <= 0 {
		w = 80
	}
	return barBg.Width(w).Render(" pumps " + strings.Join(parts, " "))
}
