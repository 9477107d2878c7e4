// Package display provides the bar terminal UI using Bubble Tea.
//
// The [UI] type renders the recipe menu, the quantity selector, and a
// live pump status bar at the bottom of the terminal. All application
// output is printed above the rendered area via Program.Printf, so
// reporter messages never garble the menu.
package display

import (
	"context"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/ottobar/internal/actuator"
	"github.com/hammamikhairi/ottobar/internal/domain"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg         = lipgloss.NewStyle().Background(lipgloss.Color("#27272a")).Foreground(lipgloss.Color("#a1a1aa"))
	pumpOnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#bbf7d0")).Bold(true)
	pumpOffStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#52525b"))
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fde68a"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#d4d4d8")).Bold(true)
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#a1a1aa"))
	qtyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#bae6fd")).Bold(true)
	phaseStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#fde68a"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#fca5a5"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#71717a"))

	// BannerStyle is the muted slate used for the startup banner.
	BannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
)

// ── Dependencies ─────────────────────────────────────────────────

// Orderer runs a dispense job to completion.
type Orderer interface {
	PlaceOrder(ctx context.Context, recipeName string, quantity int) (*domain.Job, error)
}

// PumpStates reports what every pump line is doing right now.
type PumpStates interface {
	States() []actuator.State
}

// Deps are the collaborators the UI reads from and orders through.
type Deps struct {
	Orderer Orderer
	Pumps   PumpStates
	Store   domain.JobStore
	Recipes []domain.RecipeSummary
}

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Other goroutines may safely
// call [UI.Printf] at any time.
type UI struct {
	deps    Deps
	program *tea.Program
	done    atomic.Bool
}

// NewUI creates the display. Call Run() to start.
func NewUI(deps Deps) *UI {
	return &UI{deps: deps}
}

// Printf prints formatted text above the menu on its own line. Thread-safe.
func (u *UI) Printf(format string, a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format+"\n", a...)
	}
}

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run(ctx context.Context) error {
	u.program = tea.NewProgram(newModel(ctx, u.deps), tea.WithContext(ctx))
	_, err := u.program.Run()
	u.done.Store(true)
	return err
}

// OrderFunc adapts a plain function to the Orderer interface.
type OrderFunc func(ctx context.Context, recipeName string, quantity int) (*domain.Job, error)

// PlaceOrder calls f.
func (f OrderFunc) PlaceOrder(ctx context.Context, recipeName string, quantity int) (*domain.Job, error) {
	return f(ctx, recipeName, quantity)
}
