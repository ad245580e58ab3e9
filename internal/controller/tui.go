package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

// TUI implements UI for terminals. Per-bug outcomes are collected while a stage runs
// and shown as one results view when the stage closes; long views are paged with Bubble Tea.
type TUI struct {
	*SimpleUI

	mu       sync.Mutex
	outcomes []bugOutcome
}

// NewTUI creates a new TUI writing to cmd's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd, true)}
}

// Start resets the collected outcomes and prints the stage heading.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	t.mu.Lock()
	t.outcomes = nil
	t.mu.Unlock()

	return t.SimpleUI.Start(ctx, options...)
}

// DisplayStartingTask is silent; progress is reported by the results view.
func (t *TUI) DisplayStartingTask(context.Context, string) {}

// DisplayCompletedTask records the outcome of a bug.
func (t *TUI) DisplayCompletedTask(ctx context.Context, bug string, outcome string) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.outcomes = append(t.outcomes, bugOutcome{bug: bug, outcome: outcome})
}

// Close shows the results view of the stage and finalizes the UI.
func (t *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.mu.Lock()
	outcomes := t.outcomes
	t.outcomes = nil
	t.mu.Unlock()

	if len(outcomes) > 0 {
		if err := t.displayOutcomes(ctx, outcomes); err != nil {
			t.printf("results view failed: %v\n", err)
		}
	}

	t.SimpleUI.Close(ctx)
}

func (t *TUI) displayOutcomes(ctx context.Context, outcomes []bugOutcome) error {
	model := newOutcomesModel(t.stage, outcomes)

	output := t.cmd.OutOrStdout()
	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(output, model.View())
		return err
	}

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(output),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return err
	}

	// The alternate screen is gone once the program exits; leave the summary behind.
	model.quitting = true
	_, err := io.WriteString(output, model.View())

	return err
}

type bugOutcome struct {
	bug     string
	outcome string
}

// outcomesModel is the Bubble Tea model listing the outcome of every bug of a stage.
type outcomesModel struct {
	stage    string
	outcomes []bugOutcome
	tally    map[string]int
	height   int
	width    int
	offset   int
	quitting bool
}

func newOutcomesModel(stage string, outcomes []bugOutcome) outcomesModel {
	sorted := make([]bugOutcome, len(outcomes))
	copy(sorted, outcomes)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].bug < sorted[j].bug
	})

	tally := make(map[string]int)
	for _, o := range sorted {
		tally[o.outcome]++
	}

	return outcomesModel{stage: stage, outcomes: sorted, tally: tally}
}

func (om outcomesModel) Init() tea.Cmd {
	return nil
}

func (om outcomesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		om.height = msg.Height
		om.width = msg.Width
		om.offset = min(om.offset, om.maxOffset())

		return om, nil

	case tea.KeyMsg:
		return om.handleKeyPress(msg)
	}

	return om, nil
}

//nolint:exhaustive
func (om outcomesModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		om.quitting = true
		return om, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		om.quitting = true
		return om, tea.Quit
	case "down", "j":
		om.offset = min(om.offset+1, om.maxOffset())
	case "up", "k":
		om.offset = max(om.offset-1, 0)
	case "g", "home":
		om.offset = 0
	case "G", "end":
		om.offset = om.maxOffset()
	case "d", "pgdown":
		om.offset = min(om.offset+om.itemsPerPage(), om.maxOffset())
	case "u", "pgup":
		om.offset = max(om.offset-om.itemsPerPage(), 0)
	}

	return om, nil
}

// itemsPerPage is the number of bug rows fitting on screen.
func (om outcomesModel) itemsPerPage() int {
	if om.height == 0 {
		return 10
	}

	// Heading, tally and footer lines.
	reserved := 6 + len(om.tally)

	return max(om.height-reserved, 1)
}

func (om outcomesModel) maxOffset() int {
	return max(len(om.outcomes)-om.itemsPerPage(), 0)
}

func (om outcomesModel) needsPagination() bool {
	return om.height > 0 && len(om.outcomes) > om.itemsPerPage()
}

func (om outcomesModel) View() string {
	var b strings.Builder

	title := "Results"
	if om.stage != "" {
		title += " of " + om.stage
	}

	b.WriteString(headingStyle.Render(title) + "\n\n")

	if !om.quitting {
		om.renderRows(&b)
	}

	om.renderTally(&b)

	return b.String()
}

func (om outcomesModel) renderRows(b *strings.Builder) {
	start, end := 0, len(om.outcomes)

	paginated := om.needsPagination()
	if paginated {
		start = om.offset
		end = min(start+om.itemsPerPage(), len(om.outcomes))
	}

	for _, o := range om.outcomes[start:end] {
		style := badStyle
		if goodOutcomes[o.outcome] {
			style = goodStyle
		}

		fmt.Fprintf(b, "  %s %s\n", o.bug, style.Render(o.outcome))
	}

	b.WriteString("\n")

	if paginated {
		fmt.Fprintf(b, "  Showing %d-%d of %d | ↑/k ↓/j g G | q: quit\n\n", start+1, end, len(om.outcomes))
	}
}

func (om outcomesModel) renderTally(b *strings.Builder) {
	labels := make([]string, 0, len(om.tally))
	for label := range om.tally {
		labels = append(labels, label)
	}

	sort.Strings(labels)

	for _, label := range labels {
		fmt.Fprintf(b, "  %-20s %d\n", label, om.tally[label])
	}

	fmt.Fprintf(b, "  %-20s %d\n", "total", len(om.outcomes))
}
