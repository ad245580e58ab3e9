package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Outcome labels rendered in green; everything else is rendered in red.
var goodOutcomes = map[string]bool{
	string(m.StatusPrompted):  true,
	string(m.StatusGenerated): true,
	string(m.StatusEvaluated): true,
	string(m.StageTested):     true,
	"plausible":               true,
	"exact_match":             true,
}

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
	stage  string
}

// NewSimpleUI creates a new SimpleUI. Styling is applied only when styled is set.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// Start prints the stage heading.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := StartConfig{}
	for _, option := range options {
		option(&config)
	}

	s.stage = config.stage
	if s.stage != "" {
		s.printf("%s\n", s.style(headingStyle, "== "+s.stage+" =="))
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	if s.stage != "" {
		s.printf("%s done\n", s.stage)
	}
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, threads int, tasks int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Running %d task(s) with %d worker(s)\n", tasks, threads)
}

// DisplayStartingTask shows that work on a bug started.
func (s *SimpleUI) DisplayStartingTask(ctx context.Context, bug string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Starting %s\n", bug)
}

// DisplayCompletedTask shows the outcome of a bug.
func (s *SimpleUI) DisplayCompletedTask(ctx context.Context, bug string, outcome string) {
	if err := ctx.Err(); err != nil {
		return
	}

	style := badStyle
	if goodOutcomes[outcome] {
		style = goodStyle
	}

	s.printf("Completed %s -> %s\n", bug, s.style(style, outcome))
}

// DisplayStatistics renders the statistics table.
func (s *SimpleUI) DisplayStatistics(ctx context.Context, stats m.Statistics) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	title := "Statistics"
	if stats.Benchmark != "" {
		title += " " + stats.Benchmark
	}

	if stats.PromptStrategy != "" {
		title += " (" + stats.PromptStrategy + ")"
	}

	s.printf("\n%s\n%s", s.style(headingStyle, title), renderStatisticsTable(stats))

	return nil
}

func renderStatisticsTable(stats m.Statistics) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	rows := [][]string{
		{"Bugs", fmt.Sprintf("%d", stats.NumBugs)},
		{"With prompt", fmt.Sprintf("%d", stats.NumBugsWithPrompt)},
		{"With generation", fmt.Sprintf("%d", stats.NumBugsWithGeneration)},
		{"Exact match", fmt.Sprintf("%d", stats.NumBugsWithExactMatch)},
		{"AST match", fmt.Sprintf("%d", stats.NumBugsWithASTMatch)},
		{"Compilable", fmt.Sprintf("%d", stats.NumBugsCompilable)},
		{"Plausible", fmt.Sprintf("%d", stats.NumBugsPlausible)},
	}

	table.AppendBulk(rows)

	keys := make([]string, 0, len(stats.PassAtK))
	for key := range stats.PassAtK {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}

		return keys[i] < keys[j]
	})

	for _, key := range keys {
		table.Append([]string{key, fmt.Sprintf("%.4f", stats.PassAtK[key])})
	}

	table.SetFooter([]string{"Candidates", fmt.Sprintf("%d", stats.NumCandidates)})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) style(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
