package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StageResult captures the outcome of a single stress stage.
type StageResult struct {
	Stage        string        `json:"stage"`
	Workers      int           `json:"workers"`
	Iterations   int           `json:"iterations"`
	Observed     int64         `json:"observed_ops"`
	Expected     int64         `json:"expected_ops"`
	Duration     time.Duration `json:"duration_ns"`
	OpsPerSecond float64       `json:"ops_per_second"`
	Passed       bool          `json:"passed"`
	Error        string        `json:"error,omitempty"`
}

// Report aggregates all stage results of one scenario run.
type Report struct {
	Scenario  string        `json:"scenario"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Results   []StageResult `json:"results"`
}

// Passed reports whether every stage passed.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

func newStageResult(stage string, sc Scenario, start time.Time, observed, expected int64, err error) StageResult {
	duration := time.Since(start)
	res := StageResult{
		Stage:      stage,
		Workers:    sc.Workers,
		Iterations: sc.Iterations,
		Observed:   observed,
		Expected:   expected,
		Duration:   duration,
		Passed:     err == nil && observed == expected,
	}
	if duration > 0 {
		res.OpsPerSecond = float64(observed) / duration.Seconds()
	}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}

// writeJSONReport persists the report for offline comparison between runs.
func writeJSONReport(report Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	passStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("42"))

	failStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
)

// renderReport produces the styled terminal summary.
func renderReport(report Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("obstress — scenario %q", report.Scenario)))
	b.WriteString("\n")

	for _, res := range report.Results {
		verdict := passStyle.Render("PASS")
		if !res.Passed {
			verdict = failStyle.Render("FAIL")
		}
		b.WriteString(fmt.Sprintf("%s  %-6s %d workers × %d iterations\n",
			verdict, res.Stage, res.Workers, res.Iterations))
		b.WriteString(dimStyle.Render(fmt.Sprintf(
			"      ops %d/%d in %v (%.0f ops/s)",
			res.Observed, res.Expected, res.Duration.Round(time.Millisecond), res.OpsPerSecond)))
		b.WriteString("\n")
		if res.Error != "" {
			b.WriteString(failStyle.Render("      " + res.Error))
			b.WriteString("\n")
		}
	}

	total := report.EndTime.Sub(report.StartTime).Round(time.Millisecond)
	b.WriteString(dimStyle.Render(fmt.Sprintf("total %v", total)))
	return b.String()
}
