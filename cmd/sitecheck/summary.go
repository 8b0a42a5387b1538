package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderSummary formats one line per result followed by a totals line.
func renderSummary(results []result) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Sitecheck Summary"))
	b.WriteString("\n=================\n")

	for _, r := range results {
		status := passStyle.Render("PASS")
		if r.Err != nil {
			status = failStyle.Render("FAIL")
		}
		fmt.Fprintf(&b, "%s  %-13s #%-3d %s\n",
			status, r.Check, r.Iteration, dimStyle.Render(r.Duration.Round(time.Millisecond).String()))
		if r.Err != nil {
			fmt.Fprintf(&b, "      %s\n", r.Err)
		}
	}

	failed := countFailed(results)
	fmt.Fprintf(&b, "\nChecks: %d  Passed: %d  Failed: %d\n", len(results), len(results)-failed, failed)
	if failed == 0 {
		b.WriteString("Status: " + passStyle.Render("PASS") + "\n")
	} else {
		b.WriteString("Status: " + failStyle.Render("FAIL") + "\n")
	}
	return b.String()
}
