package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
)

// Series is one stress-strain curve to draw
type Series struct {
	Name   string
	Strain []float64
	Stress []float64
}

// ASCIICurve draws the stress of s against its sample index as a terminal
// chart. Samples are expected on an evenly spaced strain grid.
func ASCIICurve(s Series, width, height int) string {
	if len(s.Stress) == 0 {
		return ""
	}
	caption := s.Name
	if n := len(s.Strain); n > 1 {
		caption = fmt.Sprintf("%s  (ε %.4g → %.4g, σ in MPa)", s.Name, s.Strain[0], s.Strain[n-1])
	}
	return asciigraph.Plot(s.Stress,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to n runes
func pad(s string, n int) string {
	if k := n - utf8.RuneCountInString(s); k > 0 {
		return s + strings.Repeat(" ", k)
	}
	return s
}
