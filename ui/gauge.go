package ui

import (
	"fmt"
	"strings"
)

// gaugeBar returns the filled bar and the percentage label for a gauge
// of the given total width. The label takes the rightmost five cells.
func gaugeBar(width, percent int) (bar, label string) {
	percent = min(max(percent, 0), 100)
	label = fmt.Sprintf(" %3d%%", percent)
	barWidth := width - len(label)
	if barWidth <= 0 {
		return "", label
	}
	filled := barWidth * percent / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled), label
}
