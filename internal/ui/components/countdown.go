package components

import (
	"fmt"
	"strings"
	"time"
)

// FormatHMS renders d as HH:MM:SS, truncating to whole seconds. Negative
// durations render as zero; hours keep growing past 99.
func FormatHMS(d time.Duration) string {
	s := int64(d / time.Second)
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

// ProgressBar draws a bar of width cells filled to percent.
func ProgressBar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	percent = max(0, min(100, percent))
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
