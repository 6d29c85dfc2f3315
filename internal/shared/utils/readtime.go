package utils

import (
	"fmt"
	"math"
)

const (
	charsPerWord   = 5
	wordsPerMinute = 180
)

// ReadTime estimates reading time from a character count. Under one minute
// the estimate is rendered in seconds, otherwise in minutes rounded to the
// nearest integer. The branch is taken on the rounded seconds so an
// estimate that displays as 60 seconds promotes to "1 min read" instead.
func ReadTime(charCount int) string {
	if charCount < 0 {
		charCount = 0
	}

	minutes := float64(charCount) / charsPerWord / wordsPerMinute
	seconds := int(math.Round(minutes * 60))
	if seconds < 60 {
		return fmt.Sprintf("%d sec read", seconds)
	}

	return fmt.Sprintf("%d min read", int(math.Round(minutes)))
}
