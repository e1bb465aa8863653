package router

import (
	"regexp"
	"strings"
)

var storeNumberPattern = regexp.MustCompile(`\b\d{4,5}\b`)

// message carries the lowered text and the signals every rule shares,
// extracted once per routing call.
type message struct {
	raw     string
	lower   string
	numbers []string
	rating  string
	status  string
}

func newMessage(raw string) *message {
	lower := strings.ToLower(raw)
	return &message{
		raw:     raw,
		lower:   lower,
		numbers: storeNumberPattern.FindAllString(raw, -1),
		rating:  extractRating(lower),
		status:  extractStatus(lower),
	}
}

func (m *message) contains(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(m.lower, s) {
			return true
		}
	}
	return false
}

func (m *message) firstNumber() string {
	if len(m.numbers) == 0 {
		return ""
	}
	return m.numbers[0]
}

func extractRating(lower string) string {
	switch {
	case strings.Contains(lower, "green"):
		return "Green"
	case strings.Contains(lower, "yellow"):
		return "Yellow"
	case strings.Contains(lower, "red"):
		return "Red"
	}
	return ""
}

// extractStatus maps status-ish phrasing to the canonical enum. "new"/"open"
// is ambiguous: market notes track 'new', everything else tracks 'open'.
func extractStatus(lower string) string {
	switch {
	case strings.Contains(lower, "in progress"), strings.Contains(lower, "in_progress"):
		return "in_progress"
	case strings.Contains(lower, "on hold"), strings.Contains(lower, "on_hold"):
		return "on_hold"
	case strings.Contains(lower, "completed"), strings.Contains(lower, "done"):
		return "completed"
	case strings.Contains(lower, "new"), strings.Contains(lower, "open"):
		if strings.Contains(lower, "market") {
			return "new"
		}
		return "open"
	}
	return ""
}
