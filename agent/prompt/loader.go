package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/system.txt
	systemRaw string

	//go:embed template/style.txt
	styleRaw string
)

// Set holds loaded prompt content.
type Set struct {
	// System is the delegated agent's instruction prompt.
	System string
	// Style is the formatting guide embedded in LLM formatting prompts.
	Style string
}

// Load returns the trimmed prompt set. Safe to call concurrently; the embed
// is compile-time.
func Load() Set {
	return Set{
		System: strings.TrimSpace(systemRaw),
		Style:  strings.TrimSpace(styleRaw),
	}
}
