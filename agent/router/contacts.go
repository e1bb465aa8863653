package router

import (
	"regexp"
	"strings"
)

// Contact question patterns, most specific first. Each captures the subject
// term to search contacts with.
var contactPatterns = []*regexp.Regexp{
	regexp.MustCompile(`who\s+(?:has|handles?|oversees?|owns?|manages?|works?\s+on|is\s+over|is\s+responsible\s+for|covers?|runs?|leads?)\s+(.+?)(?:\?|$)`),
	regexp.MustCompile(`(?:contact|person|guy|point\s+of\s+contact|poc)\s+for\s+(.+?)(?:\?|$)`),
	regexp.MustCompile(`who\s+(?:do\s+i|should\s+i|can\s+i|to)\s+(?:call|contact|reach|talk\s+to|speak\s+with|ask)\s+(?:for|about|regarding|on)?\s*(.+?)(?:\?|$)`),
	regexp.MustCompile(`who\s+(?:can\s+help\s+with|knows\s+about|deals\s+with|works\s+with)\s+(.+?)(?:\?|$)`),
	regexp.MustCompile(`who\s+is\s+(?:over\s+|the\s+)?(.+?)(?:\s+person|\s+guy|\s+contact|\s+lead)?(?:\?|$)`),
	regexp.MustCompile(`(.+?)\s+(?:contact|person|guy|lead|manager)(?:\?|$)`),
	regexp.MustCompile(`(?:get|find|show)\s+(?:me\s+)?(?:the\s+)?(.+?)\s+(?:contact|person|info)(?:\?|$)`),
}

// Generic extraction used when no contact pattern captured a term.
var contactFallbackPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:about|for|with|regarding|on)\s+["']?([^"'?]+)["']?`),
	regexp.MustCompile(`(?:named?|called)\s+["']?([^"'?]+)["']?`),
	regexp.MustCompile(`(?:in|from|handles?|oversees?|over|runs?)\s+["']?([^"'?]+)["']?`),
}

// A trailing store number ("meat at 2508") is location context, not part
// of the subject being searched.
var atStoreSuffix = regexp.MustCompile(`\s+at\s+(?:store\s+)?\d{4,5}$`)

var (
	trailingNoise = map[string]bool{
		"department": true, "dept": true, "area": true, "section": true,
		"team": true, "the": true, "a": true, "an": true,
	}
	leadingNoise = map[string]bool{
		"the": true, "a": true, "an": true, "our": true, "my": true,
	}
)

func matchContactTerm(lower string) (string, bool) {
	for _, p := range contactPatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			return strings.TrimRight(strings.TrimSpace(m[1]), "?.,!"), true
		}
	}
	return "", false
}

// extractContactTerm peels the subject out of a contact-style question and
// strips the stop words that routinely wrap it.
func extractContactTerm(lower string) string {
	term, ok := matchContactTerm(lower)
	if !ok {
		for _, p := range contactFallbackPatterns {
			if m := p.FindStringSubmatch(lower); m != nil {
				term = strings.TrimSpace(m[1])
				break
			}
		}
	}
	if term == "" {
		return ""
	}
	term = atStoreSuffix.ReplaceAllString(term, "")

	words := strings.Fields(term)
	for len(words) > 0 && trailingNoise[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	for len(words) > 0 && leadingNoise[words[0]] {
		words = words[1:]
	}
	if len(words) == 0 {
		return term
	}
	return strings.Join(words, " ")
}
