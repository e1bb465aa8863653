package router

import (
	"regexp"
	"strings"
)

// Trigger phrases meaning the user is relaying something a named person said
// or did. These outrank every routing rule: "I talked to Sam about store
// 1234 being green" is an insight, not a visit search.
var insightPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bi\s+(?:talked\s+to|spoke\s+with|spoke\s+to|spent\s+time\s+with|met\s+with|was\s+with|ran\s+into|visited)\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)`),
	regexp.MustCompile(`(?i)\b(?:had\s+a\s+conversation\s+with|caught\s+up\s+with)\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)`),
	regexp.MustCompile(`(?i)\b([A-Za-z]+(?:\s+[A-Za-z]+)?)\s+(?:told\s+me|said\s+that|mentioned\s+that)\b`),
}

// Tokens the name capture routinely swallows that are never names.
var nonNameTokens = map[string]bool{
	"i": true, "he": true, "she": true, "they": true, "him": true,
	"her": true, "them": true, "it": true, "we": true, "you": true,
	"the": true, "a": true, "an": true, "my": true, "our": true,
	"his": true, "their": true, "someone": true, "somebody": true,
	"everyone": true, "nobody": true, "people": true, "who": true,
	"that": true, "this": true, "what": true, "manager": true,
	"store": true, "team": true, "associate": true, "guy": true,
	"and": true, "about": true, "today": true, "yesterday": true,
	"at": true, "in": true, "on": true, "from": true, "was": true,
	"is": true,
}

// DetectInsight reports whether the message is an associate-insight report
// and returns the candidate name with its original casing.
func DetectInsight(raw string) (string, bool) {
	for _, p := range insightPatterns {
		m := p.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if isPlausibleName(name) {
			return name, true
		}
		// A rejected two-word capture may still lead with a real name
		// ("Maria at the store told me ...").
		if first := strings.Fields(name); len(first) == 2 && isPlausibleName(first[0]) {
			return first[0], true
		}
	}
	return "", false
}

func isPlausibleName(candidate string) bool {
	words := strings.Fields(candidate)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if nonNameTokens[strings.ToLower(w)] {
			return false
		}
	}
	return true
}
