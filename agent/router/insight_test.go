package router

import "testing"

func TestDetectInsight(t *testing.T) {
	t.Parallel()

	cases := []struct {
		message string
		name    string
	}{
		{"I talked to Sam about store 1234 being green", "Sam"},
		{"I spoke with Maria Gonzalez today", "Maria Gonzalez"},
		{"I met with Darnell at 2508", "Darnell"},
		{"Had a conversation with Priya about freight", "Priya"},
		{"caught up with Jordan yesterday", "Jordan"},
		{"Maria said that the cooler is down again", "Maria"},
		{"Chris told me OGP is behind on picks", "Chris"},
		{"Dana mentioned that staffing is thin", "Dana"},
		{"I ran into Luis at the front end", "Luis"},
	}
	for _, tc := range cases {
		name, ok := DetectInsight(tc.message)
		if !ok {
			t.Fatalf("DetectInsight(%q) = not detected, want %q", tc.message, tc.name)
		}
		if name != tc.name {
			t.Fatalf("DetectInsight(%q) name = %q, want %q", tc.message, name, tc.name)
		}
	}
}

func TestDetectInsightRejectsNonNames(t *testing.T) {
	t.Parallel()

	for _, message := range []string{
		"they told me the truck was late",
		"someone mentioned that the mods are behind",
		"show me store 1234's last visit",
		"who has meat at 2508",
		"mark gold star 2 complete for store 4455",
	} {
		if name, ok := DetectInsight(message); ok {
			t.Fatalf("DetectInsight(%q) = %q, want no detection", message, name)
		}
	}
}
