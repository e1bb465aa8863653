package router

import (
	"testing"

	"github.com/jaxfield/assistant/agent/contract"
)

func TestExtractRatingFirstMatchWins(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"show me green stores":          "Green",
		"any red visits lately":         "Red",
		"yellow or red this week":       "Yellow",
		"green stores that went yellow": "Green",
		"how are my stores":             "",
	}
	for lower, want := range cases {
		if got := extractRating(lower); got != want {
			t.Fatalf("extractRating(%q) = %q, want %q", lower, got, want)
		}
	}
}

func TestExtractStatusMarketAware(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"tasks in progress":        "in_progress",
		"anything on hold":         "on_hold",
		"completed items":          "completed",
		"what's done":              "completed",
		"open issues":              "open",
		"new market notes":         "new",
		"show me everything":       "",
		"open market note backlog": "new",
	}
	for lower, want := range cases {
		if got := extractStatus(lower); got != want {
			t.Fatalf("extractStatus(%q) = %q, want %q", lower, got, want)
		}
	}
}

func TestStoreNumberExtraction(t *testing.T) {
	t.Parallel()

	m := newMessage("compare 1234 and 56789 but not 123 or 123456")
	if len(m.numbers) != 2 || m.numbers[0] != "1234" || m.numbers[1] != "56789" {
		t.Fatalf("numbers = %v, want [1234 56789]", m.numbers)
	}
}

// Route must always land on a registry tool name, whatever the input.
func TestRouteTotality(t *testing.T) {
	t.Parallel()

	known := map[contract.ToolName]bool{
		contract.ToolSearchVisits: true, contract.ToolGetVisitDetails: true,
		contract.ToolAnalyzeTrends: true, contract.ToolCompareStores: true,
		contract.ToolSearchNotes: true, contract.ToolGetMarketInsights: true,
		contract.ToolGetMarketNoteStatus: true, contract.ToolGetMarketNoteUpdates: true,
		contract.ToolGetChampions: true, contract.ToolGetMentees: true,
		contract.ToolGetContacts: true, contract.ToolGetGoldStars: true,
		contract.ToolGetEnablers: true, contract.ToolGetIssues: true,
		contract.ToolGetTasks: true, contract.ToolGetUserNotes: true,
		contract.ToolGetSummaryStats: true, contract.ToolGetStoreInformation: true,
		contract.ToolGetAssociateInsights: true,
		contract.ToolMarkGoldStarComplete: true, contract.ToolSaveGoldStarNotes: true,
		contract.ToolCreateContact: true, contract.ToolDeleteContact: true,
		contract.ToolCreateTask: true, contract.ToolUpdateTaskStatus: true,
		contract.ToolDeleteTask: true, contract.ToolUpdateMarketNoteStatus: true,
		contract.ToolAssignMarketNote: true, contract.ToolAddMarketNoteComment: true,
		contract.ToolCreateChampion: true, contract.ToolDeleteChampion: true,
		contract.ToolCreateMentee: true, contract.ToolDeleteMentee: true,
		contract.ToolMarkEnablerComplete: true, contract.ToolCreateEnabler: true,
		contract.ToolCreateIssue: true, contract.ToolLogAssociateInsight: true,
	}

	messages := []string{
		"",
		"?",
		"who has meat at 2508",
		"asdf qwerty",
		"create add delete remove mark",
		"note gold star enabler task contact mentee champion market",
		"search",
		"find 9999",
		"compare",
		"update",
		"store 12345 12 1 done",
		"🙂",
	}
	for _, message := range messages {
		d := Route(message)
		if !known[d.Tool] {
			t.Fatalf("Route(%q) = %s, not a registry tool", message, d.Tool)
		}
	}
}

func TestRouteMeatAtStoreScenario(t *testing.T) {
	t.Parallel()

	for _, message := range []string{
		"who has meat at 2508",
		"who has meat at store 2508",
	} {
		d := Route(message)
		if d.Tool != contract.ToolGetContacts {
			t.Fatalf("Route(%q) tool = %s, want %s", message, d.Tool, contract.ToolGetContacts)
		}
		if term, _ := d.Args.String("search_term"); term != "meat" {
			t.Fatalf("Route(%q) search_term = %q, want %q", message, term, "meat")
		}
	}
}
