package dispatch

import (
	"strings"
	"testing"

	"github.com/jaxfield/assistant/agent/contract"
)

func render(t *testing.T, name contract.ToolName, result contract.ToolResult) string {
	t.Helper()
	text, err := renderTemplate(name, result)
	if err != nil {
		t.Fatalf("renderTemplate(%s) error = %v", name, err)
	}
	if text == "" {
		t.Fatalf("renderTemplate(%s) returned empty text", name)
	}
	return text
}

func TestRenderEmptyResultSentences(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   contract.ToolName
		result contract.ToolResult
		want   string
	}{
		{contract.ToolGetChampions, contract.ToolResult{Data: []contract.Champion{}}, "No champions found."},
		{contract.ToolGetContacts, contract.ToolResult{Data: []contract.Contact{}}, "No contacts found matching that search."},
		{contract.ToolGetMentees, contract.ToolResult{Data: []contract.Mentee{}}, "No mentees found."},
		{contract.ToolGetTasks, contract.ToolResult{Data: []contract.Task{}}, "No tasks found."},
		{contract.ToolSearchVisits, contract.ToolResult{Data: []contract.Visit{}}, "No visits found."},
		{contract.ToolGetStoreInformation, contract.ToolResult{Data: []contract.StoreInfo{}}, "No store information found."},
		{contract.ToolGetAssociateInsights, contract.ToolResult{Data: []contract.AssociateInsight{}}, "I don't have any insights logged for that associate."},
		{contract.ToolGetIssues, contract.ToolResult{Data: []contract.Issue{}}, "No issues found."},
		{contract.ToolGetEnablers, contract.ToolResult{Data: []contract.Enabler{}}, "No enablers found."},
		{contract.ToolGetUserNotes, contract.ToolResult{Data: []contract.UserNote{}}, "No notes found."},
	}
	for _, tc := range cases {
		if got := render(t, tc.name, tc.result); got != tc.want {
			t.Fatalf("renderTemplate(%s) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestRenderSingleContact(t *testing.T) {
	t.Parallel()

	title := "Market Manager"
	dept := "Fresh"
	phone := "555-0101"
	text := render(t, contract.ToolGetContacts, contract.ToolResult{Data: []contract.Contact{
		{Name: "Dana Reyes", Title: &title, Department: &dept, Phone: &phone},
	}})
	if !strings.HasPrefix(text, "**Dana Reyes** is a Market Manager over Fresh.") {
		t.Fatalf("text = %q", text)
	}
	if !strings.Contains(text, "Phone: 555-0101") {
		t.Fatalf("text = %q, missing phone detail", text)
	}
}

func TestRenderMultipleContacts(t *testing.T) {
	t.Parallel()

	text := render(t, contract.ToolGetContacts, contract.ToolResult{Data: []contract.Contact{
		{Name: "Dana Reyes"}, {Name: "Luis Ortega"},
	}})
	if !strings.HasPrefix(text, "Found 2 contacts:") {
		t.Fatalf("text = %q", text)
	}
	if !strings.Contains(text, "• **Dana Reyes**") || !strings.Contains(text, "• **Luis Ortega**") {
		t.Fatalf("text = %q, missing bullets", text)
	}
}

func TestRenderTasksPriorityLabels(t *testing.T) {
	t.Parallel()

	text := render(t, contract.ToolGetTasks, contract.ToolResult{Data: []contract.Task{
		{Content: "Walk OGP", Status: "new", Priority: 3},
	}})
	if !strings.Contains(text, "**[Critical]** Walk OGP - Status: new") {
		t.Fatalf("text = %q", text)
	}

	text = render(t, contract.ToolGetTasks, contract.ToolResult{Data: []contract.Task{
		{Content: "a", Status: "new", Priority: 0},
		{Content: "b", Status: "new", Priority: 2},
	}})
	if !strings.HasPrefix(text, "**2 Tasks:**") {
		t.Fatalf("text = %q", text)
	}
	if !strings.Contains(text, "[Low]") || !strings.Contains(text, "[High]") {
		t.Fatalf("text = %q, missing priority labels", text)
	}
}

func TestRenderSingleVisit(t *testing.T) {
	t.Parallel()

	comp := 2.4
	text := render(t, contract.ToolSearchVisits, contract.ToolResult{Data: []contract.Visit{
		{StoreNbr: "1234", CalendarDate: "2026-08-21", Rating: "Green", SalesCompWTD: &comp, Top3: []string{"Zone GM", "Fix mods"}},
	}})
	if !strings.HasPrefix(text, "**Store 1234** on 2026-08-21 - **Green**") {
		t.Fatalf("text = %q", text)
	}
	if !strings.Contains(text, "Sales Comp WTD: 2.4") {
		t.Fatalf("text = %q, missing comp", text)
	}
	if !strings.Contains(text, "Zone GM, Fix mods") {
		t.Fatalf("text = %q, missing top improvements", text)
	}
}

func TestRenderGoldStars(t *testing.T) {
	t.Parallel()

	note1 := "Zone the action alley"
	note3 := "Walk OGP dispense"
	text := render(t, contract.ToolGetGoldStars, contract.ToolResult{Data: &contract.GoldStars{
		WeekNumber: 31,
		Notes:      []*string{&note1, nil, &note3},
		Completions: []contract.GoldStarCompletion{
			{StoreNbr: "1234", NoteNumber: 1, Completed: true},
			{StoreNbr: "1234", NoteNumber: 3, Completed: false},
		},
	}})
	if !strings.HasPrefix(text, "**Gold Stars - Week 31**") {
		t.Fatalf("text = %q", text)
	}
	if !strings.Contains(text, "1. Zone the action alley") || !strings.Contains(text, "3. Walk OGP dispense") {
		t.Fatalf("text = %q, notes should keep their slot numbers", text)
	}
	if strings.Contains(text, "2.") {
		t.Fatalf("text = %q, empty slots must be skipped", text)
	}
	if !strings.Contains(text, "1 of 2 checked off") {
		t.Fatalf("text = %q, missing completion tally", text)
	}
}

func TestRenderSummaryStats(t *testing.T) {
	t.Parallel()

	text := render(t, contract.ToolGetSummaryStats, contract.ToolResult{Data: &contract.SummaryStats{
		TotalVisits: 120, UniqueStores: 14,
		FirstVisit: "2026-01-05", LastVisit: "2026-08-21",
		GreenCount: 70, YellowCount: 40, RedCount: 10,
		RecentVisits30d: 18,
	}})
	for _, want := range []string{
		"**Store Visit Summary**",
		"Total visits: 120",
		"2026-01-05 to 2026-08-21",
		"Green: 70",
		"Recent activity (30d): 18 visits",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("text = %q, missing %q", text, want)
		}
	}
}

func TestRenderActionSuccessWithContact(t *testing.T) {
	t.Parallel()

	title := "Coach"
	text := render(t, contract.ToolCreateContact, contract.ToolResult{Action: &contract.ActionResult{
		Success: true,
		Message: "Contact 'Dana Reyes' created successfully",
		Entity:  contract.EntityContact,
		Payload: &contract.Contact{Name: "Dana Reyes", Title: &title},
	}})
	if !strings.HasPrefix(text, "✓ **Done!** Contact 'Dana Reyes' created successfully") {
		t.Fatalf("text = %q", text)
	}
	if !strings.Contains(text, "**Contact added:**") || !strings.Contains(text, "• Title: Coach") {
		t.Fatalf("text = %q, missing detail block", text)
	}
}

func TestRenderActionFailure(t *testing.T) {
	t.Parallel()

	text := render(t, contract.ToolUpdateTaskStatus, contract.ToolResult{
		Action: contract.ActionFailure("Invalid status. Must be one of: new, in_progress, stalled, completed"),
	})
	if !strings.HasPrefix(text, "✗ **Action failed:**") {
		t.Fatalf("text = %q", text)
	}
	if !strings.Contains(text, "Invalid status") {
		t.Fatalf("text = %q, missing reason", text)
	}
}

func TestRenderUnknownToolFallsBackToJSON(t *testing.T) {
	t.Parallel()

	text := render(t, "mystery_tool", contract.ToolResult{Data: map[string]int{"rows": 3}})
	if !strings.HasPrefix(text, "Here's what I found:") {
		t.Fatalf("text = %q", text)
	}
	if !strings.Contains(text, "```json") || !strings.Contains(text, `"rows": 3`) {
		t.Fatalf("text = %q, missing JSON block", text)
	}
}

func TestRenderAssociateInsightsTrimsTimestamps(t *testing.T) {
	t.Parallel()

	text := render(t, contract.ToolGetAssociateInsights, contract.ToolResult{Data: []contract.AssociateInsight{
		{AssociateName: "Sam Jones", InsightText: "Wants to cross-train in produce", CreatedAt: "2026-08-14T09:30:00Z"},
	}})
	if !strings.HasPrefix(text, "**Insights for Sam Jones:**") {
		t.Fatalf("text = %q", text)
	}
	if !strings.Contains(text, "(2026-08-14)") || strings.Contains(text, "09:30") {
		t.Fatalf("text = %q, timestamp should be date-only", text)
	}
}
