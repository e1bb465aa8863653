package router

import (
	"testing"

	"github.com/jaxfield/assistant/agent/contract"
)

func TestRouteContacts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		message string
		term    string
	}{
		{"who has meat?", "meat"},
		{"who handles produce", "produce"},
		{"who is the produce lead", "produce"},
		{"point of contact for ogp", "ogp"},
		{"who do I call about electronics?", "electronics"},
	}
	for _, tc := range cases {
		d := Route(tc.message)
		if d.Tool != contract.ToolGetContacts {
			t.Fatalf("Route(%q) tool = %s, want %s", tc.message, d.Tool, contract.ToolGetContacts)
		}
		term, _ := d.Args.String("search_term")
		if term != tc.term {
			t.Fatalf("Route(%q) search_term = %q, want %q", tc.message, term, tc.term)
		}
	}
}

func TestRouteLastVisitSingular(t *testing.T) {
	t.Parallel()

	d := Route("show me store 1234's last visit")
	if d.Tool != contract.ToolSearchVisits {
		t.Fatalf("tool = %s, want %s", d.Tool, contract.ToolSearchVisits)
	}
	if nbr, _ := d.Args.String("store_nbr"); nbr != "1234" {
		t.Fatalf("store_nbr = %q, want 1234", nbr)
	}
	if limit, _ := d.Args.Int("limit"); limit != 1 {
		t.Fatalf("limit = %d, want 1", limit)
	}
}

func TestRouteVisitsWithRating(t *testing.T) {
	t.Parallel()

	d := Route("show me red visits for store 1234")
	if d.Tool != contract.ToolSearchVisits {
		t.Fatalf("tool = %s, want %s", d.Tool, contract.ToolSearchVisits)
	}
	if rating, _ := d.Args.String("rating"); rating != "Red" {
		t.Fatalf("rating = %q, want Red", rating)
	}
	if limit, _ := d.Args.Int("limit"); limit != 5 {
		t.Fatalf("limit = %d, want 5", limit)
	}
}

func TestRouteMarkGoldStarComplete(t *testing.T) {
	t.Parallel()

	d := Route("mark gold star 2 complete for store 4455")
	if d.Tool != contract.ToolMarkGoldStarComplete {
		t.Fatalf("tool = %s, want %s", d.Tool, contract.ToolMarkGoldStarComplete)
	}
	if n, _ := d.Args.Int("note_number"); n != 2 {
		t.Fatalf("note_number = %d, want 2", n)
	}
	if nbr, _ := d.Args.String("store_nbr"); nbr != "4455" {
		t.Fatalf("store_nbr = %q, want 4455", nbr)
	}
	if completed, _ := d.Args.Bool("completed"); !completed {
		t.Fatal("completed = false, want true")
	}
}

func TestRouteUnmarkGoldStar(t *testing.T) {
	t.Parallel()

	d := Route("unmark gold star 1 for store 2508")
	if d.Tool != contract.ToolMarkGoldStarComplete {
		t.Fatalf("tool = %s, want %s", d.Tool, contract.ToolMarkGoldStarComplete)
	}
	if completed, _ := d.Args.Bool("completed"); completed {
		t.Fatal("completed = true, want false")
	}
}

func TestRouteSaveGoldStarNotes(t *testing.T) {
	t.Parallel()

	d := Route(`save gold star notes 'Fix mods' 'Zone GM' 'Walk OGP'`)
	if d.Tool != contract.ToolSaveGoldStarNotes {
		t.Fatalf("tool = %s, want %s", d.Tool, contract.ToolSaveGoldStarNotes)
	}
	for i, want := range []string{"Fix mods", "Zone GM", "Walk OGP"} {
		key := []string{"note_1", "note_2", "note_3"}[i]
		if got, _ := d.Args.String(key); got != want {
			t.Fatalf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestRouteGoldStarQueryWithWeek(t *testing.T) {
	t.Parallel()

	d := Route("gold stars for week 3")
	if d.Tool != contract.ToolGetGoldStars {
		t.Fatalf("tool = %s, want %s", d.Tool, contract.ToolGetGoldStars)
	}
	if wk, _ := d.Args.Int("week_number"); wk != 3 {
		t.Fatalf("week_number = %d, want 3", wk)
	}
}

func TestRouteTaskLifecycle(t *testing.T) {
	t.Parallel()

	d := Route("add a task: call the market manager")
	if d.Tool != contract.ToolCreateTask {
		t.Fatalf("create tool = %s, want %s", d.Tool, contract.ToolCreateTask)
	}
	if content, _ := d.Args.String("content"); content != "call the market manager" {
		t.Fatalf("content = %q", content)
	}

	d = Route("mark task #7 done")
	if d.Tool != contract.ToolUpdateTaskStatus {
		t.Fatalf("update tool = %s, want %s", d.Tool, contract.ToolUpdateTaskStatus)
	}
	if id, _ := d.Args.Int("task_id"); id != 7 {
		t.Fatalf("task_id = %d, want 7", id)
	}
	if status, _ := d.Args.String("status"); status != "completed" {
		t.Fatalf("status = %q, want completed", status)
	}

	d = Route("task #7 is stalled")
	if d.Tool != contract.ToolUpdateTaskStatus {
		t.Fatalf("stalled tool = %s, want %s", d.Tool, contract.ToolUpdateTaskStatus)
	}
	if status, _ := d.Args.String("status"); status != "stalled" {
		t.Fatalf("status = %q, want stalled", status)
	}

	d = Route("delete task #12")
	if d.Tool != contract.ToolDeleteTask {
		t.Fatalf("delete tool = %s, want %s", d.Tool, contract.ToolDeleteTask)
	}
	if id, _ := d.Args.Int("task_id"); id != 12 {
		t.Fatalf("task_id = %d, want 12", id)
	}
}

func TestRouteEnablerStageFilter(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"show me presented enablers":       "presented",
		"enablers still in the idea stage": "idea",
		"which enablers have slides":       "slide_made",
		"show me enablers":                 "",
	}
	for message, want := range cases {
		d := Route(message)
		if d.Tool != contract.ToolGetEnablers {
			t.Fatalf("Route(%q) tool = %s, want %s", message, d.Tool, contract.ToolGetEnablers)
		}
		if got, _ := d.Args.String("status"); got != want {
			t.Fatalf("Route(%q) status = %q, want %q", message, got, want)
		}
	}
}

func TestRouteTaskQueryBeatsNothing(t *testing.T) {
	t.Parallel()

	d := Route("what are my tasks")
	if d.Tool != contract.ToolGetTasks {
		t.Fatalf("tool = %s, want %s", d.Tool, contract.ToolGetTasks)
	}
}

func TestRouteCreateContactWithName(t *testing.T) {
	t.Parallel()

	d := Route("add a contact named John Smith")
	if d.Tool != contract.ToolCreateContact {
		t.Fatalf("tool = %s, want %s", d.Tool, contract.ToolCreateContact)
	}
	if name, _ := d.Args.String("name"); name != "John Smith" {
		t.Fatalf("name = %q, want John Smith", name)
	}
}

func TestRoutePointOfContactIsNotCreate(t *testing.T) {
	t.Parallel()

	// "add" co-occurring with "point of contact" is still a lookup.
	d := Route("who should I add as the point of contact for hba?")
	if d.Tool != contract.ToolGetContacts {
		t.Fatalf("tool = %s, want %s", d.Tool, contract.ToolGetContacts)
	}
}

func TestRouteChampionAdd(t *testing.T) {
	t.Parallel()

	d := Route("add Sarah Lee as champion for OGP")
	if d.Tool != contract.ToolCreateChampion {
		t.Fatalf("tool = %s, want %s", d.Tool, contract.ToolCreateChampion)
	}
	if name, _ := d.Args.String("name"); name != "Sarah Lee" {
		t.Fatalf("name = %q, want Sarah Lee", name)
	}
	if resp, _ := d.Args.String("responsibility"); resp != "OGP" {
		t.Fatalf("responsibility = %q, want OGP", resp)
	}
}

func TestRouteMenteeAddAndRemove(t *testing.T) {
	t.Parallel()

	d := Route("add Maria from store 2508 to my mentee circle")
	if d.Tool != contract.ToolCreateMentee {
		t.Fatalf("tool = %s, want %s", d.Tool, contract.ToolCreateMentee)
	}
	if name, _ := d.Args.String("name"); name != "Maria" {
		t.Fatalf("name = %q, want Maria", name)
	}
	if nbr, _ := d.Args.String("store_nbr"); nbr != "2508" {
		t.Fatalf("store_nbr = %q, want 2508", nbr)
	}

	d = Route("remove Maria from my mentee circle")
	if d.Tool != contract.ToolDeleteMentee {
		t.Fatalf("tool = %s, want %s", d.Tool, contract.ToolDeleteMentee)
	}
	if name, _ := d.Args.String("name"); name != "Maria" {
		t.Fatalf("name = %q, want Maria", name)
	}
}

func TestRouteCompareStores(t *testing.T) {
	t.Parallel()

	d := Route("compare stores 1234 and 5678")
	if d.Tool != contract.ToolCompareStores {
		t.Fatalf("tool = %s, want %s", d.Tool, contract.ToolCompareStores)
	}
	nbrs := d.Args.Strings("store_nbrs")
	if len(nbrs) != 2 || nbrs[0] != "1234" || nbrs[1] != "5678" {
		t.Fatalf("store_nbrs = %v, want [1234 5678]", nbrs)
	}
}

func TestRouteTrends(t *testing.T) {
	t.Parallel()

	d := Route("show me the trend for store 4455")
	if d.Tool != contract.ToolAnalyzeTrends {
		t.Fatalf("tool = %s, want %s", d.Tool, contract.ToolAnalyzeTrends)
	}
	if nbr, _ := d.Args.String("store_nbr"); nbr != "4455" {
		t.Fatalf("store_nbr = %q, want 4455", nbr)
	}
}

func TestRouteIssues(t *testing.T) {
	t.Parallel()

	d := Route("log a bug: search is slow")
	if d.Tool != contract.ToolCreateIssue {
		t.Fatalf("create tool = %s, want %s", d.Tool, contract.ToolCreateIssue)
	}
	if it, _ := d.Args.String("issue_type"); it != "bug" {
		t.Fatalf("issue_type = %q, want bug", it)
	}
	if title, _ := d.Args.String("title"); title != "search is slow" {
		t.Fatalf("title = %q", title)
	}

	d = Route("show me open issues")
	if d.Tool != contract.ToolGetIssues {
		t.Fatalf("query tool = %s, want %s", d.Tool, contract.ToolGetIssues)
	}
	if status, _ := d.Args.String("status"); status != "open" {
		t.Fatalf("status = %q, want open", status)
	}
}

func TestRouteMarketCascade(t *testing.T) {
	t.Parallel()

	d := Route("what's the status of my market notes")
	if d.Tool != contract.ToolGetMarketNoteStatus {
		t.Fatalf("status tool = %s, want %s", d.Tool, contract.ToolGetMarketNoteStatus)
	}

	d = Route("any updates on market notes?")
	if d.Tool != contract.ToolGetMarketNoteUpdates {
		t.Fatalf("updates tool = %s, want %s", d.Tool, contract.ToolGetMarketNoteUpdates)
	}

	d = Route("show me market insights")
	if d.Tool != contract.ToolGetMarketInsights {
		t.Fatalf("insights tool = %s, want %s", d.Tool, contract.ToolGetMarketInsights)
	}
}

func TestRouteSearchNotesKeyword(t *testing.T) {
	t.Parallel()

	d := Route("search for cooler problems")
	if d.Tool != contract.ToolSearchNotes {
		t.Fatalf("tool = %s, want %s", d.Tool, contract.ToolSearchNotes)
	}
	if kw, _ := d.Args.String("keyword"); kw != "cooler problems" {
		t.Fatalf("keyword = %q, want %q", kw, "cooler problems")
	}
}

func TestRouteDefaultIsSummary(t *testing.T) {
	t.Parallel()

	for _, message := range []string{"hello", "how's it going", "thanks"} {
		d := Route(message)
		if d.Tool != contract.ToolGetSummaryStats {
			t.Fatalf("Route(%q) tool = %s, want %s", message, d.Tool, contract.ToolGetSummaryStats)
		}
	}
}

func TestRouteSummaryKeyword(t *testing.T) {
	t.Parallel()

	d := Route("give me an overview")
	if d.Tool != contract.ToolGetSummaryStats {
		t.Fatalf("tool = %s, want %s", d.Tool, contract.ToolGetSummaryStats)
	}
}
