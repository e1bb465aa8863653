package router

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jaxfield/assistant/agent/contract"
)

// A rule pairs a membership predicate with an argument extractor. Rules are
// evaluated in slice order and the first match wins, so the slices below
// encode precedence.
type rule struct {
	when  func(m *message) bool
	build func(m *message) contract.RouteDecision
}

var (
	markVerb      = regexp.MustCompile(`\b(mark|check\s+off|checked\s+off|uncheck|unmark)\b`)
	saveVerb      = regexp.MustCompile(`\b(save|set|update)\b`)
	completeCue   = regexp.MustCompile(`\b(complete|completed|done|finish|finished)\b`)
	incompleteCue = regexp.MustCompile(`\b(incomplete|not\s+complete|uncheck|unmark|undo)\b`)
	createVerb    = regexp.MustCompile(`\b(create|add|log|report|save|set|file|submit)\b`)
	deleteVerb    = regexp.MustCompile(`\b(delete|remove|drop)\b`)

	noteNumberPattern  = regexp.MustCompile(`\b([1-3])\b`)
	smallNumberPattern = regexp.MustCompile(`\b(\d{1,3})\b`)
	taskIDPattern      = regexp.MustCompile(`task\s*#?\s*(\d+)`)
	weekNumberPattern  = regexp.MustCompile(`(?:week|wk|w)\s*(\d{1,2})`)
	assignedToPattern  = regexp.MustCompile(`assigned to (\w+)`)
	assignTargetPattern = regexp.MustCompile(`\bto\s+([A-Za-z]+)\s*$`)
	quotedPattern       = regexp.MustCompile(`['"]([^'"]+)['"]`)
	searchTermPattern   = regexp.MustCompile(`(?:search|find)\s+(?:for\s+)?(?:stores?\s+with\s+)?["']?([^"']+)["']?`)
	aboutPattern        = regexp.MustCompile(`(?:about|for|with)\s+["']?([^"']+)["']?`)
	singleVisitPattern  = regexp.MustCompile(`\b(last|most recent|latest)\s+visit\b`)
	issueCreatePattern  = regexp.MustCompile(`\b(?:log|create|add|submit|file|report)\s+(?:a\s+|an\s+|new\s+)?(?:bug|issue|feedback|feature)`)
	issueTitlePattern   = regexp.MustCompile(`(?i)(?:bug|issue|feedback|feature(?:\s+request)?)\s*:?\s+(?:about\s+)?(.+)$`)
	personNamePattern   = regexp.MustCompile(`(?i)\b(?:add|create|delete|remove)\s+(?:a\s+)?(?:new\s+)?(?:contact|champion|mentee)?\s*:?\s*(?:named\s+|called\s+|for\s+)?([A-Za-z]+(?:\s+[A-Za-z]+)?)`)
	asChampionPattern   = regexp.MustCompile(`(?i)\b(?:add|create)\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)\s+as\s+(?:a\s+)?champion(?:\s+for\s+(.+))?$`)
	menteeAddPattern    = regexp.MustCompile(`(?i)\b(?:add|create)\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)(?:\s+from\s+store\s+\d{4,5})?\s+to\s+(?:my\s+)?mentee`)
	removeFromPattern   = regexp.MustCompile(`(?i)\b(?:delete|remove)\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)\s+from\b`)
	enablerTitlePattern = regexp.MustCompile(`(?i)enabler\s*:?\s+(.+)$`)
	taskContentPattern  = regexp.MustCompile(`(?i)task\s*:?\s+(?:to\s+)?(.+)$`)
)

// noteNumber finds a standalone 1-3 token; store numbers never match since
// their digits have no word boundary between them.
func (m *message) noteNumber() int {
	if s := noteNumberPattern.FindString(m.raw); s != "" {
		return int(s[0] - '0')
	}
	return 0
}

func (m *message) smallNumber() int {
	for _, s := range smallNumberPattern.FindAllString(m.raw, -1) {
		n := 0
		for _, c := range s {
			n = n*10 + int(c-'0')
		}
		return n
	}
	return 0
}

func firstSubmatch(p *regexp.Regexp, s string) string {
	if m := p.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// actionRules run before every query rule: an action verb co-occurring with
// a domain noun beats the noun's query. Arguments that cannot be extracted
// stay absent; the tool rejects with a validation message instead of the
// router guessing.
var actionRules = []rule{
	{ // save this week's gold star focus notes
		when: func(m *message) bool {
			return m.contains("gold star", "goldstar") && m.contains("note") &&
				saveVerb.MatchString(m.lower)
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			for i, q := range quotedPattern.FindAllStringSubmatch(m.raw, 3) {
				args[fmt.Sprintf("note_%d", i+1)] = q[1]
			}
			return contract.RouteDecision{Tool: contract.ToolSaveGoldStarNotes, Args: args}
		},
	},
	{ // mark gold star N complete for store X
		when: func(m *message) bool {
			if !m.contains("gold star", "goldstar") {
				return false
			}
			return markVerb.MatchString(m.lower) ||
				(completeCue.MatchString(m.lower) && m.noteNumber() > 0)
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{
				"note_number": m.noteNumber(),
				"completed":   !incompleteCue.MatchString(m.lower),
			}
			if nbr := m.firstNumber(); nbr != "" {
				args["store_nbr"] = nbr
			}
			return contract.RouteDecision{Tool: contract.ToolMarkGoldStarComplete, Args: args}
		},
	},
	{ // mark enabler N complete for store X
		when: func(m *message) bool {
			if !m.contains("enabler") {
				return false
			}
			return markVerb.MatchString(m.lower) ||
				(completeCue.MatchString(m.lower) && m.smallNumber() > 0)
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{
				"enabler_id": m.smallNumber(),
				"completed":  !incompleteCue.MatchString(m.lower),
			}
			if nbr := m.firstNumber(); nbr != "" {
				args["store_nbr"] = nbr
			}
			return contract.RouteDecision{Tool: contract.ToolMarkEnablerComplete, Args: args}
		},
	},
	{ // create an enabler
		when: func(m *message) bool {
			return m.contains("enabler") && createVerb.MatchString(m.lower)
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			if title := firstSubmatch(enablerTitlePattern, m.raw); title != "" {
				args["title"] = title
			}
			return contract.RouteDecision{Tool: contract.ToolCreateEnabler, Args: args}
		},
	},
	{ // delete a task
		when: func(m *message) bool {
			return m.contains("task") && deleteVerb.MatchString(m.lower)
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			if id := firstSubmatch(taskIDPattern, m.lower); id != "" {
				args["task_id"] = atoi(id)
			}
			return contract.RouteDecision{Tool: contract.ToolDeleteTask, Args: args}
		},
	},
	{ // create a task
		when: func(m *message) bool {
			return m.contains("task", "todo", "to-do") && createVerb.MatchString(m.lower)
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			if content := firstSubmatch(taskContentPattern, m.raw); content != "" {
				args["content"] = content
			}
			if nbr := m.firstNumber(); nbr != "" {
				args["store_number"] = nbr
			}
			return contract.RouteDecision{Tool: contract.ToolCreateTask, Args: args}
		},
	},
	{ // mark task N done / stalled / in progress
		when: func(m *message) bool {
			if !m.contains("task") {
				return false
			}
			cued := markVerb.MatchString(m.lower) || completeCue.MatchString(m.lower) ||
				m.contains("stalled", "in progress")
			return cued && firstSubmatch(taskIDPattern, m.lower) != ""
		},
		build: func(m *message) contract.RouteDecision {
			status := "completed"
			switch {
			case m.contains("stalled"):
				status = "stalled"
			case m.contains("in progress"):
				status = "in_progress"
			}
			return contract.RouteDecision{Tool: contract.ToolUpdateTaskStatus, Args: contract.Args{
				"task_id": atoi(firstSubmatch(taskIDPattern, m.lower)),
				"status":  status,
			}}
		},
	},
	{ // create a contact
		when: func(m *message) bool {
			return m.contains("contact") && createVerb.MatchString(m.lower) &&
				!m.contains("point of contact")
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			if name := firstSubmatch(personNamePattern, m.raw); name != "" && !strings.EqualFold(name, "contact") {
				args["name"] = name
			}
			return contract.RouteDecision{Tool: contract.ToolCreateContact, Args: args}
		},
	},
	{ // delete a contact
		when: func(m *message) bool {
			return m.contains("contact") && deleteVerb.MatchString(m.lower)
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			name := firstSubmatch(removeFromPattern, m.raw)
			if name == "" {
				name = firstSubmatch(personNamePattern, m.raw)
			}
			if name != "" && !strings.EqualFold(name, "contact") {
				args["name"] = name
			}
			return contract.RouteDecision{Tool: contract.ToolDeleteContact, Args: args}
		},
	},
	{ // add a champion
		when: func(m *message) bool {
			return m.contains("champion") && createVerb.MatchString(m.lower)
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			if sub := asChampionPattern.FindStringSubmatch(m.raw); sub != nil {
				args["name"] = strings.TrimSpace(sub[1])
				if resp := strings.TrimSpace(sub[2]); resp != "" {
					args["responsibility"] = resp
				}
			} else if name := firstSubmatch(personNamePattern, m.raw); name != "" && !strings.EqualFold(name, "champion") {
				args["name"] = name
			}
			return contract.RouteDecision{Tool: contract.ToolCreateChampion, Args: args}
		},
	},
	{ // delete a champion
		when: func(m *message) bool {
			return m.contains("champion") && deleteVerb.MatchString(m.lower)
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			name := firstSubmatch(removeFromPattern, m.raw)
			if name == "" {
				name = firstSubmatch(personNamePattern, m.raw)
			}
			if name != "" && !strings.EqualFold(name, "champion") {
				args["name"] = name
			}
			return contract.RouteDecision{Tool: contract.ToolDeleteChampion, Args: args}
		},
	},
	{ // add a mentee
		when: func(m *message) bool {
			return m.contains("mentee") && createVerb.MatchString(m.lower)
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			name := firstSubmatch(menteeAddPattern, m.raw)
			if name == "" {
				name = firstSubmatch(personNamePattern, m.raw)
			}
			if name != "" && !strings.EqualFold(name, "mentee") {
				args["name"] = name
			}
			if nbr := m.firstNumber(); nbr != "" {
				args["store_nbr"] = nbr
			}
			return contract.RouteDecision{Tool: contract.ToolCreateMentee, Args: args}
		},
	},
	{ // remove a mentee
		when: func(m *message) bool {
			return m.contains("mentee") && deleteVerb.MatchString(m.lower)
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			name := firstSubmatch(removeFromPattern, m.raw)
			if name == "" {
				name = firstSubmatch(personNamePattern, m.raw)
			}
			if name != "" && !strings.EqualFold(name, "mentee") {
				args["name"] = name
			}
			return contract.RouteDecision{Tool: contract.ToolDeleteMentee, Args: args}
		},
	},
	{ // assign a market note
		when: func(m *message) bool {
			return m.contains("market") && m.contains("assign") &&
				!m.contains("assigned to")
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			if who := firstSubmatch(assignTargetPattern, m.raw); who != "" {
				args["assigned_to"] = who
			}
			if q := firstSubmatch(quotedPattern, m.raw); q != "" {
				args["note_text"] = q
			}
			return contract.RouteDecision{Tool: contract.ToolAssignMarketNote, Args: args}
		},
	},
	{ // comment on a market note
		when: func(m *message) bool {
			return m.contains("market") && m.contains("comment") &&
				createVerb.MatchString(m.lower)
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			if q := firstSubmatch(quotedPattern, m.raw); q != "" {
				args["comment"] = q
			}
			return contract.RouteDecision{Tool: contract.ToolAddMarketNoteComment, Args: args}
		},
	},
	{ // set a market note's status
		when: func(m *message) bool {
			return m.contains("market note", "market notes") && markVerb.MatchString(m.lower)
		},
		build: func(m *message) contract.RouteDecision {
			status := m.status
			if status == "" || status == "open" {
				status = "completed"
			}
			args := contract.Args{"status": status}
			if q := firstSubmatch(quotedPattern, m.raw); q != "" {
				args["note_text"] = q
			}
			return contract.RouteDecision{Tool: contract.ToolUpdateMarketNoteStatus, Args: args}
		},
	},
	{ // log an issue / bug / feedback
		when: func(m *message) bool {
			return issueCreatePattern.MatchString(m.lower)
		},
		build: func(m *message) contract.RouteDecision {
			issueType := "feedback"
			switch {
			case m.contains("bug"):
				issueType = "bug"
			case m.contains("feature"):
				issueType = "feature"
			}
			args := contract.Args{"issue_type": issueType}
			if title := firstSubmatch(issueTitlePattern, m.raw); title != "" {
				args["title"] = title
			}
			return contract.RouteDecision{Tool: contract.ToolCreateIssue, Args: args}
		},
	},
}

// queryRules mirror the legacy cascade order exactly; many keyword sets
// overlap ("market" appears four times) and only the ordering keeps them
// disambiguated.
var queryRules = []rule{
	{ // contacts
		when: func(m *message) bool {
			if _, ok := matchContactTerm(m.lower); ok {
				return true
			}
			return m.contains("list contact", "show contact", "all contact", "my contact",
				"contacts list", "contact", "who do i call", "phone number", "reach out")
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			if term := extractContactTerm(m.lower); term != "" {
				args["search_term"] = term
			}
			return contract.RouteDecision{Tool: contract.ToolGetContacts, Args: args}
		},
	},
	{ // mentees
		when: func(m *message) bool { return m.contains("mentee", "circle") },
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			if nbr := m.firstNumber(); nbr != "" {
				args["store_nbr"] = nbr
			}
			return contract.RouteDecision{Tool: contract.ToolGetMentees, Args: args}
		},
	},
	{ // enablers
		when: func(m *message) bool {
			return m.contains("enabler") || (m.contains("tip") && m.contains("trick"))
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			if stage := enablerStage(m); stage != "" {
				args["status"] = stage
			}
			return contract.RouteDecision{Tool: contract.ToolGetEnablers, Args: args}
		},
	},
	{ // tasks
		when: func(m *message) bool { return m.contains("task", "todo", "to-do") },
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			status := m.status
			if m.contains("stalled") {
				status = "stalled"
			}
			if status != "" {
				args["status"] = status
			}
			if who := firstSubmatch(assignedToPattern, m.lower); who != "" {
				args["assigned_to"] = who
			}
			if nbr := m.firstNumber(); nbr != "" {
				args["store_number"] = nbr
			}
			return contract.RouteDecision{Tool: contract.ToolGetTasks, Args: args}
		},
	},
	{ // personal notes, never market notes
		when: func(m *message) bool {
			return m.contains("note") && !m.contains("market") &&
				m.contains("my", "user", "personal", "search note")
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			if term := firstSubmatch(aboutPattern, m.lower); term != "" {
				args["search"] = term
			}
			return contract.RouteDecision{Tool: contract.ToolGetUserNotes, Args: args}
		},
	},
	{ // champions
		when: func(m *message) bool {
			return m.contains("champion") || (m.contains("team") && !m.contains("contact"))
		},
		build: func(m *message) contract.RouteDecision {
			return contract.RouteDecision{Tool: contract.ToolGetChampions, Args: contract.Args{}}
		},
	},
	{ // gold stars
		when: func(m *message) bool { return m.contains("gold star", "goldstar") },
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			if wk := firstSubmatch(weekNumberPattern, m.lower); wk != "" {
				args["week_number"] = atoi(wk)
			}
			return contract.RouteDecision{Tool: contract.ToolGetGoldStars, Args: args}
		},
	},
	{ // issues and feedback
		when: func(m *message) bool { return m.contains("issue", "feedback", "bug") },
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			if m.status != "" {
				args["status"] = m.status
			}
			switch {
			case m.contains("feedback"):
				args["type"] = "feedback"
			case m.contains("bug"):
				args["type"] = "bug"
			}
			return contract.RouteDecision{Tool: contract.ToolGetIssues, Args: args}
		},
	},
	{ // market note status
		when: func(m *message) bool {
			return m.contains("market") && m.contains("status", "progress", "assigned",
				"completion", "outstanding", "open", "incomplete")
		},
		build: func(m *message) contract.RouteDecision {
			args := contract.Args{}
			if m.status != "" {
				args["status"] = m.status
			}
			return contract.RouteDecision{Tool: contract.ToolGetMarketNoteStatus, Args: args}
		},
	},
	{ // market note updates
		when: func(m *message) bool { return m.contains("market") && m.contains("update") },
		build: func(m *message) contract.RouteDecision {
			return contract.RouteDecision{Tool: contract.ToolGetMarketNoteUpdates, Args: contract.Args{}}
		},
	},
	{ // summary and overview
		when: func(m *message) bool { return m.contains("summary", "stats", "overview") },
		build: func(m *message) contract.RouteDecision {
			return contract.RouteDecision{Tool: contract.ToolGetSummaryStats, Args: contract.Args{}}
		},
	},
	{ // market insights
		when: func(m *message) bool {
			return m.contains("market") && m.contains("insight", "note")
		},
		build: func(m *message) contract.RouteDecision {
			return contract.RouteDecision{Tool: contract.ToolGetMarketInsights, Args: contract.Args{}}
		},
	},
	{ // compare stores
		when: func(m *message) bool { return m.contains("compare") && len(m.numbers) > 0 },
		build: func(m *message) contract.RouteDecision {
			return contract.RouteDecision{Tool: contract.ToolCompareStores, Args: contract.Args{
				"store_nbrs": m.numbers,
			}}
		},
	},
	{ // trends
		when: func(m *message) bool {
			return m.contains("trend", "analysis") && len(m.numbers) > 0
		},
		build: func(m *message) contract.RouteDecision {
			return contract.RouteDecision{Tool: contract.ToolAnalyzeTrends, Args: contract.Args{
				"store_nbr": m.firstNumber(),
			}}
		},
	},
	{ // keyword search across notes, or visits when only a store number fits
		when: func(m *message) bool {
			if !m.contains("search", "find") {
				return false
			}
			if keyword := searchKeyword(m.lower); keyword != "" {
				return true
			}
			return len(m.numbers) > 0
		},
		build: func(m *message) contract.RouteDecision {
			if keyword := searchKeyword(m.lower); keyword != "" {
				return contract.RouteDecision{Tool: contract.ToolSearchNotes, Args: contract.Args{
					"keyword": keyword,
				}}
			}
			return visitSearch(m)
		},
	},
	{ // a bare store number means recent visits
		when: func(m *message) bool { return len(m.numbers) > 0 },
		build: visitSearch,
	},
}

// enablerStage maps phrasing to the enabler lifecycle: idea, slide_made,
// presented. Task-style status words don't apply here.
func enablerStage(m *message) string {
	switch {
	case m.contains("idea"):
		return "idea"
	case m.contains("slide"):
		return "slide_made"
	case m.contains("presented"):
		return "presented"
	}
	return ""
}

// searchKeyword extracts a note-search term, rejecting terms that really
// describe a visit query.
func searchKeyword(lower string) string {
	keyword := firstSubmatch(searchTermPattern, lower)
	switch keyword {
	case "", "green", "yellow", "red", "visits", "visit", "store", "stores":
		return ""
	}
	return keyword
}

func visitSearch(m *message) contract.RouteDecision {
	limit := 5
	if singleVisitPattern.MatchString(m.lower) && !m.contains("visits") {
		limit = 1
	}
	args := contract.Args{"store_nbr": m.firstNumber(), "limit": limit}
	if m.rating != "" {
		args["rating"] = m.rating
	}
	return contract.RouteDecision{Tool: contract.ToolSearchVisits, Args: args}
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
