package contract

import "encoding/json"

// ToolName identifies one operation in the registry. The set is closed:
// every routable tool has a constant here and a descriptor in agent/tool.
type ToolName string

// Query tools.
const (
	ToolSearchVisits         ToolName = "search_visits"
	ToolGetVisitDetails      ToolName = "get_visit_details"
	ToolAnalyzeTrends        ToolName = "analyze_trends"
	ToolCompareStores        ToolName = "compare_stores"
	ToolSearchNotes          ToolName = "search_notes"
	ToolGetMarketInsights    ToolName = "get_market_insights"
	ToolGetMarketNoteStatus  ToolName = "get_market_note_status"
	ToolGetMarketNoteUpdates ToolName = "get_market_note_updates"
	ToolGetChampions         ToolName = "get_champions"
	ToolGetMentees           ToolName = "get_mentees"
	ToolGetContacts          ToolName = "get_contacts"
	ToolGetGoldStars         ToolName = "get_gold_stars"
	ToolGetEnablers          ToolName = "get_enablers"
	ToolGetIssues            ToolName = "get_issues"
	ToolGetTasks             ToolName = "get_tasks"
	ToolGetUserNotes         ToolName = "get_user_notes"
	ToolGetSummaryStats      ToolName = "get_summary_stats"
	ToolGetStoreInformation  ToolName = "get_store_information"
	ToolGetAssociateInsights ToolName = "get_associate_insights"
)

// Action tools.
const (
	ToolMarkGoldStarComplete   ToolName = "mark_gold_star_complete"
	ToolSaveGoldStarNotes      ToolName = "save_gold_star_notes"
	ToolCreateContact          ToolName = "create_contact"
	ToolDeleteContact          ToolName = "delete_contact"
	ToolCreateTask             ToolName = "create_task"
	ToolUpdateTaskStatus       ToolName = "update_task_status"
	ToolDeleteTask             ToolName = "delete_task"
	ToolUpdateMarketNoteStatus ToolName = "update_market_note_status"
	ToolAssignMarketNote       ToolName = "assign_market_note"
	ToolAddMarketNoteComment   ToolName = "add_market_note_comment"
	ToolCreateChampion         ToolName = "create_champion"
	ToolDeleteChampion         ToolName = "delete_champion"
	ToolCreateMentee           ToolName = "create_mentee"
	ToolDeleteMentee           ToolName = "delete_mentee"
	ToolMarkEnablerComplete    ToolName = "mark_enabler_complete"
	ToolCreateEnabler          ToolName = "create_enabler"
	ToolCreateIssue            ToolName = "create_issue"
	ToolLogAssociateInsight    ToolName = "log_associate_insight"
)

// ToolLogInsightByName is the pseudo-tool the insight detector routes to.
// It is not in the registry; the dispatcher handles it before tool lookup.
const ToolLogInsightByName ToolName = "log_associate_insight_by_name"

type ToolKind string

const (
	ToolKindQuery  ToolKind = "query"
	ToolKindAction ToolKind = "action"
)

// Args is the argument mapping a RouteDecision carries into a tool. Values
// come either from the manual router (typed Go values) or from decoded agent
// tool-call JSON, so numeric lookups coerce float64.
type Args map[string]any

func (a Args) String(key string) (string, bool) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func (a Args) Int(key string) (int, bool) {
	switch v := a[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func (a Args) Bool(key string) (bool, bool) {
	v, ok := a[key].(bool)
	return v, ok
}

// Strings accepts both []string from the router and []any from decoded
// tool-call JSON.
func (a Args) Strings(key string) []string {
	switch v := a[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// RouteDecision is the manual router's verdict for one message.
type RouteDecision struct {
	Tool ToolName
	Args Args
}

// ToolResult is the tagged union every tool invocation produces. Query tools
// set Data; action tools set Action and never let an error escape their
// boundary.
type ToolResult struct {
	Data   any
	Action *ActionResult
}

// EntityKind names the typed payload an ActionResult may carry, used by the
// template formatter to pick detail lines.
type EntityKind string

const (
	EntityContact  EntityKind = "contact"
	EntityTask     EntityKind = "task"
	EntityChampion EntityKind = "champion"
	EntityMentee   EntityKind = "mentee"
	EntityEnabler  EntityKind = "enabler"
	EntityIssue    EntityKind = "issue"
)

// ActionResult is the uniform success/failure envelope for mutating tools.
type ActionResult struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Error   string     `json:"error,omitempty"`
	Entity  EntityKind `json:"-"`
	Payload any        `json:"-"`
	// Fields carries extra scalar detail (store_nbr, note_number, ...)
	// surfaced to the LLM formatter.
	Fields map[string]any `json:"-"`
}

// MarshalJSON flattens the envelope the way the formatter prompt expects:
// {"success":true,"message":"...","contact":{...},"store_nbr":"1234"}.
func (r ActionResult) MarshalJSON() ([]byte, error) {
	m := map[string]any{"success": r.Success}
	if r.Message != "" {
		m["message"] = r.Message
	}
	if r.Error != "" {
		m["error"] = r.Error
	}
	if r.Entity != "" && r.Payload != nil {
		m[string(r.Entity)] = r.Payload
	}
	for k, v := range r.Fields {
		m[k] = v
	}
	return json.Marshal(m)
}

// ActionFailure builds the recoverable validation shape.
func ActionFailure(reason string) *ActionResult {
	return &ActionResult{Success: false, Error: reason}
}

// Source tags a reply with the code path that produced it.
type Source string

const (
	SourceAgent             Source = "agent"
	SourceLLMFormatted      Source = "llm_formatted"
	SourceTemplateFormatted Source = "template_formatted"
	SourceRawData           Source = "raw_data"
	SourceError             Source = "error"
)

// ChatReply is the sole externally observable output of the core.
type ChatReply struct {
	Response string `json:"response"`
	Source   Source `json:"source"`
}
