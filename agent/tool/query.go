package tool

import (
	"context"

	"github.com/cloudwego/eino/schema"

	"github.com/jaxfield/assistant/agent/contract"
)

// queryTools is the ordered read-only collection. Every invoker returns its
// rows under Data; store errors propagate so the dispatcher can report them.
func queryTools(store contract.RecordStore) []*Descriptor {
	return []*Descriptor{
		{
			Name: contract.ToolSearchVisits,
			Kind: contract.ToolKindQuery,
			Desc: "Search store visits by store number, optionally filtered by rating.",
			Params: map[string]*schema.ParameterInfo{
				"store_nbr": {Type: schema.String, Desc: "Store number, e.g. 1234", Required: true},
				"limit":     {Type: schema.Integer, Desc: "Max visits to return (default 10)"},
				"rating":    {Type: schema.String, Desc: "Filter by rating: Green, Yellow or Red"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				storeNbr, _ := args.String("store_nbr")
				limit, _ := args.Int("limit")
				rating, _ := args.String("rating")
				visits, err := store.SearchVisits(ctx, storeNbr, limit, rating)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: visits}, nil
			},
		},
		{
			Name: contract.ToolGetVisitDetails,
			Kind: contract.ToolKindQuery,
			Desc: "Get the full detail of one visit, including all note sections.",
			Params: map[string]*schema.ParameterInfo{
				"visit_id": {Type: schema.Integer, Desc: "Visit row ID", Required: true},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				id, _ := args.Int("visit_id")
				visit, err := store.VisitDetails(ctx, int64(id))
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: visit}, nil
			},
		},
		{
			Name: contract.ToolAnalyzeTrends,
			Kind: contract.ToolKindQuery,
			Desc: "Analyze rating and sales trends for one store over a period.",
			Params: map[string]*schema.ParameterInfo{
				"store_nbr": {Type: schema.String, Desc: "Store number", Required: true},
				"days":      {Type: schema.Integer, Desc: "Period in days (default 90)"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				storeNbr, _ := args.String("store_nbr")
				days, _ := args.Int("days")
				report, err := store.AnalyzeTrends(ctx, storeNbr, days)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: report}, nil
			},
		},
		{
			Name: contract.ToolCompareStores,
			Kind: contract.ToolKindQuery,
			Desc: "Compare aggregate visit metrics across several stores.",
			Params: map[string]*schema.ParameterInfo{
				"store_nbrs": {
					Type:     schema.Array,
					Desc:     "Store numbers to compare",
					ElemInfo: &schema.ParameterInfo{Type: schema.String},
					Required: true,
				},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				cmp, err := store.CompareStores(ctx, args.Strings("store_nbrs"))
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: cmp}, nil
			},
		},
		{
			Name: contract.ToolSearchNotes,
			Kind: contract.ToolKindQuery,
			Desc: "Keyword-search all visit note sections across stores.",
			Params: map[string]*schema.ParameterInfo{
				"keyword": {Type: schema.String, Desc: "Text to search for", Required: true},
				"limit":   {Type: schema.Integer, Desc: "Max hits (default 20)"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				keyword, _ := args.String("keyword")
				limit, _ := args.Int("limit")
				hits, err := store.SearchNotes(ctx, keyword, limit)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: hits}, nil
			},
		},
		{
			Name: contract.ToolGetMarketInsights,
			Kind: contract.ToolKindQuery,
			Desc: "Aggregate recent market notes across all stores.",
			Params: map[string]*schema.ParameterInfo{
				"days": {Type: schema.Integer, Desc: "Lookback window in days (default 30)"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				days, _ := args.Int("days")
				ins, err := store.MarketInsights(ctx, days)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: ins}, nil
			},
		},
		{
			Name: contract.ToolGetMarketNoteStatus,
			Kind: contract.ToolKindQuery,
			Desc: "List market notes with their workflow status. Defaults to open items.",
			Params: map[string]*schema.ParameterInfo{
				"status": {Type: schema.String, Desc: "Filter: new, in_progress, stalled or completed"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				status, _ := args.String("status")
				rows, err := store.MarketNoteStatuses(ctx, status)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: rows}, nil
			},
		},
		{
			Name: contract.ToolGetMarketNoteUpdates,
			Kind: contract.ToolKindQuery,
			Desc: "List progress comments logged against market notes.",
			Params: map[string]*schema.ParameterInfo{
				"note_text": {Type: schema.String, Desc: "Filter to notes containing this text"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				noteText, _ := args.String("note_text")
				rows, err := store.MarketNoteUpdates(ctx, noteText)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: rows}, nil
			},
		},
		{
			Name:   contract.ToolGetChampions,
			Kind:   contract.ToolKindQuery,
			Desc:   "List champions and their responsibilities.",
			Params: map[string]*schema.ParameterInfo{},
			Invoke: func(ctx context.Context, _ contract.Args) (contract.ToolResult, error) {
				rows, err := store.Champions(ctx)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: rows}, nil
			},
		},
		{
			Name: contract.ToolGetMentees,
			Kind: contract.ToolKindQuery,
			Desc: "List mentees, optionally for one store.",
			Params: map[string]*schema.ParameterInfo{
				"store_nbr": {Type: schema.String, Desc: "Filter by store number"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				storeNbr, _ := args.String("store_nbr")
				rows, err := store.Mentees(ctx, storeNbr)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: rows}, nil
			},
		},
		{
			Name: contract.ToolGetContacts,
			Kind: contract.ToolKindQuery,
			Desc: "Search contacts by name, role or department. Department terms expand through retail aliases.",
			Params: map[string]*schema.ParameterInfo{
				"search_term": {Type: schema.String, Desc: "Name, title, department or keyword"},
				"department":  {Type: schema.String, Desc: "Restrict to one department"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				term, _ := args.String("search_term")
				dept, _ := args.String("department")
				rows, err := store.Contacts(ctx, term, dept)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: rows}, nil
			},
		},
		{
			Name: contract.ToolGetGoldStars,
			Kind: contract.ToolKindQuery,
			Desc: "Get a gold-star week's focus notes and per-store completions. Defaults to the latest week.",
			Params: map[string]*schema.ParameterInfo{
				"week_date":   {Type: schema.String, Desc: "Week start date YYYY-MM-DD"},
				"week_number": {Type: schema.Integer, Desc: "Fiscal week number"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				weekDate, _ := args.String("week_date")
				weekNumber, _ := args.Int("week_number")
				gs, err := store.GoldStars(ctx, weekDate, weekNumber)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: gs}, nil
			},
		},
		{
			Name: contract.ToolGetEnablers,
			Kind: contract.ToolKindQuery,
			Desc: "List enablers with per-store completion counts.",
			Params: map[string]*schema.ParameterInfo{
				"status": {Type: schema.String, Desc: "Filter: idea, slide_made or presented"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				status, _ := args.String("status")
				rows, err := store.Enablers(ctx, status)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: rows}, nil
			},
		},
		{
			Name: contract.ToolGetIssues,
			Kind: contract.ToolKindQuery,
			Desc: "List logged issues and feedback.",
			Params: map[string]*schema.ParameterInfo{
				"status": {Type: schema.String, Desc: "Filter by status, e.g. open"},
				"type":   {Type: schema.String, Desc: "Filter: feature, bug or feedback"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				status, _ := args.String("status")
				issueType, _ := args.String("type")
				rows, err := store.Issues(ctx, status, issueType)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: rows}, nil
			},
		},
		{
			Name: contract.ToolGetTasks,
			Kind: contract.ToolKindQuery,
			Desc: "List tasks. Defaults to everything not yet completed.",
			Params: map[string]*schema.ParameterInfo{
				"status":       {Type: schema.String, Desc: "Filter: new, in_progress, stalled or completed"},
				"assigned_to":  {Type: schema.String, Desc: "Filter by assignee"},
				"store_number": {Type: schema.String, Desc: "Filter by store number"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				status, _ := args.String("status")
				assignedTo, _ := args.String("assigned_to")
				storeNumber, _ := args.String("store_number")
				rows, err := store.Tasks(ctx, status, assignedTo, storeNumber)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: rows}, nil
			},
		},
		{
			Name: contract.ToolGetUserNotes,
			Kind: contract.ToolKindQuery,
			Desc: "Search personal notes by text or folder.",
			Params: map[string]*schema.ParameterInfo{
				"search":      {Type: schema.String, Desc: "Text to search in title and body"},
				"folder_path": {Type: schema.String, Desc: "Restrict to one folder"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				search, _ := args.String("search")
				folder, _ := args.String("folder_path")
				rows, err := store.UserNotes(ctx, search, folder)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: rows}, nil
			},
		},
		{
			Name:   contract.ToolGetSummaryStats,
			Kind:   contract.ToolKindQuery,
			Desc:   "Overall visit statistics: totals, rating mix and recent activity.",
			Params: map[string]*schema.ParameterInfo{},
			Invoke: func(ctx context.Context, _ contract.Args) (contract.ToolResult, error) {
				stats, err := store.Summary(ctx)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: stats}, nil
			},
		},
		{
			Name: contract.ToolGetStoreInformation,
			Kind: contract.ToolKindQuery,
			Desc: "Look up a store's profile: format, location, tiers and manager.",
			Params: map[string]*schema.ParameterInfo{
				"store_number": {Type: schema.String, Desc: "Store number; omit for a fleet sample"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				storeNumber, _ := args.String("store_number")
				rows, err := store.StoreInformation(ctx, storeNumber)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: rows}, nil
			},
		},
		{
			Name: contract.ToolGetAssociateInsights,
			Kind: contract.ToolKindQuery,
			Desc: "List insights logged for an associate.",
			Params: map[string]*schema.ParameterInfo{
				"contact_id": {Type: schema.Integer, Desc: "Contact ID"},
				"name":       {Type: schema.String, Desc: "Associate name"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				contactID, _ := args.Int("contact_id")
				name, _ := args.String("name")
				rows, err := store.AssociateInsights(ctx, int64(contactID), name)
				if err != nil {
					return contract.ToolResult{}, err
				}
				return contract.ToolResult{Data: rows}, nil
			},
		},
	}
}
