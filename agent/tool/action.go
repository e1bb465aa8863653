package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/jaxfield/assistant/agent/contract"
)

var (
	workflowStatuses = []string{"new", "in_progress", "stalled", "completed"}
	issueTypes       = []string{"feature", "bug", "feedback"}
)

func oneOf(value string, allowed []string) bool {
	value = strings.ToLower(value)
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// failed wraps a store error in the uniform failure envelope. Action tools
// never surface a bare error; the caller always gets an ActionResult.
func failed(err error) (contract.ToolResult, error) {
	return contract.ToolResult{Action: contract.ActionFailure(err.Error())}, nil
}

func invalid(reason string) (contract.ToolResult, error) {
	return contract.ToolResult{Action: contract.ActionFailure(reason)}, nil
}

func succeeded(ar *contract.ActionResult) (contract.ToolResult, error) {
	ar.Success = true
	return contract.ToolResult{Action: ar}, nil
}

// actionTools is the ordered mutating collection.
func actionTools(store contract.RecordStore) []*Descriptor {
	return []*Descriptor{
		{
			Name: contract.ToolMarkGoldStarComplete,
			Kind: contract.ToolKindAction,
			Desc: "Mark one gold-star note complete or incomplete for a store.",
			Params: map[string]*schema.ParameterInfo{
				"store_nbr":   {Type: schema.String, Desc: "Store number", Required: true},
				"note_number": {Type: schema.Integer, Desc: "Which note: 1, 2 or 3", Required: true},
				"completed":   {Type: schema.Boolean, Desc: "false to un-complete (default true)"},
				"week_id":     {Type: schema.Integer, Desc: "Week ID; defaults to the current week"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				storeNbr, ok := args.String("store_nbr")
				if !ok {
					return invalid("store_nbr is required")
				}
				noteNumber, _ := args.Int("note_number")
				if noteNumber < 1 || noteNumber > 3 {
					return invalid("note_number must be 1, 2, or 3")
				}
				completed := true
				if v, ok := args.Bool("completed"); ok {
					completed = v
				}
				weekID, _ := args.Int("week_id")

				noteText, err := store.UpsertGoldStarCompletion(ctx, storeNbr, noteNumber, completed, int64(weekID))
				if err != nil {
					return failed(err)
				}
				state := "marked complete"
				if !completed {
					state = "marked incomplete"
				}
				return succeeded(&contract.ActionResult{
					Message: fmt.Sprintf("Gold Star #%d %s for store %s", noteNumber, state, storeNbr),
					Fields: map[string]any{
						"store_nbr":   storeNbr,
						"note_number": noteNumber,
						"note_text":   noteText,
					},
				})
			},
		},
		{
			Name: contract.ToolSaveGoldStarNotes,
			Kind: contract.ToolKindAction,
			Desc: "Save the three gold-star focus notes for the current week.",
			Params: map[string]*schema.ParameterInfo{
				"note_1": {Type: schema.String, Desc: "First focus note", Required: true},
				"note_2": {Type: schema.String, Desc: "Second focus note", Required: true},
				"note_3": {Type: schema.String, Desc: "Third focus note", Required: true},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				note1, _ := args.String("note_1")
				note2, _ := args.String("note_2")
				note3, _ := args.String("note_3")
				if note1 == "" && note2 == "" && note3 == "" {
					return invalid("At least one note is required")
				}
				if err := store.SaveGoldStarNotes(ctx, note1, note2, note3); err != nil {
					return failed(err)
				}
				return succeeded(&contract.ActionResult{
					Message: "Gold star notes saved for this week",
				})
			},
		},
		{
			Name: contract.ToolCreateContact,
			Kind: contract.ToolKindAction,
			Desc: "Create a new contact.",
			Params: map[string]*schema.ParameterInfo{
				"name":       {Type: schema.String, Desc: "Full name", Required: true},
				"title":      {Type: schema.String, Desc: "Job title"},
				"department": {Type: schema.String, Desc: "Department"},
				"reports_to": {Type: schema.String, Desc: "Manager"},
				"phone":      {Type: schema.String, Desc: "Phone number"},
				"email":      {Type: schema.String, Desc: "Email address"},
				"notes":      {Type: schema.String, Desc: "Free-form notes"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				name, ok := args.String("name")
				if !ok {
					return invalid("Name is required")
				}
				in := contract.ContactInput{Name: strings.TrimSpace(name)}
				in.Title, _ = args.String("title")
				in.Department, _ = args.String("department")
				in.ReportsTo, _ = args.String("reports_to")
				in.Phone, _ = args.String("phone")
				in.Email, _ = args.String("email")
				in.Notes, _ = args.String("notes")

				contact, err := store.CreateContact(ctx, in)
				if err != nil {
					return failed(err)
				}
				return succeeded(&contract.ActionResult{
					Message: fmt.Sprintf("Contact '%s' created successfully", contact.Name),
					Entity:  contract.EntityContact,
					Payload: contact,
				})
			},
		},
		{
			Name: contract.ToolDeleteContact,
			Kind: contract.ToolKindAction,
			Desc: "Delete a contact by ID or name.",
			Params: map[string]*schema.ParameterInfo{
				"contact_id": {Type: schema.Integer, Desc: "Contact ID"},
				"name":       {Type: schema.String, Desc: "Exact contact name"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				contactID, _ := args.Int("contact_id")
				name, _ := args.String("name")
				if contactID <= 0 && name == "" {
					return invalid("Either contact_id or name is required")
				}
				deleted, err := store.DeleteContact(ctx, int64(contactID), name)
				if err != nil {
					return failed(err)
				}
				return succeeded(&contract.ActionResult{
					Message: fmt.Sprintf("Contact '%s' deleted", deleted),
				})
			},
		},
		{
			Name: contract.ToolCreateTask,
			Kind: contract.ToolKindAction,
			Desc: "Create a task.",
			Params: map[string]*schema.ParameterInfo{
				"content":      {Type: schema.String, Desc: "Task description", Required: true},
				"priority":     {Type: schema.Integer, Desc: "0=none, 1=low, 2=medium, 3=high"},
				"assigned_to":  {Type: schema.String, Desc: "Assignee"},
				"due_date":     {Type: schema.String, Desc: "Due date YYYY-MM-DD"},
				"store_number": {Type: schema.String, Desc: "Associated store"},
				"list_name":    {Type: schema.String, Desc: "Task list (default Inbox)"},
				"notes":        {Type: schema.String, Desc: "Additional notes"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				content, ok := args.String("content")
				if !ok || strings.TrimSpace(content) == "" {
					return invalid("Task content is required")
				}
				in := contract.TaskInput{Content: strings.TrimSpace(content)}
				in.Priority, _ = args.Int("priority")
				in.AssignedTo, _ = args.String("assigned_to")
				in.DueDate, _ = args.String("due_date")
				in.StoreNumber, _ = args.String("store_number")
				in.ListName, _ = args.String("list_name")
				in.Notes, _ = args.String("notes")

				task, err := store.CreateTask(ctx, in)
				if err != nil {
					return failed(err)
				}
				preview := in.Content
				if len(preview) > 50 {
					preview = preview[:50] + "..."
				}
				return succeeded(&contract.ActionResult{
					Message: "Task created: " + preview,
					Entity:  contract.EntityTask,
					Payload: task,
				})
			},
		},
		{
			Name: contract.ToolUpdateTaskStatus,
			Kind: contract.ToolKindAction,
			Desc: "Update a task's status.",
			Params: map[string]*schema.ParameterInfo{
				"task_id": {Type: schema.Integer, Desc: "Task ID", Required: true},
				"status":  {Type: schema.String, Desc: "new, in_progress, stalled or completed", Required: true},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				taskID, _ := args.Int("task_id")
				status, _ := args.String("status")
				if !oneOf(status, workflowStatuses) {
					return invalid("Invalid status. Must be one of: " + strings.Join(workflowStatuses, ", "))
				}
				task, err := store.UpdateTaskStatus(ctx, int64(taskID), strings.ToLower(status))
				if err != nil {
					return failed(err)
				}
				return succeeded(&contract.ActionResult{
					Message: fmt.Sprintf("Task #%d status updated to '%s'", task.ID, task.Status),
					Entity:  contract.EntityTask,
					Payload: task,
				})
			},
		},
		{
			Name: contract.ToolDeleteTask,
			Kind: contract.ToolKindAction,
			Desc: "Delete a task by ID.",
			Params: map[string]*schema.ParameterInfo{
				"task_id": {Type: schema.Integer, Desc: "Task ID", Required: true},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				taskID, ok := args.Int("task_id")
				if !ok || taskID <= 0 {
					return invalid("task_id is required")
				}
				if _, err := store.DeleteTask(ctx, int64(taskID)); err != nil {
					return failed(err)
				}
				return succeeded(&contract.ActionResult{
					Message: fmt.Sprintf("Task #%d deleted", taskID),
				})
			},
		},
		{
			Name: contract.ToolUpdateMarketNoteStatus,
			Kind: contract.ToolKindAction,
			Desc: "Set the workflow status of a market note.",
			Params: map[string]*schema.ParameterInfo{
				"visit_id":  {Type: schema.Integer, Desc: "Visit the note belongs to", Required: true},
				"note_text": {Type: schema.String, Desc: "Exact note text", Required: true},
				"status":    {Type: schema.String, Desc: "new, in_progress, stalled or completed", Required: true},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				visitID, ok := args.Int("visit_id")
				if !ok || visitID <= 0 {
					return invalid("visit_id is required")
				}
				noteText, ok := args.String("note_text")
				if !ok {
					return invalid("note_text is required")
				}
				status, _ := args.String("status")
				if !oneOf(status, workflowStatuses) {
					return invalid("Invalid status. Must be one of: " + strings.Join(workflowStatuses, ", "))
				}
				if err := store.UpsertMarketNoteStatus(ctx, int64(visitID), noteText, strings.ToLower(status)); err != nil {
					return failed(err)
				}
				return succeeded(&contract.ActionResult{
					Message: fmt.Sprintf("Market note status updated to '%s'", strings.ToLower(status)),
					Fields:  map[string]any{"visit_id": visitID, "note_text": noteText},
				})
			},
		},
		{
			Name: contract.ToolAssignMarketNote,
			Kind: contract.ToolKindAction,
			Desc: "Assign a market note to a person.",
			Params: map[string]*schema.ParameterInfo{
				"visit_id":    {Type: schema.Integer, Desc: "Visit the note belongs to", Required: true},
				"note_text":   {Type: schema.String, Desc: "Exact note text", Required: true},
				"assigned_to": {Type: schema.String, Desc: "Assignee name", Required: true},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				visitID, ok := args.Int("visit_id")
				if !ok || visitID <= 0 {
					return invalid("visit_id is required")
				}
				noteText, ok := args.String("note_text")
				if !ok {
					return invalid("note_text is required")
				}
				assignedTo, ok := args.String("assigned_to")
				if !ok {
					return invalid("assigned_to is required")
				}
				if err := store.AssignMarketNote(ctx, int64(visitID), noteText, assignedTo); err != nil {
					return failed(err)
				}
				return succeeded(&contract.ActionResult{
					Message: "Market note assigned to " + assignedTo,
					Fields:  map[string]any{"visit_id": visitID, "note_text": noteText},
				})
			},
		},
		{
			Name: contract.ToolAddMarketNoteComment,
			Kind: contract.ToolKindAction,
			Desc: "Log a progress comment against a market note.",
			Params: map[string]*schema.ParameterInfo{
				"visit_id":  {Type: schema.Integer, Desc: "Visit the note belongs to", Required: true},
				"note_text": {Type: schema.String, Desc: "Exact note text", Required: true},
				"comment":   {Type: schema.String, Desc: "Progress comment", Required: true},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				visitID, ok := args.Int("visit_id")
				if !ok || visitID <= 0 {
					return invalid("visit_id is required")
				}
				noteText, ok := args.String("note_text")
				if !ok {
					return invalid("note_text is required")
				}
				comment, ok := args.String("comment")
				if !ok || strings.TrimSpace(comment) == "" {
					return invalid("Comment text is required")
				}
				if _, err := store.AddMarketNoteUpdate(ctx, int64(visitID), noteText, strings.TrimSpace(comment)); err != nil {
					return failed(err)
				}
				return succeeded(&contract.ActionResult{
					Message: "Comment added to market note",
					Fields:  map[string]any{"visit_id": visitID, "note_text": noteText},
				})
			},
		},
		{
			Name: contract.ToolCreateChampion,
			Kind: contract.ToolKindAction,
			Desc: "Add a champion with a responsibility area.",
			Params: map[string]*schema.ParameterInfo{
				"name":           {Type: schema.String, Desc: "Champion's name", Required: true},
				"responsibility": {Type: schema.String, Desc: "What they own", Required: true},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				name, ok := args.String("name")
				if !ok {
					return invalid("Name is required")
				}
				responsibility, ok := args.String("responsibility")
				if !ok {
					return invalid("Responsibility is required")
				}
				champion, err := store.CreateChampion(ctx, name, responsibility)
				if err != nil {
					return failed(err)
				}
				return succeeded(&contract.ActionResult{
					Message: fmt.Sprintf("Champion '%s' created for %s", champion.Name, champion.Responsibility),
					Entity:  contract.EntityChampion,
					Payload: champion,
				})
			},
		},
		{
			Name: contract.ToolDeleteChampion,
			Kind: contract.ToolKindAction,
			Desc: "Delete a champion by ID or name.",
			Params: map[string]*schema.ParameterInfo{
				"champion_id": {Type: schema.Integer, Desc: "Champion ID"},
				"name":        {Type: schema.String, Desc: "Exact champion name"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				championID, _ := args.Int("champion_id")
				name, _ := args.String("name")
				if championID <= 0 && name == "" {
					return invalid("Either champion_id or name is required")
				}
				deleted, err := store.DeleteChampion(ctx, int64(championID), name)
				if err != nil {
					return failed(err)
				}
				return succeeded(&contract.ActionResult{
					Message: fmt.Sprintf("Champion '%s' deleted", deleted),
				})
			},
		},
		{
			Name: contract.ToolCreateMentee,
			Kind: contract.ToolKindAction,
			Desc: "Add a mentee to the mentorship circle.",
			Params: map[string]*schema.ParameterInfo{
				"name":        {Type: schema.String, Desc: "Mentee's name", Required: true},
				"store_nbr":   {Type: schema.String, Desc: "Home store"},
				"position":    {Type: schema.String, Desc: "Role"},
				"cell_number": {Type: schema.String, Desc: "Cell number"},
				"notes":       {Type: schema.String, Desc: "Free-form notes"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				name, ok := args.String("name")
				if !ok {
					return invalid("Name is required")
				}
				in := contract.MenteeInput{Name: strings.TrimSpace(name)}
				in.StoreNbr, _ = args.String("store_nbr")
				in.Position, _ = args.String("position")
				in.CellNumber, _ = args.String("cell_number")
				in.Notes, _ = args.String("notes")

				mentee, err := store.CreateMentee(ctx, in)
				if err != nil {
					return failed(err)
				}
				return succeeded(&contract.ActionResult{
					Message: fmt.Sprintf("Mentee '%s' added to your circle", mentee.Name),
					Entity:  contract.EntityMentee,
					Payload: mentee,
				})
			},
		},
		{
			Name: contract.ToolDeleteMentee,
			Kind: contract.ToolKindAction,
			Desc: "Remove a mentee by ID or name.",
			Params: map[string]*schema.ParameterInfo{
				"mentee_id": {Type: schema.Integer, Desc: "Mentee ID"},
				"name":      {Type: schema.String, Desc: "Exact mentee name"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				menteeID, _ := args.Int("mentee_id")
				name, _ := args.String("name")
				if menteeID <= 0 && name == "" {
					return invalid("Either mentee_id or name is required")
				}
				deleted, err := store.DeleteMentee(ctx, int64(menteeID), name)
				if err != nil {
					return failed(err)
				}
				return succeeded(&contract.ActionResult{
					Message: fmt.Sprintf("Mentee '%s' removed from your circle", deleted),
				})
			},
		},
		{
			Name: contract.ToolMarkEnablerComplete,
			Kind: contract.ToolKindAction,
			Desc: "Mark an enabler complete or incomplete for a store.",
			Params: map[string]*schema.ParameterInfo{
				"enabler_id": {Type: schema.Integer, Desc: "Enabler ID", Required: true},
				"store_nbr":  {Type: schema.String, Desc: "Store number", Required: true},
				"completed":  {Type: schema.Boolean, Desc: "false to un-complete (default true)"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				enablerID, ok := args.Int("enabler_id")
				if !ok || enablerID <= 0 {
					return invalid("enabler_id is required")
				}
				storeNbr, ok := args.String("store_nbr")
				if !ok {
					return invalid("store_nbr is required")
				}
				completed := true
				if v, ok := args.Bool("completed"); ok {
					completed = v
				}
				title, err := store.UpsertEnablerCompletion(ctx, int64(enablerID), storeNbr, completed)
				if err != nil {
					return failed(err)
				}
				state := "marked complete"
				if !completed {
					state = "marked incomplete"
				}
				return succeeded(&contract.ActionResult{
					Message: fmt.Sprintf("Enabler '%s' %s for store %s", title, state, storeNbr),
					Fields:  map[string]any{"store_nbr": storeNbr},
				})
			},
		},
		{
			Name: contract.ToolCreateEnabler,
			Kind: contract.ToolKindAction,
			Desc: "Create an enabler.",
			Params: map[string]*schema.ParameterInfo{
				"title":       {Type: schema.String, Desc: "Enabler title", Required: true},
				"description": {Type: schema.String, Desc: "Detail"},
				"source":      {Type: schema.String, Desc: "Where it came from"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				title, ok := args.String("title")
				if !ok || strings.TrimSpace(title) == "" {
					return invalid("Title is required")
				}
				description, _ := args.String("description")
				source, _ := args.String("source")
				enabler, err := store.CreateEnabler(ctx, strings.TrimSpace(title), description, source)
				if err != nil {
					return failed(err)
				}
				return succeeded(&contract.ActionResult{
					Message: fmt.Sprintf("Enabler '%s' created", enabler.Title),
					Entity:  contract.EntityEnabler,
					Payload: enabler,
				})
			},
		},
		{
			Name: contract.ToolCreateIssue,
			Kind: contract.ToolKindAction,
			Desc: "Log an issue: a feature request, bug or piece of feedback.",
			Params: map[string]*schema.ParameterInfo{
				"issue_type":  {Type: schema.String, Desc: "feature, bug or feedback", Required: true},
				"title":       {Type: schema.String, Desc: "Issue title", Required: true},
				"description": {Type: schema.String, Desc: "Detailed description"},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				issueType, _ := args.String("issue_type")
				if !oneOf(issueType, issueTypes) {
					return invalid("Invalid type. Must be one of: " + strings.Join(issueTypes, ", "))
				}
				title, ok := args.String("title")
				if !ok || strings.TrimSpace(title) == "" {
					return invalid("Title is required")
				}
				description, _ := args.String("description")
				issue, err := store.CreateIssue(ctx, strings.ToLower(issueType), strings.TrimSpace(title), description)
				if err != nil {
					return failed(err)
				}
				label := strings.ToUpper(issue.Type[:1]) + issue.Type[1:]
				return succeeded(&contract.ActionResult{
					Message: fmt.Sprintf("%s '%s' logged", label, issue.Title),
					Entity:  contract.EntityIssue,
					Payload: issue,
				})
			},
		},
		{
			Name: contract.ToolLogAssociateInsight,
			Kind: contract.ToolKindAction,
			Desc: "Log something an associate said against their contact record.",
			Params: map[string]*schema.ParameterInfo{
				"contact_id": {Type: schema.Integer, Desc: "Contact ID", Required: true},
				"insight":    {Type: schema.String, Desc: "What they said", Required: true},
			},
			Invoke: func(ctx context.Context, args contract.Args) (contract.ToolResult, error) {
				contactID, ok := args.Int("contact_id")
				if !ok || contactID <= 0 {
					return invalid("contact_id is required")
				}
				insight, ok := args.String("insight")
				if !ok || strings.TrimSpace(insight) == "" {
					return invalid("Insight text is required")
				}
				if err := store.LogAssociateInsight(ctx, int64(contactID), strings.TrimSpace(insight)); err != nil {
					return failed(err)
				}
				return succeeded(&contract.ActionResult{
					Message: "Insight logged",
					Fields:  map[string]any{"contact_id": contactID},
				})
			},
		},
	}
}
