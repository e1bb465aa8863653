package tool

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jaxfield/assistant/agent/contract"
)

// fakeStore implements contract.RecordStore with canned rows and records the
// arguments of the calls the tests care about.
type fakeStore struct {
	visits    []contract.Visit
	visit     *contract.Visit
	champions []contract.Champion
	contacts  []contract.Contact
	contact   *contract.Contact
	task      *contract.Task
	champion  *contract.Champion
	mentee    *contract.Mentee
	enabler   *contract.Enabler
	issue     *contract.Issue

	err error

	searchCalls   []visitSearchCall
	comparedNbrs  []string
	contactInputs []contract.ContactInput
	goldStarCalls []goldStarCall
}

type visitSearchCall struct {
	storeNbr string
	limit    int
	rating   string
}

type goldStarCall struct {
	storeNbr   string
	noteNumber int
	completed  bool
}

func (f *fakeStore) SearchVisits(ctx context.Context, storeNbr string, limit int, rating string) ([]contract.Visit, error) {
	f.searchCalls = append(f.searchCalls, visitSearchCall{storeNbr: storeNbr, limit: limit, rating: rating})
	return f.visits, f.err
}

func (f *fakeStore) VisitDetails(ctx context.Context, visitID int64) (*contract.Visit, error) {
	return f.visit, f.err
}

func (f *fakeStore) AnalyzeTrends(ctx context.Context, storeNbr string, days int) (*contract.TrendReport, error) {
	return &contract.TrendReport{StoreNbr: storeNbr, PeriodDays: days}, f.err
}

func (f *fakeStore) CompareStores(ctx context.Context, storeNbrs []string) ([]contract.StoreComparison, error) {
	f.comparedNbrs = append([]string(nil), storeNbrs...)
	return nil, f.err
}

func (f *fakeStore) SearchNotes(ctx context.Context, keyword string, limit int) ([]contract.NoteHit, error) {
	return nil, f.err
}

func (f *fakeStore) MarketInsights(ctx context.Context, days int) (*contract.MarketInsights, error) {
	return &contract.MarketInsights{PeriodDays: days}, f.err
}

func (f *fakeStore) MarketNoteStatuses(ctx context.Context, status string) ([]contract.MarketNoteStatus, error) {
	return nil, f.err
}

func (f *fakeStore) MarketNoteUpdates(ctx context.Context, noteText string) ([]contract.MarketNoteUpdate, error) {
	return nil, f.err
}

func (f *fakeStore) Champions(ctx context.Context) ([]contract.Champion, error) {
	return f.champions, f.err
}

func (f *fakeStore) Mentees(ctx context.Context, storeNbr string) ([]contract.Mentee, error) {
	return nil, f.err
}

func (f *fakeStore) Contacts(ctx context.Context, searchTerm, department string) ([]contract.Contact, error) {
	return f.contacts, f.err
}

func (f *fakeStore) AssociateInsights(ctx context.Context, contactID int64, name string) ([]contract.AssociateInsight, error) {
	return nil, f.err
}

func (f *fakeStore) GoldStars(ctx context.Context, weekDate string, weekNumber int) (*contract.GoldStars, error) {
	return &contract.GoldStars{WeekNumber: weekNumber}, f.err
}

func (f *fakeStore) Enablers(ctx context.Context, status string) ([]contract.Enabler, error) {
	return nil, f.err
}

func (f *fakeStore) Issues(ctx context.Context, status, issueType string) ([]contract.Issue, error) {
	return nil, f.err
}

func (f *fakeStore) Tasks(ctx context.Context, status, assignedTo, storeNumber string) ([]contract.Task, error) {
	return nil, f.err
}

func (f *fakeStore) UserNotes(ctx context.Context, search, folderPath string) ([]contract.UserNote, error) {
	return nil, f.err
}

func (f *fakeStore) Summary(ctx context.Context) (*contract.SummaryStats, error) {
	return &contract.SummaryStats{}, f.err
}

func (f *fakeStore) StoreInformation(ctx context.Context, storeNumber string) ([]contract.StoreInfo, error) {
	return nil, f.err
}

func (f *fakeStore) UpsertGoldStarCompletion(ctx context.Context, storeNbr string, noteNumber int, completed bool, weekID int64) (string, error) {
	f.goldStarCalls = append(f.goldStarCalls, goldStarCall{storeNbr: storeNbr, noteNumber: noteNumber, completed: completed})
	return "Zone the action alley", f.err
}

func (f *fakeStore) SaveGoldStarNotes(ctx context.Context, note1, note2, note3 string) error {
	return f.err
}

func (f *fakeStore) CreateContact(ctx context.Context, in contract.ContactInput) (*contract.Contact, error) {
	f.contactInputs = append(f.contactInputs, in)
	return f.contact, f.err
}

func (f *fakeStore) DeleteContact(ctx context.Context, contactID int64, name string) (string, error) {
	return name, f.err
}

func (f *fakeStore) LogAssociateInsight(ctx context.Context, contactID int64, insight string) error {
	return f.err
}

func (f *fakeStore) CreateTask(ctx context.Context, in contract.TaskInput) (*contract.Task, error) {
	return f.task, f.err
}

func (f *fakeStore) UpdateTaskStatus(ctx context.Context, taskID int64, status string) (*contract.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &contract.Task{ID: taskID, Content: "call the DC", Status: status}, nil
}

func (f *fakeStore) DeleteTask(ctx context.Context, taskID int64) (string, error) {
	return "call the DC", f.err
}

func (f *fakeStore) UpsertMarketNoteStatus(ctx context.Context, visitID int64, noteText, status string) error {
	return f.err
}

func (f *fakeStore) AssignMarketNote(ctx context.Context, visitID int64, noteText, assignedTo string) error {
	return f.err
}

func (f *fakeStore) AddMarketNoteUpdate(ctx context.Context, visitID int64, noteText, comment string) (int64, error) {
	return 1, f.err
}

func (f *fakeStore) CreateChampion(ctx context.Context, name, responsibility string) (*contract.Champion, error) {
	if f.champion != nil {
		return f.champion, f.err
	}
	return &contract.Champion{ID: 1, Name: name, Responsibility: responsibility}, f.err
}

func (f *fakeStore) DeleteChampion(ctx context.Context, championID int64, name string) (string, error) {
	return name, f.err
}

func (f *fakeStore) CreateMentee(ctx context.Context, in contract.MenteeInput) (*contract.Mentee, error) {
	if f.mentee != nil {
		return f.mentee, f.err
	}
	return &contract.Mentee{ID: 1, Name: in.Name}, f.err
}

func (f *fakeStore) DeleteMentee(ctx context.Context, menteeID int64, name string) (string, error) {
	return name, f.err
}

func (f *fakeStore) UpsertEnablerCompletion(ctx context.Context, enablerID int64, storeNbr string, completed bool) (string, error) {
	return "Feature wall resets", f.err
}

func (f *fakeStore) CreateEnabler(ctx context.Context, title, description, source string) (*contract.Enabler, error) {
	if f.enabler != nil {
		return f.enabler, f.err
	}
	return &contract.Enabler{ID: 1, Title: title, Status: "idea"}, f.err
}

func (f *fakeStore) CreateIssue(ctx context.Context, issueType, title, description string) (*contract.Issue, error) {
	if f.issue != nil {
		return f.issue, f.err
	}
	return &contract.Issue{ID: 9, Type: issueType, Title: title, Status: "open"}, f.err
}

var _ contract.RecordStore = (*fakeStore)(nil)

func TestRegistryCatalogComplete(t *testing.T) {
	t.Parallel()

	r := New(&fakeStore{})
	if got := len(r.QueryTools()); got != 19 {
		t.Fatalf("query tool count = %d, want 19", got)
	}
	if got := len(r.ActionTools()); got != 18 {
		t.Fatalf("action tool count = %d, want 18", got)
	}

	all := []contract.ToolName{
		contract.ToolSearchVisits, contract.ToolGetVisitDetails, contract.ToolAnalyzeTrends,
		contract.ToolCompareStores, contract.ToolSearchNotes, contract.ToolGetMarketInsights,
		contract.ToolGetMarketNoteStatus, contract.ToolGetMarketNoteUpdates, contract.ToolGetChampions,
		contract.ToolGetMentees, contract.ToolGetContacts, contract.ToolGetGoldStars,
		contract.ToolGetEnablers, contract.ToolGetIssues, contract.ToolGetTasks,
		contract.ToolGetUserNotes, contract.ToolGetSummaryStats, contract.ToolGetStoreInformation,
		contract.ToolGetAssociateInsights,
		contract.ToolMarkGoldStarComplete, contract.ToolSaveGoldStarNotes, contract.ToolCreateContact,
		contract.ToolDeleteContact, contract.ToolCreateTask, contract.ToolUpdateTaskStatus,
		contract.ToolDeleteTask, contract.ToolUpdateMarketNoteStatus, contract.ToolAssignMarketNote,
		contract.ToolAddMarketNoteComment, contract.ToolCreateChampion, contract.ToolDeleteChampion,
		contract.ToolCreateMentee, contract.ToolDeleteMentee, contract.ToolMarkEnablerComplete,
		contract.ToolCreateEnabler, contract.ToolCreateIssue, contract.ToolLogAssociateInsight,
	}
	for _, name := range all {
		d, ok := r.Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%s) missing", name)
		}
		if d.Name != name {
			t.Fatalf("Lookup(%s) returned descriptor named %s", name, d.Name)
		}
	}
}

func TestRegistryToolInfos(t *testing.T) {
	t.Parallel()

	r := New(&fakeStore{})
	infos := r.ToolInfos()
	if len(infos) != 37 {
		t.Fatalf("tool info count = %d, want 37", len(infos))
	}
	seen := map[string]bool{}
	for _, info := range infos {
		if info.Name == "" || info.Desc == "" {
			t.Fatalf("tool info missing name or description: %+v", info)
		}
		if seen[info.Name] {
			t.Fatalf("duplicate tool info %q", info.Name)
		}
		seen[info.Name] = true
	}
}

func TestInvokeUnknownTool(t *testing.T) {
	t.Parallel()

	r := New(&fakeStore{})
	_, err := r.Invoke(context.Background(), "launch_rocket", contract.Args{})
	if !errors.Is(err, contract.ErrToolNotFound) {
		t.Fatalf("err = %v, want ErrToolNotFound", err)
	}
}

func TestSearchVisitsPassesArgs(t *testing.T) {
	t.Parallel()

	fake := &fakeStore{visits: []contract.Visit{{StoreNbr: "1234", Rating: "Green"}}}
	r := New(fake)

	result, err := r.Invoke(context.Background(), contract.ToolSearchVisits, contract.Args{
		"store_nbr": "1234", "limit": 1, "rating": "Green",
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if len(fake.searchCalls) != 1 {
		t.Fatalf("search calls = %d, want 1", len(fake.searchCalls))
	}
	call := fake.searchCalls[0]
	if call.storeNbr != "1234" || call.limit != 1 || call.rating != "Green" {
		t.Fatalf("unexpected call %+v", call)
	}
	rows, ok := result.Data.([]contract.Visit)
	if !ok || len(rows) != 1 {
		t.Fatalf("unexpected data %#v", result.Data)
	}
}

func TestCompareStoresCoercesJSONArray(t *testing.T) {
	t.Parallel()

	fake := &fakeStore{}
	r := New(fake)

	// Decoded agent tool-call JSON arrives as []any.
	_, err := r.Invoke(context.Background(), contract.ToolCompareStores, contract.Args{
		"store_nbrs": []any{"1234", "5678"},
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if len(fake.comparedNbrs) != 2 || fake.comparedNbrs[0] != "1234" || fake.comparedNbrs[1] != "5678" {
		t.Fatalf("compared = %v, want [1234 5678]", fake.comparedNbrs)
	}
}

func TestQueryToolPropagatesStoreError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	r := New(&fakeStore{err: boom})

	_, err := r.Invoke(context.Background(), contract.ToolGetChampions, contract.Args{})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the store error", err)
	}
}

func TestMarkGoldStarCompleteValidation(t *testing.T) {
	t.Parallel()

	r := New(&fakeStore{})

	result, err := r.Invoke(context.Background(), contract.ToolMarkGoldStarComplete, contract.Args{
		"store_nbr": "1234", "note_number": 5,
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if result.Action == nil || result.Action.Success {
		t.Fatalf("result = %+v, want validation failure", result)
	}
	if result.Action.Error != "note_number must be 1, 2, or 3" {
		t.Fatalf("error = %q", result.Action.Error)
	}
}

func TestMarkGoldStarCompleteSuccess(t *testing.T) {
	t.Parallel()

	fake := &fakeStore{}
	r := New(fake)

	result, err := r.Invoke(context.Background(), contract.ToolMarkGoldStarComplete, contract.Args{
		"store_nbr": "4455", "note_number": 2,
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if result.Action == nil || !result.Action.Success {
		t.Fatalf("result = %+v, want success", result)
	}
	if result.Action.Message != "Gold Star #2 marked complete for store 4455" {
		t.Fatalf("message = %q", result.Action.Message)
	}
	if len(fake.goldStarCalls) != 1 || !fake.goldStarCalls[0].completed {
		t.Fatalf("calls = %+v", fake.goldStarCalls)
	}
}

func TestUpdateTaskStatusRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	r := New(&fakeStore{})
	result, err := r.Invoke(context.Background(), contract.ToolUpdateTaskStatus, contract.Args{
		"task_id": 7, "status": "paused",
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if result.Action == nil || result.Action.Success {
		t.Fatalf("result = %+v, want failure", result)
	}
	if !strings.Contains(result.Action.Error, "Must be one of") {
		t.Fatalf("error = %q", result.Action.Error)
	}
}

func TestCreateIssueRejectsUnknownType(t *testing.T) {
	t.Parallel()

	r := New(&fakeStore{})
	result, err := r.Invoke(context.Background(), contract.ToolCreateIssue, contract.Args{
		"issue_type": "complaint", "title": "checkout lines",
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if result.Action == nil || result.Action.Success {
		t.Fatalf("result = %+v, want failure", result)
	}
}

func TestCreateContactSuccess(t *testing.T) {
	t.Parallel()

	title := "Market Manager"
	fake := &fakeStore{contact: &contract.Contact{ID: 3, Name: "John Smith", Title: &title}}
	r := New(fake)

	result, err := r.Invoke(context.Background(), contract.ToolCreateContact, contract.Args{
		"name": "  John Smith  ", "title": "Market Manager",
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if result.Action == nil || !result.Action.Success {
		t.Fatalf("result = %+v, want success", result)
	}
	if result.Action.Message != "Contact 'John Smith' created successfully" {
		t.Fatalf("message = %q", result.Action.Message)
	}
	if result.Action.Entity != contract.EntityContact {
		t.Fatalf("entity = %q, want contact", result.Action.Entity)
	}
	if len(fake.contactInputs) != 1 || fake.contactInputs[0].Name != "John Smith" {
		t.Fatalf("inputs = %+v, want trimmed name", fake.contactInputs)
	}
}

func TestActionStoreErrorBecomesFailureEnvelope(t *testing.T) {
	t.Parallel()

	r := New(&fakeStore{err: contract.ErrNotFound})
	result, err := r.Invoke(context.Background(), contract.ToolDeleteTask, contract.Args{"task_id": 99})
	if err != nil {
		t.Fatalf("Invoke() error = %v, action tools must not surface errors", err)
	}
	if result.Action == nil || result.Action.Success {
		t.Fatalf("result = %+v, want failure envelope", result)
	}
	if !strings.Contains(result.Action.Error, "record not found") {
		t.Fatalf("error = %q", result.Action.Error)
	}
}

func TestDeleteContactRequiresIdentifier(t *testing.T) {
	t.Parallel()

	r := New(&fakeStore{})
	result, err := r.Invoke(context.Background(), contract.ToolDeleteContact, contract.Args{})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if result.Action == nil || result.Action.Success {
		t.Fatalf("result = %+v, want failure", result)
	}
	if result.Action.Error != "Either contact_id or name is required" {
		t.Fatalf("error = %q", result.Action.Error)
	}
}

func TestCreateIssueCapitalizesTypeInMessage(t *testing.T) {
	t.Parallel()

	r := New(&fakeStore{})
	result, err := r.Invoke(context.Background(), contract.ToolCreateIssue, contract.Args{
		"issue_type": "bug", "title": "search is slow",
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if result.Action == nil || !result.Action.Success {
		t.Fatalf("result = %+v, want success", result)
	}
	if result.Action.Message != "Bug 'search is slow' logged" {
		t.Fatalf("message = %q", result.Action.Message)
	}
}
