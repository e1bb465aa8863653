package contract

import "context"

// VisitStore reads visit rows and visit-level aggregates.
type VisitStore interface {
	SearchVisits(ctx context.Context, storeNbr string, limit int, rating string) ([]Visit, error)
	VisitDetails(ctx context.Context, visitID int64) (*Visit, error)
	AnalyzeTrends(ctx context.Context, storeNbr string, days int) (*TrendReport, error)
	CompareStores(ctx context.Context, storeNbrs []string) ([]StoreComparison, error)
}

// NoteStore reads visit notes and the market-note tracking tables.
type NoteStore interface {
	SearchNotes(ctx context.Context, keyword string, limit int) ([]NoteHit, error)
	MarketInsights(ctx context.Context, days int) (*MarketInsights, error)
	MarketNoteStatuses(ctx context.Context, status string) ([]MarketNoteStatus, error)
	MarketNoteUpdates(ctx context.Context, noteText string) ([]MarketNoteUpdate, error)
}

// TeamStore reads champions, mentees, contacts and associate insights.
type TeamStore interface {
	Champions(ctx context.Context) ([]Champion, error)
	Mentees(ctx context.Context, storeNbr string) ([]Mentee, error)
	// Contacts matches name/title/department/reports_to/notes against every
	// alias variant of searchTerm (plural folding + retail department map).
	Contacts(ctx context.Context, searchTerm, department string) ([]Contact, error)
	AssociateInsights(ctx context.Context, contactID int64, name string) ([]AssociateInsight, error)
}

// TrackingStore reads gold stars, enablers, issues, tasks and personal notes.
type TrackingStore interface {
	GoldStars(ctx context.Context, weekDate string, weekNumber int) (*GoldStars, error)
	Enablers(ctx context.Context, status string) ([]Enabler, error)
	Issues(ctx context.Context, status, issueType string) ([]Issue, error)
	Tasks(ctx context.Context, status, assignedTo, storeNumber string) ([]Task, error)
	UserNotes(ctx context.Context, search, folderPath string) ([]UserNote, error)
	Summary(ctx context.Context) (*SummaryStats, error)
	StoreInformation(ctx context.Context, storeNumber string) ([]StoreInfo, error)
}

type ContactInput struct {
	Name       string
	Title      string
	Department string
	ReportsTo  string
	Phone      string
	Email      string
	Notes      string
}

type TaskInput struct {
	Content     string
	Priority    int
	AssignedTo  string
	DueDate     string
	StoreNumber string
	ListName    string
	Notes       string
}

type MenteeInput struct {
	Name       string
	StoreNbr   string
	Position   string
	CellNumber string
	Notes      string
}

// MutationStore is the write surface. Every method runs in a single
// transaction; conflict-prone completion upserts resolve in one statement.
// Not-found conditions come back as ErrNotFound, never as a panic or a
// silent no-op.
type MutationStore interface {
	UpsertGoldStarCompletion(ctx context.Context, storeNbr string, noteNumber int, completed bool, weekID int64) (noteText string, err error)
	SaveGoldStarNotes(ctx context.Context, note1, note2, note3 string) error

	CreateContact(ctx context.Context, in ContactInput) (*Contact, error)
	DeleteContact(ctx context.Context, contactID int64, name string) (deletedName string, err error)
	LogAssociateInsight(ctx context.Context, contactID int64, insight string) error

	CreateTask(ctx context.Context, in TaskInput) (*Task, error)
	UpdateTaskStatus(ctx context.Context, taskID int64, status string) (*Task, error)
	DeleteTask(ctx context.Context, taskID int64) (content string, err error)

	UpsertMarketNoteStatus(ctx context.Context, visitID int64, noteText, status string) error
	AssignMarketNote(ctx context.Context, visitID int64, noteText, assignedTo string) error
	AddMarketNoteUpdate(ctx context.Context, visitID int64, noteText, comment string) (updateID int64, err error)

	CreateChampion(ctx context.Context, name, responsibility string) (*Champion, error)
	DeleteChampion(ctx context.Context, championID int64, name string) (deletedName string, err error)

	CreateMentee(ctx context.Context, in MenteeInput) (*Mentee, error)
	DeleteMentee(ctx context.Context, menteeID int64, name string) (deletedName string, err error)

	UpsertEnablerCompletion(ctx context.Context, enablerID int64, storeNbr string, completed bool) (title string, err error)
	CreateEnabler(ctx context.Context, title, description, source string) (*Enabler, error)

	CreateIssue(ctx context.Context, issueType, title, description string) (*Issue, error)
}

// RecordStore is the full collaborator surface the tool registry is built
// over.
type RecordStore interface {
	VisitStore
	NoteStore
	TeamStore
	TrackingStore
	MutationStore
}

// Completer is the plain text-completion mode of the generative LLM,
// used by the response formatter. Available is expected to cache its probe
// for a bounded period.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Available(ctx context.Context) bool
}

// ToolAgent is the delegated tool-calling mode: the model picks and runs
// tools itself and returns the finished reply text.
type ToolAgent interface {
	Answer(ctx context.Context, message string) (string, error)
}
