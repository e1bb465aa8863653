package store

import (
	"time"

	"github.com/uptrace/bun"
)

// Row models. Tables come from the original tracker schema; the quoted
// "storeNbr" column on store_visits is historical and kept as-is.

type visitRow struct {
	bun.BaseModel `bun:"table:store_visits,alias:v"`

	ID             int64     `bun:"id,pk,autoincrement"`
	StoreNbr       string    `bun:"\"storeNbr\""`
	CalendarDate   time.Time `bun:"calendar_date"`
	Rating         string    `bun:"rating"`
	SalesCompYest  *float64  `bun:"sales_comp_yest"`
	SalesCompWTD   *float64  `bun:"sales_comp_wtd"`
	SalesCompMTD   *float64  `bun:"sales_comp_mtd"`
	SalesIndexYest *float64  `bun:"sales_index_yest"`
	SalesIndexWTD  *float64  `bun:"sales_index_wtd"`
	SalesIndexMTD  *float64  `bun:"sales_index_mtd"`
	VizPick        *float64  `bun:"vizpick"`
	Overstock      *float64  `bun:"overstock"`
	FTPR           *float64  `bun:"ftpr"`
}

// visitNoteRow is shared by the four note tables via ModelTableExpr.
type visitNoteRow struct {
	ID       int64  `bun:"id,pk,autoincrement"`
	VisitID  int64  `bun:"visit_id"`
	NoteText string `bun:"note_text"`
	Sequence int    `bun:"sequence"`
}

type marketNoteCompletionRow struct {
	bun.BaseModel `bun:"table:market_note_completions,alias:mnc"`

	ID          int64      `bun:"id,pk,autoincrement"`
	VisitID     int64      `bun:"visit_id"`
	NoteText    string     `bun:"note_text"`
	Status      *string    `bun:"status"`
	AssignedTo  *string    `bun:"assigned_to"`
	Completed   bool       `bun:"completed"`
	CompletedAt *time.Time `bun:"completed_at"`
	UpdatedAt   time.Time  `bun:"updated_at"`
}

type marketNoteUpdateRow struct {
	bun.BaseModel `bun:"table:market_note_updates,alias:mnu"`

	ID        int64     `bun:"id,pk,autoincrement"`
	VisitID   int64     `bun:"visit_id"`
	NoteText  string    `bun:"note_text"`
	Text      string    `bun:"text"`
	CreatedBy *string   `bun:"created_by"`
	CreatedAt time.Time `bun:"created_at"`
}

type goldStarWeekRow struct {
	bun.BaseModel `bun:"table:gold_star_weeks,alias:gsw"`

	ID            int64      `bun:"id,pk,autoincrement"`
	WeekStartDate time.Time  `bun:"week_start_date"`
	Note1         *string    `bun:"note_1"`
	Note2         *string    `bun:"note_2"`
	Note3         *string    `bun:"note_3"`
	UpdatedAt     *time.Time `bun:"updated_at"`
}

type goldStarCompletionRow struct {
	bun.BaseModel `bun:"table:gold_star_completions,alias:gsc"`

	ID          int64      `bun:"id,pk,autoincrement"`
	WeekID      int64      `bun:"week_id"`
	StoreNbr    string     `bun:"store_nbr"`
	NoteNumber  int        `bun:"note_number"`
	Completed   bool       `bun:"completed"`
	CompletedAt *time.Time `bun:"completed_at"`
}

type championRow struct {
	bun.BaseModel `bun:"table:champions,alias:ch"`

	ID             int64     `bun:"id,pk,autoincrement"`
	Name           string    `bun:"name"`
	Responsibility string    `bun:"responsibility"`
	CreatedAt      time.Time `bun:"created_at,nullzero,default:now()"`
}

type menteeRow struct {
	bun.BaseModel `bun:"table:mentees,alias:m"`

	ID         int64     `bun:"id,pk,autoincrement"`
	Name       string    `bun:"name"`
	StoreNbr   *string   `bun:"store_nbr"`
	Position   *string   `bun:"position"`
	CellNumber *string   `bun:"cell_number"`
	Notes      *string   `bun:"notes"`
	CreatedAt  time.Time `bun:"created_at,nullzero,default:now()"`
}

type contactRow struct {
	bun.BaseModel `bun:"table:contacts,alias:c"`

	ID         int64     `bun:"id,pk,autoincrement"`
	Name       string    `bun:"name"`
	Title      *string   `bun:"title"`
	Department *string   `bun:"department"`
	ReportsTo  *string   `bun:"reports_to"`
	Phone      *string   `bun:"phone"`
	Email      *string   `bun:"email"`
	Notes      *string   `bun:"notes"`
	CreatedAt  time.Time `bun:"created_at,nullzero,default:now()"`
}

type associateInsightRow struct {
	bun.BaseModel `bun:"table:associate_insights,alias:ai"`

	ID          int64     `bun:"id,pk,autoincrement"`
	ContactID   int64     `bun:"contact_id"`
	InsightText string    `bun:"insight_text"`
	StoreNumber *string   `bun:"store_number"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:now()"`
}

type enablerRow struct {
	bun.BaseModel `bun:"table:enablers,alias:e"`

	ID          int64      `bun:"id,pk,autoincrement"`
	Title       string     `bun:"title"`
	Description *string    `bun:"description"`
	Source      *string    `bun:"source"`
	Status      string     `bun:"status"`
	WeekDate    *time.Time `bun:"week_date"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:now()"`
	UpdatedAt   *time.Time `bun:"updated_at"`
}

type enablerCompletionRow struct {
	bun.BaseModel `bun:"table:enabler_completions,alias:ec"`

	ID          int64      `bun:"id,pk,autoincrement"`
	EnablerID   int64      `bun:"enabler_id"`
	StoreNbr    string     `bun:"store_nbr"`
	Completed   bool       `bun:"completed"`
	CompletedAt *time.Time `bun:"completed_at"`
}

type issueRow struct {
	bun.BaseModel `bun:"table:issues,alias:i"`

	ID          int64      `bun:"id,pk,autoincrement"`
	Type        string     `bun:"type"`
	Title       string     `bun:"title"`
	Description *string    `bun:"description"`
	Status      string     `bun:"status"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:now()"`
	UpdatedAt   *time.Time `bun:"updated_at"`
}

type taskRow struct {
	bun.BaseModel `bun:"table:tasks,alias:t"`

	ID          int64      `bun:"id,pk,autoincrement"`
	Content     string     `bun:"content"`
	Status      string     `bun:"status"`
	Priority    int        `bun:"priority"`
	AssignedTo  *string    `bun:"assigned_to"`
	DueDate     *time.Time `bun:"due_date"`
	StoreNumber *string    `bun:"store_number"`
	ListName    string     `bun:"list_name"`
	Notes       *string    `bun:"notes"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:now()"`
	UpdatedAt   *time.Time `bun:"updated_at"`
	CompletedAt *time.Time `bun:"completed_at"`
}

type userNoteRow struct {
	bun.BaseModel `bun:"table:notes,alias:n"`

	ID          int64      `bun:"id,pk,autoincrement"`
	Title       string     `bun:"title"`
	Content     string     `bun:"content"`
	FolderPath  *string    `bun:"folder_path"`
	IsPinned    bool       `bun:"is_pinned"`
	IsDailyNote bool       `bun:"is_daily_note"`
	DailyDate   *time.Time `bun:"daily_date"`
	StoreNumber *string    `bun:"store_number"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:now()"`
	UpdatedAt   *time.Time `bun:"updated_at"`
	DeletedAt   *time.Time `bun:"deleted_at,soft_delete"`
}

type storeInfoRow struct {
	bun.BaseModel `bun:"table:store_info,alias:si"`

	StoreNumber   string     `bun:"store_number,pk"`
	StoreFormat   *string    `bun:"store_format"`
	City          *string    `bun:"city"`
	State         *string    `bun:"state"`
	VolumeTier    *string    `bun:"volume_tier"`
	ComplexTier   *string    `bun:"complex_tier"`
	StoreManager  *string    `bun:"store_manager"`
	LastVisitDate *time.Time `bun:"last_visit_date"`
}

// Note tables keyed by the JSON field each feeds on a visit payload.
var visitNoteTables = []struct {
	Key   string
	Table string
}{
	{"store_notes", "store_visit_notes"},
	{"market_notes", "store_market_notes"},
	{"good_notes", "store_good_notes"},
	{"improvement_notes", "store_improvement_notes"},
}

const dateLayout = "2006-01-02"

func isoDate(t time.Time) string {
	return t.Format(dateLayout)
}

func isoDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func isoTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
