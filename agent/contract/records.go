package contract

// Denormalized, JSON-safe row shapes the record store returns. Dates are
// ISO-8601 strings; nullable columns are pointers so nulls survive
// round-tripping into the formatter prompt.

type Visit struct {
	ID             int64    `json:"id"`
	StoreNbr       string   `json:"storeNbr"`
	CalendarDate   string   `json:"calendar_date"`
	Rating         string   `json:"rating"`
	SalesCompYest  *float64 `json:"sales_comp_yest"`
	SalesCompWTD   *float64 `json:"sales_comp_wtd"`
	SalesCompMTD   *float64 `json:"sales_comp_mtd"`
	SalesIndexYest *float64 `json:"sales_index_yest"`
	SalesIndexWTD  *float64 `json:"sales_index_wtd"`
	SalesIndexMTD  *float64 `json:"sales_index_mtd"`
	VizPick        *float64 `json:"vizpick"`
	Overstock      *float64 `json:"overstock"`
	FTPR           *float64 `json:"ftpr"`
	StoreNotes       []string `json:"store_notes"`
	MarketNotes      []string `json:"market_notes"`
	GoodNotes        []string `json:"good_notes"`
	ImprovementNotes []string `json:"improvement_notes"`
	Top3             []string `json:"top_3,omitempty"`
}

type NoteHit struct {
	NoteText     string `json:"note_text"`
	VisitID      int64  `json:"visit_id"`
	StoreNbr     string `json:"storeNbr"`
	CalendarDate string `json:"calendar_date"`
	Rating       string `json:"rating"`
	NoteType     string `json:"note_type"`
}

type TrendReport struct {
	StoreNbr           string             `json:"store_nbr"`
	PeriodDays         int                `json:"period_days"`
	RatingDistribution map[string]int     `json:"rating_distribution"`
	Averages           map[string]float64 `json:"averages"`
	Trend              map[string]float64 `json:"trend"`
}

type StoreComparison struct {
	StoreNbr     string   `json:"storeNbr"`
	TotalVisits  int      `json:"total_visits"`
	GreenCount   int      `json:"green_count"`
	YellowCount  int      `json:"yellow_count"`
	RedCount     int      `json:"red_count"`
	AvgSalesComp *float64 `json:"avg_sales_comp"`
	AvgVizPick   *float64 `json:"avg_vizpick"`
	AvgFTPR      *float64 `json:"avg_ftpr"`
	LastVisit    string   `json:"last_visit"`
}

type MarketInsights struct {
	PeriodDays       int       `json:"period_days"`
	TotalMarketNotes int       `json:"total_market_notes"`
	Notes            []NoteHit `json:"notes"`
}

type MarketNoteStatus struct {
	ID           int64   `json:"id"`
	VisitID      int64   `json:"visit_id"`
	NoteText     string  `json:"note_text"`
	Status       string  `json:"status"`
	AssignedTo   *string `json:"assigned_to"`
	Completed    bool    `json:"completed"`
	CompletedAt  *string `json:"completed_at"`
	StoreNbr     string  `json:"storeNbr"`
	CalendarDate string  `json:"calendar_date"`
}

type MarketNoteUpdate struct {
	ID           int64  `json:"id"`
	VisitID      int64  `json:"visit_id"`
	NoteText     string `json:"note_text"`
	UpdateText   string `json:"update_text"`
	CreatedBy    *string `json:"created_by"`
	CreatedAt    string `json:"created_at"`
	StoreNbr     string `json:"storeNbr"`
	CalendarDate string `json:"calendar_date"`
}

type Champion struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Responsibility string `json:"responsibility"`
	CreatedAt      string `json:"created_at,omitempty"`
}

type Mentee struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	StoreNbr   *string `json:"store_nbr"`
	Position   *string `json:"position"`
	CellNumber *string `json:"cell_number"`
	Notes      *string `json:"notes"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

type Contact struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Title      *string `json:"title"`
	Department *string `json:"department"`
	ReportsTo  *string `json:"reports_to"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Notes      *string `json:"notes"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

type GoldStarWeek struct {
	ID            int64   `json:"id"`
	WeekStartDate string  `json:"week_start_date"`
	Note1         *string `json:"note_1"`
	Note2         *string `json:"note_2"`
	Note3         *string `json:"note_3"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

type GoldStarCompletion struct {
	StoreNbr    string  `json:"store_nbr"`
	NoteNumber  int     `json:"note_number"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completed_at"`
}

// GoldStars is the composite gold-star query payload: the week row, its
// derived fiscal week number, the three focus notes and every store's
// completion state.
type GoldStars struct {
	Week        GoldStarWeek         `json:"week"`
	WeekNumber  int                  `json:"week_number"`
	Notes       []*string            `json:"notes"`
	Completions []GoldStarCompletion `json:"completions"`
}

type Enabler struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Description    *string `json:"description"`
	Source         *string `json:"source"`
	Status         string  `json:"status"`
	WeekDate       *string `json:"week_date"`
	CompletedCount int     `json:"completed_count"`
	TotalTracked   int     `json:"total_tracked"`
	CreatedAt      string  `json:"created_at,omitempty"`
}

type Issue struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

type Task struct {
	ID          int64   `json:"id"`
	Content     string  `json:"content"`
	Status      string  `json:"status"`
	Priority    int     `json:"priority"`
	AssignedTo  *string `json:"assigned_to"`
	DueDate     *string `json:"due_date"`
	StoreNumber *string `json:"store_number"`
	ListName    string  `json:"list_name"`
	Notes       *string `json:"notes"`
	CreatedAt   string  `json:"created_at,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

type UserNote struct {
	ID                 int64   `json:"id"`
	Title              string  `json:"title"`
	ContentPreview     string  `json:"content_preview"`
	FolderPath         *string `json:"folder_path"`
	IsPinned           bool    `json:"is_pinned"`
	IsDailyNote        bool    `json:"is_daily_note"`
	DailyDate          *string `json:"daily_date"`
	StoreNumber        *string `json:"store_number"`
	TaskCount          int     `json:"task_count"`
	CompletedTaskCount int     `json:"completed_task_count"`
	UpdatedAt          string  `json:"updated_at,omitempty"`
}

type SummaryStats struct {
	TotalVisits     int    `json:"total_visits"`
	UniqueStores    int    `json:"unique_stores"`
	FirstVisit      string `json:"first_visit"`
	LastVisit       string `json:"last_visit"`
	GreenCount      int    `json:"green_count"`
	YellowCount     int    `json:"yellow_count"`
	RedCount        int    `json:"red_count"`
	RecentVisits30d int    `json:"recent_visits_30d"`
}

type StoreInfo struct {
	StoreNumber   string  `json:"store_number"`
	StoreFormat   *string `json:"store_format"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	VolumeTier    *string `json:"volume_tier"`
	ComplexTier   *string `json:"complex_tier"`
	StoreManager  *string `json:"store_manager"`
	LastVisitDate *string `json:"last_visit_date"`
}

type AssociateInsight struct {
	ID            int64   `json:"id"`
	ContactID     int64   `json:"contact_id"`
	AssociateName string  `json:"associate_name"`
	InsightText   string  `json:"insight_text"`
	StoreNumber   *string `json:"store_number"`
	CreatedAt     string  `json:"created_at"`
}
