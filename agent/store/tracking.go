package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/jaxfield/assistant/agent/contract"
	"github.com/jaxfield/assistant/agent/fiscal"
)

// GoldStars loads a gold-star week and every store's completion state.
// weekDate (YYYY-MM-DD) and weekNumber both select a specific week;
// with neither set the latest week wins.
func (s *Store) GoldStars(ctx context.Context, weekDate string, weekNumber int) (*contract.GoldStars, error) {
	var row goldStarWeekRow
	q := s.db.NewSelect().Model(&row)

	switch {
	case weekNumber > 0:
		start := fiscal.SaturdayOfWeek(weekNumber, s.now())
		q = q.Where("gsw.week_start_date = ?", start)
	case weekDate != "":
		start, err := time.ParseInLocation(dateLayout, weekDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: week date %q", contract.ErrValidation, weekDate)
		}
		q = q.Where("gsw.week_start_date = ?", start)
	default:
		q = q.OrderExpr("gsw.week_start_date DESC")
	}

	err := q.Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: gold star week", contract.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("gold star week: %w", err)
	}

	var comps []goldStarCompletionRow
	err = s.db.NewSelect().Model(&comps).
		Where("gsc.week_id = ?", row.ID).
		OrderExpr("gsc.store_nbr ASC").
		OrderExpr("gsc.note_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("gold star completions: %w", err)
	}

	out := &contract.GoldStars{
		Week: contract.GoldStarWeek{
			ID:            row.ID,
			WeekStartDate: isoDate(row.WeekStartDate),
			Note1:         row.Note1,
			Note2:         row.Note2,
			Note3:         row.Note3,
		},
		WeekNumber: fiscal.WeekNumber(row.WeekStartDate),
		Notes:      []*string{row.Note1, row.Note2, row.Note3},
	}
	if row.UpdatedAt != nil {
		out.Week.UpdatedAt = isoTime(*row.UpdatedAt)
	}
	for _, c := range comps {
		out.Completions = append(out.Completions, contract.GoldStarCompletion{
			StoreNbr:    c.StoreNbr,
			NoteNumber:  c.NoteNumber,
			Completed:   c.Completed,
			CompletedAt: isoTimePtr(c.CompletedAt),
		})
	}
	return out, nil
}

func (s *Store) Enablers(ctx context.Context, status string) ([]contract.Enabler, error) {
	var rows []struct {
		enablerRow
		CompletedCount int `bun:"completed_count"`
		TotalTracked   int `bun:"total_tracked"`
	}
	q := s.db.NewSelect().
		TableExpr("enablers AS e").
		ColumnExpr("e.*").
		ColumnExpr("COUNT(ec.id) FILTER (WHERE ec.completed) AS completed_count").
		ColumnExpr("COUNT(ec.id) AS total_tracked").
		Join("LEFT JOIN enabler_completions AS ec ON ec.enabler_id = e.id").
		GroupExpr("e.id")
	if status != "" {
		q = q.Where("e.status = ?", status)
	}
	if err := q.OrderExpr("e.created_at DESC").Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("enablers: %w", err)
	}

	out := make([]contract.Enabler, 0, len(rows))
	for _, r := range rows {
		out = append(out, contract.Enabler{
			ID:             r.ID,
			Title:          r.Title,
			Description:    r.Description,
			Source:         r.Source,
			Status:         r.Status,
			WeekDate:       isoDatePtr(r.WeekDate),
			CompletedCount: r.CompletedCount,
			TotalTracked:   r.TotalTracked,
			CreatedAt:      isoDate(r.CreatedAt),
		})
	}
	return out, nil
}

func (s *Store) Issues(ctx context.Context, status, issueType string) ([]contract.Issue, error) {
	var rows []issueRow
	q := s.db.NewSelect().Model(&rows)
	if status != "" {
		q = q.Where("i.status = ?", status)
	}
	if issueType != "" {
		q = q.Where("i.type = ?", issueType)
	}
	if err := q.OrderExpr("i.created_at DESC").Limit(50).Scan(ctx); err != nil {
		return nil, fmt.Errorf("issues: %w", err)
	}

	out := make([]contract.Issue, 0, len(rows))
	for _, r := range rows {
		out = append(out, contract.Issue{
			ID:          r.ID,
			Type:        r.Type,
			Title:       r.Title,
			Description: r.Description,
			Status:      r.Status,
			CreatedAt:   isoDate(r.CreatedAt),
		})
	}
	return out, nil
}

func (s *Store) Tasks(ctx context.Context, status, assignedTo, storeNumber string) ([]contract.Task, error) {
	var rows []taskRow
	q := s.db.NewSelect().Model(&rows)
	if status != "" {
		q = q.Where("t.status = ?", status)
	} else {
		q = q.Where("t.status != 'completed'")
	}
	if assignedTo != "" {
		q = q.Where("LOWER(t.assigned_to) LIKE LOWER(?)", "%"+assignedTo+"%")
	}
	if storeNumber != "" {
		q = q.Where("t.store_number = ?", storeNumber)
	}
	err := q.OrderExpr("t.priority DESC").
		OrderExpr("t.due_date ASC NULLS LAST").
		Limit(50).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("tasks: %w", err)
	}

	out := make([]contract.Task, 0, len(rows))
	for i := range rows {
		out = append(out, taskFromRow(&rows[i]))
	}
	return out, nil
}

func taskFromRow(r *taskRow) contract.Task {
	return contract.Task{
		ID:          r.ID,
		Content:     r.Content,
		Status:      r.Status,
		Priority:    r.Priority,
		AssignedTo:  r.AssignedTo,
		DueDate:     isoDatePtr(r.DueDate),
		StoreNumber: r.StoreNumber,
		ListName:    r.ListName,
		Notes:       r.Notes,
		CreatedAt:   isoDate(r.CreatedAt),
		CompletedAt: isoTimePtr(r.CompletedAt),
	}
}

func (s *Store) UserNotes(ctx context.Context, search, folderPath string) ([]contract.UserNote, error) {
	var rows []struct {
		ID                 int64      `bun:"id"`
		Title              string     `bun:"title"`
		ContentPreview     string     `bun:"content_preview"`
		FolderPath         *string    `bun:"folder_path"`
		IsPinned           bool       `bun:"is_pinned"`
		IsDailyNote        bool       `bun:"is_daily_note"`
		DailyDate          *time.Time `bun:"daily_date"`
		StoreNumber        *string    `bun:"store_number"`
		TaskCount          int        `bun:"task_count"`
		CompletedTaskCount int        `bun:"completed_task_count"`
		UpdatedAt          *time.Time `bun:"updated_at"`
	}
	q := s.db.NewSelect().
		TableExpr("notes AS n").
		ColumnExpr("n.id").
		ColumnExpr("n.title").
		ColumnExpr("LEFT(n.content, 200) AS content_preview").
		ColumnExpr("n.folder_path").
		ColumnExpr("n.is_pinned").
		ColumnExpr("n.is_daily_note").
		ColumnExpr("n.daily_date").
		ColumnExpr("n.store_number").
		ColumnExpr("(SELECT COUNT(*) FROM note_tasks nt WHERE nt.note_id = n.id) AS task_count").
		ColumnExpr("(SELECT COUNT(*) FROM note_tasks nt WHERE nt.note_id = n.id AND nt.completed) AS completed_task_count").
		ColumnExpr("n.updated_at").
		Where("n.deleted_at IS NULL")
	if search != "" {
		pattern := "%" + search + "%"
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.WhereOr("LOWER(n.title) LIKE LOWER(?)", pattern).
				WhereOr("LOWER(n.content) LIKE LOWER(?)", pattern)
		})
	}
	if folderPath != "" {
		q = q.Where("n.folder_path = ?", folderPath)
	}
	err := q.OrderExpr("n.is_pinned DESC").
		OrderExpr("n.updated_at DESC NULLS LAST").
		Limit(30).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("user notes: %w", err)
	}

	out := make([]contract.UserNote, 0, len(rows))
	for _, r := range rows {
		n := contract.UserNote{
			ID:                 r.ID,
			Title:              r.Title,
			ContentPreview:     r.ContentPreview,
			FolderPath:         r.FolderPath,
			IsPinned:           r.IsPinned,
			IsDailyNote:        r.IsDailyNote,
			DailyDate:          isoDatePtr(r.DailyDate),
			StoreNumber:        r.StoreNumber,
			TaskCount:          r.TaskCount,
			CompletedTaskCount: r.CompletedTaskCount,
		}
		if r.UpdatedAt != nil {
			n.UpdatedAt = isoTime(*r.UpdatedAt)
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *Store) Summary(ctx context.Context) (*contract.SummaryStats, error) {
	var row struct {
		TotalVisits  int        `bun:"total_visits"`
		UniqueStores int        `bun:"unique_stores"`
		FirstVisit   *time.Time `bun:"first_visit"`
		LastVisit    *time.Time `bun:"last_visit"`
		GreenCount   int        `bun:"green_count"`
		YellowCount  int        `bun:"yellow_count"`
		RedCount     int        `bun:"red_count"`
	}
	err := s.db.NewSelect().
		TableExpr("store_visits AS v").
		ColumnExpr("COUNT(*) AS total_visits").
		ColumnExpr(`COUNT(DISTINCT v."storeNbr") AS unique_stores`).
		ColumnExpr("MIN(v.calendar_date) AS first_visit").
		ColumnExpr("MAX(v.calendar_date) AS last_visit").
		ColumnExpr("SUM(CASE WHEN v.rating = 'Green' THEN 1 ELSE 0 END) AS green_count").
		ColumnExpr("SUM(CASE WHEN v.rating = 'Yellow' THEN 1 ELSE 0 END) AS yellow_count").
		ColumnExpr("SUM(CASE WHEN v.rating = 'Red' THEN 1 ELSE 0 END) AS red_count").
		Scan(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	recentStart := s.now().AddDate(0, 0, -30)
	recent, err := s.db.NewSelect().
		TableExpr("store_visits AS v").
		Where("v.calendar_date >= ?", recentStart).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary recent: %w", err)
	}

	stats := &contract.SummaryStats{
		TotalVisits:     row.TotalVisits,
		UniqueStores:    row.UniqueStores,
		GreenCount:      row.GreenCount,
		YellowCount:     row.YellowCount,
		RedCount:        row.RedCount,
		RecentVisits30d: recent,
	}
	if row.FirstVisit != nil {
		stats.FirstVisit = isoDate(*row.FirstVisit)
	}
	if row.LastVisit != nil {
		stats.LastVisit = isoDate(*row.LastVisit)
	}
	return stats, nil
}

// StoreInformation returns one store's profile, or a bounded sample of the
// fleet when no store is named.
func (s *Store) StoreInformation(ctx context.Context, storeNumber string) ([]contract.StoreInfo, error) {
	var rows []storeInfoRow
	q := s.db.NewSelect().Model(&rows)
	if storeNumber != "" {
		q = q.Where("si.store_number = ?", storeNumber)
	} else {
		q = q.Limit(50)
	}
	if err := q.OrderExpr("si.store_number ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("store information: %w", err)
	}
	if storeNumber != "" && len(rows) == 0 {
		return nil, fmt.Errorf("%w: store %s", contract.ErrNotFound, storeNumber)
	}

	out := make([]contract.StoreInfo, 0, len(rows))
	for _, r := range rows {
		out = append(out, contract.StoreInfo{
			StoreNumber:   r.StoreNumber,
			StoreFormat:   r.StoreFormat,
			City:          r.City,
			State:         r.State,
			VolumeTier:    r.VolumeTier,
			ComplexTier:   r.ComplexTier,
			StoreManager:  r.StoreManager,
			LastVisitDate: isoDatePtr(r.LastVisitDate),
		})
	}
	return out, nil
}
