package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jaxfield/assistant/agent/contract"
)

func (s *Store) SearchNotes(ctx context.Context, keyword string, limit int) ([]contract.NoteHit, error) {
	if limit <= 0 {
		limit = 20
	}
	pattern := "%" + keyword + "%"

	var hits []contract.NoteHit
	for _, nt := range visitNoteTables {
		noteType := strings.TrimSuffix(nt.Key, "_notes")
		var rows []struct {
			NoteText     string    `bun:"note_text"`
			VisitID      int64     `bun:"visit_id"`
			StoreNbr     string    `bun:"storeNbr"`
			CalendarDate time.Time `bun:"calendar_date"`
			Rating       string    `bun:"rating"`
		}
		err := s.db.NewSelect().
			TableExpr(nt.Table+" AS n").
			ColumnExpr("n.note_text").
			ColumnExpr("n.visit_id").
			ColumnExpr(`v."storeNbr"`).
			ColumnExpr("v.calendar_date").
			ColumnExpr("v.rating").
			Join("JOIN store_visits AS v ON n.visit_id = v.id").
			Where("LOWER(n.note_text) LIKE LOWER(?)", pattern).
			OrderExpr("v.calendar_date DESC").
			Limit(limit).
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("search %s: %w", nt.Table, err)
		}
		for _, r := range rows {
			hits = append(hits, contract.NoteHit{
				NoteText:     r.NoteText,
				VisitID:      r.VisitID,
				StoreNbr:     r.StoreNbr,
				CalendarDate: isoDate(r.CalendarDate),
				Rating:       r.Rating,
				NoteType:     noteType,
			})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].CalendarDate > hits[j].CalendarDate
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (s *Store) MarketInsights(ctx context.Context, days int) (*contract.MarketInsights, error) {
	if days <= 0 {
		days = 30
	}
	start := s.now().AddDate(0, 0, -days)

	var rows []struct {
		NoteText     string    `bun:"note_text"`
		VisitID      int64     `bun:"visit_id"`
		StoreNbr     string    `bun:"storeNbr"`
		CalendarDate time.Time `bun:"calendar_date"`
	}
	err := s.db.NewSelect().
		TableExpr("store_market_notes AS n").
		ColumnExpr("n.note_text").
		ColumnExpr("n.visit_id").
		ColumnExpr(`v."storeNbr"`).
		ColumnExpr("v.calendar_date").
		Join("JOIN store_visits AS v ON n.visit_id = v.id").
		Where("v.calendar_date >= ?", start).
		OrderExpr("v.calendar_date DESC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("market insights: %w", err)
	}

	notes := make([]contract.NoteHit, 0, len(rows))
	for _, r := range rows {
		notes = append(notes, contract.NoteHit{
			NoteText:     r.NoteText,
			VisitID:      r.VisitID,
			StoreNbr:     r.StoreNbr,
			CalendarDate: isoDate(r.CalendarDate),
			NoteType:     "market",
		})
	}
	return &contract.MarketInsights{
		PeriodDays:       days,
		TotalMarketNotes: len(notes),
		Notes:            notes,
	}, nil
}

func (s *Store) MarketNoteStatuses(ctx context.Context, status string) ([]contract.MarketNoteStatus, error) {
	var rows []struct {
		ID           int64      `bun:"id"`
		VisitID      int64      `bun:"visit_id"`
		NoteText     string     `bun:"note_text"`
		Status       string     `bun:"status"`
		AssignedTo   *string    `bun:"assigned_to"`
		Completed    bool       `bun:"completed"`
		CompletedAt  *time.Time `bun:"completed_at"`
		StoreNbr     string     `bun:"storeNbr"`
		CalendarDate time.Time  `bun:"calendar_date"`
	}
	q := s.db.NewSelect().
		TableExpr("store_market_notes AS smn").
		ColumnExpr("smn.id").
		ColumnExpr("smn.visit_id").
		ColumnExpr("smn.note_text").
		ColumnExpr("COALESCE(mnc.status, 'new') AS status").
		ColumnExpr("mnc.assigned_to").
		ColumnExpr("COALESCE(mnc.completed, false) AS completed").
		ColumnExpr("mnc.completed_at").
		ColumnExpr(`v."storeNbr"`).
		ColumnExpr("v.calendar_date").
		Join("JOIN store_visits AS v ON smn.visit_id = v.id").
		Join("LEFT JOIN market_note_completions AS mnc ON smn.visit_id = mnc.visit_id AND smn.note_text = mnc.note_text")

	// Without a filter, open work is the interesting view: everything not
	// yet completed.
	switch {
	case status == "":
		q = q.Where("COALESCE(mnc.status, 'new') != 'completed'")
	default:
		q = q.Where("COALESCE(mnc.status, 'new') = ?", strings.ToLower(status))
	}

	err := q.OrderExpr("v.calendar_date DESC").OrderExpr("smn.id DESC").Limit(100).Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("market note status: %w", err)
	}

	out := make([]contract.MarketNoteStatus, 0, len(rows))
	for _, r := range rows {
		out = append(out, contract.MarketNoteStatus{
			ID:           r.ID,
			VisitID:      r.VisitID,
			NoteText:     r.NoteText,
			Status:       r.Status,
			AssignedTo:   r.AssignedTo,
			Completed:    r.Completed,
			CompletedAt:  isoTimePtr(r.CompletedAt),
			StoreNbr:     r.StoreNbr,
			CalendarDate: isoDate(r.CalendarDate),
		})
	}
	return out, nil
}

func (s *Store) MarketNoteUpdates(ctx context.Context, noteText string) ([]contract.MarketNoteUpdate, error) {
	var rows []struct {
		ID           int64     `bun:"id"`
		VisitID      int64     `bun:"visit_id"`
		NoteText     string    `bun:"note_text"`
		UpdateText   string    `bun:"update_text"`
		CreatedBy    *string   `bun:"created_by"`
		CreatedAt    time.Time `bun:"created_at"`
		StoreNbr     string    `bun:"storeNbr"`
		CalendarDate time.Time `bun:"calendar_date"`
	}
	q := s.db.NewSelect().
		TableExpr("market_note_updates AS mnu").
		ColumnExpr("mnu.id").
		ColumnExpr("mnu.visit_id").
		ColumnExpr("mnu.note_text").
		ColumnExpr("mnu.text AS update_text").
		ColumnExpr("mnu.created_by").
		ColumnExpr("mnu.created_at").
		ColumnExpr(`v."storeNbr"`).
		ColumnExpr("v.calendar_date").
		Join("JOIN store_visits AS v ON mnu.visit_id = v.id")
	if noteText != "" {
		q = q.Where("LOWER(mnu.note_text) LIKE LOWER(?)", "%"+noteText+"%")
	}
	err := q.OrderExpr("mnu.created_at DESC").Limit(50).Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("market note updates: %w", err)
	}

	out := make([]contract.MarketNoteUpdate, 0, len(rows))
	for _, r := range rows {
		out = append(out, contract.MarketNoteUpdate{
			ID:           r.ID,
			VisitID:      r.VisitID,
			NoteText:     r.NoteText,
			UpdateText:   r.UpdateText,
			CreatedBy:    r.CreatedBy,
			CreatedAt:    isoTime(r.CreatedAt),
			StoreNbr:     r.StoreNbr,
			CalendarDate: isoDate(r.CalendarDate),
		})
	}
	return out, nil
}
