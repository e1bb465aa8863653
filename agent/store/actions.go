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

// Every mutation runs in one transaction. Completion upserts resolve their
// natural-key conflicts in a single statement so concurrent check-offs for
// the same store never race.

func (s *Store) UpsertGoldStarCompletion(ctx context.Context, storeNbr string, noteNumber int, completed bool, weekID int64) (string, error) {
	var noteText string
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var week goldStarWeekRow
		q := tx.NewSelect().Model(&week)
		if weekID > 0 {
			q = q.Where("gsw.id = ?", weekID)
		} else {
			q = q.OrderExpr("gsw.week_start_date DESC")
		}
		err := q.Limit(1).Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: gold star week", contract.ErrNotFound)
		}
		if err != nil {
			return err
		}

		switch noteNumber {
		case 1:
			if week.Note1 != nil {
				noteText = *week.Note1
			}
		case 2:
			if week.Note2 != nil {
				noteText = *week.Note2
			}
		case 3:
			if week.Note3 != nil {
				noteText = *week.Note3
			}
		}

		row := goldStarCompletionRow{
			WeekID:     week.ID,
			StoreNbr:   storeNbr,
			NoteNumber: noteNumber,
			Completed:  completed,
		}
		if completed {
			now := s.now()
			row.CompletedAt = &now
		}
		_, err = tx.NewInsert().Model(&row).
			On("CONFLICT (week_id, store_nbr, note_number) DO UPDATE").
			Set("completed = EXCLUDED.completed").
			Set("completed_at = EXCLUDED.completed_at").
			Exec(ctx)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("upsert gold star completion: %w", err)
	}
	return noteText, nil
}

func (s *Store) SaveGoldStarNotes(ctx context.Context, note1, note2, note3 string) error {
	now := s.now()
	weekStart := fiscal.SaturdayOfWeek(fiscal.WeekNumber(now), now)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		row := goldStarWeekRow{
			WeekStartDate: weekStart,
			Note1:         &note1,
			Note2:         &note2,
			Note3:         &note3,
			UpdatedAt:     &now,
		}
		_, err := tx.NewInsert().Model(&row).
			On("CONFLICT (week_start_date) DO UPDATE").
			Set("note_1 = EXCLUDED.note_1").
			Set("note_2 = EXCLUDED.note_2").
			Set("note_3 = EXCLUDED.note_3").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("save gold star notes: %w", err)
	}
	return nil
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *Store) CreateContact(ctx context.Context, in contract.ContactInput) (*contract.Contact, error) {
	row := contactRow{
		Name:       in.Name,
		Title:      optStr(in.Title),
		Department: optStr(in.Department),
		ReportsTo:  optStr(in.ReportsTo),
		Phone:      optStr(in.Phone),
		Email:      optStr(in.Email),
		Notes:      optStr(in.Notes),
	}
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&row).Returning("id, created_at").Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	c := contactFromRow(&row)
	return &c, nil
}

func (s *Store) DeleteContact(ctx context.Context, contactID int64, name string) (string, error) {
	var deletedName string
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var row contactRow
		q := tx.NewSelect().Model(&row)
		if contactID > 0 {
			q = q.Where("c.id = ?", contactID)
		} else {
			q = q.Where("LOWER(c.name) = LOWER(?)", name)
		}
		err := q.Limit(1).Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: contact", contract.ErrNotFound)
		}
		if err != nil {
			return err
		}
		deletedName = row.Name

		if _, err := tx.NewDelete().
			Table("associate_insights").
			Where("contact_id = ?", row.ID).
			Exec(ctx); err != nil {
			return err
		}
		_, err = tx.NewDelete().Model((*contactRow)(nil)).Where("c.id = ?", row.ID).Exec(ctx)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("delete contact: %w", err)
	}
	return deletedName, nil
}

func (s *Store) LogAssociateInsight(ctx context.Context, contactID int64, insight string) error {
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().Model((*contactRow)(nil)).Where("c.id = ?", contactID).Exists(ctx)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: contact %d", contract.ErrNotFound, contactID)
		}
		row := associateInsightRow{ContactID: contactID, InsightText: insight}
		_, err = tx.NewInsert().Model(&row).Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("log associate insight: %w", err)
	}
	return nil
}

func (s *Store) CreateTask(ctx context.Context, in contract.TaskInput) (*contract.Task, error) {
	row := taskRow{
		Content:     in.Content,
		Status:      "new",
		Priority:    in.Priority,
		AssignedTo:  optStr(in.AssignedTo),
		StoreNumber: optStr(in.StoreNumber),
		ListName:    in.ListName,
		Notes:       optStr(in.Notes),
	}
	if row.ListName == "" {
		row.ListName = "Inbox"
	}
	if in.DueDate != "" {
		due, err := time.ParseInLocation(dateLayout, in.DueDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: due date %q", contract.ErrValidation, in.DueDate)
		}
		row.DueDate = &due
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&row).Returning("id, created_at").Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	t := taskFromRow(&row)
	return &t, nil
}

func (s *Store) UpdateTaskStatus(ctx context.Context, taskID int64, status string) (*contract.Task, error) {
	var row taskRow
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().Model(&row).Where("t.id = ?", taskID).Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: task %d", contract.ErrNotFound, taskID)
		}
		if err != nil {
			return err
		}

		now := s.now()
		row.Status = status
		row.UpdatedAt = &now
		if status == "completed" {
			row.CompletedAt = &now
		} else {
			row.CompletedAt = nil
		}
		_, err = tx.NewUpdate().Model(&row).
			Column("status", "updated_at", "completed_at").
			Where("t.id = ?", taskID).
			Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update task status: %w", err)
	}
	t := taskFromRow(&row)
	return &t, nil
}

func (s *Store) DeleteTask(ctx context.Context, taskID int64) (string, error) {
	var content string
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var row taskRow
		err := tx.NewSelect().Model(&row).Column("id", "content").Where("t.id = ?", taskID).Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: task %d", contract.ErrNotFound, taskID)
		}
		if err != nil {
			return err
		}
		content = row.Content
		_, err = tx.NewDelete().Model((*taskRow)(nil)).Where("t.id = ?", taskID).Exec(ctx)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("delete task: %w", err)
	}
	return content, nil
}

func (s *Store) upsertMarketNoteCompletion(ctx context.Context, row *marketNoteCompletionRow, cols ...string) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			TableExpr("store_market_notes AS smn").
			Where("smn.visit_id = ?", row.VisitID).
			Where("smn.note_text = ?", row.NoteText).
			Exists(ctx)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: market note on visit %d", contract.ErrNotFound, row.VisitID)
		}

		q := tx.NewInsert().Model(row).On("CONFLICT (visit_id, note_text) DO UPDATE")
		for _, col := range cols {
			q = q.Set(col + " = EXCLUDED." + col)
		}
		_, err = q.Set("updated_at = EXCLUDED.updated_at").Exec(ctx)
		return err
	})
}

func (s *Store) UpsertMarketNoteStatus(ctx context.Context, visitID int64, noteText, status string) error {
	row := marketNoteCompletionRow{
		VisitID:   visitID,
		NoteText:  noteText,
		Status:    &status,
		Completed: status == "completed",
		UpdatedAt: s.now(),
	}
	if row.Completed {
		now := s.now()
		row.CompletedAt = &now
	}
	if err := s.upsertMarketNoteCompletion(ctx, &row, "status", "completed", "completed_at"); err != nil {
		return fmt.Errorf("market note status: %w", err)
	}
	return nil
}

func (s *Store) AssignMarketNote(ctx context.Context, visitID int64, noteText, assignedTo string) error {
	row := marketNoteCompletionRow{
		VisitID:    visitID,
		NoteText:   noteText,
		AssignedTo: &assignedTo,
		UpdatedAt:  s.now(),
	}
	if err := s.upsertMarketNoteCompletion(ctx, &row, "assigned_to"); err != nil {
		return fmt.Errorf("assign market note: %w", err)
	}
	return nil
}

func (s *Store) AddMarketNoteUpdate(ctx context.Context, visitID int64, noteText, comment string) (int64, error) {
	row := marketNoteUpdateRow{
		VisitID:  visitID,
		NoteText: noteText,
		Text:     comment,
	}
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			TableExpr("store_market_notes AS smn").
			Where("smn.visit_id = ?", visitID).
			Where("smn.note_text = ?", noteText).
			Exists(ctx)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: market note on visit %d", contract.ErrNotFound, visitID)
		}
		_, err = tx.NewInsert().Model(&row).Returning("id, created_at").Exec(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("add market note update: %w", err)
	}
	return row.ID, nil
}

func (s *Store) CreateChampion(ctx context.Context, name, responsibility string) (*contract.Champion, error) {
	row := championRow{Name: name, Responsibility: responsibility}
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&row).Returning("id, created_at").Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create champion: %w", err)
	}
	return &contract.Champion{
		ID:             row.ID,
		Name:           row.Name,
		Responsibility: row.Responsibility,
		CreatedAt:      isoDate(row.CreatedAt),
	}, nil
}

func (s *Store) DeleteChampion(ctx context.Context, championID int64, name string) (string, error) {
	var deletedName string
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var row championRow
		q := tx.NewSelect().Model(&row)
		if championID > 0 {
			q = q.Where("ch.id = ?", championID)
		} else {
			q = q.Where("LOWER(ch.name) = LOWER(?)", name)
		}
		err := q.Limit(1).Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: champion", contract.ErrNotFound)
		}
		if err != nil {
			return err
		}
		deletedName = row.Name
		_, err = tx.NewDelete().Model((*championRow)(nil)).Where("ch.id = ?", row.ID).Exec(ctx)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("delete champion: %w", err)
	}
	return deletedName, nil
}

func (s *Store) CreateMentee(ctx context.Context, in contract.MenteeInput) (*contract.Mentee, error) {
	row := menteeRow{
		Name:       in.Name,
		StoreNbr:   optStr(in.StoreNbr),
		Position:   optStr(in.Position),
		CellNumber: optStr(in.CellNumber),
		Notes:      optStr(in.Notes),
	}
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&row).Returning("id, created_at").Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create mentee: %w", err)
	}
	return &contract.Mentee{
		ID:         row.ID,
		Name:       row.Name,
		StoreNbr:   row.StoreNbr,
		Position:   row.Position,
		CellNumber: row.CellNumber,
		Notes:      row.Notes,
		CreatedAt:  isoDate(row.CreatedAt),
	}, nil
}

func (s *Store) DeleteMentee(ctx context.Context, menteeID int64, name string) (string, error) {
	var deletedName string
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var row menteeRow
		q := tx.NewSelect().Model(&row)
		if menteeID > 0 {
			q = q.Where("m.id = ?", menteeID)
		} else {
			q = q.Where("LOWER(m.name) = LOWER(?)", name)
		}
		err := q.Limit(1).Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: mentee", contract.ErrNotFound)
		}
		if err != nil {
			return err
		}
		deletedName = row.Name
		_, err = tx.NewDelete().Model((*menteeRow)(nil)).Where("m.id = ?", row.ID).Exec(ctx)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("delete mentee: %w", err)
	}
	return deletedName, nil
}

func (s *Store) UpsertEnablerCompletion(ctx context.Context, enablerID int64, storeNbr string, completed bool) (string, error) {
	var title string
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var en enablerRow
		err := tx.NewSelect().Model(&en).Column("id", "title").Where("e.id = ?", enablerID).Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: enabler %d", contract.ErrNotFound, enablerID)
		}
		if err != nil {
			return err
		}
		title = en.Title

		row := enablerCompletionRow{
			EnablerID: enablerID,
			StoreNbr:  storeNbr,
			Completed: completed,
		}
		if completed {
			now := s.now()
			row.CompletedAt = &now
		}
		_, err = tx.NewInsert().Model(&row).
			On("CONFLICT (enabler_id, store_nbr) DO UPDATE").
			Set("completed = EXCLUDED.completed").
			Set("completed_at = EXCLUDED.completed_at").
			Exec(ctx)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("upsert enabler completion: %w", err)
	}
	return title, nil
}

func (s *Store) CreateEnabler(ctx context.Context, title, description, source string) (*contract.Enabler, error) {
	row := enablerRow{
		Title:       title,
		Description: optStr(description),
		Source:      optStr(source),
		Status:      "idea",
	}
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&row).Returning("id, created_at").Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create enabler: %w", err)
	}
	return &contract.Enabler{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Source:      row.Source,
		Status:      row.Status,
		CreatedAt:   isoDate(row.CreatedAt),
	}, nil
}

func (s *Store) CreateIssue(ctx context.Context, issueType, title, description string) (*contract.Issue, error) {
	row := issueRow{
		Type:        issueType,
		Title:       title,
		Description: optStr(description),
		Status:      "open",
	}
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&row).Returning("id, created_at").Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create issue: %w", err)
	}
	return &contract.Issue{
		ID:          row.ID,
		Type:        row.Type,
		Title:       row.Title,
		Description: row.Description,
		Status:      row.Status,
		CreatedAt:   isoDate(row.CreatedAt),
	}, nil
}
