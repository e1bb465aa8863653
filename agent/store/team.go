package store

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/jaxfield/assistant/agent/contract"
)

func (s *Store) Champions(ctx context.Context) ([]contract.Champion, error) {
	var rows []championRow
	err := s.db.NewSelect().Model(&rows).OrderExpr("ch.name ASC").Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("champions: %w", err)
	}

	out := make([]contract.Champion, 0, len(rows))
	for _, r := range rows {
		out = append(out, contract.Champion{
			ID:             r.ID,
			Name:           r.Name,
			Responsibility: r.Responsibility,
			CreatedAt:      isoDate(r.CreatedAt),
		})
	}
	return out, nil
}

func (s *Store) Mentees(ctx context.Context, storeNbr string) ([]contract.Mentee, error) {
	var rows []menteeRow
	q := s.db.NewSelect().Model(&rows)
	if storeNbr != "" {
		q = q.Where("m.store_nbr = ?", storeNbr)
	}
	if err := q.OrderExpr("m.name ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("mentees: %w", err)
	}

	out := make([]contract.Mentee, 0, len(rows))
	for _, r := range rows {
		out = append(out, contract.Mentee{
			ID:         r.ID,
			Name:       r.Name,
			StoreNbr:   r.StoreNbr,
			Position:   r.Position,
			CellNumber: r.CellNumber,
			Notes:      r.Notes,
			CreatedAt:  isoDate(r.CreatedAt),
		})
	}
	return out, nil
}

// Contacts matches every alias variant of searchTerm against all the text
// columns, so "meat" finds a "Meats TL" and "ogp" finds "Online Grocery".
func (s *Store) Contacts(ctx context.Context, searchTerm, department string) ([]contract.Contact, error) {
	var rows []contactRow
	q := s.db.NewSelect().Model(&rows)

	if searchTerm != "" {
		variants := searchVariants(searchTerm)
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			for _, v := range variants {
				pattern := "%" + v + "%"
				q = q.WhereOr("LOWER(c.name) LIKE ?", pattern).
					WhereOr("LOWER(c.title) LIKE ?", pattern).
					WhereOr("LOWER(c.department) LIKE ?", pattern).
					WhereOr("LOWER(c.reports_to) LIKE ?", pattern).
					WhereOr("LOWER(c.notes) LIKE ?", pattern)
			}
			return q
		})
	}
	if department != "" {
		variants := searchVariants(department)
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			for _, v := range variants {
				q = q.WhereOr("LOWER(c.department) LIKE ?", "%"+v+"%")
			}
			return q
		})
	}

	if err := q.OrderExpr("c.name ASC").Limit(50).Scan(ctx); err != nil {
		return nil, fmt.Errorf("contacts: %w", err)
	}

	out := make([]contract.Contact, 0, len(rows))
	for _, r := range rows {
		out = append(out, contactFromRow(&r))
	}
	return out, nil
}

func contactFromRow(r *contactRow) contract.Contact {
	return contract.Contact{
		ID:         r.ID,
		Name:       r.Name,
		Title:      r.Title,
		Department: r.Department,
		ReportsTo:  r.ReportsTo,
		Phone:      r.Phone,
		Email:      r.Email,
		Notes:      r.Notes,
		CreatedAt:  isoDate(r.CreatedAt),
	}
}

func (s *Store) AssociateInsights(ctx context.Context, contactID int64, name string) ([]contract.AssociateInsight, error) {
	var rows []struct {
		ID            int64     `bun:"id"`
		ContactID     int64     `bun:"contact_id"`
		AssociateName string    `bun:"associate_name"`
		InsightText   string    `bun:"insight_text"`
		StoreNumber   *string   `bun:"store_number"`
		CreatedAt     time.Time `bun:"created_at"`
	}
	q := s.db.NewSelect().
		TableExpr("associate_insights AS ai").
		ColumnExpr("ai.id").
		ColumnExpr("ai.contact_id").
		ColumnExpr("c.name AS associate_name").
		ColumnExpr("ai.insight_text").
		ColumnExpr("ai.store_number").
		ColumnExpr("ai.created_at").
		Join("JOIN contacts AS c ON ai.contact_id = c.id")
	if contactID > 0 {
		q = q.Where("ai.contact_id = ?", contactID)
	}
	if name != "" {
		q = q.Where("LOWER(c.name) LIKE LOWER(?)", "%"+name+"%")
	}
	if err := q.OrderExpr("ai.created_at DESC").Limit(50).Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("associate insights: %w", err)
	}

	out := make([]contract.AssociateInsight, 0, len(rows))
	for _, r := range rows {
		out = append(out, contract.AssociateInsight{
			ID:            r.ID,
			ContactID:     r.ContactID,
			AssociateName: r.AssociateName,
			InsightText:   r.InsightText,
			StoreNumber:   r.StoreNumber,
			CreatedAt:     isoTime(r.CreatedAt),
		})
	}
	return out, nil
}
