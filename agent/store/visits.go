package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jaxfield/assistant/agent/contract"
)

func (s *Store) SearchVisits(ctx context.Context, storeNbr string, limit int, rating string) ([]contract.Visit, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []visitRow
	q := s.db.NewSelect().
		Model(&rows).
		Where(`v."storeNbr" = ?`, storeNbr)
	if rating != "" {
		q = q.Where("LOWER(v.rating) = LOWER(?)", rating)
	}
	if err := q.OrderExpr("v.calendar_date DESC").Limit(limit).Scan(ctx); err != nil {
		return nil, fmt.Errorf("search visits: %w", err)
	}

	visits := make([]contract.Visit, 0, len(rows))
	for i := range rows {
		v, err := s.hydrateVisit(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		visits = append(visits, *v)
	}
	return visits, nil
}

func (s *Store) VisitDetails(ctx context.Context, visitID int64) (*contract.Visit, error) {
	var row visitRow
	err := s.db.NewSelect().Model(&row).Where("v.id = ?", visitID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: visit %d", contract.ErrNotFound, visitID)
	}
	if err != nil {
		return nil, fmt.Errorf("visit details: %w", err)
	}
	return s.hydrateVisit(ctx, &row)
}

func (s *Store) hydrateVisit(ctx context.Context, row *visitRow) (*contract.Visit, error) {
	v := &contract.Visit{
		ID:             row.ID,
		StoreNbr:       row.StoreNbr,
		CalendarDate:   isoDate(row.CalendarDate),
		Rating:         row.Rating,
		SalesCompYest:  row.SalesCompYest,
		SalesCompWTD:   row.SalesCompWTD,
		SalesCompMTD:   row.SalesCompMTD,
		SalesIndexYest: row.SalesIndexYest,
		SalesIndexWTD:  row.SalesIndexWTD,
		SalesIndexMTD:  row.SalesIndexMTD,
		VizPick:        row.VizPick,
		Overstock:      row.Overstock,
		FTPR:           row.FTPR,
	}

	for _, nt := range visitNoteTables {
		var texts []string
		err := s.db.NewSelect().
			ColumnExpr("n.note_text").
			TableExpr(nt.Table+" AS n").
			Where("n.visit_id = ?", row.ID).
			OrderExpr("n.sequence").
			Scan(ctx, &texts)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", nt.Table, err)
		}
		switch nt.Key {
		case "store_notes":
			v.StoreNotes = texts
		case "market_notes":
			v.MarketNotes = texts
		case "good_notes":
			v.GoodNotes = texts
		case "improvement_notes":
			v.ImprovementNotes = texts
		}
	}
	return v, nil
}

func (s *Store) AnalyzeTrends(ctx context.Context, storeNbr string, days int) (*contract.TrendReport, error) {
	if days <= 0 {
		days = 90
	}
	start := s.now().AddDate(0, 0, -days)
	mid := s.now().AddDate(0, 0, -days/2)

	var dist []struct {
		Rating string `bun:"rating"`
		Count  int    `bun:"count"`
	}
	err := s.db.NewSelect().
		TableExpr("store_visits AS v").
		ColumnExpr("v.rating").
		ColumnExpr("COUNT(*) AS count").
		Where(`v."storeNbr" = ?`, storeNbr).
		Where("v.calendar_date >= ?", start).
		GroupExpr("v.rating").
		Scan(ctx, &dist)
	if err != nil {
		return nil, fmt.Errorf("trend distribution: %w", err)
	}

	var avg struct {
		VisitCount       int      `bun:"visit_count"`
		AvgSalesCompYest *float64 `bun:"avg_sales_comp_yest"`
		AvgSalesCompWTD  *float64 `bun:"avg_sales_comp_wtd"`
		AvgSalesCompMTD  *float64 `bun:"avg_sales_comp_mtd"`
		AvgVizPick       *float64 `bun:"avg_vizpick"`
		AvgFTPR          *float64 `bun:"avg_ftpr"`
		AvgOverstock     *float64 `bun:"avg_overstock"`
	}
	err = s.db.NewSelect().
		TableExpr("store_visits AS v").
		ColumnExpr("COUNT(*) AS visit_count").
		ColumnExpr("AVG(v.sales_comp_yest) AS avg_sales_comp_yest").
		ColumnExpr("AVG(v.sales_comp_wtd) AS avg_sales_comp_wtd").
		ColumnExpr("AVG(v.sales_comp_mtd) AS avg_sales_comp_mtd").
		ColumnExpr("AVG(v.vizpick) AS avg_vizpick").
		ColumnExpr("AVG(v.ftpr) AS avg_ftpr").
		ColumnExpr("AVG(v.overstock) AS avg_overstock").
		Where(`v."storeNbr" = ?`, storeNbr).
		Where("v.calendar_date >= ?", start).
		Scan(ctx, &avg)
	if err != nil {
		return nil, fmt.Errorf("trend averages: %w", err)
	}

	var halves []struct {
		Period       string   `bun:"period"`
		AvgSalesComp *float64 `bun:"avg_sales_comp"`
	}
	err = s.db.NewSelect().
		TableExpr("store_visits AS v").
		ColumnExpr("CASE WHEN v.calendar_date >= ? THEN 'recent' ELSE 'earlier' END AS period", mid).
		ColumnExpr("AVG(v.sales_comp_wtd) AS avg_sales_comp").
		Where(`v."storeNbr" = ?`, storeNbr).
		Where("v.calendar_date >= ?", start).
		GroupExpr("CASE WHEN v.calendar_date >= ? THEN 'recent' ELSE 'earlier' END", mid).
		Scan(ctx, &halves)
	if err != nil {
		return nil, fmt.Errorf("trend halves: %w", err)
	}

	report := &contract.TrendReport{
		StoreNbr:           storeNbr,
		PeriodDays:         days,
		RatingDistribution: map[string]int{},
		Averages:           map[string]float64{},
		Trend:              map[string]float64{},
	}
	for _, d := range dist {
		report.RatingDistribution[d.Rating] = d.Count
	}
	report.Averages["visit_count"] = float64(avg.VisitCount)
	for key, val := range map[string]*float64{
		"avg_sales_comp_yest": avg.AvgSalesCompYest,
		"avg_sales_comp_wtd":  avg.AvgSalesCompWTD,
		"avg_sales_comp_mtd":  avg.AvgSalesCompMTD,
		"avg_vizpick":         avg.AvgVizPick,
		"avg_ftpr":            avg.AvgFTPR,
		"avg_overstock":       avg.AvgOverstock,
	} {
		if val != nil {
			report.Averages[key] = *val
		}
	}
	for _, h := range halves {
		if h.AvgSalesComp != nil {
			report.Trend[h.Period] = *h.AvgSalesComp
		}
	}
	return report, nil
}

func (s *Store) CompareStores(ctx context.Context, storeNbrs []string) ([]contract.StoreComparison, error) {
	results := make([]contract.StoreComparison, 0, len(storeNbrs))
	for _, nbr := range storeNbrs {
		var row struct {
			StoreNbr     string     `bun:"storeNbr"`
			TotalVisits  int        `bun:"total_visits"`
			GreenCount   int        `bun:"green_count"`
			YellowCount  int        `bun:"yellow_count"`
			RedCount     int        `bun:"red_count"`
			AvgSalesComp *float64   `bun:"avg_sales_comp"`
			AvgVizPick   *float64   `bun:"avg_vizpick"`
			AvgFTPR      *float64   `bun:"avg_ftpr"`
			LastVisit    *time.Time `bun:"last_visit"`
		}
		err := s.db.NewSelect().
			TableExpr("store_visits AS v").
			ColumnExpr(`v."storeNbr"`).
			ColumnExpr("COUNT(*) AS total_visits").
			ColumnExpr("SUM(CASE WHEN v.rating = 'Green' THEN 1 ELSE 0 END) AS green_count").
			ColumnExpr("SUM(CASE WHEN v.rating = 'Yellow' THEN 1 ELSE 0 END) AS yellow_count").
			ColumnExpr("SUM(CASE WHEN v.rating = 'Red' THEN 1 ELSE 0 END) AS red_count").
			ColumnExpr("AVG(v.sales_comp_wtd) AS avg_sales_comp").
			ColumnExpr("AVG(v.vizpick) AS avg_vizpick").
			ColumnExpr("AVG(v.ftpr) AS avg_ftpr").
			ColumnExpr("MAX(v.calendar_date) AS last_visit").
			Where(`v."storeNbr" = ?`, nbr).
			GroupExpr(`v."storeNbr"`).
			Scan(ctx, &row)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("compare store %s: %w", nbr, err)
		}

		cmp := contract.StoreComparison{
			StoreNbr:     row.StoreNbr,
			TotalVisits:  row.TotalVisits,
			GreenCount:   row.GreenCount,
			YellowCount:  row.YellowCount,
			RedCount:     row.RedCount,
			AvgSalesComp: row.AvgSalesComp,
			AvgVizPick:   row.AvgVizPick,
			AvgFTPR:      row.AvgFTPR,
		}
		if row.LastVisit != nil {
			cmp.LastVisit = isoDate(*row.LastVisit)
		}
		results = append(results, cmp)
	}
	return results, nil
}
