package dispatch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jaxfield/assistant/agent/contract"
)

// renderTemplate is the deterministic per-tool renderer. It is total over
// the registry: every tool has an empty-result sentence, single-item results
// render conversationally, multi-item results render as a count header with
// bullets, and unknown tools fall back to prefaced pretty JSON.
func renderTemplate(name contract.ToolName, result contract.ToolResult) (string, error) {
	if result.Action != nil {
		return renderAction(result.Action), nil
	}

	switch name {
	case contract.ToolGetSummaryStats:
		if stats, ok := result.Data.(*contract.SummaryStats); ok && stats != nil {
			return renderSummary(stats), nil
		}
	case contract.ToolGetChampions:
		if rows, ok := result.Data.([]contract.Champion); ok {
			return renderChampions(rows), nil
		}
	case contract.ToolGetContacts:
		if rows, ok := result.Data.([]contract.Contact); ok {
			return renderContacts(rows), nil
		}
	case contract.ToolGetMentees:
		if rows, ok := result.Data.([]contract.Mentee); ok {
			return renderMentees(rows), nil
		}
	case contract.ToolGetGoldStars:
		if gs, ok := result.Data.(*contract.GoldStars); ok && gs != nil {
			return renderGoldStars(gs), nil
		}
	case contract.ToolGetTasks:
		if rows, ok := result.Data.([]contract.Task); ok {
			return renderTasks(rows), nil
		}
	case contract.ToolSearchVisits:
		if rows, ok := result.Data.([]contract.Visit); ok {
			return renderVisits(rows), nil
		}
	case contract.ToolGetVisitDetails:
		if v, ok := result.Data.(*contract.Visit); ok && v != nil {
			return renderVisits([]contract.Visit{*v}), nil
		}
	case contract.ToolGetStoreInformation:
		if rows, ok := result.Data.([]contract.StoreInfo); ok {
			return renderStoreInfo(rows), nil
		}
	case contract.ToolGetAssociateInsights:
		if rows, ok := result.Data.([]contract.AssociateInsight); ok {
			return renderAssociateInsights(rows), nil
		}
	case contract.ToolSearchNotes:
		if rows, ok := result.Data.([]contract.NoteHit); ok {
			return renderNoteHits(rows), nil
		}
	case contract.ToolGetMarketInsights:
		if ins, ok := result.Data.(*contract.MarketInsights); ok && ins != nil {
			return renderMarketInsights(ins), nil
		}
	case contract.ToolGetMarketNoteStatus:
		if rows, ok := result.Data.([]contract.MarketNoteStatus); ok {
			return renderMarketNoteStatuses(rows), nil
		}
	case contract.ToolGetMarketNoteUpdates:
		if rows, ok := result.Data.([]contract.MarketNoteUpdate); ok {
			return renderMarketNoteUpdates(rows), nil
		}
	case contract.ToolGetEnablers:
		if rows, ok := result.Data.([]contract.Enabler); ok {
			return renderEnablers(rows), nil
		}
	case contract.ToolGetIssues:
		if rows, ok := result.Data.([]contract.Issue); ok {
			return renderIssues(rows), nil
		}
	case contract.ToolGetUserNotes:
		if rows, ok := result.Data.([]contract.UserNote); ok {
			return renderUserNotes(rows), nil
		}
	case contract.ToolAnalyzeTrends:
		if report, ok := result.Data.(*contract.TrendReport); ok && report != nil {
			return renderTrends(report), nil
		}
	case contract.ToolCompareStores:
		if rows, ok := result.Data.([]contract.StoreComparison); ok {
			return renderComparisons(rows), nil
		}
	}

	// Unknown tool or unexpected shape: prefaced pretty JSON, never silence.
	encoded, err := json.MarshalIndent(result.Data, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Here's what I found:\n\n```json\n%s\n```", encoded), nil
}

func renderAction(ar *contract.ActionResult) string {
	if !ar.Success {
		reason := ar.Error
		if reason == "" {
			reason = "Unknown error"
		}
		return fmt.Sprintf("✗ **Action failed:** %s", reason)
	}

	message := ar.Message
	if message == "" {
		message = "Action completed successfully"
	}
	out := fmt.Sprintf("✓ **Done!** %s", message)

	switch p := ar.Payload.(type) {
	case *contract.Contact:
		out += "\n\n**Contact added:**"
		out += "\n• Name: " + p.Name
		if s := str(p.Title); s != "" {
			out += "\n• Title: " + s
		}
		if s := str(p.Department); s != "" {
			out += "\n• Department: " + s
		}
		if s := str(p.Phone); s != "" {
			out += "\n• Phone: " + s
		}
		if s := str(p.Email); s != "" {
			out += "\n• Email: " + s
		}
	case *contract.Task:
		out += "\n\n**Task details:**"
		out += fmt.Sprintf("\n• ID: #%d", p.ID)
		out += "\n• Content: " + p.Content
		out += "\n• Status: " + p.Status
		if s := str(p.AssignedTo); s != "" {
			out += "\n• Assigned to: " + s
		}
		if s := str(p.StoreNumber); s != "" {
			out += "\n• Store: " + s
		}
	case *contract.Champion:
		out += fmt.Sprintf("\n\n• **%s** - %s", p.Name, p.Responsibility)
	case *contract.Mentee:
		out += fmt.Sprintf("\n\n• **%s**", p.Name)
		if s := str(p.StoreNbr); s != "" {
			out += " - Store " + s
		}
		if s := str(p.Position); s != "" {
			out += ", " + s
		}
	case *contract.Enabler:
		out += fmt.Sprintf("\n\n• **%s** (%s)", p.Title, p.Status)
	case *contract.Issue:
		out += fmt.Sprintf("\n\n• **%s** (#%d) - %s", p.Title, p.ID, p.Type)
	}
	return out
}

func renderSummary(stats *contract.SummaryStats) string {
	return fmt.Sprintf(`**Store Visit Summary**

- Total visits: %d
- Unique stores: %d
- Date range: %s to %s

**Ratings:**
- Green: %d
- Yellow: %d
- Red: %d

Recent activity (30d): %d visits`,
		stats.TotalVisits, stats.UniqueStores,
		orNA(stats.FirstVisit), orNA(stats.LastVisit),
		stats.GreenCount, stats.YellowCount, stats.RedCount,
		stats.RecentVisits30d)
}

func renderChampions(rows []contract.Champion) string {
	if len(rows) == 0 {
		return "No champions found."
	}
	if len(rows) == 1 {
		return fmt.Sprintf("**%s** is the champion for %s.", rows[0].Name, rows[0].Responsibility)
	}
	lines := []string{fmt.Sprintf("**%d Champions:**\n", len(rows))}
	for _, c := range rows {
		lines = append(lines, fmt.Sprintf("• **%s** - %s", c.Name, c.Responsibility))
	}
	return strings.Join(lines, "\n")
}

func renderContacts(rows []contract.Contact) string {
	if len(rows) == 0 {
		return "No contacts found matching that search."
	}

	if len(rows) == 1 {
		c := rows[0]
		out := "**" + c.Name + "**"
		if s := str(c.Title); s != "" {
			out += " is a " + s
		}
		if s := str(c.Department); s != "" {
			out += " over " + s
		}
		out += "."

		var details []string
		if s := str(c.Phone); s != "" {
			details = append(details, "Phone: "+s)
		}
		if s := str(c.Email); s != "" {
			details = append(details, "Email: "+s)
		}
		if s := str(c.ReportsTo); s != "" {
			details = append(details, "Reports to: "+s)
		}
		if len(details) > 0 {
			out += "\n" + strings.Join(details, " | ")
		}
		return out
	}

	lines := []string{fmt.Sprintf("Found %d contacts:\n", len(rows))}
	for _, c := range rows {
		line := "• **" + c.Name + "**"
		if s := str(c.Title); s != "" {
			line += " - " + s
		}
		if s := str(c.Department); s != "" {
			line += " (" + s + ")"
		}
		var details []string
		if s := str(c.Phone); s != "" {
			details = append(details, s)
		}
		if s := str(c.Email); s != "" {
			details = append(details, s)
		}
		if len(details) > 0 {
			line += "\n  " + strings.Join(details, " | ")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderMentees(rows []contract.Mentee) string {
	if len(rows) == 0 {
		return "No mentees found."
	}
	if len(rows) == 1 {
		m := rows[0]
		out := fmt.Sprintf("**%s** at Store %s (%s)", m.Name, orNA(str(m.StoreNbr)), orNA(str(m.Position)))
		if s := str(m.CellNumber); s != "" {
			out += "\nCell: " + s
		}
		return out
	}
	lines := []string{fmt.Sprintf("**Mentee Circle (%d):**\n", len(rows))}
	for _, m := range rows {
		line := fmt.Sprintf("• **%s** - Store %s, %s", m.Name, orNA(str(m.StoreNbr)), orNA(str(m.Position)))
		if s := str(m.CellNumber); s != "" {
			line += "\n  Cell: " + s
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderGoldStars(gs *contract.GoldStars) string {
	lines := []string{fmt.Sprintf("**Gold Stars - Week %d**", gs.WeekNumber)}
	for i, note := range gs.Notes {
		if note != nil && *note != "" {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, *note))
		}
	}
	if len(lines) == 1 {
		lines = append(lines, "No focus notes set for this week.")
	}
	if n := len(gs.Completions); n > 0 {
		completed := 0
		for _, c := range gs.Completions {
			if c.Completed {
				completed++
			}
		}
		lines = append(lines, fmt.Sprintf("\nCompletions: %d of %d checked off", completed, n))
	}
	return strings.Join(lines, "\n")
}

var priorityLabels = [4]string{"Low", "Medium", "High", "Critical"}

func priorityLabel(p int) string {
	if p < 0 {
		p = 0
	}
	if p > 3 {
		p = 3
	}
	return priorityLabels[p]
}

func renderTasks(rows []contract.Task) string {
	if len(rows) == 0 {
		return "No tasks found."
	}
	if len(rows) == 1 {
		t := rows[0]
		out := fmt.Sprintf("**[%s]** %s - Status: %s", priorityLabel(t.Priority), t.Content, t.Status)
		if s := str(t.AssignedTo); s != "" {
			out += "\nAssigned to: " + s
		}
		if s := str(t.DueDate); s != "" {
			out += " | Due: " + s
		}
		return out
	}
	lines := []string{fmt.Sprintf("**%d Tasks:**\n", len(rows))}
	for _, t := range rows {
		line := fmt.Sprintf("• **[%s]** %s (%s)", priorityLabel(t.Priority), t.Content, t.Status)
		var details []string
		if s := str(t.AssignedTo); s != "" {
			details = append(details, "Assigned: "+s)
		}
		if s := str(t.DueDate); s != "" {
			details = append(details, "Due: "+s)
		}
		if len(details) > 0 {
			line += "\n  " + strings.Join(details, " | ")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderVisits(rows []contract.Visit) string {
	if len(rows) == 0 {
		return "No visits found."
	}
	if len(rows) == 1 {
		v := rows[0]
		out := fmt.Sprintf("**Store %s** on %s - **%s**", v.StoreNbr, v.CalendarDate, v.Rating)
		if v.SalesCompWTD != nil {
			out += fmt.Sprintf("\nSales Comp WTD: %v", *v.SalesCompWTD)
		}
		if len(v.Top3) > 0 {
			top := v.Top3
			if len(top) > 3 {
				top = top[:3]
			}
			out += "\nTop improvements: " + strings.Join(top, ", ")
		}
		return out
	}
	lines := []string{fmt.Sprintf("**%d Recent Visits:**\n", len(rows))}
	for _, v := range rows {
		line := fmt.Sprintf("• **Store %s** (%s) - **%s**", v.StoreNbr, v.CalendarDate, v.Rating)
		if v.SalesCompWTD != nil {
			line += fmt.Sprintf(" | Comp: %v", *v.SalesCompWTD)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderStoreInfo(rows []contract.StoreInfo) string {
	if len(rows) == 0 {
		return "No store information found."
	}
	if len(rows) == 1 {
		s := rows[0]
		out := fmt.Sprintf("**Store %s** (%s, %s)", s.StoreNumber, orNA(str(s.City)), orNA(str(s.State)))
		if m := str(s.StoreManager); m != "" {
			out += "\nManager: " + m
		}
		if t := str(s.VolumeTier); t != "" {
			out += "\nVolume Tier: " + t
		}
		if t := str(s.ComplexTier); t != "" {
			out += "\nComplex Tier: " + t
		}
		return out
	}
	lines := []string{fmt.Sprintf("**%d Stores Found:**\n", len(rows))}
	for _, s := range rows {
		manager := str(s.StoreManager)
		if manager == "" {
			manager = "No manager listed"
		}
		line := fmt.Sprintf("• **Store %s** - Manager: %s", s.StoreNumber, manager)
		if t := str(s.VolumeTier); t != "" {
			line += " | Vol: " + t
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderAssociateInsights(rows []contract.AssociateInsight) string {
	if len(rows) == 0 {
		return "I don't have any insights logged for that associate."
	}
	lines := []string{fmt.Sprintf("**Insights for %s:**\n", rows[0].AssociateName)}
	for _, ins := range rows {
		date := ins.CreatedAt
		if i := strings.IndexByte(date, 'T'); i > 0 {
			date = date[:i]
		}
		lines = append(lines, fmt.Sprintf("• %s _(%s)_", ins.InsightText, date))
	}
	return strings.Join(lines, "\n")
}

func renderNoteHits(rows []contract.NoteHit) string {
	if len(rows) == 0 {
		return "No notes found matching that search."
	}
	if len(rows) == 1 {
		n := rows[0]
		return fmt.Sprintf("One match from **Store %s** on %s (%s note):\n> %s",
			n.StoreNbr, n.CalendarDate, n.NoteType, n.NoteText)
	}
	lines := []string{fmt.Sprintf("Found %d matching notes:\n", len(rows))}
	for _, n := range rows {
		lines = append(lines, fmt.Sprintf("• **Store %s** (%s, %s): %s", n.StoreNbr, n.CalendarDate, n.NoteType, n.NoteText))
	}
	return strings.Join(lines, "\n")
}

func renderMarketInsights(ins *contract.MarketInsights) string {
	if ins.TotalMarketNotes == 0 {
		return fmt.Sprintf("No market notes found in the last %d days.", ins.PeriodDays)
	}
	lines := []string{fmt.Sprintf("**%d market notes in the last %d days:**\n", ins.TotalMarketNotes, ins.PeriodDays)}
	for _, n := range ins.Notes {
		lines = append(lines, fmt.Sprintf("• **Store %s** (%s): %s", n.StoreNbr, n.CalendarDate, n.NoteText))
	}
	return strings.Join(lines, "\n")
}

func renderMarketNoteStatuses(rows []contract.MarketNoteStatus) string {
	if len(rows) == 0 {
		return "No market notes found with that status."
	}
	if len(rows) == 1 {
		n := rows[0]
		out := fmt.Sprintf("**Store %s** market note (%s): %s", n.StoreNbr, n.Status, n.NoteText)
		if s := str(n.AssignedTo); s != "" {
			out += "\nAssigned to: " + s
		}
		return out
	}
	lines := []string{fmt.Sprintf("**%d Market Notes:**\n", len(rows))}
	for _, n := range rows {
		line := fmt.Sprintf("• **Store %s** (%s): %s", n.StoreNbr, n.Status, n.NoteText)
		if s := str(n.AssignedTo); s != "" {
			line += "\n  Assigned: " + s
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderMarketNoteUpdates(rows []contract.MarketNoteUpdate) string {
	if len(rows) == 0 {
		return "No market note updates found."
	}
	if len(rows) == 1 {
		u := rows[0]
		return fmt.Sprintf("Latest update on \"%s\" (Store %s): %s", u.NoteText, u.StoreNbr, u.UpdateText)
	}
	lines := []string{fmt.Sprintf("**%d Market Note Updates:**\n", len(rows))}
	for _, u := range rows {
		lines = append(lines, fmt.Sprintf("• **Store %s**: %s\n  On note: %s", u.StoreNbr, u.UpdateText, u.NoteText))
	}
	return strings.Join(lines, "\n")
}

func renderEnablers(rows []contract.Enabler) string {
	if len(rows) == 0 {
		return "No enablers found."
	}
	if len(rows) == 1 {
		e := rows[0]
		out := fmt.Sprintf("**%s** (%s)", e.Title, e.Status)
		if s := str(e.Description); s != "" {
			out += "\n" + s
		}
		if e.TotalTracked > 0 {
			out += fmt.Sprintf("\nCompleted by %d of %d stores", e.CompletedCount, e.TotalTracked)
		}
		return out
	}
	lines := []string{fmt.Sprintf("**%d Enablers:**\n", len(rows))}
	for _, e := range rows {
		line := fmt.Sprintf("• **%s** (%s)", e.Title, e.Status)
		if e.TotalTracked > 0 {
			line += fmt.Sprintf(" - %d/%d stores", e.CompletedCount, e.TotalTracked)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderIssues(rows []contract.Issue) string {
	if len(rows) == 0 {
		return "No issues found."
	}
	if len(rows) == 1 {
		i := rows[0]
		out := fmt.Sprintf("**%s** (#%d) - %s, %s", i.Title, i.ID, i.Type, i.Status)
		if s := str(i.Description); s != "" {
			out += "\n" + s
		}
		return out
	}
	lines := []string{fmt.Sprintf("**%d Issues:**\n", len(rows))}
	for _, i := range rows {
		lines = append(lines, fmt.Sprintf("• **%s** (#%d) - %s, %s", i.Title, i.ID, i.Type, i.Status))
	}
	return strings.Join(lines, "\n")
}

func renderUserNotes(rows []contract.UserNote) string {
	if len(rows) == 0 {
		return "No notes found."
	}
	if len(rows) == 1 {
		n := rows[0]
		out := fmt.Sprintf("**%s**\n%s", n.Title, n.ContentPreview)
		if n.TaskCount > 0 {
			out += fmt.Sprintf("\nTasks: %d/%d complete", n.CompletedTaskCount, n.TaskCount)
		}
		return out
	}
	lines := []string{fmt.Sprintf("**%d Notes:**\n", len(rows))}
	for _, n := range rows {
		line := "• **" + n.Title + "**"
		if n.IsPinned {
			line += " 📌"
		}
		if s := str(n.FolderPath); s != "" {
			line += " (" + s + ")"
		}
		if n.TaskCount > 0 {
			line += fmt.Sprintf(" - %d/%d tasks", n.CompletedTaskCount, n.TaskCount)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderTrends(report *contract.TrendReport) string {
	lines := []string{fmt.Sprintf("**Store %s - last %d days**\n", report.StoreNbr, report.PeriodDays)}

	if len(report.RatingDistribution) > 0 {
		lines = append(lines, "**Ratings:**")
		for _, rating := range []string{"Green", "Yellow", "Red"} {
			if count, ok := report.RatingDistribution[rating]; ok {
				lines = append(lines, fmt.Sprintf("- %s: %d", rating, count))
			}
		}
	}
	if v, ok := report.Averages["visit_count"]; ok {
		lines = append(lines, fmt.Sprintf("\nVisits in period: %.0f", v))
	}
	if v, ok := report.Averages["avg_sales_comp_wtd"]; ok {
		lines = append(lines, fmt.Sprintf("Avg sales comp WTD: %.2f", v))
	}
	recent, hasRecent := report.Trend["recent"]
	earlier, hasEarlier := report.Trend["earlier"]
	if hasRecent && hasEarlier {
		direction := "holding steady"
		if recent > earlier {
			direction = "improving"
		} else if recent < earlier {
			direction = "declining"
		}
		lines = append(lines, fmt.Sprintf("\nSales comp is %s (%.2f recent vs %.2f earlier).", direction, recent, earlier))
	}
	return strings.Join(lines, "\n")
}

func renderComparisons(rows []contract.StoreComparison) string {
	if len(rows) == 0 {
		return "No visit data found for those stores."
	}
	lines := []string{fmt.Sprintf("**Comparing %d stores:**\n", len(rows))}
	for _, c := range rows {
		line := fmt.Sprintf("• **Store %s** - %d visits (G:%d / Y:%d / R:%d)",
			c.StoreNbr, c.TotalVisits, c.GreenCount, c.YellowCount, c.RedCount)
		if c.AvgSalesComp != nil {
			line += fmt.Sprintf(" | Comp: %.2f", *c.AvgSalesComp)
		}
		if c.LastVisit != "" {
			line += " | Last: " + c.LastVisit
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
