// Package catalog holds the fixed built-in tool catalog shown on the
// browse view next to the user's custom folders.
package catalog

import "strings"

// Badge marks a catalog entry in listings.
type Badge string

const (
	BadgeNone        Badge = ""
	BadgeNew         Badge = "new"
	BadgeBeta        Badge = "beta"
	BadgeRecommended Badge = "recommended"
)

// AreaAll is the synthetic area that matches every entry.
const AreaAll = "All"

// Entry is one built-in tool in the catalog.
type Entry struct {
	ID          string
	Title       string
	Description string
	Area        string
	Categories  []string
	Installed   bool
	Badge       Badge
}

var entries = []Entry{
	{ID: "c1", Title: "Integrations 36", Description: "Integration tracking tool", Area: "Commercial", Categories: []string{"Integrations", "Reports"}, Installed: true, Badge: BadgeRecommended},
	{ID: "c2", Title: "AI Assist 6", Description: "AI-assisted workflow control", Area: "Commercial", Categories: []string{"AI Assist", "Automation"}},
	{ID: "c3", Title: "Analytics 24", Description: "Comparisons and trend analysis", Area: "Commercial", Categories: []string{"Analytics", "Dashboards"}, Badge: BadgeNew},
	{ID: "c4", Title: "Risk & Compliance 12", Description: "Risk pipeline for proposals", Area: "Commercial", Categories: []string{"Risk & Compliance"}},
	{ID: "c5", Title: "Commercial Planning", Description: "Target and FTE planning", Area: "Commercial", Categories: []string{"Planning", "Dashboards"}},
	{ID: "c6", Title: "Commercial Reports", Description: "Executive report templates", Area: "Commercial", Categories: []string{"Reports"}},
	{ID: "c7", Title: "Proposal Automation", Description: "Templates and approval flow", Area: "Commercial", Categories: []string{"Automation", "Reports"}, Badge: BadgeBeta},
	{ID: "c8", Title: "CRM Insights", Description: "Conversion and ROAS insights", Area: "Commercial", Categories: []string{"Analytics", "Dashboards"}},
	{ID: "s1", Title: "Supply Dashboard", Description: "Supply and OTIF KPIs", Area: "Supply", Categories: []string{"Dashboards", "Reports"}},
	{ID: "f1", Title: "Finance Hub", Description: "EBITDA, forecast and AR", Area: "Finance", Categories: []string{"Dashboards", "Analytics"}, Badge: BadgeRecommended},
	{ID: "o1", Title: "Operations SLA", Description: "Critical SLA monitor", Area: "Operations", Categories: []string{"Dashboards", "Planning"}},
	{ID: "o2", Title: "WFM Automation", Description: "Shift and FTE allocation", Area: "Operations", Categories: []string{"Automation", "Planning"}},
}

// Entries returns the full catalog in display order.
func Entries() []Entry {
	result := make([]Entry, len(entries))
	copy(result, entries)
	return result
}

// Areas returns the area filter list, AreaAll first.
func Areas() []string {
	return []string{AreaAll, "Commercial", "Supply", "Finance", "Operations"}
}

// Categories returns every distinct category in catalog order.
func Categories() []string {
	seen := make(map[string]bool)
	var result []string
	for _, e := range entries {
		for _, c := range e.Categories {
			if !seen[c] {
				seen[c] = true
				result = append(result, c)
			}
		}
	}
	return result
}

// Filter returns the entries matching the given area, all of the given
// categories, and a case-insensitive search term over title,
// description and categories. AreaAll, an empty category list and an
// empty query each match everything.
func Filter(area string, categories []string, query string) []Entry {
	term := strings.ToLower(strings.TrimSpace(query))

	var result []Entry
	for _, e := range entries {
		if area != AreaAll && area != "" && e.Area != area {
			continue
		}
		if !hasAllCategories(e, categories) {
			continue
		}
		if term != "" && !matchesTerm(e, term) {
			continue
		}
		result = append(result, e)
	}
	return result
}

func hasAllCategories(e Entry, categories []string) bool {
	for _, want := range categories {
		found := false
		for _, c := range e.Categories {
			if c == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func matchesTerm(e Entry, term string) bool {
	haystack := strings.ToLower(e.Title + " " + e.Description + " " + strings.Join(e.Categories, " "))
	return strings.Contains(haystack, term)
}
