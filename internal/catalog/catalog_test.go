package catalog_test

import (
	"testing"

	"hub/internal/catalog"
)

func TestEntries_ReturnsCopy(t *testing.T) {
	first := catalog.Entries()
	if len(first) == 0 {
		t.Fatal("expected a non-empty catalog")
	}

	first[0].Title = "Tampered"

	if catalog.Entries()[0].Title == "Tampered" {
		t.Error("mutating the returned slice changed the catalog")
	}
}

func TestAreas_AllFirst(t *testing.T) {
	areas := catalog.Areas()
	if len(areas) == 0 || areas[0] != catalog.AreaAll {
		t.Fatalf("expected %q first, got %v", catalog.AreaAll, areas)
	}

	// Every entry's area must be filterable.
	known := make(map[string]bool)
	for _, a := range areas {
		known[a] = true
	}
	for _, e := range catalog.Entries() {
		if !known[e.Area] {
			t.Errorf("entry %q has area %q not present in Areas()", e.Title, e.Area)
		}
	}
}

func TestCategories_DistinctAndComplete(t *testing.T) {
	categories := catalog.Categories()

	seen := make(map[string]bool)
	for _, c := range categories {
		if seen[c] {
			t.Errorf("duplicate category %q", c)
		}
		seen[c] = true
	}

	for _, e := range catalog.Entries() {
		for _, c := range e.Categories {
			if !seen[c] {
				t.Errorf("entry %q category %q missing from Categories()", e.Title, c)
			}
		}
	}
}

func TestFilter_ByArea(t *testing.T) {
	all := catalog.Filter(catalog.AreaAll, nil, "")
	if len(all) != len(catalog.Entries()) {
		t.Errorf("AreaAll should match everything: got %d of %d", len(all), len(catalog.Entries()))
	}

	supply := catalog.Filter("Supply", nil, "")
	if len(supply) == 0 {
		t.Fatal("expected at least one Supply entry")
	}
	for _, e := range supply {
		if e.Area != "Supply" {
			t.Errorf("entry %q leaked into Supply filter (area %q)", e.Title, e.Area)
		}
	}
}

func TestFilter_ByCategories(t *testing.T) {
	// All listed categories must match, not any.
	both := catalog.Filter(catalog.AreaAll, []string{"Automation", "Planning"}, "")
	for _, e := range both {
		if !hasCategory(e, "Automation") || !hasCategory(e, "Planning") {
			t.Errorf("entry %q does not carry both categories: %v", e.Title, e.Categories)
		}
	}

	onlyAutomation := catalog.Filter(catalog.AreaAll, []string{"Automation"}, "")
	if len(onlyAutomation) <= len(both) && len(both) > 0 {
		// Sanity: relaxing the filter cannot shrink the result.
		if len(onlyAutomation) < len(both) {
			t.Errorf("single category matched fewer entries (%d) than both (%d)",
				len(onlyAutomation), len(both))
		}
	}
}

func TestFilter_ByQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"title match", "finance hub", []string{"f1"}},
		{"case insensitive", "FINANCE HUB", []string{"f1"}},
		{"description match", "OTIF", []string{"s1"}},
		{"category match via risk", "risk", []string{"c4"}},
		{"no match", "zzz-nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Filter(catalog.AreaAll, nil, tt.query)
			var ids []string
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			if len(ids) != len(tt.wantIDs) {
				t.Fatalf("expected %v, got %v", tt.wantIDs, ids)
			}
			for i := range ids {
				if ids[i] != tt.wantIDs[i] {
					t.Errorf("expected %v, got %v", tt.wantIDs, ids)
				}
			}
		})
	}
}

func TestFilter_Combined(t *testing.T) {
	got := catalog.Filter("Commercial", []string{"Reports"}, "integration")
	if len(got) != 1 || got[0].ID != "c1" {
		t.Errorf("expected only c1, got %+v", got)
	}
}

func hasCategory(e catalog.Entry, want string) bool {
	for _, c := range e.Categories {
		if c == want {
			return true
		}
	}
	return false
}
