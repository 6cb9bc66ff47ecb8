package picker_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"hub/internal/catalog"
	"hub/internal/model"
	"hub/internal/picker"
	"hub/internal/search"
)

func testItems() []picker.Item {
	return []picker.Item{
		{Name: "Planner", Detail: "Marketing  https://tools.internal/planner", URL: "https://tools.internal/planner"},
		{Name: "Assets", Detail: "Marketing  https://tools.internal/assets", URL: "https://tools.internal/assets"},
		{Name: "SLA Monitor", Detail: "Operations  https://tools.internal/sla", URL: "https://tools.internal/sla"},
	}
}

func keyRunes(p picker.Picker, r string) picker.Picker {
	m, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)})
	return m.(picker.Picker)
}

func keyType(p picker.Picker, t tea.KeyType) picker.Picker {
	m, _ := p.Update(tea.KeyMsg{Type: t})
	return m.(picker.Picker)
}

func TestPicker_SelectFirst(t *testing.T) {
	p := picker.New(testItems(), "query")
	p = keyType(p, tea.KeyEnter)

	if p.Cancelled() {
		t.Fatal("enter should not cancel")
	}
	item := p.SelectedItem()
	if item == nil || item.Name != "Planner" {
		t.Errorf("expected first item selected, got %+v", item)
	}
}

func TestPicker_NavigateAndSelect(t *testing.T) {
	p := picker.New(testItems(), "query")
	p = keyRunes(p, "j")
	p = keyRunes(p, "j")
	p = keyType(p, tea.KeyEnter)

	item := p.SelectedItem()
	if item == nil || item.Name != "SLA Monitor" {
		t.Errorf("expected third item after two j presses, got %+v", item)
	}
}

func TestPicker_CursorClampsAtEdges(t *testing.T) {
	p := picker.New(testItems(), "query")

	// k at the top stays at the top
	p = keyRunes(p, "k")
	p = keyType(p, tea.KeyEnter)
	if item := p.SelectedItem(); item == nil || item.Name != "Planner" {
		t.Errorf("cursor moved above the first item: %+v", item)
	}

	p = picker.New(testItems(), "query")
	for i := 0; i < 10; i++ {
		p = keyRunes(p, "j")
	}
	p = keyType(p, tea.KeyEnter)
	if item := p.SelectedItem(); item == nil || item.Name != "SLA Monitor" {
		t.Errorf("cursor moved past the last item: %+v", item)
	}
}

func TestPicker_Cancel(t *testing.T) {
	cancels := []struct {
		name  string
		apply func(picker.Picker) picker.Picker
	}{
		{"esc", func(p picker.Picker) picker.Picker { return keyType(p, tea.KeyEsc) }},
		{"q", func(p picker.Picker) picker.Picker { return keyRunes(p, "q") }},
		{"ctrl+c", func(p picker.Picker) picker.Picker { return keyType(p, tea.KeyCtrlC) }},
	}

	for _, cancel := range cancels {
		t.Run(cancel.name, func(t *testing.T) {
			p := picker.New(testItems(), "query")
			p = cancel.apply(p)

			if !p.Cancelled() {
				t.Error("expected picker to be cancelled")
			}
			if p.SelectedItem() != nil {
				t.Error("cancelled picker must not return a selection")
			}
		})
	}
}

func TestPicker_ViewShowsItems(t *testing.T) {
	p := picker.New(testItems(), "planner")
	view := p.View()

	if !strings.Contains(view, "planner") {
		t.Error("view missing search query")
	}
	if !strings.Contains(view, "Planner") || !strings.Contains(view, "SLA Monitor") {
		t.Error("view missing item names")
	}
	if !strings.Contains(view, "Marketing") {
		t.Error("view missing owning folder detail")
	}
}

func TestPicker_NoSelectionBeforeEnter(t *testing.T) {
	p := picker.New(testItems(), "query")
	p = keyRunes(p, "j")

	if p.SelectedItem() != nil {
		t.Error("expected nil selection before enter")
	}
	if p.Cancelled() {
		t.Error("navigation should not cancel")
	}
}

func TestAppItems(t *testing.T) {
	results := []search.Result{
		{
			Folder: model.Folder{ID: "f1", Name: "Marketing"},
			App:    model.App{ID: "a1", Name: "Planner", URL: "https://tools.internal/planner"},
		},
		{
			Folder: model.Folder{ID: "f1", Name: "Marketing"},
			App:    model.App{ID: "a2", Name: "Drafts"},
		},
	}

	items := picker.AppItems(results)

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Planner" || items[0].URL != "https://tools.internal/planner" {
		t.Errorf("unexpected item: %+v", items[0])
	}
	if items[0].Catalog {
		t.Error("app item must not report as catalog")
	}
	if !strings.Contains(items[0].Detail, "Marketing") {
		t.Errorf("expected folder name in detail, got %q", items[0].Detail)
	}
	// URL-less apps keep an empty URL so selection reports it.
	if items[1].URL != "" {
		t.Errorf("expected empty URL, got %q", items[1].URL)
	}
}

func TestCatalogItems(t *testing.T) {
	results := []search.CatalogResult{
		{Entry: catalog.Entry{ID: "f1", Title: "Finance Hub", Description: "EBITDA, forecast and AR"}},
	}

	items := picker.CatalogItems(results)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "Finance Hub" {
		t.Errorf("unexpected item: %+v", items[0])
	}
	if !items[0].Catalog {
		t.Error("catalog item must report as catalog")
	}
	if items[0].URL != "" {
		t.Error("catalog entries are not directly openable")
	}
	if !strings.Contains(items[0].Detail, "catalog") {
		t.Errorf("expected catalog marker in detail, got %q", items[0].Detail)
	}
}

func TestPicker_MixedAppAndCatalogItems(t *testing.T) {
	items := append(
		picker.AppItems([]search.Result{
			{
				Folder: model.Folder{ID: "f1", Name: "Marketing"},
				App:    model.App{ID: "a1", Name: "Planner", URL: "https://tools.internal/planner"},
			},
		}),
		picker.CatalogItems([]search.CatalogResult{
			{Entry: catalog.Entry{ID: "c5", Title: "Commercial Planning", Description: "Target and FTE planning"}},
		})...,
	)

	p := picker.New(items, "plan")
	view := p.View()
	if !strings.Contains(view, "Planner") || !strings.Contains(view, "Commercial Planning") {
		t.Error("view missing mixed results")
	}

	p = keyRunes(p, "j")
	p = keyType(p, tea.KeyEnter)
	item := p.SelectedItem()
	if item == nil || !item.Catalog || item.Name != "Commercial Planning" {
		t.Errorf("expected the catalog item selected, got %+v", item)
	}
}
