package search

import (
	"github.com/sahilm/fuzzy"

	"hub/internal/catalog"
	"hub/internal/model"
)

// Result represents a fuzzy search match: an app together with the
// folder that owns it.
type Result struct {
	Folder         model.Folder
	App            model.App
	MatchedIndexes []int
	Score          int
}

// appRef points at one app in the flattened collection.
type appRef struct {
	folderIdx int
	appIdx    int
}

// appNames implements fuzzy.Source over the flattened app list.
type appNames struct {
	folders []model.Folder
	refs    []appRef
}

func (a appNames) String(i int) string {
	ref := a.refs[i]
	return a.folders[ref.folderIdx].Apps[ref.appIdx].Name
}

func (a appNames) Len() int {
	return len(a.refs)
}

// FuzzySearchApps searches every app in every folder by name.
// Returns results sorted by match score (best first).
func FuzzySearchApps(folders []model.Folder, query string) []Result {
	if query == "" {
		return nil
	}

	source := appNames{folders: folders}
	for fi := range folders {
		for ai := range folders[fi].Apps {
			source.refs = append(source.refs, appRef{folderIdx: fi, appIdx: ai})
		}
	}

	matches := fuzzy.FindFrom(query, source)

	results := make([]Result, len(matches))
	for i, m := range matches {
		ref := source.refs[m.Index]
		results[i] = Result{
			Folder:         folders[ref.folderIdx],
			App:            folders[ref.folderIdx].Apps[ref.appIdx],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}

// CatalogResult represents a fuzzy match against a built-in catalog
// entry.
type CatalogResult struct {
	Entry          catalog.Entry
	MatchedIndexes []int
	Score          int
}

// catalogTitles implements fuzzy.Source over catalog entry titles.
type catalogTitles []catalog.Entry

func (c catalogTitles) String(i int) string { return c[i].Title }
func (c catalogTitles) Len() int            { return len(c) }

// FuzzySearchCatalog searches the built-in catalog by entry title.
// Returns results sorted by match score (best first).
func FuzzySearchCatalog(entries []catalog.Entry, query string) []CatalogResult {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, catalogTitles(entries))

	results := make([]CatalogResult, len(matches))
	for i, m := range matches {
		results[i] = CatalogResult{
			Entry:          entries[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}
