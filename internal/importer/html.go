package importer

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"hub/internal/model"
)

// ParseHTMLLinks parses an HTML link list (Netscape bookmark shape,
// flattened to one level) into folders of apps. H3 headings open a new
// folder; anchors become apps with the link text as name, and a DD line
// following an anchor becomes that app's description. Anchors that
// appear before any heading land in a folder named fallbackFolder.
// Imported folders get the default brand color.
func ParseHTMLLinks(r io.Reader, fallbackFolder string) ([]model.Folder, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var folders []model.Folder
	current := -1    // index into folders, -1 = no folder open yet
	lastApp := -1    // index of the most recent anchor's app, -1 = none
	lastFolder := -1 // folder owning that app

	openFolder := func(name string) {
		folders = append(folders, model.NewFolder(model.NewFolderParams{
			Name:  name,
			Color: model.ColorBrand,
		}))
		current = len(folders) - 1
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				name := strings.TrimSpace(textContent(n))
				if name != "" {
					openFolder(name)
					lastApp = -1
					lastFolder = -1
				}
				return // don't recurse into H3

			case "a":
				href := attr(n, "href")
				if href == "" {
					return
				}
				name := strings.TrimSpace(textContent(n))
				if name == "" {
					name = href
				}
				if current < 0 {
					openFolder(fallbackFolder)
				}
				folders[current].Apps = append(folders[current].Apps, model.NewApp(model.NewAppParams{
					Name: name,
					URL:  href,
				}))
				lastFolder = current
				lastApp = len(folders[current].Apps) - 1
				return // don't recurse into A

			case "dd":
				// A DD line belongs to the anchor preceding it.
				text := strings.TrimSpace(textContent(n))
				if text != "" && lastFolder >= 0 {
					app := &folders[lastFolder].Apps[lastApp]
					if app.Description == "" {
						app.Description = text
					}
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return folders, nil
}

// textContent extracts all text content from a node and its children.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}
