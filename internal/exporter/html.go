package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hub/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/hub-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("hub-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML renders the folder collection to Netscape-style bookmark
// HTML. App descriptions become DD lines so a later import keeps them.
func ExportHTML(folders []model.Folder) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>hub folders</TITLE>\n")
	b.WriteString("<H1>hub folders</H1>\n")
	b.WriteString("<DL><p>\n")

	for _, folder := range folders {
		fmt.Fprintf(&b, "    <DT><H3>%s</H3>\n", html.EscapeString(folder.Name))
		b.WriteString("    <DL><p>\n")

		for _, app := range folder.Apps {
			fmt.Fprintf(&b,
				"        <DT><A HREF=\"%s\">%s</A>\n",
				html.EscapeString(app.URL),
				html.EscapeString(app.Name),
			)
			if app.Description != "" {
				fmt.Fprintf(&b, "        <DD>%s\n", html.EscapeString(app.Description))
			}
		}

		b.WriteString("    </DL><p>\n")
	}

	b.WriteString("</DL><p>\n")
	return b.String()
}
